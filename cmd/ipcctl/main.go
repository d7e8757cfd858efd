// Command ipcctl inspects and produces pipeline IPC property files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattjoyce/pipeliner/internal/ipc"
	"github.com/mattjoyce/pipeliner/internal/log"
)

var version = "0.1.0-dev"

func main() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type rootOptions struct {
	permissive    bool
	validateNames bool
	logLevel      string
}

func (o *rootOptions) codec() *ipc.Codec {
	c := ipc.NewCodec()
	c.Strict = !o.permissive
	c.ValidateNames = o.validateNames
	return c
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ipcctl",
		Short: "Inspect and produce pipeline IPC property files",
		Long: `ipcctl reads and writes the property files a pipeline engine exchanges with
its extensions (format ` + ipc.FormatVersion + `).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Setup(opts.logLevel)
		},
	}

	root.PersistentFlags().BoolVar(&opts.permissive, "permissive", false, "Skip lines without '=' instead of failing")
	root.PersistentFlags().BoolVar(&opts.validateNames, "validate-names", false, "Enforce the property name syntax")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "WARN", "Log level for stderr diagnostics (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(
		newNewCmd(),
		newShowCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newDigestCmd(opts),
		newRmCmd(),
	)
	return root
}
