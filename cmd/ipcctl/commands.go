package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattjoyce/pipeliner/internal/ipc"
	"github.com/mattjoyce/pipeliner/internal/log"
)

func newNewCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty owner-only IPC file and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ipc.CreateTempFile(dir)
			if err != nil {
				return err
			}
			log.WithComponent("ipcctl").Info("created IPC file", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for the file (default: system temp dir)")
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "List the properties of an IPC file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.codec().ReadFile(args[0])
			if err != nil {
				return err
			}
			renderProperties(cmd.OutOrStdout(), args[0], p)
			return nil
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Print an IPC file as YAML (file order) or JSON (sorted keys)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.codec().ReadFile(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "yaml":
				return encodeYAML(cmd.OutOrStdout(), p)
			case "json":
				data, err := json.MarshalIndent(p.Map(), "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want yaml or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var header bool

	cmd := &cobra.Command{
		Use:   "import SRC.yaml DST",
		Short: "Write an IPC file from a flat YAML mapping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			p, err := decodeYAML(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			codec := opts.codec()
			codec.Header = header
			if err := codec.WriteFile(args[1], p); err != nil {
				return err
			}
			log.WithComponent("ipcctl").Info("wrote IPC file", "path", args[1], "count", p.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d properties to %s\n", p.Len(), args[1])
			return nil
		},
	}
	cmd.Flags().BoolVar(&header, "header", false, "Start the file with the '"+ipc.Header+"' line")
	return cmd
}

func newDigestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "digest FILE",
		Short: "Print the BLAKE3 fingerprint of an IPC file's properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.codec().ReadFile(args[0])
			if err != nil {
				return err
			}
			fp, err := ipc.Fingerprint(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fp)
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm FILE...",
		Short: "Remove IPC files; missing files are ignored",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.WithComponent("ipcctl")
			for _, path := range args {
				if err := ipc.Cleanup(path); err != nil {
					return err
				}
				logger.Info("removed IPC file", "path", path)
			}
			return nil
		},
	}
}
