// Command sample-extension is a minimal pipeline extension. It prints the
// properties it receives and answers with two fixed output properties.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattjoyce/pipeliner/internal/config"
	"github.com/mattjoyce/pipeliner/internal/extension"
	"github.com/mattjoyce/pipeliner/internal/ipc"
	"github.com/mattjoyce/pipeliner/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.LookupEnv, os.Environ, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, lookup config.LookupFunc, environ func() []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Error occurred during execution: %v\n", err)
		return 1
	}

	logger := log.New("INFO", stderr).With("extension", "sample")

	runner := extension.NewRunner(cfg, logger).WithEnviron(environ)
	if err := runner.Run(ctx, sampleHandler(stdout)); err != nil {
		fmt.Fprintf(stderr, "Error occurred during execution: %v\n", err)
		return 1
	}
	return 0
}

func sampleHandler(stdout io.Writer) extension.Handler {
	return extension.HandlerFunc(func(_ context.Context, in *ipc.Properties) (*ipc.Properties, error) {
		fmt.Fprintln(stdout, "This is a sample Go extension")
		for name, value := range in.All() {
			fmt.Fprintf(stdout, "extension with property [%s] = [%s]\n", name, value)
		}

		out := ipc.NewProperties()
		out.Set("extension.property.1", "extension.foo")
		out.Set("extension.property.2", "extension.bar")
		return out, nil
	})
}
