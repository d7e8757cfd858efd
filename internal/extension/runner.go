package extension

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattjoyce/pipeliner/internal/config"
	"github.com/mattjoyce/pipeliner/internal/ipc"
	"github.com/mattjoyce/pipeliner/internal/log"
)

// Handler turns the input property set into the output property set.
type Handler interface {
	Handle(ctx context.Context, in *ipc.Properties) (*ipc.Properties, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, in *ipc.Properties) (*ipc.Properties, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, in *ipc.Properties) (*ipc.Properties, error) {
	return f(ctx, in)
}

// Runner executes one extension invocation: read input, run the handler, write
// output. Steps run strictly in sequence.
type Runner struct {
	cfg     *config.Config
	codec   *ipc.Codec
	logger  *slog.Logger
	environ func() []string
}

// NewRunner creates a Runner for cfg. A nil logger selects the global one.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = log.WithComponent("extension")
	}

	codec := ipc.NewCodec()
	codec.Strict = cfg.Strict

	return &Runner{
		cfg:     cfg,
		codec:   codec,
		logger:  logger,
		environ: os.Environ,
	}
}

// WithCodec replaces the codec used for both IPC files.
func (r *Runner) WithCodec(c *ipc.Codec) *Runner {
	r.codec = c
	return r
}

// WithEnviron replaces the environment source used for tracing.
func (r *Runner) WithEnviron(environ func() []string) *Runner {
	r.environ = environ
	return r
}

// Run performs the exchange. The returned error wraps an *ipc.ReadError,
// *ipc.WriteError, the handler's error, or ctx.Err().
func (r *Runner) Run(ctx context.Context, h Handler) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := r.codec.ReadFile(r.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	r.logger.Info("input properties loaded", "path", r.cfg.InputPath, "count", in.Len())

	if r.cfg.Trace {
		r.trace(in)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := h.Handle(ctx, in)
	if err != nil {
		return fmt.Errorf("handle: %w", err)
	}
	if out == nil {
		out = ipc.NewProperties()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.codec.WriteFile(r.cfg.OutputPath, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	r.logger.Info("output properties written", "path", r.cfg.OutputPath, "count", out.Len())

	return nil
}

// trace logs at info so that enabling trace is enough to see the records,
// whatever level the logger was built with.
func (r *Runner) trace(in *ipc.Properties) {
	for _, v := range config.Environ(r.environ()) {
		r.logger.Info("environment variable", "name", v.Name, "value", v.Value)
	}
	for name, value := range in.All() {
		r.logger.Info("extension property", "name", name, "value", value)
	}
	if fp, err := ipc.Fingerprint(in); err == nil {
		r.logger.Info("input fingerprint", "fingerprint", fp)
	}
}
