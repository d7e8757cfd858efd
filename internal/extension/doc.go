// Package extension is the runtime shim for pipeline extensions.
//
// The engine writes an input IPC file, starts the extension with
// PIPELINER_IPC_IN and PIPELINER_IPC_OUT naming the two files, and reads the
// output file once the process has exited. A Runner performs the extension
// half of that exchange around a Handler:
//
//	cfg, err := config.Load(os.LookupEnv)
//	...
//	err = extension.NewRunner(cfg, logger).Run(ctx, handler)
//
// Errors are returned, never printed; the entry point reports them once and
// exits non-zero.
package extension
