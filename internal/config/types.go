package config

// Environment variable names read by extensions.
const (
	EnvIpcIn     = "PIPELINER_IPC_IN"
	EnvIpcOut    = "PIPELINER_IPC_OUT"
	EnvTrace     = "PIPELINER_TRACE"
	EnvIpcStrict = "PIPELINER_IPC_STRICT"
)

// Config is the extension runtime configuration, populated once by the entry
// point and passed to the runner.
type Config struct {
	// InputPath is the absolute path of the IPC file written by the engine.
	InputPath string
	// OutputPath is the absolute path the extension writes its results to.
	OutputPath string
	// Trace logs the environment and every input property before processing.
	Trace bool
	// Strict fails the input read on a line without '='.
	Strict bool
}

// EnvVar is a single NAME=value pair of the process environment.
type EnvVar struct {
	Name  string
	Value string
}
