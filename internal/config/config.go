package config

import (
	"runtime"
	"time"

	"github.com/tomz197/circles/internal/geom"
)

// Environment variable names.
const (
	EnvEpsilon    = "CIRCLES_EPSILON"
	EnvLogLevel   = "CIRCLES_LOG_LEVEL"
	EnvSSHHost    = "SSH_HOST"
	EnvSSHPort    = "SSH_PORT"
	EnvSSHHostKey = "SSH_HOST_KEY"
)

// SSH server defaults.
const (
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultSSHHostKey  = "/app/keys/host_key"
	ShutdownTimeout    = 5 * time.Second
	SessionIdleTimeout = 10 * time.Minute
)

// Session
const (
	Prompt          = "circles> "
	DefaultLogLevel = "info"
)

// Epsilon returns the solver tolerance from the environment, or the solver
// default when unset, not positive or not finite.
func Epsilon() float64 {
	eps := GetEnvFloat(EnvEpsilon, geom.DefaultEpsilon)
	if !geom.ValidEpsilon(eps) {
		return geom.DefaultEpsilon
	}
	return eps
}

// Workers returns the default number of concurrent batch workers.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}
