package testutil

import (
	"testing"
)

// WithTempDirEnv points the environment variable key at a fresh temporary
// directory while fn runs
func WithTempDirEnv(t *testing.T, key string, fn func(string)) {
	dir := t.TempDir()
	t.Setenv(key, dir)
	fn(dir)
}

// WithHomeDir runs fn with <envPrefix>_HOME set to a temporary directory
func WithHomeDir(t *testing.T, envPrefix string, fn func(string)) {
	WithTempDirEnv(t, envPrefix+"_HOME", fn)
}
