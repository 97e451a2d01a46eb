package testutil

import (
	"testing"

	"cosmossdk.io/log"
)

func Logger(t testing.TB) log.Logger {
	return log.NewTestLogger(t)
}
