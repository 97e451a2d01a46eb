package testutil

import (
	"fmt"
	"math/rand"
	"testing"
)

// Name generates a random name with the given prefix
func Name(_ testing.TB, prefix string) string {
	return fmt.Sprintf("%s-%v", prefix, rand.Uint64()) // nolint: gosec
}

// TokenID generates a random cw721 token id
func TokenID(t testing.TB) string {
	t.Helper()
	return Name(t, "token")
}

func RandRangeInt(min, max int) int {
	return rand.Intn(max-min) + min // nolint: gosec
}
