package user

import (
	"testing"
)

func TestName_Override(t *testing.T) {
	t.Setenv(EnvUser, "  ana ")

	if got := Name(); got != "ana" {
		t.Errorf("Name() = %q, want %q", got, "ana")
	}
}

func TestName_NeverEmpty(t *testing.T) {
	t.Setenv(EnvUser, "")

	if got := Name(); got == "" {
		t.Error("Name() should fall back to a non-empty value")
	}
}
