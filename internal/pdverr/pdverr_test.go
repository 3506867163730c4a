package pdverr

import (
	"errors"
	"testing"
)

func TestWrapPreservesKindAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(Io, cause, "writing output file")
	if KindOf(err) != Io {
		t.Fatalf("KindOf = %v, want Io", KindOf(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should still match its cause")
	}
}

func TestKindOfDefaultsToInvariant(t *testing.T) {
	if KindOf(errors.New("plain error")) != Invariant {
		t.Fatal("expected Invariant for an error that never passed through this package")
	}
}

func TestExitCodeMapping(t *testing.T) {
	cases := map[Kind]int{
		Usage:          64,
		Io:             74,
		BadImage:       65,
		BadArchive:     65,
		ScriptOversize: 65,
		BadArguments:   65,
		Invariant:      70,
	}
	for kind, want := range cases {
		if got := ExitCode(kind); got != want {
			t.Errorf("ExitCode(%v) = %d, want %d", kind, got, want)
		}
	}
}
