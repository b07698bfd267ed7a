// Package assert has a minimal set of test helpers.
package assert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func Error(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("got: %v, want: !nil", err)
	}
}

func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("got: %v, want: nil", err)
	}
}

func ErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("got: %v, want: %v", err, target)
	}
}

func Equal[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got: %v, want: %v", got, want)
	}
}

func NotEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got == want {
		t.Fatalf("got: %v, want: !%v", got, want)
	}
}

func True(t *testing.T, got bool) {
	t.Helper()
	if !got {
		t.Fatalf("got: %v, want: true", got)
	}
}

func False(t *testing.T, got bool) {
	t.Helper()
	if got {
		t.Fatalf("got: %v, want: false", got)
	}
}

func DeepEqual(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func DeepNotEqual(t *testing.T, got, want any) {
	t.Helper()
	if cmp.Equal(want, got) {
		t.Fatalf("got: %+v, want: !%+v", got, want)
	}
}
