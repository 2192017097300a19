package customerrors

import (
	"errors"
	"testing"
)

func TestWrapIsOrderedAndUnwraps(t *testing.T) {
	base := errors.New("dump too big")
	c := NewCriticalError(base).Wrap(map[string]interface{}{"MaxSize": 64, "File": "failed.jsonl"})
	if got, want := c.Error(), "dump too big File=failed.jsonl MaxSize=64"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !errors.Is(c, base) {
		t.Fatal("wrapped error must unwrap to its cause")
	}
}

func TestStatusError(t *testing.T) {
	if got := (&StatusError{Code: 503}).Error(); got != "503" {
		t.Fatalf("got %q", got)
	}
	if got := (&StatusError{Code: 500, Body: "boom"}).Error(); got != "500 - boom" {
		t.Fatalf("got %q", got)
	}
}
