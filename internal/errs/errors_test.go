package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUnknownRefErrorMessageVariants(t *testing.T) {
	empty := &UnknownRefError{Ref: "e1"}
	if got := empty.Error(); got == "" {
		t.Fatalf("expected non-empty message for an empty ref table")
	}

	populated := &UnknownRefError{Ref: "e9", LowRef: "e1", HighRef: "e8", RangeLen: 8}
	msg := populated.Error()
	for _, want := range []string{"e9", "e1", "e8"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message %q to mention %q", msg, want)
		}
	}
}

func TestFacadeErrorUnwrapAndHint(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	withHint := &FacadeError{Cause: cause, Hint: "check --executable-path"}
	if !strings.Contains(withHint.Error(), "check --executable-path") {
		t.Errorf("expected hint in message, got %q", withHint.Error())
	}
	if !errors.Is(withHint, cause) {
		t.Errorf("expected errors.Is to see through FacadeError to its cause")
	}

	noHint := &FacadeError{Cause: cause}
	if noHint.Error() != cause.Error() {
		t.Errorf("expected bare cause message with no hint, got %q", noHint.Error())
	}
}

func TestDaemonUnreachableUnwraps(t *testing.T) {
	cause := fmt.Errorf("dial unix: no such file")
	err := &DaemonUnreachable{Session: "default", Cause: cause}
	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to unwrap to cause")
	}
	if !strings.Contains(err.Error(), "default") {
		t.Errorf("expected session name in message, got %q", err.Error())
	}
}

func TestErrNoSuchStateVsErrCorruptStateAreDistinguishable(t *testing.T) {
	var notFound error = &ErrNoSuchState{Name: "work"}
	var corrupt error = &ErrCorruptState{Path: "/tmp/spel-states/work.json", Cause: fmt.Errorf("unexpected EOF")}

	var nf *ErrNoSuchState
	if !errors.As(notFound, &nf) {
		t.Errorf("expected errors.As to match ErrNoSuchState")
	}
	var cs *ErrCorruptState
	if errors.As(notFound, &cs) {
		t.Errorf("did not expect ErrNoSuchState to match ErrCorruptState")
	}
	if !errors.As(corrupt, &cs) {
		t.Errorf("expected errors.As to match ErrCorruptState")
	}
}
