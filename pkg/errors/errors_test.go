package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeIncompleteSchema, "payload missing %q", "rooms")

	if err.Code != ErrCodeIncompleteSchema {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeIncompleteSchema)
	}
	if err.Message != `payload missing "rooms"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	if !strings.Contains(err.Error(), "INCOMPLETE_SCHEMA") {
		t.Errorf("Error() should contain the code, got %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := Wrap(ErrCodeMalformedResponse, cause, "parse floor plan payload")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "unexpected end of JSON input") {
		t.Errorf("Error() should include the cause, got %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnauthorized, "missing API key")

	if !Is(err, ErrCodeUnauthorized) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain error"), ErrCodeInternal) {
		t.Error("Is should not match non-structured errors")
	}

	// Code matching survives wrapping with %w.
	wrapped := fmt.Errorf("pipeline: %w", err)
	if !Is(wrapped, ErrCodeUnauthorized) {
		t.Error("Is should unwrap through fmt.Errorf %%w")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeMalformedResponse, "bad JSON")); got != ErrCodeMalformedResponse {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeMalformedResponse)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeIncompleteSchema, "payload missing dimensions")
	if got := UserMessage(err); got != "payload missing dimensions" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain error")); got != "plain error" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
