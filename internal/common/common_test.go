package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid", InvalidInput("points must be non-negative"), ErrInvalidInput},
		{"not found", NotFound("team", 4), ErrNotFound},
		{"forbidden", Forbidden("not on staff"), ErrForbidden},
		{"conflict", Conflict("performance exists"), ErrConflict},
		{"wrapped twice", fmt.Errorf("create: %w", Conflict("dup")), ErrConflict},
		{"foreign", errors.New("boom"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Fatalf("Kind(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestForbiddenWithoutReason(t *testing.T) {
	if err := Forbidden(""); err != ErrForbidden {
		t.Fatalf("expected bare ErrForbidden, got %v", err)
	}
}
