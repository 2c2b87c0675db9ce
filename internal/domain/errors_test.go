package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("boom"), want: ""},
		{name: "not found", err: ErrBundleNotFound, want: "bundle_not_found"},
		{name: "wrapped malformed", err: fmt.Errorf("load x: %w", ErrMalformedBundle), want: "malformed_bundle"},
		{name: "missing resource", err: ErrMissingResource, want: "missing_resource"},
		{name: "unknown source", err: fmt.Errorf("open: %w", ErrUnknownSource), want: "unknown_source"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
