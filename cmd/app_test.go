package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nocount/scryglass/internal/scryfall"
)

func TestLookupErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found uses api details",
			err:  &scryfall.NotFoundError{Details: "No cards found matching “xyzzy”"},
			want: "No cards found matching “xyzzy”",
		},
		{
			name: "http error reports status",
			err:  &scryfall.HTTPError{Status: 503},
			want: "API error: 503",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("%w: deadline exceeded", scryfall.ErrTimeout),
			want: "Request timed out. Please try again.",
		},
		{
			name: "connection failure",
			err:  fmt.Errorf("%w: dial tcp: refused", scryfall.ErrConnection),
			want: "Connection error. Check your internet connection.",
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lookupErrorMessage(tt.err))
		})
	}
}
