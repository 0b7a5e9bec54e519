//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"clinic-scheduler/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2024, 3, 4, 9, 30, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(at, 42)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.True(t, at.Equal(gotTime))
	assert.Equal(t, int64(42), gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "unknown version", cursor: enc("v2:1-1")},
		{name: "missing id", cursor: enc("v1:1700000000")},
		{name: "non numeric time", cursor: enc("v1:abc-1")},
		{name: "non numeric id", cursor: enc("v1:1-abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: 0, want: queries.DefaultListLimit},
		{in: -5, want: queries.DefaultListLimit},
		{in: 1, want: 1},
		{in: queries.MaxListLimit, want: queries.MaxListLimit},
		{in: queries.MaxListLimit + 1, want: queries.MaxListLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, queries.ValidateLimit(tt.in), "limit %d", tt.in)
	}
}
