package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
	}{
		{"00:00", 0},
		{"08:05", 485},
		{"12:30", 750},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.minutes, got.Minutes(), tc.in)
		assert.Equal(t, tc.in, got.String(), "round-trip")
	}
}

func TestParseTimeOfDay_Rejects(t *testing.T) {
	bad := []string{
		"",
		"8:00",     // not zero-padded
		"08:0",     // too short
		"08:005",   // too long
		"24:00",    // hour out of range
		"12:60",    // minute out of range
		"ab:cd",    // not digits
		"12-30",    // wrong separator
		" 8:00",    // leading space
		"08:00 ",   // trailing space
		"0800",     // missing separator
		"08:00:00", // seconds not allowed
	}

	for _, in := range bad {
		_, err := ParseTimeOfDay(in)
		assert.ErrorIs(t, err, ErrBadTimeOfDay, "%q should be rejected", in)
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	type slot struct {
		At TimeOfDay `json:"at"`
	}

	raw, err := json.Marshal(slot{At: 545})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"09:05"}`, string(raw))

	var decoded slot
	require.NoError(t, json.Unmarshal([]byte(`{"at":"14:45"}`), &decoded))
	assert.Equal(t, 885, decoded.At.Minutes())

	assert.Error(t, json.Unmarshal([]byte(`{"at":"25:00"}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"at":123}`), &decoded))
}
