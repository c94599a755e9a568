package prefix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		ok     bool
	}{
		{name: "single letter", prefix: "A", ok: true},
		{name: "letters", prefix: "ALGO", ok: true},
		{name: "letters and digits", prefix: "Z7X2", ok: true},
		{name: "full alphabet edges", prefix: "AZ27", ok: true},
		{name: "address length", prefix: strings.Repeat("A", 58), ok: true},
		{name: "empty", prefix: "", ok: false},
		{name: "zero digit", prefix: "0", ok: false},
		{name: "one digit", prefix: "A1", ok: false},
		{name: "eight digit", prefix: "A8", ok: false},
		{name: "nine digit", prefix: "A9", ok: false},
		{name: "lowercase", prefix: "algo", ok: false},
		{name: "punctuation", prefix: "AL-GO", ok: false},
		{name: "space", prefix: "AL GO", ok: false},
		{name: "longer than an address", prefix: strings.Repeat("A", 59), ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.prefix)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidPrefix)
			}
		})
	}
}

func TestMatcher(t *testing.T) {
	m, err := New("ALGO")
	require.NoError(t, err)
	require.Equal(t, "ALGO", m.Prefix())

	require.True(t, m.Matches("ALGO5XYZ"))
	require.True(t, m.Matches("ALGO"))
	require.False(t, m.Matches("ALG"))
	require.False(t, m.Matches("XALGO"))
	require.False(t, m.Matches(""))
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New("0")
	require.ErrorIs(t, err, ErrInvalidPrefix)
}
