package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveWorkers(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		cores     int
		want      int
		wantErr   bool
	}{
		{name: "positive used verbatim", requested: 3, cores: 8, want: 3},
		{name: "more than cores still verbatim", requested: 16, cores: 8, want: 16},
		{name: "negative leaves cores free", requested: -2, cores: 8, want: 6},
		{name: "negative never below one", requested: -8, cores: 8, want: 1},
		{name: "very negative never below one", requested: -100, cores: 4, want: 1},
		{name: "zero rejected", requested: 0, cores: 8, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWorkers(tt.requested, tt.cores)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWorkerCount)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, groupDigits(tt.in))
	}
}
