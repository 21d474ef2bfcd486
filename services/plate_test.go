package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercase with spaces", raw: "el 1234", want: "EL1234"},
		{name: "already normalized", raw: "EL1234", want: "EL1234"},
		{name: "tabs and inner whitespace", raw: "  mu\t56 78 ", want: "MU5678"},
		{name: "empty input", raw: "", want: ""},
		{name: "only whitespace", raw: " \t ", want: ""},
		{name: "umlauts are uppercased", raw: "ö 123", want: "Ö123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizePlate(tt.raw))
		})
	}
}

func TestNormalizePlateIdempotent(t *testing.T) {
	once := NormalizePlate("el 12 34")
	require.Equal(t, once, NormalizePlate(once))
}
