package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"Bool", true, true},
		{"Int one", 1, true},
		{"Int zero", 0, false},
		{"Int64", int64(1), true},
		{"String true", "TRUE", true},
		{"String one", "1", true},
		{"String yes", " yes ", true},
		{"String false", "false", false},
		{"Empty", "", false},
		{"Bytes", []byte("on"), true},
		{"Nil", nil, false},
		{"Float", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBool(tt.in))
		})
	}
}
