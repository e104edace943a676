package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorLiteral(t *testing.T) {
	tests := []struct {
		name      string
		embedding []float32
		expected  string
	}{
		{"empty", nil, "[]"},
		{"single", []float32{0.5}, "[0.5]"},
		{"multiple", []float32{1, -0.25, 2}, "[1,-0.25,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vectorLiteral(tt.embedding))
		})
	}
}
