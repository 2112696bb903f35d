package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSkip(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		want  int64
	}{
		{name: "first page", page: 0, limit: 10, want: 0},
		{name: "third page", page: 2, limit: 25, want: 50},
		{name: "negative page", page: -1, limit: 10, want: 0},
		{name: "zero limit", page: 3, limit: 0, want: 0},
		{name: "saturates", page: math.MaxInt64/10 + 1, limit: 10, want: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateSkip(tt.page, tt.limit))
		})
	}
}
