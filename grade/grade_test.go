package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 73.33, Percentage(11, 15))
	assert.Equal(t, 100.0, Percentage(15, 15))
	assert.Equal(t, 0.0, Percentage(0, 15))
	assert.Equal(t, 66.67, Percentage(2, 3))
}

func TestPercentageZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(5, 0))
}

func TestLetter(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{95, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{73.33, "B+"},
		{70, "B+"},
		{65, "B"},
		{55, "C"},
		{40, "D"},
		{35, "D"},
		{34.99, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Letter(tt.pct), "pct %v", tt.pct)
	}
}

func TestPassed(t *testing.T) {
	assert.True(t, Passed(35))
	assert.True(t, Passed(73.33))
	assert.False(t, Passed(34.99))
}
