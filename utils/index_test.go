package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	assert.Equal(t, 50.0, CalculateGrowth(150, 100))
	assert.Equal(t, -25.0, CalculateGrowth(75, 100))
	assert.Equal(t, 0.0, CalculateGrowth(0, 0))
	assert.Equal(t, 100.0, CalculateGrowth(40, 0))
}

func TestIsValidValueOfConstant(t *testing.T) {
	statuses := []string{"pending", "cooking", "ready", "delivered"}
	assert.True(t, IsValidValueOfConstant("cooking", statuses))
	assert.False(t, IsValidValueOfConstant("preparing", statuses))
	assert.False(t, IsValidValueOfConstant("", statuses))
}
