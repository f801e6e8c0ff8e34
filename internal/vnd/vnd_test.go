package vnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500.000 ₫", Format(1_500_000))
	assert.Equal(t, "0 ₫", Format(0))
	assert.Equal(t, "200.000 ₫", Format(200_000))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.455", FormatNumber(12_455))
	assert.Equal(t, "7", FormatNumber(7))
}
