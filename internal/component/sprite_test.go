package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinDirectionSign(t *testing.T) {
	assert.Equal(t, 1.0, Clockwise.Sign())
	assert.Equal(t, -1.0, CounterClockwise.Sign())
}
