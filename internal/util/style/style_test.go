package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwatch(t *testing.T) {
	assert.Equal(t, "\033[48;2;255;0;0m  \033[0m", swatch("#ff0000"))
	assert.Equal(t, "\033[48;2;0;128;255m  \033[0m", swatch("#0080ff"))
	assert.Empty(t, swatch(""))
	assert.Empty(t, swatch("red"))
}

func TestDoS(t *testing.T) {
	assert.Equal(t, "\033[0m", doS(nil))
	assert.Equal(t, "\033[1;31m", doS([]int{Bold, FgRed}))
}
