package auth

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_SixDecimalDigits(t *testing.T) {
	generator := NewOTPGenerator()

	for i := 0; i < 100; i++ {
		code, err := generator.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		value, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, 100000)
		assert.LessOrEqual(t, value, 999999)
	}
}
