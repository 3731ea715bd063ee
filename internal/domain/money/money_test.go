package money

import (
	"testing"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	value, err := ParseCurrency("$10.00")
	require.NoError(t, err)
	assert.Equal(t, 10.0, value)

	value, err = ParseCurrency("5.5")
	require.NoError(t, err)
	assert.Equal(t, 5.5, value)

	value, err = ParseCurrency(" $3.25 ")
	require.NoError(t, err)
	assert.Equal(t, 3.25, value)
}

func TestParseCurrency_Invalid(t *testing.T) {
	for _, input := range []string{"", "$", "ten dollars", "$12,50", "$$5"} {
		_, err := ParseCurrency(input)
		assert.Error(t, err, "expected error for input %q", input)
		assert.True(t, errors.Is(err, domainerrors.ErrParseFailed))
	}
}

func TestParseQuantity(t *testing.T) {
	quantity, err := ParseQuantity("3")
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)

	_, err = ParseQuantity("3.5")
	assert.True(t, errors.Is(err, domainerrors.ErrParseFailed))

	_, err = ParseQuantity("many")
	assert.True(t, errors.Is(err, domainerrors.ErrParseFailed))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$15.50", FormatCurrency(15.5))
	assert.Equal(t, "$9.00", FormatCurrency(9))
	// Rounded, not truncated.
	assert.Equal(t, "$2.68", FormatCurrency(2.675000001))
}

func TestLineTotal(t *testing.T) {
	total, err := LineTotal("2", "$3.00")
	require.NoError(t, err)
	assert.Equal(t, 6.0, total)

	total, err = LineTotal("4", "2.25")
	require.NoError(t, err)
	assert.Equal(t, 9.0, total)

	_, err = LineTotal("two", "$3.00")
	assert.True(t, errors.Is(err, domainerrors.ErrParseFailed))

	_, err = LineTotal("2", "free")
	assert.True(t, errors.Is(err, domainerrors.ErrParseFailed))
}
