package params

import (
	"testing"

	"github.com/longportapp/openapi-go/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, code := range PeriodCodes() {
		t.Run(code, func(t *testing.T) {
			_, err := ParsePeriod(code)
			assert.NoError(t, err)
		})
	}

	p, err := ParsePeriod("day")
	require.NoError(t, err)
	assert.Equal(t, quote.PeriodDay, p)

	_, err = ParsePeriod("daily")
	assert.ErrorIs(t, err, ErrValue)
}

func TestParseAdjustType(t *testing.T) {
	a, err := ParseAdjustType("forward_adjust")
	require.NoError(t, err)
	assert.Equal(t, quote.AdjustTypeForward, a)

	for _, code := range AdjustTypeCodes() {
		_, err := ParseAdjustType(code)
		assert.NoError(t, err)
	}

	_, err = ParseAdjustType("backward_adjust")
	assert.ErrorIs(t, err, ErrValue)
}

func TestParseCalcIndexes(t *testing.T) {
	t.Run("every catalog code parses", func(t *testing.T) {
		out, err := ParseCalcIndexes(CalcIndexCodes())
		require.NoError(t, err)
		assert.Len(t, out, len(CalcIndexCodes()))
	})

	t.Run("codes map to the SDK constants", func(t *testing.T) {
		for code, want := range map[string]quote.CalcIndex{
			"change_value":   quote.CalcIndexChangeVal,
			"pe_ttm_ratio":   quote.CalcIndexPeTTMRatio,
			"dividend_ratio": quote.CalcIndexDividendRatioTTM,
			"last_done":      quote.CalcIndexLastDone,
		} {
			got, err := ParseCalcIndex(code)
			require.NoError(t, err, code)
			assert.Equal(t, want, got, code)
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		out, err := ParseCalcIndexes([]string{"volume", "last_done"})
		require.NoError(t, err)
		assert.Equal(t, []quote.CalcIndex{quote.CalcIndexVolume, quote.CalcIndexLastDone}, out)
	})

	t.Run("unknown code fails closed", func(t *testing.T) {
		_, err := ParseCalcIndexes([]string{"last_done", "market_cap"})
		assert.ErrorIs(t, err, ErrValue)
	})
}
