package params

import (
	"fmt"

	"github.com/longportapp/openapi-go/quote"
)

// Literal code tables. Each accepted literal is listed explicitly and maps
// to one SDK value; anything outside a table fails closed at the boundary.

// PeriodCodes are the accepted candlestick period literals, in catalog
// order.
func PeriodCodes() []string {
	return []string{"1m", "5m", "15m", "30m", "60m", "day", "week", "month", "year"}
}

var periodByCode = map[string]quote.Period{
	"1m":    quote.PeriodOneMinute,
	"5m":    quote.PeriodFiveMinute,
	"15m":   quote.PeriodFifteenMinute,
	"30m":   quote.PeriodThirtyMinute,
	"60m":   quote.PeriodSixtyMinute,
	"day":   quote.PeriodDay,
	"week":  quote.PeriodWeek,
	"month": quote.PeriodMonth,
	"year":  quote.PeriodYear,
}

func ParsePeriod(code string) (quote.Period, error) {
	p, ok := periodByCode[code]
	if !ok {
		var zero quote.Period
		return zero, fmt.Errorf("%w: unknown period %q", ErrValue, code)
	}
	return p, nil
}

// AdjustTypeCodes are the accepted price adjustment literals.
func AdjustTypeCodes() []string {
	return []string{"no_adjust", "forward_adjust"}
}

var adjustTypeByCode = map[string]quote.AdjustType{
	"no_adjust":      quote.AdjustTypeNo,
	"forward_adjust": quote.AdjustTypeForward,
}

func ParseAdjustType(code string) (quote.AdjustType, error) {
	a, ok := adjustTypeByCode[code]
	if !ok {
		var zero quote.AdjustType
		return zero, fmt.Errorf("%w: unknown adjust type %q", ErrValue, code)
	}
	return a, nil
}

// CalcIndexCodes are the accepted computed-index literals.
func CalcIndexCodes() []string {
	return []string{
		"last_done",
		"change_value",
		"change_rate",
		"volume",
		"turnover",
		"ytd_change_rate",
		"turnover_rate",
		"total_market_value",
		"capital_flow",
		"amplitude",
		"volume_ratio",
		"pe_ttm_ratio",
		"pb_ratio",
		"dividend_ratio",
		"five_day_change_rate",
	}
}

var calcIndexByCode = map[string]quote.CalcIndex{
	"last_done":            quote.CalcIndexLastDone,
	"change_value":         quote.CalcIndexChangeVal,
	"change_rate":          quote.CalcIndexChangeRate,
	"volume":               quote.CalcIndexVolume,
	"turnover":             quote.CalcIndexTurnover,
	"ytd_change_rate":      quote.CalcIndexYtdChangeRate,
	"turnover_rate":        quote.CalcIndexTurnoverRate,
	"total_market_value":   quote.CalcIndexTotalMarketValue,
	"capital_flow":         quote.CalcIndexCapitalFlow,
	"amplitude":            quote.CalcIndexAmplitude,
	"volume_ratio":         quote.CalcIndexVolumeRatio,
	"pe_ttm_ratio":         quote.CalcIndexPeTTMRatio,
	"pb_ratio":             quote.CalcIndexPbRatio,
	"dividend_ratio":       quote.CalcIndexDividendRatioTTM,
	"five_day_change_rate": quote.CalcIndexFiveDayChangeRate,
}

func ParseCalcIndex(code string) (quote.CalcIndex, error) {
	c, ok := calcIndexByCode[code]
	if !ok {
		var zero quote.CalcIndex
		return zero, fmt.Errorf("%w: unknown index code %q", ErrValue, code)
	}
	return c, nil
}

// ParseCalcIndexes maps a validated list of index literals.
func ParseCalcIndexes(codes []string) ([]quote.CalcIndex, error) {
	out := make([]quote.CalcIndex, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCalcIndex(code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CurrencyCodes are the accepted account balance currency filters.
func CurrencyCodes() []string {
	return []string{"HKD", "USD", "CNH"}
}
