// Package api defines the session interfaces handlers call through. The
// longport SDK quote and trade contexts satisfy them structurally; tests
// substitute fakes.
package api

import (
	"context"
	"time"

	"github.com/longportapp/openapi-go/quote"
	"github.com/longportapp/openapi-go/trade"
)

// QuoteSession is the market-data surface of the backend. Implemented by
// *quote.QuoteContext.
type QuoteSession interface {
	StaticInfo(ctx context.Context, symbols []string) ([]*quote.StaticInfo, error)
	Quote(ctx context.Context, symbols []string) ([]*quote.SecurityQuote, error)
	Depth(ctx context.Context, symbol string) (*quote.SecurityDepth, error)
	CapitalFlow(ctx context.Context, symbol string) ([]quote.CapitalFlowLine, error)
	CapitalDistribution(ctx context.Context, symbol string) (quote.CapitalDistribution, error)
	CalcIndex(ctx context.Context, symbols []string, indexes []quote.CalcIndex) ([]*quote.SecurityCalcIndex, error)
	WatchedGroups(ctx context.Context) ([]*quote.WatchedGroup, error)
	HistoryCandlesticksByDate(ctx context.Context, symbol string, period quote.Period, adjustType quote.AdjustType, startDate, endDate *time.Time) ([]*quote.Candlestick, error)
	HistoryCandlesticksByOffset(ctx context.Context, symbol string, period quote.Period, adjustType quote.AdjustType, isForward bool, datetime *time.Time, count int32) ([]*quote.Candlestick, error)
}

// TradeSession is the account/trading surface of the backend. Implemented
// by *trade.TradeContext.
type TradeSession interface {
	AccountBalance(ctx context.Context, opts *trade.GetAccountBalance) ([]*trade.AccountBalance, error)
	StockPositions(ctx context.Context, symbols []string) ([]*trade.StockPositionChannel, error)
	TodayExecutions(ctx context.Context, opts *trade.GetTodayExecutions) ([]*trade.Execution, error)
	HistoryExecutions(ctx context.Context, opts *trade.GetHistoryExecutions) ([]*trade.Execution, error)
}
