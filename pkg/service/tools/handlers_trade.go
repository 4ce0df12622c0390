package tools

import (
	"context"

	"github.com/longportapp/openapi-go/trade"

	"github.com/baranwang/mcp-longbridge/pkg/service/params"
)

// Trade-domain handlers.

func handleAccountBalance(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	tc, err := deps.Sessions.Trade(ctx)
	if err != nil {
		return nil, err
	}
	opts := &trade.GetAccountBalance{
		Currency: trade.Currency(args.String("currency")),
	}
	return tc.AccountBalance(ctx, opts)
}

func handleStockPositions(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	tc, err := deps.Sessions.Trade(ctx)
	if err != nil {
		return nil, err
	}
	return tc.StockPositions(ctx, args.Strings("symbols"))
}

func handleTodayExecutions(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	tc, err := deps.Sessions.Trade(ctx)
	if err != nil {
		return nil, err
	}
	opts := &trade.GetTodayExecutions{
		Symbol:  args.String("symbol"),
		OrderId: args.String("order_id"),
	}
	return tc.TodayExecutions(ctx, opts)
}

func handleHistoryExecutions(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	tc, err := deps.Sessions.Trade(ctx)
	if err != nil {
		return nil, err
	}
	opts := &trade.GetHistoryExecutions{
		Symbol: args.String("symbol"),
	}
	if d, ok := args.Date("start_date"); ok {
		opts.StartAt = d.Time()
	}
	if d, ok := args.Date("end_date"); ok {
		opts.EndAt = d.Time()
	}
	return tc.HistoryExecutions(ctx, opts)
}
