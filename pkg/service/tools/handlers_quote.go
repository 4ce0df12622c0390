package tools

import (
	"context"

	"github.com/pkg/errors"

	"github.com/baranwang/mcp-longbridge/pkg/service/params"
)

// Quote-domain handlers. Each one issues exactly one backend request
// against the lazily constructed quote session.

func handleStaticInfo(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}
	return qc.StaticInfo(ctx, args.Strings("symbols"))
}

func handleQuote(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}
	return qc.Quote(ctx, args.Strings("symbols"))
}

func handleDepth(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}
	return qc.Depth(ctx, args.String("symbol"))
}

func handleCapitalFlow(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}
	return qc.CapitalFlow(ctx, args.String("symbol"))
}

func handleCapitalDistribution(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}
	return qc.CapitalDistribution(ctx, args.String("symbol"))
}

func handleCalcIndex(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	indexes, err := params.ParseCalcIndexes(args.Strings("indexes"))
	if err != nil {
		return nil, err
	}
	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}
	return qc.CalcIndex(ctx, args.Strings("symbols"), indexes)
}

func handleWatchList(ctx context.Context, deps ToolDependencies, _ params.Values) (interface{}, error) {
	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}
	return qc.WatchedGroups(ctx)
}

func handleHistoryCandlesticks(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error) {
	period, err := params.ParsePeriod(args.String("period"))
	if err != nil {
		return nil, err
	}
	adjustType, err := params.ParseAdjustType(args.String("adjust_type"))
	if err != nil {
		return nil, err
	}

	qc, err := deps.Sessions.Quote(ctx)
	if err != nil {
		return nil, err
	}

	symbol := args.String("symbol")
	// Exactly one backend operation runs, chosen by the query variant.
	switch q := args.CandlestickQuery().(type) {
	case params.DateRangeQuery:
		start, end := q.Start.Time(), q.End.Time()
		return qc.HistoryCandlesticksByDate(ctx, symbol, period, adjustType, &start, &end)
	case params.OffsetQuery:
		return qc.HistoryCandlesticksByOffset(ctx, symbol, period, adjustType, q.Forward, q.Anchor, int32(q.Count))
	default:
		return nil, errors.Errorf("history_candlesticks: no query built for query_type %q", args.String("query_type"))
	}
}
