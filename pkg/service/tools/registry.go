package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/baranwang/mcp-longbridge/pkg/service/params"
)

// All tool configurations in a single table. The table is built once and
// never mutated; it backs both the advertised catalog and the dispatch
// lookup.
var toolConfigs = []ToolConfig{
	// Trade domain
	{
		Name:        "account_balance",
		Description: "Get account cash balances, optionally filtered to one currency",
		Category:    CategoryTrade,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "currency", Type: params.TypeEnum, Enum: params.CurrencyCodes(),
					Description: "Restrict the result to one currency"},
			},
		},
		Handler: handleAccountBalance,
	},
	{
		Name:        "stock_positions",
		Description: "Get current stock positions, optionally filtered by symbols",
		Category:    CategoryTrade,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbols", Type: params.TypeSymbolList,
					Description: "Symbols to filter by, e.g. [\"700.HK\", \"AAPL.US\"]"},
			},
		},
		Handler: handleStockPositions,
	},
	{
		Name:        "today_executions",
		Description: "Get today's trade executions, optionally filtered by symbol or order id",
		Category:    CategoryTrade,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbol", Type: params.TypeSymbol, Description: "Security symbol, e.g. 700.HK"},
				{Name: "order_id", Type: params.TypeString, Description: "Restrict to one order"},
			},
		},
		Handler: handleTodayExecutions,
	},
	{
		Name:        "history_executions",
		Description: "Get historical trade executions, optionally filtered by symbol and date range",
		Category:    CategoryTrade,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbol", Type: params.TypeSymbol, Description: "Security symbol, e.g. 700.HK"},
				{Name: "start_date", Type: params.TypeDate, Description: "Range start, YYYYMMDD"},
				{Name: "end_date", Type: params.TypeDate, Description: "Range end, YYYYMMDD"},
			},
		},
		Handler: handleHistoryExecutions,
	},

	// Quote domain
	{
		Name:        "static_info",
		Description: "Get basic security information for the given symbols",
		Category:    CategoryQuote,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbols", Type: params.TypeSymbolList, Required: true,
					Description: "Security symbols, e.g. [\"700.HK\", \"AAPL.US\"]"},
			},
		},
		Handler: handleStaticInfo,
	},
	{
		Name:        "quote",
		Description: "Get real-time quotes for the given symbols",
		Category:    CategoryQuote,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbols", Type: params.TypeSymbolList, Required: true,
					Description: "Security symbols, e.g. [\"700.HK\", \"AAPL.US\"]"},
			},
		},
		Handler: handleQuote,
	},
	{
		Name:        "depth",
		Description: "Get the order book depth for one symbol",
		Category:    CategoryQuote,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbol", Type: params.TypeSymbol, Required: true,
					Description: "Security symbol, e.g. 700.HK"},
			},
		},
		Handler: handleDepth,
	},
	{
		Name:        "capital_flow",
		Description: "Get today's intraday capital flow for one symbol",
		Category:    CategoryQuote,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbol", Type: params.TypeSymbol, Required: true,
					Description: "Security symbol, e.g. 700.HK"},
			},
		},
		Handler: handleCapitalFlow,
	},
	{
		Name:        "capital_distribution",
		Description: "Get today's capital distribution for one symbol",
		Category:    CategoryQuote,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbol", Type: params.TypeSymbol, Required: true,
					Description: "Security symbol, e.g. 700.HK"},
			},
		},
		Handler: handleCapitalDistribution,
	},
	{
		Name:        "calc_index",
		Description: "Get computed indexes (valuation, momentum, liquidity) for the given symbols",
		Category:    CategoryQuote,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbols", Type: params.TypeSymbolList, Required: true,
					Description: "Security symbols, e.g. [\"700.HK\", \"AAPL.US\"]"},
				{Name: "indexes", Type: params.TypeEnumList, Required: true,
					Enum: params.CalcIndexCodes(), Max: len(params.CalcIndexCodes()),
					Description: "Index codes to compute"},
			},
		},
		Handler: handleCalcIndex,
	},
	{
		Name:        "watch_list",
		Description: "Get the account's watch list groups and securities",
		Category:    CategoryQuote,
		Params:      params.Spec{},
		Handler:     handleWatchList,
	},
	{
		Name:        "history_candlesticks",
		Description: "Get history candlesticks by absolute date range or by offset from an anchor",
		Category:    CategoryQuote,
		Params: params.Spec{
			Fields: []params.Field{
				{Name: "symbol", Type: params.TypeSymbol, Required: true,
					Description: "Security symbol, e.g. 700.HK"},
				{Name: "period", Type: params.TypeEnum, Required: true, Enum: params.PeriodCodes(),
					Description: "Candlestick period"},
				{Name: "adjust_type", Type: params.TypeEnum, Enum: params.AdjustTypeCodes(),
					Default: "no_adjust", Description: "Price adjustment"},
				{Name: "query_type", Type: params.TypeEnum, Required: true,
					Enum: []string{params.QueryByDateRange, params.QueryByOffset},
					Description: "Addressing mode: date_range requires start_date/end_date, offset requires direction"},
				{Name: "start_date", Type: params.TypeDate, Description: "Range start, YYYYMMDD (date_range mode)"},
				{Name: "end_date", Type: params.TypeDate, Description: "Range end, YYYYMMDD (date_range mode)"},
				{Name: "direction", Type: params.TypeEnum,
					Enum:        []string{params.DirectionForward, params.DirectionBackward},
					Description: "Offset direction: forward = newer data, backward = older data (offset mode)"},
				{Name: "anchor_date", Type: params.TypeDate,
					Description: "Anchor date, YYYYMMDD; omit for latest (offset mode)"},
				{Name: "anchor_time", Type: params.TypeTime,
					Description: "Anchor time, HHMM or HHMMSS; defaults to midnight (offset mode)"},
				{Name: "count", Type: params.TypeInt, Min: 1, Max: 1000, Default: 10,
					Description: "Number of candlesticks to return (offset mode)"},
			},
			Refine: params.RefineCandlestickQuery,
		},
		Handler: handleHistoryCandlesticks,
	},
}

// GetToolConfigs returns the full catalog.
func GetToolConfigs() []ToolConfig {
	return toolConfigs
}

// GetToolConfig returns a tool by name, or *UnknownToolError.
func GetToolConfig(name string) (*ToolConfig, error) {
	for i := range toolConfigs {
		if toolConfigs[i].Name == name {
			return &toolConfigs[i], nil
		}
	}
	return nil, &UnknownToolError{Name: name}
}

// BuildToolSchema creates the MCP input schema for a tool from its
// parameter spec, so the advertised schema and the validator cannot
// disagree.
func BuildToolSchema(config ToolConfig) mcp.ToolInputSchema {
	properties, required := config.Params.Schema()
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
