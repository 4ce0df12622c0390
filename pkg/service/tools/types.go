// Package tools holds the tool registry, the dispatcher, and the handlers
// that bridge validated requests to the brokerage backend.
package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baranwang/mcp-longbridge/pkg/api"
	"github.com/baranwang/mcp-longbridge/pkg/service/params"
)

// Category groups tools by the backend session they need.
type Category string

const (
	CategoryQuote Category = "quote"
	CategoryTrade Category = "trade"
)

// SessionProvider hands out the lazily constructed backend sessions.
// Implemented by *session.Manager.
type SessionProvider interface {
	Quote(ctx context.Context) (api.QuoteSession, error)
	Trade(ctx context.Context) (api.TradeSession, error)
}

// ToolDependencies carries everything a handler may need.
type ToolDependencies struct {
	Sessions SessionProvider
	Logger   *slog.Logger
}

// HandlerFunc runs one validated tool invocation. The returned value is a
// single item or a slice; the envelope builder serializes either shape.
type HandlerFunc func(ctx context.Context, deps ToolDependencies, args params.Values) (interface{}, error)

// ToolConfig describes one registered tool: catalog identity, parameter
// specification, and handler.
type ToolConfig struct {
	Name        string
	Description string
	Category    Category
	Params      params.Spec
	Handler     HandlerFunc
}

// UnknownToolError reports a call to a name outside the registry. It is
// rendered through the same error envelope as a validation failure.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}
