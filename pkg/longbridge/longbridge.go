// Package longbridge constructs the longport SDK contexts from the
// server configuration.
package longbridge

import (
	"context"

	lbconfig "github.com/longportapp/openapi-go/config"
	"github.com/longportapp/openapi-go/quote"
	"github.com/longportapp/openapi-go/trade"
	"github.com/pkg/errors"

	"github.com/baranwang/mcp-longbridge/pkg/api"
	"github.com/baranwang/mcp-longbridge/pkg/service/config"
)

// The SDK contexts satisfy the session interfaces structurally; these
// assertions catch any drift between the two method sets at compile time.
var (
	_ api.QuoteSession = (*quote.QuoteContext)(nil)
	_ api.TradeSession = (*trade.TradeContext)(nil)
)

// sdkConfig builds the SDK configuration, taking endpoint defaults from
// the SDK itself and credentials from the already-validated server config.
func sdkConfig(cfg *config.Config) (*lbconfig.Config, error) {
	c, err := lbconfig.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build longport config")
	}
	c.AppKey = cfg.AppKey
	c.AppSecret = cfg.AppSecret
	c.AccessToken = cfg.AccessToken
	return c, nil
}

// NewQuoteSession opens a quote context. Construction performs the
// backend handshake and may block until it completes.
func NewQuoteSession(_ context.Context, cfg *config.Config) (api.QuoteSession, error) {
	c, err := sdkConfig(cfg)
	if err != nil {
		return nil, err
	}
	qc, err := quote.NewFromCfg(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create quote context")
	}
	return qc, nil
}

// NewTradeSession opens a trade context.
func NewTradeSession(_ context.Context, cfg *config.Config) (api.TradeSession, error) {
	c, err := sdkConfig(cfg)
	if err != nil {
		return nil, err
	}
	tc, err := trade.NewFromCfg(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create trade context")
	}
	return tc, nil
}
