// Package session owns the two long-lived backend handles, one for the
// quote domain and one for the trade domain. Both are created lazily on
// first use and live for the rest of the process; there is no teardown.
package session

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/baranwang/mcp-longbridge/pkg/api"
	"github.com/baranwang/mcp-longbridge/pkg/longbridge"
	"github.com/baranwang/mcp-longbridge/pkg/service/config"
)

// Constructor signatures, injectable so tests can count constructions and
// substitute fakes.
type (
	ConfigLoader     func() (*config.Config, error)
	QuoteConstructor func(ctx context.Context, cfg *config.Config) (api.QuoteSession, error)
	TradeConstructor func(ctx context.Context, cfg *config.Config) (api.TradeSession, error)
)

// Manager memoizes the configuration and the two session handles.
// Construction may block on the backend handshake, so concurrent first
// callers are collapsed through a singleflight group: they all wait on the
// one in-flight construction and receive the same handle. A failed
// construction is not cached and the next caller retries.
type Manager struct {
	loadConfig ConfigLoader
	newQuote   QuoteConstructor
	newTrade   TradeConstructor

	group singleflight.Group

	mu    sync.RWMutex
	cfg   *config.Config
	quote api.QuoteSession
	trade api.TradeSession
}

type Option func(*Manager)

func WithConfigLoader(load ConfigLoader) Option {
	return func(m *Manager) { m.loadConfig = load }
}

func WithQuoteConstructor(newQuote QuoteConstructor) Option {
	return func(m *Manager) { m.newQuote = newQuote }
}

func WithTradeConstructor(newTrade TradeConstructor) Option {
	return func(m *Manager) { m.newTrade = newTrade }
}

// NewManager creates a manager whose configuration comes from envFile plus
// the process environment, loaded on first session use.
func NewManager(envFile string, opts ...Option) *Manager {
	m := &Manager{
		loadConfig: func() (*config.Config, error) { return config.Load(envFile) },
		newQuote:   longbridge.NewQuoteSession,
		newTrade:   longbridge.NewTradeSession,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the memoized configuration, loading it on first call.
func (m *Manager) Config() (*config.Config, error) {
	m.mu.RLock()
	cfg := m.cfg
	m.mu.RUnlock()
	if cfg != nil {
		return cfg, nil
	}

	v, err, _ := m.group.Do("config", func() (interface{}, error) {
		cfg, err := m.loadConfig()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.cfg = cfg
		m.mu.Unlock()
		return cfg, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*config.Config), nil
}

// Quote returns the quote session, constructing it on first call.
func (m *Manager) Quote(ctx context.Context) (api.QuoteSession, error) {
	m.mu.RLock()
	s := m.quote
	m.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	v, err, _ := m.group.Do("quote", func() (interface{}, error) {
		cfg, err := m.Config()
		if err != nil {
			return nil, err
		}
		s, err := m.newQuote(ctx, cfg)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.quote = s
		m.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(api.QuoteSession), nil
}

// Trade returns the trade session, constructing it on first call.
func (m *Manager) Trade(ctx context.Context) (api.TradeSession, error) {
	m.mu.RLock()
	s := m.trade
	m.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	v, err, _ := m.group.Do("trade", func() (interface{}, error) {
		cfg, err := m.Config()
		if err != nil {
			return nil, err
		}
		s, err := m.newTrade(ctx, cfg)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.trade = s
		m.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(api.TradeSession), nil
}
