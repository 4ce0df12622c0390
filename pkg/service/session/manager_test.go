package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baranwang/mcp-longbridge/pkg/api"
	"github.com/baranwang/mcp-longbridge/pkg/service/config"

	"github.com/longportapp/openapi-go/quote"
	"github.com/longportapp/openapi-go/trade"
)

// stubQuoteSession satisfies api.QuoteSession; the manager never calls
// through it.
type stubQuoteSession struct{ id int }

func (s *stubQuoteSession) StaticInfo(context.Context, []string) ([]*quote.StaticInfo, error) {
	return nil, nil
}
func (s *stubQuoteSession) Quote(context.Context, []string) ([]*quote.SecurityQuote, error) {
	return nil, nil
}
func (s *stubQuoteSession) Depth(context.Context, string) (*quote.SecurityDepth, error) {
	return nil, nil
}
func (s *stubQuoteSession) CapitalFlow(context.Context, string) ([]quote.CapitalFlowLine, error) {
	return nil, nil
}
func (s *stubQuoteSession) CapitalDistribution(context.Context, string) (quote.CapitalDistribution, error) {
	return quote.CapitalDistribution{}, nil
}
func (s *stubQuoteSession) CalcIndex(context.Context, []string, []quote.CalcIndex) ([]*quote.SecurityCalcIndex, error) {
	return nil, nil
}
func (s *stubQuoteSession) WatchedGroups(context.Context) ([]*quote.WatchedGroup, error) {
	return nil, nil
}
func (s *stubQuoteSession) HistoryCandlesticksByDate(context.Context, string, quote.Period, quote.AdjustType, *time.Time, *time.Time) ([]*quote.Candlestick, error) {
	return nil, nil
}
func (s *stubQuoteSession) HistoryCandlesticksByOffset(context.Context, string, quote.Period, quote.AdjustType, bool, *time.Time, int32) ([]*quote.Candlestick, error) {
	return nil, nil
}

type stubTradeSession struct{ id int }

func (s *stubTradeSession) AccountBalance(context.Context, *trade.GetAccountBalance) ([]*trade.AccountBalance, error) {
	return nil, nil
}
func (s *stubTradeSession) StockPositions(context.Context, []string) ([]*trade.StockPositionChannel, error) {
	return nil, nil
}
func (s *stubTradeSession) TodayExecutions(context.Context, *trade.GetTodayExecutions) ([]*trade.Execution, error) {
	return nil, nil
}
func (s *stubTradeSession) HistoryExecutions(context.Context, *trade.GetHistoryExecutions) ([]*trade.Execution, error) {
	return nil, nil
}

func testConfigLoader() ConfigLoader {
	return func() (*config.Config, error) {
		return &config.Config{AppKey: "k", AppSecret: "s", AccessToken: "t", LogLevel: "info"}, nil
	}
}

func TestManagerQuoteConstructedOnce(t *testing.T) {
	var constructions atomic.Int32
	m := NewManager("",
		WithConfigLoader(testConfigLoader()),
		WithQuoteConstructor(func(ctx context.Context, cfg *config.Config) (api.QuoteSession, error) {
			// Widen the first-call window so concurrent callers overlap
			// the in-flight construction.
			time.Sleep(20 * time.Millisecond)
			n := constructions.Add(1)
			return &stubQuoteSession{id: int(n)}, nil
		}))

	const callers = 16
	sessions := make([]api.QuoteSession, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i], errs[i] = m.Quote(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, int32(1), constructions.Load())
	for i := 1; i < callers; i++ {
		assert.Same(t, sessions[0], sessions[i])
	}

	// Later calls hit the cache.
	s, err := m.Quote(context.Background())
	require.NoError(t, err)
	assert.Same(t, sessions[0], s)
	assert.Equal(t, int32(1), constructions.Load())
}

func TestManagerFailedConstructionIsRetried(t *testing.T) {
	var attempts atomic.Int32
	m := NewManager("",
		WithConfigLoader(testConfigLoader()),
		WithQuoteConstructor(func(ctx context.Context, cfg *config.Config) (api.QuoteSession, error) {
			if attempts.Add(1) == 1 {
				return nil, errors.New("handshake failed")
			}
			return &stubQuoteSession{}, nil
		}))

	_, err := m.Quote(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handshake failed")

	s, err := m.Quote(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestManagerConfigErrorSurfacesFromSessions(t *testing.T) {
	m := NewManager("",
		WithConfigLoader(func() (*config.Config, error) {
			return nil, errors.New("LONGPORT_APP_KEY is required")
		}),
		WithQuoteConstructor(func(ctx context.Context, cfg *config.Config) (api.QuoteSession, error) {
			t.Fatal("constructor must not run without configuration")
			return nil, nil
		}))

	_, err := m.Quote(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LONGPORT_APP_KEY")
}

func TestManagerQuoteAndTradeAreIndependent(t *testing.T) {
	var quoteCount, tradeCount atomic.Int32
	m := NewManager("",
		WithConfigLoader(testConfigLoader()),
		WithQuoteConstructor(func(ctx context.Context, cfg *config.Config) (api.QuoteSession, error) {
			quoteCount.Add(1)
			return &stubQuoteSession{}, nil
		}),
		WithTradeConstructor(func(ctx context.Context, cfg *config.Config) (api.TradeSession, error) {
			tradeCount.Add(1)
			return &stubTradeSession{}, nil
		}))

	_, err := m.Trade(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(0), quoteCount.Load())
	assert.Equal(t, int32(1), tradeCount.Load())

	_, err = m.Quote(context.Background())
	require.NoError(t, err)
	_, err = m.Trade(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), quoteCount.Load())
	assert.Equal(t, int32(1), tradeCount.Load())
}

func TestManagerConfigMemoized(t *testing.T) {
	var loads atomic.Int32
	m := NewManager("", WithConfigLoader(func() (*config.Config, error) {
		loads.Add(1)
		return &config.Config{AppKey: "k", AppSecret: "s", AccessToken: "t", LogLevel: "info"}, nil
	}))

	first, err := m.Config()
	require.NoError(t, err)
	second, err := m.Config()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), loads.Load())
}
