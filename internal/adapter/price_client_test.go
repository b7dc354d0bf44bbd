package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceAdapter_USDPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "demo-key", r.Header.Get(headerPriceAPIKey))
		_, _ = w.Write([]byte(`{"ethereum":{"usd":3251.07}}`))
	}))
	defer srv.Close()

	p := NewPriceAdapter(PriceClientConfig{BaseURL: srv.URL, APIKey: "demo-key"})

	price, err := p.USDPrice(context.Background(), "ethereum")
	require.NoError(t, err)
	assert.InDelta(t, 3251.07, price, 1e-9)
}

func TestPriceAdapter_UnknownID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewPriceAdapter(PriceClientConfig{BaseURL: srv.URL})

	_, err := p.USDPrice(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPriceNotFound)
}

func TestPriceAdapter_RequireKey(t *testing.T) {
	p := NewPriceAdapter(PriceClientConfig{BaseURL: "http://127.0.0.1:1", RequireKey: true})

	_, err := p.USDPrice(context.Background(), "ethereum")
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}

func TestPriceAdapter_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ethereum":`))
	}))
	defer srv.Close()

	p := NewPriceAdapter(PriceClientConfig{BaseURL: srv.URL})

	_, err := p.USDPrice(context.Background(), "ethereum")
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, `{"ethereum":`, string(decodeErr.Body))
}

func TestPriceAdapter_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewPriceAdapter(PriceClientConfig{BaseURL: srv.URL, APIKey: "x"})

	_, err := p.USDPrice(context.Background(), "ethereum")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPriceAdapter_RateLimiterHonoursContext(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"ethereum":{"usd":1}}`))
	}))
	defer srv.Close()

	p := NewPriceAdapter(PriceClientConfig{BaseURL: srv.URL, MinInterval: 1 << 40})

	_, err := p.USDPrice(context.Background(), "ethereum")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.USDPrice(ctx, "ethereum")
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
