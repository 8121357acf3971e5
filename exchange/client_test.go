package exchange_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaslrolim/financial-system/exchange"
)

func TestClient_Rates(t *testing.T) {
	t.Run("parses rates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.URL.Query().Get("access_key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"base":"EUR","rates":{"BRL":6.08,"USD":1.0912,"JPY":161}}`))
		}))
		defer srv.Close()

		c := exchange.NewClient(srv.URL, "secret", nil)
		rates, err := c.Rates(context.Background())
		require.NoError(t, err)
		require.Len(t, rates, 3)
		assert.Equal(t, decimal.MustParse("6.08"), rates["BRL"])
		assert.Equal(t, decimal.MustParse("1.0912"), rates["USD"])
		assert.Equal(t, decimal.MustParse("161"), rates["JPY"])
	})

	t.Run("no access key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("access_key"))
			_, _ = w.Write([]byte(`{"base":"EUR","rates":{}}`))
		}))
		defer srv.Close()

		c := exchange.NewClient(srv.URL, "", nil)
		rates, err := c.Rates(context.Background())
		require.NoError(t, err)
		assert.Empty(t, rates)
	})

	t.Run("unexpected status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := exchange.NewClient(srv.URL, "", nil)
		_, err := c.Rates(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"rates": "not a map"}`))
		}))
		defer srv.Close()

		c := exchange.NewClient(srv.URL, "", nil)
		_, err := c.Rates(context.Background())
		require.Error(t, err)
	})

	t.Run("context cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := exchange.NewClient(srv.URL, "", nil)
		_, err := c.Rates(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
