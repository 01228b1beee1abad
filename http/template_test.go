package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/redefinechurch/kidzpolicy"
	kidzhttp "github.com/redefinechurch/kidzpolicy/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("fetches once and caches", func(t *testing.T) {
		t.Parallel()

		requests := 0
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			requests++
			_, _ = w.Write([]byte("<|system|>template body</|system|>"))
		}))
		defer srv.Close()

		l := kidzhttp.NewTemplateLoader(srv.URL)
		ctx := context.Background()

		first, err := l.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<|system|>template body</|system|>", first)

		second, err := l.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, requests)
	})

	t.Run("returns EUNAVAILABLE on non-200 responses", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		l := kidzhttp.NewTemplateLoader(srv.URL)

		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, kidzpolicy.EUNAVAILABLE, kidzpolicy.ErrorCode(err))
	})

	t.Run("a failed fetch is retried on the next load", func(t *testing.T) {
		t.Parallel()

		requests := 0
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			requests++
			if requests == 1 {
				w.WriteHeader(nethttp.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte("recovered"))
		}))
		defer srv.Close()

		l := kidzhttp.NewTemplateLoader(srv.URL)
		ctx := context.Background()

		_, err := l.Load(ctx)
		require.Error(t, err)

		body, err := l.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "recovered", body)
	})

	t.Run("returns EUNAVAILABLE when the server is unreachable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(nethttp.ResponseWriter, *nethttp.Request) {}))
		srv.Close()

		l := kidzhttp.NewTemplateLoader(srv.URL)

		_, err := l.Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, kidzpolicy.EUNAVAILABLE, kidzpolicy.ErrorCode(err))
	})
}
