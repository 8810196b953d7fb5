package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/config"
)

func newTestClient(baseURL string) StorefrontClient {
	return NewStorefrontClient(&config.Storefront{
		BaseAPIURL: baseURL,
		Login:      "tienda@example.com",
		AuthToken:  "secret-token",
	})
}

func TestFetchOrdersByStatus_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/orders/status/paid.json" {
			t.Fatalf("path = %s, want /orders/status/paid.json", r.URL.Path)
		}
		if r.URL.Query().Get("login") != "tienda@example.com" {
			t.Fatalf("missing login query param")
		}
		if r.URL.Query().Get("authtoken") != "secret-token" {
			t.Fatalf("missing authtoken query param")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "status": "paid"}, {"order": {"id": 2, "status": "paid"}}]`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	elements, err := newTestClient(ts.URL).FetchOrdersByStatus(ctx, "paid")
	require.NoError(t, err)
	assert.Len(t, elements, 2)
}

func TestFetchOrdersByStatus_NonArrayPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).FetchOrdersByStatus(context.Background(), "paid")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestFetchOrdersByStatus_NullPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer ts.Close()

	elements, err := newTestClient(ts.URL).FetchOrdersByStatus(context.Background(), "paid")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	assert.Nil(t, elements)
}

func TestFetchOrdersByStatus_EmptyFeed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	elements, err := newTestClient(ts.URL).FetchOrdersByStatus(context.Background(), "paid")
	require.NoError(t, err)
	assert.Empty(t, elements)
}

func TestFetchOrdersByStatus_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).FetchOrdersByStatus(context.Background(), "paid")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestFetchCategories_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/categories.json" {
			t.Fatalf("path = %s, want /categories.json", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"category": {"id": 10, "name": "Gasfitería"}}]`))
	}))
	defer ts.Close()

	elements, err := newTestClient(ts.URL).FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, elements, 1)
}

func TestUnwrapOrder(t *testing.T) {
	inner := `{"id": "7", "status": "paid", "total": 990.5}`

	order, raw, err := UnwrapOrder(json.RawMessage(`{"order": ` + inner + `}`))
	require.NoError(t, err)
	assert.Equal(t, "7", order.ID.String())
	assert.JSONEq(t, inner, string(raw))

	order, raw, err = UnwrapOrder(json.RawMessage(inner))
	require.NoError(t, err)
	assert.Equal(t, "7", order.ID.String())
	assert.Equal(t, 990.5, order.Total)
	assert.JSONEq(t, inner, string(raw))
}

func TestUnwrapOrder_MissingID(t *testing.T) {
	order, _, err := UnwrapOrder(json.RawMessage(`{"status": "paid"}`))
	require.NoError(t, err)
	assert.Equal(t, "", order.ID.String())
}

func TestUnwrapCategory(t *testing.T) {
	category, err := UnwrapCategory(json.RawMessage(`{"category": {"id": 3, "name": "Pintura", "products": [{"id": 8, "name": "Pintura interior"}]}}`))
	require.NoError(t, err)
	assert.Equal(t, "3", category.ID.String())
	assert.Equal(t, "Pintura", category.Name)
	require.Len(t, category.Products, 1)
	assert.Equal(t, int64(8), category.Products[0].ID)
}
