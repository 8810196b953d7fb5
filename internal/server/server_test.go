package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-backend/internal/client"
	"marketplace-backend/internal/dto"
	"marketplace-backend/internal/handler"
	"marketplace-backend/internal/middleware"
	"marketplace-backend/internal/model"
)

type stubVerifier struct {
	claims *client.Claims
	err    error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (*client.Claims, error) {
	return s.claims, s.err
}

type stubOrderService struct {
	called bool
}

func (s *stubOrderService) ImportByStatus(_ context.Context, status string) (*dto.ImportResult, error) {
	s.called = true
	return &dto.ImportResult{
		Message:     "ok",
		SavedOrders: []dto.SavedOrder{{ID: "local-1", OrderID: "1", Status: status}},
	}, nil
}

func (s *stubOrderService) ImportPaid(ctx context.Context) (*dto.ImportResult, error) {
	return s.ImportByStatus(ctx, "paid")
}

func (s *stubOrderService) FindAll(_ context.Context) ([]*model.ImportedOrder, error) {
	s.called = true
	return nil, nil
}

func (s *stubOrderService) FindByID(_ context.Context, _ string) (*model.ImportedOrder, error) {
	return nil, nil
}

func (s *stubOrderService) Update(_ context.Context, _ string, _ map[string]interface{}) (*model.ImportedOrder, error) {
	return nil, nil
}

func (s *stubOrderService) Delete(_ context.Context, _ string) error {
	return nil
}

func newTestServer(verifier client.TokenVerifier) (*Server, *stubOrderService) {
	orders := &stubOrderService{}
	handlers := Handlers{
		Order: handler.NewOrderHandler(orders),
	}
	return NewServer(handlers, middleware.NewAuthMiddleware(verifier)), orders
}

func TestGuardedRoute_NoAuthorizationHeader(t *testing.T) {
	srv, orders := newTestServer(&stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos/obtener-pagados", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// the handler never ran
	assert.False(t, orders.called)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing credential", body["message"])
}

func TestGuardedRoute_ExpiredCredential(t *testing.T) {
	verifier := &stubVerifier{claims: &client.Claims{
		Subject:   "user-1",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}}
	srv, orders := newTestServer(verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos/obtener-pagados", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, orders.called)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "credential expired", body["message"])
}

func TestGuardedRoute_ValidCredential(t *testing.T) {
	verifier := &stubVerifier{claims: &client.Claims{
		Subject:   "user-1",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}
	srv, orders := newTestServer(verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos/obtener-pagados", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, orders.called)

	var body dto.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.SavedOrders, 1)
	assert.Equal(t, "1", body.SavedOrders[0].OrderID)
}

func TestImportByStatus_InvalidStatusIsBadRequest(t *testing.T) {
	verifier := &stubVerifier{claims: &client.Claims{Subject: "user-1"}}
	srv, orders := newTestServer(verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos/obtener-por-estado/shipped", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, orders.called)
}
