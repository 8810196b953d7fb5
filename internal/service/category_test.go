package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-backend/internal/apperr"
)

func TestCategorySync_InsertsAndUpdates(t *testing.T) {
	storefront := &fakeStorefront{categories: []json.RawMessage{
		json.RawMessage(`{"category": {"id": 10, "name": "Gasfitería", "permalink": "gasfiteria", "products": [{"id": 1}]}}`),
		json.RawMessage(`{"id": 11, "name": "Pintura", "permalink": "pintura"}`),
	}}
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(storefront, repo, zap.NewNop().Sugar())

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.New)
	assert.Equal(t, 0, result.Stats.Updated)
	require.Len(t, repo.categories, 2)

	// a second run updates in place instead of duplicating
	result, err = svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.New)
	assert.Equal(t, 2, result.Stats.Updated)
	assert.Len(t, repo.categories, 2)
}

func TestCategorySync_SkipsElementWithoutID(t *testing.T) {
	storefront := &fakeStorefront{categories: []json.RawMessage{
		json.RawMessage(`{"name": "sin id"}`),
		json.RawMessage(`{"id": 12, "name": "Jardinería"}`),
	}}
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(storefront, repo, zap.NewNop().Sugar())

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.New)
	require.Len(t, repo.categories, 1)
	assert.Equal(t, "12", repo.categories[0].ProviderID)
}

func TestCategorySync_UpstreamFailure(t *testing.T) {
	storefront := &fakeStorefront{err: apperr.Upstream("invalid response format from storefront API", nil)}
	svc := NewCategoryService(storefront, &fakeCategoryRepo{}, zap.NewNop().Sugar())

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestCategoryFindByID_NotFound(t *testing.T) {
	svc := NewCategoryService(&fakeStorefront{}, &fakeCategoryRepo{}, zap.NewNop().Sugar())

	_, err := svc.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
