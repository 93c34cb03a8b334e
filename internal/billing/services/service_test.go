package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procura/billing/internal/platform/httpx"
)

func TestServiceCatalogue(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateOfferingRequest{Type: "Installation", OriginalCost: 250})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateOfferingRequest{Type: "Support", OriginalCost: 99, HSN: "9987"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "9987", second.HSN)

	require.NoError(t, svc.Delete(ctx, first.ID))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Support", list[0].Type)

	third, err := svc.Create(ctx, CreateOfferingRequest{Type: "Training", OriginalCost: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestServiceCatalogueErrors(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateOfferingRequest{Type: "Installation"})
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "Type and original_cost are required", httpx.Message(err, httpx.ErrValidation))

	err = svc.Delete(ctx, 5)
	require.ErrorIs(t, err, httpx.ErrNotFound)
	assert.Equal(t, "Service not found", httpx.Message(err, httpx.ErrNotFound))
}
