package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrcode_admin_v1/internal/repository"
	"qrcode_admin_v1/pkg/shopify"
)

func TestShopifyCatalogProvider_ForShop(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	provider := NewShopifyCatalogProvider(repository.NewShopSessionRepository(svc.db), shopify.Config{})

	_, err := provider.ForShop(ctx, testShop)
	assert.True(t, errors.Is(err, ErrNoSession))

	_, err = svc.sessions.Put(ctx, testShop, "shpat_abc", "read_products")
	require.NoError(t, err)

	catalog, err := provider.ForShop(ctx, testShop)
	require.NoError(t, err)
	assert.IsType(t, &shopify.Client{}, catalog)
}

func TestSessionService_Put(t *testing.T) {
	s := setupServices(t).sessions
	ctx := context.Background()

	_, err := s.Put(ctx, "shop.example.com", "tok", "")
	_, ok := AsValidationError(err)
	assert.True(t, ok)

	_, err = s.Put(ctx, testShop, " ", "")
	_, ok = AsValidationError(err)
	assert.True(t, ok)

	session, err := s.Put(ctx, " Demo.MyShopify.com ", "tok", "read_products")
	require.NoError(t, err)
	assert.Equal(t, testShop, session.Shop)
}
