package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"qrcode_admin_v1/internal/model"
)

func TestShopSessionRepo_Upsert(t *testing.T) {
	repo := NewShopSessionRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.ShopSession{Shop: shopA, AccessToken: "tok-1", Scope: "read_products"}))
	require.NoError(t, repo.Upsert(ctx, &model.ShopSession{Shop: shopA, AccessToken: "tok-2", Scope: "read_products,write_products"}))

	got, err := repo.GetByShop(ctx, shopA)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.AccessToken)
	assert.Equal(t, "read_products,write_products", got.Scope)

	_, err = repo.GetByShop(ctx, shopB)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repo.Delete(ctx, shopA))
	_, err = repo.GetByShop(ctx, shopA)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
