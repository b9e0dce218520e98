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

func createQRCode(t *testing.T, repo QRCodeRepository, shop, title string) *model.QRCode {
	qr := &model.QRCode{
		Shop:             shop,
		Title:            title,
		ProductID:        "gid://shopify/Product/1",
		ProductHandle:    "tee",
		ProductVariantID: "gid://shopify/ProductVariant/11",
		Destination:      model.DestinationCart,
	}
	require.NoError(t, repo.Create(context.Background(), qr))
	return qr
}

func TestQRCodeRepo_GetByID_PreloadsProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQRCodeRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	p := createProfile(t, profiles, shopA, "UTM")
	qr := &model.QRCode{Shop: shopA, Title: "With profile", Destination: model.DestinationProduct, ProfileID: &p.ID}
	require.NoError(t, repo.Create(ctx, qr))

	got, err := repo.GetByID(ctx, shopA, qr.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "UTM", got.Profile.Name)
	assert.Zero(t, got.Scans)

	_, err = repo.GetByID(ctx, shopB, qr.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestQRCodeRepo_GetByID_ForeignProfileDropped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQRCodeRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	foreign := createProfile(t, profiles, shopB, "Other shop")
	qr := &model.QRCode{Shop: shopA, Title: "T", Destination: model.DestinationProduct, ProfileID: &foreign.ID}
	require.NoError(t, repo.Create(ctx, qr))

	got, err := repo.GetByID(ctx, shopA, qr.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Profile)
}

func TestQRCodeRepo_ListByShop(t *testing.T) {
	repo := NewQRCodeRepository(setupTestDB(t))
	ctx := context.Background()

	first := createQRCode(t, repo, shopA, "first")
	createQRCode(t, repo, shopB, "other")
	second := createQRCode(t, repo, shopA, "second")

	list, err := repo.ListByShop(ctx, shopA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestQRCodeRepo_Update(t *testing.T) {
	repo := NewQRCodeRepository(setupTestDB(t))
	ctx := context.Background()

	qr := createQRCode(t, repo, shopA, "before")
	require.NoError(t, repo.IncrementScans(ctx, qr.ID))

	qr.Title = "after"
	qr.Destination = model.DestinationProduct
	qr.Scans = 0
	n, err := repo.Update(ctx, qr)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, shopA, qr.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, model.DestinationProduct, got.Destination)
	// scans 不被表单覆盖
	assert.Equal(t, 1, got.Scans)

	qr.Shop = shopB
	n, err = repo.Update(ctx, qr)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQRCodeRepo_Delete(t *testing.T) {
	repo := NewQRCodeRepository(setupTestDB(t))
	ctx := context.Background()

	a1 := createQRCode(t, repo, shopA, "a1")
	a2 := createQRCode(t, repo, shopA, "a2")
	b1 := createQRCode(t, repo, shopB, "b1")

	n, err := repo.DeleteByIDs(ctx, shopA, []int64{a1.ID, b1.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Delete(ctx, shopB, a2.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, shopA, a2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	list, err := repo.ListByShop(ctx, shopB)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestQRCodeRepo_Scan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQRCodeRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	p := createProfile(t, profiles, shopA, "UTM")
	qr := &model.QRCode{Shop: shopA, Title: "T", Destination: model.DestinationProduct, ProductHandle: "h", ProfileID: &p.ID}
	require.NoError(t, repo.Create(ctx, qr))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementScans(ctx, qr.ID))
	}

	got, err := repo.FindForScan(ctx, qr.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Scans)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "src", got.Profile.UtmSource)

	err = repo.IncrementScans(ctx, qr.ID+100)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindForScan(ctx, qr.ID+100)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestQRCodeRepo_FindForScan_DanglingProfile(t *testing.T) {
	repo := NewQRCodeRepository(setupTestDB(t))
	ctx := context.Background()

	missing := int64(999)
	qr := &model.QRCode{Shop: shopA, Title: "T", Destination: model.DestinationProduct, ProfileID: &missing}
	require.NoError(t, repo.Create(ctx, qr))

	got, err := repo.FindForScan(ctx, qr.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Profile)
}
