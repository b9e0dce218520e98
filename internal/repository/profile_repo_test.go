package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qrcode_admin_v1/internal/model"
)

const (
	shopA = "shop-a.myshopify.com"
	shopB = "shop-b.myshopify.com"
)

// ==================== 测试辅助 ====================

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	// :memory: 每个连接是独立的库
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func createProfile(t *testing.T, repo ProfileRepository, shop, name string) *model.Profile {
	p := &model.Profile{Shop: shop, Name: name, UtmSource: "src", UtmMedium: "med"}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

// ==================== 单元测试 ====================

func TestProfileRepo_CreateAndGet(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	p := createProfile(t, repo, shopA, "Spring")
	assert.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, shopA, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring", got.Name)
	assert.Equal(t, "src", got.UtmSource)

	// 其他店铺看不到
	_, err = repo.GetByID(ctx, shopB, p.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProfileRepo_ListByShop(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	first := createProfile(t, repo, shopA, "A1")
	createProfile(t, repo, shopB, "B1")
	second := createProfile(t, repo, shopA, "A2")

	list, err := repo.ListByShop(ctx, shopA)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, "A1", list[0].Name)
	assert.False(t, list[0].CreatedAt.IsZero())
	// 摘要查询不带 UTM 字段
	assert.Empty(t, list[0].UtmSource)
}

func TestProfileRepo_Update(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	p := createProfile(t, repo, shopA, "Old")

	p.Name = "New"
	p.UtmTerm = "term"
	n, err := repo.Update(ctx, p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, shopA, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "term", got.UtmTerm)
}

func TestProfileRepo_UpdateOtherShop(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	p := createProfile(t, repo, shopA, "Mine")

	n, err := repo.Update(ctx, &model.Profile{
		BaseModel: model.BaseModel{ID: p.ID},
		Shop:      shopB,
		Name:      "Hijacked",
	})
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := repo.GetByID(ctx, shopA, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Name)
}

func TestProfileRepo_DeleteByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	qrRepo := NewQRCodeRepository(db)
	ctx := context.Background()

	p1 := createProfile(t, repo, shopA, "P1")
	p2 := createProfile(t, repo, shopA, "P2")
	keep := createProfile(t, repo, shopA, "Keep")
	foreign := createProfile(t, repo, shopB, "Foreign")

	qr := &model.QRCode{Shop: shopA, Title: "T", Destination: model.DestinationProduct, ProfileID: &p1.ID}
	require.NoError(t, qrRepo.Create(ctx, qr))

	n, err := repo.DeleteByIDs(ctx, shopA, []int64{p1.ID, p2.ID, foreign.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := repo.ListByShop(ctx, shopA)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	_, err = repo.GetByID(ctx, shopB, foreign.ID)
	assert.NoError(t, err)

	// 二维码保留，profile 引用被置空或悬空
	got, err := qrRepo.GetByID(ctx, shopA, qr.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Profile)
	if got.ProfileID != nil {
		assert.Equal(t, p1.ID, *got.ProfileID)
	}
}

func TestProfileRepo_Delete(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	p := createProfile(t, repo, shopA, "P")

	n, err := repo.Delete(ctx, shopB, p.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, shopA, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.DeleteByIDs(ctx, shopA, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
