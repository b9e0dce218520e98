package repository

import (
	"context"

	"gorm.io/gorm"

	"qrcode_admin_v1/internal/model"
)

// ==================== 接口定义 ====================

// ProfileRepository UTM Profile 仓储接口
// 所有方法都按店铺过滤
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	// Update 只更新本店铺的行，返回命中行数 (0 表示不存在或不属于该店铺)
	Update(ctx context.Context, profile *model.Profile) (int64, error)
	GetByID(ctx context.Context, shop string, id int64) (*model.Profile, error)
	ListByShop(ctx context.Context, shop string) ([]model.Profile, error)

	// 删除，返回实际删除行数
	Delete(ctx context.Context, shop string, id int64) (int64, error)
	DeleteByIDs(ctx context.Context, shop string, ids []int64) (int64, error)
}

// ==================== 仓储实现 ====================

type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepository 创建 Profile 仓储
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepo) Update(ctx context.Context, profile *model.Profile) (int64, error) {
	// 不用 Save：命中 0 行时 Save 会退化成 upsert
	result := r.db.WithContext(ctx).
		Model(profile).
		Where("shop = ?", profile.Shop).
		Select("*").
		Omit("id", "shop", "created_at").
		Updates(profile)
	return result.RowsAffected, result.Error
}

func (r *profileRepo) GetByID(ctx context.Context, shop string, id int64) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).
		Where("shop = ?", shop).
		First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListByShop 列表只取摘要字段，按 id 升序
func (r *profileRepo) ListByShop(ctx context.Context, shop string) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Select("id", "name", "created_at", "updated_at").
		Where("shop = ?", shop).
		Order("id ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepo) Delete(ctx context.Context, shop string, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("shop = ? AND id = ?", shop, id).
		Delete(&model.Profile{})
	return result.RowsAffected, result.Error
}

func (r *profileRepo) DeleteByIDs(ctx context.Context, shop string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("shop = ? AND id IN ?", shop, ids).
		Delete(&model.Profile{})
	return result.RowsAffected, result.Error
}
