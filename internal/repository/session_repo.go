package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qrcode_admin_v1/internal/model"
)

// ShopSessionRepository 店铺离线 Token 仓储
type ShopSessionRepository interface {
	Upsert(ctx context.Context, session *model.ShopSession) error
	GetByShop(ctx context.Context, shop string) (*model.ShopSession, error)
	Delete(ctx context.Context, shop string) error
}

type shopSessionRepo struct {
	db *gorm.DB
}

func NewShopSessionRepository(db *gorm.DB) ShopSessionRepository {
	return &shopSessionRepo{db: db}
}

// Upsert 按 shop 唯一键覆盖 token 和 scope
func (r *shopSessionRepo) Upsert(ctx context.Context, session *model.ShopSession) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop"}},
			DoUpdates: clause.AssignmentColumns([]string{"access_token", "scope", "updated_at"}),
		}).
		Create(session).Error
}

func (r *shopSessionRepo) GetByShop(ctx context.Context, shop string) (*model.ShopSession, error) {
	var session model.ShopSession
	if err := r.db.WithContext(ctx).
		Where("shop = ?", shop).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *shopSessionRepo) Delete(ctx context.Context, shop string) error {
	return r.db.WithContext(ctx).
		Where("shop = ?", shop).
		Delete(&model.ShopSession{}).Error
}
