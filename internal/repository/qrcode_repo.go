package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qrcode_admin_v1/internal/model"
)

// ==================== 接口定义 ====================

// QRCodeRepository 二维码仓储接口
type QRCodeRepository interface {
	Create(ctx context.Context, qr *model.QRCode) error
	Update(ctx context.Context, qr *model.QRCode) (int64, error)
	GetByID(ctx context.Context, shop string, id int64) (*model.QRCode, error)
	ListByShop(ctx context.Context, shop string) ([]model.QRCode, error)
	Delete(ctx context.Context, shop string, id int64) (int64, error)
	DeleteByIDs(ctx context.Context, shop string, ids []int64) (int64, error)

	// 公开扫码入口：没有店铺会话，按 id 直接定位
	FindForScan(ctx context.Context, id int64) (*model.QRCode, error)
	IncrementScans(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

type qrCodeRepo struct {
	db *gorm.DB
}

// NewQRCodeRepository 创建二维码仓储
func NewQRCodeRepository(db *gorm.DB) QRCodeRepository {
	return &qrCodeRepo{db: db}
}

// preloadProfile 只加载同店铺的 Profile
func preloadProfile(shop string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("shop = ?", shop)
	}
}

func (r *qrCodeRepo) Create(ctx context.Context, qr *model.QRCode) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(qr).Error
}

func (r *qrCodeRepo) Update(ctx context.Context, qr *model.QRCode) (int64, error) {
	// scans 只由扫码入口累加
	result := r.db.WithContext(ctx).
		Model(qr).
		Where("shop = ?", qr.Shop).
		Select("*").
		Omit("id", "shop", "created_at", "scans", clause.Associations).
		Updates(qr)
	return result.RowsAffected, result.Error
}

func (r *qrCodeRepo) GetByID(ctx context.Context, shop string, id int64) (*model.QRCode, error) {
	var qr model.QRCode
	if err := r.db.WithContext(ctx).
		Preload("Profile", preloadProfile(shop)).
		Where("shop = ?", shop).
		First(&qr, id).Error; err != nil {
		return nil, err
	}
	return &qr, nil
}

// ListByShop 按 id 倒序
func (r *qrCodeRepo) ListByShop(ctx context.Context, shop string) ([]model.QRCode, error) {
	var list []model.QRCode
	err := r.db.WithContext(ctx).
		Preload("Profile", preloadProfile(shop)).
		Where("shop = ?", shop).
		Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *qrCodeRepo) Delete(ctx context.Context, shop string, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("shop = ? AND id = ?", shop, id).
		Delete(&model.QRCode{})
	return result.RowsAffected, result.Error
}

func (r *qrCodeRepo) DeleteByIDs(ctx context.Context, shop string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("shop = ? AND id IN ?", shop, ids).
		Delete(&model.QRCode{})
	return result.RowsAffected, result.Error
}

func (r *qrCodeRepo) FindForScan(ctx context.Context, id int64) (*model.QRCode, error) {
	var qr model.QRCode
	if err := r.db.WithContext(ctx).First(&qr, id).Error; err != nil {
		return nil, err
	}
	if qr.ProfileID != nil {
		var profile model.Profile
		err := r.db.WithContext(ctx).
			Where("shop = ?", qr.Shop).
			Take(&profile, *qr.ProfileID).Error
		switch {
		case err == nil:
			qr.Profile = &profile
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}
	return &qr, nil
}

func (r *qrCodeRepo) IncrementScans(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.QRCode{}).
		Where("id = ?", id).
		UpdateColumn("scans", gorm.Expr("scans + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
