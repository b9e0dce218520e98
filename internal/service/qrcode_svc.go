package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"qrcode_admin_v1/internal/api/dto"
	"qrcode_admin_v1/internal/model"
	"qrcode_admin_v1/internal/repository"
)

// QRCodeService 二维码增删改查与扫码计数
type QRCodeService struct {
	QRCodeRepo  repository.QRCodeRepository
	ProfileRepo repository.ProfileRepository
	log         *zap.Logger
}

func NewQRCodeService(qrRepo repository.QRCodeRepository, profileRepo repository.ProfileRepository, log *zap.Logger) *QRCodeService {
	return &QRCodeService{
		QRCodeRepo:  qrRepo,
		ProfileRepo: profileRepo,
		log:         log,
	}
}

// Validate 表单校验，目前只要求标题
func (s *QRCodeService) Validate(form *dto.QRCodeForm) map[string]string {
	form.Normalize()
	return validateForm(form)
}

// CreateOrUpdate id > 0 时更新，否则新建
// 更新时表单与已保存内容一致则不写库
func (s *QRCodeService) CreateOrUpdate(ctx context.Context, shop string, form *dto.QRCodeForm, id int64) (*model.QRCode, error) {
	if errs := s.Validate(form); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.checkProfile(ctx, shop, form.ProfileID); err != nil {
		return nil, err
	}

	if id <= 0 {
		qr := &model.QRCode{Shop: shop}
		form.ApplyTo(qr)
		if err := s.QRCodeRepo.Create(ctx, qr); err != nil {
			return nil, fmt.Errorf("create qr code: %w", err)
		}
		s.log.Info("qr code created", zap.String("shop", shop), zap.Int64("qr_code_id", qr.ID))
		return qr, nil
	}

	existing, err := s.FindByID(ctx, shop, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	draft := dto.QRCodeDraft{Saved: dto.FormFromQRCode(existing), Draft: *form}
	if !draft.IsDirty() {
		return existing, nil
	}

	form.ApplyTo(existing)
	n, err := s.QRCodeRepo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update qr code %d: %w", id, err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return existing, nil
}

// checkProfile 选中的 Profile 必须属于当前店铺
func (s *QRCodeService) checkProfile(ctx context.Context, shop string, profileID *int64) error {
	if profileID == nil {
		return nil
	}
	_, err := s.ProfileRepo.GetByID(ctx, shop, *profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ValidationError{Fields: map[string]string{"profileId": "Profile not found"}}
	}
	if err != nil {
		return fmt.Errorf("check profile %d: %w", *profileID, err)
	}
	return nil
}

// FindByID 带 Profile；不存在返回 nil, nil
func (s *QRCodeService) FindByID(ctx context.Context, shop string, id int64) (*model.QRCode, error) {
	qr, err := s.QRCodeRepo.GetByID(ctx, shop, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get qr code %d: %w", id, err)
	}
	return qr, nil
}

// ListByShop 按 id 倒序
func (s *QRCodeService) ListByShop(ctx context.Context, shop string) ([]model.QRCode, error) {
	list, err := s.QRCodeRepo.ListByShop(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("list qr codes: %w", err)
	}
	return list, nil
}

func (s *QRCodeService) DeleteQRCode(ctx context.Context, shop string, id int64) error {
	n, err := s.QRCodeRepo.Delete(ctx, shop, id)
	if err != nil {
		return fmt.Errorf("delete qr code %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Info("qr code deleted", zap.String("shop", shop), zap.Int64("qr_code_id", id))
	return nil
}

func (s *QRCodeService) DeleteQRCodes(ctx context.Context, shop string, ids []int64) (int64, error) {
	n, err := s.QRCodeRepo.DeleteByIDs(ctx, shop, ids)
	if err != nil {
		return 0, fmt.Errorf("delete qr codes %v: %w", ids, err)
	}
	s.log.Info("qr codes deleted", zap.String("shop", shop), zap.Int64s("qr_code_ids", ids), zap.Int64("deleted", n))
	return n, nil
}

// ==================== 公开扫码 ====================

// FindForScan 公开页面按 id 查询
func (s *QRCodeService) FindForScan(ctx context.Context, id int64) (*model.QRCode, error) {
	qr, err := s.QRCodeRepo.FindForScan(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find qr code %d: %w", id, err)
	}
	return qr, nil
}

// RecordScan 扫码计数 +1，返回落地地址
// 地址解析失败时不计数
func (s *QRCodeService) RecordScan(ctx context.Context, id int64) (string, error) {
	qr, err := s.FindForScan(ctx, id)
	if err != nil {
		return "", err
	}

	dest, err := ResolveDestination(qr, qr.Profile)
	if err != nil {
		return "", err
	}

	if err := s.QRCodeRepo.IncrementScans(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("increment scans %d: %w", id, err)
	}
	return dest, nil
}
