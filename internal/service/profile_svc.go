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

// ProfileService UTM Profile 业务
type ProfileService struct {
	ProfileRepo repository.ProfileRepository
	log         *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, log *zap.Logger) *ProfileService {
	return &ProfileService{
		ProfileRepo: profileRepo,
		log:         log,
	}
}

// GetProfile 查单个 Profile，不存在或不属于该店铺时返回 nil, nil
func (s *ProfileService) GetProfile(ctx context.Context, shop string, id int64) (*model.Profile, error) {
	profile, err := s.ProfileRepo.GetByID(ctx, shop, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}
	return profile, nil
}

// ListProfiles 店铺下的 Profile 摘要，按 id 升序
func (s *ProfileService) ListProfiles(ctx context.Context, shop string) ([]dto.ProfileSummary, error) {
	profiles, err := s.ProfileRepo.ListByShop(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	list := make([]dto.ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		list = append(list, dto.ProfileSummary{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return list, nil
}

// ValidateProfile 表单校验，通过返回 nil
func (s *ProfileService) ValidateProfile(form *dto.ProfileForm) map[string]string {
	form.Normalize()
	return validateForm(form)
}

// CreateOrUpdateProfile id > 0 时更新，否则新建
func (s *ProfileService) CreateOrUpdateProfile(ctx context.Context, shop string, form *dto.ProfileForm, id int64) (*model.Profile, error) {
	if errs := s.ValidateProfile(form); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if id <= 0 {
		profile := &model.Profile{Shop: shop}
		form.ApplyTo(profile)
		if err := s.ProfileRepo.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		s.log.Info("profile created", zap.String("shop", shop), zap.Int64("profile_id", profile.ID))
		return profile, nil
	}

	profile, err := s.GetProfile(ctx, shop, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}

	form.ApplyTo(profile)
	n, err := s.ProfileRepo.Update(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("update profile %d: %w", id, err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return profile, nil
}

// DeleteProfile 删除单个 Profile，引用它的二维码保留
func (s *ProfileService) DeleteProfile(ctx context.Context, shop string, id int64) error {
	n, err := s.ProfileRepo.Delete(ctx, shop, id)
	if err != nil {
		return fmt.Errorf("delete profile %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.log.Info("profile deleted", zap.String("shop", shop), zap.Int64("profile_id", id))
	return nil
}

// DeleteProfiles 批量删除，只删本店铺的行
func (s *ProfileService) DeleteProfiles(ctx context.Context, shop string, ids []int64) (int64, error) {
	n, err := s.ProfileRepo.DeleteByIDs(ctx, shop, ids)
	if err != nil {
		return 0, fmt.Errorf("delete profiles %v: %w", ids, err)
	}
	s.log.Info("profiles deleted", zap.String("shop", shop), zap.Int64s("profile_ids", ids), zap.Int64("deleted", n))
	return n, nil
}
