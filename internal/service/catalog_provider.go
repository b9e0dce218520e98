package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"qrcode_admin_v1/internal/model"
	"qrcode_admin_v1/internal/repository"
	"qrcode_admin_v1/pkg/shopify"
)

// ProductCatalog 商品目录
// 商品不存在时不报错 (nil / 不在结果里)，调用失败时返回 shopify.ErrUpstream
type ProductCatalog interface {
	Product(ctx context.Context, id string) (*shopify.Product, error)
	Products(ctx context.Context, ids []string) (map[string]*shopify.Product, error)
}

// CatalogProvider 按店铺提供商品目录客户端
type CatalogProvider interface {
	ForShop(ctx context.Context, shop string) (ProductCatalog, error)
}

// ShopifyCatalogProvider 用店铺离线 Token 创建 Admin API 客户端
type ShopifyCatalogProvider struct {
	SessionRepo repository.ShopSessionRepository
	cfg         shopify.Config
}

func NewShopifyCatalogProvider(sessionRepo repository.ShopSessionRepository, cfg shopify.Config) *ShopifyCatalogProvider {
	return &ShopifyCatalogProvider{
		SessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

var _ CatalogProvider = (*ShopifyCatalogProvider)(nil)

// ForShop 店铺没有 Token 时返回 ErrNoSession
func (p *ShopifyCatalogProvider) ForShop(ctx context.Context, shop string) (ProductCatalog, error) {
	session, err := p.SessionRepo.GetByShop(ctx, shop)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, shop)
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", shop, err)
	}
	return shopify.NewClient(shop, session.AccessToken, p.cfg), nil
}

// ==================== 店铺会话 ====================

// SessionService 店铺离线 Token 管理
type SessionService struct {
	SessionRepo repository.ShopSessionRepository
	log         *zap.Logger
}

func NewSessionService(sessionRepo repository.ShopSessionRepository, log *zap.Logger) *SessionService {
	return &SessionService{
		SessionRepo: sessionRepo,
		log:         log,
	}
}

// Put 写入或覆盖店铺 Token
func (s *SessionService) Put(ctx context.Context, shop, accessToken, scope string) (*model.ShopSession, error) {
	shop = strings.ToLower(strings.TrimSpace(shop))
	if !shopify.ValidShopDomain(shop) {
		return nil, &ValidationError{Fields: map[string]string{"shop": "Shop must be a myshopify.com domain"}}
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, &ValidationError{Fields: map[string]string{"accessToken": "Access token is required"}}
	}

	session := &model.ShopSession{Shop: shop, AccessToken: accessToken, Scope: scope}
	if err := s.SessionRepo.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("save session %s: %w", shop, err)
	}
	s.log.Info("shop session saved", zap.String("shop", shop), zap.String("scope", scope))
	return session, nil
}
