package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"qrcode_admin_v1/internal/api/dto"
	"qrcode_admin_v1/internal/model"
	"qrcode_admin_v1/pkg/shopify"
)

// ImageGenerator 二维码图片 (data URL)
type ImageGenerator interface {
	Generate(id int64) (string, error)
}

// EnrichService 把二维码记录补全为列表/详情页需要的数据
type EnrichService struct {
	QRCodes  *QRCodeService
	Catalogs CatalogProvider
	Images   ImageGenerator
	log      *zap.Logger
}

func NewEnrichService(qrCodes *QRCodeService, catalogs CatalogProvider, images ImageGenerator, log *zap.Logger) *EnrichService {
	return &EnrichService{
		QRCodes:  qrCodes,
		Catalogs: catalogs,
		Images:   images,
		log:      log,
	}
}

// Enrich 补全单条记录，product 为 nil 表示商品已删除
func (s *EnrichService) Enrich(ctx context.Context, qr *model.QRCode, product *shopify.Product) (*dto.EnrichedQRCode, error) {
	image, err := s.Images.Generate(qr.ID)
	if err != nil {
		return nil, err
	}
	return assemble(qr, product, image)
}

// assemble 组装结果；落地地址解析失败时整体失败
func assemble(qr *model.QRCode, product *shopify.Product, image string) (*dto.EnrichedQRCode, error) {
	dest, err := ResolveDestination(qr, qr.Profile)
	if err != nil {
		return nil, err
	}

	out := &dto.EnrichedQRCode{
		QRCode:         *qr,
		ProductDeleted: product == nil || product.Title == "",
		DestinationURL: dest,
		Image:          image,
	}
	if !out.ProductDeleted {
		out.ProductTitle = product.Title
		out.ProductImage = product.ImageURL
		out.ProductAlt = product.AltText
	}
	return out, nil
}

// EnrichBatch 批量补全，顺序和条数与输入一致
// 商品目录只请求一次，图片生成与目录请求并发进行
func (s *EnrichService) EnrichBatch(ctx context.Context, shop string, qrCodes []model.QRCode) ([]dto.EnrichedQRCode, error) {
	if len(qrCodes) == 0 {
		return []dto.EnrichedQRCode{}, nil
	}

	ids := make([]string, 0, len(qrCodes))
	for i := range qrCodes {
		if qrCodes[i].ProductID != "" {
			ids = append(ids, qrCodes[i].ProductID)
		}
	}

	var products map[string]*shopify.Product
	images := make([]string, len(qrCodes))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(ids) == 0 {
			return nil
		}
		catalog, err := s.Catalogs.ForShop(gctx, shop)
		if err != nil {
			return err
		}
		products, err = catalog.Products(gctx, ids)
		if err != nil {
			return fmt.Errorf("fetch products for %s: %w", shop, err)
		}
		return nil
	})
	for i := range qrCodes {
		i := i
		g.Go(func() error {
			image, err := s.Images.Generate(qrCodes[i].ID)
			if err != nil {
				return err
			}
			images[i] = image
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]dto.EnrichedQRCode, 0, len(qrCodes))
	for i := range qrCodes {
		enriched, err := assemble(&qrCodes[i], products[qrCodes[i].ProductID], images[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *enriched)
	}
	return out, nil
}

// GetEnriched 详情页；不存在返回 nil, nil
func (s *EnrichService) GetEnriched(ctx context.Context, shop string, id int64) (*dto.EnrichedQRCode, error) {
	qr, err := s.QRCodes.FindByID(ctx, shop, id)
	if err != nil || qr == nil {
		return nil, err
	}

	var (
		product *shopify.Product
		image   string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if qr.ProductID == "" {
			return nil
		}
		catalog, err := s.Catalogs.ForShop(gctx, shop)
		if err != nil {
			return err
		}
		product, err = catalog.Product(gctx, qr.ProductID)
		if err != nil {
			return fmt.Errorf("fetch product %s: %w", qr.ProductID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		image, err = s.Images.Generate(qr.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assemble(qr, product, image)
}

// ListEnriched 列表页
func (s *EnrichService) ListEnriched(ctx context.Context, shop string) ([]dto.EnrichedQRCode, error) {
	list, err := s.QRCodes.ListByShop(ctx, shop)
	if err != nil {
		return nil, err
	}
	return s.EnrichBatch(ctx, shop, list)
}
