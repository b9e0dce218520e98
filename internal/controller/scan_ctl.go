package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qrcode_admin_v1/internal/api/dto"
	"qrcode_admin_v1/internal/service"
)

// QRImageRenderer 二维码图片
type QRImageRenderer interface {
	Generate(id int64) (string, error)
	PNG(id int64) ([]byte, error)
}

// ScanController 公开扫码入口，不需要店铺会话
type ScanController struct {
	qrCodeService *service.QRCodeService
	images        QRImageRenderer
	log           *zap.Logger
}

func NewScanController(qrCodeService *service.QRCodeService, images QRImageRenderer, log *zap.Logger) *ScanController {
	return &ScanController{qrCodeService: qrCodeService, images: images, log: log}
}

// Show 公开二维码页面数据
// @Summary 公开二维码
// @Tags Scan (扫码)
// @Produce json
// @Param id path int true "二维码 ID"
// @Success 200 {object} dto.PublicQRCodeResp
// @Failure 404 {object} map[string]string "不存在"
// @Router /qrcodes/{id} [get]
func (s *ScanController) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	qr, err := s.qrCodeService.FindForScan(c.Request.Context(), id)
	if err != nil {
		renderError(c, s.log, err)
		return
	}
	image, err := s.images.Generate(qr.ID)
	if err != nil {
		renderError(c, s.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.PublicQRCodeResp{Title: qr.Title, Image: image})
}

// Image 二维码 PNG
// @Summary 二维码图片
// @Tags Scan (扫码)
// @Produce png
// @Param id path int true "二维码 ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "不存在"
// @Router /qrcodes/{id}/image.png [get]
func (s *ScanController) Image(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := s.qrCodeService.FindForScan(c.Request.Context(), id); err != nil {
		renderError(c, s.log, err)
		return
	}
	png, err := s.images.PNG(id)
	if err != nil {
		renderError(c, s.log, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

// Scan 扫码计数并跳转
// @Summary 扫码跳转
// @Description 扫码次数 +1，302 跳转到商品页或购物车
// @Tags Scan (扫码)
// @Param id path int true "二维码 ID"
// @Success 302 "跳转落地地址"
// @Failure 404 {object} map[string]string "不存在"
// @Router /qrcodes/{id}/scan [get]
func (s *ScanController) Scan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dest, err := s.qrCodeService.RecordScan(c.Request.Context(), id)
	if err != nil {
		renderError(c, s.log, err)
		return
	}
	c.Redirect(http.StatusFound, dest)
}
