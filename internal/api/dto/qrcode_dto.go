package dto

import (
	"strings"

	"qrcode_admin_v1/internal/model"
)

// ==================== 请求 DTO ====================

// QRCodeForm 新建/编辑二维码表单 (JSON 或表单提交)
type QRCodeForm struct {
	Title            string `json:"title" form:"title" validate:"required"`
	ProductID        string `json:"productId" form:"productId"`
	ProductHandle    string `json:"productHandle" form:"productHandle"`
	ProductVariantID string `json:"productVariantId" form:"productVariantId"`
	Destination      string `json:"destination" form:"destination"`
	ProfileID        *int64 `json:"profileId" form:"profileId"`
}

// Normalize 去掉首尾空白，非正数的 profileId 视为未选择
func (f *QRCodeForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.ProductID = strings.TrimSpace(f.ProductID)
	f.ProductHandle = strings.TrimSpace(f.ProductHandle)
	f.ProductVariantID = strings.TrimSpace(f.ProductVariantID)
	f.Destination = strings.TrimSpace(f.Destination)
	if f.ProfileID != nil && *f.ProfileID <= 0 {
		f.ProfileID = nil
	}
}

// ApplyTo 把表单字段写到模型上 (不动 id/shop/scans)
func (f *QRCodeForm) ApplyTo(qr *model.QRCode) {
	qr.Title = f.Title
	qr.ProductID = f.ProductID
	qr.ProductHandle = f.ProductHandle
	qr.ProductVariantID = f.ProductVariantID
	qr.Destination = f.Destination
	qr.ProfileID = f.ProfileID
	qr.Profile = nil
}

// FormFromQRCode 已保存记录对应的表单
func FormFromQRCode(qr *model.QRCode) QRCodeForm {
	form := QRCodeForm{
		Title:            qr.Title,
		ProductID:        qr.ProductID,
		ProductHandle:    qr.ProductHandle,
		ProductVariantID: qr.ProductVariantID,
		Destination:      qr.Destination,
	}
	if qr.ProfileID != nil {
		id := *qr.ProfileID
		form.ProfileID = &id
	}
	return form
}

// QRCodeDraft 编辑中的表单与最近一次保存的状态
type QRCodeDraft struct {
	Saved QRCodeForm
	Draft QRCodeForm
}

// IsDirty 表单是否有未保存的修改
func (d QRCodeDraft) IsDirty() bool {
	a, b := d.Saved, d.Draft
	if a.Title != b.Title ||
		a.ProductID != b.ProductID ||
		a.ProductHandle != b.ProductHandle ||
		a.ProductVariantID != b.ProductVariantID ||
		a.Destination != b.Destination {
		return true
	}
	switch {
	case a.ProfileID == nil && b.ProfileID == nil:
		return false
	case a.ProfileID == nil || b.ProfileID == nil:
		return true
	default:
		return *a.ProfileID != *b.ProfileID
	}
}

// ==================== 响应 DTO ====================

// EnrichedQRCode 二维码 + 商品信息 + 落地地址 + 图片
type EnrichedQRCode struct {
	model.QRCode

	ProductDeleted bool   `json:"productDeleted"`
	ProductTitle   string `json:"productTitle,omitempty"`
	ProductImage   string `json:"productImage,omitempty"`
	ProductAlt     string `json:"productAlt,omitempty"`
	DestinationURL string `json:"destinationUrl"`
	Image          string `json:"image"`
}

// PublicQRCodeResp 公开页面只暴露标题和图片
type PublicQRCodeResp struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// BulkDeleteReq 批量删除，ids 为逗号分隔的 id 列表
type BulkDeleteReq struct {
	IDs string `form:"ids" json:"ids"`
}
