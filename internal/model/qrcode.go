package model

// 扫码目的地
const (
	DestinationProduct = "product" // 商品详情页
	DestinationCart    = "cart"    // 购物车 (带上该变体)
)

// QRCode 店铺二维码
type QRCode struct {
	BaseModel

	// 租户 (xxx.myshopify.com)，所有查询必须带上
	Shop  string `gorm:"size:255;index;not null" json:"shop"`
	Title string `gorm:"size:255;not null" json:"title"`

	// Shopify 商品引用 (GID)
	ProductID        string `gorm:"size:255" json:"productId"`
	ProductHandle    string `gorm:"size:255" json:"productHandle"`
	ProductVariantID string `gorm:"size:255" json:"productVariantId"`

	Destination string `gorm:"size:20" json:"destination"`
	Scans       int    `gorm:"not null" json:"scans"`

	// UTM 配置，可为空；删除 Profile 不级联删除二维码
	ProfileID *int64   `gorm:"index" json:"profileId"`
	Profile   *Profile `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"profile,omitempty"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}
