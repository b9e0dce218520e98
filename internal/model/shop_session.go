package model

// ShopSession 店铺离线 Admin API Token
// 一个店铺一条记录，安装流程之外通过 `session put` 写入
type ShopSession struct {
	BaseModel

	Shop        string `gorm:"size:255;uniqueIndex;not null" json:"shop"`
	AccessToken string `gorm:"size:255;not null" json:"-"`
	Scope       string `gorm:"size:1024" json:"scope"`
}

func (ShopSession) TableName() string {
	return "shop_sessions"
}

// AllModels 需要迁移的全部模型
func AllModels() []interface{} {
	return []interface{}{
		&Profile{},
		&QRCode{},
		&ShopSession{},
	}
}
