package model

// Profile UTM 参数模板，仅店铺员工可见
type Profile struct {
	BaseModel

	Shop string `gorm:"size:255;index;not null" json:"shop"`
	Name string `gorm:"size:255;not null" json:"name"`

	UtmSource   string `gorm:"size:255" json:"utmSource"`
	UtmMedium   string `gorm:"size:255" json:"utmMedium"`
	UtmCampaign string `gorm:"size:255" json:"utmCampaign"`
	UtmID       string `gorm:"column:utm_id;size:255" json:"utmId"`
	UtmTerm     string `gorm:"size:255" json:"utmTerm"`
	UtmContent  string `gorm:"size:255" json:"utmContent"`
}

func (Profile) TableName() string {
	return "profiles"
}
