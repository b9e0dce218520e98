package dto

import (
	"strings"
	"time"

	"qrcode_admin_v1/internal/model"
)

// ProfileForm 新建/编辑 Profile
type ProfileForm struct {
	Name        string `json:"name" form:"name" validate:"required"`
	UtmSource   string `json:"utmSource" form:"utmSource"`
	UtmMedium   string `json:"utmMedium" form:"utmMedium"`
	UtmCampaign string `json:"utmCampaign" form:"utmCampaign"`
	UtmID       string `json:"utmId" form:"utmId"`
	UtmTerm     string `json:"utmTerm" form:"utmTerm"`
	UtmContent  string `json:"utmContent" form:"utmContent"`
}

// Normalize 去掉首尾空白
func (f *ProfileForm) Normalize() {
	for _, s := range []*string{&f.Name, &f.UtmSource, &f.UtmMedium, &f.UtmCampaign, &f.UtmID, &f.UtmTerm, &f.UtmContent} {
		*s = strings.TrimSpace(*s)
	}
}

// ApplyTo 写入模型
func (f *ProfileForm) ApplyTo(p *model.Profile) {
	p.Name = f.Name
	p.UtmSource = f.UtmSource
	p.UtmMedium = f.UtmMedium
	p.UtmCampaign = f.UtmCampaign
	p.UtmID = f.UtmID
	p.UtmTerm = f.UtmTerm
	p.UtmContent = f.UtmContent
}

// ProfileSummary 列表项
type ProfileSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeleteResult 删除结果
type DeleteResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
