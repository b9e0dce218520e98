package model

import (
	"time"
)

// BaseModel 公共字段
// 不带 DeletedAt：QR 码 / Profile 只通过显式删除操作物理删除
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
