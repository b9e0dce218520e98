package model

import (
	"strings"
	"sync"
	"time"
)

// FieldType 表单字段类型
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
	FieldTypeBool   FieldType = "boolean"
	FieldTypeDate   FieldType = "date"
)

// FieldDescriptor 实体字段元数据
type FieldDescriptor struct {
	Name            string    // JSON 字段名
	Column          string    // 数据库列名
	Type            FieldType //
	IsIdentity      bool      // 主键
	IsAutoTimestamp bool      // created_at / updated_at
	IsReadOnly      bool      // 由关联维护的外键
	HasDefault      bool      // 数据库声明了默认值
}

// 实体名 (小写) -> 字段表，顺序与结构体声明一致
// 修改 QRCode / Profile 结构体时同步修改这里，fields_test 会校验两者一致
var entityFields = map[string][]FieldDescriptor{
	"qrcode": {
		{Name: "id", Column: "id", Type: FieldTypeNumber, IsIdentity: true},
		{Name: "createdAt", Column: "created_at", Type: FieldTypeDate, IsAutoTimestamp: true},
		{Name: "updatedAt", Column: "updated_at", Type: FieldTypeDate, IsAutoTimestamp: true},
		{Name: "shop", Column: "shop", Type: FieldTypeString},
		{Name: "title", Column: "title", Type: FieldTypeString},
		{Name: "productId", Column: "product_id", Type: FieldTypeString},
		{Name: "productHandle", Column: "product_handle", Type: FieldTypeString},
		{Name: "productVariantId", Column: "product_variant_id", Type: FieldTypeString},
		{Name: "destination", Column: "destination", Type: FieldTypeString},
		{Name: "scans", Column: "scans", Type: FieldTypeNumber},
		{Name: "profileId", Column: "profile_id", Type: FieldTypeNumber, IsReadOnly: true},
	},
	"profile": {
		{Name: "id", Column: "id", Type: FieldTypeNumber, IsIdentity: true},
		{Name: "createdAt", Column: "created_at", Type: FieldTypeDate, IsAutoTimestamp: true},
		{Name: "updatedAt", Column: "updated_at", Type: FieldTypeDate, IsAutoTimestamp: true},
		{Name: "shop", Column: "shop", Type: FieldTypeString},
		{Name: "name", Column: "name", Type: FieldTypeString},
		{Name: "utmSource", Column: "utm_source", Type: FieldTypeString},
		{Name: "utmMedium", Column: "utm_medium", Type: FieldTypeString},
		{Name: "utmCampaign", Column: "utm_campaign", Type: FieldTypeString},
		{Name: "utmId", Column: "utm_id", Type: FieldTypeString},
		{Name: "utmTerm", Column: "utm_term", Type: FieldTypeString},
		{Name: "utmContent", Column: "utm_content", Type: FieldTypeString},
	},
}

// 进程级缓存：实体名 -> 空白记录，首次写入后只读
var blankRecords sync.Map

// Fields 返回实体字段元数据 (副本)，未知实体返回空切片
func Fields(entityName string) []FieldDescriptor {
	fields := entityFields[strings.ToLower(entityName)]
	out := make([]FieldDescriptor, len(fields))
	copy(out, fields)
	return out
}

// BlankRecord 生成新建表单用的空白记录
// 跳过主键、自动时间戳和只读字段；有默认值的字段为 nil，否则按类型取零值
func BlankRecord(entityName string) map[string]any {
	key := strings.ToLower(entityName)

	if cached, ok := blankRecords.Load(key); ok {
		return cloneRecord(cached.(map[string]any))
	}

	record := make(map[string]any)
	for _, f := range entityFields[key] {
		if f.IsIdentity || f.IsAutoTimestamp || f.IsReadOnly {
			continue
		}
		if f.HasDefault {
			record[f.Name] = nil
			continue
		}
		record[f.Name] = zeroValue(f.Type)
	}

	actual, _ := blankRecords.LoadOrStore(key, record)
	return cloneRecord(actual.(map[string]any))
}

// zeroValue 按类型取默认值
// date 类型取当前时间 (沿用旧版行为)
func zeroValue(t FieldType) any {
	switch t {
	case FieldTypeString:
		return ""
	case FieldTypeNumber:
		return 0
	case FieldTypeBool:
		return false
	case FieldTypeDate:
		return time.Now()
	default:
		return nil
	}
}

func cloneRecord(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
