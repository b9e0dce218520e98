package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound 记录不存在或不属于当前店铺
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReferenceFormat 商品变体 GID 格式不对，无法生成落地地址
	ErrInvalidReferenceFormat = errors.New("unrecognized product variant id")
	// ErrNoSession 店铺没有可用的 Admin API Token
	ErrNoSession = errors.New("shop session not found")
)

// ValidationError 表单校验失败，字段名 -> 提示
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsValidationError 取出字段错误
func AsValidationError(err error) (map[string]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
