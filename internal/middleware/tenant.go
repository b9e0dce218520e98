package middleware

import (
	"context"
	"errors"
	"reflect"

	"gorm.io/gorm"
)

// ==================== 租户上下文 ====================

type shopContextKey struct{}

// WithShop 把当前店铺写入 context
func WithShop(ctx context.Context, shop string) context.Context {
	return context.WithValue(ctx, shopContextKey{}, shop)
}

// ShopFromContext 取当前店铺，没有返回空串
func ShopFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	shop, _ := ctx.Value(shopContextKey{}).(string)
	return shop
}

// ==================== GORM 回调 ====================

// ErrShopMismatch 写入的 Shop 与当前请求的店铺不一致
var ErrShopMismatch = errors.New("tenant: record shop does not match request shop")

// RegisterTenantCallbacks 创建记录时校验并填充 Shop
// context 带店铺时：空值填为当前店铺，其他店铺的值拒绝写入
func RegisterTenantCallbacks(db *gorm.DB) error {
	return db.Callback().Create().Before("gorm:create").Register("tenant:create", func(tx *gorm.DB) {
		shop := ShopFromContext(tx.Statement.Context)
		if shop == "" {
			return
		}
		if err := checkShopField(tx, shop); err != nil {
			_ = tx.AddError(err)
		}
	})
}

func checkShopField(tx *gorm.DB, shop string) error {
	if tx.Statement.Schema == nil {
		return nil
	}

	field := tx.Statement.Schema.LookUpField("Shop")
	if field == nil {
		return nil
	}

	check := func(rv reflect.Value) error {
		v, isZero := field.ValueOf(tx.Statement.Context, rv)
		if isZero {
			return field.Set(tx.Statement.Context, rv, shop)
		}
		if v != shop {
			return ErrShopMismatch
		}
		return nil
	}

	switch tx.Statement.ReflectValue.Kind() {
	case reflect.Struct:
		return check(tx.Statement.ReflectValue)
	case reflect.Slice:
		// 批量插入
		for i := 0; i < tx.Statement.ReflectValue.Len(); i++ {
			if err := check(tx.Statement.ReflectValue.Index(i)); err != nil {
				return err
			}
		}
	}
	return nil
}
