package service

import (
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qrcode_admin_v1/internal/model"
	"qrcode_admin_v1/internal/repository"
)

// ==================== 测试辅助 ====================

const (
	testShop  = "demo.myshopify.com"
	otherShop = "other.myshopify.com"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

type testServices struct {
	db       *gorm.DB
	profiles *ProfileService
	qrCodes  *QRCodeService
	sessions *SessionService
}

func setupServices(t *testing.T) *testServices {
	db := setupServiceTestDB(t)
	log := zap.NewNop()
	profileRepo := repository.NewProfileRepository(db)
	return &testServices{
		db:       db,
		profiles: NewProfileService(profileRepo, log),
		qrCodes:  NewQRCodeService(repository.NewQRCodeRepository(db), profileRepo, log),
		sessions: NewSessionService(repository.NewShopSessionRepository(db), log),
	}
}
