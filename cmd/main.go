package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qrcode_admin_v1/internal/config"
	"qrcode_admin_v1/internal/controller"
	"qrcode_admin_v1/internal/middleware"
	"qrcode_admin_v1/internal/model"
	"qrcode_admin_v1/internal/repository"
	"qrcode_admin_v1/internal/router"
	"qrcode_admin_v1/internal/service"
	"qrcode_admin_v1/pkg/database"
	"qrcode_admin_v1/pkg/logger"
	"qrcode_admin_v1/pkg/qrimage"
	"qrcode_admin_v1/pkg/shopify"
)

// @title QR Code Admin API
// @version 1.0
// @description Shopify 店铺二维码管理后台接口
// @BasePath /
// @securityDefinitions.apikey SessionToken
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:  "qrcode-admin",
		Usage: "Shopify 店铺二维码管理后台",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			sessionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ==================== 子命令 ====================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "启动 HTTP 服务",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Value: true, Usage: "启动前执行表结构迁移"},
		},
		Action: func(c *cli.Context) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := cfg.Validate(); err != nil {
				return err
			}

			db, err := openDatabase(cfg, c.Bool("migrate"))
			if err != nil {
				return err
			}

			deps, err := initDependencies(cfg, db, log)
			if err != nil {
				return err
			}

			if !cfg.IsDevelopment() {
				gin.SetMode(gin.ReleaseMode)
			}
			r := router.SetupRouter(deps.Controllers, router.Options{
				Logger: log,
				SessionToken: middleware.SessionTokenConfig{
					APIKey:    cfg.Shopify.APIKey,
					APISecret: cfg.Shopify.APISecret,
					Leeway:    5 * time.Second,
				},
			})

			return startServer(c.Context, r, cfg.Server.Port, log)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "执行表结构迁移",
		Action: func(c *cli.Context) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := cfg.ValidateDatabase(); err != nil {
				return err
			}
			if _, err := openDatabase(cfg, true); err != nil {
				return err
			}
			log.Info("migration finished")
			return nil
		},
	}
}

func sessionCommand() *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: "店铺会话管理",
		Subcommands: []*cli.Command{
			{
				Name:  "put",
				Usage: "写入店铺离线 Admin API Token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "shop", Required: true, Usage: "xxx.myshopify.com"},
					&cli.StringFlag{Name: "token", Required: true, EnvVars: []string{"SHOPIFY_ACCESS_TOKEN"}},
					&cli.StringFlag{Name: "scope", Value: "read_products"},
				},
				Action: func(c *cli.Context) error {
					cfg, log, err := bootstrap()
					if err != nil {
						return err
					}
					defer func() { _ = log.Sync() }()

					if err := cfg.ValidateDatabase(); err != nil {
						return err
					}
					db, err := openDatabase(cfg, true)
					if err != nil {
						return err
					}

					sessions := service.NewSessionService(repository.NewShopSessionRepository(db), log)
					_, err = sessions.Put(c.Context, c.String("shop"), c.String("token"), c.String("scope"))
					return err
				},
			},
			{
				Name:  "token",
				Usage: "签发本地调试用的 session token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "shop", Required: true},
					&cli.DurationFlag{Name: "ttl", Value: time.Hour},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					if cfg.Shopify.APIKey == "" || cfg.Shopify.APISecret == "" {
						return errors.New("SHOPIFY_API_KEY and SHOPIFY_API_SECRET are required")
					}
					if !shopify.ValidShopDomain(c.String("shop")) {
						return fmt.Errorf("invalid shop domain: %s", c.String("shop"))
					}

					tok, err := middleware.NewSessionToken(middleware.SessionTokenConfig{
						APIKey:    cfg.Shopify.APIKey,
						APISecret: cfg.Shopify.APISecret,
					}, c.String("shop"), c.Duration("ttl"))
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, tok)
					return nil
				},
			},
		},
	}
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Profile     repository.ProfileRepository
	QRCode      repository.QRCodeRepository
	ShopSession repository.ShopSessionRepository
}

// Services 服务集合
type Services struct {
	Profile *service.ProfileService
	QRCode  *service.QRCodeService
	Enrich  *service.EnrichService
	Session *service.SessionService
}

// ==================== 初始化函数 ====================

// bootstrap 读取配置并创建 logger
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(logger.Config{
		Development: cfg.IsDevelopment(),
		Level:       cfg.Log.Level,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// openDatabase 连接数据库，注册租户回调，可选迁移
func openDatabase(cfg *config.Config, migrate bool) (*gorm.DB, error) {
	db, err := database.InitDB(database.Options{
		DSN:      cfg.Database.DSN,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		return nil, err
	}
	if err := middleware.RegisterTenantCallbacks(db); err != nil {
		return nil, fmt.Errorf("register tenant callbacks: %w", err)
	}
	if migrate {
		if err := database.Migrate(db, model.AllModels()...); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*Dependencies, error) {
	// -------- Repo 层 --------
	repos := &Repositories{
		Profile:     repository.NewProfileRepository(db),
		QRCode:      repository.NewQRCodeRepository(db),
		ShopSession: repository.NewShopSessionRepository(db),
	}

	// -------- 基础组件 --------
	images, err := qrimage.New(cfg.Shopify.AppURL, cfg.QRImage.Size)
	if err != nil {
		return nil, err
	}
	catalogs := service.NewShopifyCatalogProvider(repos.ShopSession, shopify.Config{
		APIVersion: cfg.Shopify.APIVersion,
		Timeout:    cfg.Shopify.Timeout,
		RetryCount: cfg.Shopify.RetryCount,
		Debug:      cfg.IsDevelopment(),
	})

	// -------- 业务服务 --------
	services := &Services{
		Profile: service.NewProfileService(repos.Profile, log),
		QRCode:  service.NewQRCodeService(repos.QRCode, repos.Profile, log),
		Session: service.NewSessionService(repos.ShopSession, log),
	}
	services.Enrich = service.NewEnrichService(services.QRCode, catalogs, images, log)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		QRCode:  controller.NewQRCodeController(services.QRCode, services.Enrich, services.Profile, log),
		Profile: controller.NewProfileController(services.Profile, log),
		Scan:    controller.NewScanController(services.QRCode, images, log),
		Health:  controller.NewHealthController(db),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}, nil
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到 SIGINT/SIGTERM 后优雅关闭
func startServer(ctx context.Context, r *gin.Engine, port string, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	// 优雅关闭，最多等待 30 秒
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}
