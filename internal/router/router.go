package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"qrcode_admin_v1/internal/controller"
	"qrcode_admin_v1/internal/middleware"

	_ "qrcode_admin_v1/docs"
)

// Controllers 控制器集合
type Controllers struct {
	QRCode  *controller.QRCodeController
	Profile *controller.ProfileController
	Scan    *controller.ScanController
	Health  *controller.HealthController
}

// Options 路由依赖的中间件配置
type Options struct {
	Logger       *zap.Logger
	SessionToken middleware.SessionTokenConfig
}

// SetupRouter 注册所有路由
func SetupRouter(ctl *Controllers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(opts.Logger))

	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", ctl.Health.Health)

	// 2. 公开扫码入口
	public := r.Group("/qrcodes")
	{
		public.GET("/:id", ctl.Scan.Show)
		public.GET("/:id/image.png", ctl.Scan.Image)
		public.GET("/:id/scan", ctl.Scan.Scan)
	}

	// 3. 后台接口，需要 session token
	app := r.Group("/app", middleware.SessionToken(opts.SessionToken))
	{
		qrcodes := app.Group("/qrcodes")
		{
			qrcodes.GET("", ctl.QRCode.List)
			qrcodes.GET("/new", ctl.QRCode.New)
			qrcodes.POST("", ctl.QRCode.Create)
			// POST /app/qrcodes/delete  ids=1,2,3
			qrcodes.POST("/delete", ctl.QRCode.BulkDelete)
			qrcodes.GET("/:id", ctl.QRCode.Detail)
			qrcodes.PUT("/:id", ctl.QRCode.Update)
			qrcodes.DELETE("/:id", ctl.QRCode.Delete)
		}

		profiles := app.Group("/profiles")
		{
			profiles.GET("", ctl.Profile.List)
			profiles.GET("/new", ctl.Profile.New)
			profiles.POST("", ctl.Profile.Create)
			profiles.POST("/delete", ctl.Profile.BulkDelete)
			profiles.GET("/:id", ctl.Profile.Detail)
			profiles.PUT("/:id", ctl.Profile.Update)
			profiles.DELETE("/:id", ctl.Profile.Delete)
		}
	}

	return r
}
