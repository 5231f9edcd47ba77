package main

import (
	"log"

	"licensing-subscription-panel/internal/config"
	"licensing-subscription-panel/internal/database"
	"licensing-subscription-panel/internal/handler"
	"licensing-subscription-panel/internal/middleware"
	"licensing-subscription-panel/internal/service"
	"licensing-subscription-panel/internal/session"
	"licensing-subscription-panel/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	util.SetJWTSecret(cfg.JWTSecret)

	// 初始化数据库
	database.InitDB()

	// 选择许可子系统实现与快照导出器
	handler.InitLicensing(service.SelectLicensingSystem(cfg.LicensingAvailable))

	exporter, err := service.NewExporter(cfg.SheetSyncEnabled, cfg.CredentialPath, cfg.SpreadsheetID, cfg.SheetName)
	if err != nil {
		log.Fatal("初始化导出器失败:", err)
	}
	handler.InitPackaging(exporter, cfg.SimulatedLatency)

	store := session.NewStore()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// 中间件
	app.Use(logger.New())
	app.Use(cors.New())

	// 路由组，所有面板接口都挂载会话
	api := app.Group("/api/v1")
	api.Use(middleware.Session(store))

	// 认证路由
	auth := api.Group("/auth")
	auth.Post("/login", handler.HandleUserLogin)
	auth.Post("/validate-token", handler.HandleValidateToken)
	auth.Get("/info", middleware.Auth(), handler.HandleUserInfo)
	auth.Post("/change-password", middleware.Auth(), handler.HandleChangePassword)

	// 系统状态
	api.Get("/status", handler.HandleSystemStatus)
	api.Get("/status/licensing", handler.HandleLicensingStatus)

	// 页面路由
	pages := api.Group("/pages")
	pages.Get("/current", handler.HandleCurrentPage)
	pages.Get("/view", handler.HandlePageView)
	pages.Post("/navigate", handler.HandleNavigate)
	pages.Post("/back", handler.HandleBack)

	// 许可详情、账单与套餐
	licenses := api.Group("/licenses")
	licenses.Get("/details", handler.HandleLicenseDetails)
	licenses.Get("/billing", handler.HandleBilling)
	licenses.Get("/plans", handler.HandlePlans)

	// 打包工具
	packaging := api.Group("/packaging")
	packaging.Post("/package", handler.HandleGeneratePackage)
	packaging.Post("/manifest", handler.HandleGenerateManifest)
	packaging.Post("/validate", handler.HandleValidatePackage)

	// 订阅配置，需要管理员身份
	configuration := api.Group("/configuration")
	configuration.Use(middleware.Auth(), middleware.AdminOnly())
	configuration.Put("/auto-renewal", handler.HandleAutoRenewal)
	configuration.Post("/upgrade", handler.HandleUpgradeRequest)

	// 审计日志
	api.Get("/logs/session", handler.HandleGetSessionLogs)
	api.Get("/logs", middleware.Auth(), middleware.AdminOnly(), handler.HandleGetLogs)

	log.Fatal(app.Listen(cfg.ListenAddr))
}
