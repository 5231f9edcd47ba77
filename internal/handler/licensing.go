package handler

import (
	"licensing-subscription-panel/internal/page"
	"licensing-subscription-panel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleLicenseDetails 许可详情（不依赖路由器位置，直接渲染对应视图）
func HandleLicenseDetails(c *fiber.Ctx) error {
	sess := currentSession(c)
	return c.JSON(service.RenderPage(page.PageLicenseDetails, sess.State, licensing))
}

// HandleBilling 账单与用量
func HandleBilling(c *fiber.Ctx) error {
	sess := currentSession(c)
	return c.JSON(service.RenderPage(page.PageBilling, sess.State, licensing))
}

// HandlePlans 套餐目录
func HandlePlans(c *fiber.Ctx) error {
	sess := currentSession(c)
	return c.JSON(service.RenderPage(page.PageConfiguration, sess.State, licensing))
}
