package handler

import (
	"licensing-subscription-panel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleSystemStatus 各子系统的在线状态总览
func HandleSystemStatus(c *fiber.Ctx) error {
	sess := currentSession(c)
	return c.JSON(fiber.Map{
		"systems": service.CheckAllSystems(licensing, sess.State),
	})
}

// HandleLicensingStatus 许可子系统的聚合状态
func HandleLicensingStatus(c *fiber.Ctx) error {
	sess := currentSession(c)
	return c.JSON(service.SafeStatus(licensing, sess.State))
}
