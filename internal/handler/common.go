package handler

import (
	"time"

	"licensing-subscription-panel/internal/middleware"
	"licensing-subscription-panel/internal/service"
	"licensing-subscription-panel/internal/session"

	"github.com/gofiber/fiber/v2"
)

var (
	licensing        service.LicensingSystem = service.SelectLicensingSystem(true)
	exporter         service.Exporter        = service.NullExporter{}
	simulatedLatency time.Duration
)

// InitLicensing 注入启动时选定的许可子系统实现
func InitLicensing(sys service.LicensingSystem) {
	if sys != nil {
		licensing = sys
	}
}

// InitPackaging 注入导出器与模拟延迟（仅用于演示 UI 的等待效果）
func InitPackaging(e service.Exporter, latency time.Duration) {
	if e != nil {
		exporter = e
	}
	simulatedLatency = latency
}

// 从上下文取出会话（需要会话中间件支持）
func currentSession(c *fiber.Ctx) *session.Session {
	return c.Locals(middleware.SessionLocal).(*session.Session)
}
