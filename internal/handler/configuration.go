package handler

import (
	"fmt"

	"licensing-subscription-panel/internal/model"
	"licensing-subscription-panel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleAutoRenewal 切换自动续订，唯一会写回许可状态的配置项
func HandleAutoRenewal(c *fiber.Ctx) error {
	type AutoRenewalInput struct {
		Enabled bool `json:"enabled"`
	}

	input := new(AutoRenewalInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	sess := currentSession(c)
	sess.State.AutoRenewal = input.Enabled

	if err := service.LogOperation(optionalUserID(c), sess.ID, "set_auto_renewal", "", input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "写入审计记录失败",
		})
	}

	return c.JSON(fiber.Map{
		"auto_renewal": sess.State.AutoRenewal,
	})
}

// HandleUpgradeRequest 提交套餐升级请求（演示行为，不触发真实计费）
func HandleUpgradeRequest(c *fiber.Ctx) error {
	type UpgradeInput struct {
		Plan string `json:"plan"`
	}

	input := new(UpgradeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	plan, ok := model.FindPlan(input.Plan)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("未知的套餐: %q", input.Plan),
		})
	}

	sess := currentSession(c)
	if plan.Name == sess.State.SubscriptionTier {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "已是当前套餐，无需升级",
		})
	}

	if err := service.LogOperation(optionalUserID(c), sess.ID, "upgrade_request", plan.Name, input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "写入审计记录失败",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("已提交升级到 %s 的请求", plan.Name),
		"plan":    plan,
	})
}
