package handler

import (
	"licensing-subscription-panel/internal/page"
	"licensing-subscription-panel/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HandleCurrentPage 返回当前页面标识
func HandleCurrentPage(c *fiber.Ctx) error {
	sess := currentSession(c)
	return c.JSON(fiber.Map{
		"page": sess.Router.Current(),
	})
}

// HandlePageView 渲染当前页面的视图负载
func HandlePageView(c *fiber.Ctx) error {
	sess := currentSession(c)
	return c.JSON(service.RenderCurrent(sess.Router, sess.State, licensing))
}

// HandleNavigate 从 main 进入详情页
func HandleNavigate(c *fiber.Ctx) error {
	type NavigateInput struct {
		Page string `json:"page"`
	}

	input := new(NavigateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "无效的输入数据",
		})
	}

	target, err := page.ParsePage(input.Page)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sess := currentSession(c)
	if err := sess.Router.Navigate(target); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// 导航即触发重渲染，直接返回新页面的视图
	return c.JSON(service.RenderCurrent(sess.Router, sess.State, licensing))
}

// HandleBack 从详情页返回 main
func HandleBack(c *fiber.Ctx) error {
	sess := currentSession(c)
	if err := sess.Router.Back(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(service.RenderCurrent(sess.Router, sess.State, licensing))
}
