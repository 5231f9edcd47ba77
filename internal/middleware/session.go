package middleware

import (
	"licensing-subscription-panel/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie 会话 Cookie 名称
const SessionCookie = "panel_session"

// SessionLocal c.Locals 中存放会话的键
const SessionLocal = "session"

// Session 为每个请求挂载会话：Cookie 缺失或无效时新建并下发
func Session(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, created := store.GetOrCreate(c.Cookies(SessionCookie))
		if created {
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(SessionLocal, sess)
		return c.Next()
	}
}
