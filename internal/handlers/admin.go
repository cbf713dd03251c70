package handlers

import (
	"strings"

	"educator-site/internal/models"
	"educator-site/internal/services"
	"educator-site/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const AdminPasswordHeader = "X-Admin-Password"

// AdminMiddleware lets a request through with a valid X-Admin-Password header
// or an admin bearer token.
func AdminMiddleware(auth *services.AdminAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if pw := c.Get(AdminPasswordHeader); pw != "" && auth.VerifyPassword(pw) {
			return c.Next()
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(authHeader, "Bearer ") {
			if err := auth.ValidateToken(strings.TrimPrefix(authHeader, "Bearer ")); err == nil {
				return c.Next()
			}
		}

		log.Warnf("auth: rejected admin request %s %s from %s", c.Method(), c.Path(), c.IP())
		return errorJSON(c, fiber.StatusForbidden, msgForbidden)
	}
}

// LoginHandler exchanges the admin password for a token.
func LoginHandler(auth *services.AdminAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := utils.SafeJSONParse(c.Body(), &req); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Invalid request")
		}

		res, err := auth.Login(req.Password)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
