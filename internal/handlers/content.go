package handlers

import (
	"net/http"

	"educator-site/internal/models"
	"educator-site/internal/services"
	"educator-site/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func ProfileHandler(content *services.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(content.Profile())
	}
}

func RecommendationsHandler(content *services.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"recommendations": content.Recommendations()})
	}
}

func QuizzesHandler(content *services.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"quizzes": content.Quizzes()})
	}
}

// QuizAnswerHandler checks one answer for the quiz in the path.
func QuizAnswerHandler(content *services.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "invalid quiz id")
		}

		var req models.QuizAnswerRequest
		if err := utils.SafeJSONParse(c.Body(), &req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid request")
		}

		res, err := content.CheckAnswer(id, req.Answer)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func PollHandler(content *services.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(content.Poll())
	}
}

func PollSubmitHandler(content *services.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PollSubmitRequest
		if err := utils.SafeJSONParse(c.Body(), &req); err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid request")
		}

		res, err := content.SubmitPoll(req.Answer, req.Comment)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
