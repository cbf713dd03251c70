package handlers

import (
	"errors"
	"net/http"

	"educator-site/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	msgForbidden        = "Неверный пароль администратора"
	msgMissingFields    = "Требуются поля title и image"
	msgMissingID        = "Требуется параметр id"
	msgMethodNotAllowed = "Метод не поддерживается"
)

type apiError struct {
	status  int
	message string
}

// errorTable maps service errors to their HTTP form.
var errorTable = []struct {
	err error
	apiError
}{
	{models.ErrMissingFields, apiError{http.StatusBadRequest, msgMissingFields}},
	{models.ErrInvalidImage, apiError{http.StatusBadRequest, "Файл не является изображением"}},
	{models.ErrPhotoNotFound, apiError{http.StatusNotFound, "Фотография не найдена"}},
	{models.ErrUnauthorized, apiError{http.StatusForbidden, msgForbidden}},
	{models.ErrAdminNotConfigured, apiError{http.StatusForbidden, msgForbidden}},
	{models.ErrQuizNotFound, apiError{http.StatusNotFound, "Тест не найден"}},
	{models.ErrAnswerRequired, apiError{http.StatusBadRequest, "Выберите вариант ответа"}},
	{models.ErrPollAnswerRequired, apiError{http.StatusBadRequest, "Выберите вариант ответа"}},
	{models.ErrUnknownPollOption, apiError{http.StatusBadRequest, "Неизвестный вариант ответа"}},
	{models.ErrCommentTooLong, apiError{http.StatusBadRequest, "Комментарий слишком длинный"}},
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondError writes a known service error, or a 500 for anything else.
func respondError(c *fiber.Ctx, err error) error {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return errorJSON(c, e.status, e.message)
		}
	}

	log.Errorf("api: %s %s: %v", c.Method(), c.Path(), err)
	return errorJSON(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
}

// ErrorHandler renders framework errors (unknown route, wrong method, body too large)
// with the same JSON shape as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusMethodNotAllowed:
			return errorJSON(c, fe.Code, msgMethodNotAllowed)
		case fiber.StatusRequestEntityTooLarge:
			return errorJSON(c, fe.Code, "Файл слишком большой")
		default:
			return errorJSON(c, fe.Code, fe.Message)
		}
	}

	return respondError(c, err)
}
