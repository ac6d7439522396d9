package api

import (
	"errors"

	"ringside/models"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// writeError maps service-layer errors onto HTTP responses. Anything
// unrecognized is logged and reported as a 500 without leaking details.
func writeError(c *fiber.Ctx, err error) error {
	var insufficient *models.InsufficientBalanceError
	var transferFailed *models.TransferFailedError

	switch {
	case errors.Is(err, models.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidAmount):
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &insufficient):
		return jsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		return jsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrAlreadyProcessed):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, models.ErrPayeeNotOnboarded):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.As(err, &transferFailed):
		return jsonError(c, fiber.StatusBadGateway, err.Error())
	}

	log.WithError(err).WithFields(log.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("Request failed")

	return jsonError(c, fiber.StatusInternalServerError, "internal server error")
}
