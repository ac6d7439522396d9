package api

import (
	"errors"

	"ringside/models"
	"ringside/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type requestPayoutRequest struct {
	PayeeID     string  `json:"payee_id"`
	PayeeType   string  `json:"payee_type"`
	EventID     *string `json:"event_id"`
	AmountCents int64   `json:"amount_cents"`
}

type processPayoutRequest struct {
	Action string `json:"action"`
}

func payoutRequestResponse(request *models.PayoutRequest) fiber.Map {
	return fiber.Map{
		"id":               request.ID,
		"payee_id":         request.PayeeID,
		"payee_type":       request.PayeeType,
		"event_id":         request.EventID,
		"amount_requested": request.AmountRequested,
		"status":           request.Status,
		"transfer_id":      request.TransferID,
		"failure_reason":   request.FailureReason,
		"requested_at":     request.RequestedAt,
		"processed_at":     request.ProcessedAt,
	}
}

// GetFighterBalance returns a fighter's earned and available balance
func (s *Server) GetFighterBalance(c *fiber.Ctx) error {
	fighterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid fighter id")
	}

	balance, err := s.payouts.GetFighterBalance(c.Context(), fighterID)
	if err != nil {
		return writeError(c, err)
	}

	return jsonSuccess(c, fiber.Map{
		"allocation_earnings": balance.AllocationEarnings,
		"tip_earnings":        balance.TipEarnings,
		"total":               balance.Total,
		"reserved":            balance.Reserved,
		"available":           balance.Available,
	})
}

// GetOrganizerBalance returns an organizer's share and available balance
func (s *Server) GetOrganizerBalance(c *fiber.Ctx) error {
	organizerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid organizer id")
	}

	balance, err := s.payouts.GetOrganizerBalance(c.Context(), organizerID)
	if err != nil {
		return writeError(c, err)
	}

	return jsonSuccess(c, fiber.Map{
		"event_revenue":   balance.EventRevenue,
		"platform_fee":    balance.PlatformFee,
		"fighter_share":   balance.FighterShare,
		"organizer_share": balance.OrganizerShare,
		"reserved":        balance.Reserved,
		"available":       balance.Available,
	})
}

// RequestPayout validates and creates a pending payout request
func (s *Server) RequestPayout(c *fiber.Ctx) error {
	var req requestPayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	payeeID, err := uuid.Parse(req.PayeeID)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid payee id")
	}

	payeeType := models.PayeeType(req.PayeeType)
	if payeeType != models.PayeeTypeFighter && payeeType != models.PayeeTypeOrganizer {
		return jsonError(c, fiber.StatusBadRequest, "payee_type must be fighter or organizer")
	}

	var eventID *uuid.UUID
	if req.EventID != nil && *req.EventID != "" {
		parsed, err := uuid.Parse(*req.EventID)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid event id")
		}
		eventID = &parsed
	}

	request, err := s.payouts.RequestPayout(c.Context(), payeeID, payeeType, eventID, req.AmountCents)
	if err != nil {
		return writeError(c, err)
	}

	return jsonCreated(c, payoutRequestResponse(request))
}

// ProcessPayout approves or rejects a pending payout request. The acting
// profile is identified by the X-Actor-ID header.
func (s *Server) ProcessPayout(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request id")
	}

	actorID, err := uuid.Parse(c.Get("X-Actor-ID"))
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "X-Actor-ID header required")
	}

	var req processPayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	action := service.PayoutAction(req.Action)
	if action != service.PayoutActionApprove && action != service.PayoutActionReject {
		return jsonError(c, fiber.StatusBadRequest, "action must be approve or reject")
	}

	request, err := s.payouts.ProcessPayout(c.Context(), requestID, action, actorID)
	if err != nil {
		// A failed transfer still moved the request to a terminal state;
		// include it alongside the error mapping.
		var transferFailed *models.TransferFailedError
		if errors.As(err, &transferFailed) && request != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
				"data":    payoutRequestResponse(request),
			})
		}
		return writeError(c, err)
	}

	return jsonSuccess(c, payoutRequestResponse(request))
}
