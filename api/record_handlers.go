package api

import (
	"errors"
	"time"

	"ringside/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type setRecordRequest struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

type resolveBoutRequest struct {
	WinnerSide string `json:"winner_side"`
}

type fightHistoryRequest struct {
	OpponentName string `json:"opponent_name"`
	Result       string `json:"result"`
	EventDate    string `json:"event_date"`
}

func fighterResponse(fighter *models.Fighter) fiber.Map {
	return fiber.Map{
		"id":                 fighter.ID,
		"display_name":       fighter.DisplayName,
		"record":             fighter.Record,
		"last_5_form":        fighter.Last5Form,
		"current_win_streak": fighter.CurrentWinStreak,
	}
}

// RefreshRecord recomputes a fighter's derived record fields
func (s *Server) RefreshRecord(c *fiber.Ctx) error {
	fighterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid fighter id")
	}

	fighter, err := s.records.RefreshRecord(c.Context(), fighterID)
	if err != nil {
		return writeError(c, err)
	}

	return jsonSuccess(c, fighterResponse(fighter))
}

// SetRecord overrides a fighter's total record by reverse-calculating
// the stored baseline
func (s *Server) SetRecord(c *fiber.Ctx) error {
	fighterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid fighter id")
	}

	var req setRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	newTotal := models.RecordTriple{Wins: req.Wins, Losses: req.Losses, Draws: req.Draws}
	fighter, err := s.records.SetRecord(c.Context(), fighterID, newTotal)
	if err != nil {
		return writeError(c, err)
	}

	return jsonSuccess(c, fighterResponse(fighter))
}

// ResolveBout records a bout's winner side and refreshes both corners
func (s *Server) ResolveBout(c *fiber.Ctx) error {
	boutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid bout id")
	}

	var req resolveBoutRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	side := models.WinnerSide(req.WinnerSide)
	if !side.IsValid() {
		return jsonError(c, fiber.StatusBadRequest, "invalid winner side")
	}

	bout, err := s.records.ResolveBout(c.Context(), boutID, side)
	if err != nil {
		return writeError(c, err)
	}

	return jsonSuccess(c, fiber.Map{
		"id":              bout.ID,
		"event_id":        bout.EventID,
		"red_fighter_id":  bout.RedFighterID,
		"blue_fighter_id": bout.BlueFighterID,
		"winner_side":     bout.WinnerSide,
		"resolved_at":     bout.ResolvedAt,
	})
}

// AddFightHistory records an off-platform fight for a fighter
func (s *Server) AddFightHistory(c *fiber.Ctx) error {
	fighterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid fighter id")
	}

	var req fightHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := fightHistoryFromRequest(fighterID, req)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err = s.records.AddFightHistory(c.Context(), entry)
	if err != nil {
		return writeError(c, err)
	}

	return jsonCreated(c, fightHistoryResponse(entry))
}

// UpdateFightHistory edits an off-platform fight entry
func (s *Server) UpdateFightHistory(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	fighterID, err := uuid.Parse(c.Query("fighter_id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid fighter id")
	}

	var req fightHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := fightHistoryFromRequest(fighterID, req)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	entry.ID = entryID

	if err := s.records.UpdateFightHistory(c.Context(), entry); err != nil {
		return writeError(c, err)
	}

	return jsonSuccess(c, fightHistoryResponse(entry))
}

// DeleteFightHistory removes an off-platform fight entry
func (s *Server) DeleteFightHistory(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	if err := s.records.DeleteFightHistory(c.Context(), entryID); err != nil {
		return writeError(c, err)
	}

	return jsonSuccess(c, nil)
}

func fightHistoryFromRequest(fighterID uuid.UUID, req fightHistoryRequest) (*models.FightHistory, error) {
	result := models.FightResult(req.Result)
	if !result.IsValid() {
		return nil, errors.New("invalid fight result")
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, errors.New("event_date must be YYYY-MM-DD")
	}

	return &models.FightHistory{
		FighterID:    fighterID,
		OpponentName: req.OpponentName,
		Result:       result,
		EventDate:    eventDate,
	}, nil
}

func fightHistoryResponse(entry *models.FightHistory) fiber.Map {
	return fiber.Map{
		"id":            entry.ID,
		"fighter_id":    entry.FighterID,
		"opponent_name": entry.OpponentName,
		"result":        entry.Result,
		"event_date":    entry.EventDate.Format("2006-01-02"),
	}
}
