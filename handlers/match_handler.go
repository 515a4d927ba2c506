package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/furuilin66/guandan/services"
	"github.com/go-chi/chi/v5"
)

type MatchHandler struct {
	matchService  services.MatchService
	exportService services.ExportService
}

func NewMatchHandler(matchService services.MatchService, exportService services.ExportService) *MatchHandler {
	return &MatchHandler{
		matchService:  matchService,
		exportService: exportService,
	}
}

func (h *MatchHandler) Record(w http.ResponseWriter, r *http.Request) {
	var input services.RecordMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.TeamID == "" || input.Round == 0 || input.OpponentName == "" || input.Level == 0 {
		badRequestResponse(w, r, errors.New("teamId, round, opponentName and level are required"))
		return
	}

	result, err := h.matchService.Record(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success":    true,
		"score":      result.Score,
		"totalScore": result.TotalScore,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.matchService.Leaderboard(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"rankings": rankings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Export streams the leaderboard as an xlsx attachment.
func (h *MatchHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportService.LeaderboardXLSX(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	fileName := fmt.Sprintf("leaderboard-%d.xlsx", time.Now().UnixMilli())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Write(data)
}

func (h *MatchHandler) TeamMatches(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		badRequestResponse(w, r, errors.New("missing teamID in URL path"))
		return
	}

	matches, err := h.matchService.TeamMatches(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
