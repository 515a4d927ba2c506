package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/furuilin66/guandan/services"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
)

type TeamHandler struct {
	teamService services.TeamService
	jwtSecret   []byte
}

func NewTeamHandler(teamService services.TeamService, jwtSecret string) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		jwtSecret:   []byte(jwtSecret),
	}
}

// Login resolves a team by name, registering it on first login, and issues a
// session token the client keeps alongside its teamId.
func (h *TeamHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TeamName string `json:"teamName"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.Login(r.Context(), input.TeamName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	claims := jwt.MapClaims{
		"team_id":   team.TeamID,
		"team_name": team.TeamName,
		"exp":       time.Now().Add(time.Hour * 24).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		serverErrorResponse(w, r, fmt.Errorf("failed to sign token: %w", err))
		return
	}

	response := jsonResponse{
		"teamId":   team.TeamID,
		"teamName": team.TeamName,
		"members":  team.Members,
		"token":    tokenString,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		badRequestResponse(w, r, errors.New("missing teamID in URL path"))
		return
	}

	var input services.UpdateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.Update(r.Context(), teamID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
