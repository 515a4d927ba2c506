package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/furuilin66/guandan/live"
	"github.com/furuilin66/guandan/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The API already serves cross-origin clients (mini-program and the
		// SPA during development), so the websocket accepts any origin too.
		return true
	},
}

type WebSocketHandler struct {
	hub          *live.Hub
	matchService services.MatchService
	logger       *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, matchService services.MatchService, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		matchService: matchService,
		logger:       logger,
	}
}

// ServeWs upgrades the connection and subscribes it to leaderboard updates,
// sending the current standings immediately.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade websocket connection", slog.Any("error", err))
		return
	}

	var initial []byte
	rankings, err := h.matchService.Leaderboard(r.Context())
	if err != nil {
		h.logger.Error("failed to load leaderboard for new subscriber", slog.Any("error", err))
	} else {
		initial, err = json.Marshal(live.Message{Type: live.MessageLeaderboardUpdated, Payload: rankings})
		if err != nil {
			h.logger.Error("failed to marshal leaderboard snapshot", slog.Any("error", err))
			initial = nil
		}
	}

	client := live.NewClient(h.hub, conn)
	client.Start(initial)
}
