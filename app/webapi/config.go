package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-pkgz/rest"

	"github.com/umputun/tg-moderator/app/config"
)

// ChatSettings provides per-chat warning policy, implemented by config.Lookup
type ChatSettings interface {
	GetEffective(ctx context.Context, chatID int64) (config.WarningSystem, error)
	SetOverride(ctx context.Context, chatID int64, ws config.WarningSystem) error
	DeleteOverride(ctx context.Context, chatID int64) error
}

// getChatConfigHandler handles GET /api/config/{chat_id}, returns effective policy of the chat
func (s *Server) getChatConfigHandler(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(w, r)
	if !ok {
		return
	}
	ws, err := s.Settings.GetEffective(r.Context(), chatID)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err, "can't get chat config")
		return
	}
	rest.RenderJSON(w, rest.JSON{"chat_id": chatID, "warnings": ws})
}

// setChatConfigHandler handles PUT /api/config/{chat_id}, stores override of the chat policy
func (s *Server) setChatConfigHandler(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(w, r)
	if !ok {
		return
	}
	ws := config.WarningSystem{}
	if err := json.NewDecoder(r.Body).Decode(&ws); err != nil {
		renderError(w, http.StatusBadRequest, err, "can't decode request")
		return
	}
	if err := ws.Validate(); err != nil {
		renderError(w, http.StatusBadRequest, err, "invalid chat config")
		return
	}
	if err := s.Settings.SetOverride(r.Context(), chatID, ws); err != nil {
		renderError(w, http.StatusInternalServerError, err, "can't save chat config")
		return
	}
	rest.RenderJSON(w, rest.JSON{"chat_id": chatID, "warnings": ws, "updated": true})
}

// deleteChatConfigHandler handles DELETE /api/config/{chat_id}, chat falls back to defaults
func (s *Server) deleteChatConfigHandler(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(w, r)
	if !ok {
		return
	}
	if err := s.Settings.DeleteOverride(r.Context(), chatID); err != nil {
		renderError(w, http.StatusInternalServerError, err, "can't delete chat config")
		return
	}
	rest.RenderJSON(w, rest.JSON{"chat_id": chatID, "deleted": true})
}

func chatIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	chatID, err := strconv.ParseInt(r.PathValue("chat_id"), 10, 64)
	if err == nil && chatID == 0 {
		err = errors.New("zero chat id")
	}
	if err != nil {
		renderError(w, http.StatusBadRequest, err, "invalid chat id")
		return 0, false
	}
	return chatID, true
}
