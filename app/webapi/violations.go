package webapi

import (
	"errors"
	"net/http"

	"github.com/go-pkgz/rest"

	"github.com/umputun/tg-moderator/app/moderation"
)

// deleteHandler handles POST /api/delete, removes a single message
func (s *Server) deleteHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMessageAction(w, r)
	if !ok {
		return
	}
	res := s.Moderator.DeleteMessage(r.Context(), moderation.DeleteMessageIntent{User: req.user(), Executor: webActor(r),
		Reason: req.Reason, Chat: *req.chat(), MessageID: req.MessageID})
	renderOutcome(w, res.Outcome, rest.JSON{"message_deleted": res.MessageDeleted})
}

// malwareHandler handles POST /api/violations/malware, sent by the file scanner.
// The message is removed and reported to admins, the author is not punished.
func (s *Server) malwareHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMessageAction(w, r)
	if !ok {
		return
	}
	res := s.Moderator.HandleMalwareViolation(r.Context(), moderation.MalwareViolationIntent{User: req.user(),
		Executor: moderation.FileScanner, Reason: req.Reason, Chat: *req.chat(), MessageID: req.MessageID,
		Text: req.Text, Violations: req.Violations})
	renderViolation(w, res)
}

// criticalHandler handles POST /api/violations/critical, the message is removed and its author told why
func (s *Server) criticalHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMessageAction(w, r)
	if !ok {
		return
	}
	res := s.Moderator.HandleCriticalViolation(r.Context(), moderation.CriticalViolationIntent{User: req.user(),
		Executor: moderation.AutoDetection, Reason: req.Reason, Chat: *req.chat(), MessageID: req.MessageID,
		Violations: req.Violations})
	renderViolation(w, res)
}

// decodeMessageAction decodes action on a message, both chat_id and message_id are required
func decodeMessageAction(w http.ResponseWriter, r *http.Request) (actionRequest, bool) {
	req, ok := decodeAction(w, r)
	if !ok {
		return req, false
	}
	if req.ChatID == 0 || req.MessageID == 0 {
		renderError(w, http.StatusBadRequest, errors.New("chat_id and message_id are required"), "can't decode request")
		return req, false
	}
	return req, true
}

func renderViolation(w http.ResponseWriter, res moderation.ViolationResult) {
	renderOutcome(w, res.Outcome, rest.JSON{"message_deleted": res.MessageDeleted, "report_created": res.ReportCreated,
		"admins_notified": res.AdminsNotified, "user_notified": res.UserNotified})
}
