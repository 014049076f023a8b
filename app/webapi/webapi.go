// Package webapi provides REST API for web administrators and external detectors: moderation actions,
// content violations, review queue, audit history of a user and per-chat warning policy.
package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/moderator.go --pkg mocks --with-resets --skip-ensure . Moderator
//go:generate moq --out mocks/audit_reader.go --pkg mocks --with-resets --skip-ensure . AuditReader
//go:generate moq --out mocks/chat_settings.go --pkg mocks --with-resets --skip-ensure . ChatSettings
//go:generate moq --out mocks/sample_reader.go --pkg mocks --with-resets --skip-ensure . SampleReader
//go:generate moq --out mocks/pending_reports.go --pkg mocks --with-resets --skip-ensure . PendingReports
//go:generate moq --out mocks/exam_reports.go --pkg mocks --with-resets --skip-ensure . ExamReports

// authUser is the basic auth user name
const authUser = "tg-moderator"

// Server is a web API server.
type Server struct {
	Config
}

// Config defines server parameters
type Config struct {
	Version    string         // version to show in /ping
	ListenAddr string         // listen address
	Moderator  Moderator      // moderation workflows
	Audit      AuditReader    // audit history
	Settings   ChatSettings   // per-chat warning policy, optional
	Samples    SampleReader   // training samples, optional
	Reports    PendingReports // reports waiting for review, optional
	Exams      ExamReports    // opens exam failure reviews, optional
	Metrics    http.Handler   // prometheus handler, optional
	AuthPasswd string         // basic auth password for user "tg-moderator"
	RateLimit  float64        // requests per second per client
}

// Moderator runs moderation workflows, implemented by moderation.Orchestrator
type Moderator interface {
	BanUser(ctx context.Context, in moderation.BanIntent) moderation.BanResult
	UnbanUser(ctx context.Context, in moderation.UnbanIntent) moderation.UnbanResult
	WarnUser(ctx context.Context, in moderation.WarnIntent) moderation.WarnResult
	TempBanUser(ctx context.Context, in moderation.TempBanIntent) moderation.TempBanResult
	RestrictUser(ctx context.Context, in moderation.RestrictIntent) moderation.RestrictResult
	TrustUser(ctx context.Context, in moderation.TrustIntent) moderation.ActionResult
	DeleteMessage(ctx context.Context, in moderation.DeleteMessageIntent) moderation.DeleteResult
	HandleMalwareViolation(ctx context.Context, in moderation.MalwareViolationIntent) moderation.ViolationResult
	HandleCriticalViolation(ctx context.Context, in moderation.CriticalViolationIntent) moderation.ViolationResult
}

// AuditReader provides audit records of a user
type AuditReader interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]storage.AuditRecord, error)
}

// actionRequest is the body of moderation requests. Zero ChatID means all managed chats.
type actionRequest struct {
	UserID       int64    `json:"user_id"`
	UserName     string   `json:"user_name"`
	ChatID       int64    `json:"chat_id"`
	ChatTitle    string   `json:"chat_title"`
	MessageID    int      `json:"message_id"` // delete and violations
	Text         string   `json:"text"`       // flagged message text, violations only
	Reason       string   `json:"reason"`
	Violations   []string `json:"violations"`
	Duration     string   `json:"duration"`      // tempban and restrict, like "1h30m"
	RestoreTrust bool     `json:"restore_trust"` // unban only
}

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	return &Server{Config: config}
}

// Run starts server and accepts requests
func (s *Server) Run(ctx context.Context) error {
	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server")
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}

	srv := &http.Server{Addr: s.ListenAddr, Handler: s.routes(), ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout: 30 * time.Second, IdleTimeout: 30 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) routes() http.Handler {
	rateLimit := s.RateLimit
	if rateLimit <= 0 {
		rateLimit = 10
	}
	lmt := tollbooth.NewLimiter(rateLimit, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})

	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()), rest.Throttle(1000), rest.AppInfo("tg-moderator", "umputun", s.Version),
		rest.Ping, tollbooth.HTTPMiddleware(lmt), rest.SizeLimit(1024*1024))
	if s.Metrics != nil {
		router.Handle("GET /metrics", s.Metrics)
	}

	api := router.Mount("/api")
	api.Use(s.authMiddleware(rest.BasicAuthWithUserPasswd(authUser, s.AuthPasswd)))
	api.HandleFunc("POST /ban", s.banHandler)
	api.HandleFunc("POST /unban", s.unbanHandler)
	api.HandleFunc("POST /warn", s.warnHandler)
	api.HandleFunc("POST /tempban", s.tempBanHandler)
	api.HandleFunc("POST /restrict", s.restrictHandler)
	api.HandleFunc("POST /trust", s.trustHandler)
	api.HandleFunc("POST /delete", s.deleteHandler)
	api.HandleFunc("POST /violations/malware", s.malwareHandler)
	api.HandleFunc("POST /violations/critical", s.criticalHandler)
	api.HandleFunc("GET /audit/{user_id}", s.auditHandler)
	if s.Reports != nil {
		api.HandleFunc("GET /reports", s.pendingReportsHandler)
	}
	if s.Exams != nil {
		api.HandleFunc("POST /reports/exam-failure", s.examFailureHandler)
	}
	if s.Samples != nil {
		api.HandleFunc("GET /samples/{type}", s.samplesHandler)
	}
	if s.Settings != nil {
		api.HandleFunc("GET /config/{chat_id}", s.getChatConfigHandler)
		api.HandleFunc("PUT /config/{chat_id}", s.setChatConfigHandler)
		api.HandleFunc("DELETE /config/{chat_id}", s.deleteChatConfigHandler)
	}
	return router
}

// banHandler handles POST /api/ban, bans user in the chat or everywhere
func (s *Server) banHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	res := s.Moderator.BanUser(r.Context(), moderation.BanIntent{User: req.user(), Executor: webActor(r),
		Reason: req.Reason, Chat: req.chat()})
	renderOutcome(w, res.Outcome, rest.JSON{"chats_affected": res.ChatsAffected, "chats_failed": res.ChatsFailed,
		"trust_removed": res.TrustRemoved})
}

// unbanHandler handles POST /api/unban, optionally restoring trust
func (s *Server) unbanHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	res := s.Moderator.UnbanUser(r.Context(), moderation.UnbanIntent{User: req.user(), Executor: webActor(r),
		Reason: req.Reason, Chat: req.chat(), RestoreTrust: req.RestoreTrust})
	renderOutcome(w, res.Outcome, rest.JSON{"chats_affected": res.ChatsAffected, "chats_failed": res.ChatsFailed,
		"trust_restored": res.TrustRestored})
}

// warnHandler handles POST /api/warn, chat is required
func (s *Server) warnHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if req.ChatID == 0 {
		renderError(w, http.StatusBadRequest, errors.New("chat_id is required"), "can't warn")
		return
	}
	res := s.Moderator.WarnUser(r.Context(), moderation.WarnIntent{User: req.user(), Executor: webActor(r),
		Reason: req.Reason, Chat: req.chat()})
	renderOutcome(w, res.Outcome, rest.JSON{"warning_count": res.WarningCount, "auto_ban": res.AutoBanTriggered,
		"user_notified": res.UserNotified})
}

// tempBanHandler handles POST /api/tempban, duration is required
func (s *Server) tempBanHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	dur, ok := req.duration(w)
	if !ok {
		return
	}
	res := s.Moderator.TempBanUser(r.Context(), moderation.TempBanIntent{User: req.user(), Executor: webActor(r),
		Reason: req.Reason, Chat: req.chat(), Duration: dur})
	renderOutcome(w, res.Outcome, rest.JSON{"chats_affected": res.ChatsAffected, "chats_failed": res.ChatsFailed,
		"expires_at": res.ExpiresAt, "user_notified": res.UserNotified})
}

// restrictHandler handles POST /api/restrict, user becomes read-only for the duration
func (s *Server) restrictHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	dur, ok := req.duration(w)
	if !ok {
		return
	}
	res := s.Moderator.RestrictUser(r.Context(), moderation.RestrictIntent{User: req.user(), Executor: webActor(r),
		Reason: req.Reason, Chat: req.chat(), Duration: dur})
	renderOutcome(w, res.Outcome, rest.JSON{"chats_affected": res.ChatsAffected, "chats_failed": res.ChatsFailed,
		"expires_at": res.ExpiresAt, "user_notified": res.UserNotified})
}

// trustHandler handles POST /api/trust
func (s *Server) trustHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	res := s.Moderator.TrustUser(r.Context(), moderation.TrustIntent{User: req.user(), Executor: webActor(r), Reason: req.Reason})
	renderOutcome(w, res.Outcome, rest.JSON{})
}

// auditHandler handles GET /api/audit/{user_id}?limit=N, returns the latest records first
func (s *Server) auditHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("user_id"), 10, 64)
	if err != nil {
		renderError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}
	recs, err := s.Audit.ListByUser(r.Context(), userID, limit)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err, "can't get audit records")
		return
	}
	rest.RenderJSON(w, rest.JSON{"user_id": userID, "records": recs})
}

// limitParam returns "limit" query value, 100 if not set
func limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 100, true
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit <= 0 {
		renderError(w, http.StatusBadRequest, fmt.Errorf("bad limit %q", v), "invalid limit")
		return 0, false
	}
	return limit, true
}

func (s *Server) authMiddleware(mw func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	if s.AuthPasswd == "" {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return mw
}

func decodeAction(w http.ResponseWriter, r *http.Request) (actionRequest, bool) {
	req := actionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, err, "can't decode request")
		return req, false
	}
	if req.UserID == 0 {
		renderError(w, http.StatusBadRequest, errors.New("user_id is required"), "can't decode request")
		return req, false
	}
	if req.Reason == "" {
		req.Reason = "web admin action"
	}
	return req, true
}

func (req actionRequest) user() moderation.UserIdentity {
	return moderation.UserIdentity{ID: req.UserID, Name: req.UserName}
}

func (req actionRequest) chat() *moderation.ChatIdentity {
	if req.ChatID == 0 {
		return nil
	}
	return &moderation.ChatIdentity{ID: req.ChatID, Title: req.ChatTitle}
}

func (req actionRequest) duration(w http.ResponseWriter) (time.Duration, bool) {
	dur, err := time.ParseDuration(req.Duration)
	if err != nil || dur <= 0 {
		renderError(w, http.StatusBadRequest, fmt.Errorf("bad duration %q", req.Duration), "invalid duration")
		return 0, false
	}
	return dur, true
}

// webActor makes actor from basic auth user, anonymous if auth disabled
func webActor(r *http.Request) moderation.Actor {
	if user, _, ok := r.BasicAuth(); ok && user != "" {
		return moderation.FromWebUser(user, "")
	}
	return moderation.FromWebUser("anonymous", "")
}

// renderOutcome renders the result, failed outcome is 422 with the error message
func renderOutcome(w http.ResponseWriter, out moderation.Outcome, fields rest.JSON) {
	fields["success"] = out.Success
	if !out.Success {
		fields["error"] = out.ErrorMessage
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	rest.RenderJSON(w, fields)
}

func renderError(w http.ResponseWriter, code int, err error, msg string) {
	w.WriteHeader(code)
	rest.RenderJSON(w, rest.JSON{"error": msg, "details": err.Error()})
}
