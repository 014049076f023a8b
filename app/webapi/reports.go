package webapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-pkgz/rest"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

// PendingReports lists reports waiting for admin review, implemented by storage.Reports
type PendingReports interface {
	ListPending(ctx context.Context, limit int) ([]storage.Report, error)
}

// pendingReportsHandler handles GET /api/reports?limit=N, newest first
func (s *Server) pendingReportsHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(w, r)
	if !ok {
		return
	}
	reports, err := s.Reports.ListPending(r.Context(), limit)
	if err != nil {
		renderError(w, http.StatusInternalServerError, err, "can't get pending reports")
		return
	}
	rest.RenderJSON(w, rest.JSON{"reports": reports, "count": len(reports)})
}

// ExamReports opens reviews of users who failed the entry exam, implemented by handlers.ReportOpener
type ExamReports interface {
	OpenExamFailure(ctx context.Context, req moderation.ReportRequest) (int64, error)
}

// examFailureHandler handles POST /api/reports/exam-failure, sent by the entry exam flow
func (s *Server) examFailureHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAction(w, r)
	if !ok {
		return
	}
	if req.ChatID == 0 {
		renderError(w, http.StatusBadRequest, errors.New("chat_id is required"), "can't open exam review")
		return
	}
	id, err := s.Exams.OpenExamFailure(r.Context(), moderation.ReportRequest{User: req.user(), Chat: *req.chat(),
		Reporter: moderation.EntryExam, Text: req.Text, Reason: req.Reason})
	if err != nil {
		renderError(w, http.StatusInternalServerError, err, "can't open exam review")
		return
	}
	w.WriteHeader(http.StatusCreated)
	rest.RenderJSON(w, rest.JSON{"report_id": id})
}
