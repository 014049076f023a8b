package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/report_store.go --pkg mocks --with-resets --skip-ensure . ReportStore
//go:generate moq --out mocks/review_publisher.go --pkg mocks --with-resets --skip-ensure . ReviewPublisher

// ReportStore persists reports
type ReportStore interface {
	Add(ctx context.Context, rep storage.Report) (int64, error)
}

// ReviewPublisher shows a stored report to admins with review buttons
type ReviewPublisher interface {
	Publish(ctx context.Context, rep storage.Report) error
}

// ReportOpener opens reports on behalf of automatic detectors and the exam flow
type ReportOpener struct {
	store     ReportStore
	publisher ReviewPublisher
}

// NewReportOpener makes ReportOpener
func NewReportOpener(store ReportStore, publisher ReviewPublisher) *ReportOpener {
	return &ReportOpener{store: store, publisher: publisher}
}

// OpenReport stores a pending content report and publishes it for review.
// A stored report is returned even if publication failed.
func (r *ReportOpener) OpenReport(ctx context.Context, req moderation.ReportRequest) (int64, error) {
	return r.open(ctx, storage.ReportContent, req)
}

// OpenExamFailure stores a review of a user who failed the entry exam, admins approve or deny them
func (r *ReportOpener) OpenExamFailure(ctx context.Context, req moderation.ReportRequest) (int64, error) {
	return r.open(ctx, storage.ReportExamFailure, req)
}

func (r *ReportOpener) open(ctx context.Context, t storage.ReportType, req moderation.ReportRequest) (int64, error) {
	rep := storage.Report{
		Type:            t,
		ChatID:          req.Chat.ID,
		ChatTitle:       req.Chat.Title,
		SubjectUserID:   req.User.ID,
		SubjectUserName: req.User.Name,
		MessageID:       req.MessageID,
		ReporterName:    req.Reporter.DisplayName(),
		Text:            req.Text,
		Reason:          strings.TrimSpace(strings.Join(append([]string{req.Reason}, req.Violations...), "\n")),
		Status:          storage.ReportPending,
	}
	if id, ok := req.Reporter.TelegramUserID(); ok {
		rep.ReporterID = id
	}

	id, err := r.store.Add(ctx, rep)
	if err != nil {
		return 0, fmt.Errorf("failed to store %s report on %s: %w", t, req.User, err)
	}
	rep.ID = id
	if err := r.publisher.Publish(ctx, rep); err != nil {
		log.Printf("[WARN] report %d stored but not published: %v", id, err)
	}
	return id, nil
}
