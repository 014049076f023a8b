package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/audit_store.go --pkg mocks --with-resets --skip-ensure . AuditStore

// AuditStore persists audit records
type AuditStore interface {
	Add(ctx context.Context, rec storage.AuditRecord) (storage.AuditRecord, error)
}

// Audit writes audit records to storage and, optionally, as JSON lines to a file
type Audit struct {
	store AuditStore
	file  io.Writer // usually rotated log file, can be nil
	mu    sync.Mutex
}

// NewAudit makes Audit handler, file can be nil
func NewAudit(store AuditStore, file io.Writer) *Audit {
	return &Audit{store: store, file: file}
}

// Record converts entry to audit record and writes it everywhere configured
func (a *Audit) Record(ctx context.Context, entry moderation.AuditEntry) error {
	rec := storage.AuditRecord{
		Action:    storage.AuditAction(entry.Action),
		UserID:    entry.User.ID,
		UserName:  entry.User.Name,
		Actor:     entry.Actor.String(),
		ActorKind: string(entry.Actor.Kind()),
		Reason:    entry.Reason,
		Details:   entry.Details,
	}
	if entry.Chat != nil {
		rec.ChatID = entry.Chat.ID
	}

	errs := new(multierror.Error)
	stored, err := a.store.Add(ctx, rec)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to store audit record: %w", err))
	} else {
		rec = stored
	}
	if err := a.writeFile(rec); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

func (a *Audit) writeFile(rec storage.AuditRecord) error {
	if a.file == nil {
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write audit file: %w", err)
	}
	return nil
}
