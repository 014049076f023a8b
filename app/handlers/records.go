package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/warn_store.go --pkg mocks --with-resets --skip-ensure . WarnStore
//go:generate moq --out mocks/trust_store.go --pkg mocks --with-resets --skip-ensure . TrustStore
//go:generate moq --out mocks/message_store.go --pkg mocks --with-resets --skip-ensure . MessageStore
//go:generate moq --out mocks/sample_store.go --pkg mocks --with-resets --skip-ensure . SampleStore

// WarnStore persists warnings
type WarnStore interface {
	Warn(ctx context.Context, warn storage.Warning) (int, error)
}

// TrustStore persists trusted users
type TrustStore interface {
	Trust(ctx context.Context, u storage.TrustedUser) error
	Untrust(ctx context.Context, userID int64) (bool, error)
}

// MessageStore keeps local copies of chat messages
type MessageStore interface {
	Backfill(ctx context.Context, msg storage.Message) (storage.BackfillResult, error)
	MarkDeleted(ctx context.Context, chatID int64, msgID int) error
}

// SampleStore keeps training samples
type SampleStore interface {
	Add(ctx context.Context, smpl storage.Sample) error
}

// Warnings records warnings
type Warnings struct {
	store WarnStore
}

// NewWarnings makes Warnings handler
func NewWarnings(store WarnStore) *Warnings { return &Warnings{store: store} }

// Warn stores a warning and returns the count after it, per chat or global for nil chat
func (w *Warnings) Warn(ctx context.Context, user moderation.UserIdentity, chat *moderation.ChatIdentity,
	executor moderation.Actor, reason string, msgID int) (int, error) {
	count, err := w.store.Warn(ctx, storage.Warning{UserID: user.ID, ChatID: chatIDOf(chat), Actor: executor.String(),
		Reason: reason, MessageID: msgID})
	if err != nil {
		return 0, fmt.Errorf("failed to warn %s: %w", user, err)
	}
	return count, nil
}

// Trust manages trusted users
type Trust struct {
	store TrustStore
}

// NewTrust makes Trust handler
func NewTrust(store TrustStore) *Trust { return &Trust{store: store} }

// Trust marks user as trusted
func (t *Trust) Trust(ctx context.Context, user moderation.UserIdentity, executor moderation.Actor, reason string) error {
	if err := t.store.Trust(ctx, storage.TrustedUser{UserID: user.ID, UserName: user.Name, Actor: executor.String(),
		Reason: reason}); err != nil {
		return fmt.Errorf("failed to trust %s: %w", user, err)
	}
	return nil
}

// Untrust removes trust, returns true if the user was trusted
func (t *Trust) Untrust(ctx context.Context, user moderation.UserIdentity) (bool, error) {
	was, err := t.store.Untrust(ctx, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to untrust %s: %w", user, err)
	}
	return was, nil
}

// Messages deletes chat messages and keeps the local copy in sync
type Messages struct {
	client ChatActions
	store  MessageStore
}

// NewMessages makes Messages handler
func NewMessages(client ChatActions, store MessageStore) *Messages {
	return &Messages{client: client, store: store}
}

// EnsureExists backfills the message into local store if it isn't there yet
func (m *Messages) EnsureExists(ctx context.Context, chat moderation.ChatIdentity, msgID int, user moderation.UserIdentity,
	text string, hasMedia bool) error {
	res, err := m.store.Backfill(ctx, storage.Message{ChatID: chat.ID, MsgID: msgID, UserID: user.ID, UserName: user.Name,
		Text: text, HasMedia: hasMedia})
	if err != nil {
		return fmt.Errorf("failed to backfill message %d in %s: %w", msgID, chat, err)
	}
	log.Printf("[DEBUG] message %d in %s: %s", msgID, chat, res)
	return nil
}

// Delete removes the message from the chat, already deleted message is a success
func (m *Messages) Delete(ctx context.Context, chat moderation.ChatIdentity, msgID int) error {
	err := m.client.DeleteMessage(ctx, chat.ID, msgID)
	if err != nil && !errors.Is(err, ErrAlreadyDeleted) {
		return fmt.Errorf("failed to delete message %d in %s: %w", msgID, chat, err)
	}
	if err != nil {
		log.Printf("[DEBUG] message %d in %s already deleted", msgID, chat)
	}
	if err := m.store.MarkDeleted(ctx, chat.ID, msgID); err != nil {
		log.Printf("[WARN] failed to mark message %d in %s deleted: %v", msgID, chat, err)
	}
	return nil
}

// Training feeds spam samples to the detection subsystem
type Training struct {
	store SampleStore
}

// NewTraining makes Training handler
func NewTraining(store SampleStore) *Training { return &Training{store: store} }

// AddSpamSample stores message text as a user spam sample
func (t *Training) AddSpamSample(ctx context.Context, user moderation.UserIdentity, chat moderation.ChatIdentity,
	text string, executor moderation.Actor) error {
	if err := t.store.Add(ctx, storage.Sample{Type: storage.SampleTypeSpam, Origin: storage.SampleOriginUser,
		Message: text, UserID: user.ID, ChatID: chat.ID, Actor: executor.String()}); err != nil {
		return fmt.Errorf("failed to add spam sample from %s: %w", user, err)
	}
	return nil
}
