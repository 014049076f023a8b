package moderation

import (
	"fmt"
	"time"
)

// Outcome is the primary result of an operation.
// Secondary flags in result types are true only if that sub-step itself succeeded.
type Outcome struct {
	Success      bool
	ErrorMessage string
}

// Fanout counts chats affected by a global action
type Fanout struct {
	ChatsAffected int
	ChatsFailed   int
}

// BanResult is the result of BanUser and SyncBanToChat
type BanResult struct {
	Outcome
	Fanout
	TrustRemoved bool
}

// WarnResult is the result of WarnUser
type WarnResult struct {
	Outcome
	WarningCount     int
	AutoBanTriggered bool
	UserNotified     bool
}

// TempBanResult is the result of TempBanUser
type TempBanResult struct {
	Outcome
	Fanout
	ExpiresAt    time.Time
	UserNotified bool
}

// RestrictResult is the result of RestrictUser
type RestrictResult struct {
	Outcome
	Fanout
	ExpiresAt    time.Time
	UserNotified bool
}

// UnbanResult is the result of UnbanUser
type UnbanResult struct {
	Outcome
	Fanout
	TrustRestored bool
}

// SpamBanResult is the result of MarkAsSpamAndBan
type SpamBanResult struct {
	Outcome
	Fanout
	MessageDeleted      bool
	TrustRemoved        bool
	TrainingSampleAdded bool
}

// DeleteResult is the result of DeleteMessage
type DeleteResult struct {
	Outcome
	MessageDeleted bool
}

// ViolationResult is the result of content violation workflows
type ViolationResult struct {
	Outcome
	MessageDeleted bool
	ReportCreated  bool
	AdminsNotified bool
	UserNotified   bool
}

// ActionResult is the result of single-step operations
type ActionResult struct {
	Outcome
}

func succeeded() Outcome { return Outcome{Success: true} }

func failed(format string, args ...any) Outcome {
	return Outcome{Success: false, ErrorMessage: fmt.Sprintf(format, args...)}
}
