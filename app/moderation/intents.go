package moderation

import "time"

// Intents describe a requested operation. Chat set to nil means the action applies to all managed chats.

// BanIntent requests a permanent ban
type BanIntent struct {
	User     UserIdentity
	Executor Actor
	Reason   string
	Chat     *ChatIdentity
}

// WarnIntent requests a warning, may escalate to auto-ban
type WarnIntent struct {
	User      UserIdentity
	Executor  Actor
	Reason    string
	Chat      *ChatIdentity
	MessageID int
}

// TempBanIntent requests a ban for a limited time
type TempBanIntent struct {
	User     UserIdentity
	Executor Actor
	Reason   string
	Chat     *ChatIdentity
	Duration time.Duration
}

// RestrictIntent requests a read-only mode for a limited time
type RestrictIntent struct {
	User     UserIdentity
	Executor Actor
	Reason   string
	Chat     *ChatIdentity
	Duration time.Duration
}

// UnbanIntent requests lifting a ban, optionally trusting the user back
type UnbanIntent struct {
	User         UserIdentity
	Executor     Actor
	Reason       string
	Chat         *ChatIdentity
	RestoreTrust bool
}

// SpamBanIntent marks a message as spam, removes it and bans the author everywhere
type SpamBanIntent struct {
	User      UserIdentity
	Executor  Actor
	Reason    string
	Chat      ChatIdentity
	MessageID int
	Text      string
	HasMedia  bool
}

// DeleteMessageIntent requests removal of a single message
type DeleteMessageIntent struct {
	User      UserIdentity
	Executor  Actor
	Reason    string
	Chat      ChatIdentity
	MessageID int
}

// KickIntent removes user from a chat without a lasting ban
type KickIntent struct {
	User     UserIdentity
	Executor Actor
	Reason   string
	Chat     ChatIdentity
}

// RestorePermissionsIntent gives back default member permissions in a chat
type RestorePermissionsIntent struct {
	User     UserIdentity
	Executor Actor
	Reason   string
	Chat     ChatIdentity
}

// SyncBanIntent applies an existing global ban to a newly observed chat
type SyncBanIntent struct {
	User     UserIdentity
	Executor Actor
	Reason   string
	Chat     ChatIdentity
}

// MalwareViolationIntent reports a message flagged by the file scanner
type MalwareViolationIntent struct {
	User       UserIdentity
	Executor   Actor
	Reason     string
	Chat       ChatIdentity
	MessageID  int
	Text       string // flagged message text, becomes a spam sample if admins confirm
	Violations []string
}

// CriticalViolationIntent reports a message flagged as critical content
type CriticalViolationIntent struct {
	User       UserIdentity
	Executor   Actor
	Reason     string
	Chat       ChatIdentity
	MessageID  int
	Violations []string
}

// TrustIntent exempts user from automatic moderation
type TrustIntent struct {
	User     UserIdentity
	Executor Actor
	Reason   string
}
