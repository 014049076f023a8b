// Package moderation implements the moderation workflows on top of narrow capability handlers.
// Orchestrator owns the business rules: protected system accounts, ban implies distrust, auto-ban after
// too many warnings, and best-effort audit and notifications which never change the primary outcome.
package moderation

import (
	"fmt"
	"strconv"
)

// ActorKind is the kind of the party causing an action
type ActorKind string

// enum of actor kinds
const (
	ActorSystem       ActorKind = "system"
	ActorTelegramUser ActorKind = "telegram_user"
	ActorWebUser      ActorKind = "web_user"
)

// Actor identifies who or what caused an action. Immutable, compare with ==.
type Actor struct {
	kind     ActorKind
	name     string // system component name
	userID   int64  // telegram user id
	username string // telegram username
	webID    string // web account id
	email    string
}

// predefined system actors
var (
	AutoBan       = FromSystem("auto-ban")
	AutoDetection = FromSystem("auto-detection")
	FileScanner   = FromSystem("file-scanner")
	EntryExam     = FromSystem("entry-exam")
)

// FromSystem makes an actor for an internal component
func FromSystem(name string) Actor {
	return Actor{kind: ActorSystem, name: name}
}

// FromTelegramUser makes an actor for a messenger user, usually a chat admin
func FromTelegramUser(id int64, username string) Actor {
	return Actor{kind: ActorTelegramUser, userID: id, username: username}
}

// FromWebUser makes an actor for a user of the web admin
func FromWebUser(id, email string) Actor {
	return Actor{kind: ActorWebUser, webID: id, email: email}
}

// Kind returns the actor kind
func (a Actor) Kind() ActorKind { return a.kind }

// IsSystem is true for internal components
func (a Actor) IsSystem() bool { return a.kind == ActorSystem }

// TelegramUserID returns messenger user id, false for other kinds
func (a Actor) TelegramUserID() (int64, bool) {
	return a.userID, a.kind == ActorTelegramUser
}

// String returns canonical form used in audit records
func (a Actor) String() string {
	switch a.kind {
	case ActorSystem:
		return "system:" + a.name
	case ActorTelegramUser:
		return "telegram:" + strconv.FormatInt(a.userID, 10) + ":" + a.username
	case ActorWebUser:
		return "web:" + a.webID + ":" + a.email
	}
	return "unknown"
}

// DisplayName returns human-readable name for messages
func (a Actor) DisplayName() string {
	switch a.kind {
	case ActorSystem:
		return a.name
	case ActorTelegramUser:
		if a.username != "" {
			return "@" + a.username
		}
		return fmt.Sprintf("user %d", a.userID)
	case ActorWebUser:
		if a.email != "" {
			return a.email
		}
		return "web user " + a.webID
	}
	return "unknown"
}

// UserIdentity is a messenger user, equality by id
type UserIdentity struct {
	ID   int64
	Name string
}

// Equal compares users by id
func (u UserIdentity) Equal(other UserIdentity) bool { return u.ID == other.ID }

// String returns name with id
func (u UserIdentity) String() string {
	if u.Name == "" {
		return strconv.FormatInt(u.ID, 10)
	}
	return fmt.Sprintf("%s (%d)", u.Name, u.ID)
}

// ChatIdentity is a messenger chat, equality by id
type ChatIdentity struct {
	ID    int64
	Title string
}

// Equal compares chats by id
func (c ChatIdentity) Equal(other ChatIdentity) bool { return c.ID == other.ID }

// String returns title with id
func (c ChatIdentity) String() string {
	if c.Title == "" {
		return strconv.FormatInt(c.ID, 10)
	}
	return fmt.Sprintf("%q (%d)", c.Title, c.ID)
}

// scope returns a readable scope of the action, nil chat means all managed chats
func scope(chat *ChatIdentity) string {
	if chat == nil {
		return "all chats"
	}
	return chat.String()
}

// chatID returns id of optional chat, 0 for global actions
func chatID(chat *ChatIdentity) int64 {
	if chat == nil {
		return 0
	}
	return chat.ID
}
