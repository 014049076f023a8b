package events

import (
	"strconv"
	"strings"
)

// SuperUsers are users allowed to run admin commands, by username or numeric id
type SuperUsers []string

// IsSuper checks if user is in the list, usernames match case-insensitive with optional @
func (s SuperUsers) IsSuper(userName string, userID int64) bool {
	id := strconv.FormatInt(userID, 10)
	for _, super := range s {
		super = strings.TrimPrefix(strings.TrimSpace(super), "@")
		if super == "" {
			continue
		}
		if userID != 0 && super == id {
			return true
		}
		if userName != "" && strings.EqualFold(userName, super) {
			return true
		}
	}
	return false
}
