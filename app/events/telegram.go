package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/go-pkgz/repeater"
	"golang.org/x/time/rate"

	"github.com/umputun/tg-moderator/app/handlers"
)

// minRestrictPeriod is the shortest ban/restriction telegram accepts as temporary,
// shorter "until" values make the action permanent.
const minRestrictPeriod = 30 * time.Second

// TelegramActions is a chat-action client over bot api. All calls share a rate limiter
// and retry on flood control errors.
type TelegramActions struct {
	tbAPI   TbAPI
	limiter *rate.Limiter
	rpt     *repeater.Repeater
	dry     bool
	now     func() time.Time
}

// ActionsParams defines parameters of TelegramActions
type ActionsParams struct {
	RatePerSec float64       // api calls per second, 0 means no limit
	Attempts   int           // attempts per call, 1 disables retries
	RetryDelay time.Duration // delay between attempts
	Dry        bool          // log actions instead of calling the api
}

// NewTelegramActions makes TelegramActions client
func NewTelegramActions(tbAPI TbAPI, params ActionsParams) *TelegramActions {
	limit := rate.Inf
	if params.RatePerSec > 0 {
		limit = rate.Limit(params.RatePerSec)
	}
	if params.Attempts <= 0 {
		params.Attempts = 3
	}
	if params.RetryDelay <= 0 {
		params.RetryDelay = 500 * time.Millisecond
	}
	return &TelegramActions{
		tbAPI:   tbAPI,
		limiter: rate.NewLimiter(limit, 1),
		rpt:     repeater.NewDefault(params.Attempts, params.RetryDelay),
		dry:     params.Dry,
		now:     time.Now,
	}
}

// BanChatMember bans user in the chat, zero until means forever
func (t *TelegramActions) BanChatMember(ctx context.Context, chatID, userID int64, until time.Time) error {
	if t.dry {
		log.Printf("[INFO] dry mode, ban user %d in chat %d until %v", userID, chatID, until)
		return nil
	}
	req := tbapi.BanChatMemberConfig{
		ChatMemberConfig: tbapi.ChatMemberConfig{ChatConfig: tbapi.ChatConfig{ChatID: chatID}, UserID: userID},
		UntilDate:        t.untilDate(until),
	}
	if err := t.request(ctx, req); err != nil {
		return fmt.Errorf("failed to ban user %d in chat %d: %w", userID, chatID, err)
	}
	return nil
}

// UnbanChatMember lifts the ban, user is not re-added to the chat
func (t *TelegramActions) UnbanChatMember(ctx context.Context, chatID, userID int64) error {
	if t.dry {
		log.Printf("[INFO] dry mode, unban user %d in chat %d", userID, chatID)
		return nil
	}
	req := tbapi.UnbanChatMemberConfig{
		ChatMemberConfig: tbapi.ChatMemberConfig{ChatConfig: tbapi.ChatConfig{ChatID: chatID}, UserID: userID},
		OnlyIfBanned:     true,
	}
	if err := t.request(ctx, req); err != nil {
		return fmt.Errorf("failed to unban user %d in chat %d: %w", userID, chatID, err)
	}
	return nil
}

// RestrictChatMember sets member permissions. With readOnly all sending is forbidden,
// otherwise default member permissions are restored.
func (t *TelegramActions) RestrictChatMember(ctx context.Context, chatID, userID int64, readOnly bool, until time.Time) error {
	if t.dry {
		log.Printf("[INFO] dry mode, restrict user %d in chat %d, read-only: %v, until %v", userID, chatID, readOnly, until)
		return nil
	}
	allow := !readOnly
	req := tbapi.RestrictChatMemberConfig{
		ChatMemberConfig: tbapi.ChatMemberConfig{ChatConfig: tbapi.ChatConfig{ChatID: chatID}, UserID: userID},
		UntilDate:        t.untilDate(until),
		Permissions: &tbapi.ChatPermissions{
			CanSendMessages:       allow,
			CanSendAudios:         allow,
			CanSendDocuments:      allow,
			CanSendPhotos:         allow,
			CanSendVideos:         allow,
			CanSendVideoNotes:     allow,
			CanSendVoiceNotes:     allow,
			CanSendPolls:          allow,
			CanSendOtherMessages:  allow,
			CanAddWebPagePreviews: allow,
			CanInviteUsers:        allow,
		},
	}
	if err := t.request(ctx, req); err != nil {
		return fmt.Errorf("failed to restrict user %d in chat %d: %w", userID, chatID, err)
	}
	return nil
}

// DeleteMessage removes the message, returns handlers.ErrAlreadyDeleted if it is gone
func (t *TelegramActions) DeleteMessage(ctx context.Context, chatID int64, msgID int) error {
	if t.dry {
		log.Printf("[INFO] dry mode, delete message %d in chat %d", msgID, chatID)
		return nil
	}
	req := tbapi.DeleteMessageConfig{BaseChatMessage: tbapi.BaseChatMessage{
		MessageID: msgID, ChatConfig: tbapi.ChatConfig{ChatID: chatID}}}
	if err := t.request(ctx, req); err != nil {
		if strings.Contains(err.Error(), "message to delete not found") {
			return fmt.Errorf("message %d in chat %d: %w", msgID, chatID, handlers.ErrAlreadyDeleted)
		}
		return fmt.Errorf("failed to delete message %d in chat %d: %w", msgID, chatID, err)
	}
	return nil
}

// SendMessage sends text to the chat, optionally as a reply. Returns id of the sent message.
func (t *TelegramActions) SendMessage(ctx context.Context, chatID int64, text string, replyTo int) (int, error) {
	msg := tbapi.NewMessage(chatID, text)
	msg.LinkPreviewOptions = tbapi.LinkPreviewOptions{IsDisabled: true}
	if replyTo != 0 {
		msg.ReplyParameters.MessageID = replyTo
	}
	return t.send(ctx, msg)
}

// SendKeyboard sends text with inline keyboard, returns id of the sent message
func (t *TelegramActions) SendKeyboard(ctx context.Context, chatID int64, text string, keyboard tbapi.InlineKeyboardMarkup) (int, error) {
	msg := tbapi.NewMessage(chatID, text)
	msg.LinkPreviewOptions = tbapi.LinkPreviewOptions{IsDisabled: true}
	msg.ReplyMarkup = keyboard
	return t.send(ctx, msg)
}

// EditText replaces text of the message and removes its keyboard
func (t *TelegramActions) EditText(ctx context.Context, chatID int64, msgID int, text string) error {
	edit := tbapi.NewEditMessageText(chatID, msgID, text)
	edit.ReplyMarkup = &tbapi.InlineKeyboardMarkup{InlineKeyboard: [][]tbapi.InlineKeyboardButton{}}
	edit.LinkPreviewOptions = tbapi.LinkPreviewOptions{IsDisabled: true}
	if _, err := t.send(ctx, edit); err != nil {
		return fmt.Errorf("failed to edit message %d in chat %d: %w", msgID, chatID, err)
	}
	return nil
}

// EditCaption replaces caption of the media message and removes its keyboard
func (t *TelegramActions) EditCaption(ctx context.Context, chatID int64, msgID int, caption string) error {
	edit := tbapi.NewEditMessageCaption(chatID, msgID, caption)
	edit.ReplyMarkup = &tbapi.InlineKeyboardMarkup{InlineKeyboard: [][]tbapi.InlineKeyboardButton{}}
	if _, err := t.send(ctx, edit); err != nil {
		return fmt.Errorf("failed to edit caption %d in chat %d: %w", msgID, chatID, err)
	}
	return nil
}

// AnswerCallback acknowledges callback query, so the client stops showing progress
func (t *TelegramActions) AnswerCallback(ctx context.Context, queryID, text string) error {
	if err := t.request(ctx, tbapi.NewCallback(queryID, text)); err != nil {
		return fmt.Errorf("failed to answer callback %s: %w", queryID, err)
	}
	return nil
}

// ChatMember returns membership of the user in the chat, used to check bot's rights
func (t *TelegramActions) ChatMember(ctx context.Context, chatID, userID int64) (tbapi.ChatMember, error) {
	req := tbapi.GetChatMemberConfig{ChatConfigWithUser: tbapi.ChatConfigWithUser{
		ChatConfig: tbapi.ChatConfig{ChatID: chatID}, UserID: userID}}
	var member tbapi.ChatMember
	err := t.call(ctx, func() error {
		resp, err := t.tbAPI.Request(req)
		if err != nil {
			return err
		}
		if !resp.Ok {
			return fmt.Errorf("response is not Ok: %v", string(resp.Result))
		}
		return json.Unmarshal(resp.Result, &member)
	})
	if err != nil {
		return tbapi.ChatMember{}, fmt.Errorf("failed to get member %d of chat %d: %w", userID, chatID, err)
	}
	return member, nil
}

func (t *TelegramActions) send(ctx context.Context, msg tbapi.Chattable) (int, error) {
	if t.dry {
		log.Printf("[INFO] dry mode, send %T", msg)
		return 0, nil
	}
	var msgID int
	err := t.call(ctx, func() error {
		resp, err := t.tbAPI.Send(msg)
		if err != nil {
			return err
		}
		msgID = resp.MessageID
		return nil
	})
	return msgID, err
}

func (t *TelegramActions) request(ctx context.Context, req tbapi.Chattable) error {
	return t.call(ctx, func() error {
		resp, err := t.tbAPI.Request(req)
		if err != nil {
			return err
		}
		if !resp.Ok {
			return fmt.Errorf("response is not Ok: %v", string(resp.Result))
		}
		return nil
	})
}

// call waits for the limiter and runs fn, retrying only flood control errors.
// Any other error stops retries and is returned as is.
func (t *TelegramActions) call(ctx context.Context, fn func() error) error {
	var permanent error
	err := t.rpt.Do(ctx, func() error {
		if err := t.limiter.Wait(ctx); err != nil {
			permanent = err
			return nil
		}
		err := fn()
		if err != nil && isFloodError(err) {
			log.Printf("[DEBUG] telegram flood control, retry: %v", err)
			return err
		}
		permanent = err
		return nil
	})
	if err != nil {
		return err
	}
	return permanent
}

// untilDate converts time to telegram's until_date, 0 is forever
func (t *TelegramActions) untilDate(until time.Time) int64 {
	if until.IsZero() {
		return 0
	}
	if until.Sub(t.now()) < minRestrictPeriod {
		return t.now().Add(time.Minute).Unix()
	}
	return until.Unix()
}

func isFloodError(err error) bool {
	var tbErr *tbapi.Error
	if errors.As(err, &tbErr) && tbErr.Code == 429 {
		return true
	}
	return strings.Contains(err.Error(), "Too Many Requests")
}
