package bot

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"wikisummary/internal/domain"
	"wikisummary/internal/markdown"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	sendSpinnerInterval = 3 * time.Second

	// Leaves room for the header, link and escaping within Telegram's 4096 limit.
	maxSummaryRunes = 3000
)

func (b *Bot) sendMessage(
	ctx context.Context,
	chatID int64,
	text string,
	keyboard models.ReplyMarkup,
) error {
	normalizedText := strings.ToValidUTF8(text, "?")
	if normalizedText != text {
		b.log.WarnContext(ctx, "Message text had invalid UTF-8 and was normalized",
			"chatID", chatID,
			"originalLen", len(text),
			"normalizedLen", len(normalizedText))
	}

	disablePreview := true

	_, err := b.api.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:             chatID,
		Text:               normalizedText,
		ParseMode:          models.ParseModeMarkdown,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: &disablePreview},
		ReplyMarkup:        keyboard,
	})

	return err
}

func (b *Bot) sendTyping(ctx context.Context, chatID int64) {
	_, err := b.api.SendChatAction(ctx, &tgbot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
	if err != nil && ctx.Err() == nil {
		b.log.ErrorContext(ctx, "Failed to send chat action",
			"error", err,
			"chatID", chatID)
	}
}

func (b *Bot) withSpinner(ctx context.Context, chatID int64, fn func() error) error {
	spinnerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		b.sendTyping(spinnerCtx, chatID)

		t := time.NewTicker(sendSpinnerInterval)
		defer t.Stop()

		for {
			select {
			case <-spinnerCtx.Done():
				return
			case <-t.C:
				b.sendTyping(spinnerCtx, chatID)
			}
		}
	}()

	return fn()
}

func getMenuKeyboard() models.ReplyMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "🎲 Random article", CallbackData: callbackRandom},
				{Text: "⭐ Featured article", CallbackData: callbackFeatured},
			},
		},
	}
}

func formatSummary(icon string, result domain.SummaryResult) string {
	var sb strings.Builder

	title := articleTitle(result.URL)
	if title != "" {
		fmt.Fprintf(&sb, "%s *%s*\n\n", icon, markdown.EscapeV2(title))
	}

	sb.WriteString(markdown.EscapeV2(truncateRunes(strings.TrimSpace(result.Summary), maxSummaryRunes)))

	if result.URL != "" {
		sb.WriteString("\n\n🔗 ")
		sb.WriteString(markdown.Link("Read on Wikipedia", result.URL))
	}

	return sb.String()
}

// articleTitle derives a display title from the last path segment of an
// article URL.
func articleTitle(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Path == "" || u.Path == "/" {
		return ""
	}

	return strings.TrimSpace(strings.ReplaceAll(path.Base(u.Path), "_", " "))
}

func escapeReason(err error) string {
	return markdown.EscapeV2(err.Error())
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "…"
}
