package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wikisummary/internal/domain"
	"wikisummary/internal/wiki"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"mvdan.cc/xurls/v2"
)

const (
	maxLinksPerMessage = 3

	callbackRandom   = "random"
	callbackFeatured = "featured"
)

const welcomeText = `📚 *Welcome to the Wiki Summary Generator\!*

I can help you:

– Summarize any Wikipedia article: just send me its link
– Summarize a random article with /random
– Summarize today's featured article with /featured`

const noLinksText = "✖️ Wikipedia links are not found\\. Send me a link like https://en\\.wikipedia\\.org/wiki/Cat\\."

func (b *Bot) handleMessage(ctx context.Context, message *models.Message) error {
	chatID := message.Chat.ID

	return b.withSpinner(ctx, chatID, func() error {
		text := strings.TrimSpace(message.Text)

		switch {
		case strings.HasPrefix(text, "/start"), strings.HasPrefix(text, "/help"):
			return b.sendMessage(ctx, chatID, welcomeText, b.menuKeyboard)
		case strings.HasPrefix(text, "/random"):
			return b.replyWithSummary(ctx, chatID, "🎲", b.svc.Random)
		case strings.HasPrefix(text, "/featured"):
			return b.replyWithSummary(ctx, chatID, "⭐", b.svc.Featured)
		default:
			return b.handleLinks(ctx, chatID, text)
		}
	})
}

func (b *Bot) handleCallbackQuery(ctx context.Context, callback *models.CallbackQuery) error {
	var errs []error

	if _, err := b.api.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callback.ID,
	}); err != nil {
		errs = append(errs, fmt.Errorf("answer callback query: %w", err))
	}

	if callback.Message.Message == nil {
		errs = append(errs, errors.New("callback message is inaccessible"))
		return errors.Join(errs...)
	}

	chatID := callback.Message.Message.Chat.ID

	err := b.withSpinner(ctx, chatID, func() error {
		switch callback.Data {
		case callbackRandom:
			return b.replyWithSummary(ctx, chatID, "🎲", b.svc.Random)
		case callbackFeatured:
			return b.replyWithSummary(ctx, chatID, "⭐", b.svc.Featured)
		default:
			return fmt.Errorf("unknown callback data: %q", callback.Data)
		}
	})
	if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (b *Bot) handleLinks(ctx context.Context, chatID int64, text string) error {
	links := findArticleLinks(text)
	if len(links) == 0 {
		return b.sendMessage(ctx, chatID, noLinksText, b.menuKeyboard)
	}

	var errs []error

	for _, link := range links {
		err := b.replyWithSummary(ctx, chatID, "📖", func(ctx context.Context) (domain.SummaryResult, error) {
			result, err := b.svc.Generate(ctx, domain.ArticleRequest{URL: link})
			if result.URL == "" {
				result.URL = link
			}
			return result, err
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("reply with summary (URL = %s): %w", link, err))
		}
	}

	return errors.Join(errs...)
}

func (b *Bot) replyWithSummary(
	ctx context.Context,
	chatID int64,
	icon string,
	produce func(ctx context.Context) (domain.SummaryResult, error),
) error {
	result, err := produce(ctx)
	if err != nil {
		errs := []error{fmt.Errorf("produce summary: %w", err)}

		reply := "❌ Failed\\."
		if domain.IsValidation(err) {
			reply = "❌ " + escapeReason(err)
		}

		if sendErr := b.sendMessage(ctx, chatID, reply, b.menuKeyboard); sendErr != nil {
			errs = append(errs, fmt.Errorf("send message: %w", sendErr))
		}

		return errors.Join(errs...)
	}

	return b.sendMessage(ctx, chatID, formatSummary(icon, result), b.menuKeyboard)
}

// SendSummary delivers an already produced summary, e.g. from the digest job.
func (b *Bot) SendSummary(ctx context.Context, chatID int64, result domain.SummaryResult) error {
	return b.sendMessage(ctx, chatID, formatSummary("🗞", result), b.menuKeyboard)
}

func findArticleLinks(text string) []string {
	var links []string
	seen := make(map[string]struct{})

	for _, u := range xurls.Strict().FindAllString(text, -1) {
		u = strings.TrimSpace(u)
		if !wiki.IsValidArticleURL(u) {
			continue
		}

		if _, ok := seen[u]; ok {
			continue
		}

		seen[u] = struct{}{}
		links = append(links, u)

		if len(links) == maxLinksPerMessage {
			break
		}
	}

	return links
}
