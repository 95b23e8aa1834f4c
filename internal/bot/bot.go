package bot

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"wikisummary/internal/domain"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const updateProcessingTimeout = 2 * time.Minute

type ArticleService interface {
	Random(ctx context.Context) (domain.SummaryResult, error)
	Generate(ctx context.Context, req domain.ArticleRequest) (domain.SummaryResult, error)
	Featured(ctx context.Context) (domain.SummaryResult, error)
}

// sender is the part of the Bot API the handlers use. *tgbot.Bot satisfies it.
type sender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *tgbot.SendChatActionParams) (bool, error)
	AnswerCallbackQuery(ctx context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error)
}

type Bot struct {
	client       *tgbot.Bot
	api          sender
	svc          ArticleService
	allowedUsers []int64
	menuKeyboard models.ReplyMarkup
	log          *slog.Logger
}

func New(
	token string,
	svc ArticleService,
	allowedUsers []int64,
	log *slog.Logger,
) (*Bot, error) {
	b := newBot(nil, svc, allowedUsers, log)

	client, err := tgbot.New(strings.TrimSpace(token), tgbot.WithDefaultHandler(b.handleUpdate))
	if err != nil {
		return nil, err
	}

	b.client = client
	b.api = client

	return b, nil
}

func newBot(api sender, svc ArticleService, allowedUsers []int64, log *slog.Logger) *Bot {
	return &Bot{
		api:          api,
		svc:          svc,
		allowedUsers: allowedUsers,
		menuKeyboard: getMenuKeyboard(),
		log:          log,
	}
}

// Start polls for updates until ctx is done.
func (b *Bot) Start(ctx context.Context) {
	b.client.Start(ctx)
}

func (b *Bot) handleUpdate(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	updateCtx, cancel := context.WithTimeout(ctx, updateProcessingTimeout)
	defer cancel()

	switch {
	case update.Message != nil:
		chatID := update.Message.Chat.ID

		var userID int64
		if update.Message.From != nil {
			userID = update.Message.From.ID
		}

		if !b.userAllowed(userID) {
			b.log.DebugContext(updateCtx, "User is not allowed",
				"userID", userID,
				"chatID", chatID,
				"chatType", update.Message.Chat.Type)

			return
		}

		if err := b.handleMessage(updateCtx, update.Message); err != nil {
			b.log.ErrorContext(updateCtx, "Failed to handle message",
				"error", err,
				"chatID", chatID,
				"userID", userID,
				"messageID", update.Message.ID)
		}

	case update.CallbackQuery != nil:
		userID := update.CallbackQuery.From.ID

		if !b.userAllowed(userID) {
			b.log.DebugContext(updateCtx, "User is not allowed",
				"userID", userID,
				"data", update.CallbackQuery.Data)

			return
		}

		if err := b.handleCallbackQuery(updateCtx, update.CallbackQuery); err != nil {
			b.log.ErrorContext(updateCtx, "Failed to handle callback query",
				"error", err,
				"userID", userID,
				"data", update.CallbackQuery.Data)
		}
	}
}

func (b *Bot) userAllowed(userID int64) bool {
	return len(b.allowedUsers) == 0 || slices.Contains(b.allowedUsers, userID)
}
