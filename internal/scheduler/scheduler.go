package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wikisummary/internal/domain"

	"github.com/robfig/cron/v3"
)

const (
	Timezone              = "UTC"
	TimezoneOffsetSeconds = 0
	digestTimeout         = 5 * time.Minute
)

type RandomSummarizer interface {
	Random(ctx context.Context) (domain.SummaryResult, error)
}

type SummarySender interface {
	SendSummary(ctx context.Context, chatID int64, result domain.SummaryResult) error
}

// Scheduler posts a random-article summary to every digest chat on a cron
// schedule.
type Scheduler struct {
	ctx     context.Context
	cron    *cron.Cron
	spec    string
	chatIDs []int64
	source  RandomSummarizer
	sender  SummarySender
	log     *slog.Logger
}

func New(
	ctx context.Context,
	spec string,
	chatIDs []int64,
	source RandomSummarizer,
	sender SummarySender,
	log *slog.Logger,
) *Scheduler {
	c := cron.New(cron.WithLocation(time.FixedZone(Timezone, TimezoneOffsetSeconds)))

	return &Scheduler{
		ctx:     ctx,
		cron:    c,
		spec:    spec,
		chatIDs: chatIDs,
		source:  source,
		sender:  sender,
		log:     log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sendDigest); err != nil {
		return fmt.Errorf("add cron func (spec = %s): %w", s.spec, err)
	}

	s.cron.Start()

	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendDigest() {
	ctx, cancel := context.WithTimeout(s.ctx, digestTimeout)
	defer cancel()

	if err := s.runDigest(ctx); err != nil {
		s.log.ErrorContext(ctx, "Failed to send digest",
			"error", err,
			"spec", s.spec,
			"chatCount", len(s.chatIDs))
	}
}

func (s *Scheduler) runDigest(ctx context.Context) error {
	if len(s.chatIDs) == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		s.log.InfoContext(ctx, "Scheduler context is done",
			"error", ctx.Err())
		return nil
	default:
	}

	result, err := s.source.Random(ctx)
	if err != nil {
		return fmt.Errorf("summarize random article: %w", err)
	}

	var errs []error
	for _, chatID := range s.chatIDs {
		if err = s.sender.SendSummary(ctx, chatID, result); err != nil {
			errs = append(errs, fmt.Errorf("send summary (chatID = %d): %w", chatID, err))
		}
	}

	s.log.InfoContext(ctx, "Digest is sent",
		"articleURL", result.URL,
		"chatCount", len(s.chatIDs),
		"failedCount", len(errs))

	return errors.Join(errs...)
}
