package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"toxicity-coach/domain"
	"toxicity-coach/infrastructure/storage"
	"toxicity-coach/moderation"
	"toxicity-coach/policy"
	"toxicity-coach/scoring"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

const previewLength = 180

type SkipReason string

const (
	NotSkipped      SkipReason = ""
	SkipBotAuthor   SkipReason = "bot_author"
	SkipNoGuild     SkipReason = "no_guild"
	SkipRateLimited SkipReason = "rate_limited"
	SkipEmpty       SkipReason = "empty_content"
)

// Verdict is the outcome of reviewing one message.
// Explanation and Preview are only filled when the decision triggered.
type Verdict struct {
	MessageID   uuid.UUID
	Scope       domain.Scope
	Author      string
	Skipped     SkipReason
	Scores      domain.LabelScores
	Decision    policy.Decision
	Explanation string
	Preview     string
	Censored    []string
	Lang        string
}

func (v Verdict) Triggered() bool {
	return v.Skipped == NotSkipped && v.Decision.Triggered
}

type ICoachService interface {
	Review(ctx context.Context, msg domain.ChatMessage) (Verdict, error)
}

type CoachService struct {
	log        *slog.Logger
	scorer     *scoring.Scorer
	evaluator  *policy.Evaluator
	moderator  moderation.Moderator
	limiter    *RateLimiter
	repository storage.IScoreRepository
}

func NewCoachService(
	log *slog.Logger,
	scorer *scoring.Scorer,
	evaluator *policy.Evaluator,
	moderator moderation.Moderator,
	limiter *RateLimiter,
	repository storage.IScoreRepository,
) *CoachService {
	return &CoachService{
		log:        log,
		scorer:     scorer,
		evaluator:  evaluator,
		moderator:  moderator,
		limiter:    limiter,
		repository: repository,
	}
}

// Review scores a chat message, applies the scope policy and records the scores.
// A threshold lookup failure aborts the review; a failed history write is only logged.
func (s *CoachService) Review(ctx context.Context, msg domain.ChatMessage) (Verdict, error) {
	verdict := Verdict{MessageID: msg.ID, Scope: msg.Scope(), Author: msg.Author}

	switch {
	case msg.IsBot:
		verdict.Skipped = SkipBotAuthor
		return verdict, nil
	case msg.Guild == "":
		verdict.Skipped = SkipNoGuild
		return verdict, nil
	case !s.limiter.Allow(msg.Author):
		verdict.Skipped = SkipRateLimited
		return verdict, nil
	case strings.TrimSpace(msg.Content) == "":
		verdict.Skipped = SkipEmpty
		return verdict, nil
	}
	if err := ctx.Err(); err != nil {
		return verdict, err
	}

	verdict.Lang = detectLang(msg.Content)
	if verdict.Lang != "" && verdict.Lang != "en" {
		s.log.Debug("Scoring non-English message with the English lexicon", "message_id", msg.ID, "lang", verdict.Lang)
	}

	verdict.Scores = s.scorer.Score(msg.Content)
	decision, err := s.evaluator.Decide(verdict.Scope, verdict.Scores)
	if err != nil {
		return verdict, fmt.Errorf("decide %s: %w", msg.ID, err)
	}
	verdict.Decision = decision

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	err = s.repository.Record(storage.ScoreRecord{
		MessageID: msg.ID,
		Guild:     msg.Guild,
		Channel:   msg.Channel,
		User:      msg.Author,
		CreatedAt: createdAt,
		Scores:    verdict.Scores,
		Triggered: decision.Triggered,
		Lang:      verdict.Lang,
	})
	if err != nil {
		s.log.Error("Unable to record scores", "message_id", msg.ID, "error", err)
	}

	if decision.Triggered {
		verdict.Explanation = decision.Explain()
		preview, censored := s.moderator.Censor(msg.Content)
		verdict.Preview = truncate(preview, previewLength)
		verdict.Censored = censored
		s.log.Info("Message flagged",
			"message_id", msg.ID,
			"guild", msg.Guild,
			"channel", msg.Channel,
			"labels", decision.OverLabels())
	}
	return verdict, nil
}

func detectLang(content string) string {
	info := whatlanggo.Detect(content)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}
