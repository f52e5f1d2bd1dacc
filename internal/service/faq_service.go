package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
)

// similarityThreshold is the minimum fuzzy-match score for an answer.
// A substring hit always wins outright before scoring is considered.
const similarityThreshold = 0.3

// fallbackAnswer is returned when no FAQ entry matches.
const fallbackAnswer = "I'm sorry, I don't have information about that specific question. " +
	"Please try asking about TAP, Pell Grant, Excelsior Scholarship, eligibility requirements, " +
	"documents needed, deadlines, or application processes."

// FaqService answers free-text questions against the FAQ table and logs
// every interaction to Redis for the chat log worker.
type FaqService struct {
	faqRepo *repository.FaqRepository
	rdb     *redis.Client
	log     zerolog.Logger
	entries []model.FaqEntry
}

// NewFaqService creates a new FaqService.
func NewFaqService(faqRepo *repository.FaqRepository, rdb *redis.Client, log zerolog.Logger) *FaqService {
	return &FaqService{
		faqRepo: faqRepo,
		rdb:     rdb,
		log:     log.With().Str("component", "faq_service").Logger(),
	}
}

// Load reads all FAQ entries in insertion order. Must be called at startup.
func (s *FaqService) Load(ctx context.Context) error {
	entries, err := s.faqRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load faq entries: %w", err)
	}
	s.entries = entries
	s.log.Info().Int("entries", len(entries)).Msg("FAQ table loaded")
	return nil
}

// Answer returns the best-matching FAQ answer for a question, or the
// fallback message. Matching is deterministic: the substring pass walks
// entries in insertion order and the first hit wins; the similarity pass
// keeps the first entry to reach the maximum score above the threshold.
func (s *FaqService) Answer(ctx context.Context, question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))

	answer, matchedKey, score := s.match(normalized)
	s.logQuery(ctx, question, matchedKey, score, answer != "")

	if answer == "" {
		return fallbackAnswer
	}
	return answer
}

func (s *FaqService) match(normalized string) (answer, matchedKey string, score float64) {
	bestScore := 0.0
	for _, e := range s.entries {
		key := strings.ToLower(e.Key)

		if strings.Contains(normalized, key) {
			return e.Answer, e.Key, 1.0
		}

		ratio := similarity(normalized, key)
		if ratio > bestScore && ratio > similarityThreshold {
			bestScore = ratio
			answer = e.Answer
			matchedKey = e.Key
		}
	}
	return answer, matchedKey, bestScore
}

// similarity is a normalized edit-distance ratio in [0, 1].
func similarity(a, b string) float64 {
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

// logQuery pushes the interaction onto the chat log queue. Logging is best
// effort; a Redis failure never blocks the answer.
func (s *FaqService) logQuery(ctx context.Context, question, matchedKey string, score float64, answered bool) {
	entry := model.ChatQuery{
		Question:   question,
		MatchedKey: matchedKey,
		Score:      score,
		Answered:   answered,
		AskedAt:    time.Now().UTC(),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.rdb.RPush(ctx, config.CacheKey.ChatLogQueue(), raw).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Chat log push failed")
	}
}

// ListChatQueries returns recent logged questions for staff review.
func (s *FaqService) ListChatQueries(ctx context.Context, unansweredOnly bool, limit int) ([]model.ChatQuery, error) {
	return s.faqRepo.ListChatQueries(ctx, unansweredOnly, limit)
}
