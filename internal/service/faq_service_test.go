package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFaqService(t *testing.T, entries []model.FaqEntry) (*FaqService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return &FaqService{
		rdb:     rdb,
		log:     zerolog.Nop(),
		entries: entries,
	}, mr
}

func faqEntries() []model.FaqEntry {
	return []model.FaqEntry{
		{Key: "pell grant", Answer: "A federal grant...", Position: 0},
		{Key: "deadline", Answer: "Most deadlines are...", Position: 1},
		{Key: "documents", Answer: "Most programs require...", Position: 2},
	}
}

func TestFaqAnswer_SubstringMatchFirstKeyWins(t *testing.T) {
	svc, _ := newTestFaqService(t, faqEntries())

	// "pell grant" appears verbatim; the substring pass returns it before
	// "deadline" is ever scored, even though the question mentions both.
	answer := svc.Answer(context.Background(), "When is the Pell Grant deadline?")
	assert.Equal(t, "A federal grant...", answer)
}

func TestFaqAnswer_NormalizesInput(t *testing.T) {
	svc, _ := newTestFaqService(t, faqEntries())

	answer := svc.Answer(context.Background(), "   PELL GRANT info please   ")
	assert.Equal(t, "A federal grant...", answer)
}

func TestFaqAnswer_SimilarityFallbackAboveThreshold(t *testing.T) {
	svc, _ := newTestFaqService(t, faqEntries())

	// No key is a substring, but "deadlines?" is close to "deadline".
	answer := svc.Answer(context.Background(), "deadlins?")
	assert.Equal(t, "Most deadlines are...", answer)
}

func TestFaqAnswer_FallbackWhenNothingMatches(t *testing.T) {
	svc, _ := newTestFaqService(t, faqEntries())

	answer := svc.Answer(context.Background(), "how do I fix my car transmission and replace the gearbox entirely")
	assert.Equal(t, fallbackAnswer, answer)
}

func TestFaqAnswer_DeterministicTieBreak(t *testing.T) {
	// Both keys are equally distant from the question; the first to reach
	// the maximum wins because updates require a strictly greater score.
	entries := []model.FaqEntry{
		{Key: "grants", Answer: "first", Position: 0},
		{Key: "grantz", Answer: "second", Position: 1},
	}
	svc, _ := newTestFaqService(t, entries)

	for i := 0; i < 10; i++ {
		assert.Equal(t, "first", svc.Answer(context.Background(), "granty"))
	}
}

func TestFaqAnswer_LogsQueryToRedis(t *testing.T) {
	svc, mr := newTestFaqService(t, faqEntries())

	svc.Answer(context.Background(), "tell me about the pell grant")
	svc.Answer(context.Background(), "completely unrelated gibberish xyzzy")

	queued, err := mr.List(config.CacheKey.ChatLogQueue())
	require.NoError(t, err)
	assert.Len(t, queued, 2)
	assert.Contains(t, queued[0], `"matched_key":"pell grant"`)
	assert.Contains(t, queued[1], `"answered":false`)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("deadline", "deadline"))
	assert.InDelta(t, 0.875, similarity("deadline", "deadlime"), 0.001) // one substitution
	assert.Equal(t, 0.0, similarity("abcd", "wxyz"))
	assert.Equal(t, 1.0, similarity("", ""))
}
