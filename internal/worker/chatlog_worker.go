package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
)

// batchSize caps how many chat log entries are flushed per insert.
const batchSize = 50

// ChatLogWorker consumes the chat log queue and batch-inserts chatbot
// interactions into PostgreSQL so staff can review unanswered questions.
type ChatLogWorker struct {
	faqRepo *repository.FaqRepository
	rdb     *redis.Client
	log     zerolog.Logger
}

// NewChatLogWorker creates a new ChatLogWorker.
func NewChatLogWorker(faqRepo *repository.FaqRepository, rdb *redis.Client, log zerolog.Logger) *ChatLogWorker {
	return &ChatLogWorker{
		faqRepo: faqRepo,
		rdb:     rdb,
		log:     log.With().Str("component", "chatlog_worker").Logger(),
	}
}

// Start begins the worker loop. Call in a goroutine.
func (w *ChatLogWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.flush(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ChatLogWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.CacheKey.ChatLogQueue()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("Queue pop failed")
		}
		return
	}

	// result[0] is the key name, result[1] the payload.
	batch := w.decode([][]byte{[]byte(result[1])})

	// Opportunistically drain more items into the same insert.
	for len(batch) < batchSize {
		raw, err := w.rdb.LPop(ctx, config.CacheKey.ChatLogQueue()).Result()
		if err != nil {
			break
		}
		batch = append(batch, w.decode([][]byte{[]byte(raw)})...)
	}

	w.insert(ctx, batch)
}

// flush empties the queue completely, used during shutdown.
func (w *ChatLogWorker) flush(ctx context.Context) {
	for {
		raw, err := w.rdb.LPop(ctx, config.CacheKey.ChatLogQueue()).Result()
		if err != nil {
			return
		}
		w.insert(ctx, w.decode([][]byte{[]byte(raw)}))
	}
}

func (w *ChatLogWorker) decode(raws [][]byte) []model.ChatQuery {
	var out []model.ChatQuery
	for _, raw := range raws {
		var q model.ChatQuery
		if err := json.Unmarshal(raw, &q); err != nil {
			w.log.Warn().Err(err).Msg("Malformed chat log entry dropped")
			continue
		}
		out = append(out, q)
	}
	return out
}

func (w *ChatLogWorker) insert(ctx context.Context, batch []model.ChatQuery) {
	if len(batch) == 0 {
		return
	}
	if err := w.faqRepo.InsertChatQueries(ctx, batch); err != nil {
		w.log.Error().Err(err).Int("entries", len(batch)).Msg("Chat log insert failed")
		return
	}
	w.log.Debug().Int("entries", len(batch)).Msg("Chat log flushed")
}
