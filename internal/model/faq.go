package model

import "time"

// FaqEntry is one question-key → answer pair. Position preserves the
// insertion order of the source table; the substring pass depends on it.
type FaqEntry struct {
	ID       int    `json:"id"`
	Key      string `json:"key"`
	Answer   string `json:"answer"`
	Position int    `json:"-"`
}

// ChatRequest is the chatbot ask payload.
type ChatRequest struct {
	Question string `json:"question" binding:"required,max=1000"`
}

// ChatQuery is one logged chatbot interaction, flushed to Postgres by the
// chat log worker so staff can review unanswered questions.
type ChatQuery struct {
	ID         int       `json:"id"`
	Question   string    `json:"question"`
	MatchedKey string    `json:"matched_key,omitempty"`
	Score      float64   `json:"score"`
	Answered   bool      `json:"answered"`
	AskedAt    time.Time `json:"asked_at"`
}
