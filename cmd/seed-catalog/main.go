package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/database"
	"github.com/smartaid/smartaid-backend/internal/logger"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/repository"
)

func main() {
	var programsPath, faqPath string
	flag.StringVar(&programsPath, "programs", "data/aid_programs.csv", "Path to the aid programs CSV")
	flag.StringVar(&faqPath, "faq", "data/faq.json", "Path to the FAQ JSON table")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	programRepo := repository.NewProgramRepository(pool)
	faqRepo := repository.NewFaqRepository(pool)

	programs, err := loadPrograms(programsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", programsPath).Msg("Failed to load programs CSV")
	}

	entries, err := loadFaq(faqPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", faqPath).Msg("Failed to load FAQ JSON")
	}

	if err := programRepo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear programs")
	}
	for i := range programs {
		if err := programRepo.Create(ctx, &programs[i]); err != nil {
			log.Fatal().Err(err).Str("program", programs[i].Name).Msg("Failed to insert program")
		}
	}

	if err := faqRepo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear FAQ entries")
	}
	for i := range entries {
		if err := faqRepo.Create(ctx, &entries[i]); err != nil {
			log.Fatal().Err(err).Str("key", entries[i].Key).Msg("Failed to insert FAQ entry")
		}
	}

	log.Info().
		Int("programs", len(programs)).
		Int("faq_entries", len(entries)).
		Msg("Catalog seeded")
}

// loadPrograms parses the aid programs CSV. Expected columns:
// program_name, residency_required, min_gpa, max_income, enrollment_required,
// award_amount, deadline, description, required_documents (';'-joined).
func loadPrograms(path string) ([]model.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{
		"program_name", "residency_required", "min_gpa", "max_income",
		"enrollment_required", "award_amount", "deadline", "description",
		"required_documents",
	} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var programs []model.Program
	for position := 0; ; position++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", position+1, err)
		}

		minGPA, err := strconv.ParseFloat(row[col["min_gpa"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: min_gpa: %w", position+1, err)
		}
		maxIncome, err := strconv.ParseFloat(row[col["max_income"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: max_income: %w", position+1, err)
		}

		var docs []string
		for _, d := range strings.Split(row[col["required_documents"]], ";") {
			if trimmed := strings.TrimSpace(d); trimmed != "" {
				docs = append(docs, trimmed)
			}
		}

		programs = append(programs, model.Program{
			Name:               row[col["program_name"]],
			ResidencyRequired:  row[col["residency_required"]],
			MinGPA:             minGPA,
			MaxIncome:          maxIncome,
			EnrollmentRequired: strings.EqualFold(row[col["enrollment_required"]], "Yes"),
			AwardAmount:        row[col["award_amount"]],
			Deadline:           row[col["deadline"]],
			Description:        row[col["description"]],
			RequiredDocuments:  docs,
			Position:           position,
		})
	}
	return programs, nil
}

// loadFaq parses the FAQ JSON object token by token so the key insertion
// order survives; the responder's substring pass depends on it.
func loadFaq(path string) ([]model.FaqEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", t)
	}

	var entries []model.FaqEntry
	for position := 0; dec.More(); position++ {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", keyTok)
		}

		var answer string
		if err := dec.Decode(&answer); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		entries = append(entries, model.FaqEntry{Key: key, Answer: answer, Position: position})
	}
	return entries, nil
}
