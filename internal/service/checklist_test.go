package service

import (
	"testing"
	"time"

	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eligibleVerdict(program string, docs ...string) model.Verdict {
	return model.Verdict{Program: program, Eligible: true, RequiredDocuments: docs}
}

func TestMergeChecklist_SeedsPendingEntries(t *testing.T) {
	checklist := mergeChecklist(nil, []model.Verdict{
		eligibleVerdict("TAP", "FAFSA", "Tax Return"),
		eligibleVerdict("Pell Grant", "FAFSA"),
	})

	require.Len(t, checklist, 2)
	require.Len(t, checklist["TAP"], 2)
	assert.Equal(t, model.DocumentPending, checklist["TAP"]["FAFSA"].Status)
	assert.Nil(t, checklist["TAP"]["FAFSA"].UploadedAt)
	assert.Equal(t, model.DocumentPending, checklist["Pell Grant"]["FAFSA"].Status)
}

func TestMergeChecklist_IdempotentKeepsReceivedEntries(t *testing.T) {
	eligible := []model.Verdict{eligibleVerdict("TAP", "FAFSA", "Tax Return")}
	checklist := mergeChecklist(nil, eligible)

	uploaded := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	checklist["TAP"]["FAFSA"] = model.DocumentEntry{Status: model.DocumentReceived, UploadedAt: &uploaded}

	// Re-initializing with the same eligible set must not reset anything.
	checklist = mergeChecklist(checklist, eligible)

	entry := checklist["TAP"]["FAFSA"]
	assert.Equal(t, model.DocumentReceived, entry.Status)
	require.NotNil(t, entry.UploadedAt)
	assert.Equal(t, uploaded, *entry.UploadedAt)
	assert.Equal(t, model.DocumentPending, checklist["TAP"]["Tax Return"].Status)
}

func TestMergeChecklist_FillsOnlyMissingDocuments(t *testing.T) {
	checklist := mergeChecklist(nil, []model.Verdict{eligibleVerdict("TAP", "FAFSA")})

	uploaded := time.Now().UTC()
	checklist["TAP"]["FAFSA"] = model.DocumentEntry{Status: model.DocumentReceived, UploadedAt: &uploaded}

	// A later screening adds a document to the program's requirements.
	checklist = mergeChecklist(checklist, []model.Verdict{eligibleVerdict("TAP", "FAFSA", "Transcript")})

	assert.Equal(t, model.DocumentReceived, checklist["TAP"]["FAFSA"].Status)
	assert.Equal(t, model.DocumentPending, checklist["TAP"]["Transcript"].Status)
}

func TestMergeChecklist_OnlyEligibleProgramsSeeded(t *testing.T) {
	checklist := mergeChecklist(nil, nil)
	assert.Empty(t, checklist)
	assert.NotNil(t, checklist)
}
