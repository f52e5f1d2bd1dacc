package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreeningService(t *testing.T) *ScreeningService {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{ScreeningTTL: time.Hour}
	catalog := &CatalogService{programs: testPrograms(), log: zerolog.Nop()}

	return NewScreeningService(cfg, rdb, catalog, zerolog.Nop())
}

func TestScreen_CreatesScreeningWithChecklist(t *testing.T) {
	svc := newTestScreeningService(t)
	ctx := context.Background()

	profile := model.ApplicantProfile{Residency: "NY", GPA: 3.5, Income: 20000, EnrolledFullTime: true}
	screening, err := svc.Screen(ctx, profile, "")
	require.NoError(t, err)
	require.NotEmpty(t, screening.ID)
	require.Len(t, screening.Verdicts, 2)

	// Only the eligible program is seeded into the checklist.
	require.Len(t, screening.Documents, 1)
	docs := screening.Documents["Open Grant"]
	require.Len(t, docs, 2)
	assert.Equal(t, model.DocumentPending, docs["FAFSA"].Status)

	// Round-trips through Redis.
	loaded, err := svc.Get(ctx, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, screening.Verdicts, loaded.Verdicts)
	assert.Equal(t, profile, loaded.Profile)
}

func TestScreen_RescreenPreservesUploadHistory(t *testing.T) {
	svc := newTestScreeningService(t)
	ctx := context.Background()

	profile := model.ApplicantProfile{Residency: "NY", GPA: 3.5, Income: 20000, EnrolledFullTime: true}
	first, err := svc.Screen(ctx, profile, "")
	require.NoError(t, err)

	_, err = svc.RecordUpload(ctx, first.ID, "Open Grant", "FAFSA")
	require.NoError(t, err)

	// Re-screening under the same ID keeps the received document.
	second, err := svc.Screen(ctx, profile, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	entry := second.Documents["Open Grant"]["FAFSA"]
	assert.Equal(t, model.DocumentReceived, entry.Status)
	assert.NotNil(t, entry.UploadedAt)
}

func TestScreen_UnknownPreviousIDStartsFresh(t *testing.T) {
	svc := newTestScreeningService(t)

	screening, err := svc.Screen(context.Background(), model.ApplicantProfile{}, "9f4c8c0a-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.NotEqual(t, "9f4c8c0a-0000-0000-0000-000000000000", screening.ID)
}

func TestRecordUpload_SetsReceivedWithTimestamp(t *testing.T) {
	svc := newTestScreeningService(t)
	ctx := context.Background()

	profile := model.ApplicantProfile{Residency: "NY", GPA: 3.5, Income: 20000, EnrolledFullTime: true}
	screening, err := svc.Screen(ctx, profile, "")
	require.NoError(t, err)

	entry, err := svc.RecordUpload(ctx, screening.ID, "Open Grant", "Tax Return")
	require.NoError(t, err)
	assert.Equal(t, model.DocumentReceived, entry.Status)
	require.NotNil(t, entry.UploadedAt)

	loaded, err := svc.Get(ctx, screening.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DocumentReceived, loaded.Documents["Open Grant"]["Tax Return"].Status)
}

func TestRecordUpload_UnknownNamesAreExplicitErrors(t *testing.T) {
	svc := newTestScreeningService(t)
	ctx := context.Background()

	profile := model.ApplicantProfile{Residency: "NY", GPA: 3.5, Income: 20000, EnrolledFullTime: true}
	screening, err := svc.Screen(ctx, profile, "")
	require.NoError(t, err)

	_, err = svc.RecordUpload(ctx, screening.ID, "No Such Program", "FAFSA")
	assert.ErrorIs(t, err, ErrProgramNotTracked)

	_, err = svc.RecordUpload(ctx, screening.ID, "Open Grant", "No Such Document")
	assert.ErrorIs(t, err, ErrDocumentNotTracked)

	_, err = svc.RecordUpload(ctx, "11111111-1111-1111-1111-111111111111", "Open Grant", "FAFSA")
	assert.ErrorIs(t, err, ErrScreeningNotFound)
}

func TestDelete_RemovesScreening(t *testing.T) {
	svc := newTestScreeningService(t)
	ctx := context.Background()

	screening, err := svc.Screen(ctx, model.ApplicantProfile{}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, screening.ID))

	_, err = svc.Get(ctx, screening.ID)
	assert.ErrorIs(t, err, ErrScreeningNotFound)
}
