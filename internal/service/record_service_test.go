package service

import (
	"testing"

	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *model.StudentRecord {
	return &model.StudentRecord{
		StudentID: "SA-1A2B3C4D",
		Name:      "Jordan Lee",
		Verdicts: []model.VerdictRecord{
			{
				Verdict:          model.Verdict{Program: "Open Grant", Eligible: true},
				MissingDocuments: []string{"FAFSA", "Tax Return"},
			},
		},
	}
}

func TestApplyAction_DocumentMoves(t *testing.T) {
	record := testRecord()

	err := applyAction(record, &model.UpdateRecordRequest{
		Action:   model.ActionAddDocument,
		Program:  "Open Grant",
		Document: "FAFSA",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"FAFSA"}, record.Verdicts[0].SubmittedDocuments)
	assert.Equal(t, []string{"Tax Return"}, record.Verdicts[0].MissingDocuments)

	err = applyAction(record, &model.UpdateRecordRequest{
		Action:   model.ActionAddMissingDocument,
		Program:  "Open Grant",
		Document: "FAFSA",
	})
	require.NoError(t, err)
	assert.Empty(t, record.Verdicts[0].SubmittedDocuments)
	assert.ElementsMatch(t, []string{"FAFSA", "Tax Return"}, record.Verdicts[0].MissingDocuments)
}

func TestApplyAction_BlankDocumentRejected(t *testing.T) {
	actions := []model.RecordAction{
		model.ActionAddDocument,
		model.ActionRemoveDocument,
		model.ActionAddMissingDocument,
		model.ActionRemoveMissingDocument,
	}

	for _, action := range actions {
		for _, doc := range []string{"", "   "} {
			record := testRecord()
			err := applyAction(record, &model.UpdateRecordRequest{
				Action:   action,
				Program:  "Open Grant",
				Document: doc,
			})
			assert.ErrorIs(t, err, ErrDocumentRequired, "action %s doc %q", action, doc)
			assert.NotContains(t, record.Verdicts[0].SubmittedDocuments, doc)
			assert.NotContains(t, record.Verdicts[0].MissingDocuments, doc)
		}
	}
}

func TestApplyAction_VerifyEligibility(t *testing.T) {
	record := testRecord()

	// Absent verified flag defaults to true.
	err := applyAction(record, &model.UpdateRecordRequest{
		Action:  model.ActionVerifyEligibility,
		Program: "Open Grant",
	})
	require.NoError(t, err)
	assert.True(t, record.Verdicts[0].Verified)

	unverify := false
	err = applyAction(record, &model.UpdateRecordRequest{
		Action:   model.ActionVerifyEligibility,
		Program:  "Open Grant",
		Verified: &unverify,
	})
	require.NoError(t, err)
	assert.False(t, record.Verdicts[0].Verified)
}

func TestApplyAction_UpdateNotes(t *testing.T) {
	record := testRecord()

	err := applyAction(record, &model.UpdateRecordRequest{
		Action: model.ActionUpdateNotes,
		Notes:  "Called applicant about missing tax return.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Called applicant about missing tax return.", record.Notes)
}

func TestApplyAction_UnknownProgram(t *testing.T) {
	record := testRecord()

	err := applyAction(record, &model.UpdateRecordRequest{
		Action:   model.ActionAddDocument,
		Program:  "No Such Program",
		Document: "FAFSA",
	})
	assert.ErrorIs(t, err, ErrProgramNotTracked)
}
