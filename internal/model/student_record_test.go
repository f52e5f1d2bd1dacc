package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictRecord_MarkSubmittedMovesFromMissing(t *testing.T) {
	v := VerdictRecord{
		Verdict:          Verdict{Program: "Open Grant"},
		MissingDocuments: []string{"FAFSA", "Tax Return"},
	}

	v.MarkSubmitted("FAFSA")

	assert.Equal(t, []string{"FAFSA"}, v.SubmittedDocuments)
	assert.Equal(t, []string{"Tax Return"}, v.MissingDocuments)
}

func TestVerdictRecord_MarkMissingMovesFromSubmitted(t *testing.T) {
	v := VerdictRecord{
		Verdict:            Verdict{Program: "Open Grant"},
		SubmittedDocuments: []string{"FAFSA", "Tax Return"},
	}

	v.MarkMissing("Tax Return")

	assert.Equal(t, []string{"FAFSA"}, v.SubmittedDocuments)
	assert.Equal(t, []string{"Tax Return"}, v.MissingDocuments)
}

func TestVerdictRecord_MarksAreIdempotent(t *testing.T) {
	v := VerdictRecord{Verdict: Verdict{Program: "Open Grant"}}

	v.MarkSubmitted("FAFSA")
	v.MarkSubmitted("FAFSA")
	assert.Equal(t, []string{"FAFSA"}, v.SubmittedDocuments)
	assert.Empty(t, v.MissingDocuments)

	v.MarkMissing("FAFSA")
	v.MarkMissing("FAFSA")
	assert.Empty(t, v.SubmittedDocuments)
	assert.Equal(t, []string{"FAFSA"}, v.MissingDocuments)
}

func TestVerdictRecord_DocumentNeverInBothLists(t *testing.T) {
	v := VerdictRecord{Verdict: Verdict{Program: "Open Grant"}}

	for _, doc := range []string{"A", "B", "C"} {
		v.MarkMissing(doc)
	}
	v.MarkSubmitted("B")
	v.MarkSubmitted("C")
	v.MarkMissing("C")

	assert.Equal(t, []string{"B"}, v.SubmittedDocuments)
	assert.ElementsMatch(t, []string{"A", "C"}, v.MissingDocuments)
	for _, doc := range v.SubmittedDocuments {
		assert.NotContains(t, v.MissingDocuments, doc)
	}
}

func TestStudentRecord_FindVerdict(t *testing.T) {
	record := StudentRecord{
		StudentID: "SA-1A2B3C4D",
		Verdicts: []VerdictRecord{
			{Verdict: Verdict{Program: "Open Grant", Eligible: true}},
			{Verdict: Verdict{Program: "Merit Award"}},
		},
	}

	found := record.FindVerdict("Merit Award")
	assert.NotNil(t, found)
	assert.Equal(t, "Merit Award", found.Program)

	// The returned pointer aliases the slice element so mutations stick.
	found.Verified = true
	assert.True(t, record.Verdicts[1].Verified)

	assert.Nil(t, record.FindVerdict("No Such Program"))
}

func TestStudentRecord_EligibleCountAndSummary(t *testing.T) {
	record := StudentRecord{
		StudentID: "SA-1A2B3C4D",
		Name:      "Jordan Lee",
		Email:     "jordan@example.com",
		Verdicts: []VerdictRecord{
			{Verdict: Verdict{Program: "Open Grant", Eligible: true}},
			{Verdict: Verdict{Program: "Merit Award", Eligible: false}},
			{Verdict: Verdict{Program: "State Grant", Eligible: true}},
		},
	}

	assert.Equal(t, 2, record.EligibleCount())

	summary := record.Summary()
	assert.Equal(t, "SA-1A2B3C4D", summary.StudentID)
	assert.Equal(t, "Jordan Lee", summary.Name)
	assert.Equal(t, 2, summary.EligibleCount)
}
