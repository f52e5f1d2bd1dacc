package service

import (
	"testing"

	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrograms() []model.Program {
	return []model.Program{
		{
			Name:               "Open Grant",
			ResidencyRequired:  model.ResidencyAny,
			MinGPA:             3.0,
			MaxIncome:          50000,
			EnrollmentRequired: true,
			AwardAmount:        "$2,500",
			Deadline:           "2025-06-30",
			Description:        "Need-based grant open to all states.",
			RequiredDocuments:  []string{"FAFSA", "Tax Return"},
		},
		{
			Name:               "CA Resident Grant",
			ResidencyRequired:  "CA",
			MinGPA:             3.0,
			MaxIncome:          50000,
			EnrollmentRequired: false,
			RequiredDocuments:  []string{"Proof of CA Residency"},
		},
	}
}

func TestEvaluateProfile_EligibleAllChecksPass(t *testing.T) {
	profile := model.ApplicantProfile{Residency: "NY", GPA: 3.5, Income: 20000, EnrolledFullTime: true}

	verdicts := evaluateProfile(profile, testPrograms())
	require.Len(t, verdicts, 2)

	assert.True(t, verdicts[0].Eligible)
	assert.Empty(t, verdicts[0].Reasons)
	assert.Equal(t, "Open Grant", verdicts[0].Program)
	assert.Equal(t, "$2,500", verdicts[0].AwardAmount)
	assert.Equal(t, []string{"FAFSA", "Tax Return"}, verdicts[0].RequiredDocuments)
}

func TestEvaluateProfile_ResidencyMismatch(t *testing.T) {
	profile := model.ApplicantProfile{Residency: "NY", GPA: 3.5, Income: 20000, EnrolledFullTime: true}

	verdicts := evaluateProfile(profile, testPrograms())
	require.Len(t, verdicts, 2)

	assert.False(t, verdicts[1].Eligible)
	assert.Equal(t, []string{"Residency requirement not met (requires CA)"}, verdicts[1].Reasons)
}

func TestEvaluateProfile_AnyResidencyNeverFails(t *testing.T) {
	programs := []model.Program{{Name: "P", ResidencyRequired: model.ResidencyAny, MinGPA: 0, MaxIncome: 1e9}}

	for _, residency := range []string{"", "NY", "CA", "ZZ"} {
		verdicts := evaluateProfile(model.ApplicantProfile{Residency: residency}, programs)
		assert.True(t, verdicts[0].Eligible, "residency %q", residency)
	}
}

func TestEvaluateProfile_BoundaryComparisons(t *testing.T) {
	programs := []model.Program{{
		Name:              "Boundary",
		ResidencyRequired: model.ResidencyAny,
		MinGPA:            3.0,
		MaxIncome:         50000,
	}}

	// GPA exactly at the minimum passes (strict <).
	verdicts := evaluateProfile(model.ApplicantProfile{GPA: 3.0, Income: 0}, programs)
	assert.True(t, verdicts[0].Eligible)

	// Income exactly at the maximum passes (strict >).
	verdicts = evaluateProfile(model.ApplicantProfile{GPA: 4.0, Income: 50000}, programs)
	assert.True(t, verdicts[0].Eligible)

	// The reason names the program's maximum, not the applicant's income.
	verdicts = evaluateProfile(model.ApplicantProfile{GPA: 2.99, Income: 50000.01}, programs)
	require.False(t, verdicts[0].Eligible)
	assert.Equal(t, []string{
		"GPA requirement not met (requires 3.0)",
		"Income too high (maximum $50,000)",
	}, verdicts[0].Reasons)
}

func TestEvaluateProfile_ReasonsAccumulate(t *testing.T) {
	programs := []model.Program{{
		Name:               "Strict",
		ResidencyRequired:  "CA",
		MinGPA:             3.5,
		MaxIncome:          10000,
		EnrollmentRequired: true,
	}}
	profile := model.ApplicantProfile{Residency: "NY", GPA: 2.0, Income: 99999, EnrolledFullTime: false}

	verdicts := evaluateProfile(profile, programs)
	require.False(t, verdicts[0].Eligible)
	assert.Equal(t, []string{
		"Residency requirement not met (requires CA)",
		"GPA requirement not met (requires 3.5)",
		"Income too high (maximum $10,000)",
		"Must be enrolled full-time",
	}, verdicts[0].Reasons)
}

func TestEvaluateProfile_EnrollmentOnlyRequiredWhenProgramDemands(t *testing.T) {
	programs := []model.Program{
		{Name: "Full-time", ResidencyRequired: model.ResidencyAny, MaxIncome: 1e9, EnrollmentRequired: true},
		{Name: "Part-time OK", ResidencyRequired: model.ResidencyAny, MaxIncome: 1e9, EnrollmentRequired: false},
	}
	profile := model.ApplicantProfile{EnrolledFullTime: false}

	verdicts := evaluateProfile(profile, programs)
	assert.False(t, verdicts[0].Eligible)
	assert.Equal(t, []string{"Must be enrolled full-time"}, verdicts[0].Reasons)
	assert.True(t, verdicts[1].Eligible)
}

func TestEvaluateProfile_NegativeValuesAcceptedAsIs(t *testing.T) {
	programs := []model.Program{{Name: "P", ResidencyRequired: model.ResidencyAny, MinGPA: 0, MaxIncome: 50000}}

	// Negative GPA fails the check; negative income trivially passes.
	verdicts := evaluateProfile(model.ApplicantProfile{GPA: -1, Income: -5000}, programs)
	require.False(t, verdicts[0].Eligible)
	assert.Equal(t, []string{"GPA requirement not met (requires 0.0)"}, verdicts[0].Reasons)
}

func TestEvaluateProfile_CatalogOrderPreserved(t *testing.T) {
	programs := []model.Program{
		{Name: "C", ResidencyRequired: model.ResidencyAny, MaxIncome: 1e9},
		{Name: "A", ResidencyRequired: model.ResidencyAny, MaxIncome: 1e9},
		{Name: "B", ResidencyRequired: model.ResidencyAny, MaxIncome: 1e9},
	}

	verdicts := evaluateProfile(model.ApplicantProfile{}, programs)
	require.Len(t, verdicts, 3)
	assert.Equal(t, "C", verdicts[0].Program)
	assert.Equal(t, "A", verdicts[1].Program)
	assert.Equal(t, "B", verdicts[2].Program)
}

func TestFormatGPA(t *testing.T) {
	assert.Equal(t, "3.0", formatGPA(3))
	assert.Equal(t, "3.5", formatGPA(3.5))
	assert.Equal(t, "3.25", formatGPA(3.25))
	assert.Equal(t, "0.0", formatGPA(0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "50,000", formatAmount(50000))
	assert.Equal(t, "999,999", formatAmount(999999))
	assert.Equal(t, "1,250,000", formatAmount(1250000))
	assert.Equal(t, "500", formatAmount(500))
	assert.Equal(t, "50,000.5", formatAmount(50000.5))
}
