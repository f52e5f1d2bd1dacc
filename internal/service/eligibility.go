package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smartaid/smartaid-backend/internal/model"
)

// evaluateProfile screens a profile against every program in catalog order,
// returning one verdict per program. All four checks run for each program;
// failing reasons accumulate rather than short-circuiting, so the applicant
// sees everything that disqualified them.
func evaluateProfile(profile model.ApplicantProfile, programs []model.Program) []model.Verdict {
	verdicts := make([]model.Verdict, 0, len(programs))

	for i := range programs {
		p := &programs[i]
		var reasons []string

		if p.ResidencyRequired != model.ResidencyAny && p.ResidencyRequired != profile.Residency {
			reasons = append(reasons, fmt.Sprintf("Residency requirement not met (requires %s)", p.ResidencyRequired))
		}

		// Strict less-than: a GPA exactly at the minimum passes.
		if profile.GPA < p.MinGPA {
			reasons = append(reasons, fmt.Sprintf("GPA requirement not met (requires %s)", formatGPA(p.MinGPA)))
		}

		// Strict greater-than: income exactly at the maximum passes.
		if profile.Income > p.MaxIncome {
			reasons = append(reasons, fmt.Sprintf("Income too high (maximum $%s)", formatAmount(p.MaxIncome)))
		}

		if p.EnrollmentRequired && !profile.EnrolledFullTime {
			reasons = append(reasons, "Must be enrolled full-time")
		}

		verdicts = append(verdicts, model.Verdict{
			Program:           p.Name,
			Eligible:          len(reasons) == 0,
			Reasons:           reasons,
			AwardAmount:       p.AwardAmount,
			Deadline:          p.Deadline,
			Description:       p.Description,
			RequiredDocuments: p.RequiredDocuments,
		})
	}

	return verdicts
}

// formatGPA renders a GPA threshold with at least one decimal place
// (3.0, 3.5, 3.25).
func formatGPA(gpa float64) string {
	s := strconv.FormatFloat(gpa, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatAmount renders a dollar threshold with thousands separators,
// dropping the fraction when the amount is whole.
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)

	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}
	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var parts []string
	for len(intPart) > 3 {
		parts = append([]string{intPart[len(intPart)-3:]}, parts...)
		intPart = intPart[:len(intPart)-3]
	}
	parts = append([]string{intPart}, parts...)

	grouped := strings.Join(parts, ",") + fracPart
	if negative {
		grouped = "-" + grouped
	}
	return grouped
}
