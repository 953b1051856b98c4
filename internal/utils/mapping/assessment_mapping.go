package mapping

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/surety_risk_app/internal/apperrors"
	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/SscSPs/surety_risk_app/internal/dto"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToDomainStatement converts a labelled statement to a domain statement with
// every known line item present. Unknown labels, labels naming the same item
// twice and amounts above domain.MaxLineItemAmount are rejected.
func ToDomainStatement(s dto.Statement) (domain.FinancialStatement, error) {
	out := domain.NewFinancialStatement()
	seen := make(map[domain.LineItem]string, len(s))
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	for _, label := range labels {
		item, ok := domain.ParseLineItem(label)
		if !ok {
			return nil, fmt.Errorf("%w: unknown line item %q", apperrors.ErrValidation, label)
		}
		if prev, dup := seen[item]; dup {
			return nil, fmt.Errorf("%w: line item %q given twice (%q and %q)", apperrors.ErrValidation, item, prev, label)
		}
		seen[item] = label
		amount := s[label].Int64()
		if amount > domain.MaxLineItemAmount {
			return nil, fmt.Errorf("%w: line item %q amount %d exceeds %d", apperrors.ErrValidation, label, amount, domain.MaxLineItemAmount)
		}
		out[item] = amount
	}
	return out, nil
}

// ToDomainAnswers converts question-key/letter pairs for a section. An empty
// letter leaves the question unanswered.
func ToDomainAnswers(section domain.Section, answers map[string]string) (domain.AnswerSet, error) {
	out := make(domain.AnswerSet, len(answers))
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		key := domain.QuestionKey(strings.ToLower(strings.TrimSpace(k)))
		q, ok := domain.LookupQuestion(section, key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown %s question %q", apperrors.ErrValidation, strings.ToLower(string(section)), k)
		}
		letter := domain.Grade(strings.ToUpper(strings.TrimSpace(answers[k])))
		if letter == "" {
			continue
		}
		if !q.Offers(letter) {
			return nil, fmt.Errorf("%w: answer %q is not an option for %s question %s", apperrors.ErrValidation, answers[k], strings.ToLower(string(section)), key)
		}
		out[key] = letter
	}
	return out, nil
}

// ToDomainApplicant converts the applicant block, applying the default coverage.
func ToDomainApplicant(a dto.ApplicantRequest) (domain.ApplicantProfile, error) {
	bondType, ok := domain.ParseBondType(a.BondType)
	if !ok {
		return domain.ApplicantProfile{}, fmt.Errorf("%w: unknown bond type %q", apperrors.ErrValidation, a.BondType)
	}
	employerType, ok := domain.ParseEmployerType(a.EmployerType)
	if !ok {
		return domain.ApplicantProfile{}, fmt.Errorf("%w: unknown employer type %q", apperrors.ErrValidation, a.EmployerType)
	}

	coverage := domain.DefaultCoveragePercent
	if a.CoveragePercent != nil {
		coverage = *a.CoveragePercent
		if coverage.IsNegative() || coverage.GreaterThan(hundred) {
			return domain.ApplicantProfile{}, fmt.Errorf("%w: coverage percent %s must be between 0 and 100", apperrors.ErrValidation, coverage)
		}
	}

	return domain.ApplicantProfile{
		Name:            strings.TrimSpace(a.Name),
		Address:         strings.TrimSpace(a.Address),
		BondType:        bondType,
		EmployerType:    employerType,
		GuaranteeValue:  a.GuaranteeValue.Int64(),
		CoveragePercent: coverage,
	}, nil
}

// ToDomainAssessmentInput converts a full request. The first invalid field is reported.
func ToDomainAssessmentInput(req dto.AssessmentRequest) (domain.AssessmentInput, error) {
	var in domain.AssessmentInput
	var err error

	if in.PriorYear, err = ToDomainStatement(req.PriorYear); err != nil {
		return domain.AssessmentInput{}, fmt.Errorf("priorYear: %w", err)
	}
	if in.CurrentYear, err = ToDomainStatement(req.CurrentYear); err != nil {
		return domain.AssessmentInput{}, fmt.Errorf("currentYear: %w", err)
	}

	sections := []struct {
		section domain.Section
		answers map[string]string
		target  *domain.AnswerSet
	}{
		{domain.SectionCapacity, req.Capacity, &in.Capacity},
		{domain.SectionCharacter, req.Character, &in.Character},
		{domain.SectionCapital, req.Capital, &in.Capital},
		{domain.SectionCondition, req.Condition, &in.Condition},
	}
	for _, s := range sections {
		if *s.target, err = ToDomainAnswers(s.section, s.answers); err != nil {
			return domain.AssessmentInput{}, err
		}
	}

	if in.Profile, err = ToDomainApplicant(req.Applicant); err != nil {
		return domain.AssessmentInput{}, fmt.Errorf("applicant: %w", err)
	}
	return in, nil
}

// ToDomainAssessmentInputs converts every batch item, reporting the index of the first failure.
func ToDomainAssessmentInputs(items []dto.AssessmentRequest) ([]domain.AssessmentInput, error) {
	out := make([]domain.AssessmentInput, len(items))
	for i, item := range items {
		in, err := ToDomainAssessmentInput(item)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		out[i] = in
	}
	return out, nil
}
