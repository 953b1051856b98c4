// Package policy holds the versioned scoring table: grade scale, financial
// bands, question weights, pillar weights, approval thresholds and collateral
// rules. The grader and the decision engine read it; nothing else does.
package policy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/SscSPs/surety_risk_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_policy.yaml
var defaultPolicyYAML []byte

// ErrInvalidPolicy is returned when a policy document fails validation.
var ErrInvalidPolicy = errors.New("invalid scoring policy")

// FinancialBand maps a minimum YoY percentage (inclusive) to a grade.
type FinancialBand struct {
	MinPercent float64      `yaml:"minPercent"`
	Grade      domain.Grade `yaml:"grade" validate:"required"`
}

// PillarWeights are the final-score weights of the four scored pillars.
type PillarWeights struct {
	Character         float64 `yaml:"character" validate:"gte=0,lte=1"`
	Capital           float64 `yaml:"capital" validate:"gte=0,lte=1"`
	FinancialCapacity float64 `yaml:"financialCapacity" validate:"gte=0,lte=1"`
	Condition         float64 `yaml:"condition" validate:"gte=0,lte=1"`
}

func (w PillarWeights) total() float64 {
	return w.Character + w.Capital + w.FinancialCapacity + w.Condition
}

// Approval holds the final-score cut-offs.
type Approval struct {
	MinScore         float64 `yaml:"minScore" validate:"gte=0,lte=100"`
	HighTierMinScore float64 `yaml:"highTierMinScore" validate:"gtefield=MinScore,lte=100"`
}

// Collateral holds the cash-collateral rule parameters.
type Collateral struct {
	ExemptBondTypes []domain.BondType             `yaml:"exemptBondTypes"`
	Thresholds      map[domain.EmployerType]int64 `yaml:"thresholds" validate:"required,dive,gte=0"`
	BaseRate        decimal.Decimal               `yaml:"baseRate"`
	ElevatedRate    decimal.Decimal               `yaml:"elevatedRate"`
}

// Policy is an immutable scoring table. Build one with Default, Load or Parse;
// all of them validate before returning.
type Policy struct {
	Version        string                                        `yaml:"version" validate:"required"`
	GradeScale     map[domain.Grade]float64                      `yaml:"gradeScale" validate:"required,dive,gte=0,lte=100"`
	FinancialBands []FinancialBand                               `yaml:"financialBands" validate:"required,dive"`
	FallbackGrade  domain.Grade                                  `yaml:"fallbackGrade" validate:"required"`
	SectionWeights map[domain.Section]map[domain.QuestionKey]int `yaml:"sectionWeights" validate:"required,dive,required,dive,gte=0"`
	PillarWeights  PillarWeights                                 `yaml:"pillarWeights"`
	Approval       Approval                                      `yaml:"approval"`
	Collateral     Collateral                                    `yaml:"collateral"`
}

// Default returns the built-in policy.
func Default() *Policy {
	p, err := Parse(defaultPolicyYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded scoring policy is invalid: %v", err))
	}
	return p
}

// Load reads and validates a policy file.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML policy document. Unknown fields are rejected and
// section names are matched ignoring case.
func Parse(data []byte) (*Policy, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Policy
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}
	weights, err := canonicalSections(p.SectionWeights)
	if err != nil {
		return nil, err
	}
	p.SectionWeights = weights
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func canonicalSections(in map[domain.Section]map[domain.QuestionKey]int) (map[domain.Section]map[domain.QuestionKey]int, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[domain.Section]map[domain.QuestionKey]int, len(in))
	for name, weights := range in {
		sec, ok := domain.ParseSection(string(name))
		if !ok {
			return nil, fmt.Errorf("%w: unknown section %q", ErrInvalidPolicy, name)
		}
		if _, dup := out[sec]; dup {
			return nil, fmt.Errorf("%w: section %s listed twice", ErrInvalidPolicy, sec)
		}
		out[sec] = weights
	}
	return out, nil
}

// Validate checks structural tags and the cross-field rules the tags cannot express.
func (p *Policy) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, err)
	}

	if _, ok := p.GradeScale[p.FallbackGrade]; !ok {
		return fmt.Errorf("%w: fallback grade %q has no score", ErrInvalidPolicy, p.FallbackGrade)
	}
	for i, band := range p.FinancialBands {
		if _, ok := p.GradeScale[band.Grade]; !ok {
			return fmt.Errorf("%w: band grade %q has no score", ErrInvalidPolicy, band.Grade)
		}
		if i > 0 && band.MinPercent >= p.FinancialBands[i-1].MinPercent {
			return fmt.Errorf("%w: financial bands must be in strictly descending order", ErrInvalidPolicy)
		}
	}

	for _, sec := range domain.Sections {
		weights, ok := p.SectionWeights[sec]
		if !ok {
			return fmt.Errorf("%w: missing weights for section %s", ErrInvalidPolicy, sec)
		}
		total := 0
		for key, w := range weights {
			if _, ok := domain.LookupQuestion(sec, key); !ok {
				return fmt.Errorf("%w: section %s has no question %q", ErrInvalidPolicy, sec, key)
			}
			total += w
		}
		if total <= 0 {
			return fmt.Errorf("%w: section %s weights sum to zero", ErrInvalidPolicy, sec)
		}
	}
	for sec := range p.SectionWeights {
		if !slices.Contains(domain.Sections, sec) {
			return fmt.Errorf("%w: unknown section %q", ErrInvalidPolicy, sec)
		}
	}

	if math.Abs(p.PillarWeights.total()-1) > 1e-9 {
		return fmt.Errorf("%w: pillar weights must sum to 1, got %v", ErrInvalidPolicy, p.PillarWeights.total())
	}

	c := p.Collateral
	for _, et := range []domain.EmployerType{domain.EmployerPrivate, domain.EmployerStateOwned} {
		if _, ok := c.Thresholds[et]; !ok {
			return fmt.Errorf("%w: missing collateral threshold for %s", ErrInvalidPolicy, et)
		}
	}
	for _, bt := range c.ExemptBondTypes {
		if _, ok := domain.ParseBondType(string(bt)); !ok {
			return fmt.Errorf("%w: unknown exempt bond type %q", ErrInvalidPolicy, bt)
		}
	}
	one := decimal.NewFromInt(1)
	if c.BaseRate.IsNegative() || c.ElevatedRate.GreaterThan(one) || c.BaseRate.GreaterThan(c.ElevatedRate) {
		return fmt.Errorf("%w: collateral rates must satisfy 0 <= base <= elevated <= 1", ErrInvalidPolicy)
	}
	return nil
}

// GradeValue returns the score of a grade, or 0 for a grade not on the scale.
func (p *Policy) GradeValue(g domain.Grade) float64 {
	return p.GradeScale[g]
}

// GradeForPercent grades a YoY percentage against the financial bands.
func (p *Policy) GradeForPercent(pct float64) domain.Grade {
	for _, band := range p.FinancialBands {
		if pct >= band.MinPercent {
			return band.Grade
		}
	}
	return p.FallbackGrade
}

// Weights returns a copy of the question weights for a section.
func (p *Policy) Weights(section domain.Section) map[domain.QuestionKey]int {
	return maps.Clone(p.SectionWeights[section])
}

// Threshold returns the collateral guarantee threshold for an employer type.
// Anything other than a private employer uses the state-owned threshold.
func (p *Policy) Threshold(et domain.EmployerType) int64 {
	if et == domain.EmployerPrivate {
		return p.Collateral.Thresholds[domain.EmployerPrivate]
	}
	return p.Collateral.Thresholds[domain.EmployerStateOwned]
}

// IsExempt reports whether a bond type never requires collateral.
func (p *Policy) IsExempt(bt domain.BondType) bool {
	return slices.Contains(p.Collateral.ExemptBondTypes, bt)
}
