package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BondType is the kind of surety bond requested.
type BondType string

const (
	BondBid         BondType = "Penawaran"
	BondPerformance BondType = "Pelaksanaan"
	BondAdvance     BondType = "Uang Muka"
	BondMaintenance BondType = "Pemeliharaan"
)

// BondTypes lists the supported bond types.
var BondTypes = []BondType{BondBid, BondPerformance, BondAdvance, BondMaintenance}

// ParseBondType resolves a bond type name, ignoring case and surrounding whitespace.
func ParseBondType(s string) (BondType, bool) {
	for _, bt := range BondTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(bt)) {
			return bt, true
		}
	}
	return "", false
}

// EmployerType is the category of the project owner (obligee).
type EmployerType string

const (
	EmployerPrivate    EmployerType = "Swasta"
	EmployerStateOwned EmployerType = "BUMN"
)

// ParseEmployerType accepts the wire labels as well as "Private" and "StateOwned".
func ParseEmployerType(s string) (EmployerType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "swasta", "private":
		return EmployerPrivate, true
	case "bumn", "stateowned", "state_owned":
		return EmployerStateOwned, true
	}
	return "", false
}

// DefaultCoveragePercent applies when an applicant does not state a coverage.
var DefaultCoveragePercent = decimal.NewFromInt(100)

// ApplicantProfile describes the bond applicant and the requested guarantee.
// Name and Address are informational and never scored.
type ApplicantProfile struct {
	Name            string
	Address         string
	BondType        BondType
	EmployerType    EmployerType
	GuaranteeValue  int64
	CoveragePercent decimal.Decimal
}

// ProjectValue is coverage/100 x guarantee value.
func (p ApplicantProfile) ProjectValue() decimal.Decimal {
	return p.CoveragePercent.Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(p.GuaranteeValue))
}
