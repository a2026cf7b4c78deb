package questionnaire

import (
	"fmt"

	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/shared"
)

// Type is the integer questionnaire type code issued to the external pair
// generator. It is derived on demand and never persisted.
type Type int

// Questionnaire type codes by country, England / Wales / Northern Ireland.
const (
	TypeHouseholdEngland  Type = 1
	TypeHouseholdWales    Type = 2
	TypeHouseholdNI       Type = 4
	TypeIndividualEngland Type = 21
	TypeIndividualWales   Type = 22
	TypeIndividualNI      Type = 24
	TypeCEEngland         Type = 31
	TypeCEWales           Type = 32
	TypeCENI              Type = 34
)

var (
	householdTypes  = map[cases.Country]Type{cases.CountryEngland: TypeHouseholdEngland, cases.CountryWales: TypeHouseholdWales, cases.CountryNorthernIreland: TypeHouseholdNI}
	individualTypes = map[cases.Country]Type{cases.CountryEngland: TypeIndividualEngland, cases.CountryWales: TypeIndividualWales, cases.CountryNorthernIreland: TypeIndividualNI}
	ceTypes         = map[cases.Country]Type{cases.CountryEngland: TypeCEEngland, cases.CountryWales: TypeCEWales, cases.CountryNorthernIreland: TypeCENI}
)

// Classify selects the questionnaire type for a case's attributes.
// Pure domain logic: no I/O, no side effects, safe for concurrent use.
//
// Rule order: individual requests win over case-type rules; the communal
// establishment rule additionally requires establishment address level and
// only applies to non-individual requests.
func Classify(caseType cases.CaseType, regionCode string, addressLevel cases.AddressLevel, individual bool) (Type, error) {
	country, ok := cases.CountryFromRegion(regionCode)
	if !ok {
		return 0, shared.NewDomainError("UNKNOWN_COUNTRY",
			fmt.Sprintf("Region %q does not map to a known country", regionCode))
	}

	if individual {
		return individualTypes[country], nil
	}

	switch caseType {
	case cases.CaseTypeHousehold, cases.CaseTypeSPG:
		return householdTypes[country], nil
	case cases.CaseTypeCommunalEstablishment:
		if addressLevel == cases.AddressLevelEstablishment {
			return ceTypes[country], nil
		}
	}

	return 0, newUnprocessableCombination(caseType, addressLevel, individual)
}

// newUnprocessableCombination builds the diagnostic error for attribute
// combinations outside the decision table.
func newUnprocessableCombination(caseType cases.CaseType, addressLevel cases.AddressLevel, individual bool) *shared.DomainError {
	return shared.NewDomainError("UNPROCESSABLE_COMBINATION",
		fmt.Sprintf("No questionnaire type for case type %q, address level %q, individual %t",
			caseType, addressLevel, individual))
}
