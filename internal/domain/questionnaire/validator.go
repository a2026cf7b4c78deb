package questionnaire

import (
	"fmt"

	"github.com/census-rm/caseapi/internal/domain/cases"
	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/google/uuid"
)

// ValidateLinkRequest checks whether an individual-case reference is legal
// for the given case attributes. Individual sub-case references are only
// meaningful for household cases and unit-level communal-establishment
// individual requests; any combination not enumerated as valid is rejected.
// Pure domain logic, independent of Classify.
func ValidateLinkRequest(caseType cases.CaseType, addressLevel cases.AddressLevel, individual bool, individualCaseRef *uuid.UUID) error {
	hasRef := individualCaseRef != nil

	switch caseType {
	case cases.CaseTypeHousehold:
		if addressLevel != cases.AddressLevelUnit {
			return invalidLinkRequest(caseType, addressLevel, individual, hasRef)
		}
		// Household individual requests carry a sub-case reference;
		// non-individual requests must not.
		if individual != hasRef {
			return invalidLinkRequest(caseType, addressLevel, individual, hasRef)
		}
		return nil

	case cases.CaseTypeCommunalEstablishment:
		if hasRef {
			return invalidLinkRequest(caseType, addressLevel, individual, hasRef)
		}
		if addressLevel == cases.AddressLevelEstablishment {
			return nil
		}
		if addressLevel == cases.AddressLevelUnit && individual {
			return nil
		}
		return invalidLinkRequest(caseType, addressLevel, individual, hasRef)

	case cases.CaseTypeSPG:
		if hasRef {
			return invalidLinkRequest(caseType, addressLevel, individual, hasRef)
		}
		return nil
	}

	return invalidLinkRequest(caseType, addressLevel, individual, hasRef)
}

func invalidLinkRequest(caseType cases.CaseType, addressLevel cases.AddressLevel, individual, hasRef bool) *shared.DomainError {
	return shared.NewDomainError("BAD_REQUEST",
		fmt.Sprintf("Invalid request for case type %q, address level %q, individual %t, individualCaseRef present %t",
			caseType, addressLevel, individual, hasRef))
}
