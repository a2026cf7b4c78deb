package cases

import (
	"strings"

	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/google/uuid"
)

// CaseType classifies the census collection unit a case represents
type CaseType string

const (
	CaseTypeHousehold             CaseType = "HH"
	CaseTypeCommunalEstablishment CaseType = "CE"
	CaseTypeSPG                   CaseType = "SPG" // single-person-group
)

// AddressLevel is the granularity of a case's address
type AddressLevel string

const (
	AddressLevelUnit          AddressLevel = "U"
	AddressLevelEstablishment AddressLevel = "E"
)

// Country codes derived from the first character of a region code
type Country string

const (
	CountryEngland         Country = "E"
	CountryWales           Country = "W"
	CountryNorthernIreland Country = "N"
)

// CountryFromRegion derives the country from a region code. The first
// character of the region encodes the country.
func CountryFromRegion(region string) (Country, bool) {
	if region == "" {
		return "", false
	}
	switch Country(region[:1]) {
	case CountryEngland, CountryWales, CountryNorthernIreland:
		return Country(region[:1]), true
	}
	return "", false
}

// Case represents a census collection unit tracked through the response
// lifecycle. It is the aggregate root for case lookups. Cases are created by
// an upstream ingestion process; this service reads case attributes and
// extends the set of linked UAC/QID pairs.
type Case struct {
	shared.BaseAggregateRoot
	CaseRef              int64        `gorm:"uniqueIndex;not null"`
	CaseType             CaseType     `gorm:"type:varchar(10);not null"`
	AddressLevel         AddressLevel `gorm:"type:varchar(5);not null"`
	Region               string       `gorm:"type:varchar(20);not null"`
	UPRN                 string       `gorm:"type:varchar(20);index"`
	EstabType            string       `gorm:"type:varchar(100)"`
	OrganisationName     string       `gorm:"type:varchar(200)"`
	AddressLine1         string       `gorm:"type:varchar(200)"`
	AddressLine2         string       `gorm:"type:varchar(200)"`
	AddressLine3         string       `gorm:"type:varchar(200)"`
	TownName             string       `gorm:"type:varchar(100)"`
	Postcode             string       `gorm:"type:varchar(10)"`
	CollectionExerciseID uuid.UUID    `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (Case) TableName() string {
	return "cases"
}

// NewCase creates a case with required attributes. The case reference is
// assigned by the upstream ingestion process and must already be known.
func NewCase(caseRef int64, caseType CaseType, addressLevel AddressLevel, region string, collectionExerciseID uuid.UUID) (*Case, error) {
	if caseRef <= 0 {
		return nil, shared.NewDomainError("INVALID_CASE_REF", "Case reference must be a positive number")
	}
	if err := validateCaseType(caseType); err != nil {
		return nil, err
	}
	if err := validateAddressLevel(addressLevel); err != nil {
		return nil, err
	}
	if strings.TrimSpace(region) == "" {
		return nil, shared.NewDomainError("INVALID_REGION", "Region cannot be empty")
	}

	return &Case{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		CaseRef:              caseRef,
		CaseType:             caseType,
		AddressLevel:         addressLevel,
		Region:               region,
		CollectionExerciseID: collectionExerciseID,
	}, nil
}

// Country returns the country encoded in the case's region code.
func (c *Case) Country() (Country, bool) {
	return CountryFromRegion(c.Region)
}

func validateCaseType(t CaseType) error {
	switch t {
	case CaseTypeHousehold, CaseTypeCommunalEstablishment, CaseTypeSPG:
		return nil
	}
	return shared.NewDomainError("INVALID_CASE_TYPE", "Case type must be one of HH, CE, SPG")
}

func validateAddressLevel(l AddressLevel) error {
	switch l {
	case AddressLevelUnit, AddressLevelEstablishment:
		return nil
	}
	return shared.NewDomainError("INVALID_ADDRESS_LEVEL", "Address level must be U or E")
}
