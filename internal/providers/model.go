// Package providers implements the NGO provider dataset: record schema,
// CSV import, and the filtered, paginated query layer.
package providers

import "strings"

// Column headers of the source dataset. Rows handed to FromRow are keyed by
// these exact names.
const (
	ColProviderName          = "Provider Name"
	ColProviderIdentifierABN = "Provider Identifier (ABN)"
	ColDeliveryArea          = "Delivery Area"
	ColLocalGovernmentArea   = "Local Government Area Name Multi Value Description"
	ColLocalHealthDistrict   = "Local Health District Multi Value Description"
	ColTargetGroup           = "Target Group Multi Value Description"
	ColClassification        = "Classification Multi Value Description"
	ColGender                = "Gender"
	ColIndigenousStatus      = "Indigenous status"
	ColCommissioningAgency   = "Commissioning Agency"
	ColProgramName           = "Program Name"
	ColAgreementIdentifier   = "Agreement Identifier"
	ColAgreementStartDate    = "Agreement Start Date"
	ColAgreementEndDate      = "Agreement End Date"
)

// Provider is one service-delivery agreement row. Optional fields are
// pointers so an absent value stays NULL in the store and null in JSON,
// distinguishable from empty text. Agreement dates are unparsed source
// strings, not typed dates.
type Provider struct {
	ID                    int64   `json:"id"`
	ProviderName          *string `json:"provider_name"`
	ProviderIdentifierABN *string `json:"provider_identifier_abn"`
	DeliveryArea          *string `json:"delivery_area"`
	LocalGovernmentArea   *string `json:"local_government_area"`
	LocalHealthDistrict   *string `json:"local_health_district"`
	TargetGroup           *string `json:"target_group"`
	Classification        *string `json:"classification"`
	Gender                *string `json:"gender"`
	IndigenousStatus      *string `json:"indigenous_status"`
	CommissioningAgency   *string `json:"commissioning_agency"`
	ProgramName           *string `json:"program_name"`
	AgreementIdentifier   *string `json:"agreement_identifier"`
	AgreementStartDate    *string `json:"agreement_start_date"`
	AgreementEndDate      *string `json:"agreement_end_date"`
}

// FromRow builds a Provider from a header-keyed row of raw text. Values are
// trimmed of surrounding whitespace; blank or missing columns become nil.
// Any text is accepted, including malformed dates.
func FromRow(row map[string]string) Provider {
	return Provider{
		ProviderName:          textOrNil(row[ColProviderName]),
		ProviderIdentifierABN: textOrNil(row[ColProviderIdentifierABN]),
		DeliveryArea:          textOrNil(row[ColDeliveryArea]),
		LocalGovernmentArea:   textOrNil(row[ColLocalGovernmentArea]),
		LocalHealthDistrict:   textOrNil(row[ColLocalHealthDistrict]),
		TargetGroup:           textOrNil(row[ColTargetGroup]),
		Classification:        textOrNil(row[ColClassification]),
		Gender:                textOrNil(row[ColGender]),
		IndigenousStatus:      textOrNil(row[ColIndigenousStatus]),
		CommissioningAgency:   textOrNil(row[ColCommissioningAgency]),
		ProgramName:           textOrNil(row[ColProgramName]),
		AgreementIdentifier:   textOrNil(row[ColAgreementIdentifier]),
		AgreementStartDate:    textOrNil(row[ColAgreementStartDate]),
		AgreementEndDate:      textOrNil(row[ColAgreementEndDate]),
	}
}

func textOrNil(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
