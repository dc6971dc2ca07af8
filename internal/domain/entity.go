package domain

import "time"

// Status is the tri-state review outcome used by every section and by the
// final decision. Pending is only ever a default; the update operations
// accept Approved and Rejected.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Decidable reports whether s is a value an official can set.
func (s Status) Decidable() bool {
	return s == StatusApproved || s == StatusRejected
}

// The five reviewable sections of a partner record.
const (
	SectionApplicantDetails = "applicant_details"
	SectionCurrentAddress   = "current_address"
	SectionPermanentAddress = "permanent_address"
	SectionKYCDocuments     = "kyc_documents"
	SectionBankingDetails   = "banking_details"
)

// Sections is the fixed allow-list of section names. Section selection for
// updates must go through this list, never through caller input.
var Sections = []string{
	SectionApplicantDetails,
	SectionCurrentAddress,
	SectionPermanentAddress,
	SectionKYCDocuments,
	SectionBankingDetails,
}

func ValidSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Review pairs a status with the reviewer's free-text reason. The two are
// always written together.
type Review struct {
	Status Status
	Reason string
}

type Partner struct {
	ID               int32
	Ref              string
	Name             string
	Dob              time.Time
	Gender           string
	NationalID       *string
	TaxID            *string
	Phone            string
	Email            string
	CurrentAddress   string
	PermanentAddress string
	AccountHolder    string
	AccountNumber    string
	RoutingCode      string

	ApplicantDetailsReview Review
	CurrentAddressReview   Review
	PermanentAddressReview Review
	KYCDocumentsReview     Review
	BankingDetailsReview   Review

	FinalDecision Review
	ApprovedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Documents []Document
}

type Document struct {
	ID        int32
	PartnerID int32
	ProofType string
	DocType   string
	DocNumber string
	FrontURL  string
	BackURL   string
	CreatedAt time.Time
}
