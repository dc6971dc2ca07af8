package dto

type DocumentResponse struct {
	DocID     int32  `json:"doc_id"`
	PartnerID int32  `json:"partner_id"`
	ProofType string `json:"proof_type"`
	DocType   string `json:"doc_type"`
	DocNumber string `json:"doc_number"`
	FrontURL  string `json:"front_url"`
	BackURL   string `json:"back_url"`
}

type PartnerResponse struct {
	PartnerID        int32   `json:"partner_id"`
	PartnerRef       string  `json:"partner_ref"`
	FullName         string  `json:"full_name"`
	Dob              string  `json:"dob"`
	Gender           string  `json:"gender"`
	NationalIDNum    *string `json:"national_id_num"`
	TaxIDNum         *string `json:"tax_id_num"`
	PhoneNum         string  `json:"phone_num"`
	Email            string  `json:"email"`
	CurrentAddress   string  `json:"current_address"`
	PermanentAddress string  `json:"permanent_address"`
	AccountHolder    string  `json:"account_holder"`
	AccountNumber    string  `json:"account_number"`
	RoutingCode      string  `json:"routing_code"`

	ApplicantDetailsStatus string `json:"applicant_details_status"`
	ApplicantDetailsReason string `json:"applicant_details_reason"`
	CurrentAddressStatus   string `json:"current_address_status"`
	CurrentAddressReason   string `json:"current_address_reason"`
	PermanentAddressStatus string `json:"permanent_address_status"`
	PermanentAddressReason string `json:"permanent_address_reason"`
	KycDocumentsStatus     string `json:"kyc_documents_status"`
	KycDocumentsReason     string `json:"kyc_documents_reason"`
	BankingDetailsStatus   string `json:"banking_details_status"`
	BankingDetailsReason   string `json:"banking_details_reason"`

	FinalDecision       string  `json:"final_decision"`
	FinalDecisionReason string  `json:"final_decision_reason"`
	ApprovedAt          *string `json:"approved_at"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	Documents []DocumentResponse `json:"documents"`
}

type PartnerCreatedResponse struct {
	Message    string `json:"message"`
	PartnerID  int32  `json:"partner_id"`
	PartnerRef string `json:"partner_ref"`
}
