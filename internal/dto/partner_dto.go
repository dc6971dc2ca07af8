package dto

type CreatePartnerRequest struct {
	FullName         string  `json:"full_name" validate:"required"`
	Dob              string  `json:"dob" validate:"required"`
	Gender           string  `json:"gender"`
	NationalIDNum    *string `json:"national_id_num"`
	TaxIDNum         *string `json:"tax_id_num"`
	PhoneNum         string  `json:"phone_num" validate:"required"`
	Email            string  `json:"email" validate:"required,email"`
	CurrentAddress   string  `json:"current_address"`
	PermanentAddress string  `json:"permanent_address"`
	AccountHolder    string  `json:"account_holder"`
	AccountNumber    string  `json:"account_number"`
	RoutingCode      string  `json:"routing_code"`
}

type UpdateDecisionRequest struct {
	FinalDecision       string `json:"final_decision"`
	FinalDecisionReason string `json:"final_decision_reason"`
}

type UpdateSectionStatusRequest struct {
	Section string `json:"section"`
	Status  string `json:"status"`
	Reason  string `json:"reason"`
}

type CreateDocumentRequest struct {
	ProofType string `json:"proof_type" validate:"required"`
	DocType   string `json:"doc_type" validate:"required"`
	DocNumber string `json:"doc_number"`
	FrontURL  string `json:"front_url"`
	BackURL   string `json:"back_url"`
}
