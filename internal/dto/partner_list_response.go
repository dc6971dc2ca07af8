package dto

type PartnerListItem struct {
	PartnerID     int32  `json:"partner_id"`
	PartnerRef    string `json:"partner_ref"`
	FullName      string `json:"full_name"`
	PhoneNum      string `json:"phone_num"`
	Email         string `json:"email"`
	FinalDecision string `json:"final_decision"`
	CreatedAt     string `json:"created_at"`
}

type PartnerListResponse struct {
	Data  []PartnerListItem `json:"data"`
	Total int               `json:"total"`
}
