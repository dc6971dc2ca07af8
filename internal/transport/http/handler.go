package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/atharvrajmane/channel-partner-form-backend/internal/domain"
	"github.com/atharvrajmane/channel-partner-form-backend/internal/dto"
	"github.com/atharvrajmane/channel-partner-form-backend/internal/pkg/log"
)

type Handler struct {
	UC  domain.PartnerUsecase
	Val *validator.Validate
}

func NewHandler(uc domain.PartnerUsecase) *Handler { return &Handler{UC: uc, Val: validator.New()} }

func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	search := q.Get("search")

	rows, total, err := h.UC.List(r.Context(), search, page, size)
	if err != nil {
		log.Errorw("list_partners repo_err", "err", err)
		writeErr(w, StatusInternalServerError, MsgInternal, nil)
		return
	}

	out := make([]dto.PartnerListItem, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.PartnerListItem{
			PartnerID:     p.ID,
			PartnerRef:    p.Ref,
			FullName:      strings.TrimSpace(p.Name),
			PhoneNum:      p.Phone,
			Email:         p.Email,
			FinalDecision: string(p.FinalDecision.Status),
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}
	log.Infow("list_partners ok", "total", total)
	writeJSON(w, StatusOK, dto.PartnerListResponse{Data: out, Total: int(total)})
}

func (h *Handler) GetPartner(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if id == 0 {
		log.Errorw("get_partner invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	p, err := h.UC.Get(r.Context(), int32(id))
	if err != nil {
		log.Errorw("get_partner repo_err", "id", id, "err", err)
		writeErr(w, StatusInternalServerError, MsgInternal, nil)
		return
	}
	if p == nil {
		writeErr(w, StatusNotFound, MsgNotFound, nil)
		return
	}
	log.Infow("get_partner ok", "id", id, "documents", len(p.Documents))
	writeJSON(w, StatusOK, toPartnerResponse(p))
}

func (h *Handler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorw("create_partner decode_json", "err", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Errorw("create_partner validate", "err", err)
		writeErr(w, StatusUnprocessableEntity, MsgValidation, nil)
		return
	}
	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		log.Errorw("create_partner bad_dob", "err", err, "dob", req.Dob)
		writeErr(w, StatusUnprocessableEntity, "invalid dob", map[string]string{"dob": "YYYY-MM-DD"})
		return
	}

	p := domain.Partner{
		Name:             req.FullName,
		Dob:              dob,
		Gender:           req.Gender,
		NationalID:       req.NationalIDNum,
		TaxID:            req.TaxIDNum,
		Phone:            req.PhoneNum,
		Email:            req.Email,
		CurrentAddress:   req.CurrentAddress,
		PermanentAddress: req.PermanentAddress,
		AccountHolder:    req.AccountHolder,
		AccountNumber:    req.AccountNumber,
		RoutingCode:      req.RoutingCode,
	}

	created, err := h.UC.Create(r.Context(), p)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			log.Infow("create_partner conflict", "email", p.Email)
			writeErr(w, StatusConflict, MsgConflict, map[string]string{"unique": "phone, email, national_id_num or tax_id_num already exists"})
			return
		}
		log.Errorw("create_partner repo_err", "name", p.Name, "email", p.Email, "err", err)
		writeErr(w, StatusInternalServerError, MsgInternal, nil)
		return
	}

	log.Infow("create_partner ok", "id", created.ID, "ref", created.Ref, "email", created.Email)
	writeJSON(w, StatusCreated, dto.PartnerCreatedResponse{
		Message:    MsgPartnerCreated,
		PartnerID:  created.ID,
		PartnerRef: created.Ref,
	})
}

func (h *Handler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Errorw("delete_partner invalid_id", "id", idStr)
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	if err := h.UC.Delete(r.Context(), int32(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeErr(w, StatusNotFound, MsgNotFound, nil)
			return
		}
		log.Errorw("delete_partner repo_err", "id", id, "err", err)
		writeErr(w, StatusInternalServerError, MsgInternal, nil)
		return
	}
	log.Infow("delete_partner ok", "id", id)
	writeMsg(w, StatusOK, MsgPartnerDeleted)
}

func (h *Handler) UpdateDecision(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if id == 0 {
		log.Errorw("update_decision invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	var req dto.UpdateDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorw("update_decision decode_json", "err", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}

	err := h.UC.UpdateFinalDecision(r.Context(), int32(id), domain.Status(req.FinalDecision), req.FinalDecisionReason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDecision):
			log.Errorw("update_decision invalid_decision", "id", id, "decision", req.FinalDecision)
			writeErr(w, StatusBadRequest, MsgInvalidDecision, nil)
		case errors.Is(err, domain.ErrNotFound):
			writeErr(w, StatusNotFound, MsgNotFound, nil)
		default:
			log.Errorw("update_decision repo_err", "id", id, "err", err)
			writeErr(w, StatusInternalServerError, MsgInternal, nil)
		}
		return
	}
	log.Infow("update_decision ok", "id", id, "decision", req.FinalDecision)
	writeMsg(w, StatusOK, MsgDecisionUpdated)
}

func (h *Handler) UpdateSectionStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if id == 0 {
		log.Errorw("update_section invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	var req dto.UpdateSectionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorw("update_section decode_json", "err", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}

	err := h.UC.UpdateSectionStatus(r.Context(), int32(id), req.Section, domain.Status(req.Status), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSection):
			log.Errorw("update_section invalid_section", "id", id, "section", req.Section)
			writeErr(w, StatusBadRequest, MsgInvalidSection(), nil)
		case errors.Is(err, domain.ErrInvalidStatus):
			log.Errorw("update_section invalid_status", "id", id, "status", req.Status)
			writeErr(w, StatusBadRequest, MsgInvalidStatus, nil)
		case errors.Is(err, domain.ErrNotFound):
			writeErr(w, StatusNotFound, MsgNotFound, nil)
		default:
			// this path echoes the underlying error to the caller
			log.Errorw("update_section repo_err", "id", id, "section", req.Section, "err", err)
			writeErr(w, StatusInternalServerError, MsgInternal, map[string]string{"error": err.Error()})
		}
		return
	}
	log.Infow("update_section ok", "id", id, "section", req.Section, "status", req.Status)
	writeMsg(w, StatusOK, MsgSectionUpdated)
}

func (h *Handler) AddDocument(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if id == 0 {
		log.Errorw("add_document invalid_id")
		writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		return
	}
	var req dto.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorw("add_document decode_json", "err", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Errorw("add_document validate", "err", err)
		writeErr(w, StatusUnprocessableEntity, MsgValidation, nil)
		return
	}

	docID, err := h.UC.AddDocument(r.Context(), domain.Document{
		PartnerID: int32(id),
		ProofType: req.ProofType,
		DocType:   req.DocType,
		DocNumber: req.DocNumber,
		FrontURL:  req.FrontURL,
		BackURL:   req.BackURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeErr(w, StatusNotFound, MsgNotFound, nil)
			return
		}
		log.Errorw("add_document repo_err", "id", id, "err", err)
		writeErr(w, StatusInternalServerError, MsgInternal, nil)
		return
	}
	log.Infow("add_document ok", "id", id, "doc_id", docID)
	writeJSON(w, StatusCreated, map[string]any{"message": MsgDocumentAdded, "doc_id": docID})
}

func toPartnerResponse(p *domain.Partner) dto.PartnerResponse {
	var approvedAt *string
	if p.ApprovedAt != nil {
		s := p.ApprovedAt.Format(time.RFC3339)
		approvedAt = &s
	}
	docs := make([]dto.DocumentResponse, 0, len(p.Documents))
	for _, d := range p.Documents {
		docs = append(docs, dto.DocumentResponse{
			DocID:     d.ID,
			PartnerID: d.PartnerID,
			ProofType: d.ProofType,
			DocType:   d.DocType,
			DocNumber: d.DocNumber,
			FrontURL:  d.FrontURL,
			BackURL:   d.BackURL,
		})
	}
	return dto.PartnerResponse{
		PartnerID:        p.ID,
		PartnerRef:       p.Ref,
		FullName:         p.Name,
		Dob:              p.Dob.Format("2006-01-02"),
		Gender:           p.Gender,
		NationalIDNum:    p.NationalID,
		TaxIDNum:         p.TaxID,
		PhoneNum:         p.Phone,
		Email:            p.Email,
		CurrentAddress:   p.CurrentAddress,
		PermanentAddress: p.PermanentAddress,
		AccountHolder:    p.AccountHolder,
		AccountNumber:    p.AccountNumber,
		RoutingCode:      p.RoutingCode,

		ApplicantDetailsStatus: string(p.ApplicantDetailsReview.Status),
		ApplicantDetailsReason: p.ApplicantDetailsReview.Reason,
		CurrentAddressStatus:   string(p.CurrentAddressReview.Status),
		CurrentAddressReason:   p.CurrentAddressReview.Reason,
		PermanentAddressStatus: string(p.PermanentAddressReview.Status),
		PermanentAddressReason: p.PermanentAddressReview.Reason,
		KycDocumentsStatus:     string(p.KYCDocumentsReview.Status),
		KycDocumentsReason:     p.KYCDocumentsReview.Reason,
		BankingDetailsStatus:   string(p.BankingDetailsReview.Status),
		BankingDetailsReason:   p.BankingDetailsReview.Reason,

		FinalDecision:       string(p.FinalDecision.Status),
		FinalDecisionReason: p.FinalDecision.Reason,
		ApprovedAt:          approvedAt,

		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),

		Documents: docs,
	}
}
