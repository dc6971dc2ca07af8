package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atharvrajmane/channel-partner-form-backend/internal/domain"
	"github.com/atharvrajmane/channel-partner-form-backend/internal/mocks"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func samplePartner() *domain.Partner {
	approvedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Partner{
		ID:               7,
		Ref:              "0f8fad5b-d9cb-469f-a165-70867728950e",
		Name:             "ALFA TRADING",
		Dob:              time.Date(1992, 5, 10, 0, 0, 0, 0, time.UTC),
		Gender:           "M",
		Phone:            "0811000001",
		Email:            "alfa@example.com",
		CurrentAddress:   "12 Main St",
		PermanentAddress: "34 Home Rd",
		AccountHolder:    "ALFA TRADING",
		AccountNumber:    "123456789",
		RoutingCode:      "HDFC0001",

		ApplicantDetailsReview: domain.Review{Status: domain.StatusApproved, Reason: "verified"},
		CurrentAddressReview:   domain.Review{Status: domain.StatusPending},
		PermanentAddressReview: domain.Review{Status: domain.StatusPending},
		KYCDocumentsReview:     domain.Review{Status: domain.StatusRejected, Reason: "blurry scan"},
		BankingDetailsReview:   domain.Review{Status: domain.StatusPending},

		FinalDecision: domain.Review{Status: domain.StatusPending},
		ApprovedAt:    &approvedAt,

		CreatedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),

		Documents: []domain.Document{
			{ID: 1, PartnerID: 7, ProofType: "identity", DocType: "passport", DocNumber: "P1234567", FrontURL: "https://files/front.jpg", BackURL: "https://files/back.jpg"},
			{ID: 2, PartnerID: 7, ProofType: "address", DocType: "utility_bill", DocNumber: "UB-42"},
		},
	}
}

func TestHandler_GetPartner(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(m *mocks.PartnerUsecase)
		wantCode  int
		checkBody func(t *testing.T, body []byte)
	}{
		{
			name: "200_composite_view",
			id:   "7",
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("Get", mock.Anything, int32(7)).Return(samplePartner(), nil).Once()
			},
			wantCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, float64(7), got["partner_id"])
				assert.Equal(t, "1992-05-10", got["dob"])
				assert.Equal(t, "Approved", got["applicant_details_status"])
				assert.Equal(t, "Rejected", got["kyc_documents_status"])
				assert.Equal(t, "blurry scan", got["kyc_documents_reason"])
				assert.Equal(t, "Pending", got["banking_details_status"])
				assert.Equal(t, "Pending", got["final_decision"])

				docs, ok := got["documents"].([]any)
				require.True(t, ok)
				require.Len(t, docs, 2)
				first := docs[0].(map[string]any)
				assert.Equal(t, float64(1), first["doc_id"])
				assert.Equal(t, "passport", first["doc_type"])
			},
		},
		{
			name: "200_empty_documents_array",
			id:   "7",
			setupMock: func(m *mocks.PartnerUsecase) {
				p := samplePartner()
				p.Documents = nil
				m.On("Get", mock.Anything, int32(7)).Return(p, nil).Once()
			},
			wantCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var got map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				docs, ok := got["documents"].([]any)
				require.True(t, ok)
				assert.Empty(t, docs)
			},
		},
		{
			name: "404_unknown_id",
			id:   "404",
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("Get", mock.Anything, int32(404)).Return(nil, nil).Once()
			},
			wantCode: http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), MsgNotFound)
			},
		},
		{
			name:      "400_invalid_id",
			id:        "abc",
			setupMock: func(m *mocks.PartnerUsecase) {},
			wantCode:  http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
		{
			name: "500_store_error",
			id:   "7",
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("Get", mock.Anything, int32(7)).Return(nil, errors.New("db down")).Once()
			},
			wantCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				// this path does not leak internals
				assert.NotContains(t, string(body), "db down")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockUC := new(mocks.PartnerUsecase)
			tc.setupMock(mockUC)

			h := &Handler{UC: mockUC, Val: validator.New()}

			req := httptest.NewRequest(http.MethodGet, "/api/partners/"+tc.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.id})
			rr := httptest.NewRecorder()

			h.GetPartner(rr, req)

			assert.Equal(t, tc.wantCode, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())

			mockUC.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdateDecision(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		bodyRaw   []byte
		bodyObj   any
		setupMock func(m *mocks.PartnerUsecase)
		wantCode  int
		checkBody func(t *testing.T, body []byte)
	}{
		{
			name:    "200_approved",
			id:      "7",
			bodyObj: map[string]any{"final_decision": "Approved", "final_decision_reason": "all sections verified"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateFinalDecision", mock.Anything, int32(7), domain.StatusApproved, "all sections verified").
					Return(nil).Once()
			},
			wantCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), MsgDecisionUpdated)
			},
		},
		{
			name:    "200_overwrite_with_rejected",
			id:      "7",
			bodyObj: map[string]any{"final_decision": "Rejected", "final_decision_reason": "incomplete docs"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateFinalDecision", mock.Anything, int32(7), domain.StatusRejected, "incomplete docs").
					Return(nil).Once()
			},
			wantCode:  http.StatusOK,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
		{
			name:    "400_pending_not_accepted",
			id:      "7",
			bodyObj: map[string]any{"final_decision": "Pending"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateFinalDecision", mock.Anything, int32(7), domain.StatusPending, "").
					Return(domain.ErrInvalidDecision).Once()
			},
			wantCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Approved, Rejected")
			},
		},
		{
			name:    "400_missing_decision",
			id:      "7",
			bodyObj: map[string]any{"final_decision_reason": "no decision"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateFinalDecision", mock.Anything, int32(7), domain.Status(""), "no decision").
					Return(domain.ErrInvalidDecision).Once()
			},
			wantCode:  http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
		{
			name:      "400_invalid_json",
			id:        "7",
			bodyRaw:   []byte("{"),
			setupMock: func(m *mocks.PartnerUsecase) {},
			wantCode:  http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
		{
			name:    "404_unknown_id",
			id:      "999",
			bodyObj: map[string]any{"final_decision": "Approved", "final_decision_reason": "ok"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateFinalDecision", mock.Anything, int32(999), domain.StatusApproved, "ok").
					Return(domain.ErrNotFound).Once()
			},
			wantCode:  http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) { assert.Contains(t, string(body), MsgNotFound) },
		},
		{
			name:    "500_store_error",
			id:      "7",
			bodyObj: map[string]any{"final_decision": "Approved", "final_decision_reason": "ok"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateFinalDecision", mock.Anything, int32(7), domain.StatusApproved, "ok").
					Return(errors.New("db down")).Once()
			},
			wantCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				assert.NotContains(t, string(body), "db down")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockUC := new(mocks.PartnerUsecase)
			tc.setupMock(mockUC)

			h := &Handler{UC: mockUC, Val: validator.New()}

			var body []byte
			if tc.bodyRaw != nil {
				body = tc.bodyRaw
			} else {
				body = mustJSON(t, tc.bodyObj)
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/partners/"+tc.id+"/decision", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = mux.SetURLVars(req, map[string]string{"id": tc.id})
			rr := httptest.NewRecorder()

			h.UpdateDecision(rr, req)

			assert.Equal(t, tc.wantCode, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())

			mockUC.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdateSectionStatus(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		bodyRaw   []byte
		bodyObj   any
		setupMock func(m *mocks.PartnerUsecase)
		wantCode  int
		checkBody func(t *testing.T, body []byte)
	}{
		{
			name:    "200_kyc_approved",
			id:      "7",
			bodyObj: map[string]any{"section": "kyc_documents", "status": "Approved", "reason": "looks good"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateSectionStatus", mock.Anything, int32(7), "kyc_documents", domain.StatusApproved, "looks good").
					Return(nil).Once()
			},
			wantCode: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), MsgSectionUpdated)
			},
		},
		{
			name:    "400_unknown_section_names_allow_list",
			id:      "7",
			bodyObj: map[string]any{"section": "not_a_real_section", "status": "Approved", "reason": "x"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateSectionStatus", mock.Anything, int32(7), "not_a_real_section", domain.StatusApproved, "x").
					Return(domain.ErrInvalidSection).Once()
			},
			wantCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				for _, section := range domain.Sections {
					assert.Contains(t, string(body), section)
				}
			},
		},
		{
			name:    "400_pending_not_accepted",
			id:      "7",
			bodyObj: map[string]any{"section": "banking_details", "status": "Pending", "reason": ""},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateSectionStatus", mock.Anything, int32(7), "banking_details", domain.StatusPending, "").
					Return(domain.ErrInvalidStatus).Once()
			},
			wantCode: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "Approved, Rejected")
			},
		},
		{
			name:      "400_invalid_json",
			id:        "7",
			bodyRaw:   []byte("{"),
			setupMock: func(m *mocks.PartnerUsecase) {},
			wantCode:  http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
		{
			name:    "404_unknown_id",
			id:      "999",
			bodyObj: map[string]any{"section": "current_address", "status": "Rejected", "reason": "mismatch"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateSectionStatus", mock.Anything, int32(999), "current_address", domain.StatusRejected, "mismatch").
					Return(domain.ErrNotFound).Once()
			},
			wantCode:  http.StatusNotFound,
			checkBody: func(t *testing.T, body []byte) { assert.Contains(t, string(body), MsgNotFound) },
		},
		{
			name:    "500_store_error_echoes_detail",
			id:      "7",
			bodyObj: map[string]any{"section": "current_address", "status": "Approved", "reason": "ok"},
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("UpdateSectionStatus", mock.Anything, int32(7), "current_address", domain.StatusApproved, "ok").
					Return(errors.New("pq: connection refused")).Once()
			},
			wantCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "pq: connection refused")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockUC := new(mocks.PartnerUsecase)
			tc.setupMock(mockUC)

			h := &Handler{UC: mockUC, Val: validator.New()}

			var body []byte
			if tc.bodyRaw != nil {
				body = tc.bodyRaw
			} else {
				body = mustJSON(t, tc.bodyObj)
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/partners/"+tc.id+"/section-status", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = mux.SetURLVars(req, map[string]string{"id": tc.id})
			rr := httptest.NewRecorder()

			h.UpdateSectionStatus(rr, req)

			assert.Equal(t, tc.wantCode, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())

			mockUC.AssertExpectations(t)
		})
	}
}

func TestHandler_CreatePartner(t *testing.T) {
	validBody := map[string]any{
		"full_name": "ALFA TRADING",
		"dob":       "1992-05-10",
		"phone_num": "0811000001",
		"email":     "alfa@example.com",
	}

	tests := []struct {
		name      string
		bodyRaw   []byte
		bodyObj   any
		setupMock func(m *mocks.PartnerUsecase)
		wantCode  int
		checkBody func(t *testing.T, body []byte)
	}{
		{
			name:    "201_created",
			bodyObj: validBody,
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(p domain.Partner) bool {
					return p.Name == "ALFA TRADING" && p.Email == "alfa@example.com"
				})).Return(&domain.Partner{ID: 123, Ref: "0f8fad5b-d9cb-469f-a165-70867728950e"}, nil).Once()
			},
			wantCode: http.StatusCreated,
			checkBody: func(t *testing.T, body []byte) {
				var got map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, float64(123), got["partner_id"])
				assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", got["partner_ref"])
			},
		},
		{
			name:      "400_invalid_json",
			bodyRaw:   []byte("{"),
			setupMock: func(m *mocks.PartnerUsecase) {},
			wantCode:  http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
		{
			name:      "422_validation_error",
			bodyObj:   map[string]any{},
			setupMock: func(m *mocks.PartnerUsecase) {},
			wantCode:  http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
		{
			name: "422_invalid_dob_format",
			bodyObj: map[string]any{
				"full_name": "ALFA TRADING",
				"dob":       "10-05-1992",
				"phone_num": "0811000001",
				"email":     "alfa@example.com",
			},
			setupMock: func(m *mocks.PartnerUsecase) {},
			wantCode:  http.StatusUnprocessableEntity,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "invalid dob")
			},
		},
		{
			name:    "409_unique_violation",
			bodyObj: validBody,
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("Create", mock.Anything, mock.AnythingOfType("domain.Partner")).
					Return(nil, domain.ErrConflict).Once()
			},
			wantCode:  http.StatusConflict,
			checkBody: func(t *testing.T, body []byte) { assert.Contains(t, string(body), "already exists") },
		},
		{
			name:    "500_store_error",
			bodyObj: validBody,
			setupMock: func(m *mocks.PartnerUsecase) {
				m.On("Create", mock.Anything, mock.AnythingOfType("domain.Partner")).
					Return(nil, errors.New("db down")).Once()
			},
			wantCode:  http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) { assert.NotEmpty(t, body) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockUC := new(mocks.PartnerUsecase)
			tc.setupMock(mockUC)

			h := &Handler{UC: mockUC, Val: validator.New()}

			var body []byte
			if tc.bodyRaw != nil {
				body = tc.bodyRaw
			} else {
				body = mustJSON(t, tc.bodyObj)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/partners", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			h.CreatePartner(rr, req)

			assert.Equal(t, tc.wantCode, rr.Code)
			tc.checkBody(t, rr.Body.Bytes())

			mockUC.AssertExpectations(t)
		})
	}
}

func TestHandler_DeletePartner(t *testing.T) {
	t.Run("200_ok", func(t *testing.T) {
		mockUC := new(mocks.PartnerUsecase)
		mockUC.On("Delete", mock.Anything, int32(7)).Return(nil).Once()

		h := &Handler{UC: mockUC, Val: validator.New()}
		req := httptest.NewRequest(http.MethodDelete, "/api/partners/7", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		h.DeletePartner(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("404_unknown_id", func(t *testing.T) {
		mockUC := new(mocks.PartnerUsecase)
		mockUC.On("Delete", mock.Anything, int32(999)).Return(domain.ErrNotFound).Once()

		h := &Handler{UC: mockUC, Val: validator.New()}
		req := httptest.NewRequest(http.MethodDelete, "/api/partners/999", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "999"})
		rr := httptest.NewRecorder()

		h.DeletePartner(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("400_invalid_id", func(t *testing.T) {
		mockUC := new(mocks.PartnerUsecase)

		h := &Handler{UC: mockUC, Val: validator.New()}
		req := httptest.NewRequest(http.MethodDelete, "/api/partners/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		h.DeletePartner(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUC.AssertExpectations(t)
	})
}

func TestHandler_AddDocument(t *testing.T) {
	t.Run("201_created", func(t *testing.T) {
		mockUC := new(mocks.PartnerUsecase)
		mockUC.On("AddDocument", mock.Anything, mock.MatchedBy(func(d domain.Document) bool {
			return d.PartnerID == 7 && d.ProofType == "identity" && d.DocType == "passport"
		})).Return(int32(5), nil).Once()

		h := &Handler{UC: mockUC, Val: validator.New()}
		body := mustJSON(t, map[string]any{
			"proof_type": "identity",
			"doc_type":   "passport",
			"doc_number": "P1234567",
			"front_url":  "https://files/front.jpg",
			"back_url":   "https://files/back.jpg",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/partners/7/documents", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		h.AddDocument(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"doc_id":5`)
		mockUC.AssertExpectations(t)
	})

	t.Run("404_unknown_owner", func(t *testing.T) {
		mockUC := new(mocks.PartnerUsecase)
		mockUC.On("AddDocument", mock.Anything, mock.AnythingOfType("domain.Document")).
			Return(int32(0), domain.ErrNotFound).Once()

		h := &Handler{UC: mockUC, Val: validator.New()}
		body := mustJSON(t, map[string]any{"proof_type": "identity", "doc_type": "passport"})
		req := httptest.NewRequest(http.MethodPost, "/api/partners/999/documents", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "999"})
		rr := httptest.NewRecorder()

		h.AddDocument(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("422_missing_required_fields", func(t *testing.T) {
		mockUC := new(mocks.PartnerUsecase)

		h := &Handler{UC: mockUC, Val: validator.New()}
		body := mustJSON(t, map[string]any{"doc_number": "P1234567"})
		req := httptest.NewRequest(http.MethodPost, "/api/partners/7/documents", bytes.NewReader(body))
		req = mux.SetURLVars(req, map[string]string{"id": "7"})
		rr := httptest.NewRecorder()

		h.AddDocument(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockUC.AssertExpectations(t)
	})
}
