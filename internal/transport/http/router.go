package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atharvrajmane/channel-partner-form-backend/internal/middleware"
)

func NewRouter(h *Handler, allowOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.CORS(allowOrigins))
	r.Use(middleware.Metrics)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Handle("/metrics", promhttp.Handler())

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/partners", h.ListPartners).Methods(http.MethodGet)
	api.HandleFunc("/partners", h.CreatePartner).Methods(http.MethodPost)
	api.HandleFunc("/partners/{id}", h.GetPartner).Methods(http.MethodGet)
	api.HandleFunc("/partners/{id}", h.DeletePartner).Methods(http.MethodDelete)
	api.HandleFunc("/partners/{id}/decision", h.UpdateDecision).Methods(http.MethodPatch)
	api.HandleFunc("/partners/{id}/section-status", h.UpdateSectionStatus).Methods(http.MethodPatch)
	api.HandleFunc("/partners/{id}/documents", h.AddDocument).Methods(http.MethodPost)
	return r
}
