package reportshandler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"leavedesk/internal/auth"
	"leavedesk/internal/domain/reports"
	"leavedesk/internal/transport/http/api"
	"leavedesk/internal/transport/http/middleware"
)

type Handler struct {
	Store *reports.Store
}

func NewHandler(store *reports.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/balances", h.handleBalanceSummary)
	})
}

func (h *Handler) handleBalanceSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.BalanceSummary(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load report", middleware.GetRequestID(r.Context()))
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=balance-summary.csv")
		if err := reports.WriteCSV(w, rows); err != nil {
			slog.Warn("balance summary csv write failed", "err", err)
		}
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=balance-summary.pdf")
		if err := reports.WritePDF(w, rows, time.Now().UTC()); err != nil {
			slog.Warn("balance summary pdf write failed", "err", err)
		}
	default:
		api.Success(w, rows, middleware.GetRequestID(r.Context()))
	}
}
