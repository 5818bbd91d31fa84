package leavehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"leavedesk/internal/auth"
	"leavedesk/internal/domain/leave"
	"leavedesk/internal/transport/http/api"
	"leavedesk/internal/transport/http/middleware"
	"leavedesk/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
	Ledger  *leave.Ledger
}

func NewHandler(service *leave.Service, ledger *leave.Ledger) *Handler {
	return &Handler{Service: service, Ledger: ledger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/balance", h.handleGetBalance)
		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleSubmitRequest)
		r.Get("/requests/{requestID}", h.handleGetRequest)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/requests/{requestID}/approve", h.handleApproveRequest)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/requests/{requestID}/reject", h.handleRejectRequest)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/balances/adjust", h.handleAdjustBalance)
	})
}

func (h *Handler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	employeeID := user.UserID
	if requested := r.URL.Query().Get("employeeId"); requested != "" && requested != user.UserID {
		if user.Role != auth.RoleAdmin {
			api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
			return
		}
		employeeID = requested
	}

	balance, err := h.Service.Balances(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, leave.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "balance_failed", "failed to load balance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, balance, middleware.GetRequestID(r.Context()))
}

// handleListRequests serves two views from one route: employees see their
// own requests, admins without an employeeId filter get the full review
// listing with current availability per row.
func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	requested := r.URL.Query().Get("employeeId")

	if user.Role == auth.RoleAdmin && requested == "" {
		rows, err := h.Service.ListForReview(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "requests_failed", "failed to list requests", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, rows, middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := user.UserID
	if requested != "" && requested != user.UserID {
		if user.Role != auth.RoleAdmin {
			api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
			return
		}
		employeeID = requested
	}

	requests, err := h.Service.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "requests_failed", "failed to list requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

type submitRequestPayload struct {
	LeaveType string `json:"leaveType"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload submitRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if strings.TrimSpace(payload.LeaveType) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "leave type required", middleware.GetRequestID(r.Context()))
		return
	}

	fromDate, err := shared.ParseDate(payload.FromDate)
	if err != nil || fromDate.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid from date", middleware.GetRequestID(r.Context()))
		return
	}
	toDate, err := shared.ParseDate(payload.ToDate)
	if err != nil || toDate.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid to date", middleware.GetRequestID(r.Context()))
		return
	}

	request, err := h.Service.Submit(r.Context(), user.UserID, payload.LeaveType, fromDate, toDate, payload.Reason)
	if err != nil {
		h.failDomain(w, r, err)
		return
	}
	api.Created(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	request, err := h.Service.Get(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		return
	}
	if user.Role != auth.RoleAdmin && request.EmployeeID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	request, err := h.Service.Approve(r.Context(), chi.URLParam(r, "requestID"), user.UserID)
	if err != nil {
		h.failDomain(w, r, err)
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

type rejectRequestPayload struct {
	Remarks string `json:"remarks"`
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload rejectRequestPayload
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
			return
		}
	}

	request, err := h.Service.Reject(r.Context(), chi.URLParam(r, "requestID"), user.UserID, payload.Remarks)
	if err != nil {
		h.failDomain(w, r, err)
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

type adjustBalancePayload struct {
	EmployeeID string `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	Days       int    `json:"days"`
}

func (h *Handler) handleAdjustBalance(w http.ResponseWriter, r *http.Request) {
	var payload adjustBalancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee id required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Ledger.Adjust(r.Context(), payload.EmployeeID, payload.LeaveType, payload.Days); err != nil {
		h.failDomain(w, r, err)
		return
	}

	balance, err := h.Ledger.Balances(r.Context(), payload.EmployeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "balance_failed", "failed to load balance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, balance, middleware.GetRequestID(r.Context()))
}

// failDomain maps lifecycle and ledger errors onto the HTTP surface.
func (h *Handler) failDomain(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	var insufficient leave.InsufficientBalanceError
	var unknown leave.UnknownCategoryError
	switch {
	case errors.As(err, &insufficient):
		message := fmt.Sprintf("Insufficient %s leave balance. Available: %d, Requested: %d",
			insufficient.Category, insufficient.Available, insufficient.Requested)
		api.Fail(w, http.StatusBadRequest, "insufficient_balance", message, requestID)
	case errors.As(err, &unknown):
		api.Fail(w, http.StatusBadRequest, "invalid_leave_type", fmt.Sprintf("unknown leave type %q", unknown.Category), requestID)
	case errors.Is(err, leave.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_dates", "to date must not be before from date", requestID)
	case errors.Is(err, leave.ErrNonPositiveDays):
		api.Fail(w, http.StatusBadRequest, "invalid_days", "days must be non-zero", requestID)
	case errors.Is(err, leave.ErrAlreadyResolved):
		api.Fail(w, http.StatusConflict, "already_resolved", "leave request already resolved", requestID)
	case errors.Is(err, leave.ErrRequestNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
	case errors.Is(err, leave.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "leave_failed", "leave operation failed", requestID)
	}
}
