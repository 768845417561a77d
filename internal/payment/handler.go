package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sharedtab/billsplit/pkg/middleware"
	"github.com/sharedtab/billsplit/pkg/response"
)

// Handler handles HTTP requests for payment operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for payment endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/group/{groupId}", h.ListByGroup)

	return r
}

// Create handles POST /payments
// @Summary      Record a direct payment
// @Description  Record a payment from the current user to another group member
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body CreatePaymentRequest true "Payment creation request"
// @Success      201 {object} response.APIResponse{data=PaymentResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /payments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), payerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCannotPaySelf), errors.Is(err, ErrNonPositive):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrPayeeNotMember), errors.Is(err, ErrPayerNotMember):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "Failed to create payment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// GetByID handles GET /payments/{id}
// @Summary      Get payment by ID
// @Tags         payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200 {object} response.APIResponse{data=PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get payment")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Update handles PUT /payments/{id}
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path int true "Payment ID"
// @Param        request body UpdatePaymentRequest true "Payment update request"
// @Success      200 {object} response.APIResponse{data=PaymentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	var req UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNonPositive):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update payment")
		}
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Delete handles DELETE /payments/{id}
// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Param        id path int true "Payment ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /payments/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete payment")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Payment deleted"})
}

// ListByGroup handles GET /payments/group/{groupId}
// @Summary      List payments of a group
// @Description  List a group's payments, optionally filtered to one member or to the payments between two members
// @Tags         payments
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        limit query int false "Maximum payments to return" default(50)
// @Param        member_a query int false "Filter to payments involving this member"
// @Param        member_b query int false "With member_a, filter to payments between the two"
// @Success      200 {object} response.APIResponse{data=[]PaymentResponse}
// @Router       /payments/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	var memberA, memberB *int64
	if v := r.URL.Query().Get("member_a"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			memberA = &id
		}
	}
	if v := r.URL.Query().Get("member_b"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			memberB = &id
		}
	}
	if memberA == nil && memberB != nil {
		response.BadRequest(w, "member_b requires member_a")
		return
	}

	payments, err := h.service.ListByGroup(r.Context(), groupID, limit, memberA, memberB)
	if err != nil {
		response.InternalError(w, "Failed to list payments")
		return
	}

	resp := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = p.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, resp, &response.Meta{Count: len(resp)})
}
