package bill

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sharedtab/billsplit/internal/bill/split"
	"github.com/sharedtab/billsplit/pkg/middleware"
	"github.com/sharedtab/billsplit/pkg/response"
)

// Handler handles HTTP requests for bill operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Get("/group/{groupId}", h.ListByGroup)

	return r
}

// Create handles POST /bills
// @Summary      Create a new bill
// @Description  Validate the split method inputs, generate the stored shares, and persist the bill
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill creation request"
// @Success      201 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	b, err := h.service.Create(r.Context(), creatorID, &req)
	if err != nil {
		if isValidationErr(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create bill")
		return
	}

	response.JSON(w, http.StatusCreated, b.ToResponse())
}

// GetByID handles GET /bills/{id}
// @Summary      Get bill by ID
// @Description  Get a bill with its initial payments, items, item splits, and parts
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get bill")
		return
	}

	response.JSON(w, http.StatusOK, b.ToResponse())
}

// Update handles PUT /bills/{id}
// @Summary      Update a bill
// @Description  Replace a bill with its full new state, re-running split validation
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body UpdateBillRequest true "Bill update request"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	var req UpdateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	b, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBillNotFound):
			response.NotFound(w, err.Error())
		case isValidationErr(err):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update bill")
		}
		return
	}

	response.JSON(w, http.StatusOK, b.ToResponse())
}

// Delete handles DELETE /bills/{id}
// @Summary      Delete a bill
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete bill")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Bill deleted"})
}

// ListByGroup handles GET /bills/group/{groupId}
// @Summary      List bills of a group
// @Description  Get a group's bills, newest first, bounded by limit
// @Tags         bills
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        limit query int false "Maximum bills to return" default(50)
// @Success      200 {object} response.APIResponse{data=[]BillResponse}
// @Router       /bills/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	bills, err := h.service.ListByGroup(r.Context(), groupID, limit)
	if err != nil {
		response.InternalError(w, "Failed to list bills")
		return
	}

	resp := make([]*BillResponse, len(bills))
	for i, b := range bills {
		resp[i] = b.ToResponse()
	}

	response.JSONWithMeta(w, http.StatusOK, resp, &response.Meta{Count: len(resp)})
}

// isValidationErr reports whether the error came from split validation
// or request checks rather than the persistence layer.
func isValidationErr(err error) bool {
	return errors.Is(err, ErrInvalidSplitMethod) ||
		errors.Is(err, ErrNotGroupMembers) ||
		errors.Is(err, split.ErrNoMembers) ||
		errors.Is(err, split.ErrNonPositiveTotal) ||
		errors.Is(err, split.ErrInitialPaymentsExceed) ||
		errors.Is(err, split.ErrItemsTotalMismatch) ||
		errors.Is(err, split.ErrPartsTotalMismatch) ||
		errors.Is(err, split.ErrPartsRequired) ||
		errors.Is(err, split.ErrPartsNotAllowed) ||
		errors.Is(err, split.ErrItemsRequired) ||
		errors.Is(err, split.ErrItemSplitsRequired) ||
		errors.Is(err, split.ErrItemSplitsNotAllowed) ||
		errors.Is(err, split.ErrSplitQuantityMismatch) ||
		errors.Is(err, split.ErrNegativePartAmount) ||
		errors.Is(err, split.ErrDuplicatePartUser)
}
