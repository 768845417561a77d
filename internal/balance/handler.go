package balance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sharedtab/billsplit/pkg/middleware"
	"github.com/sharedtab/billsplit/pkg/response"
)

// Handler handles HTTP requests for balance and settlement queries.
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the balance endpoints to the group router. The
// paths are registered as explicit "/{id}/..." subpatterns so they
// coexist with the method handlers already on "/{id}".
func (h *Handler) Register(r chi.Router) {
	r.Get("/{id}/balances", h.GroupBalances)
	r.Get("/{id}/balances/members", h.BalancesWithMembers)
	r.Get("/{id}/balances/with/{userId}", h.BalanceWith)
	r.Get("/{id}/settlements", h.Settlements)
}

// GroupBalances handles GET /groups/{id}/balances
// @Summary      Get group balances
// @Description  Get the net balance of every current member of the group
// @Tags         balances
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=GroupBalanceSummary}
// @Failure      400 {object} response.APIResponse
// @Router       /groups/{id}/balances [get]
func (h *Handler) GroupBalances(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	summary, err := h.service.GroupBalances(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// Settlements handles GET /groups/{id}/settlements
// @Summary      Get settlement suggestions
// @Description  Get the minimal set of payments that would settle all group balances
// @Tags         balances
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=SettlementSummary}
// @Failure      400 {object} response.APIResponse
// @Router       /groups/{id}/settlements [get]
func (h *Handler) Settlements(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	summary, err := h.service.GroupSettlements(r.Context(), groupID)
	if err != nil {
		response.InternalError(w, "Failed to compute settlements")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// BalanceWith handles GET /groups/{id}/balances/with/{userId}
// @Summary      Get balance with another member
// @Description  Get the net amount the current user owes another member, in whole currency units
// @Tags         balances
// @Produce      json
// @Param        id path int true "Group ID"
// @Param        userId path int true "Other user ID"
// @Success      200 {object} response.APIResponse{data=BilateralBalance}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /groups/{id}/balances/with/{userId} [get]
func (h *Handler) BalanceWith(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	groupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	otherID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	amount, err := h.service.BalanceBetween(r.Context(), groupID, userID, otherID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfBalance):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrNotGroupMember):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "Failed to compute balance")
		}
		return
	}

	response.JSON(w, http.StatusOK, BilateralBalance{
		UserID:  userID,
		OtherID: otherID,
		Balance: amount.StringFixed(0),
	})
}

// BalancesWithMembers handles GET /groups/{id}/balances/members
// @Summary      Get balances with all members
// @Description  Get the current user's bilateral balance with every other group member
// @Tags         balances
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200 {object} response.APIResponse{data=[]MemberBalanceView}
// @Failure      403 {object} response.APIResponse
// @Router       /groups/{id}/balances/members [get]
func (h *Handler) BalancesWithMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	groupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	views, err := h.service.BalancesWithMembers(r.Context(), groupID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotGroupMember):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "Failed to compute balances")
		}
		return
	}

	if views == nil {
		views = []MemberBalanceView{}
	}
	response.JSON(w, http.StatusOK, views)
}
