package invitation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sharedtab/billsplit/pkg/middleware"
	"github.com/sharedtab/billsplit/pkg/response"
)

// Handler handles HTTP requests for group invitations.
type Handler struct {
	service *Service
}

// NewHandler creates a new invitation handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for invitation endpoints.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/groups/{groupId}", h.Invite)
	r.Get("/pending", h.Pending)
	r.Put("/{id}", h.Respond)

	return r
}

// Invite handles POST /invitations/groups/{groupId}
// @Summary      Invite a user to a group
// @Description  Send an invitation for a user to join a group; re-sends a previously actioned one
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        groupId path int true "Group ID"
// @Param        request body CreateInvitationRequest true "User to invite"
// @Success      201 {object} response.APIResponse{data=InvitationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /invitations/groups/{groupId} [post]
func (h *Handler) Invite(w http.ResponseWriter, r *http.Request) {
	inviterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid group ID")
		return
	}

	var req CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	inv, err := h.service.Invite(r.Context(), groupID, inviterID, req.InviteeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotGroupMember):
			response.Forbidden(w, err.Error())
		case errors.Is(err, ErrInviteeNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrAlreadyMember), errors.Is(err, ErrInvitationPending):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to send invitation")
		}
		return
	}

	response.JSON(w, http.StatusCreated, inv.ToResponse())
}

// Pending handles GET /invitations/pending
// @Summary      List my pending invitations
// @Tags         invitations
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]InvitationResponse}
// @Router       /invitations/pending [get]
func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	invitations, err := h.service.PendingForUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list invitations")
		return
	}

	resp := make([]*InvitationResponse, len(invitations))
	for i, inv := range invitations {
		resp[i] = inv.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Respond handles PUT /invitations/{id}
// @Summary      Respond to an invitation
// @Description  Accept or decline a pending invitation; accepting joins the group
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        id path int true "Invitation ID"
// @Param        request body RespondInvitationRequest true "Response status"
// @Success      200 {object} response.APIResponse{data=InvitationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /invitations/{id} [put]
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid invitation ID")
		return
	}

	var req RespondInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	inv, err := h.service.Respond(r.Context(), id, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvitationNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrAlreadyResponded):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to respond to invitation")
		}
		return
	}

	response.JSON(w, http.StatusOK, inv.ToResponse())
}
