package controllers

import (
	"log/slog"
	"net/http"

	"clubevents/internal/delivery/http/helpers"
	"clubevents/internal/domain"
)

type MemberController struct {
	Logger  *slog.Logger
	Service domain.MemberService
}

func NewMemberController(logger *slog.Logger, svc domain.MemberService) *MemberController {
	return &MemberController{
		Logger:  logger,
		Service: svc,
	}
}

// ListMembersSuccessResponse is the success response envelope for GET /api/members (200).
type ListMembersSuccessResponse struct {
	Data  []*domain.Member  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MemberSuccessResponse is the success response envelope for GET /api/members/{memberID} (200).
type MemberSuccessResponse struct {
	Data  *domain.Member    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListMembers godoc
// @Summary List members
// @Description Returns every member ordered by id.
// @Tags members
// @Produce json
// @Success 200 {object} controllers.ListMembersSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/members [get]
func (c *MemberController) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.Service.ListMembers(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if members == nil {
		members = []*domain.Member{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, members)
}

// GetMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param memberID path int true "Member ID"
// @Success 200 {object} controllers.MemberSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/members/{memberID} [get]
func (c *MemberController) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := helpers.PathID(r, "memberID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	member, err := c.Service.GetMember(r.Context(), memberID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, member)
}

// ListMemberEvents godoc
// @Summary List the events a member is attending
// @Description Returns the events the member has an RSVP for, ordered by date.
// @Tags members
// @Produce json
// @Param memberID path int true "Member ID"
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/members/{memberID}/events [get]
func (c *MemberController) ListMemberEvents(w http.ResponseWriter, r *http.Request) {
	memberID, err := helpers.PathID(r, "memberID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	events, err := c.Service.ListMemberEvents(r.Context(), memberID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
