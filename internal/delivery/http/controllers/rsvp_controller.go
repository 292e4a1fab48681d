package controllers

import (
	"log/slog"
	"net/http"

	"clubevents/internal/delivery/http/helpers"
	"clubevents/internal/domain"
)

// Cancel outcomes reported in CancelRSVPResponse.Status.
const (
	CancelStatusCancelled    = "cancelled"
	CancelStatusNotAttending = "not_attending"
)

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// ConfirmRSVPRequest is the request body for POST /api/events/{eventID}/rsvps.
type ConfirmRSVPRequest struct {
	MemberID int64 `json:"member_id"`
}

// Validate implements helpers.Validator.
func (req *ConfirmRSVPRequest) Validate() []string {
	if req.MemberID <= 0 {
		return []string{"member_id must be a positive integer"}
	}
	return nil
}

// ConfirmRSVPSuccessResponse is the success response envelope for POST /api/events/{eventID}/rsvps (200 or 201).
type ConfirmRSVPSuccessResponse struct {
	Data  *domain.RSVP      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CancelRSVPResponse is the response body for DELETE /api/events/{eventID}/rsvps/{memberID}.
type CancelRSVPResponse struct {
	Status string `json:"status"`
}

// CancelRSVPSuccessResponse is the success response envelope for DELETE /api/events/{eventID}/rsvps/{memberID} (200).
type CancelRSVPSuccessResponse struct {
	Data  CancelRSVPResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Confirm godoc
// @Summary Confirm a member's attendance
// @Description Records that the member attends the event. Idempotent: returns 201 when a new RSVP is created, 200 with the existing RSVP when the member was already attending.
// @Tags rsvps
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body controllers.ConfirmRSVPRequest true "Member to confirm"
// @Success 200 {object} controllers.ConfirmRSVPSuccessResponse "Already attending"
// @Success 201 {object} controllers.ConfirmRSVPSuccessResponse "RSVP created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/rsvps [post]
func (c *RSVPController) Confirm(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var req ConfirmRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	rsvp, created, err := c.Service.Confirm(r.Context(), eventID, req.MemberID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if created {
		helpers.WriteJSONSuccess(w, http.StatusCreated, rsvp)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rsvp)
}

// Cancel godoc
// @Summary Cancel a member's attendance
// @Description Removes the member's RSVP. Cancelling when the member is not attending succeeds with status not_attending.
// @Tags rsvps
// @Produce json
// @Param eventID path int true "Event ID"
// @Param memberID path int true "Member ID"
// @Success 200 {object} controllers.CancelRSVPSuccessResponse "data.status is cancelled or not_attending"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{eventID}/rsvps/{memberID} [delete]
func (c *RSVPController) Cancel(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.PathID(r, "eventID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	memberID, err := helpers.PathID(r, "memberID")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	removed, err := c.Service.Cancel(r.Context(), eventID, memberID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	status := CancelStatusNotAttending
	if removed {
		status = CancelStatusCancelled
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CancelRSVPResponse{Status: status})
}
