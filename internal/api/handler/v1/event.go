package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackboard/hackboard-api/internal/api/handler/v1/request"
	"github.com/hackboard/hackboard-api/internal/api/handler/v1/response"
	"github.com/hackboard/hackboard-api/internal/api/middleware"
	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/service"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, idOrCode string) (domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, id string, fields map[string]any) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) (domain.Event, error)
	AddAnnouncement(ctx context.Context, eventID, text, author string) (domain.Announcement, error)
	RemoveAnnouncement(ctx context.Context, eventID, announcementID string) error
	ValidateJudge(ctx context.Context, idOrCode, email string) error
	GetLeaderboard(ctx context.Context, idOrCode string) (domain.Leaderboard, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List all events
// @Description  Retrieves every event, newest first
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Creates an event and assigns it a unique shareable code
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "event to create"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	req := request.CreateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event := domain.Event{
		Code:                 req.EventCode,
		Title:                req.Title,
		Description:          req.Description,
		Type:                 domain.EventType(req.Type),
		CreatorName:          req.CreatorName,
		CreatorEmail:         req.CreatorEmail,
		StartsAt:             req.StartsAt,
		EndsAt:               req.EndsAt,
		RegistrationDeadline: req.RegistrationDeadline,
		Mode:                 domain.EventMode(req.Mode),
		Venue:                req.Venue,
		TeamSizeMin:          req.TeamSizeMin,
		TeamSizeMax:          req.TeamSizeMax,
		MaxParticipants:      req.MaxParticipants,
		Themes:               req.Themes,
		Tracks:               req.Tracks,
		SubmissionGuidelines: req.SubmissionGuidelines,
		EvaluationCriteria:   req.EvaluationCriteria,
		PrizeDetails:         req.PrizeDetails,
		AuthorizedJudges:     req.AuthorizedJudges,
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrEventCodeExists) {
			ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "event code is already taken"})
			return
		}

		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Description  Retrieves one event by its ID or shareable code
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "event ID or code"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	idOrCode := ctx.Param("id")

	event, err := h.svc.GetEvent(ctx.Request.Context(), idOrCode)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", idOrCode))
			return
		}

		err = fmt.Errorf("HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Merges the provided fields into the stored event; absent fields are untouched
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "event ID"
// @Param        request  body      request.UpdateEventRequest  true  "fields to update"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  map[string]string
// @Failure      500      {object}  response.Err
// @Router       /events/{id} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id := ctx.Param("id")

	req := request.UpdateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), id, req.Fields())
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}
		if errors.Is(err, service.ErrEventCodeExists) {
			ctx.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "event code is already taken"})
			return
		}

		err = fmt.Errorf("HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Removes an event and returns the removed record
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "event ID"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id := ctx.Param("id")

	removed, err := h.svc.DeleteEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, removed)
}

// HandleValidateJudge godoc
// @Summary      Validate a judge
// @Description  Checks whether an email is on the event's authorized judge list
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "event ID or code"
// @Param        request  body      request.ValidateJudgeRequest true  "judge email"
// @Success      200      {object}  response.ValidateJudgeResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{id}/validate-judge [post]
func (h *EventHandler) HandleValidateJudge(ctx *gin.Context) {
	idOrCode := ctx.Param("id")

	req := request.ValidateJudgeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.ValidateJudge(ctx.Request.Context(), idOrCode, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", idOrCode))
		case errors.Is(err, service.ErrJudgeNotAuthorized):
			response.RenderErr(ctx, response.ErrUnauthorized("email is not an authorized judge for this event"))
		default:
			err = fmt.Errorf("HandleValidateJudge -> h.svc.ValidateJudge -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.ValidateJudgeResponse{OK: true})
}

// HandleGetLeaderboard godoc
// @Summary      Get the leaderboard
// @Description  Computes the ranked standings for an event's submissions
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "event ID or code"
// @Success      200  {object}  domain.Leaderboard
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id}/leaderboard [get]
func (h *EventHandler) HandleGetLeaderboard(ctx *gin.Context) {
	idOrCode := ctx.Param("id")

	leaderboard, err := h.svc.GetLeaderboard(ctx.Request.Context(), idOrCode)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", idOrCode))
			return
		}

		err = fmt.Errorf("HandleGetLeaderboard -> h.svc.GetLeaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, leaderboard)
}

// HandleCreateAnnouncement godoc
// @Summary      Post an announcement
// @Description  Appends an announcement to an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "event ID"
// @Param        request  body      request.CreateAnnouncementRequest true  "announcement"
// @Success      201      {object}  domain.Announcement
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{id}/announcements [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateAnnouncement(ctx *gin.Context) {
	id := ctx.Param("id")

	req := request.CreateAnnouncementRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	author := req.Author
	if author == "" {
		// Fall back to the authenticated user's email.
		author = ctx.GetString(middleware.ContextKeyEmail)
	}

	announcement, err := h.svc.AddAnnouncement(ctx.Request.Context(), id, req.Text, author)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("HandleCreateAnnouncement -> h.svc.AddAnnouncement -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// HandleDeleteAnnouncement godoc
// @Summary      Delete an announcement
// @Description  Removes one announcement from an event
// @Tags         events
// @Produce      json
// @Param        id              path  string  true  "event ID"
// @Param        announcementID  path  string  true  "announcement ID"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id}/announcements/{announcementID} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteAnnouncement(ctx *gin.Context) {
	id := ctx.Param("id")
	announcementID := ctx.Param("announcementID")

	err := h.svc.RemoveAnnouncement(ctx.Request.Context(), id, announcementID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
		case errors.Is(err, service.ErrAnnouncementNotFound):
			response.RenderErr(ctx, response.ErrNotFound("announcement", "ID", announcementID))
		default:
			err = fmt.Errorf("HandleDeleteAnnouncement -> h.svc.RemoveAnnouncement -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
