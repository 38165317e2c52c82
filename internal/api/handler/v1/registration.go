package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackboard/hackboard-api/internal/api/handler/v1/request"
	"github.com/hackboard/hackboard-api/internal/api/handler/v1/response"
	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/service"
)

type RegistrationService interface {
	ListRegistrations(ctx context.Context, eventID string) ([]domain.Registration, error)
	CreateRegistration(ctx context.Context, registration domain.Registration) (domain.Registration, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleListRegistrations godoc
// @Summary      List registrations
// @Description  Retrieves every registration for an event
// @Tags         registrations
// @Produce      json
// @Param        id   path      string  true  "event ID"
// @Success      200  {array}   domain.Registration
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{id}/registrations [get]
func (h *RegistrationHandler) HandleListRegistrations(ctx *gin.Context) {
	eventID := ctx.Param("id")

	registrations, err := h.svc.ListRegistrations(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleListRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleCreateRegistration godoc
// @Summary      Register for an event
// @Description  Records a participant registration for an event
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "event ID"
// @Param        request  body      request.CreateRegistrationRequest true  "registration"
// @Success      201      {object}  domain.Registration
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{id}/registrations [post]
func (h *RegistrationHandler) HandleCreateRegistration(ctx *gin.Context) {
	eventID := ctx.Param("id")

	req := request.CreateRegistrationRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration := domain.Registration{
		EventID:  eventID,
		Name:     req.Name,
		Email:    req.Email,
		TeamName: req.TeamName,
	}

	created, err := h.svc.CreateRegistration(ctx.Request.Context(), registration)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleCreateRegistration -> h.svc.CreateRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
