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

type SubmissionService interface {
	ListSubmissions(ctx context.Context, eventID string) ([]domain.Submission, error)
	CreateSubmission(ctx context.Context, submission domain.Submission) (domain.Submission, error)
}

type SubmissionHandler struct {
	svc SubmissionService
}

func NewSubmissionHandler(svc SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		svc: svc,
	}
}

// HandleListSubmissions godoc
// @Summary      List submissions
// @Description  Retrieves submissions, optionally filtered by event
// @Tags         submissions
// @Produce      json
// @Param        eventId  query     string  false  "event ID filter"
// @Success      200      {array}   domain.Submission
// @Failure      500      {object}  response.Err
// @Router       /submissions [get]
func (h *SubmissionHandler) HandleListSubmissions(ctx *gin.Context) {
	eventID := ctx.Query("eventId")

	submissions, err := h.svc.ListSubmissions(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("HandleListSubmissions -> h.svc.ListSubmissions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, submissions)
}

// HandleCreateSubmission godoc
// @Summary      Create a submission
// @Description  Records a team's project entry for an event
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSubmissionRequest  true  "submission"
// @Success      201      {object}  domain.Submission
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /submissions [post]
func (h *SubmissionHandler) HandleCreateSubmission(ctx *gin.Context) {
	req := request.CreateSubmissionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	submission := domain.Submission{
		EventID:        req.EventID,
		TeamName:       req.TeamName,
		SubmitterEmail: req.SubmitterEmail,
		Title:          req.Title,
		Link:           req.Link,
		FileRefs:       req.FileRefs,
	}

	created, err := h.svc.CreateSubmission(ctx.Request.Context(), submission)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
			return
		}

		err = fmt.Errorf("HandleCreateSubmission -> h.svc.CreateSubmission -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
