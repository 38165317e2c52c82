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

type ReviewService interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
	CreateReview(ctx context.Context, review domain.Review) (domain.Review, error)
}

type ReviewHandler struct {
	svc ReviewService
}

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
	}
}

// HandleListReviews godoc
// @Summary      List reviews
// @Description  Retrieves every recorded review
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   domain.Review
// @Failure      500  {object}  response.Err
// @Router       /reviews [get]
func (h *ReviewHandler) HandleListReviews(ctx *gin.Context) {
	reviews, err := h.svc.ListReviews(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListReviews -> h.svc.ListReviews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// HandleCreateReview godoc
// @Summary      Create a review
// @Description  Records a judge's score for a submission. The judge must be on the event's authorized list.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateReviewRequest  true  "review"
// @Success      201      {object}  domain.Review
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reviews [post]
func (h *ReviewHandler) HandleCreateReview(ctx *gin.Context) {
	req := request.CreateReviewRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	review := domain.Review{
		SubmissionID: req.SubmissionID,
		Score:        req.Score,
		Feedback:     req.Feedback,
		JudgeEmail:   req.JudgeEmail,
		JudgeName:    req.JudgeName,
	}

	created, err := h.svc.CreateReview(ctx.Request.Context(), review)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoreOutOfRange):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrSubmissionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("submission", "ID", req.SubmissionID))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "submissionID", req.SubmissionID))
		case errors.Is(err, service.ErrJudgeNotAuthorized):
			response.RenderErr(ctx, response.ErrUnauthorized("email is not an authorized judge for this event"))
		default:
			err = fmt.Errorf("HandleCreateReview -> h.svc.CreateReview -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
