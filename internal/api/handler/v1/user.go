package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hackboard/hackboard-api/internal/api/handler/v1/response"
	"github.com/hackboard/hackboard-api/internal/domain"
)

type UserService interface {
	ListJudges(ctx context.Context) ([]domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListJudges godoc
// @Summary      List judges
// @Description  Retrieves every registered user with the judge role
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.JudgesResponse
// @Failure      500  {object}  response.Err
// @Router       /judges [get]
func (h *UserHandler) HandleListJudges(ctx *gin.Context) {
	judges, err := h.svc.ListJudges(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListJudges -> h.svc.ListJudges -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.JudgesResponse{Judges: judges})
}
