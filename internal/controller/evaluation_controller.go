package controller

import (
	"net/http"

	"github.com/anand2468/easyeval/internal/service"
	"github.com/anand2468/easyeval/internal/util"
	"github.com/anand2468/easyeval/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

type EvaluationController struct {
	Service *service.EvaluationService
}

func NewEvaluationController(svc *service.EvaluationService) *EvaluationController {
	return &EvaluationController{Service: svc}
}

// @Summary Evaluate a response
// @Description Scores every answer of the response and writes the total back.
// Re-running overwrites the previous scores.
// @Tags evaluation
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "response id"
// @Success 200 {object} service.EvaluationResult
// @Failure 500 {object} map[string]string
// @Router /api/responses/{id}/evaluate [post]
func (c *EvaluationController) Evaluate(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	result, err := c.Service.Evaluate(ctx.Request.Context(), id)
	if err != nil {
		monitoring.EvaluationCounter.WithLabelValues("error").Inc()
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	monitoring.EvaluationCounter.WithLabelValues("success").Inc()
	monitoring.AnswersEvaluated.Add(float64(result.AnswersEvaluated))

	ctx.JSON(http.StatusOK, gin.H{
		"success":          true,
		"totalMarks":       result.TotalMarks,
		"answersEvaluated": result.AnswersEvaluated,
	})
}
