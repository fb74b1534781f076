package controller

import (
	"github.com/anand2468/easyeval/internal/service"
	"github.com/anand2468/easyeval/internal/util"
	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary Add a question to an exam
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Param body body service.QuestionRequest true "question details"
// @Success 201 {object} util.Response
// @Router /api/exams/{id}/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	examID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Create(examID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

// @Summary List an exam's questions in position order
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/questions [get]
func (c *QuestionController) ListByExam(ctx *gin.Context) {
	examID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	qs, err := c.Service.ListByExam(examID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, qs)
}

// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.QuestionRequest true "question details"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.Update(id, req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, q)
}

// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
