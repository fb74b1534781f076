package controller

import (
	"strconv"

	"github.com/anand2468/easyeval/internal/service"
	"github.com/anand2468/easyeval/internal/util"
	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ExamRequest true "exam details"
// @Success 201 {object} util.Response
// @Router /api/exams [post]
func (c *ExamController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.Create(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, exam)
}

// @Summary List own exams
// @Tags exams
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response
// @Router /api/exams [get]
func (c *ExamController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, limit := pagination(ctx)
	exams, total, err := c.Service.ListByOwner(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  exams,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get an exam with its questions
// @Tags exams
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [get]
func (c *ExamController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	exam, err := c.Service.Get(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, exam)
}

// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Param body body service.ExamRequest true "exam details"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.Update(id, req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, exam)
}

// @Summary Delete an exam and everything under it
// @Tags exams
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
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

func pathID(ctx *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	return uint(id), err
}

func pagination(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
