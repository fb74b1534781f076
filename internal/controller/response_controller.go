package controller

import (
	"errors"
	"path/filepath"

	"github.com/anand2468/easyeval/internal/model"
	"github.com/anand2468/easyeval/internal/service"
	"github.com/anand2468/easyeval/internal/util"
	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	Service *service.ResponseService
	Storage *service.StorageService
}

func NewResponseController(svc *service.ResponseService, storage *service.StorageService) *ResponseController {
	return &ResponseController{Service: svc, Storage: storage}
}

// @Summary Submit an answer sheet for an exam
// @Tags responses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Param body body service.CreateResponseRequest true "roll number and answers"
// @Success 201 {object} util.Response
// @Router /api/exams/{id}/responses [post]
func (c *ResponseController) Create(ctx *gin.Context) {
	examID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	var req service.CreateResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	response, err := c.Service.Create(examID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrDuplicateRollNo):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrEmptyAnswer):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, response)
}

// @Summary List an exam's responses
// @Tags responses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/responses [get]
func (c *ResponseController) ListByExam(ctx *gin.Context) {
	examID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	page, limit := pagination(ctx)
	responses, total, err := c.Service.ListByExam(examID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  responses,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Per-exam response statistics
// @Tags responses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "exam id"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/summary [get]
func (c *ResponseController) ExamSummary(ctx *gin.Context) {
	examID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid exam id")
		return
	}

	summary, err := c.Service.ExamSummary(ctx.Request.Context(), examID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// @Summary Get a response with its answers
// @Tags responses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "response id"
// @Success 200 {object} util.Response
// @Router /api/responses/{id} [get]
func (c *ResponseController) Get(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	response, err := c.Service.Get(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, response)
}

// @Summary Delete a response and its answers
// @Tags responses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "response id"
// @Success 200 {object} util.Response
// @Router /api/responses/{id} [delete]
func (c *ResponseController) Delete(ctx *gin.Context) {
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

// @Summary Upload an answer-sheet image
// @Description Stores the image and returns the URL to reference from an answer.
// @Tags responses
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image file"
// @Success 200 {object} util.Response
// @Router /api/uploads/answers [post]
func (c *ResponseController) UploadAnswerImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	objectName := "answers/" + model.GenerateObjectName(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.Storage.Upload(ctx.Request.Context(), objectName, file, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
