package controller

import (
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

// GetAnswers godoc
// @Summary 获取用户在测验中的全部答案
// @Tags 答题
// @Produce json
// @Param user_id path int true "用户ID"
// @Param quiz_id path int true "测验ID"
// @Success 200 {array} model.Answer
// @Failure 400 {object} util.ErrorResponse
// @Router /api/quizzes/answers/{user_id}/{quiz_id} [get]
func (c *AnswerController) GetAnswers(ctx *gin.Context) {
	userID, quizID, ok := userQuizParams(ctx)
	if !ok {
		return
	}

	answers, err := c.AnswerService.ListAnswers(ctx.Request.Context(), userID, quizID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

// GetActiveAnswer godoc
// @Summary 获取当前激活的答案
// @Tags 答题
// @Produce json
// @Param user_id path int true "用户ID"
// @Param quiz_id path int true "测验ID"
// @Success 200 {object} model.Answer
// @Failure 404 {object} util.ErrorResponse "尚未开始答题"
// @Router /api/quizzes/active-answer/{user_id}/{quiz_id} [get]
func (c *AnswerController) GetActiveAnswer(ctx *gin.Context) {
	userID, quizID, ok := userQuizParams(ctx)
	if !ok {
		return
	}

	answer, err := c.AnswerService.GetActiveAnswer(ctx.Request.Context(), userID, quizID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// SubmitAnswer godoc
// @Summary 提交答案并激活题目
// @Description 停用同一测验中的其它答案，upsert 目标答案；未提供的字段保留原值
// @Tags 答题
// @Accept json
// @Produce json
// @Param request body service.SubmitAnswerInput true "答案"
// @Success 200 {object} model.Answer
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/quizzes/submit-answer [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	var req service.SubmitAnswerInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.AnswerService.SubmitAnswer(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}
