package controller

import (
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetQuizzes godoc
// @Summary 获取测验列表
// @Description 不包含题目
// @Tags 测验
// @Produce json
// @Success 200 {array} model.Quiz
// @Failure 500 {object} util.ErrorResponse
// @Router /api/quizzes [get]
func (c *QuizController) GetQuizzes(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListQuizzes(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// GetQuiz godoc
// @Summary 获取测验详情
// @Description 题目按 position 排序
// @Tags 测验
// @Produce json
// @Param quiz_id path int true "测验ID"
// @Success 200 {object} model.Quiz
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quiz/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := util.ParseUintParam(ctx, "quiz_id")
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	quiz, err := c.QuizService.GetQuiz(ctx.Request.Context(), quizID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// GetProgress godoc
// @Summary 答题进度
// @Tags 测验
// @Produce json
// @Param user_id path int true "用户ID"
// @Param quiz_id path int true "测验ID"
// @Success 200 {object} service.Progress
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/progress/{user_id}/{quiz_id} [get]
func (c *QuizController) GetProgress(ctx *gin.Context) {
	userID, quizID, ok := userQuizParams(ctx)
	if !ok {
		return
	}

	progress, err := c.QuizService.GetProgress(ctx.Request.Context(), userID, quizID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// GetResults godoc
// @Summary 测验结果
// @Description 选择第一个选项视为答对，未作答显示 (no answer)
// @Tags 测验
// @Produce json
// @Param user_id path int true "用户ID"
// @Param quiz_id path int true "测验ID"
// @Success 200 {object} service.QuizResults
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/quizzes/results/{user_id}/{quiz_id} [get]
func (c *QuizController) GetResults(ctx *gin.Context) {
	userID, quizID, ok := userQuizParams(ctx)
	if !ok {
		return
	}

	results, err := c.QuizService.GetResults(ctx.Request.Context(), userID, quizID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// userQuizParams 解析失败时已写入 400 响应
func userQuizParams(ctx *gin.Context) (uint, uint, bool) {
	userID, err := util.ParseUintParam(ctx, "user_id")
	if err != nil {
		util.RespondError(ctx, err)
		return 0, 0, false
	}
	quizID, err := util.ParseUintParam(ctx, "quiz_id")
	if err != nil {
		util.RespondError(ctx, err)
		return 0, 0, false
	}
	return userID, quizID, true
}
