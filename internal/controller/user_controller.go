package controller

import (
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 处理用户相关的HTTP请求
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CompleteQuizResponse 标记完成后的完成集合
// swagger:model CompleteQuizResponse
type CompleteQuizResponse struct {
	Status           string `json:"status"`
	CompletedQuizIDs []uint `json:"completed_quiz_ids"`
}

// GetUsers godoc
// @Summary 获取用户列表
// @Tags 用户
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} util.ErrorResponse
// @Router /api/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// GetUser godoc
// @Summary 获取用户
// @Tags 用户
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} model.User
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /api/user/{user_id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	userID, err := util.ParseUintParam(ctx, "user_id")
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	user, err := c.UserService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// CompleteQuiz godoc
// @Summary 标记测验完成
// @Description 幂等：重复标记不会产生重复记录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body service.CompleteQuizInput true "用户与测验"
// @Success 200 {object} CompleteQuizResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/user/complete-quiz [post]
func (c *UserController) CompleteQuiz(ctx *gin.Context) {
	var req service.CompleteQuizInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	completed, err := c.UserService.MarkQuizComplete(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, CompleteQuizResponse{Status: "ok", CompletedQuizIDs: completed})
}
