package controller

import (
	"errors"
	"net/http"

	"lyn_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError 把服务层错误映射成统一响应
// 未识别的错误按通用失败处理：记录日志、终止本轮渲染周期
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProblemNotFound),
		errors.Is(err, util.ErrResourceNotFound),
		errors.Is(err, util.ErrNotebookNotFound),
		errors.Is(err, util.ErrNoteNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrTitleRequired),
		errors.Is(err, util.ErrNameRequired),
		errors.Is(err, util.ErrInvalidDifficulty),
		errors.Is(err, util.ErrInvalidCategory):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrConfirmRequired):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
