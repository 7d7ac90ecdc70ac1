package controller

import (
	"strconv"
	"strings"
	"time"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/navigation"
	"lyn_studio_backend/internal/service"
	"lyn_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProblemController 处理题目的增删改与打卡请求
type ProblemController struct {
	Service *service.ProblemService
	Machine *navigation.Machine
}

func NewProblemController(service *service.ProblemService, machine *navigation.Machine) *ProblemController {
	return &ProblemController{
		Service: service,
		Machine: machine,
	}
}

type problemRequest struct {
	Title        string   `json:"title" binding:"required"`
	Difficulty   string   `json:"difficulty" binding:"required"`
	Tags         []string `json:"tags"`
	TagsText     string   `json:"tagsText"`
	Link         string   `json:"link"`
	Description  string   `json:"description"`
	SolutionCode string   `json:"solutionCode"`
	Notes        string   `json:"notes"`
}

// 表单既可能直接传标签数组，也可能传逗号分隔的原始输入
func (r *problemRequest) tagList() model.TagList {
	if len(r.Tags) > 0 {
		return model.ParseTags(strings.Join(r.Tags, ","))
	}
	return model.ParseTags(r.TagsText)
}

// Create 新建题目
func (c *ProblemController) Create(ctx *gin.Context) {
	var req problemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	problem, err := c.Service.CreateProblem(
		req.Title,
		model.Difficulty(req.Difficulty),
		req.tagList(),
		req.Link,
		req.Description,
	)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, problem)
}

// Get 题目详情
func (c *ProblemController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	problem, err := c.Service.GetProblem(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, problem)
}

// Update 保存题目编辑，创建日期与打卡记录不受影响
func (c *ProblemController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req problemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.Service.UpdateProblem(
		id,
		req.Title,
		model.Difficulty(req.Difficulty),
		req.tagList(),
		req.Link,
		req.Description,
		req.SolutionCode,
		req.Notes,
	)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type checkInRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// CheckIn 打卡：为题目追加一条日志，默认记到当天
func (c *ProblemController) CheckIn(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req checkInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var logDate time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			util.BadRequest(ctx, "date must be YYYY-MM-DD")
			return
		}
		logDate = parsed
	}

	log, err := c.Service.CheckIn(id, logDate, req.Status)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, log)
}

// RequestDelete 进入删除确认状态，两步确认的第一步
func (c *ProblemController) RequestDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.Service.GetProblem(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	c.Machine.RequestDelete(navigation.KindProblem, id)
	util.Success(ctx, gin.H{"pendingDelete": true})
}

// CancelDelete 取消删除确认
func (c *ProblemController) CancelDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.Machine.CancelDelete(navigation.KindProblem, id)
	util.Success(ctx, gin.H{"pendingDelete": false})
}

// Delete 两步确认的第二步：级联删除题目与其全部打卡日志
func (c *ProblemController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if !c.Machine.ConfirmDelete(navigation.KindProblem, id) {
		respondServiceError(ctx, util.ErrConfirmRequired)
		return
	}
	if err := c.Service.DeleteProblem(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// parseID 解析路径中的数字ID参数
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}
