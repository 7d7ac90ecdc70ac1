package controller

import (
	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/navigation"
	"lyn_studio_backend/internal/service"
	"lyn_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ResourceController 处理收藏资源的增删请求
type ResourceController struct {
	Service *service.ResourceService
	Machine *navigation.Machine
}

func NewResourceController(service *service.ResourceService, machine *navigation.Machine) *ResourceController {
	return &ResourceController{
		Service: service,
		Machine: machine,
	}
}

type resourceRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
}

// Create 新建资源
func (c *ResourceController) Create(ctx *gin.Context) {
	var req resourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.Service.CreateResource(
		req.Title,
		model.ResourceCategory(req.Category),
		req.URL,
		req.ImageURL,
	)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, resource)
}

// List 全部资源
func (c *ResourceController) List(ctx *gin.Context) {
	resources, err := c.Service.ListResources()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// RequestDelete 进入删除确认状态
func (c *ResourceController) RequestDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.Service.GetResource(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	c.Machine.RequestDelete(navigation.KindResource, id)
	util.Success(ctx, gin.H{"pendingDelete": true})
}

// CancelDelete 取消删除确认
func (c *ResourceController) CancelDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.Machine.CancelDelete(navigation.KindResource, id)
	util.Success(ctx, gin.H{"pendingDelete": false})
}

// Delete 确认后删除资源
func (c *ResourceController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if !c.Machine.ConfirmDelete(navigation.KindResource, id) {
		respondServiceError(ctx, util.ErrConfirmRequired)
		return
	}
	if err := c.Service.DeleteResource(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
