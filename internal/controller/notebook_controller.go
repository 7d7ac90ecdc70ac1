package controller

import (
	"errors"

	"lyn_studio_backend/internal/navigation"
	"lyn_studio_backend/internal/service"
	"lyn_studio_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// NotebookController 处理笔记本与笔记的增删改请求
type NotebookController struct {
	Service *service.NotebookService
	Machine *navigation.Machine
}

func NewNotebookController(service *service.NotebookService, machine *navigation.Machine) *NotebookController {
	return &NotebookController{
		Service: service,
		Machine: machine,
	}
}

type notebookRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateNotebook 新建笔记本，名称重复时回显提交的名称供修正
func (c *NotebookController) CreateNotebook(ctx *gin.Context) {
	var req notebookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	notebook, err := c.Service.CreateNotebook(req.Name)
	if errors.Is(err, util.ErrNotebookNameTaken) {
		util.Conflict(ctx, err.Error(), gin.H{"name": req.Name})
		return
	}
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, notebook)
}

// ListNotebooks 全部笔记本
func (c *NotebookController) ListNotebooks(ctx *gin.Context) {
	notebooks, err := c.Service.ListNotebooks()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, notebooks)
}

// RequestDeleteNotebook 笔记本进入删除确认状态
func (c *NotebookController) RequestDeleteNotebook(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.Service.GetNotebook(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	c.Machine.RequestDelete(navigation.KindNotebook, id)
	util.Success(ctx, gin.H{"pendingDelete": true})
}

// CancelDeleteNotebook 取消删除确认
func (c *NotebookController) CancelDeleteNotebook(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.Machine.CancelDelete(navigation.KindNotebook, id)
	util.Success(ctx, gin.H{"pendingDelete": false})
}

// DeleteNotebook 确认后删除笔记本，笔记级联删除
// 正在查看被删除的笔记本时纠正回笔记本列表
func (c *NotebookController) DeleteNotebook(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if !c.Machine.ConfirmDelete(navigation.KindNotebook, id) {
		respondServiceError(ctx, util.ErrConfirmRequired)
		return
	}
	if err := c.Service.DeleteNotebook(id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	if current, isDetail := c.Machine.Current().(navigation.NotebookDetail); isDetail && current.NotebookID == id {
		c.Machine.Navigate(navigation.NotebookList{})
	}
	util.Success(ctx, nil)
}

type noteCreateRequest struct {
	Title string `json:"title"`
}

// CreateNote 在笔记本下新建笔记并跳转到这篇新笔记
func (c *NotebookController) CreateNote(ctx *gin.Context) {
	notebookID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req noteCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.Service.CreateNote(notebookID, req.Title)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	c.Machine.Navigate(navigation.NotebookDetail{
		NotebookID: notebookID,
		NoteID:     note.ID,
	})
	util.Created(ctx, note)
}

type noteUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNote 就地保存笔记标题与内容
func (c *NotebookController) UpdateNote(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req noteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.UpdateNote(id, req.Title, req.Content); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// RequestDeleteNote 笔记进入删除确认状态，与其余实体保持一致的两步删除
func (c *NotebookController) RequestDeleteNote(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if _, err := c.Service.GetNote(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	c.Machine.RequestDelete(navigation.KindNote, id)
	util.Success(ctx, gin.H{"pendingDelete": true})
}

// CancelDeleteNote 取消删除确认
func (c *NotebookController) CancelDeleteNote(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	c.Machine.CancelDelete(navigation.KindNote, id)
	util.Success(ctx, gin.H{"pendingDelete": false})
}

// DeleteNote 确认后删除笔记
// 删除的是当前打开的笔记时跳到同笔记本最近更新的一篇，删空则回到创建提示
func (c *NotebookController) DeleteNote(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if !c.Machine.ConfirmDelete(navigation.KindNote, id) {
		respondServiceError(ctx, util.ErrConfirmRequired)
		return
	}

	next, err := c.Service.DeleteNote(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	if current, isDetail := c.Machine.Current().(navigation.NotebookDetail); isDetail && current.NoteID == id {
		target := navigation.NotebookDetail{NotebookID: current.NotebookID}
		if next != nil {
			target.NoteID = next.ID
		}
		c.Machine.Navigate(target)
	}
	util.Success(ctx, gin.H{"nextNote": next})
}
