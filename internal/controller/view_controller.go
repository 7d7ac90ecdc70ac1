package controller

import (
	"strconv"
	"strings"

	"lyn_studio_backend/internal/model"
	"lyn_studio_backend/internal/navigation"
	"lyn_studio_backend/internal/service"
	"lyn_studio_backend/internal/util"
	"lyn_studio_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// ViewController 解析当前导航状态并组装各页面的渲染数据
// 渲染数据一律经由服务层获取，不直接触碰持久化层
type ViewController struct {
	Machine   *navigation.Machine
	Problems  *service.ProblemService
	Resources *service.ResourceService
	Notebooks *service.NotebookService
	Calendar  *service.CalendarService
	Dashboard *service.DashboardService
}

func NewViewController(
	machine *navigation.Machine,
	problems *service.ProblemService,
	resources *service.ResourceService,
	notebooks *service.NotebookService,
	calendar *service.CalendarService,
	dashboard *service.DashboardService,
) *ViewController {
	return &ViewController{
		Machine:   machine,
		Problems:  problems,
		Resources: resources,
		Notebooks: notebooks,
		Calendar:  calendar,
		Dashboard: dashboard,
	}
}

// GetView 解析当前视图并返回页面渲染数据
// 题目列表的筛选条件通过查询参数传入：difficulty、tags（逗号分隔）
func (c *ViewController) GetView(ctx *gin.Context) {
	view, notice, err := c.Machine.Resolve()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	data, err := c.renderData(ctx, view)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	monitoring.ViewCounter.WithLabelValues(string(view.Page())).Inc()

	util.Success(ctx, gin.H{
		"view":   navigation.Encode(view),
		"notice": notice,
		"data":   data,
	})
}

// Navigate 整体替换当前视图，参数表只保留目标状态显式携带的键
func (c *ViewController) Navigate(ctx *gin.Context) {
	var params map[string]string
	if err := ctx.ShouldBindJSON(&params); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := navigation.Decode(params)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.Machine.Navigate(view)
	util.Success(ctx, navigation.Encode(view))
}

// Back 从详情页返回入口页面
func (c *ViewController) Back(ctx *gin.Context) {
	target := c.Machine.Back()
	util.Success(ctx, navigation.Encode(target))
}

// ActivateCalendarEvent 日历事件被点击：跳转到对应题目详情，来源记为日历
func (c *ViewController) ActivateCalendarEvent(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("problemId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid problem id")
		return
	}

	c.Machine.Navigate(navigation.ProblemDetail{
		ProblemID: uint(id),
		Source:    navigation.PageCalendar,
	})

	view, notice, err := c.Machine.Resolve()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"view":   navigation.Encode(view),
		"notice": notice,
	})
}

func (c *ViewController) renderData(ctx *gin.Context, view navigation.View) (interface{}, error) {
	switch v := view.(type) {
	case navigation.Dashboard:
		return c.Dashboard.Summary()

	case navigation.ProblemList:
		return c.renderProblemList(ctx)

	case navigation.ProblemDetail:
		problem, err := c.Problems.GetProblem(v.ProblemID)
		if err != nil {
			return nil, err
		}
		return gin.H{
			"problem":       problem,
			"pendingDelete": c.Machine.PendingDelete(navigation.KindProblem, v.ProblemID),
		}, nil

	case navigation.Calendar:
		events, err := c.Calendar.Events()
		if err != nil {
			return nil, err
		}
		return gin.H{"events": events}, nil

	case navigation.ResourceList:
		resources, err := c.Resources.ListResources()
		if err != nil {
			return nil, err
		}
		return gin.H{
			"resources":      resources,
			"pendingDeletes": c.pendingIDs(navigation.KindResource, resourceIDs(resources)),
		}, nil

	case navigation.NotebookList:
		notebooks, err := c.Notebooks.ListNotebooks()
		if err != nil {
			return nil, err
		}
		return gin.H{
			"notebooks":      notebooks,
			"pendingDeletes": c.pendingIDs(navigation.KindNotebook, notebookIDs(notebooks)),
		}, nil

	case navigation.NotebookDetail:
		return c.renderNotebookDetail(v)
	}
	return gin.H{}, nil
}

func (c *ViewController) renderProblemList(ctx *gin.Context) (interface{}, error) {
	filter := service.ProblemFilter{
		Difficulty: model.Difficulty(ctx.Query("difficulty")),
	}
	if raw := ctx.Query("tags"); raw != "" {
		filter.Tags = strings.Split(raw, ",")
	}

	problems, err := c.Problems.ListProblems(filter)
	if err != nil {
		return nil, err
	}
	tags, err := c.Problems.AvailableTags()
	if err != nil {
		return nil, err
	}

	return gin.H{
		"problems":       problems,
		"availableTags":  tags,
		"filter":         gin.H{"difficulty": filter.Difficulty, "tags": filter.Tags},
		"pendingDeletes": c.pendingIDs(navigation.KindProblem, problemIDs(problems)),
	}, nil
}

func (c *ViewController) renderNotebookDetail(v navigation.NotebookDetail) (interface{}, error) {
	notebook, err := c.Notebooks.GetNotebook(v.NotebookID)
	if err != nil {
		return nil, err
	}
	notes, err := c.Notebooks.ListNotes(v.NotebookID)
	if err != nil {
		return nil, err
	}

	index := make([]gin.H, 0, len(notes))
	noteIDs := make([]uint, 0, len(notes))
	for _, n := range notes {
		index = append(index, gin.H{"id": n.ID, "title": n.Title})
		noteIDs = append(noteIDs, n.ID)
	}

	// NoteID 为零表示笔记本没有任何笔记，渲染创建提示
	var activeNote *model.Note
	if v.NoteID != 0 {
		activeNote, err = c.Notebooks.GetNote(v.NoteID)
		if err != nil {
			return nil, err
		}
	}

	return gin.H{
		"notebook":       notebook,
		"noteIndex":      index,
		"activeNote":     activeNote,
		"pendingDeletes": c.pendingIDs(navigation.KindNote, noteIDs),
	}, nil
}

// pendingIDs 从候选ID中筛出处于待删除确认状态的那些
func (c *ViewController) pendingIDs(kind navigation.EntityKind, ids []uint) []uint {
	pending := make([]uint, 0)
	for _, id := range ids {
		if c.Machine.PendingDelete(kind, id) {
			pending = append(pending, id)
		}
	}
	return pending
}

func problemIDs(problems []model.Problem) []uint {
	ids := make([]uint, 0, len(problems))
	for _, p := range problems {
		ids = append(ids, p.ID)
	}
	return ids
}

func resourceIDs(resources []model.Resource) []uint {
	ids := make([]uint, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	return ids
}

func notebookIDs(notebooks []model.Notebook) []uint {
	ids := make([]uint, 0, len(notebooks))
	for _, n := range notebooks {
		ids = append(ids, n.ID)
	}
	return ids
}
