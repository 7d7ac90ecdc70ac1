// Package navigation 管理当前视图状态：
// 应用的全部界面状态由一个强类型的 View 值表示，
// 页面跳转是对该值的整体替换，没有历史栈。
package navigation

// Page 视图标识
type Page string

const (
	PageDashboard      Page = "dashboard"
	PageProblems       Page = "problems"
	PageProblemDetail  Page = "problem_detail"
	PageCalendar       Page = "calendar"
	PageResources      Page = "resources"
	PageNotebooks      Page = "notebook"
	PageNotebookDetail Page = "notebook_detail"
)

// View 某一时刻的完整界面状态，具体类型携带各自的强类型参数
type View interface {
	Page() Page
}

type Dashboard struct{}

func (Dashboard) Page() Page { return PageDashboard }

type ProblemList struct{}

func (ProblemList) Page() Page { return PageProblems }

// ProblemDetail 题目详情页
// Source 记录入口页面（problems 或 calendar），返回键据此还原；
// 同一会话内再次进入时后写的 Source 覆盖先写的
type ProblemDetail struct {
	ProblemID uint
	Source    Page
}

func (ProblemDetail) Page() Page { return PageProblemDetail }

type Calendar struct{}

func (Calendar) Page() Page { return PageCalendar }

type ResourceList struct{}

func (ResourceList) Page() Page { return PageResources }

type NotebookList struct{}

func (NotebookList) Page() Page { return PageNotebooks }

// NotebookDetail 笔记本详情页
// NoteID 为零表示未指定展开哪篇笔记，解析时按最近更新自动补齐
type NotebookDetail struct {
	NotebookID uint
	NoteID     uint
}

func (NotebookDetail) Page() Page { return PageNotebookDetail }
