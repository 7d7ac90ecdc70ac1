package navigation

import (
	"sync"
)

// Lookup 状态解析所需的最小数据访问接口，由服务层实现
type Lookup interface {
	ProblemExists(id uint) (bool, error)
	NotebookExists(id uint) (bool, error)
	// NoteInNotebook 判断笔记是否存在且属于该笔记本
	NoteInNotebook(notebookID, noteID uint) (bool, error)
	// DefaultNoteID 返回笔记本的默认展开笔记（最近更新，平局取ID大者）
	// 笔记本为空时 ok 为 false
	DefaultNoteID(notebookID uint) (id uint, ok bool, err error)
}

// EntityKind 待删除确认状态的实体类别
type EntityKind string

const (
	KindProblem  EntityKind = "problem"
	KindResource EntityKind = "resource"
	KindNotebook EntityKind = "notebook"
	KindNote     EntityKind = "note"
)

type pendingKey struct {
	kind EntityKind
	id   uint
}

// Machine 导航状态机。单用户会话持有一个实例，随进程存续。
// 每次跳转整体替换当前视图；待删除确认状态按实体逐项记录，
// 跳转到别的页面时一并清空。
type Machine struct {
	mu      sync.Mutex
	current View
	pending map[pendingKey]bool
	lookup  Lookup
}

func NewMachine(lookup Lookup) *Machine {
	return &Machine{
		current: Dashboard{},
		pending: make(map[pendingKey]bool),
		lookup:  lookup,
	}
}

// Current 当前视图
func (m *Machine) Current() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Navigate 跳转到目标视图，旧视图的参数全部丢弃
func (m *Machine) Navigate(v View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current.Page() != v.Page() {
		m.pending = make(map[pendingKey]bool)
	}
	m.current = v
}

// Back 从详情页返回入口页面
// ProblemDetail 按记住的 Source 返回，NotebookDetail 返回笔记本列表，
// 其余页面回到仪表盘
func (m *Machine) Back() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	var target View
	switch view := m.current.(type) {
	case ProblemDetail:
		if view.Source == PageCalendar {
			target = Calendar{}
		} else {
			target = ProblemList{}
		}
	case NotebookDetail:
		target = NotebookList{}
	default:
		target = Dashboard{}
	}

	m.pending = make(map[pendingKey]bool)
	m.current = target
	return target
}

// Notice 解析过程中产生的纠正信息，例如目标实体不存在
type Notice struct {
	Message string `json:"message"`
}

// Resolve 解析当前视图供渲染使用：
//   - 详情页的ID查不到实体时纠正跳转回对应列表页并附带提示
//   - NotebookDetail 未指定笔记时自动补选默认笔记，
//     指定的笔记失效时同样回退到默认笔记
//
// 返回解析后的视图，该视图同时成为新的当前状态
func (m *Machine) Resolve() (View, *Notice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resolved, notice, err := m.resolveLocked(m.current)
	if err != nil {
		return nil, nil, err
	}
	m.current = resolved
	return resolved, notice, nil
}

func (m *Machine) resolveLocked(v View) (View, *Notice, error) {
	switch view := v.(type) {
	case ProblemDetail:
		exists, err := m.lookup.ProblemExists(view.ProblemID)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			return ProblemList{}, &Notice{Message: "problem not found"}, nil
		}
		return view, nil, nil

	case NotebookDetail:
		exists, err := m.lookup.NotebookExists(view.NotebookID)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			return NotebookList{}, &Notice{Message: "notebook not found"}, nil
		}

		// 显式指定的笔记必须存在且属于该笔记本，
		// 失效的ID（已删除或属于别的笔记本）回退到默认笔记
		var notice *Notice
		if view.NoteID != 0 {
			ok, err := m.lookup.NoteInNotebook(view.NotebookID, view.NoteID)
			if err != nil {
				return nil, nil, err
			}
			if !ok {
				view.NoteID = 0
				notice = &Notice{Message: "note not found"}
			}
		}
		if view.NoteID == 0 {
			noteID, ok, err := m.lookup.DefaultNoteID(view.NotebookID)
			if err != nil {
				return nil, nil, err
			}
			if ok {
				view.NoteID = noteID
			}
			// 空笔记本保持 NoteID 为零，渲染创建提示
		}
		return view, notice, nil
	}
	return v, nil, nil
}

// RequestDelete 标记某实体进入待删除确认状态
func (m *Machine) RequestDelete(kind EntityKind, id uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[pendingKey{kind: kind, id: id}] = true
}

// CancelDelete 取消待删除确认状态
func (m *Machine) CancelDelete(kind EntityKind, id uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, pendingKey{kind: kind, id: id})
}

// ConfirmDelete 消费待删除确认状态，之前未请求过则返回 false
func (m *Machine) ConfirmDelete(kind EntityKind, id uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pendingKey{kind: kind, id: id}
	if !m.pending[key] {
		return false
	}
	delete(m.pending, key)
	return true
}

// PendingDelete 查询某实体是否处于待删除确认状态
func (m *Machine) PendingDelete(kind EntityKind, id uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending[pendingKey{kind: kind, id: id}]
}
