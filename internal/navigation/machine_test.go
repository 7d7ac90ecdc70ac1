package navigation

import (
	"testing"
)

// fakeLookup 用函数字段模拟数据查询，便于逐用例定制
type fakeLookup struct {
	problemExists  func(id uint) (bool, error)
	notebookExists func(id uint) (bool, error)
	noteInNotebook func(notebookID, noteID uint) (bool, error)
	defaultNoteID  func(notebookID uint) (uint, bool, error)
}

func (f *fakeLookup) ProblemExists(id uint) (bool, error) {
	if f.problemExists == nil {
		return true, nil
	}
	return f.problemExists(id)
}

func (f *fakeLookup) NotebookExists(id uint) (bool, error) {
	if f.notebookExists == nil {
		return true, nil
	}
	return f.notebookExists(id)
}

func (f *fakeLookup) NoteInNotebook(notebookID, noteID uint) (bool, error) {
	if f.noteInNotebook == nil {
		return true, nil
	}
	return f.noteInNotebook(notebookID, noteID)
}

func (f *fakeLookup) DefaultNoteID(notebookID uint) (uint, bool, error) {
	if f.defaultNoteID == nil {
		return 0, false, nil
	}
	return f.defaultNoteID(notebookID)
}

func TestMachineStartsAtDashboard(t *testing.T) {
	m := NewMachine(&fakeLookup{})
	if _, ok := m.Current().(Dashboard); !ok {
		t.Fatalf("want Dashboard, got %T", m.Current())
	}
}

func TestResolveRedirectsMissingProblem(t *testing.T) {
	m := NewMachine(&fakeLookup{
		problemExists: func(id uint) (bool, error) { return false, nil },
	})
	m.Navigate(ProblemDetail{ProblemID: 999, Source: PageProblems})

	v, notice, err := m.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, ok := v.(ProblemList); !ok {
		t.Fatalf("want redirect to ProblemList, got %T", v)
	}
	if notice == nil || notice.Message == "" {
		t.Fatal("redirect should carry a notice")
	}
	// 纠正后的视图成为新的当前状态
	if _, ok := m.Current().(ProblemList); !ok {
		t.Fatalf("current not updated, got %T", m.Current())
	}
}

func TestResolveFillsDefaultNote(t *testing.T) {
	m := NewMachine(&fakeLookup{
		defaultNoteID: func(notebookID uint) (uint, bool, error) { return 12, true, nil },
	})
	m.Navigate(NotebookDetail{NotebookID: 3})

	v, notice, err := m.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if notice != nil {
		t.Fatalf("unexpected notice %v", notice)
	}
	detail := v.(NotebookDetail)
	if detail.NoteID != 12 {
		t.Fatalf("want default note 12, got %d", detail.NoteID)
	}

	// 显式指定的笔记不被覆盖
	m.Navigate(NotebookDetail{NotebookID: 3, NoteID: 5})
	v, _, err = m.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v.(NotebookDetail).NoteID != 5 {
		t.Fatalf("explicit note overridden: %+v", v)
	}
}

// 失效的笔记ID（已删除或属于别的笔记本）回退到默认笔记并附带提示
func TestResolveCorrectsInvalidActiveNote(t *testing.T) {
	m := NewMachine(&fakeLookup{
		noteInNotebook: func(notebookID, noteID uint) (bool, error) {
			return notebookID == 1 && noteID == 5, nil
		},
		defaultNoteID: func(notebookID uint) (uint, bool, error) { return 5, true, nil },
	})

	// 已删除的笔记
	m.Navigate(NotebookDetail{NotebookID: 1, NoteID: 9999})
	v, notice, err := m.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v.(NotebookDetail).NoteID != 5 {
		t.Fatalf("stale note should fall back to default, got %+v", v)
	}
	if notice == nil || notice.Message == "" {
		t.Fatal("fallback should carry a notice")
	}
	if m.Current().(NotebookDetail).NoteID != 5 {
		t.Fatalf("current not corrected, got %+v", m.Current())
	}

	// 别的笔记本的笔记不被当作本笔记本的当前笔记，删空时回到创建提示
	empty := NewMachine(&fakeLookup{
		noteInNotebook: func(notebookID, noteID uint) (bool, error) { return false, nil },
	})
	empty.Navigate(NotebookDetail{NotebookID: 2, NoteID: 5})
	v, notice, err = empty.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v.(NotebookDetail).NoteID != 0 {
		t.Fatalf("foreign note in empty notebook should clear selection, got %+v", v)
	}
	if notice == nil {
		t.Fatal("want notice")
	}
}

func TestResolveEmptyNotebookKeepsZeroNote(t *testing.T) {
	m := NewMachine(&fakeLookup{})
	m.Navigate(NotebookDetail{NotebookID: 3})

	v, _, err := m.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v.(NotebookDetail).NoteID != 0 {
		t.Fatalf("empty notebook should keep zero note, got %+v", v)
	}
}

func TestResolveRedirectsMissingNotebook(t *testing.T) {
	m := NewMachine(&fakeLookup{
		notebookExists: func(id uint) (bool, error) { return false, nil },
	})
	m.Navigate(NotebookDetail{NotebookID: 404})

	v, notice, err := m.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, ok := v.(NotebookList); !ok {
		t.Fatalf("want NotebookList, got %T", v)
	}
	if notice == nil {
		t.Fatal("want notice")
	}
}

func TestBackFollowsRememberedSource(t *testing.T) {
	m := NewMachine(&fakeLookup{})

	m.Navigate(ProblemDetail{ProblemID: 1, Source: PageCalendar})
	if _, ok := m.Back().(Calendar); !ok {
		t.Fatalf("want Calendar, got %T", m.Current())
	}

	m.Navigate(ProblemDetail{ProblemID: 1, Source: PageProblems})
	if _, ok := m.Back().(ProblemList); !ok {
		t.Fatalf("want ProblemList, got %T", m.Current())
	}

	// 只记住最后一次写入的来源
	m.Navigate(ProblemDetail{ProblemID: 1, Source: PageCalendar})
	m.Navigate(ProblemDetail{ProblemID: 2, Source: PageProblems})
	if _, ok := m.Back().(ProblemList); !ok {
		t.Fatalf("last written source should win, got %T", m.Current())
	}

	m.Navigate(NotebookDetail{NotebookID: 1})
	if _, ok := m.Back().(NotebookList); !ok {
		t.Fatalf("want NotebookList, got %T", m.Current())
	}

	m.Navigate(ResourceList{})
	if _, ok := m.Back().(Dashboard); !ok {
		t.Fatalf("want Dashboard, got %T", m.Current())
	}
}

func TestPendingDeleteLifecycle(t *testing.T) {
	m := NewMachine(&fakeLookup{})
	m.Navigate(ProblemList{})

	// 未请求过不能确认
	if m.ConfirmDelete(KindProblem, 1) {
		t.Fatal("confirm without request should fail")
	}

	m.RequestDelete(KindProblem, 1)
	if !m.PendingDelete(KindProblem, 1) {
		t.Fatal("pending not recorded")
	}
	if m.PendingDelete(KindProblem, 2) {
		t.Fatal("pending must be per entity")
	}
	if m.PendingDelete(KindResource, 1) {
		t.Fatal("pending must be per kind")
	}

	m.CancelDelete(KindProblem, 1)
	if m.ConfirmDelete(KindProblem, 1) {
		t.Fatal("cancel should clear pending")
	}

	// 确认是一次性的
	m.RequestDelete(KindProblem, 1)
	if !m.ConfirmDelete(KindProblem, 1) {
		t.Fatal("confirm after request should succeed")
	}
	if m.ConfirmDelete(KindProblem, 1) {
		t.Fatal("confirm must consume the pending mark")
	}
}

func TestNavigationClearsPending(t *testing.T) {
	m := NewMachine(&fakeLookup{})
	m.Navigate(ProblemList{})
	m.RequestDelete(KindProblem, 1)

	// 同页重渲染不清空
	m.Navigate(ProblemList{})
	if !m.PendingDelete(KindProblem, 1) {
		t.Fatal("same-page navigation should keep pending")
	}

	m.Navigate(Calendar{})
	if m.PendingDelete(KindProblem, 1) {
		t.Fatal("page change should clear pending")
	}

	m.Navigate(ProblemList{})
	m.RequestDelete(KindProblem, 2)
	m.Back()
	if m.PendingDelete(KindProblem, 2) {
		t.Fatal("back should clear pending")
	}
}
