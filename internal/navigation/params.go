package navigation

import (
	"strconv"

	"lyn_studio_backend/internal/util"
)

// 宿主外壳读写的参数键。历史上两套页面用过不同的键名，
// 解码时兼容旧别名，编码时只输出规范键。
const (
	keyPage        = "page"
	keyID          = "id"
	keySource      = "source"
	keySourceAlt   = "src"
	keyNotebook    = "notebookId"
	keyNotebookAlt = "nid"
	keyNote        = "noteId"
	keyNoteAlt     = "active_note"
)

// alias 为空表示该键没有旧别名
func paramUint(params map[string]string, key, alias string) uint {
	v, ok := params[key]
	if !ok && alias != "" {
		v = params[alias]
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

func paramString(params map[string]string, key, alias string) string {
	if v, ok := params[key]; ok {
		return v
	}
	return params[alias]
}

// Decode 把扁平的字符串参数表解码成强类型视图
// 缺失的 page 按初始状态 dashboard 处理，未知的 page 报错
func Decode(params map[string]string) (View, error) {
	page := Page(params[keyPage])
	if page == "" {
		page = PageDashboard
	}

	switch page {
	case PageDashboard:
		return Dashboard{}, nil
	case PageProblems:
		return ProblemList{}, nil
	case PageProblemDetail:
		source := Page(paramString(params, keySource, keySourceAlt))
		if source != PageCalendar {
			source = PageProblems
		}
		return ProblemDetail{
			ProblemID: paramUint(params, keyID, ""),
			Source:    source,
		}, nil
	case PageCalendar:
		return Calendar{}, nil
	case PageResources:
		return ResourceList{}, nil
	case PageNotebooks:
		return NotebookList{}, nil
	case PageNotebookDetail:
		return NotebookDetail{
			NotebookID: paramUint(params, keyNotebook, keyNotebookAlt),
			NoteID:     paramUint(params, keyNote, keyNoteAlt),
		}, nil
	}
	return nil, util.ErrInvalidView
}

// Encode 把视图编码回扁平参数表，只含目标状态显式携带的参数
func Encode(v View) map[string]string {
	params := map[string]string{keyPage: string(v.Page())}

	switch view := v.(type) {
	case ProblemDetail:
		params[keyID] = strconv.FormatUint(uint64(view.ProblemID), 10)
		params[keySource] = string(view.Source)
	case NotebookDetail:
		params[keyNotebook] = strconv.FormatUint(uint64(view.NotebookID), 10)
		if view.NoteID != 0 {
			params[keyNote] = strconv.FormatUint(uint64(view.NoteID), 10)
		}
	}
	return params
}
