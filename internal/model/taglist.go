package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// TagList 题目标签列表，数据库中以 JSON 字符串数组形式存储在 TEXT 列
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 反序列化标签列，脏数据一律按空列表处理，不向上抛错
func (t *TagList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		*t = TagList{}
		return nil
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		*t = TagList{}
		return nil
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		*t = TagList{}
		return nil
	}

	*t = tags
	return nil
}

// ParseTags 把逗号分隔的输入拆成去除空白的标签列表，空项丢弃
func ParseTags(input string) TagList {
	input = strings.ReplaceAll(input, "，", ",")
	parts := strings.Split(input, ",")
	tags := make(TagList, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ContainsAny 判断标签列表与所选标签集合是否有交集（OR 语义）
func (t TagList) ContainsAny(selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	for _, tag := range t {
		if _, ok := set[tag]; ok {
			return true
		}
	}
	return false
}
