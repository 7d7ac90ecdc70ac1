package model

import (
	"reflect"
	"testing"
)

func TestTagListRoundTrip(t *testing.T) {
	cases := []TagList{
		{"array", "hash-table"},
		{"动态规划"},
		{},
	}

	for _, tags := range cases {
		raw, err := tags.Value()
		if err != nil {
			t.Fatalf("value %v: %v", tags, err)
		}

		var decoded TagList
		if err := decoded.Scan(raw); err != nil {
			t.Fatalf("scan %v: %v", raw, err)
		}
		if !reflect.DeepEqual(decoded, tags) {
			t.Fatalf("round trip %v: got %v", tags, decoded)
		}
	}
}

func TestTagListNilValueEncodesEmptyArray(t *testing.T) {
	var tags TagList
	raw, err := tags.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("want [], got %v", raw)
	}
}

// 脏数据一律按空列表处理，不报错
func TestTagListScanMalformed(t *testing.T) {
	inputs := []interface{}{
		"not json",
		`{"a":1}`,
		"",
		nil,
		42,
	}

	for _, input := range inputs {
		var tags TagList
		if err := tags.Scan(input); err != nil {
			t.Fatalf("scan %v: %v", input, err)
		}
		if len(tags) != 0 {
			t.Fatalf("scan %v: want empty, got %v", input, tags)
		}
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags("  array , hash-table,, graph ")
	want := TagList{"array", "hash-table", "graph"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	if got := ParseTags(""); len(got) != 0 {
		t.Fatalf("empty input: want no tags, got %v", got)
	}

	// 中文逗号同样作为分隔符
	got = ParseTags("数组，哈希表")
	want = TagList{"数组", "哈希表"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestContainsAny(t *testing.T) {
	tags := TagList{"array", "hash"}

	if !tags.ContainsAny([]string{"hash", "graph"}) {
		t.Fatal("non-empty intersection should match")
	}
	if tags.ContainsAny([]string{"graph", "tree"}) {
		t.Fatal("empty intersection should not match")
	}
	if !tags.ContainsAny(nil) {
		t.Fatal("empty selection should match everything")
	}
}
