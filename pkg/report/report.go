// Package report defines the comparison report contract: the per-command
// Triple produced by the compare pipeline, the Sink interface the output
// writers implement, and the flattening of a comparison tree into ordered
// report rows shared by all sinks.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/honeybbq/netdiff/pkg/diff"
)

// Triple 表示一条命令的完整比较产物：命令名、双侧解析结果与比较结论。
type Triple struct {
	Command string         `json:"command"`
	Pre     map[string]any `json:"pre"`
	Post    map[string]any `json:"post"`
	Result  *diff.Result   `json:"result"`
}

// Sink writes a full comparison report somewhere.
type Sink interface {
	Write(ctx context.Context, triples []Triple) error
}

// Row kinds, from command separators down to field cells.
const (
	KindCommand = "command"
	KindSection = "section"
	KindRecord  = "record"
	KindField   = "field"
)

// Row 是展平后的一行报告：Pre/Post 两列渲染值加状态列。
type Row struct {
	Depth  int
	Kind   string
	Label  string
	Pre    string
	Post   string
	Status string
}

// Rows flattens every triple into the shared row layout: a command
// separator, then its comparison tree walked depth first with keys in
// sorted order.
func Rows(triples []Triple) []Row {
	rows := make([]Row, 0, 64)
	for _, t := range triples {
		rows = append(rows, Row{
			Kind:   KindCommand,
			Label:  t.Command,
			Status: t.Result.Verdict,
		})
		rows = appendTree(rows, t.Result.Comparison, 0)
	}
	return rows
}

func appendTree(rows []Row, node map[string]any, depth int) []Row {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch child := node[key].(type) {
		case []any:
			rows = append(rows, Row{Depth: depth, Kind: KindSection, Label: key})
			rows = appendRecords(rows, child, depth+1)
		case map[string]any:
			if isCell(child) {
				rows = append(rows, Row{
					Depth:  depth,
					Kind:   KindField,
					Label:  key,
					Pre:    renderValue(child["pre"]),
					Post:   renderValue(child["post"]),
					Status: fmt.Sprintf("%v", child["status"]),
				})
				continue
			}
			rows = append(rows, Row{Depth: depth, Kind: KindSection, Label: key})
			rows = appendTree(rows, child, depth+1)
		}
	}
	return rows
}

func appendRecords(rows []Row, records []any, depth int) []Row {
	for _, item := range records {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label := fmt.Sprintf("%v", rec["key"])
		if name, ok := rec["name"]; ok {
			label = fmt.Sprintf("%v", name)
		}
		rows = append(rows, Row{
			Depth:  depth,
			Kind:   KindRecord,
			Label:  label,
			Status: fmt.Sprintf("%v", rec["status"]),
		})
		if fields, ok := rec["fields"].(map[string]any); ok {
			rows = appendTree(rows, fields, depth+1)
		}
		// P2MP group: branch count cell plus the nested record list.
		if c, ok := rec["branch_count"].(map[string]any); ok && isCell(c) {
			rows = appendTree(rows, map[string]any{"branch_count": c}, depth+1)
		}
		if nested, ok := rec["entries"].([]any); ok {
			rows = appendRecords(rows, nested, depth+1)
		}
	}
	return rows
}

// isCell reports whether a map is a pre/post/status comparison cell rather
// than a nested tree.
func isCell(m map[string]any) bool {
	if len(m) != 3 {
		return false
	}
	_, hasPre := m["pre"]
	_, hasPost := m["post"]
	_, hasStatus := m["status"]
	return hasPre && hasPost && hasStatus
}

// renderValue renders a field value for a report cell. Composite values
// (whole-value lists, nested maps) render as compact JSON.
func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int, int64, float64, bool:
		return fmt.Sprintf("%v", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
