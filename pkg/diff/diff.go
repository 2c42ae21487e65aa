// Package diff aligns two parsed snapshots of the same command and renders a
// field-level comparison tree.
//
// Alignment is key-based, never positional: the command's DiffSpec names the
// field group identifying a record across snapshots. Records present on both
// sides are compared over the spec's declared comparison fields; one-sided
// records are reported added or deleted with every declared field
// mismatched. List-valued fields are compared as whole values, element order
// included.
package diff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/honeybbq/netdiff/pkg/netdiff"
)

// Comparison cell and record statuses.
const (
	StatusMatch    = "match"
	StatusMismatch = "mismatch"
	StatusAdded    = "added"
	StatusDeleted  = "deleted"
)

// Verdict values for a whole command comparison.
const (
	VerdictMatch    = "match"
	VerdictMismatch = "mismatch"
)

// Result 表示一条命令的完整比较结果。
// Comparison 是与解析输出同构的树，标量字段被替换为
// {"pre", "post", "status"} 单元；Verdict 是整树的汇总结论。
type Result struct {
	Comparison map[string]any `json:"comparison"`
	Verdict    string         `json:"verdict"`
}

// Collections compares the pre and post parse of one command. Both sides
// come from Collection.Plain (or the primary parser's equivalent shape); a
// nil side is treated as an empty collection.
func Collections(pre, post map[string]any, spec netdiff.DiffSpec, opts netdiff.DiffOptions) *Result {
	if pre == nil {
		pre = map[string]any{}
	}
	if post == nil {
		post = map[string]any{}
	}
	comparison := compareMap(pre, post, spec, opts)
	return &Result{
		Comparison: comparison,
		Verdict:    verdict(comparison),
	}
}

// compareMap walks the union of both sides' keys in sorted order. The
// "entries" list is aligned by the spec key, "groups" by group name, nested
// maps recurse with a missing side read as empty, and everything else is a
// whole-value field cell.
func compareMap(pre, post map[string]any, spec netdiff.DiffSpec, opts netdiff.DiffOptions) map[string]any {
	out := make(map[string]any, len(pre)+len(post))
	for _, key := range unionKeys(pre, post) {
		pv, inPre := pre[key]
		qv, inPost := post[key]
		switch key {
		case "entries":
			out[key] = compareEntries(anyList(pv), anyList(qv), spec, opts)
			continue
		case "groups":
			out[key] = compareGroups(anyList(pv), anyList(qv), spec, opts)
			continue
		}
		pm, pIsMap := pv.(map[string]any)
		qm, qIsMap := qv.(map[string]any)
		if (pIsMap || !inPre) && (qIsMap || !inPost) && (pIsMap || qIsMap) {
			if pm == nil {
				pm = map[string]any{}
			}
			if qm == nil {
				qm = map[string]any{}
			}
			out[key] = compareMap(pm, qm, spec, opts)
			continue
		}
		out[key] = cell(pv, qv)
	}
	return out
}

// compareEntries aligns record lists by the spec key. Duplicate keys on one
// side follow last-write-wins; the collision is logged, never fatal.
func compareEntries(pre, post []any, spec netdiff.DiffSpec, opts netdiff.DiffOptions) []any {
	preIndex := indexRecords(pre, spec.Key, "pre", opts)
	postIndex := indexRecords(post, spec.Key, "post", opts)

	keys := make([]string, 0, len(preIndex)+len(postIndex))
	seen := make(map[string]bool, len(preIndex)+len(postIndex))
	for k := range preIndex {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range postIndex {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		p, inPre := preIndex[k]
		q, inPost := postIndex[k]
		switch {
		case inPre && inPost:
			out = append(out, compareRecord(k, p, q, spec))
		case inPre:
			out = append(out, oneSidedRecord(k, p, spec, StatusDeleted))
		default:
			out = append(out, oneSidedRecord(k, q, spec, StatusAdded))
		}
	}
	return out
}

// recordFields lists the field names compared for one record: the key fields
// plus the spec's declared comparison fields. Undeclared record fields stay
// out of the comparison; volatile columns (ages, packet counters) must not
// flip a verdict. A spec without declared fields compares the union of both
// sides' fields.
func recordFields(spec netdiff.DiffSpec, pre, post map[string]any) []string {
	if len(spec.Fields) == 0 {
		return unionKeys(pre, post)
	}
	names := make([]string, 0, len(spec.Key)+len(spec.Fields))
	seen := make(map[string]bool, len(spec.Key)+len(spec.Fields))
	for _, n := range spec.Key {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, n := range spec.Fields {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// compareRecord compares one aligned record over its declared comparison
// fields.
func compareRecord(key string, pre, post map[string]any, spec netdiff.DiffSpec) map[string]any {
	names := recordFields(spec, pre, post)
	fields := make(map[string]any, len(names))
	for _, name := range names {
		fields[name] = cell(pre[name], post[name])
	}
	return map[string]any{
		"key":    key,
		"status": recordStatus(fields),
		"fields": fields,
	}
}

// oneSidedRecord renders a record present in only one snapshot: every
// declared field is a mismatch against the missing side.
func oneSidedRecord(key string, rec map[string]any, spec netdiff.DiffSpec, status string) map[string]any {
	names := recordFields(spec, rec, nil)
	fields := make(map[string]any, len(names))
	for _, name := range names {
		var c map[string]any
		if status == StatusDeleted {
			c = map[string]any{"pre": rec[name], "post": nil, "status": StatusMismatch}
		} else {
			c = map[string]any{"pre": nil, "post": rec[name], "status": StatusMismatch}
		}
		fields[name] = c
	}
	return map[string]any{
		"key":    key,
		"status": status,
		"fields": fields,
	}
}

// compareGroups aligns P2MP groups by name and diffs each group's record
// list with the same spec.
func compareGroups(pre, post []any, spec netdiff.DiffSpec, opts netdiff.DiffOptions) []any {
	nameSpec := netdiff.DiffSpec{Key: []string{"name"}}
	preIndex := indexRecords(pre, nameSpec.Key, "pre", opts)
	postIndex := indexRecords(post, nameSpec.Key, "post", opts)

	names := make([]string, 0, len(preIndex)+len(postIndex))
	seen := make(map[string]bool, len(preIndex)+len(postIndex))
	for n := range preIndex {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for n := range postIndex {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)

	out := make([]any, 0, len(names))
	for _, name := range names {
		p := preIndex[name]
		q := postIndex[name]
		status := StatusMatch
		switch {
		case p == nil:
			status = StatusAdded
			p = map[string]any{}
		case q == nil:
			status = StatusDeleted
			q = map[string]any{}
		}
		group := map[string]any{
			"name":         name,
			"status":       status,
			"branch_count": cell(p["branch_count"], q["branch_count"]),
			"entries":      compareEntries(anyList(p["entries"]), anyList(q["entries"]), spec, opts),
		}
		out = append(out, group)
	}
	return out
}

// indexRecords builds the key → record index for one side. A duplicate key
// overwrites the earlier record and is logged as a warning.
func indexRecords(records []any, key []string, side string, opts netdiff.DiffOptions) map[string]map[string]any {
	index := make(map[string]map[string]any, len(records))
	for _, item := range records {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		k := recordKey(rec, key)
		if _, dup := index[k]; dup {
			log := opts.Log()
			log.Warn().
				Str("side", side).
				Str("key", k).
				Msg("duplicate record key, keeping last occurrence")
		}
		index[k] = rec
	}
	return index
}

// recordKey joins the spec key fields' values into a deterministic string.
func recordKey(rec map[string]any, key []string) string {
	parts := make([]string, 0, len(key))
	for _, field := range key {
		parts = append(parts, fmt.Sprintf("%v", rec[field]))
	}
	return strings.Join(parts, "|")
}

// cell builds the pre/post/status unit for one field value. Values of any
// shape are compared as a whole.
func cell(pre, post any) map[string]any {
	status := StatusMismatch
	if cmp.Equal(pre, post) {
		status = StatusMatch
	}
	return map[string]any{"pre": pre, "post": post, "status": status}
}

// recordStatus rolls field cells up into the record's own status.
func recordStatus(fields map[string]any) string {
	for _, v := range fields {
		if c, ok := v.(map[string]any); ok && c["status"] == StatusMismatch {
			return StatusMismatch
		}
	}
	return StatusMatch
}

// verdict scans the whole comparison tree: any mismatch anywhere makes the
// command's verdict a mismatch.
func verdict(node any) string {
	if anyMismatch(node) {
		return VerdictMismatch
	}
	return VerdictMatch
}

func anyMismatch(node any) bool {
	switch v := node.(type) {
	case map[string]any:
		if v["status"] == StatusMismatch {
			return true
		}
		for _, child := range v {
			if anyMismatch(child) {
				return true
			}
		}
	case []any:
		for _, child := range v {
			if anyMismatch(child) {
				return true
			}
		}
	}
	return false
}

// anyList reads a value as a list, treating anything else as empty.
func anyList(v any) []any {
	list, _ := v.([]any)
	return list
}

// unionKeys returns the sorted union of both maps' keys.
func unionKeys(a, b map[string]any) []string {
	keys := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for k := range a {
		seen[k] = true
		keys = append(keys, k)
	}
	for k := range b {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
