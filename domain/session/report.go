// Package session models the session-style reports shared by the RSVP and
// MPLS LSP command family: "show rsvp session", "show mpls lsp",
// "show mpls lsp p2mp", "show mpls lsp unidirectional" and their pipe-filter
// variants.
//
// The full form is a two- or three-level structure: a direction Section
// (Ingress/Egress/Transit) contains either a flat list of Records or, for
// P2MP, a list of named Groups each containing Records. Filtered variants
// ("| match DN") lose the section headers and collapse to a flat Record
// list.
package session

// Record 表示一条会话/LSP 记录。
type Record struct {
	To       string `json:"to"`
	From     string `json:"from"`
	State    string `json:"state"`
	Rt       string `json:"rt"`
	Style    string `json:"style"`
	LabelIn  string `json:"label_in"`
	LabelOut string `json:"label_out"`
	LSPName  string `json:"lsp_name"`
}

// Group 表示 Section 内的一个 P2MP 子隧道分组。
type Group struct {
	Name        string   `json:"name"`
	BranchCount int      `json:"branch_count"`
	Records     []Record `json:"entries"`
}

// Section is one direction of a session report. The four totals are
// independent counters taken verbatim from the transcript's own header and
// trailer lines; they need not equal len(Records) and are never recomputed.
type Section struct {
	TotalSessions  int      `json:"total_sessions"`
	TotalDisplayed int      `json:"total_displayed"`
	TotalUp        int      `json:"total_up"`
	TotalDown      int      `json:"total_down"`
	Records        []Record `json:"entries"`
	Groups         []Group  `json:"groups,omitempty"`
}

// Report 表示一次会话类命令的完整解析结果：
// 要么是至多三个可选 Section，要么（filtered 变体）是顶层平铺记录。
type Report struct {
	Ingress *Section `json:"ingress,omitempty"`
	Egress  *Section `json:"egress,omitempty"`
	Transit *Section `json:"transit,omitempty"`
	Records []Record `json:"entries,omitempty"`
	Flat    bool     `json:"-"`
}

// NewReport 构造空的分段报告。
func NewReport() *Report {
	return &Report{}
}

// NewFlatReport 构造空的平铺报告（match 过滤变体使用）。
func NewFlatReport() *Report {
	return &Report{Flat: true, Records: make([]Record, 0)}
}

func recordsPlain(records []Record) []any {
	out := make([]any, 0, len(records))
	for _, r := range records {
		out = append(out, map[string]any{
			"to":        r.To,
			"from":      r.From,
			"state":     r.State,
			"rt":        r.Rt,
			"style":     r.Style,
			"label_in":  r.LabelIn,
			"label_out": r.LabelOut,
			"lsp_name":  r.LSPName,
		})
	}
	return out
}

// Plain renders a section as plain nested data. The groups key is present
// only when the section actually carries groups (the P2MP shape).
func (s *Section) Plain() map[string]any {
	out := map[string]any{
		"total_sessions":  s.TotalSessions,
		"total_displayed": s.TotalDisplayed,
		"total_up":        s.TotalUp,
		"total_down":      s.TotalDown,
		"entries":         recordsPlain(s.Records),
	}
	if s.Groups != nil {
		groups := make([]any, 0, len(s.Groups))
		for _, g := range s.Groups {
			groups = append(groups, map[string]any{
				"name":         g.Name,
				"branch_count": g.BranchCount,
				"entries":      recordsPlain(g.Records),
			})
		}
		out["groups"] = groups
	}
	return out
}

// Plain renders the report as plain nested data. Sections that never
// appeared in the transcript are omitted; the diff engine treats a missing
// section as empty.
func (r *Report) Plain() map[string]any {
	if r.Flat {
		return map[string]any{"entries": recordsPlain(r.Records)}
	}
	out := map[string]any{}
	if r.Ingress != nil {
		out["ingress"] = r.Ingress.Plain()
	}
	if r.Egress != nil {
		out["egress"] = r.Egress.Plain()
	}
	if r.Transit != nil {
		out["transit"] = r.Transit.Plain()
	}
	return out
}
