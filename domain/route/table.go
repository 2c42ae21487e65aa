// Package route models the outputs of "show route table <name>" and
// "show route summary".
package route

// NextHop 表示一条路由的一个下一跳（续行）。
type NextHop struct {
	To  string `json:"to"`  // gateway address; empty for direct/local hops
	Via string `json:"via"` // outgoing interface
}

// Route 表示一条路由表项。Protocol/Preference 来自 "[PROTOCOL/NN]" 记号，
// 按 '/' 拆分；缺少第二段时 Preference 为空串而非错误。
type Route struct {
	Destination string    `json:"destination"`
	Active      string    `json:"active"` // "*", "+", "-" or empty
	Protocol    string    `json:"protocol"`
	Preference  string    `json:"preference"`
	Age         string    `json:"age"`
	Metric      string    `json:"metric"`
	NextHops    []NextHop `json:"next_hops"`
}

// Table 表示一张路由表的完整输出。头部计数来自表头行
// "inet.0: N destinations, N routes (N active, N holddown, N hidden)"。
type Table struct {
	Name         string  `json:"table"`
	Destinations int     `json:"destinations"`
	Routes       int     `json:"routes"`
	Active       int     `json:"active"`
	Holddown     int     `json:"holddown"`
	Hidden       int     `json:"hidden"`
	Entries      []Route `json:"entries"`
}

// NewTable 构造空路由表。
func NewTable() *Table {
	return &Table{Entries: make([]Route, 0)}
}

// Plain renders the routing table as plain nested data. The next_hops list
// is one field value compared as a whole by the diff engine.
func (t *Table) Plain() map[string]any {
	entries := make([]any, 0, len(t.Entries))
	for _, r := range t.Entries {
		hops := make([]any, 0, len(r.NextHops))
		for _, h := range r.NextHops {
			hops = append(hops, map[string]any{
				"to":  h.To,
				"via": h.Via,
			})
		}
		entries = append(entries, map[string]any{
			"destination": r.Destination,
			"active":      r.Active,
			"protocol":    r.Protocol,
			"preference":  r.Preference,
			"age":         r.Age,
			"metric":      r.Metric,
			"next_hops":   hops,
		})
	}
	return map[string]any{
		"table":        t.Name,
		"destinations": t.Destinations,
		"routes":       t.Routes,
		"active":       t.Active,
		"holddown":     t.Holddown,
		"hidden":       t.Hidden,
		"entries":      entries,
	}
}
