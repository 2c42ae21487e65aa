package route

// ProtocolCount 表示 route summary 中一张表下按协议的计数行。
type ProtocolCount struct {
	Protocol string `json:"protocol"`
	Routes   int    `json:"routes"`
	Active   int    `json:"active"`
}

// TableSummary 表示 route summary 中一张表的汇总块。
type TableSummary struct {
	Name         string          `json:"table"`
	Destinations int             `json:"destinations"`
	Routes       int             `json:"routes"`
	Active       int             `json:"active"`
	Holddown     int             `json:"holddown"`
	Hidden       int             `json:"hidden"`
	Protocols    []ProtocolCount `json:"protocols"`
}

// Summary 表示 "show route summary" 的完整输出。
type Summary struct {
	ASNumber string         `json:"as_number"`
	RouterID string         `json:"router_id"`
	Tables   []TableSummary `json:"entries"`
}

// NewSummary 构造空结果。
func NewSummary() *Summary {
	return &Summary{Tables: make([]TableSummary, 0)}
}

// Plain renders the route summary as plain nested data. Tables are the
// diffable entries, keyed by table name; the protocols list is one field
// value compared as a whole.
func (s *Summary) Plain() map[string]any {
	entries := make([]any, 0, len(s.Tables))
	for _, t := range s.Tables {
		protocols := make([]any, 0, len(t.Protocols))
		for _, p := range t.Protocols {
			protocols = append(protocols, map[string]any{
				"protocol": p.Protocol,
				"routes":   p.Routes,
				"active":   p.Active,
			})
		}
		entries = append(entries, map[string]any{
			"table":        t.Name,
			"destinations": t.Destinations,
			"routes":       t.Routes,
			"active":       t.Active,
			"holddown":     t.Holddown,
			"hidden":       t.Hidden,
			"protocols":    protocols,
		})
	}
	return map[string]any{
		"as_number": s.ASNumber,
		"router_id": s.RouterID,
		"entries":   entries,
	}
}
