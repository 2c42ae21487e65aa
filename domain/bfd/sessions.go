// Package bfd models the output of "show bfd session".
package bfd

// Entry 表示一条 BFD 会话。
type Entry struct {
	Address          string `json:"address"`
	State            string `json:"state"`
	Interface        string `json:"interface"`
	DetectTime       string `json:"detect_time"`
	TransmitInterval string `json:"transmit_interval"`
	Multiplier       string `json:"multiplier"`
}

// Sessions 表示完整的 BFD 会话表。Sessions/Clients 来自
// "N sessions, N clients" 汇总行；速率行原样保留。
type Sessions struct {
	Entries      []Entry `json:"entries"`
	Sessions     int     `json:"sessions"`
	Clients      int     `json:"clients"`
	TransmitRate string  `json:"cumulative_transmit_rate"`
	ReceiveRate  string  `json:"cumulative_receive_rate"`
}

// NewSessions 构造空结果。
func NewSessions() *Sessions {
	return &Sessions{Entries: make([]Entry, 0)}
}

// Plain renders the session table as plain nested data.
func (s *Sessions) Plain() map[string]any {
	entries := make([]any, 0, len(s.Entries))
	for _, e := range s.Entries {
		entries = append(entries, map[string]any{
			"address":           e.Address,
			"state":             e.State,
			"interface":         e.Interface,
			"detect_time":       e.DetectTime,
			"transmit_interval": e.TransmitInterval,
			"multiplier":        e.Multiplier,
		})
	}
	return map[string]any{
		"sessions":                 s.Sessions,
		"clients":                  s.Clients,
		"cumulative_transmit_rate": s.TransmitRate,
		"cumulative_receive_rate":  s.ReceiveRate,
		"entries":                  entries,
	}
}
