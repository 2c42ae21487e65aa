// Package bgp models the outputs of "show bgp summary" and
// "show bgp neighbor".
package bgp

// RIBCount 表示 bgp summary 头部的一行表计数。
type RIBCount struct {
	Table       string `json:"table"`
	TotalPaths  int    `json:"total_paths"`
	ActivePaths int    `json:"active_paths"`
	Suppressed  int    `json:"suppressed"`
	History     int    `json:"history"`
	DampState   int    `json:"damp_state"`
	Pending     int    `json:"pending"`
}

// Peer 表示一条 BGP peer 汇总行；缩进的 "table: a/r/a/d" 续行
// 追加到 RIBs。
type Peer struct {
	Peer       string   `json:"peer"`
	AS         string   `json:"as"`
	InPkt      string   `json:"in_pkt"`
	OutPkt     string   `json:"out_pkt"`
	OutQ       string   `json:"out_q"`
	Flaps      string   `json:"flaps"`
	LastUpDown string   `json:"last_up_down"`
	State      string   `json:"state"`
	RIBs       []string `json:"ribs"`
}

// Summary 表示完整的 bgp summary 输出。Groups/Peers/DownPeers 来自
// "Groups: N Peers: N Down peers: N" 头部行。
type Summary struct {
	Groups    int        `json:"groups"`
	Peers     int        `json:"peers"`
	DownPeers int        `json:"down_peers"`
	Tables    []RIBCount `json:"tables"`
	Entries   []Peer     `json:"entries"`
}

// NewSummary 构造空结果。
func NewSummary() *Summary {
	return &Summary{Tables: make([]RIBCount, 0), Entries: make([]Peer, 0)}
}

// Plain renders the summary as plain nested data. The tables list and each
// peer's ribs list are whole-value fields for the diff engine.
func (s *Summary) Plain() map[string]any {
	tables := make([]any, 0, len(s.Tables))
	for _, t := range s.Tables {
		tables = append(tables, map[string]any{
			"table":        t.Table,
			"total_paths":  t.TotalPaths,
			"active_paths": t.ActivePaths,
			"suppressed":   t.Suppressed,
			"history":      t.History,
			"damp_state":   t.DampState,
			"pending":      t.Pending,
		})
	}
	entries := make([]any, 0, len(s.Entries))
	for _, p := range s.Entries {
		ribs := make([]any, 0, len(p.RIBs))
		for _, r := range p.RIBs {
			ribs = append(ribs, r)
		}
		entries = append(entries, map[string]any{
			"peer":         p.Peer,
			"as":           p.AS,
			"in_pkt":       p.InPkt,
			"out_pkt":      p.OutPkt,
			"out_q":        p.OutQ,
			"flaps":        p.Flaps,
			"last_up_down": p.LastUpDown,
			"state":        p.State,
			"ribs":         ribs,
		})
	}
	return map[string]any{
		"groups":     s.Groups,
		"peers":      s.Peers,
		"down_peers": s.DownPeers,
		"tables":     tables,
		"entries":    entries,
	}
}
