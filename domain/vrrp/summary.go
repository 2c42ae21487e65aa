// Package vrrp models the output of "show vrrp summary".
package vrrp

// Address 表示一个 VRRP 地址（lcl 或 vip）。
type Address struct {
	Type    string `json:"type"`
	Address string `json:"address"`
}

// Entry 表示一个 VRRP group。一条主行携带第一个地址，
// 后续缩进的续行为同一 group 追加地址。
type Entry struct {
	Interface string    `json:"interface"`
	State     string    `json:"state"`
	Group     int       `json:"group"`
	VRState   string    `json:"vr_state"`
	VRMode    string    `json:"vr_mode"`
	Addresses []Address `json:"addresses"`
}

// Summary 表示完整的 VRRP summary 输出。
type Summary struct {
	Entries []Entry `json:"entries"`
}

// NewSummary 构造空结果。
func NewSummary() *Summary {
	return &Summary{Entries: make([]Entry, 0)}
}

// Plain renders the summary as plain nested data. The addresses list is a
// single field value: the diff engine compares it as a whole, never
// element-wise.
func (s *Summary) Plain() map[string]any {
	entries := make([]any, 0, len(s.Entries))
	for _, e := range s.Entries {
		addrs := make([]any, 0, len(e.Addresses))
		for _, a := range e.Addresses {
			addrs = append(addrs, map[string]any{
				"type":    a.Type,
				"address": a.Address,
			})
		}
		entries = append(entries, map[string]any{
			"interface": e.Interface,
			"state":     e.State,
			"group":     e.Group,
			"vr_state":  e.VRState,
			"vr_mode":   e.VRMode,
			"addresses": addrs,
		})
	}
	return map[string]any{"entries": entries}
}
