// Package arp models the output of "show arp no-resolve".
package arp

// Entry 表示一条 ARP 表项。
type Entry struct {
	MACAddress string `json:"mac_address"`
	IPAddress  string `json:"ip_address"`
	Interface  string `json:"interface"`
	Flags      string `json:"flags"`
}

// Table 表示完整的 ARP 表输出。TotalEntries 来自 "Total entries: N" 行，
// 原样记录，不会根据 len(Entries) 重新计算（缺失时才回退到条目数）。
type Table struct {
	Entries      []Entry `json:"entries"`
	TotalEntries int     `json:"total_entries"`
}

// NewTable 构造空表。
func NewTable() *Table {
	return &Table{Entries: make([]Entry, 0)}
}

// Plain renders the table as plain nested data for the diff engine and the
// report sink. Key names are part of the report contract.
func (t *Table) Plain() map[string]any {
	entries := make([]any, 0, len(t.Entries))
	for _, e := range t.Entries {
		entries = append(entries, map[string]any{
			"mac_address": e.MACAddress,
			"ip_address":  e.IPAddress,
			"interface":   e.Interface,
			"flags":       e.Flags,
		})
	}
	return map[string]any{
		"total_entries": t.TotalEntries,
		"entries":       entries,
	}
}
