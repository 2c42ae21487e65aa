// Package lldp models the output of "show lldp neighbors".
package lldp

// Entry 表示一个 LLDP 邻居。
type Entry struct {
	LocalInterface  string `json:"local_interface"`
	ParentInterface string `json:"parent_interface"`
	ChassisID       string `json:"chassis_id"`
	PortInfo        string `json:"port_info"`
	SystemName      string `json:"system_name"`
}

// Neighbors 表示完整的 LLDP 邻居表。
type Neighbors struct {
	Entries []Entry `json:"entries"`
}

// NewNeighbors 构造空结果。
func NewNeighbors() *Neighbors {
	return &Neighbors{Entries: make([]Entry, 0)}
}

// Plain renders the neighbor table as plain nested data.
func (n *Neighbors) Plain() map[string]any {
	entries := make([]any, 0, len(n.Entries))
	for _, e := range n.Entries {
		entries = append(entries, map[string]any{
			"local_interface":  e.LocalInterface,
			"parent_interface": e.ParentInterface,
			"chassis_id":       e.ChassisID,
			"port_info":        e.PortInfo,
			"system_name":      e.SystemName,
		})
	}
	return map[string]any{"entries": entries}
}
