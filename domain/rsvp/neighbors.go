// Package rsvp models the output of "show rsvp neighbor".
package rsvp

// Neighbor 表示一个 RSVP 邻居。
type Neighbor struct {
	Address       string `json:"address"`
	Idle          string `json:"idle"`
	UpDown        string `json:"up_down"`
	LastChange    string `json:"last_change"`
	HelloInterval string `json:"hello_interval"`
	HelloTxRx     string `json:"hello_tx_rx"`
	MsgRcvd       string `json:"msg_rcvd"`
}

// Neighbors 表示完整的 RSVP 邻居表。Learned 来自
// "RSVP neighbor: N learned" 汇总行。
type Neighbors struct {
	Entries []Neighbor `json:"entries"`
	Learned int        `json:"learned"`
}

// NewNeighbors 构造空结果。
func NewNeighbors() *Neighbors {
	return &Neighbors{Entries: make([]Neighbor, 0)}
}

// Plain renders the neighbor table as plain nested data.
func (n *Neighbors) Plain() map[string]any {
	entries := make([]any, 0, len(n.Entries))
	for _, e := range n.Entries {
		entries = append(entries, map[string]any{
			"address":        e.Address,
			"idle":           e.Idle,
			"up_down":        e.UpDown,
			"last_change":    e.LastChange,
			"hello_interval": e.HelloInterval,
			"hello_tx_rx":    e.HelloTxRx,
			"msg_rcvd":       e.MsgRcvd,
		})
	}
	return map[string]any{
		"learned": n.Learned,
		"entries": entries,
	}
}
