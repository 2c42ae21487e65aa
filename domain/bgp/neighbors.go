package bgp

// Neighbor 表示 "show bgp neighbor" 中一个 peer 的多行块。
// PeerAddress 是去掉端口后缀的 peer 地址，作为 diff 主键。
type Neighbor struct {
	Peer        string `json:"peer"`
	PeerAddress string `json:"peer_address"`
	PeerAS      string `json:"peer_as"`
	Local       string `json:"local"`
	LocalAS     string `json:"local_as"`
	Type        string `json:"type"`
	State       string `json:"state"`
	Flags       string `json:"flags"`
	LastState   string `json:"last_state"`
	LastEvent   string `json:"last_event"`
	Holdtime    string `json:"holdtime"`
	Preference  string `json:"preference"`
	Flaps       string `json:"flaps"`
}

// Neighbors 表示完整的 bgp neighbor 输出。
type Neighbors struct {
	Entries []Neighbor `json:"entries"`
}

// NewNeighbors 构造空结果。
func NewNeighbors() *Neighbors {
	return &Neighbors{Entries: make([]Neighbor, 0)}
}

// Plain renders the neighbor blocks as plain nested data.
func (n *Neighbors) Plain() map[string]any {
	entries := make([]any, 0, len(n.Entries))
	for _, e := range n.Entries {
		entries = append(entries, map[string]any{
			"peer":         e.Peer,
			"peer_address": e.PeerAddress,
			"peer_as":      e.PeerAS,
			"local":        e.Local,
			"local_as":     e.LocalAS,
			"type":         e.Type,
			"state":        e.State,
			"flags":        e.Flags,
			"last_state":   e.LastState,
			"last_event":   e.LastEvent,
			"holdtime":     e.Holdtime,
			"preference":   e.Preference,
			"flaps":        e.Flaps,
		})
	}
	return map[string]any{"entries": entries}
}
