// Package isis models the output of "show isis adjacency extensive".
package isis

// Transition 表示 transition log 中的一行状态迁移。
type Transition struct {
	When       string `json:"when"`
	State      string `json:"state"`
	Event      string `json:"event"`
	DownReason string `json:"down_reason"`
}

// Adjacency 表示一个 IS-IS 邻接块：非缩进的系统名行开块，
// 缩进的 "Key: value" 行与迁移日志行补充细节。
type Adjacency struct {
	SystemName     string       `json:"system_name"`
	Interface      string       `json:"interface"`
	Level          string       `json:"level"`
	State          string       `json:"state"`
	Expires        string       `json:"expires"`
	Priority       string       `json:"priority"`
	Transitions    string       `json:"up_down_transitions"`
	LastTransition string       `json:"last_transition"`
	IPAddresses    []string     `json:"ip_addresses"`
	TransitionLog  []Transition `json:"transition_log"`
}

// Adjacencies 表示完整的邻接表输出。
type Adjacencies struct {
	Entries []Adjacency `json:"entries"`
}

// NewAdjacencies 构造空结果。
func NewAdjacencies() *Adjacencies {
	return &Adjacencies{Entries: make([]Adjacency, 0)}
}

// Plain renders the adjacency table as plain nested data. The address list
// and the transition log are whole-value fields for the diff engine.
func (a *Adjacencies) Plain() map[string]any {
	entries := make([]any, 0, len(a.Entries))
	for _, e := range a.Entries {
		addrs := make([]any, 0, len(e.IPAddresses))
		for _, ip := range e.IPAddresses {
			addrs = append(addrs, ip)
		}
		log := make([]any, 0, len(e.TransitionLog))
		for _, t := range e.TransitionLog {
			log = append(log, map[string]any{
				"when":        t.When,
				"state":       t.State,
				"event":       t.Event,
				"down_reason": t.DownReason,
			})
		}
		entries = append(entries, map[string]any{
			"system_name":         e.SystemName,
			"interface":           e.Interface,
			"level":               e.Level,
			"state":               e.State,
			"expires":             e.Expires,
			"priority":            e.Priority,
			"up_down_transitions": e.Transitions,
			"last_transition":     e.LastTransition,
			"ip_addresses":        addrs,
			"transition_log":      log,
		})
	}
	return map[string]any{"entries": entries}
}
