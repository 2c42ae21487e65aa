// Package mpls models the output of "show mpls interface".
package mpls

// Interface 表示一条 MPLS 接口行。
type Interface struct {
	Interface   string `json:"interface"`
	State       string `json:"state"`
	AdminGroups string `json:"administrative_groups"`
}

// Interfaces 表示完整的 MPLS 接口表。
type Interfaces struct {
	Entries []Interface `json:"entries"`
}

// NewInterfaces 构造空结果。
func NewInterfaces() *Interfaces {
	return &Interfaces{Entries: make([]Interface, 0)}
}

// Plain renders the interface table as plain nested data.
func (i *Interfaces) Plain() map[string]any {
	entries := make([]any, 0, len(i.Entries))
	for _, e := range i.Entries {
		entries = append(entries, map[string]any{
			"interface":             e.Interface,
			"state":                 e.State,
			"administrative_groups": e.AdminGroups,
		})
	}
	return map[string]any{"entries": entries}
}
