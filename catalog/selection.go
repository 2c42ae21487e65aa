package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/honeybbq/netdiff/pkg/nderrors"
)

// Selection 是 YAML 命令选择文件的结构：
//
//	commands:
//	  - show_arp_no_resolve
//	  - show_bgp_summary
type Selection struct {
	Commands []string `yaml:"commands"`
}

// Select parses a selection document and resolves it against the catalogue,
// preserving the document's order. An empty document selects nothing; an
// unknown name is a catalog error.
func Select(data []byte) ([]*Entry, error) {
	var sel Selection
	if err := yaml.Unmarshal(data, &sel); err != nil {
		return nil, nderrors.New(nderrors.KindCatalog, fmt.Errorf("invalid selection file: %w", err))
	}
	out := make([]*Entry, 0, len(sel.Commands))
	seen := make(map[string]bool, len(sel.Commands))
	for _, name := range sel.Commands {
		if seen[name] {
			return nil, nderrors.New(nderrors.KindCatalog, fmt.Errorf("duplicate command %q in selection", name))
		}
		seen[name] = true
		entry, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
