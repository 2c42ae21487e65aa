package junos

import (
	"strings"

	"github.com/honeybbq/netdiff/domain/mpls"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

// MPLSInterfaces parses "show mpls interface" output: interface, state and
// an optional administrative-groups column that may be absent entirely.
func MPLSInterfaces(seg netdiff.Segment) *mpls.Interfaces {
	interfaces := mpls.NewInterfaces()
	if seg.Blank() {
		return interfaces
	}
	for _, line := range seg.Lines() {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Interface") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		entry := mpls.Interface{
			Interface: fields[0],
			State:     fields[1],
		}
		if len(fields) > 2 {
			entry.AdminGroups = strings.Join(fields[2:], " ")
		}
		interfaces.Entries = append(interfaces.Entries, entry)
	}
	return interfaces
}
