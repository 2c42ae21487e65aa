package junos

import (
	"strings"

	"github.com/honeybbq/netdiff/domain/lldp"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

// LLDP parses "show lldp neighbors" output: five whitespace-separated
// columns per neighbor, preceded by a header line that is skipped by its
// "Local Interface" prefix.
func LLDP(seg netdiff.Segment) *lldp.Neighbors {
	neighbors := lldp.NewNeighbors()
	if seg.Blank() {
		return neighbors
	}
	for _, line := range seg.Lines() {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Local Interface") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			continue
		}
		neighbors.Entries = append(neighbors.Entries, lldp.Entry{
			LocalInterface:  fields[0],
			ParentInterface: fields[1],
			ChassisID:       fields[2],
			PortInfo:        fields[3],
			SystemName:      fields[4],
		})
	}
	return neighbors
}
