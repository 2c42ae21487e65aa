package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/rsvp"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	rsvpLearnedPattern  = regexp.MustCompile(`(?i)^RSVP\s+neighbor:\s*(\d+)\s+learned`)
	rsvpNeighborPattern = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(\d+)/(\d+)\s+(\S+)\s+(\S+)\s+(\d+)/(\d+)\s+(\d+)\s*$`)
)

// RSVPNeighbors parses "show rsvp neighbor" output. The Up/Dn and Tx/Rx
// column pairs stay joined with '/' exactly as printed.
func RSVPNeighbors(seg netdiff.Segment) *rsvp.Neighbors {
	neighbors := rsvp.NewNeighbors()
	if seg.Blank() {
		return neighbors
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "Neighbor") {
			continue
		}
		if m := rsvpLearnedPattern.FindStringSubmatch(line); m != nil {
			neighbors.Learned = atoi(m[1])
			continue
		}
		if m := rsvpNeighborPattern.FindStringSubmatch(line); m != nil && looksLikeAddress(m[1]) {
			neighbors.Entries = append(neighbors.Entries, rsvp.Neighbor{
				Address:       m[1],
				Idle:          m[2],
				UpDown:        m[3] + "/" + m[4],
				LastChange:    m[5],
				HelloInterval: m[6],
				HelloTxRx:     m[7] + "/" + m[8],
				MsgRcvd:       m[9],
			})
		}
	}
	return neighbors
}
