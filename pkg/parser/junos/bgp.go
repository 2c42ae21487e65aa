package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/bgp"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	bgpGroupsPattern = regexp.MustCompile(`(?i)^Groups:\s*(\d+)\s+Peers:\s*(\d+)\s+Down\s+peers:\s*(\d+)`)
	bgpRIBPattern    = regexp.MustCompile(`^(\S+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s*$`)
	bgpPeerPattern   = regexp.MustCompile(`^(\S+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\d+)\s+(\S+)\s+(.+?)\s*$`)
	bgpPeerRIBLine   = regexp.MustCompile(`^(\S+\.\d+):\s*(\S+)\s*$`)

	bgpNeighborPattern  = regexp.MustCompile(`(?i)^Peer:\s*(\S+)\s+AS\s+(\d+)\s+Local:\s*(\S+)\s+AS\s+(\d+)`)
	bgpTypePattern      = regexp.MustCompile(`(?i)Type:\s*(\S+)`)
	bgpStatePattern     = regexp.MustCompile(`(?i)\bState:\s*(\S+)`)
	bgpFlagsPattern     = regexp.MustCompile(`(?i)Flags:\s*(.+?)\s*$`)
	bgpLastStatePattern = regexp.MustCompile(`(?i)Last\s+State:\s*(\S+)`)
	bgpLastEventPattern = regexp.MustCompile(`(?i)Last\s+Event:\s*(\S+)`)
	bgpHoldtimePattern  = regexp.MustCompile(`(?i)Holdtime:\s*(\S+)`)
	bgpPrefPattern      = regexp.MustCompile(`(?i)Preference:\s*(\S+)`)
	bgpFlapsPattern     = regexp.MustCompile(`(?i)Number\s+of\s+flaps:\s*(\d+)`)
)

// BGPSummary parses "show bgp summary" output. The scanner switches column
// shape when the table header and the peer header go by: seven numeric
// columns per RIB count, then eight columns per peer row with indented
// "inet.0: a/r/a/d" continuations folding into the open peer's rib list.
func BGPSummary(seg netdiff.Segment) *bgp.Summary {
	summary := bgp.NewSummary()
	if seg.Blank() {
		return summary
	}
	const (
		scanHead = iota
		scanTables
		scanPeers
	)
	mode := scanHead
	var open *bgp.Peer
	flush := func() {
		if open != nil {
			summary.Entries = append(summary.Entries, *open)
			open = nil
		}
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := bgpGroupsPattern.FindStringSubmatch(line); m != nil {
			summary.Groups = atoi(m[1])
			summary.Peers = atoi(m[2])
			summary.DownPeers = atoi(m[3])
			continue
		}
		if strings.HasPrefix(line, "Table") {
			mode = scanTables
			continue
		}
		if strings.HasPrefix(line, "Peer") {
			mode = scanPeers
			continue
		}
		switch mode {
		case scanTables:
			if m := bgpRIBPattern.FindStringSubmatch(line); m != nil {
				summary.Tables = append(summary.Tables, bgp.RIBCount{
					Table:       m[1],
					TotalPaths:  atoi(m[2]),
					ActivePaths: atoi(m[3]),
					Suppressed:  atoi(m[4]),
					History:     atoi(m[5]),
					DampState:   atoi(m[6]),
					Pending:     atoi(m[7]),
				})
			}
		case scanPeers:
			if m := bgpPeerRIBLine.FindStringSubmatch(line); m != nil && indented(raw) {
				if open != nil {
					open.RIBs = append(open.RIBs, m[1]+": "+m[2])
				}
				continue
			}
			if m := bgpPeerPattern.FindStringSubmatch(line); m != nil && looksLikeAddress(m[1]) {
				flush()
				open = &bgp.Peer{
					Peer:       m[1],
					AS:         m[2],
					InPkt:      m[3],
					OutPkt:     m[4],
					OutQ:       m[5],
					Flaps:      m[6],
					LastUpDown: m[7],
					State:      m[8],
					RIBs:       make([]string, 0),
				}
			}
		}
	}
	flush()
	return summary
}

// stripPort removes the "+port" suffix Junos appends to established peer
// addresses, so the bare address can serve as the alignment key.
func stripPort(peer string) string {
	if i := strings.IndexByte(peer, '+'); i >= 0 {
		return peer[:i]
	}
	return peer
}

// BGPNeighbors parses "show bgp neighbor" output. A "Peer:" line opens a
// block; detail lines fill its fields. "Last State" must be tested before
// "State" because both substrings appear on the same line.
func BGPNeighbors(seg netdiff.Segment) *bgp.Neighbors {
	neighbors := bgp.NewNeighbors()
	if seg.Blank() {
		return neighbors
	}
	var open *bgp.Neighbor
	flush := func() {
		if open != nil {
			neighbors.Entries = append(neighbors.Entries, *open)
			open = nil
		}
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := bgpNeighborPattern.FindStringSubmatch(line); m != nil {
			flush()
			open = &bgp.Neighbor{
				Peer:        m[1],
				PeerAddress: stripPort(m[1]),
				PeerAS:      m[2],
				Local:       m[3],
				LocalAS:     m[4],
			}
			continue
		}
		if open == nil {
			continue
		}
		if m := bgpTypePattern.FindStringSubmatch(line); m != nil {
			open.Type = m[1]
		}
		if m := bgpLastStatePattern.FindStringSubmatch(line); m != nil {
			open.LastState = m[1]
		} else if m := bgpStatePattern.FindStringSubmatch(line); m != nil {
			open.State = m[1]
		}
		if m := bgpLastEventPattern.FindStringSubmatch(line); m != nil {
			open.LastEvent = m[1]
		}
		if m := bgpFlagsPattern.FindStringSubmatch(line); m != nil {
			open.Flags = m[1]
		}
		if m := bgpHoldtimePattern.FindStringSubmatch(line); m != nil {
			open.Holdtime = m[1]
		}
		if m := bgpPrefPattern.FindStringSubmatch(line); m != nil {
			open.Preference = m[1]
		}
		if m := bgpFlapsPattern.FindStringSubmatch(line); m != nil {
			open.Flaps = m[1]
		}
	}
	flush()
	return neighbors
}
