package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/isis"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	isisExpiresPattern = regexp.MustCompile(`(?i)^Expires\s+in\s+(.+)$`)
	// Transition rows open with a "Wed Aug  5 09:11:02" style timestamp;
	// state and event are single tokens, the optional remainder is the
	// down reason.
	isisTransitionPattern = regexp.MustCompile(`^(\S+\s+\S+\s+\d+\s+[\d:]+)\s+(\S+)\s+(\S+)(?:\s+(.*))?$`)
)

// ISISAdjacencies parses "show isis adjacency extensive" output. A
// non-indented single-token line opens an adjacency block; indented
// comma-joined "Key: value" lines fill its fields, and everything after a
// "Transition log:" marker is read as column-aligned transition rows until
// the next block opens.
func ISISAdjacencies(seg netdiff.Segment) *isis.Adjacencies {
	adjacencies := isis.NewAdjacencies()
	if seg.Blank() {
		return adjacencies
	}
	var open *isis.Adjacency
	inLog := false
	flush := func() {
		if open != nil {
			adjacencies.Entries = append(adjacencies.Entries, *open)
			open = nil
		}
		inLog = false
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !indented(raw) && len(strings.Fields(line)) == 1 {
			flush()
			open = &isis.Adjacency{
				SystemName:    line,
				IPAddresses:   make([]string, 0),
				TransitionLog: make([]isis.Transition, 0),
			}
			continue
		}
		if open == nil {
			continue
		}
		if strings.EqualFold(line, "Transition log:") {
			inLog = true
			continue
		}
		if inLog {
			if strings.HasPrefix(line, "When") {
				continue
			}
			if m := isisTransitionPattern.FindStringSubmatch(line); m != nil {
				open.TransitionLog = append(open.TransitionLog, isis.Transition{
					When:       m[1],
					State:      m[2],
					Event:      m[3],
					DownReason: strings.TrimSpace(m[4]),
				})
			}
			continue
		}
		for _, part := range strings.Split(line, ", ") {
			part = strings.TrimSpace(part)
			switch {
			case strings.HasPrefix(part, "Interface:"):
				open.Interface = strings.TrimSpace(strings.TrimPrefix(part, "Interface:"))
			case strings.HasPrefix(part, "Level:"):
				open.Level = strings.TrimSpace(strings.TrimPrefix(part, "Level:"))
			case strings.HasPrefix(part, "State:"):
				open.State = strings.TrimSpace(strings.TrimPrefix(part, "State:"))
			case strings.HasPrefix(part, "Priority:"):
				open.Priority = strings.TrimSpace(strings.TrimPrefix(part, "Priority:"))
			case strings.HasPrefix(part, "Up/down transitions:"):
				open.Transitions = strings.TrimSpace(strings.TrimPrefix(part, "Up/down transitions:"))
			case strings.HasPrefix(part, "Last transition:"):
				open.LastTransition = strings.TrimSpace(strings.TrimPrefix(part, "Last transition:"))
			case strings.HasPrefix(part, "IP addresses:"):
				addr := strings.TrimSpace(strings.TrimPrefix(part, "IP addresses:"))
				if addr != "" {
					open.IPAddresses = append(open.IPAddresses, addr)
				}
			default:
				if m := isisExpiresPattern.FindStringSubmatch(part); m != nil {
					open.Expires = m[1]
				}
			}
		}
	}
	flush()
	return adjacencies
}
