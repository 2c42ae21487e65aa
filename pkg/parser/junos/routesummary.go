package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/route"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	routeASPattern       = regexp.MustCompile(`(?i)^Autonomous\s+system\s+number:\s*(\S+)`)
	routeRouterIDPattern = regexp.MustCompile(`(?i)^Router\s+ID:\s*(\S+)`)
	routeProtoPattern    = regexp.MustCompile(`^(\S+):\s*(\d+)\s+routes,\s*(\d+)\s+active`)
)

// RouteSummary parses "show route summary" output. Each table header opens
// a summary block; indented "PROTO: N routes, N active" lines attach
// per-protocol counts to the open block.
func RouteSummary(seg netdiff.Segment) *route.Summary {
	summary := route.NewSummary()
	if seg.Blank() {
		return summary
	}
	var open *route.TableSummary
	flush := func() {
		if open != nil {
			summary.Tables = append(summary.Tables, *open)
			open = nil
		}
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := routeASPattern.FindStringSubmatch(line); m != nil {
			summary.ASNumber = m[1]
			continue
		}
		if m := routeRouterIDPattern.FindStringSubmatch(line); m != nil {
			summary.RouterID = m[1]
			continue
		}
		if m := routeHeaderPattern.FindStringSubmatch(line); m != nil && !indented(raw) {
			flush()
			open = &route.TableSummary{
				Name:         m[1],
				Destinations: atoi(m[2]),
				Routes:       atoi(m[3]),
				Active:       atoi(m[4]),
				Holddown:     atoi(m[5]),
				Hidden:       atoi(m[6]),
				Protocols:    make([]route.ProtocolCount, 0),
			}
			continue
		}
		if m := routeProtoPattern.FindStringSubmatch(line); m != nil && indented(raw) {
			if open != nil {
				open.Protocols = append(open.Protocols, route.ProtocolCount{
					Protocol: m[1],
					Routes:   atoi(m[2]),
					Active:   atoi(m[3]),
				})
			}
			continue
		}
	}
	flush()
	return summary
}
