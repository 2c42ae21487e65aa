package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/route"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	routeHeaderPattern = regexp.MustCompile(`^(\S+):\s*(\d+)\s+destinations,\s*(\d+)\s+routes\s+\((\d+)\s+active,\s*(\d+)\s+holddown,\s*(\d+)\s+hidden\)`)
	// Destination row: destination, optional active marker, bracketed
	// protocol token, then age and an optional metric.
	routeEntryPattern = regexp.MustCompile(`^(\S+)\s+([*+-]?)\[([A-Za-z-]+(?:/\d+)?)\]\s+([^,]+?)(?:,\s*metric\s+(\d+))?\s*$`)
	// Additional path for the previous destination: same shape without
	// the leading destination column.
	routeExtraPattern = regexp.MustCompile(`^([*+-]?)\[([A-Za-z-]+(?:/\d+)?)\]\s+([^,]+?)(?:,\s*metric\s+(\d+))?\s*$`)
	routeHopPattern   = regexp.MustCompile(`^(?:>\s*)?(?:to\s+(\S+)\s+)?via\s+(\S+)`)
)

// RouteTable parses "show route table <name>" output. A destination row
// opens a route; indented "to X via Y" continuations append next hops to the
// open route and are dropped when none is open. An indented bracket row
// opens a further route that inherits the previous destination.
func RouteTable(seg netdiff.Segment) *route.Table {
	table := route.NewTable()
	if seg.Blank() {
		return table
	}
	var open *route.Route
	lastDestination := ""
	flush := func() {
		if open != nil {
			table.Entries = append(table.Entries, *open)
			open = nil
		}
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "+ =") || strings.HasPrefix(line, "@ =") {
			continue
		}
		if m := routeHeaderPattern.FindStringSubmatch(line); m != nil {
			table.Name = m[1]
			table.Destinations = atoi(m[2])
			table.Routes = atoi(m[3])
			table.Active = atoi(m[4])
			table.Holddown = atoi(m[5])
			table.Hidden = atoi(m[6])
			continue
		}
		if !indented(raw) {
			if m := routeEntryPattern.FindStringSubmatch(line); m != nil {
				flush()
				protocol, preference := splitProtoPref("[" + m[3] + "]")
				open = &route.Route{
					Destination: m[1],
					Active:      m[2],
					Protocol:    protocol,
					Preference:  preference,
					Age:         strings.TrimSpace(m[4]),
					Metric:      m[5],
					NextHops:    make([]route.NextHop, 0),
				}
				lastDestination = m[1]
				continue
			}
		}
		if m := routeExtraPattern.FindStringSubmatch(line); m != nil && lastDestination != "" {
			flush()
			protocol, preference := splitProtoPref("[" + m[2] + "]")
			open = &route.Route{
				Destination: lastDestination,
				Active:      m[1],
				Protocol:    protocol,
				Preference:  preference,
				Age:         strings.TrimSpace(m[3]),
				Metric:      m[4],
				NextHops:    make([]route.NextHop, 0),
			}
			continue
		}
		if m := routeHopPattern.FindStringSubmatch(line); m != nil {
			if open != nil {
				open.NextHops = append(open.NextHops, route.NextHop{To: m[1], Via: m[2]})
			}
			continue
		}
	}
	flush()
	return table
}
