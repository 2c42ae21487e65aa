// Package catalog is the command registry: every supported show command
// bound to its transcript signature, its parser, and its diff declaration.
// The catalogue is fixed at build time; selection files can narrow a run to
// a subset but never add commands.
package catalog

import (
	"context"
	"fmt"

	"github.com/honeybbq/netdiff/domain/arp"
	"github.com/honeybbq/netdiff/domain/bfd"
	"github.com/honeybbq/netdiff/domain/bgp"
	"github.com/honeybbq/netdiff/domain/isis"
	"github.com/honeybbq/netdiff/domain/lldp"
	"github.com/honeybbq/netdiff/domain/mpls"
	"github.com/honeybbq/netdiff/domain/route"
	"github.com/honeybbq/netdiff/domain/rsvp"
	"github.com/honeybbq/netdiff/domain/session"
	"github.com/honeybbq/netdiff/domain/vrrp"
	"github.com/honeybbq/netdiff/pkg/nderrors"
	"github.com/honeybbq/netdiff/pkg/netdiff"
	"github.com/honeybbq/netdiff/pkg/parser"
	"github.com/honeybbq/netdiff/pkg/parser/junos"
)

// Entry 将一条命令的签名、解析器与 diff 声明绑定在一起，
// 实现 netdiff.Command。Entry 无状态，可并发使用。
type Entry struct {
	name    string
	sig     netdiff.Signature
	parse   func(seg netdiff.Segment) map[string]any
	spec    netdiff.DiffSpec
	primary func(payload map[string]any) (map[string]any, bool)
}

// Name 实现 netdiff.Command。
func (e *Entry) Name() string { return e.name }

// Signature 实现 netdiff.Command。
func (e *Entry) Signature() netdiff.Signature { return e.sig }

// DiffSpec 实现 netdiff.Command。
func (e *Entry) DiffSpec() netdiff.DiffSpec { return e.spec }

// Parse 实现 netdiff.Command。Commands with a primary-payload converter
// consult the external parser first; any failure there is logged and
// recovered by the command's own parser. The two outputs never blend.
func (e *Entry) Parse(ctx context.Context, seg netdiff.Segment, opts netdiff.ParseOptions) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, nderrors.New(nderrors.KindInternal, err)
	}
	if opts.Primary != nil && e.primary != nil && !seg.Blank() {
		payload, err := opts.Primary.Parse(ctx, e.name, seg)
		if err == nil {
			if converted, ok := e.primary(payload); ok {
				return converted, nil
			}
			err = fmt.Errorf("payload carries no %s data", e.name)
		}
		log := opts.Log()
		log.Warn().
			Str("command", e.name).
			Str("parser", opts.Primary.Name()).
			Err(err).
			Msg("primary parser failed, falling back to regex parser")
	}
	return e.parse(seg), nil
}

// plain adapts a typed parser into the Entry's plain-data parse shape.
func plain[T netdiff.Collection](p parser.Func[T]) func(netdiff.Segment) map[string]any {
	return func(seg netdiff.Segment) map[string]any {
		return p.Parse(seg).Plain()
	}
}

// sessionSpec 是会话命令族共享的 diff 声明。
var sessionSpec = netdiff.DiffSpec{
	Key:    []string{"lsp_name"},
	Fields: []string{"to", "from", "state", "rt", "style", "label_in", "label_out"},
}

var (
	arpPlain              = plain(parser.Func[*arp.Table](junos.ARP))
	vrrpPlain             = plain(parser.Func[*vrrp.Summary](junos.VRRP))
	lldpPlain             = plain(parser.Func[*lldp.Neighbors](junos.LLDP))
	bfdPlain              = plain(parser.Func[*bfd.Sessions](junos.BFD))
	rsvpNeighborsPlain    = plain(parser.Func[*rsvp.Neighbors](junos.RSVPNeighbors))
	sessionsPlain         = plain(parser.Func[*session.Report](junos.Sessions))
	filteredSessionsPlain = plain(parser.Func[*session.Report](junos.FilteredSessions))
	routeTablePlain       = plain(parser.Func[*route.Table](junos.RouteTable))
	routeSummaryPlain     = plain(parser.Func[*route.Summary](junos.RouteSummary))
	mplsInterfacesPlain   = plain(parser.Func[*mpls.Interfaces](junos.MPLSInterfaces))
	bgpSummaryPlain       = plain(parser.Func[*bgp.Summary](junos.BGPSummary))
	bgpNeighborsPlain     = plain(parser.Func[*bgp.Neighbors](junos.BGPNeighbors))
	isisPlain             = plain(parser.Func[*isis.Adjacencies](junos.ISISAdjacencies))
)

var routeSpec = netdiff.DiffSpec{
	Key:    []string{"destination", "protocol"},
	Fields: []string{"active", "preference", "metric", "next_hops"},
}

// entries is the full catalogue in transcript order. Entry names follow the
// original operating procedure's check names; three of them re-read
// "show rsvp session" variants at specific occurrences.
var entries = []*Entry{
	{
		name:    "show_arp_no_resolve",
		sig:     netdiff.NewSignature("show arp no-resolve | no-more"),
		parse:   arpPlain,
		spec:    netdiff.DiffSpec{Key: []string{"ip_address"}, Fields: []string{"mac_address", "interface", "flags"}},
		primary: primaryARP,
	},
	{
		name:  "show_vrrp_summary",
		sig:   netdiff.NewSignature("show vrrp summary | no-more"),
		parse: vrrpPlain,
		spec:  netdiff.DiffSpec{Key: []string{"interface", "group"}, Fields: []string{"state", "vr_state", "vr_mode", "addresses"}},
	},
	{
		name:  "show_lldp_neighbors",
		sig:   netdiff.NewSignature("show lldp neighbors | no-more"),
		parse: lldpPlain,
		spec:  netdiff.DiffSpec{Key: []string{"local_interface"}, Fields: []string{"parent_interface", "chassis_id", "port_info", "system_name"}},
	},
	{
		name:  "show_bfd_session",
		sig:   netdiff.NewSignature("show bfd session | no-more"),
		parse: bfdPlain,
		spec:  netdiff.DiffSpec{Key: []string{"address"}, Fields: []string{"state", "interface", "detect_time", "transmit_interval", "multiplier"}},
	},
	{
		name:  "show_rsvp_neighbor",
		sig:   netdiff.NewSignature("show rsvp neighbor | no-more"),
		parse: rsvpNeighborsPlain,
		spec:  netdiff.DiffSpec{Key: []string{"address"}, Fields: []string{"idle", "up_down", "last_change", "hello_interval", "hello_tx_rx", "msg_rcvd"}},
	},
	{
		name:  "show_rsvp_session",
		sig:   netdiff.NewSignature("show rsvp session | no-more"),
		parse: sessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_route_table_inet0",
		sig:   netdiff.NewSignature("show route table inet.0 | no-more"),
		parse: routeTablePlain,
		spec:  routeSpec,
	},
	{
		name:  "show_route_table_inet3",
		sig:   netdiff.NewSignature("show route table inet.3 | no-more"),
		parse: routeTablePlain,
		spec:  routeSpec,
	},
	{
		name:  "show_route_table_mpls0",
		sig:   netdiff.NewSignature("show route table mpls.0 | no-more"),
		parse: routeTablePlain,
		spec:  routeSpec,
	},
	{
		name:  "show_mpls_interface",
		sig:   netdiff.NewSignature("show mpls interface | no-more"),
		parse: mplsInterfacesPlain,
		spec:  netdiff.DiffSpec{Key: []string{"interface"}, Fields: []string{"state", "administrative_groups"}},
	},
	{
		name:  "show_mpls_lsp",
		sig:   netdiff.NewSignature("show mpls lsp | no-more"),
		parse: sessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_mpls_lsp_p2mp",
		sig:   netdiff.NewSignature("show mpls lsp p2mp | no-more"),
		parse: sessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_bgp_summary",
		sig:   netdiff.NewSignature("show bgp summary | no-more"),
		parse: bgpSummaryPlain,
		spec:  netdiff.DiffSpec{Key: []string{"peer"}, Fields: []string{"as", "out_q", "flaps", "state", "ribs"}},
	},
	{
		name:  "show_bgp_neighbor",
		sig:   netdiff.NewSignature("show bgp neighbor | no-more"),
		parse: bgpNeighborsPlain,
		spec:  netdiff.DiffSpec{Key: []string{"peer_address"}, Fields: []string{"peer_as", "local_as", "type", "state", "flags", "holdtime", "preference"}},
	},
	{
		name:  "show_isis_adjacency_extensive",
		sig:   netdiff.NewSignature("show isis adjacency extensive | no-more"),
		parse: isisPlain,
		spec:  netdiff.DiffSpec{Key: []string{"system_name", "interface"}, Fields: []string{"level", "state", "priority", "ip_addresses"}},
	},
	{
		name:  "show_route_summary",
		sig:   netdiff.NewSignature("show route summary | no-more"),
		parse: routeSummaryPlain,
		spec:  netdiff.DiffSpec{Key: []string{"table"}, Fields: []string{"destinations", "routes", "active", "holddown", "hidden", "protocols"}},
	},
	{
		name:  "show_rsvp_session_match_dn",
		sig:   netdiff.NewSignature("show rsvp session | match DN | no-more"),
		parse: filteredSessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_mpls_lsp_unidirectional_match_dn",
		sig:   netdiff.NewSignature("show mpls lsp unidirectional | match Dn | no-more"),
		parse: filteredSessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_rsvp_session_first",
		sig:   netdiff.NewSignature("show rsvp session"),
		parse: sessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_rsvp_session_second",
		sig:   netdiff.NewSignature("show rsvp session").Nth(2),
		parse: sessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_rsvp_session_ma",
		sig:   netdiff.NewSignature("show rsvp session | ma no-more"),
		parse: sessionsPlain,
		spec:  sessionSpec,
	},
	{
		name:  "show_mpls_lsp_unidirectional",
		sig:   netdiff.NewSignature("show mpls lsp unidirectional | no-more"),
		parse: sessionsPlain,
		spec:  sessionSpec,
	},
}

// primaryARP adapts the structured ARP payload onto the regex parser's
// collection shape.
func primaryARP(payload map[string]any) (map[string]any, bool) {
	table, ok := junos.ARPFromPrimary(payload)
	if !ok {
		return nil, false
	}
	return table.Plain(), true
}

// All returns the full catalogue in its fixed order. The slice is shared;
// callers must not mutate it.
func All() []*Entry {
	return entries
}

// Names returns the catalogue's command names in order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

// Lookup resolves a command name to its catalogue entry.
func Lookup(name string) (*Entry, error) {
	for _, e := range entries {
		if e.name == name {
			return e, nil
		}
	}
	return nil, nderrors.New(nderrors.KindUnsupported, fmt.Errorf("unknown command %q", name))
}

var _ netdiff.Command = (*Entry)(nil)
