package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/vrrp"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	vrrpEntryPattern = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(\d+)\s+(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s*$`)
	vrrpAddrPattern  = regexp.MustCompile(`^\s+(\S+)\s+(\S+)\s*$`)
)

// VRRP parses "show vrrp summary" output. A primary line opens an entry;
// indented two-token continuation lines append further (type, address)
// pairs to the entry that is currently open and are dropped when none is.
func VRRP(seg netdiff.Segment) *vrrp.Summary {
	summary := vrrp.NewSummary()
	if seg.Blank() {
		return summary
	}
	var open *vrrp.Entry
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
		if m := vrrpEntryPattern.FindStringSubmatch(line); m != nil && !indented(raw) {
			flush()
			open = &vrrp.Entry{
				Interface: m[1],
				State:     m[2],
				Group:     atoi(m[3]),
				VRState:   m[4],
				VRMode:    m[5],
				Addresses: []vrrp.Address{{Type: m[6], Address: m[7]}},
			}
			continue
		}
		if m := vrrpAddrPattern.FindStringSubmatch(raw); m != nil {
			if open != nil {
				open.Addresses = append(open.Addresses, vrrp.Address{Type: m[1], Address: m[2]})
			}
			continue
		}
	}
	flush()
	return summary
}
