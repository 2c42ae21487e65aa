package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/arp"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	arpEntryPattern = regexp.MustCompile(`(?i)^([0-9a-f:]+)\s+(\d+\.\d+\.\d+\.\d+)\s+(\S+)\s+(\S+)`)
	arpTotalPattern = regexp.MustCompile(`(?i)Total\s+entries:\s*(\d+)`)
)

// ARP parses "show arp no-resolve" output. The "Total entries: N" trailer is
// recorded verbatim; only when it is missing does the total fall back to the
// number of parsed entries.
func ARP(seg netdiff.Segment) *arp.Table {
	table := arp.NewTable()
	if seg.Blank() {
		return table
	}
	for _, line := range seg.Lines() {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := arpTotalPattern.FindStringSubmatch(line); m != nil {
			table.TotalEntries = atoi(m[1])
			continue
		}
		if m := arpEntryPattern.FindStringSubmatch(line); m != nil {
			table.Entries = append(table.Entries, arp.Entry{
				MACAddress: m[1],
				IPAddress:  m[2],
				Interface:  m[3],
				Flags:      m[4],
			})
		}
	}
	if table.TotalEntries == 0 {
		table.TotalEntries = len(table.Entries)
	}
	return table
}

// ARPFromPrimary converts a primary-parser payload into the ARP table. The
// payload layout follows the structured CLI parser convention:
// arp-table-information / arp-table-entry / arp-entry-count. It returns
// false when the payload does not carry an ARP table at all.
func ARPFromPrimary(payload map[string]any) (*arp.Table, bool) {
	info, ok := payload["arp-table-information"].(map[string]any)
	if !ok {
		return nil, false
	}
	table := arp.NewTable()
	if raw, ok := info["arp-table-entry"].([]any); ok {
		for _, item := range raw {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			table.Entries = append(table.Entries, arp.Entry{
				MACAddress: primaryString(entry, "mac-address"),
				IPAddress:  primaryString(entry, "ip-address"),
				Interface:  primaryString(entry, "interface-name"),
				Flags:      primaryString(entry, "arp-table-entry-flags"),
			})
		}
	}
	switch count := info["arp-entry-count"].(type) {
	case int:
		table.TotalEntries = count
	case float64:
		table.TotalEntries = int(count)
	case string:
		table.TotalEntries = atoi(count)
	default:
		table.TotalEntries = len(table.Entries)
	}
	return table, true
}

func primaryString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return "unknown"
}
