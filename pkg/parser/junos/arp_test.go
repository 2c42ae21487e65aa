package junos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybbq/netdiff/pkg/netdiff"
)

const arpOutput = `MAC Address       Address         Name    Interface     Flags
00:11:22:33:44:55 10.0.0.1        ge-0/0/0.0    none
66:77:88:99:aa:bb 10.0.0.2        ge-0/0/1.0    none
Total entries: 2`

func TestARP(t *testing.T) {
	table := ARP(netdiff.NewSegment(arpOutput))

	require.Len(t, table.Entries, 2)
	assert.Equal(t, "00:11:22:33:44:55", table.Entries[0].MACAddress)
	assert.Equal(t, "10.0.0.1", table.Entries[0].IPAddress)
	assert.Equal(t, "ge-0/0/0.0", table.Entries[0].Interface)
	assert.Equal(t, "none", table.Entries[0].Flags)
	assert.Equal(t, 2, table.TotalEntries)
}

func TestARP_TotalFallsBackToEntryCount(t *testing.T) {
	out := `00:11:22:33:44:55 10.0.0.1        ge-0/0/0.0    none
66:77:88:99:aa:bb 10.0.0.2        ge-0/0/1.0    none`
	table := ARP(netdiff.NewSegment(out))
	assert.Equal(t, 2, table.TotalEntries)
}

func TestARP_BlankSegment(t *testing.T) {
	table := ARP(netdiff.Segment{})
	assert.Empty(t, table.Entries)
	assert.Equal(t, 0, table.TotalEntries)

	table = ARP(netdiff.NewSegment("   \n  "))
	assert.Empty(t, table.Entries)
}

func TestARP_MalformedLinesAreInert(t *testing.T) {
	out := `garbage line without structure
00:11:22:33:44:55 10.0.0.1        ge-0/0/0.0    none
not-a-mac 10.0.0.9 ge-0/0/2.0 none
Total entries: 1`
	table := ARP(netdiff.NewSegment(out))
	require.Len(t, table.Entries, 1)
	assert.Equal(t, 1, table.TotalEntries)
}

func TestARPFromPrimary(t *testing.T) {
	payload := map[string]any{
		"arp-table-information": map[string]any{
			"arp-table-entry": []any{
				map[string]any{
					"mac-address":           "00:11:22:33:44:55",
					"ip-address":            "10.0.0.1",
					"interface-name":        "ge-0/0/0.0",
					"arp-table-entry-flags": "none",
				},
			},
			"arp-entry-count": "1",
		},
	}
	table, ok := ARPFromPrimary(payload)
	require.True(t, ok)
	require.Len(t, table.Entries, 1)
	assert.Equal(t, "10.0.0.1", table.Entries[0].IPAddress)
	assert.Equal(t, 1, table.TotalEntries)
}

func TestARPFromPrimary_CountFallback(t *testing.T) {
	payload := map[string]any{
		"arp-table-information": map[string]any{
			"arp-table-entry": []any{
				map[string]any{"mac-address": "00:11:22:33:44:55", "ip-address": "10.0.0.1"},
				map[string]any{"mac-address": "66:77:88:99:aa:bb", "ip-address": "10.0.0.2"},
			},
		},
	}
	table, ok := ARPFromPrimary(payload)
	require.True(t, ok)
	assert.Equal(t, 2, table.TotalEntries)
	// 缺失字段补 unknown，而不是空串。
	assert.Equal(t, "unknown", table.Entries[0].Interface)
}

func TestARPFromPrimary_WrongPayload(t *testing.T) {
	_, ok := ARPFromPrimary(map[string]any{"something-else": 1})
	assert.False(t, ok)
}
