package junos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybbq/netdiff/pkg/netdiff"
)

func TestLLDP(t *testing.T) {
	out := `Local Interface    Parent Interface    Chassis Id          Port info          System Name
ge-0/0/0           -                   00:11:22:33:44:55   ge-1/0/0           pe2.lab
ge-0/0/1           ae0                 66:77:88:99:aa:bb   ge-2/0/1           p3.lab`
	neighbors := LLDP(netdiff.NewSegment(out))

	require.Len(t, neighbors.Entries, 2)
	assert.Equal(t, "ge-0/0/0", neighbors.Entries[0].LocalInterface)
	assert.Equal(t, "-", neighbors.Entries[0].ParentInterface)
	assert.Equal(t, "00:11:22:33:44:55", neighbors.Entries[0].ChassisID)
	assert.Equal(t, "pe2.lab", neighbors.Entries[0].SystemName)
	assert.Equal(t, "ae0", neighbors.Entries[1].ParentInterface)
}

func TestLLDP_WrongArityIsInert(t *testing.T) {
	out := `ge-0/0/0           -                   00:11:22:33:44:55   ge-1/0/0
ge-0/0/1           ae0                 66:77:88:99:aa:bb   ge-2/0/1           p3.lab`
	neighbors := LLDP(netdiff.NewSegment(out))
	require.Len(t, neighbors.Entries, 1)
	assert.Equal(t, "ge-0/0/1", neighbors.Entries[0].LocalInterface)
}

func TestBFD(t *testing.T) {
	out := `                                                  Detect   Transmit
Address                  State     Interface      Time     Interval  Multiplier
10.0.0.2                 Up        ge-0/0/0.0     1.500     0.500        3
10.1.0.3                 Down      ge-0/0/1.0     1.500     0.500        3
2 sessions, 2 clients
Cumulative transmit rate 4.0 pps, cumulative receive rate 4.0 pps`
	sessions := BFD(netdiff.NewSegment(out))

	require.Len(t, sessions.Entries, 2)
	assert.Equal(t, "10.0.0.2", sessions.Entries[0].Address)
	assert.Equal(t, "Up", sessions.Entries[0].State)
	assert.Equal(t, "ge-0/0/0.0", sessions.Entries[0].Interface)
	assert.Equal(t, "3", sessions.Entries[0].Multiplier)

	assert.Equal(t, 2, sessions.Sessions)
	assert.Equal(t, 2, sessions.Clients)
	assert.Equal(t, "4.0 pps", sessions.TransmitRate)
	assert.Equal(t, "4.0 pps", sessions.ReceiveRate)
}

func TestBFD_Blank(t *testing.T) {
	sessions := BFD(netdiff.Segment{})
	assert.Empty(t, sessions.Entries)
	assert.Equal(t, 0, sessions.Sessions)
}

func TestRSVPNeighbors(t *testing.T) {
	out := `RSVP neighbor: 2 learned
Address            Idle Up/Dn LastChange HelloInt HelloTx/Rx MsgRcvd
10.0.0.2              0  1/0     3w2d17h        9  22841/22840     1204
10.1.0.3             15  2/1     1d02h33m        9   9421/9418      880`
	neighbors := RSVPNeighbors(netdiff.NewSegment(out))

	assert.Equal(t, 2, neighbors.Learned)
	require.Len(t, neighbors.Entries, 2)
	first := neighbors.Entries[0]
	assert.Equal(t, "10.0.0.2", first.Address)
	assert.Equal(t, "0", first.Idle)
	assert.Equal(t, "1/0", first.UpDown)
	assert.Equal(t, "3w2d17h", first.LastChange)
	assert.Equal(t, "9", first.HelloInterval)
	assert.Equal(t, "22841/22840", first.HelloTxRx)
	assert.Equal(t, "1204", first.MsgRcvd)
}

func TestMPLSInterfaces(t *testing.T) {
	out := `Interface        State       Administrative groups (x: extended)
ge-0/0/0.0       Up          <none>
ge-0/0/1.0       Up          gold silver
ge-0/0/2.0       Dn`
	interfaces := MPLSInterfaces(netdiff.NewSegment(out))

	require.Len(t, interfaces.Entries, 3)
	assert.Equal(t, "ge-0/0/0.0", interfaces.Entries[0].Interface)
	assert.Equal(t, "<none>", interfaces.Entries[0].AdminGroups)
	// 多词管理组按原样合并。
	assert.Equal(t, "gold silver", interfaces.Entries[1].AdminGroups)
	// 管理组列可整体缺席。
	assert.Equal(t, "", interfaces.Entries[2].AdminGroups)
	assert.Equal(t, "Dn", interfaces.Entries[2].State)
}
