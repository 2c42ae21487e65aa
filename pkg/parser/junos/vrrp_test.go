package junos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybbq/netdiff/domain/vrrp"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

const vrrpOutput = `Interface     State       Group   VR state       VR Mode    Type   Address
ge-0/0/0.0    up          10      master         Active     lcl    10.0.0.2
                                                            vip    10.0.0.1
ge-0/0/1.0    up          20      backup         Active     lcl    10.1.0.3`

func TestVRRP(t *testing.T) {
	summary := VRRP(netdiff.NewSegment(vrrpOutput))

	require.Len(t, summary.Entries, 2)

	first := summary.Entries[0]
	assert.Equal(t, "ge-0/0/0.0", first.Interface)
	assert.Equal(t, 10, first.Group)
	assert.Equal(t, "master", first.VRState)
	// 主行自带首地址，续行追加第二个。
	assert.Equal(t, []vrrp.Address{
		{Type: "lcl", Address: "10.0.0.2"},
		{Type: "vip", Address: "10.0.0.1"},
	}, first.Addresses)

	second := summary.Entries[1]
	assert.Equal(t, 20, second.Group)
	require.Len(t, second.Addresses, 1)
}

func TestVRRP_ContinuationWithoutOpenRecordIsDropped(t *testing.T) {
	out := `                                                            vip    10.0.0.1
ge-0/0/0.0    up          10      master         Active     lcl    10.0.0.2`
	summary := VRRP(netdiff.NewSegment(out))
	require.Len(t, summary.Entries, 1)
	require.Len(t, summary.Entries[0].Addresses, 1)
}

func TestVRRP_TailFlush(t *testing.T) {
	// 最后一条记录必须在输入耗尽时落盘。
	out := `ge-0/0/0.0    up          10      master         Active     lcl    10.0.0.2
                                                            vip    10.0.0.1`
	summary := VRRP(netdiff.NewSegment(out))
	require.Len(t, summary.Entries, 1)
	assert.Len(t, summary.Entries[0].Addresses, 2)
}

func TestVRRP_Blank(t *testing.T) {
	assert.Empty(t, VRRP(netdiff.Segment{}).Entries)
}
