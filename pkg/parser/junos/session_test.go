package junos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybbq/netdiff/pkg/netdiff"
)

const rsvpSessionOutput = `Ingress RSVP: 2 sessions
To              From            State Rt Style Labelin Labelout LSPname
10.255.0.2      10.255.0.1      Up     0  1 FF       -   299776 lsp-to-pe2
10.255.0.3      10.255.0.1      Dn     0  1 SE       -        - lsp-to-pe3
Total 2 displayed, Up 1, Down 1

Egress RSVP: 1 sessions
To              From            State Rt Style Labelin Labelout LSPname
10.255.0.1      10.255.0.2      Up     0  1 FF   299776        - lsp-from-pe2
Total 1 displayed, Up 1, Down 0

Transit RSVP: 0 sessions
Total 0 displayed, Up 0, Down 0`

func TestSessions_Sectioned(t *testing.T) {
	report := Sessions(netdiff.NewSegment(rsvpSessionOutput))

	require.NotNil(t, report.Ingress)
	require.NotNil(t, report.Egress)
	require.NotNil(t, report.Transit)

	// 各段的四个计数相互独立，逐字记录，绝不由记录数重算。
	assert.Equal(t, 2, report.Ingress.TotalSessions)
	assert.Equal(t, 2, report.Ingress.TotalDisplayed)
	assert.Equal(t, 1, report.Ingress.TotalUp)
	assert.Equal(t, 1, report.Ingress.TotalDown)

	require.Len(t, report.Ingress.Records, 2)
	first := report.Ingress.Records[0]
	assert.Equal(t, "10.255.0.2", first.To)
	assert.Equal(t, "10.255.0.1", first.From)
	assert.Equal(t, "Up", first.State)
	assert.Equal(t, "0", first.Rt)
	assert.Equal(t, "1 FF", first.Style)
	assert.Equal(t, "-", first.LabelIn)
	assert.Equal(t, "299776", first.LabelOut)
	assert.Equal(t, "lsp-to-pe2", first.LSPName)

	require.Len(t, report.Egress.Records, 1)
	assert.Equal(t, "lsp-from-pe2", report.Egress.Records[0].LSPName)

	assert.Empty(t, report.Transit.Records)
	assert.Equal(t, 0, report.Transit.TotalSessions)
}

func TestSessions_TotalsIndependentOfRecordCount(t *testing.T) {
	// 头部声明 5 条但只打印 1 条：计数照抄，不做校正。
	out := `Ingress RSVP: 5 sessions
10.255.0.2      10.255.0.1      Up     0  1 FF       -   299776 lsp-a
Total 5 displayed, Up 4, Down 1`
	report := Sessions(netdiff.NewSegment(out))
	require.NotNil(t, report.Ingress)
	assert.Equal(t, 5, report.Ingress.TotalSessions)
	assert.Equal(t, 5, report.Ingress.TotalDisplayed)
	assert.Len(t, report.Ingress.Records, 1)
}

func TestSessions_RecordsBeforeSectionAreDropped(t *testing.T) {
	out := `10.255.0.9      10.255.0.1      Up     0  1 FF       -   299776 stray-lsp
Ingress RSVP: 1 sessions
10.255.0.2      10.255.0.1      Up     0  1 FF       -   299776 lsp-a
Total 1 displayed, Up 1, Down 0`
	report := Sessions(netdiff.NewSegment(out))
	require.NotNil(t, report.Ingress)
	require.Len(t, report.Ingress.Records, 1)
	assert.Equal(t, "lsp-a", report.Ingress.Records[0].LSPName)
}

func TestSessions_P2MPGroups(t *testing.T) {
	out := `Ingress LSP: 4 sessions
P2MP name: mcast-tree-1, P2MP branch count: 2
10.255.0.2      10.255.0.1      Up     0  1 FF       -   299776 branch-a
10.255.0.3      10.255.0.1      Up     0  1 FF       -   299777 branch-b
P2MP name: mcast-tree-2, P2MP branch count: 1
10.255.0.4      10.255.0.1      Dn     0  1 SE       -        - branch-c
Total 3 displayed, Up 2, Down 1`
	report := Sessions(netdiff.NewSegment(out))

	require.NotNil(t, report.Ingress)
	require.Len(t, report.Ingress.Groups, 2)
	assert.Empty(t, report.Ingress.Records)

	g1 := report.Ingress.Groups[0]
	assert.Equal(t, "mcast-tree-1", g1.Name)
	assert.Equal(t, 2, g1.BranchCount)
	require.Len(t, g1.Records, 2)

	g2 := report.Ingress.Groups[1]
	assert.Equal(t, "mcast-tree-2", g2.Name)
	require.Len(t, g2.Records, 1)
	assert.Equal(t, "branch-c", g2.Records[0].LSPName)

	// 汇总行归段，不归组。
	assert.Equal(t, 3, report.Ingress.TotalDisplayed)
}

func TestSessions_GroupFlushAtEndOfInput(t *testing.T) {
	out := `Ingress LSP: 1 sessions
P2MP name: mcast-tree-1, P2MP branch count: 1
10.255.0.2      10.255.0.1      Up     0  1 FF       -   299776 branch-a`
	report := Sessions(netdiff.NewSegment(out))
	require.NotNil(t, report.Ingress)
	require.Len(t, report.Ingress.Groups, 1)
	assert.Len(t, report.Ingress.Groups[0].Records, 1)
}

func TestSessions_Blank(t *testing.T) {
	report := Sessions(netdiff.Segment{})
	assert.Nil(t, report.Ingress)
	assert.Nil(t, report.Egress)
	assert.Nil(t, report.Transit)
	assert.Empty(t, report.Plain())
}

func TestFilteredSessions(t *testing.T) {
	out := `10.255.0.3      10.255.0.1      Dn     0  1 SE       -        - lsp-to-pe3
10.255.0.7      10.255.0.1      Dn     0  1 SE       -        - lsp-to-pe7`
	report := FilteredSessions(netdiff.NewSegment(out))

	assert.True(t, report.Flat)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "lsp-to-pe3", report.Records[0].LSPName)

	plain := report.Plain()
	entries, ok := plain["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 2)
}

func TestFilteredSessions_Blank(t *testing.T) {
	report := FilteredSessions(netdiff.Segment{})
	assert.True(t, report.Flat)
	assert.Empty(t, report.Records)
}
