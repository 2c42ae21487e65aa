package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybbq/netdiff/pkg/netdiff"
)

const transcript = `admin@mx80-lab> show arp no-resolve | no-more
MAC Address       Address         Interface     Flags
00:11:22:33:44:55 10.0.0.1        ge-0/0/0.0    none
Total entries: 1

admin@mx80-lab> show rsvp session
Ingress RSVP: 1 sessions
To              From            State Rt Style Labelin Labelout LSPname
10.0.0.2        10.0.0.1        Up     0  1 FF       -   299776 lsp-a
Total 1 displayed, Up 1, Down 0

admin@mx80-lab> show rsvp session
Ingress RSVP: 2 sessions
To              From            State Rt Style Labelin Labelout LSPname
10.0.0.2        10.0.0.1        Up     0  1 FF       -   299776 lsp-a
10.0.0.3        10.0.0.1        Up     0  1 FF       -   299777 lsp-b
Total 2 displayed, Up 2, Down 0

admin@mx80-lab> show version
`

func TestExtract_Found(t *testing.T) {
	seg := Extract(transcript, netdiff.NewSignature("show arp no-resolve | no-more"))
	require.True(t, seg.Found)
	lines := seg.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "MAC Address       Address         Interface     Flags", lines[0])
	assert.Equal(t, "Total entries: 1", lines[2])
}

func TestExtract_TrimsBlankEdges(t *testing.T) {
	seg := Extract(transcript, netdiff.NewSignature("show arp no-resolve | no-more"))
	require.True(t, seg.Found)
	// 段首尾不得携带空行。
	assert.NotEqual(t, "", seg.Lines()[0])
	assert.NotEqual(t, "", seg.Lines()[len(seg.Lines())-1])
}

func TestExtract_NthOccurrence(t *testing.T) {
	first := Extract(transcript, netdiff.NewSignature("show rsvp session"))
	second := Extract(transcript, netdiff.NewSignature("show rsvp session").Nth(2))

	require.True(t, first.Found)
	require.True(t, second.Found)
	assert.Contains(t, first.Text, "Ingress RSVP: 1 sessions")
	assert.Contains(t, second.Text, "Ingress RSVP: 2 sessions")
	assert.Contains(t, second.Text, "lsp-b")
	assert.NotContains(t, first.Text, "lsp-b")
}

func TestExtract_AbsentIsNormal(t *testing.T) {
	missing := Extract(transcript, netdiff.NewSignature("show bgp summary | no-more"))
	assert.True(t, missing.Absent())

	tooMany := Extract(transcript, netdiff.NewSignature("show rsvp session").Nth(3))
	assert.True(t, tooMany.Absent())
}

func TestExtract_CommandAtEndOfTranscript(t *testing.T) {
	// 命令行是末行：没有可归属的输出。
	seg := Extract("admin@mx80-lab> show arp no-resolve | no-more", netdiff.NewSignature("show arp no-resolve | no-more"))
	assert.True(t, seg.Absent())
}

func TestExtract_BareSignatureSkipsFilteredVariant(t *testing.T) {
	text := "admin@r1> show rsvp session | no-more\nIngress RSVP: 9 sessions\n\nadmin@r1> show rsvp session\nIngress RSVP: 1 sessions\n\nadmin@r1>\n"
	seg := Extract(text, netdiff.NewSignature("show rsvp session"))
	require.True(t, seg.Found)
	assert.Contains(t, seg.Text, "Ingress RSVP: 1 sessions")
}

func TestCommands(t *testing.T) {
	got := Commands(transcript)
	assert.Equal(t, []string{
		"show arp no-resolve | no-more",
		"show rsvp session",
		"show rsvp session",
		"show version",
	}, got)
}
