package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/bfd"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	bfdEntryPattern = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s+(\S+)\s*$`)
	bfdCountPattern = regexp.MustCompile(`(?i)^(\d+)\s+sessions?,\s*(\d+)\s+clients?`)
	bfdRatePattern  = regexp.MustCompile(`(?i)^Cumulative\s+transmit\s+rate\s+(\S+(?:\s+pps)?),\s*cumulative\s+receive\s+rate\s+(\S+(?:\s+pps)?)`)
)

// BFD parses "show bfd session" output. Summary counts and the cumulative
// rate line are carried verbatim, never recomputed from the entry rows.
func BFD(seg netdiff.Segment) *bfd.Sessions {
	sessions := bfd.NewSessions()
	if seg.Blank() {
		return sessions
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "Address") {
			continue
		}
		if m := bfdCountPattern.FindStringSubmatch(line); m != nil {
			sessions.Sessions = atoi(m[1])
			sessions.Clients = atoi(m[2])
			continue
		}
		if m := bfdRatePattern.FindStringSubmatch(line); m != nil {
			sessions.TransmitRate = m[1]
			sessions.ReceiveRate = m[2]
			continue
		}
		if m := bfdEntryPattern.FindStringSubmatch(line); m != nil && looksLikeAddress(m[1]) {
			sessions.Entries = append(sessions.Entries, bfd.Entry{
				Address:          m[1],
				State:            m[2],
				Interface:        m[3],
				DetectTime:       m[4],
				TransmitInterval: m[5],
				Multiplier:       m[6],
			})
		}
	}
	return sessions
}
