package junos

import (
	"regexp"
	"strings"

	"github.com/honeybbq/netdiff/domain/session"
	"github.com/honeybbq/netdiff/pkg/netdiff"
)

var (
	sessionSectionPattern = regexp.MustCompile(`(?i)^(Ingress|Egress|Transit)\s+(?:RSVP|LSP):\s*(\d+)\s+sessions?`)
	sessionTotalPattern   = regexp.MustCompile(`(?i)^Total\s+(\d+)\s+displayed,\s*Up\s+(\d+),\s*Down\s+(\d+)`)
	sessionGroupPattern   = regexp.MustCompile(`(?i)^P2MP\s+name:\s*(\S+?),\s*P2MP\s+branch\s+count:\s*(\d+)`)
)

// sessionRecord matches the nine-column record row shared by the session
// command family: To From State Rt Style Labelin Labelout LSPname, where
// Style prints as two tokens ("1 FF"). Non-matching lines are inert.
func sessionRecord(line string) (session.Record, bool) {
	fields := strings.Fields(line)
	if len(fields) != 9 || !looksLikeAddress(fields[0]) {
		return session.Record{}, false
	}
	return session.Record{
		To:       fields[0],
		From:     fields[1],
		State:    fields[2],
		Rt:       fields[3],
		Style:    fields[4] + " " + fields[5],
		LabelIn:  fields[6],
		LabelOut: fields[7],
		LSPName:  fields[8],
	}, true
}

// Sessions parses the sectioned form of the session command family
// ("show rsvp session", "show mpls lsp", "show mpls lsp p2mp", ...).
// Section headers open a direction, "Total N displayed" trailers close its
// totals, and P2MP name lines open groups inside the current section.
// Records seen before any section header are dropped.
func Sessions(seg netdiff.Segment) *session.Report {
	report := session.NewReport()
	if seg.Blank() {
		return report
	}
	var current *session.Section
	var group *session.Group
	flushGroup := func() {
		if group != nil && current != nil {
			current.Groups = append(current.Groups, *group)
		}
		group = nil
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := sessionSectionPattern.FindStringSubmatch(line); m != nil {
			flushGroup()
			current = &session.Section{
				TotalSessions: atoi(m[2]),
				Records:       make([]session.Record, 0),
			}
			switch strings.ToLower(m[1]) {
			case "ingress":
				report.Ingress = current
			case "egress":
				report.Egress = current
			default:
				report.Transit = current
			}
			continue
		}
		if m := sessionTotalPattern.FindStringSubmatch(line); m != nil {
			flushGroup()
			if current != nil {
				current.TotalDisplayed = atoi(m[1])
				current.TotalUp = atoi(m[2])
				current.TotalDown = atoi(m[3])
			}
			continue
		}
		if m := sessionGroupPattern.FindStringSubmatch(line); m != nil {
			flushGroup()
			if current != nil {
				group = &session.Group{
					Name:        m[1],
					BranchCount: atoi(m[2]),
					Records:     make([]session.Record, 0),
				}
			}
			continue
		}
		if rec, ok := sessionRecord(line); ok {
			switch {
			case group != nil:
				group.Records = append(group.Records, rec)
			case current != nil:
				current.Records = append(current.Records, rec)
			}
		}
	}
	flushGroup()
	return report
}

// FilteredSessions parses the pipe-filtered variants ("| match DN"):
// section headers and totals are gone, so surviving record rows collect
// into a flat top-level list.
func FilteredSessions(seg netdiff.Segment) *session.Report {
	report := session.NewFlatReport()
	if seg.Blank() {
		return report
	}
	for _, raw := range seg.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if rec, ok := sessionRecord(line); ok {
			report.Records = append(report.Records, rec)
		}
	}
	return report
}
