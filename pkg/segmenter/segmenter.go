// Package segmenter locates a command's output inside an undifferentiated
// transcript of prompts and text. The only structural markers a transcript
// guarantees are prompt lines matching the prompt grammar; a command line
// immediately precedes its output and the next prompt line ends it.
package segmenter

import (
	"strings"

	"github.com/honeybbq/netdiff/pkg/netdiff"
	"github.com/honeybbq/netdiff/pkg/prompt"
)

// Extract returns the output belonging to the signature's occurrence of the
// command, with the command line, the terminating prompt line, and leading/
// trailing blank lines stripped. "Not found" is a normal outcome reported as
// an absent Segment, never an error: fewer than n occurrences, a command
// line at end-of-transcript, and a command with no body lines all yield
// absent. Extract is pure; it never mutates shared state.
func Extract(transcript string, sig netdiff.Signature) netdiff.Segment {
	locs := sig.Pattern().FindAllStringIndex(transcript, -1)
	n := sig.Occurrence
	if n < 1 {
		n = 1
	}
	if len(locs) < n {
		return netdiff.Segment{}
	}

	// 候选输出从命令行之后的下一行开始。
	start := locs[n-1][1]
	nl := strings.IndexByte(transcript[start:], '\n')
	if nl < 0 {
		// Command line is the last line; no body can follow.
		return netdiff.Segment{}
	}
	start += nl + 1

	// 收集到下一个提示符行为止（或 transcript 结尾）。
	rest := transcript[start:]
	if loc := prompt.Pattern.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	body := strings.Split(rest, "\n")

	// Trim blank lines on both ends so the segment never carries prompt
	// padding or partial next-command residue.
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	if len(body) == 0 {
		return netdiff.Segment{}
	}
	return netdiff.NewSegment(strings.Join(body, "\n"))
}

// Commands lists the command lines typed at prompts throughout a
// transcript, in order of appearance. Empty prompt lines are skipped.
func Commands(transcript string) []string {
	var commands []string
	for _, line := range strings.Split(transcript, "\n") {
		if !prompt.IsPrompt(line) {
			continue
		}
		cmd := strings.TrimSpace(strings.TrimLeft(prompt.After(line), "$> "))
		if cmd != "" {
			commands = append(commands, cmd)
		}
	}
	return commands
}
