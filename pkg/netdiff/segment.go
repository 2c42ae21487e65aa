package netdiff

import "strings"

// Segment is the output text belonging to one specific command occurrence,
// prompt and command lines removed. A Segment is created once per
// (transcript, signature) pair and never mutated afterwards.
//
// "Command not found in transcript" is a normal terminal state, represented
// by the zero value (Found == false), never by an error.
type Segment struct {
	Text  string
	Found bool
}

// NewSegment 构造一个存在的 Segment。
func NewSegment(text string) Segment {
	return Segment{Text: text, Found: true}
}

// Absent reports whether the command was not found in the transcript.
func (s Segment) Absent() bool {
	return !s.Found
}

// Blank reports whether the segment carries no usable body: absent, empty,
// or whitespace only. Parsers return their zero-value collection for blank
// segments.
func (s Segment) Blank() bool {
	return !s.Found || strings.TrimSpace(s.Text) == ""
}

// Lines 按行拆分 segment 文本；absent 时返回 nil。
func (s Segment) Lines() []string {
	if s.Blank() {
		return nil
	}
	return strings.Split(s.Text, "\n")
}
