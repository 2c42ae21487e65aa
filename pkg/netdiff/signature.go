package netdiff

import (
	"regexp"
	"strconv"
	"strings"
)

// Signature identifies one slice of transcript to extract: the literal
// command text (including any pipe-filter suffix), the occurrence index when
// the same command appears more than once, and the matching mode.
//
// Matching is case-insensitive and tolerant of arbitrary horizontal
// whitespace between words and around pipe symbols. Every signature is
// anchored to end-of-line so that a bare command never matches the prefix of
// a longer, filtered variant of the same command ("show rsvp session" must
// not match "show rsvp session | no-more").
type Signature struct {
	Text       string // canonical command text, e.g. "show arp no-resolve | no-more"
	Occurrence int    // 1-based occurrence index; 0 means first
	Filtered   bool   // true when the command carries trailing pipe filters
}

// NewSignature 构造首次出现的命令签名；Filtered 由命令文本推导。
func NewSignature(text string) Signature {
	return Signature{
		Text:       text,
		Occurrence: 1,
		Filtered:   strings.Contains(text, "|"),
	}
}

// Nth returns a copy of the signature selecting the nth occurrence.
func (s Signature) Nth(n int) Signature {
	s.Occurrence = n
	return s
}

// Pattern compiles the signature into its transcript-matching form.
// Tokens are joined with `\s+`, pipe symbols with `\s*` on both sides, and
// the whole pattern is anchored to end-of-line so it cannot match inside a
// longer, unrelated command line.
func (s Signature) Pattern() *regexp.Regexp {
	tokens := strings.Fields(s.Text)
	var b strings.Builder
	b.WriteString(`(?mi)`)
	for i, tok := range tokens {
		if i > 0 {
			if tok == "|" || tokens[i-1] == "|" {
				b.WriteString(`\s*`)
			} else {
				b.WriteString(`\s+`)
			}
		}
		if tok == "|" {
			b.WriteString(`\|`)
		} else {
			b.WriteString(regexp.QuoteMeta(tok))
		}
	}
	b.WriteString(`[ \t]*$`)
	return regexp.MustCompile(b.String())
}

// String 实现 fmt.Stringer，用于日志与报错。
func (s Signature) String() string {
	if s.Occurrence > 1 {
		return s.Text + " (#" + strconv.Itoa(s.Occurrence) + ")"
	}
	return s.Text
}
