// Package prompt recognizes the shell prompt lines that delimit one
// command's output from the next inside a captured terminal transcript.
// A prompt line looks like "admin@mx80-lab>" — any non-whitespace run,
// a literal '@', another non-whitespace run ending in '>'.
package prompt

import "regexp"

// linePattern 只在行首求值；'@' 与结尾 '>' 是必需的字面量。
var linePattern = regexp.MustCompile(`^\S+@\S+>`)

// Pattern is the multi-line form of the prompt grammar, usable for scanning
// whole transcripts. Kept in sync with linePattern.
var Pattern = regexp.MustCompile(`(?m)^\S+@\S+>`)

// IsPrompt reports whether a single line of text is a shell prompt line.
// The predicate has no side effects and looks only at the line start.
func IsPrompt(line string) bool {
	return linePattern.MatchString(line)
}

// After returns the remainder of a prompt line following the prompt itself,
// or "" when the line is not a prompt line. Used to recover the command
// text typed at the prompt.
func After(line string) string {
	loc := linePattern.FindStringIndex(line)
	if loc == nil {
		return ""
	}
	return line[loc[1]:]
}
