// Package junos contains the reference line-by-line parsers for the
// supported Junos show commands. Each parser scans its segment with a small
// explicit state (current record, current section, current group), skips
// header and legend lines, folds summary lines into totals, and flushes any
// still-open record at end of input. Lines that fit no recognized pattern
// in the current state are inert: they produce no record and no error.
package junos

import (
	"strconv"
	"strings"
)

// atoi 宽容地解析十进制整数；失败时返回 0（异常行是惰性的，不报错）。
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// splitProtoPref splits the bracketed "[PROTOCOL/NN]" notation on '/'.
// A missing preference component yields an empty string, not an error.
func splitProtoPref(token string) (protocol, preference string) {
	token = strings.TrimPrefix(token, "[")
	token = strings.TrimSuffix(token, "]")
	parts := strings.SplitN(token, "/", 2)
	protocol = parts[0]
	if len(parts) == 2 {
		preference = parts[1]
	}
	return protocol, preference
}

// indented reports whether a raw (untrimmed) line is a continuation
// candidate: it begins with horizontal whitespace.
func indented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// looksLikeAddress 粗略判断 token 是否为 IPv4/IPv6 地址或带前缀长度的网段。
func looksLikeAddress(token string) bool {
	return strings.Contains(token, ".") || strings.Contains(token, ":")
}
