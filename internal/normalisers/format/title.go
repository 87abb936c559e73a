package format

import (
	"regexp"
	"strings"
)

// wordStart matches a lowercase ASCII letter at the start of the string
// or directly after a space.
var wordStart = regexp.MustCompile(`( |^)[a-z]`)

// TitleCase lowercases s and then capitalises the first letter of every
// space-separated word: "started" becomes "Started", "REOPENED by bot"
// becomes "Reopened By Bot".
func TitleCase(s string) string {
	return wordStart.ReplaceAllStringFunc(strings.ToLower(s), strings.ToUpper)
}
