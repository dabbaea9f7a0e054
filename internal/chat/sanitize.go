package chat

import (
	"regexp"
	"strings"
)

// The model is told not to use markdown or emoji, but it does anyway often
// enough that the reply is scrubbed before display.
var (
	markdownMarkers = regexp.MustCompile(`\*\*|\*|###|##|#`)
	emojiRunes      = regexp.MustCompile(`[\x{1F600}-\x{1F64F}]|[\x{1F300}-\x{1F5FF}]|[\x{1F680}-\x{1F6FF}]|[\x{1F1E0}-\x{1F1FF}]|[\x{2600}-\x{26FF}]|[\x{2700}-\x{27BF}]`)
)

// Sanitize strips markdown emphasis and heading markers plus emoji code
// points from a model reply and trims surrounding whitespace.
func Sanitize(reply string) string {
	reply = markdownMarkers.ReplaceAllString(reply, "")
	reply = emojiRunes.ReplaceAllString(reply, "")
	return strings.TrimSpace(reply)
}
