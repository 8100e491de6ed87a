package update

import "strings"

const (
	changelogMarker = "Change log"
	// GitHub release bodies use CRLF line endings.
	changelogEnd = "\r\n\r\n"
)

// ExtractChangelog slices the "Change log" section out of release notes.
// The section runs from the marker to the first blank line after it, or to
// the end of the text. The result ends with a blank line so it can be
// dropped straight into a notification. Returns "" when there is no marker.
func ExtractChangelog(body string) string {
	begin := strings.Index(body, changelogMarker)
	if begin < 0 {
		return ""
	}
	section := body[begin:]
	if end := strings.Index(section, changelogEnd); end >= 0 {
		section = section[:end]
	}
	return section + "\n\n"
}
