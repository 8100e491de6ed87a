package update

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Logger is the trace sink the updater reports to.
type Logger interface {
	TraceInfo(msg string)
	TraceWarn(msg string)
}

// Parser turns a raw release payload into an Outcome. It performs no I/O.
type Parser struct {
	LocalVersion string
	RepoURL      string // html_url must start with this
	Log          Logger
}

// Parse validates the payload and decides whether an update is available.
func (p *Parser) Parse(raw string) Outcome {
	out := Outcome{LocalVersion: p.LocalVersion}

	var probe json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		p.logger().TraceWarn("[Updater] Parse response failed. JsonError: " + err.Error() + " Response: " + excerpt(raw))
		return out.invalid(ReasonMalformedPayload)
	}
	root := gjson.Parse(raw)

	if msg := root.Get("message"); msg.Type == gjson.String {
		p.logger().TraceWarn("[Updater] Response has a message. message: " + msg.Str)
	}

	info, ok := releaseFields(root)
	if !ok {
		p.logger().TraceWarn("[Updater] Response fields invalid.")
		return out.invalid(ReasonMissingFields)
	}
	out.Tag = info.TagName

	if p.RepoURL == "" || !strings.HasPrefix(info.HTMLURL, p.RepoURL) {
		p.logger().TraceWarn("[Updater] html_url field invalid. html_url: " + info.HTMLURL)
		return out.invalid(ReasonUntrustedURL)
	}

	ord, err := CompareVersions(p.LocalVersion, info.TagName)
	if err != nil {
		p.logger().TraceWarn(fmt.Sprintf("[Updater] Version format invalid. Local: %s Latest: %s (%v)", p.LocalVersion, info.TagName, err))
		return out.invalid(ReasonInvalidVersionFormat)
	}
	if EncodingDisagrees(p.LocalVersion, info.TagName) {
		p.logger().TraceWarn("[Updater] Version component above 999, ordering may be wrong. Local: " + p.LocalVersion + " Latest: " + info.TagName)
	}

	if ord != Newer {
		p.logger().TraceInfo("[Updater] No need to update. " + versionPair(p.LocalVersion, info.TagName))
		out.Disposition = UpToDate
		return out
	}

	p.logger().TraceInfo("[Updater] Need to update. " + versionPair(p.LocalVersion, info.TagName))
	out.Disposition = UpdateAvailable
	out.URL = info.HTMLURL
	out.Changelog = ExtractChangelog(info.Body)
	out.Message = NotificationMessage(p.LocalVersion, info.TagName, out.Changelog)
	return out
}

// releaseFields extracts the required string fields; any missing or
// non-string field fails the whole payload.
func releaseFields(root gjson.Result) (ReleaseInfo, bool) {
	tag := root.Get("tag_name")
	url := root.Get("html_url")
	body := root.Get("body")
	if tag.Type != gjson.String || url.Type != gjson.String || body.Type != gjson.String {
		return ReleaseInfo{}, false
	}
	info := ReleaseInfo{TagName: tag.Str, HTMLURL: url.Str, Body: body.Str}
	if msg := root.Get("message"); msg.Type == gjson.String {
		info.Message = msg.Str
	}
	return info, true
}

// NotificationMessage composes the text shown in the update prompt.
// changelog is expected to carry its own trailing blank line.
func NotificationMessage(local, latest, changelog string) string {
	var b strings.Builder
	b.WriteString("A new version has been released.\n")
	b.WriteString("\n")
	b.WriteString("Current version: " + local + "\n")
	b.WriteString("Latest version: " + latest + "\n")
	b.WriteString("\n")
	b.WriteString(changelog)
	b.WriteString("Do you want to go to GitHub to download the latest version?\n")
	return b.String()
}

func (o Outcome) invalid(r Reason) Outcome {
	o.Disposition = Invalid
	o.Reason = r
	return o
}

func (p *Parser) logger() Logger {
	if p.Log == nil {
		return nopLogger{}
	}
	return p.Log
}

type nopLogger struct{}

func (nopLogger) TraceInfo(string) {}
func (nopLogger) TraceWarn(string) {}

// versionPair formats both versions with their packed encodings, e.g.
// "Local: 1.0.0 (001000000) Latest: 1.0.1 (001000001)".
func versionPair(local, latest string) string {
	return "Local: " + local + " (" + packed(local) + ") Latest: " + latest + " (" + packed(latest) + ")"
}

func packed(s string) string {
	vt, err := ParseVersionTriple(s)
	if err != nil {
		return "?"
	}
	return vt.Packed()
}
