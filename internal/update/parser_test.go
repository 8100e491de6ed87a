package update

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/antirevoke/anti-revoke/internal/trace"
)

const testRepoURL = "https://github.com/antirevoke/anti-revoke"

func releaseJSON(t *testing.T, fields map[string]any) string {
	t.Helper()
	data, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal release: %v", err)
	}
	return string(data)
}

func validRelease(tag string) map[string]any {
	return map[string]any{
		"tag_name": tag,
		"html_url": testRepoURL + "/releases/tag/" + tag,
		"body":     "Highlights\r\n\r\nChange log\r\n- fix bug\r\n\r\nThanks",
	}
}

func newTestParser(local string) (*Parser, *trace.Recorder) {
	rec := &trace.Recorder{}
	return &Parser{LocalVersion: local, RepoURL: testRepoURL, Log: rec}, rec
}

func TestParse_UpdateAvailable(t *testing.T) {
	p, rec := newTestParser("1.0.0")
	out := p.Parse(releaseJSON(t, validRelease("9.9.9")))

	if out.Disposition != UpdateAvailable {
		t.Fatalf("Disposition = %q, want %q (reason %q)", out.Disposition, UpdateAvailable, out.Reason)
	}
	if out.Tag != "9.9.9" {
		t.Errorf("Tag = %q, want 9.9.9", out.Tag)
	}
	if out.URL != testRepoURL+"/releases/tag/9.9.9" {
		t.Errorf("URL = %q", out.URL)
	}
	if out.Changelog != "Change log\r\n- fix bug\n\n" {
		t.Errorf("Changelog = %q", out.Changelog)
	}
	for _, want := range []string{
		"A new version has been released.",
		"Current version: 1.0.0",
		"Latest version: 9.9.9",
		"Change log\r\n- fix bug\n\n",
		"Do you want to go to GitHub to download the latest version?",
	} {
		if !strings.Contains(out.Message, want) {
			t.Errorf("Message missing %q:\n%s", want, out.Message)
		}
	}
	if !rec.Contains("INFO", "Need to update. Local: 1.0.0 (001000000) Latest: 9.9.9 (009009009)") {
		t.Errorf("expected 'Need to update' trace line with packed versions, got %+v", rec.Entries())
	}
}

func TestParse_UpToDate(t *testing.T) {
	tests := []struct {
		name  string
		local string
		tag   string
		trace string
	}{
		{name: "equal", local: "1.2.3", tag: "1.2.3", trace: "Local: 1.2.3 (001002003) Latest: 1.2.3 (001002003)"},
		{name: "local ahead", local: "2.0.0", tag: "1.9.9", trace: "Local: 2.0.0 (002000000) Latest: 1.9.9 (001009009)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newTestParser(tt.local)
			out := p.Parse(releaseJSON(t, validRelease(tt.tag)))
			if out.Disposition != UpToDate {
				t.Fatalf("Disposition = %q, want %q (reason %q)", out.Disposition, UpToDate, out.Reason)
			}
			if out.Message != "" || out.URL != "" {
				t.Errorf("UpToDate outcome carries notification data: %+v", out)
			}
			if !rec.Contains("INFO", "No need to update. "+tt.trace) {
				t.Errorf("missing trace line %q in %+v", tt.trace, rec.Entries())
			}
		})
	}
}

func TestParse_NoChangelogMarker(t *testing.T) {
	p, _ := newTestParser("1.0.0")
	rel := validRelease("1.0.1")
	rel["body"] = "Just some notes"
	out := p.Parse(releaseJSON(t, rel))
	if out.Disposition != UpdateAvailable {
		t.Fatalf("Disposition = %q", out.Disposition)
	}
	want := "A new version has been released.\n\nCurrent version: 1.0.0\nLatest version: 1.0.1\n\nDo you want to go to GitHub to download the latest version?\n"
	if out.Message != want {
		t.Errorf("Message = %q, want %q", out.Message, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    func(t *testing.T) string
		reason Reason
		log    string
	}{
		{
			name:   "not json",
			raw:    func(*testing.T) string { return "<html>rate limited</html>" },
			reason: ReasonMalformedPayload,
			log:    "JsonError",
		},
		{
			name:   "empty body",
			raw:    func(*testing.T) string { return "" },
			reason: ReasonMalformedPayload,
			log:    "JsonError",
		},
		{
			name: "missing tag_name",
			raw: func(t *testing.T) string {
				rel := validRelease("1.0.1")
				delete(rel, "tag_name")
				return releaseJSON(t, rel)
			},
			reason: ReasonMissingFields,
			log:    "fields invalid",
		},
		{
			name: "numeric body",
			raw: func(t *testing.T) string {
				rel := validRelease("1.0.1")
				rel["body"] = 42
				return releaseJSON(t, rel)
			},
			reason: ReasonMissingFields,
			log:    "fields invalid",
		},
		{
			name: "null html_url",
			raw: func(t *testing.T) string {
				rel := validRelease("1.0.1")
				rel["html_url"] = nil
				return releaseJSON(t, rel)
			},
			reason: ReasonMissingFields,
			log:    "fields invalid",
		},
		{
			name:   "array root",
			raw:    func(*testing.T) string { return `[{"tag_name":"1.0.1"}]` },
			reason: ReasonMissingFields,
			log:    "fields invalid",
		},
		{
			name: "untrusted url",
			raw: func(t *testing.T) string {
				rel := validRelease("9.9.9")
				rel["html_url"] = "https://evil.example.com/antirevoke/anti-revoke/releases/tag/9.9.9"
				return releaseJSON(t, rel)
			},
			reason: ReasonUntrustedURL,
			log:    "html_url field invalid",
		},
		{
			name: "repo url embedded but not prefix",
			raw: func(t *testing.T) string {
				rel := validRelease("9.9.9")
				rel["html_url"] = "https://evil.example.com/?" + testRepoURL
				return releaseJSON(t, rel)
			},
			reason: ReasonUntrustedURL,
			log:    "html_url field invalid",
		},
		{
			name:   "v-prefixed tag",
			raw:    func(t *testing.T) string { return releaseJSON(t, validRelease("v1.0.1")) },
			reason: ReasonInvalidVersionFormat,
			log:    "Version format invalid",
		},
		{
			name:   "two component tag",
			raw:    func(t *testing.T) string { return releaseJSON(t, validRelease("1.1")) },
			reason: ReasonInvalidVersionFormat,
			log:    "Version format invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newTestParser("1.0.0")
			out := p.Parse(tt.raw(t))
			if out.Disposition != Invalid {
				t.Fatalf("Disposition = %q, want %q", out.Disposition, Invalid)
			}
			if out.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", out.Reason, tt.reason)
			}
			if out.Valid() {
				t.Error("Valid() = true for invalid outcome")
			}
			if !rec.Contains("WARN", tt.log) {
				t.Errorf("expected WARN trace containing %q, got %+v", tt.log, rec.Entries())
			}
		})
	}
}

func TestParse_InvalidLocalVersion(t *testing.T) {
	p, _ := newTestParser("dev")
	out := p.Parse(releaseJSON(t, validRelease("1.0.0")))
	if out.Reason != ReasonInvalidVersionFormat {
		t.Errorf("Reason = %q, want %q", out.Reason, ReasonInvalidVersionFormat)
	}
}

func TestParse_MessageFieldIsWarningOnly(t *testing.T) {
	p, rec := newTestParser("1.0.0")
	rel := validRelease("1.0.0")
	rel["message"] = "API rate limit exceeded soon"
	out := p.Parse(releaseJSON(t, rel))

	if out.Disposition != UpToDate {
		t.Fatalf("Disposition = %q, want %q", out.Disposition, UpToDate)
	}
	if !rec.Contains("WARN", "API rate limit exceeded soon") {
		t.Error("message field was not logged as a warning")
	}
}

func TestParse_MessageOnlyPayload(t *testing.T) {
	p, rec := newTestParser("1.0.0")
	out := p.Parse(`{"message":"Not Found","documentation_url":"https://docs.github.com"}`)
	if out.Reason != ReasonMissingFields {
		t.Errorf("Reason = %q, want %q", out.Reason, ReasonMissingFields)
	}
	if !rec.Contains("WARN", "Not Found") {
		t.Error("message field was not logged")
	}
}

func TestParse_NilLogger(t *testing.T) {
	p := &Parser{LocalVersion: "1.0.0", RepoURL: testRepoURL}
	out := p.Parse("{")
	if out.Reason != ReasonMalformedPayload {
		t.Errorf("Reason = %q, want %q", out.Reason, ReasonMalformedPayload)
	}
}

func TestParse_WideComponentIsFlagged(t *testing.T) {
	p, rec := newTestParser("1.0.0")
	out := p.Parse(releaseJSON(t, validRelease("0.1000.0")))
	if out.Disposition != UpToDate {
		t.Fatalf("Disposition = %q, want %q", out.Disposition, UpToDate)
	}
	if !rec.Contains("WARN", "above 999") {
		t.Error("expected warning about wide version component")
	}
}
