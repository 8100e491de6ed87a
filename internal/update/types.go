package update

// ReleaseInfo is the subset of a GitHub release the checker cares about.
// It only exists for the duration of a single check.
type ReleaseInfo struct {
	TagName string `json:"tag_name" yaml:"tag_name"`
	HTMLURL string `json:"html_url" yaml:"html_url"`
	Body    string `json:"body" yaml:"body"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"` // informational only
}

// Disposition is the final verdict of a parse.
type Disposition string

const (
	UpToDate        Disposition = "up_to_date"
	UpdateAvailable Disposition = "update_available"
	Invalid         Disposition = "invalid"
)

// Outcome is produced fresh by every parse and never persisted.
type Outcome struct {
	Disposition Disposition `json:"disposition" yaml:"disposition"`
	Reason      Reason      `json:"reason,omitempty" yaml:"reason,omitempty"`

	LocalVersion string `json:"local_version" yaml:"local_version"`
	Tag          string `json:"latest_version,omitempty" yaml:"latest_version,omitempty"`
	URL          string `json:"html_url,omitempty" yaml:"html_url,omitempty"`
	Changelog    string `json:"changelog,omitempty" yaml:"changelog,omitempty"`

	// Message is the operator-facing notification, set only for UpdateAvailable.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Valid reports whether the outcome is definitive (up to date or update available).
func (o Outcome) Valid() bool {
	return o.Disposition == UpToDate || o.Disposition == UpdateAvailable
}

// Source names the retrieval attempt that produced a payload.
type Source string

const (
	SourceNone   Source = ""
	SourceBridge Source = "bridge"
	SourceDirect Source = "direct"
)

// Result holds the result of a full update check.
type Result struct {
	OK       bool    `json:"ok" yaml:"ok"`
	Source   Source  `json:"source,omitempty" yaml:"source,omitempty"`
	Outcome  Outcome `json:"outcome" yaml:"outcome"`
	Prompted bool    `json:"prompted" yaml:"prompted"`
	Accepted bool    `json:"accepted" yaml:"accepted"`
}
