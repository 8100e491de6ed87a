package update

import (
	"context"
	"errors"
)

// DialogTitle is the title of the update prompt.
const DialogTitle = "Anti-Revoke Plugin"

// Prompter asks the operator a blocking yes/no question.
type Prompter interface {
	Confirm(title, message string) bool
}

// Opener launches a URL, normally in the default browser.
type Opener interface {
	Open(url string) error
}

// Options configures a Checker.
type Options struct {
	LocalVersion string
	RepoURL      string
	Endpoints    Endpoints
	Transport    Transport
	Log          Logger
	Prompter     Prompter // nil means the prompt is always declined
	Opener       Opener
}

// Checker runs update checks. Construct one per process with New and share it;
// it holds no state between checks. Concurrent checks are independent, but
// callers should serialize them so prompts don't overlap.
type Checker struct {
	parser    *Parser
	retriever *Retriever
	log       Logger
	prompter  Prompter
	opener    Opener
}

// New creates a Checker. A nil Log discards trace output.
func New(opts Options) (*Checker, error) {
	if opts.Transport == nil {
		return nil, errors.New("update: transport is required")
	}
	if opts.RepoURL == "" {
		return nil, errors.New("update: repository URL is required")
	}
	log := opts.Log
	if log == nil {
		log = nopLogger{}
	}
	return &Checker{
		parser: &Parser{
			LocalVersion: opts.LocalVersion,
			RepoURL:      opts.RepoURL,
			Log:          log,
		},
		retriever: &Retriever{
			Transport: opts.Transport,
			Endpoints: opts.Endpoints,
			Log:       log,
		},
		log:      log,
		prompter: opts.Prompter,
		opener:   opts.Opener,
	}, nil
}

// CheckUpdate reports whether the check reached a definitive answer, either
// "up to date" or "update available". When an update is available the
// operator is prompted before CheckUpdate returns.
func (c *Checker) CheckUpdate(ctx context.Context) bool {
	return c.Check(ctx).OK
}

// Check runs bridge retrieval, falls back to the registry when the bridge
// yields nothing usable, and prompts on UpdateAvailable.
func (c *Checker) Check(ctx context.Context) Result {
	if body, err := c.retriever.ByBridge(ctx); err != nil {
		c.log.TraceWarn("[Updater] GetDataByBridge() failed, try GetDataDirectly().")
	} else {
		outcome := c.parser.Parse(body)
		if outcome.Valid() {
			c.log.TraceInfo("[Updater] ParseResponse() successed. (ByBridge)")
			return c.finish(SourceBridge, outcome)
		}
		c.log.TraceWarn("[Updater] ParseResponse() failed, try Directly. (ByBridge)")
	}

	body, err := c.retriever.Directly(ctx)
	if err != nil {
		c.log.TraceWarn("[Updater] GetDataDirectly() failed.")
		out := Outcome{Disposition: Invalid, LocalVersion: c.parser.LocalVersion}
		var fe *FetchError
		if errors.As(err, &fe) {
			out.Reason = fe.Reason
		}
		return Result{Outcome: out}
	}

	outcome := c.parser.Parse(body)
	if !outcome.Valid() {
		c.log.TraceWarn("[Updater] ParseResponse() failed. (Directly)")
		return Result{Source: SourceDirect, Outcome: outcome}
	}
	c.log.TraceInfo("[Updater] ParseResponse() successed. (Directly)")
	return c.finish(SourceDirect, outcome)
}

func (c *Checker) finish(src Source, outcome Outcome) Result {
	res := Result{OK: true, Source: src, Outcome: outcome}
	if outcome.Disposition != UpdateAvailable || c.prompter == nil {
		return res
	}

	res.Prompted = true
	res.Accepted = c.prompter.Confirm(DialogTitle, outcome.Message)
	if res.Accepted && c.opener != nil {
		if err := c.opener.Open(outcome.URL); err != nil {
			c.log.TraceWarn("[Updater] Open release page failed: " + err.Error())
		}
	}
	return res
}
