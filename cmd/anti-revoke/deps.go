package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/antirevoke/anti-revoke/internal/config"
	"github.com/antirevoke/anti-revoke/internal/exitcodes"
	"github.com/antirevoke/anti-revoke/internal/trace"
	"github.com/antirevoke/anti-revoke/internal/ui"
	"github.com/antirevoke/anti-revoke/internal/update"
)

// UpdateChecker abstracts the update service for testability.
type UpdateChecker interface {
	Check(ctx context.Context) update.Result
}

// Deps holds the injectable collaborators of check-update.
type Deps struct {
	Cfg       config.Config
	Printer   ui.Printer
	ErrOutput io.Writer
	Log       *trace.Logger
	Checker   UpdateChecker
}

// Close flushes the trace log.
func (d *Deps) Close() {
	_ = d.Log.Close()
}

// newDeps builds the production checker from flags and config. The trace log
// always opens; a log file that cannot be created only costs the file.
func newDeps(noBrowser bool) (*Deps, error) {
	cfg := loadCfg()
	p := getPrinter()

	log := openTrace(cfg.HomeDir, flagDebug, os.Stderr)

	checker, err := update.New(update.Options{
		LocalVersion: Version,
		RepoURL:      config.RepoURL,
		Endpoints: update.Endpoints{
			BridgeHost:  cfg.BridgeHost,
			BridgePath:  cfg.BridgePath,
			DirectHost:  cfg.DirectHost,
			ReleasePath: cfg.ReleasePath,
		},
		Transport: update.NewHTTPTransport(cfg.Timeout, "anti-revoke/"+Version),
		Log:       log,
		Prompter:  newPrompter(p),
		Opener:    newOpener(noBrowser),
	})
	if err != nil {
		_ = log.Close()
		return nil, exitcodes.WrapError(exitcodes.GeneralError, "failed to initialize updater", err)
	}

	return &Deps{
		Cfg:       cfg,
		Printer:   p,
		ErrOutput: os.Stderr,
		Log:       log,
		Checker:   checker,
	}, nil
}

// openTrace opens the trace log under homeDir. With debug set, lines are
// mirrored to errOut and an open failure is reported there.
func openTrace(homeDir string, debug bool, errOut io.Writer) *trace.Logger {
	var mirror io.Writer
	if debug {
		mirror = errOut
	}
	log, err := trace.New(trace.Options{HomeDir: homeDir, Mirror: mirror})
	if err != nil && debug {
		fmt.Fprintln(errOut, exitcodes.WrapError(exitcodes.GeneralError, "trace log unavailable", err))
	}
	return log
}

// newPrompter returns nil when no prompt may be shown: structured output
// and --non-interactive both report only. --yes still accepts.
func newPrompter(p ui.Printer) update.Prompter {
	if flagYes {
		return ui.NewDialogPrompter(true)
	}
	if p.Structured() || flagNonInteractive {
		return nil
	}
	return ui.NewDialogPrompter(false)
}

func newOpener(noBrowser bool) update.Opener {
	if noBrowser {
		return nil
	}
	return ui.NewBrowserOpener()
}
