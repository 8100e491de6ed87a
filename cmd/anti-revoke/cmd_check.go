package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/antirevoke/anti-revoke/internal/exitcodes"
	"github.com/antirevoke/anti-revoke/internal/trace"
	"github.com/antirevoke/anti-revoke/internal/ui"
	"github.com/antirevoke/anti-revoke/internal/update"
)

type checkCoreOpts struct {
	localVersion string
	noBrowser    bool
	logPath      string
	// copyURL, when set, receives the release URL of an available update.
	copyURL func(string) error
}

// runCheckCore runs one check and reports it. Only an inconclusive check is
// an error; declining the update is not.
func runCheckCore(ctx context.Context, checker UpdateChecker, opts checkCoreOpts, p ui.Printer, errOut io.Writer) error {
	if !p.Structured() {
		p.Info("Checking for updates...")
	}

	res := checker.Check(ctx)

	if p.Structured() {
		p.Structure(res)
	} else {
		printCheckText(p, res, opts)
	}

	if res.OK {
		return nil
	}
	if !p.Structured() {
		ui.PrintError(errOut, inconclusiveMessage(res.Outcome.Reason, opts.logPath))
	}
	return silentErr{errorForReason(res.Outcome.Reason)}
}

func printCheckText(p ui.Printer, res update.Result, opts checkCoreOpts) {
	out := res.Outcome
	switch {
	case !res.OK:
		return
	case out.Disposition == update.UpToDate:
		p.Success(fmt.Sprintf("Already up to date (%s)", opts.localVersion))
		printStatus(p, out.Disposition)
		p.KeyValueLine("Latest release", out.Tag, "dim")
		p.KeyValueLine("Source", string(res.Source), "dim")
	case out.Disposition == update.UpdateAvailable:
		p.Textf("\n%s\n\n", ui.UpdateBanner(p.Colors, opts.localVersion, out.Tag, out.URL))
		printStatus(p, out.Disposition)
		if opts.copyURL != nil {
			if err := opts.copyURL(out.URL); err != nil {
				p.Warn("Could not copy download link: " + err.Error())
			} else {
				p.Success("Copied download link to clipboard")
			}
		}
		if !res.Prompted {
			p.Markdown(out.Changelog)
			p.Info("Download: " + out.URL)
			return
		}
		switch {
		case !res.Accepted:
			p.Info("Update skipped")
		case opts.noBrowser:
			p.Info("Download: " + out.URL)
		default:
			p.Success("Opened release page")
		}
	}
}

func printStatus(p ui.Printer, d update.Disposition) {
	p.KeyValueLine("Status", p.Colors.StatusIcon(string(d))+" "+string(d), "")
}

// errorForReason maps a failed check to an exit code: nothing fetched is a
// network error, a fetched but rejected payload is a validation error.
func errorForReason(r update.Reason) error {
	switch r {
	case update.ReasonMalformedPayload, update.ReasonMissingFields,
		update.ReasonUntrustedURL, update.ReasonInvalidVersionFormat:
		return exitcodes.ValidationErr(fmt.Sprintf("release payload rejected: %s", r))
	default:
		return exitcodes.NetworkErr("update check was inconclusive")
	}
}

func inconclusiveMessage(r update.Reason, logPath string) ui.ErrorMessage {
	msg := ui.ErrorMessage{Problem: "Update check was inconclusive"}
	switch r {
	case update.ReasonTransportFailure, update.ReasonRuntimeFault, "":
		msg.Causes = []string{"No network connection", "GitHub or the bridge service is unreachable"}
		msg.Actions = []string{"Check your connection and retry"}
	case update.ReasonUnexpectedStatus:
		msg.Causes = []string{"GitHub API rate limit reached", "Release not published yet"}
		msg.Actions = []string{"Retry later"}
	default:
		msg.Causes = []string{fmt.Sprintf("The latest release could not be verified (%s)", r)}
		msg.Actions = []string{"Download releases manually from the repository page"}
	}
	if logPath != "" {
		msg.Hints = []string{"Trace log: " + logPath}
	}
	return msg
}

func init() {
	var noBrowser, copyLink bool

	checkCmd := &cobra.Command{
		Use:     "check-update",
		Aliases: []string{"check"},
		Short:   "Check GitHub for a newer release",
		Long: `Check for a newer Anti-Revoke release.

The release is fetched through the bridge service first and directly from
the GitHub API if that fails. When a newer version exists you are asked
whether to open its release page.

Examples:
  anti-revoke check-update               # Check and prompt
  anti-revoke check-update --no-browser  # Print the download link instead
  anti-revoke check-update --copy        # Also copy the link to the clipboard
  anti-revoke check -o json              # Machine-readable result, no prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(noBrowser)
			if err != nil {
				return err
			}
			defer d.Close()

			opts := checkCoreOpts{
				localVersion: Version,
				noBrowser:    noBrowser,
				logPath:      trace.Path(d.Cfg.HomeDir),
			}
			if copyLink {
				opts.copyURL = ui.CopyToClipboard
			}
			return runCheckCore(cmd.Context(), d.Checker, opts, d.Printer, d.ErrOutput)
		},
	}
	checkCmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Never launch a browser; print the release URL")
	checkCmd.Flags().BoolVar(&copyLink, "copy", false, "Copy the release URL to the clipboard when an update is available")

	rootCmd.AddCommand(checkCmd)
}
