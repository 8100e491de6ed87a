package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/antirevoke/anti-revoke/internal/config"
	"github.com/antirevoke/anti-revoke/internal/exitcodes"
	"github.com/antirevoke/anti-revoke/internal/ui"
)

// Version information, set via -ldflags during build. Version is compared
// against release tags, so it must stay a plain x.y.z triple.
var (
	Version   = "1.0.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "anti-revoke",
	Short:         "Anti-Revoke Plugin",
	Long:          "Companion CLI for the Anti-Revoke plugin: checks GitHub for newer releases.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.InitGlobal(ui.Config{
			NoColor:        flagNoColor,
			NoEmoji:        flagNoEmoji,
			Yes:            flagYes,
			NonInteractive: flagNonInteractive,
			Quiet:          flagQuiet,
			Debug:          flagDebug,
		})

		// lipgloss reads NO_COLOR directly
		if flagNoColor {
			os.Setenv("NO_COLOR", "1")
		}

		if !ui.ValidFormat(flagOutput) {
			return exitcodes.InvalidArgsErrorf("invalid --output: %s (use text|json|yaml)", flagOutput)
		}
		if flagTimeout < 0 {
			return exitcodes.InvalidArgsError("--timeout must not be negative")
		}
		return nil
	},
}

var (
	flagHome           string
	flagOutput         string
	flagTimeout        time.Duration
	flagQuiet          bool
	flagDebug          bool
	flagNoColor        bool
	flagNoEmoji        bool
	flagYes            bool
	flagNonInteractive bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "State directory for the trace log (overrides ANTI_REVOKE_HOME)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: json|yaml|text")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Per-request HTTP timeout (default 30s)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Quiet mode: minimal output")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "Mirror the trace log to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
	rootCmd.PersistentFlags().BoolVar(&flagNoEmoji, "no-emoji", false, "Disable emoji output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Assume yes for all prompts")
	rootCmd.PersistentFlags().BoolVar(&flagNonInteractive, "non-interactive", false, "Never prompt; report only")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		// Help runs before PersistentPreRun, so apply color flags here.
		c := ui.NewColorConfig()
		c.Enabled = c.Enabled && !flagNoColor
		c.EmojiEnabled = c.EmojiEnabled && !flagNoEmoji
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, c.Header(" Anti-Revoke Plugin "))
		fmt.Fprintln(w, c.Description(cmd.Long))
		fmt.Fprintln(w, c.Separator(50))
		fmt.Fprintln(w)

		fmt.Fprintln(w, c.SubHeader("USAGE"))
		fmt.Fprintln(w, "  anti-revoke <command> [flags]")
		fmt.Fprintln(w)

		fmt.Fprintln(w, c.SubHeader("Commands"))
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			fmt.Fprintf(w, "  %-16s %s\n", sub.Name(), c.Description(sub.Short))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, c.SubHeader("Flags"))
		fmt.Fprint(w, cmd.PersistentFlags().FlagUsages())
	})
}

// silentErr carries an exit code without printing anything further;
// the command has already reported the failure.
type silentErr struct{ error }

func (e silentErr) Unwrap() error { return e.error }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var se silentErr
		if !errors.As(err, &se) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitcodes.CodeForError(err))
	}
}

// loadCfg reads defaults + env via internal/config.Load() and then
// applies overrides from persistent flags.
func loadCfg() config.Config {
	cfg := config.Load()
	if flagHome != "" {
		cfg.HomeDir = flagHome
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}
	return cfg
}

func getPrinter() ui.Printer { return ui.NewPrinterFromGlobal(flagOutput) }
