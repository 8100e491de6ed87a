package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/antirevoke/anti-revoke/internal/exitcodes"
)

func TestAllSubcommandsRegistered(t *testing.T) {
	registered := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range []string{"check-update", "version", "completion"} {
		if !registered[name] {
			t.Errorf("expected subcommand %q not registered on rootCmd", name)
		}
	}
}

func TestCheckAlias(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"check"})
	if err != nil {
		t.Fatalf("Find(check) error = %v", err)
	}
	if cmd.Name() != "check-update" {
		t.Errorf("alias resolved to %q", cmd.Name())
	}
	for _, f := range []string{"no-browser", "copy"} {
		if cmd.Flags().Lookup(f) == nil {
			t.Errorf("--%s not registered", f)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	flags := []string{"home", "output", "timeout", "quiet", "debug", "no-color", "no-emoji", "yes", "non-interactive"}
	for _, flag := range flags {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not registered on rootCmd", flag)
		}
	}
}

func TestRootCmdProperties(t *testing.T) {
	if rootCmd.Use != "anti-revoke" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "anti-revoke")
	}
	if rootCmd.Short == "" {
		t.Error("rootCmd.Short should not be empty")
	}
}

func TestLoadCfg_FlagOverrides(t *testing.T) {
	origHome, origTimeout := flagHome, flagTimeout
	defer func() { flagHome, flagTimeout = origHome, origTimeout }()

	flagHome = "/custom/home"
	flagTimeout = 5 * time.Second
	cfg := loadCfg()
	if cfg.HomeDir != "/custom/home" {
		t.Errorf("HomeDir = %q", cfg.HomeDir)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}

	flagHome, flagTimeout = "", 0
	cfg = loadCfg()
	if cfg.HomeDir == "" || cfg.Timeout != 30*time.Second {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestRootCmd_HelpFunction(t *testing.T) {
	origNoColor := flagNoColor
	defer func() { flagNoColor = origNoColor }()
	flagNoColor = true

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"--help"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "check-update") {
		t.Errorf("help missing check-update:\n%s", buf.String())
	}
}

func TestRootCmd_InvalidOutput(t *testing.T) {
	origOutput := flagOutput
	defer func() { flagOutput = origOutput }()

	rootCmd.SetArgs([]string{"version", "--output", "xml"})
	err := rootCmd.Execute()
	if exitcodes.CodeForError(err) != exitcodes.InvalidArgs {
		t.Errorf("exit code = %d, want %d (err=%v)", exitcodes.CodeForError(err), exitcodes.InvalidArgs, err)
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	origOutput := flagOutput
	defer func() { flagOutput = origOutput }()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"version", "-o", "json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version error = %v", err)
	}
	var got versionInfo
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("not JSON: %v\n%s", err, buf.String())
	}
	if got.Version != Version {
		t.Errorf("version = %q, want %q", got.Version, Version)
	}
}

func TestVersionCommand_Text(t *testing.T) {
	origOutput := flagOutput
	defer func() { flagOutput = origOutput }()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"version", "-o", "text"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "anti-revoke "+Version) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"completion", "bash"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("completion produced no output")
	}
}

func TestPersistentPreRun_NoColor(t *testing.T) {
	origNoColor, origOutput := flagNoColor, flagOutput
	defer func() {
		flagNoColor, flagOutput = origNoColor, origOutput
		os.Unsetenv("NO_COLOR")
	}()
	flagNoColor = true
	flagOutput = "text"

	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE() error = %v", err)
	}
	if os.Getenv("NO_COLOR") != "1" {
		t.Error("expected NO_COLOR=1 after PersistentPreRunE with flagNoColor=true")
	}
}
