package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDMGOnly(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer
	args := []string{"-config", filepath.Join(root, "none.yaml"), "-root", root, "-skip-icon"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v, stderr %s", err, stderr.String())
	}

	for _, name := range []string{"dmg-background.png", "dmg-background@2x.png"} {
		if _, err := os.Stat(filepath.Join(root, "build", name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
	if !strings.HasSuffix(stdout.String(), "\nDone!\n") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected log output at the default level: %q", stderr.String())
	}
}

func TestRunVerbose(t *testing.T) {
	root := t.TempDir()
	var stdout, stderr bytes.Buffer
	args := []string{"-config", filepath.Join(root, "none.yaml"), "-root", root, "-skip-icon", "-v"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stderr.String(), "dmg background rendered") {
		t.Errorf("stderr lacks debug diagnostics: %q", stderr.String())
	}
}

func TestRunConfigFile(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "assetgen.yaml")
	body := "root: " + root + "\nicon:\n  size: 32\n  catalog_size: 32\n  mark: terminal\ndmg:\n  enabled: false\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", cfgPath}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "build", "AppIcon.icns")); err != nil {
		t.Errorf("icns missing: %v", err)
	}
	if !strings.Contains(stdout.String(), "Icon saved: ") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-h"}, &stdout, &stderr); err != nil {
		t.Fatalf("run(-h) error = %v", err)
	}
	if !strings.Contains(stderr.String(), "-skip-dmg") {
		t.Errorf("usage lacks flags: %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"unknown mark", []string{"-mark", "dragon"}, "unknown mark"},
		{"nothing to do", []string{"-skip-icon", "-skip-dmg"}, "both disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			args := append([]string{"-config", filepath.Join(root, "none.yaml"), "-root", root}, tt.args...)
			err := run(args, &bytes.Buffer{}, &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
