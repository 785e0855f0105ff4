package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndShow(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected error writing over existing config without --overwrite")
	}

	out, _, err = runCLI(t, []string{"config", "show", "--config-path", target}, "", "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "voicemeeter.kind")
	requireContains(t, out, "banana")
}
