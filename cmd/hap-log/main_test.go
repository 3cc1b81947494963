package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
)

func newTestParser(t *testing.T, c *cli) *kong.Kong {
	t.Helper()
	k, err := parser(c, kong.Exit(func(int) { t.Fatal("parser tried to exit") }))
	if err != nil {
		t.Fatalf("parser failed: %v", err)
	}
	return k
}

func tempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.hlog")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestParseView(t *testing.T) {
	path := tempLog(t)
	var c cli
	ctx, err := newTestParser(t, &c).Parse([]string{"view", "--layer", "host", "--direction", "in", path})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ctx.Command() != "view <file>" {
		t.Errorf("command = %q", ctx.Command())
	}
	if c.View.Layer != "host" || c.View.Direction != "in" || c.View.File != path {
		t.Errorf("view flags = %+v", c.View)
	}
}

func TestParseExportDefaults(t *testing.T) {
	path := tempLog(t)
	var c cli
	if _, err := newTestParser(t, &c).Parse([]string{"export", path}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Export.Format != "jsonl" {
		t.Errorf("format = %q, want jsonl", c.Export.Format)
	}
	if c.Export.Output != "" {
		t.Errorf("output = %q, want stdout", c.Export.Output)
	}
}

func TestParseExportRejectsFormat(t *testing.T) {
	path := tempLog(t)
	var c cli
	if _, err := newTestParser(t, &c).Parse([]string{"export", "--format", "xml", path}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFilterRequiresOutput(t *testing.T) {
	path := tempLog(t)
	var c cli
	if _, err := newTestParser(t, &c).Parse([]string{"filter", "--accessory", "AA:BB", path}); err == nil {
		t.Error("expected error without -o")
	}

	c = cli{}
	if _, err := newTestParser(t, &c).Parse([]string{"filter", "--accessory", "AA:BB", "-o", "out.hlog", path}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Filter.Accessory != "AA:BB" || c.Filter.Output != "out.hlog" {
		t.Errorf("filter flags = %+v", c.Filter)
	}
}

func TestParseMissingFile(t *testing.T) {
	var c cli
	missing := filepath.Join(t.TempDir(), "missing.hlog")
	if _, err := newTestParser(t, &c).Parse([]string{"stats", missing}); err == nil {
		t.Error("expected error for missing file")
	}
}
