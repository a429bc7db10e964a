package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loupe/internal/driver"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.ts", "const a = 1;\nexport { a };\n")
	broken := writeFile(t, dir, "broken.ts", "function f( {\n")
	linted := writeFile(t, dir, "linted.ts", "debugger;\n")

	reports, err := driver.CheckFiles(context.Background(), []string{clean, broken, linted}, driver.CheckOptions{Lint: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}

	// Report order follows input order regardless of scheduling.
	if reports[0].Path != clean || reports[1].Path != broken || reports[2].Path != linted {
		t.Fatalf("report order scrambled: %s, %s, %s", reports[0].Path, reports[1].Path, reports[2].Path)
	}

	if reports[0].Failed() {
		t.Errorf("clean file failed: %+v", reports[0].Diagnostics)
	}
	if !reports[1].Failed() {
		t.Error("syntax error must fail the file")
	}
	if reports[2].Failed() {
		t.Error("a lint warning alone must not fail the file")
	}
	found := false
	for _, d := range reports[2].Diagnostics {
		if strings.Contains(d.Message, "eslint(no-debugger)") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing lint finding: %+v", reports[2].Diagnostics)
	}
}

func TestCheckFilesMissingFile(t *testing.T) {
	reports, err := driver.CheckFiles(context.Background(), []string{"/nonexistent/nope.ts"}, driver.CheckOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Err == nil || !reports[0].Failed() {
		t.Errorf("unreadable files must fail with Err set, got %+v", reports)
	}
}

func TestCheckFilesClosesEventChannel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.ts", "const a = 1;\nexport { a };\n")

	events := make(chan driver.Event, 64)
	done := make(chan []driver.Event)
	go func() {
		var got []driver.Event
		for ev := range events {
			got = append(got, ev)
		}
		done <- got
	}()

	if _, err := driver.CheckFiles(context.Background(), []string{path}, driver.CheckOptions{Events: events, Workers: 1}); err != nil {
		t.Fatal(err)
	}
	got := <-done // blocks forever if the channel is never closed
	if len(got) == 0 {
		t.Fatal("no progress events received")
	}
	for _, ev := range got {
		if ev.File != path {
			t.Errorf("event for unexpected file %q", ev.File)
		}
	}
	last := got[len(got)-1]
	if last.Status != driver.StatusDone {
		t.Errorf("final status = %d, want done", last.Status)
	}
}

func TestCheckFilesHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.CheckFiles(ctx, []string{"whatever.ts"}, driver.CheckOptions{})
	if err == nil {
		t.Fatal("cancelled context must surface as an error")
	}
}
