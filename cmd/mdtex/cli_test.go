package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdtex "github.com/alnah/go-mdtex"
)

// stubRenderer records its input and returns a canned result.
type stubRenderer struct {
	result *mdtex.Result
	err    error
	got    string
}

func (s *stubRenderer) Render(_ context.Context, input mdtex.Input) (*mdtex.Result, error) {
	s.got = input.Source
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	err := run(nil, &cliFlags{}, &stubRenderer{})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}
	if err != nil && !strings.Contains(err.Error(), "hint:") {
		t.Errorf("error %q should carry a usage hint", err)
	}
}

func TestRun_InvalidExtension(t *testing.T) {
	t.Parallel()

	err := run([]string{"doc.txt"}, &cliFlags{}, &stubRenderer{})
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("err = %v, want ErrInvalidExtension", err)
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	t.Parallel()

	err := run([]string{filepath.Join(t.TempDir(), "missing.md")}, &cliFlags{}, &stubRenderer{})
	if !errors.Is(err, ErrReadMarkdown) {
		t.Errorf("err = %v, want ErrReadMarkdown", err)
	}
}

func TestRun_WritesOutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(inputPath, []byte("# Hi"), 0o600); err != nil {
		t.Fatal(err)
	}

	outputPath := filepath.Join(dir, "doc.html")
	stub := &stubRenderer{result: &mdtex.Result{HTML: "<h1>Hi</h1>"}}

	flags := &cliFlags{output: outputPath, quiet: true}
	if err := run([]string{inputPath}, flags, stub); err != nil {
		t.Fatalf("run: %v", err)
	}

	if stub.got != "# Hi" {
		t.Errorf("renderer received %q, want the file content", stub.got)
	}

	page, err := os.ReadFile(outputPath) // #nosec G304 -- test-owned temp dir
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<h1>Hi</h1>"} {
		if !strings.Contains(string(page), want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRun_RenderErrorPropagates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(inputPath, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	stub := &stubRenderer{err: mdtex.ErrEmptySource}
	if err := run([]string{inputPath}, &cliFlags{quiet: true}, stub); !errors.Is(err, mdtex.ErrEmptySource) {
		t.Errorf("err = %v, want the renderer's error", err)
	}
}

func TestBuildService_Defaults(t *testing.T) {
	t.Parallel()

	svc, err := buildService(&cliFlags{quiet: true})
	if err != nil {
		t.Fatalf("buildService: %v", err)
	}
	if svc == nil {
		t.Fatal("buildService returned nil service")
	}
}

func TestBuildService_MissingConfig(t *testing.T) {
	t.Parallel()

	_, err := buildService(&cliFlags{config: filepath.Join(t.TempDir(), "none.yaml")})
	if err == nil {
		t.Error("missing config should fail, not silently fall back")
	}
}

func TestValidateMarkdownExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "doc.md", wantErr: false},
		{path: "doc.markdown", wantErr: false},
		{path: "doc.txt", wantErr: true},
		{path: "doc", wantErr: true},
	}

	for _, tt := range tests {
		err := validateMarkdownExtension(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateMarkdownExtension(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
