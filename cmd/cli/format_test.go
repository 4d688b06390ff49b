package main

import (
	"strings"
	"testing"

	"github.com/reviewkit/codeowners-resolve/internal/app"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range allowedFormats {
		if _, err := validateFormat(format); err != nil {
			t.Errorf("Expected %s to be a valid format: %v", format, err)
		}
	}
	if _, err := validateFormat("yaml"); err == nil {
		t.Errorf("Expected yaml to be rejected")
	}
}

func TestFormatOutput(t *testing.T) {
	output := &app.OutputData{
		Owners:       []string{"@john", "@maria"},
		ChangedFiles: []string{"package.json"},
		Dialect:      "default",
	}

	tt := []struct {
		format   OutputFormat
		expected string
	}{
		{FormatDefault, "@john\n@maria\n"},
		{FormatOneLine, "@john, @maria\n"},
		{FormatJSON, `{"owners":["@john","@maria"],"changed_files":["package.json"],"dialect":"default"}` + "\n"},
	}

	for _, tc := range tt {
		if got := formatOutput(output, tc.format); got != tc.expected {
			t.Errorf("formatOutput(%s) = %q, expected %q", tc.format, got, tc.expected)
		}
	}
}

func TestFormatOutputEmpty(t *testing.T) {
	output := &app.OutputData{Owners: []string{}}
	if got := formatOutput(output, FormatDefault); !strings.Contains(got, "no owners") {
		t.Errorf("Expected empty default output to say no owners, got %q", got)
	}
}

func TestStripRoot(t *testing.T) {
	tt := []struct {
		root     string
		path     string
		expected string
	}{
		{".", "a/b.go", "a/b.go"},
		{"repo", "repo/a/b.go", "a/b.go"},
		{"repo", "other/a/b.go", "other/a/b.go"},
	}
	for _, tc := range tt {
		if got := stripRoot(tc.root, tc.path); got != tc.expected {
			t.Errorf("stripRoot(%q, %q) = %q, expected %q", tc.root, tc.path, got, tc.expected)
		}
	}
}
