package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_ValidConfigs(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"comment only", "# nothing configured yet\n"},
		{"interpreter only", "interpreter: python3\n"},
		{"all keys", "interpreter: python3\nscript: /opt/lab/labsync.py\npause: on-error\n"},
		{"pause always", "pause: always\n"},
		{"pause never", "pause: never\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid config, got issues: %+v", result.Issues)
			}
		})
	}
}

func TestValidate_InvalidConfigs(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "interpretor: python\n"},
		{"bad pause value", "pause: sometimes\n"},
		{"empty interpreter", "interpreter: \"\"\n"},
		{"wrong type", "pause: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Valid {
				t.Error("expected validation issues, got valid")
			}
			if len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	_, err := Validate([]byte("pause: [unclosed"))
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	result, err := ValidateFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Error("missing config file should be valid (defaults apply)")
	}
}

func TestValidateFile_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("pause: on-error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid config, got issues: %+v", result.Issues)
	}
}

func TestValidate_IssueDetails(t *testing.T) {
	result, err := Validate([]byte("pause: sometimes\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation issues")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/pause" && issue.Keyword == "enum" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an enum issue at /pause, got %+v", result.Issues)
	}
}
