package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-auditor/internal/country"
	"github.com/jonathan/cv-auditor/internal/types"
)

func TestAuditCommand_JSONToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "profile.json", validProfileJSON)
	out := filepath.Join(dir, "nested", "audit.json")

	_, err := execute(t, "audit", "--in", in, "--country", "de", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got types.Audit
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "DE", got.TargetCountry)
	assert.Equal(t, len(got.CriticalErrors)+len(got.Warnings)+len(got.Improvements)+len(got.Info), got.TotalIssues)
}

func TestAuditCommand_TextReport(t *testing.T) {
	in := writeFile(t, t.TempDir(), "profile.json", validProfileJSON)

	stdout, err := execute(t, "audit", "--in", in, "--country", "FR", "--format", "text", "--name", "Jean Dupont")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "CV AUDIT REPORT FOR JEAN DUPONT\n"))
	assert.Contains(t, stdout, "Target market: FR")
}

func TestAuditCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "profile.json", validProfileJSON)
	invalid := writeFile(t, dir, "invalid.json", `{"skills": "Go"}`)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing input flag", []string{"audit"}, "required"},
		{"missing file", []string{"audit", "--in", filepath.Join(dir, "nope.json")}, "failed to load profile"},
		{"schema violation", []string{"audit", "--in", invalid}, "invalid profile"},
		{"unknown country", []string{"audit", "--in", valid, "--country", "ZZ"}, "unknown country"},
		{"bad format", []string{"audit", "--in", valid, "--format", "xml"}, "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAuditCommand_UnknownCountryIsTyped(t *testing.T) {
	in := writeFile(t, t.TempDir(), "profile.json", validProfileJSON)

	_, err := execute(t, "audit", "--in", in, "--country", "ZZ")
	var unknown *country.UnknownCountryError
	assert.ErrorAs(t, err, &unknown)
}

func TestAuditCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "profile.json", validProfileJSON)
	cfg := writeFile(t, dir, "config.json", `{"country": "US", "format": "json"}`)

	stdout, err := execute(t, "--config", cfg, "audit", "--in", in)
	require.NoError(t, err)

	var got types.Audit
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "US", got.TargetCountry)
}

func TestAuditCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "profile.json", validProfileJSON)
	cfg := writeFile(t, dir, "config.json", `{"country": "ZZ"}`)

	_, err := execute(t, "--config", cfg, "audit", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestQuickCheckCommand(t *testing.T) {
	in := writeFile(t, t.TempDir(), "profile.json", `{"personalInfo": {"firstName": "Jean", "lastName": "Dupont"}}`)

	stdout, err := execute(t, "quick-check", "--in", in, "--country", "FR")
	require.NoError(t, err)

	var got types.QuickCheckResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.GreaterOrEqual(t, got.CriticalCount, 1)
	require.NotNil(t, got.TopIssue)
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "profile.json", validProfileJSON)
	auditFile := filepath.Join(dir, "audit.json")
	reportFile := filepath.Join(dir, "report.txt")

	_, err := execute(t, "audit", "--in", in, "--country", "FR", "--out", auditFile)
	require.NoError(t, err)

	_, err = execute(t, "report", "--in", auditFile, "--name", "Jean", "--out", reportFile)
	require.NoError(t, err)

	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CV AUDIT REPORT FOR JEAN")
	assert.Contains(t, string(data), "CATEGORIES")
}

func TestReportCommand_BadAudit(t *testing.T) {
	in := writeFile(t, t.TempDir(), "audit.json", `not json`)

	_, err := execute(t, "report", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse audit")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	writeFile(t, dir, "alice.json", validProfileJSON)
	writeFile(t, dir, "bob.json", `{"personalInfo": {"firstName": "Bob"}}`)

	stdout, err := execute(t, "batch", "--dir", dir, "--out-dir", outDir, "--country", "FR", "--concurrency", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Audited 2 profiles, 0 failed")

	for _, name := range []string{"alice.audit.json", "bob.audit.json"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		var got types.Audit
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "FR", got.TargetCountry)
	}
}

func TestBatchCommand_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", validProfileJSON)
	writeFile(t, dir, "bad.json", `{"experiences": "none"}`)

	stdout, err := execute(t, "batch", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 profiles failed")
	assert.Contains(t, stdout, "bad.json")
	assert.Contains(t, stdout, "ERROR")

	_, statErr := os.Stat(filepath.Join(dir, "good.audit.json"))
	assert.NoError(t, statErr, "output defaults to the input directory")

	// a second run skips the audit files written by the first
	stdout, err = execute(t, "batch", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, stdout, "Audited 2 profiles, 1 failed")
}

func TestBatchCommand_EmptyDir(t *testing.T) {
	_, err := execute(t, "batch", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile files")
}

func TestAuditFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "p.json", validProfileJSON)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := auditFiles(ctx, newEngine(), []string{file}, "FR", dir, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectLanguageCommand(t *testing.T) {
	in := writeFile(t, t.TempDir(), "profile.json", validProfileJSON)

	stdout, err := execute(t, "detect-language", "--in", in)
	require.NoError(t, err)

	var got types.LanguageAnalysis
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "fr", got.MainLanguage)
}

func TestCountriesCommand(t *testing.T) {
	total := len(country.Default().Codes())

	stdout, err := execute(t, "countries")
	require.NoError(t, err)
	assert.Contains(t, stdout, "COUNTRIES (")
	assert.Contains(t, stdout, "DE  ")

	stdout, err = execute(t, "countries", "--json")
	require.NoError(t, err)
	var rules []country.Rule
	require.NoError(t, json.Unmarshal([]byte(stdout), &rules))
	assert.Len(t, rules, total)
}
