package timeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixturePath() string {
	return filepath.Join("..", "..", "testdata", "valid", "career_timelines.json")
}

func TestLoadDocument_ValidFile(t *testing.T) {
	doc, err := LoadDocument(fixturePath())
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t,
		[]string{"software_engineering", "research_scientist", "product_manager"},
		doc.CareerTimelines.Keys())

	career, ok := doc.CareerTimelines.Get("software_engineering")
	require.True(t, ok)
	assert.Equal(t, "Software Engineering", career.Name)
	assert.Len(t, career.MainPath, 4)
	assert.Len(t, career.PivotOpportunities, 1)

	require.NotNil(t, doc.Metadata)
	assert.Equal(t, "2025-08-30", doc.Metadata.LastUpdated)
	assert.Len(t, doc.Metadata.ChangeLog, 2)
}

func TestLoadDocument_FileNotFound(t *testing.T) {
	_, err := LoadDocument("nonexistent_file.json")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to read file")
}

func TestLoadDocument_InvalidJSON(t *testing.T) {
	_, err := LoadDocument(filepath.Join("..", "..", "testdata", "invalid", "truncated.json"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}

func TestSaveDocument_RoundTrip(t *testing.T) {
	doc, err := LoadDocument(fixturePath())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "nested", "out.json")
	require.NoError(t, SaveDocument(doc, out))

	original, err := os.ReadFile(fixturePath())
	require.NoError(t, err)
	written, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.JSONEq(t, string(original), string(written))
}

func TestSaveDocument_FormatsWithTwoSpaceIndent(t *testing.T) {
	doc, err := LoadDocument(fixturePath())
	require.NoError(t, err)

	content, err := Encode(doc)
	require.NoError(t, err)

	lines := strings.Split(string(content), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "{", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `  "career_timelines": {`), "got %q", lines[1])
	assert.Equal(t, "}", lines[len(lines)-1])
}

func TestEncode_PreservesNonASCII(t *testing.T) {
	doc, err := LoadDocument(fixturePath())
	require.NoError(t, err)

	content, err := Encode(doc)
	require.NoError(t, err)

	assert.Contains(t, string(content), "Career Timelines – PhD Optimized")
	assert.NotContains(t, string(content), `\u2013`)
}

func TestSaveDocument_NoTemporaryFilesLeft(t *testing.T) {
	doc, err := LoadDocument(fixturePath())
	require.NoError(t, err)

	dir := t.TempDir()
	out := filepath.Join(dir, "careers.json")
	require.NoError(t, SaveDocument(doc, out))
	require.NoError(t, SaveDocument(doc, out))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "careers.json", entries[0].Name())
}

func TestBackup_CopiesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "careers.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"career_timelines": {}}`), 0644))

	backupPath, err := Backup(src)
	require.NoError(t, err)
	assert.Equal(t, src+BackupSuffix, backupPath)

	content, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, `{"career_timelines": {}}`, string(content))
}

func TestBackup_MissingSource(t *testing.T) {
	_, err := Backup(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	saveErr, ok := err.(*SaveError)
	require.True(t, ok, "error should be SaveError type")
	assert.Contains(t, saveErr.Error(), "failed to open")
}

func TestEncode_IsValidJSON(t *testing.T) {
	doc, err := LoadDocument(fixturePath())
	require.NoError(t, err)

	content, err := Encode(doc)
	require.NoError(t, err)
	assert.True(t, json.Valid(content))
}
