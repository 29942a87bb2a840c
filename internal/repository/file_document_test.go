package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docWithExtras = `{
  "meta": {"lastUpdated": 1, "schemaVersion": 2},
  "uiTheme": "dark",
  "today": {
    "savingsAccounts": [{"id": "s1", "name": "Cash", "balance": 1200.5, "pinned": true}]
  },
  "plans": [
    {"id": "p1", "name": "Base", "active": true,
     "income": {"events": [{"id": "e1", "name": "Salary", "amount": 5000, "frequency": "monthly",
       "start": {"type": "keyword", "value": "now"},
       "end": {"type": "keyword", "value": "endOfPlan"},
       "color": "#ffcc00"}]},
     "variables": {"inflation": 2.5}}
  ]
}`

var fixedNow = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func writeDoc(t *testing.T, body string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(body), mode))
	return path
}

func decodeMap(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestFileDocumentRepo_RoundTripKeepsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	path := writeDoc(t, docWithExtras, 0o644)
	repo := NewFileDocumentRepo(fixedClock)

	doc, err := repo.Load(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, path, doc))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), saved[len(saved)-1])

	got := decodeMap(t, saved)
	want := decodeMap(t, []byte(docWithExtras))

	meta := got["meta"].(map[string]any)
	assert.Equal(t, float64(fixedNow.UnixMilli()), meta["lastUpdated"])
	meta["lastUpdated"] = float64(1)

	assert.Equal(t, want, got)
}

func TestFileDocumentRepo_SparseDocumentOnlyGainsLastUpdated(t *testing.T) {
	const sparse = `{"today":{"savingsAccounts":[{"id":"s1","name":"Cash"}],"debts":[{"id":"d1","name":"Card","type":""}]},` +
		`"plans":[{"id":"p1","name":"Base","income":{"events":[{"id":"e1","name":"Salary","start":null}]},` +
		`"computedMilestones":[{"id":"cm-1","name":"Coast FIRE"}]}]}`

	ctx := context.Background()
	path := writeDoc(t, sparse, 0o644)
	repo := NewFileDocumentRepo(fixedClock)

	doc, err := repo.Load(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, path, doc))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	got := decodeMap(t, saved)
	assert.Equal(t, map[string]any{"lastUpdated": float64(fixedNow.UnixMilli())}, got["meta"])
	delete(got, "meta")

	assert.Equal(t, decodeMap(t, []byte(sparse)), got)
}

func TestFileDocumentRepo_SaveStampsLastUpdated(t *testing.T) {
	ctx := context.Background()
	path := writeDoc(t, docWithExtras, 0o644)
	repo := NewFileDocumentRepo(fixedClock)

	doc, err := repo.Load(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, path, doc))

	assert.Equal(t, fixedNow.UnixMilli(), doc.Meta.LastUpdated)
}

func TestFileDocumentRepo_SaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	path := writeDoc(t, docWithExtras, 0o600)
	repo := NewFileDocumentRepo(fixedClock)

	doc, err := repo.Load(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, path, doc))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "plan.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "existing permissions survive the rename")
}

func TestFileDocumentRepo_SaveCreatesNewFile(t *testing.T) {
	ctx := context.Background()
	src := writeDoc(t, docWithExtras, 0o644)
	repo := NewFileDocumentRepo(fixedClock)

	doc, err := repo.Load(ctx, src)
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "copy.json")
	require.NoError(t, repo.Save(ctx, dst, doc))

	reloaded, err := repo.Load(ctx, dst)
	require.NoError(t, err)
	require.Len(t, reloaded.Plans, 1)
	assert.Equal(t, "Base", reloaded.Plans[0].Name)
}

func TestFileDocumentRepo_LoadErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewFileDocumentRepo(nil)

	_, err := repo.Load(ctx, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := writeDoc(t, `{"plans": [`, 0o644)
	_, err = repo.Load(ctx, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing document")
}

func TestFileDocumentRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewFileDocumentRepo(nil)
	_, err := repo.Load(ctx, "whatever.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryDocumentRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDocumentRepo(fixedClock)

	_, err := repo.Load(ctx, "none.json")
	assert.ErrorIs(t, err, os.ErrNotExist)

	doc, err := decodeDocument("seed", []byte(docWithExtras))
	require.NoError(t, err)
	require.NoError(t, repo.Put("a.json", doc))
	assert.Equal(t, 0, repo.Saves(), "Put is not a save")

	loaded, err := repo.Load(ctx, "a.json")
	require.NoError(t, err)
	loaded.Plans[0].Name = "Changed"
	require.NoError(t, repo.Save(ctx, "a.json", loaded))
	assert.Equal(t, 1, repo.Saves())

	again, err := repo.Load(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, "Changed", again.Plans[0].Name)
	assert.Equal(t, fixedNow.UnixMilli(), again.Meta.LastUpdated)
	assert.Contains(t, string(repo.Bytes("a.json")), `"uiTheme": "dark"`)
}
