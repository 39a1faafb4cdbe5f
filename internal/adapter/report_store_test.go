package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/strmut/internal/model"
)

func testReport(path string, candidates ...m.MutationIdentifier) m.Report {
	pkg := "greeting"

	return m.Report{
		Source: m.Source{
			Origin:  &m.File{FullPath: m.Path("/work/" + path), ShortPath: m.Path(path), Hash: "abc"},
			Package: &pkg,
		},
		Type:       m.MutationString,
		Candidates: candidates,
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	candidate := m.MutationIdentifier{
		ID:          "0123456789abcdef",
		Index:       0,
		FactoryID:   "strings",
		Description: "Mutate string from: hi, to: yo",
		Location:    m.Location{Path: "b.go", Line: 3, Column: 9},
	}

	reports := []m.Report{
		testReport("b.go", candidate),
		testReport("a.go"),
	}

	require.NoError(t, store.SaveReports(context.Background(), dir, reports))

	loaded, err := store.LoadReports(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, m.Path("/work/a.go"), loaded[0].Source.Origin.FullPath)
	assert.Equal(t, m.Path("/work/b.go"), loaded[1].Source.Origin.FullPath)
	assert.Equal(t, m.MutationString, loaded[1].Type)
	require.Len(t, loaded[1].Candidates, 1)
	assert.Equal(t, candidate, loaded[1].Candidates[0])
	require.NotNil(t, loaded[1].Source.Package)
	assert.Equal(t, "greeting", *loaded[1].Source.Package)
}

func TestLocalReportStore_SaveReplacesSameSource(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(t.TempDir())

	first := testReport("a.go", m.MutationIdentifier{ID: "first"})
	second := testReport("a.go", m.MutationIdentifier{ID: "second"}, m.MutationIdentifier{ID: "third", Index: 1})

	require.NoError(t, store.SaveReports(context.Background(), dir, []m.Report{first}))
	require.NoError(t, store.SaveReports(context.Background(), dir, []m.Report{second}))

	loaded, err := store.LoadReports(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Len(t, loaded[0].Candidates, 2)
}

func TestLocalReportStore_SkipsReportWithoutOrigin(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(t.TempDir())

	require.NoError(t, store.SaveReports(context.Background(), dir, []m.Report{{Type: m.MutationString}}))

	entries, err := os.ReadDir(string(dir))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalReportStore_LoadIgnoresForeignFiles(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o750))

	loaded, err := store.LoadReports(context.Background(), m.Path(dir))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLocalReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()

	_, err := store.LoadReports(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	require.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("source: [unterminated"), 0o600))

	_, err = store.LoadReports(context.Background(), m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode report")
}

func TestLocalReportStore_ContextCancelled(t *testing.T) {
	store := NewReportStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SaveReports(ctx, m.Path(t.TempDir()), []m.Report{testReport("a.go")})
	require.ErrorIs(t, err, context.Canceled)
}
