package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagerModel_LoadingUntilSized(t *testing.T) {
	pm := newPagerModel("title", "body")
	assert.Nil(t, pm.Init())
	assert.Contains(t, pm.View(), "Loading")
}

func TestPagerModel_WindowSize(t *testing.T) {
	pm := newPagerModel("strmut", "line one\nline two")

	model, _ := pm.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	sized, ok := model.(pagerModel)
	require.True(t, ok)
	assert.True(t, sized.ready)
	assert.Equal(t, 80, sized.viewport.Width)

	view := sized.View()
	assert.Contains(t, view, "strmut")
	assert.Contains(t, view, "line one")
	assert.Contains(t, view, "q: quit")

	model, _ = sized.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	resized := model.(pagerModel)
	assert.Equal(t, 100, resized.viewport.Width)
}

func TestPagerModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			_, cmd := newPagerModel("t", "c").Update(key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestColorizeDiff_KeepsLines(t *testing.T) {
	diff := "--- a.go\n+++ a.go\n@@ -1,1 +1,1 @@\n-old\n+new\n same"

	got := colorizeDiff(diff)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "--- a.go", lines[0])
	assert.Equal(t, "+++ a.go", lines[1])
	assert.Contains(t, lines[3], "-old")
	assert.Contains(t, lines[4], "+new")
	assert.Equal(t, " same", lines[5])
}
