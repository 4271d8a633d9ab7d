package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_PadsAndRightAligns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "N"},
		[][]string{{"a", "1"}, {"longer", StyleRed.Render("100")}},
		1,
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME      N", lines[0])
	assert.Equal(t, "──────  ───", lines[1])
	assert.Equal(t, "a         1", lines[2])
	assert.Equal(t, "longer  100", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "Today", Detail: "3h 0min"},
		{Title: "08:00 - 10:00", Level: 1, Detail: "2h 0min"},
		{Title: "11:00 - now", Level: 1, IsLast: true, Active: true, Detail: "1h 0min"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "├─ 08:00 - 10:00"))
	assert.True(t, strings.HasPrefix(lines[2], "└─ ▶ 11:00 - now"))
	assert.Contains(t, lines[0], "[ 3h 0min ]")
	assert.Empty(t, RenderTree(nil))
}
