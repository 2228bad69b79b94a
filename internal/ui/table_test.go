package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// KeyValueBlock
// ---------------------------------------------------------------------------

func TestKeyValueBlockContainsTitleAndPairs(t *testing.T) {
	result := KeyValueBlock("AstarCats (CAT)", [][2]string{
		{"Total supply", "12 / 7777"},
		{"Balance", "36 ETH"},
	})
	assert.Contains(t, result, "AstarCats (CAT)")
	assert.Contains(t, result, "Total supply")
	assert.Contains(t, result, "12 / 7777")
	assert.Contains(t, result, "Balance")
	assert.Contains(t, result, "36 ETH")
}

func TestKeyValueBlockEmptyTitle(t *testing.T) {
	result := KeyValueBlock("", [][2]string{
		{"Key", "Value"},
	})
	assert.Contains(t, result, "Key")
	assert.Contains(t, result, "Value")
}

func TestKeyValueBlockNoPairs(t *testing.T) {
	result := KeyValueBlock("Empty Block", [][2]string{})
	assert.Contains(t, result, "Empty Block")
}

func TestKeyValueBlockMultiplePairsPreservesOrder(t *testing.T) {
	result := KeyValueBlock("Status", [][2]string{
		{"Paused", "AAA"},
		{"Presale", "BBB"},
		{"Revealed", "CCC"},
	})
	idxFirst := strings.Index(result, "Paused")
	idxSecond := strings.Index(result, "Presale")
	idxThird := strings.Index(result, "Revealed")
	require.Greater(t, idxFirst, -1)
	require.Greater(t, idxSecond, -1)
	require.Greater(t, idxThird, -1)
	assert.Less(t, idxFirst, idxSecond, "Paused should appear before Presale")
	assert.Less(t, idxSecond, idxThird, "Presale should appear before Revealed")
}

func TestKeyValueBlockHasBorder(t *testing.T) {
	result := KeyValueBlock("Bordered", [][2]string{
		{"Key", "Val"},
	})
	// lipgloss RoundedBorder uses ╭ and ╰ for corners.
	assert.Contains(t, result, "╭", "should have top-left rounded border")
	assert.Contains(t, result, "╰", "should have bottom-left rounded border")
}

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

func TestNewTableCreatesEmptyTable(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "ID", Width: 6, Align: AlignRight},
		{Title: "Owner", Width: 42},
	})
	assert.Len(t, tbl.Columns, 2)
	assert.Empty(t, tbl.Rows)
}

func TestTableAddRow(t *testing.T) {
	tbl := NewTable([]Column{{Title: "A", Width: 5}})
	tbl.AddRow(Row{"hello"})
	tbl.AddRow(Row{"world"})
	assert.Len(t, tbl.Rows, 2)
}

func TestTableRenderContainsHeadersAndRows(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "Event", Width: 20},
		{Title: "Token", Width: 6},
	})
	tbl.AddRow(Row{"Transfer", "1"})
	tbl.AddRow(Row{"OwnershipTransferred", ""})

	result := tbl.Render()
	assert.Contains(t, result, "Event")
	assert.Contains(t, result, "Token")
	assert.Contains(t, result, "Transfer")
	assert.Contains(t, result, "OwnershipTransferred")
}

func TestTableRenderHasDivider(t *testing.T) {
	tbl := NewTable([]Column{{Title: "Col", Width: 8}})
	result := tbl.Render()
	assert.Contains(t, result, "--------", "should have a divider line")
}

func TestTableRenderRowShorterThanColumns(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "A", Width: 5},
		{Title: "B", Width: 5},
		{Title: "C", Width: 5},
	})
	tbl.AddRow(Row{"only1"})
	// Missing cells render as empty.
	result := tbl.Render()
	assert.Contains(t, result, "only1")
}

func TestTableRenderPreservesRowOrder(t *testing.T) {
	tbl := NewTable([]Column{{Title: "Item", Width: 10}})
	tbl.AddRow(Row{"first"})
	tbl.AddRow(Row{"second"})
	tbl.AddRow(Row{"third"})

	result := tbl.Render()
	idxFirst := strings.Index(result, "first")
	idxSecond := strings.Index(result, "second")
	idxThird := strings.Index(result, "third")
	assert.Less(t, idxFirst, idxSecond)
	assert.Less(t, idxSecond, idxThird)
}

// ---------------------------------------------------------------------------
// pad
// ---------------------------------------------------------------------------

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5, AlignLeft))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "   42", pad("42", 5, AlignRight))
}

func TestPadTruncates(t *testing.T) {
	assert.Equal(t, "0x123", pad("0x1234567890", 5, AlignLeft))
}

func TestPadMultibyte(t *testing.T) {
	assert.Equal(t, "0x12…56 ", pad("0x12…56", 8, AlignLeft))
}

func TestPadZeroWidth(t *testing.T) {
	assert.Empty(t, pad("abc", 0, AlignLeft))
}
