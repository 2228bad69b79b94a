package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green: minted, on
	ColorWarning   = lipgloss.Color("#FFB800") // yellow: paused, presale
	ColorError     = lipgloss.Color("#FF4444") // red: reverts
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan: addresses, topics
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold: amounts
	ColorMeta      = lipgloss.Color("#555555") // dim gray: metadata
	ColorBorder    = lipgloss.Color("#1E3A5F")
	ColorBrand     = lipgloss.Color("#9B5DE5") // purple: sale name, phases
	ColorHighlight = lipgloss.Color("#F15BB5")
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleBrand   = lipgloss.NewStyle().Foreground(ColorBrand).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true).
			MarginBottom(1)
)

// Banner returns the catsale banner for the given collection.
func Banner(name, symbol string) string {
	art := `
   /\_/\   catsale
  ( o.o )
   > ^ <`
	line := StyleMeta.Render("  " + name + " (" + symbol + ")  ✦ presale  ✦ public mint  ✦ reveal")
	return StyleBrand.Render(art) + "\n" + line + "\n"
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Info formats an informational message.
func Info(msg string) string { return StyleAddress.Render("ℹ " + msg) }

// Hint formats a follow-up suggestion.
func Hint(msg string) string { return StyleMeta.Render("💡 " + msg) }

// Revert formats a rejected call the way a node reports a reverted transaction.
func Revert(reason string) string {
	return StyleError.Render("✗ reverted: ") + StyleValue.Render(reason)
}

// Addr formats an address.
func Addr(a string) string { return StyleAddress.Render(a) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Eth formats a decimal ether amount with its unit.
func Eth(amount string) string { return StyleValue.Render(amount) + StyleMeta.Render(" ETH") }

// Flag renders a boolean sale flag as a coloured word.
func Flag(on bool, yes, no string) string {
	if on {
		return StyleWarning.Render(yes)
	}
	return StyleSuccess.Render(no)
}

// Phase formats a mint phase name.
func Phase(p string) string { return StyleBrand.Render(strings.ToUpper(p)) }

// TruncateAddr shortens an address for display: 0x1234…5678.
func TruncateAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
