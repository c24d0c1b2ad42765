package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberquest/internal/ui/theme"
)

const arcadeTitleFull = ` ▄▄·  ▄· ▄▌▄▄▄▄· ▄▄▄ .▄▄▄   .▄▄▄  ▄• ▄▌▄▄▄ ..▄▄ · ▄▄▄▄▄
▐█ ▌▪▐█▪██▌▐█ ▀█▪▀▄.▀·▀▄ █·▐▀•▀█ █▪██▌▀▄.▀·▐█ ▀. •██
██ ▄▄▐█▌▐█▪▐█▀▀█▄▐▀▀▪▄▐▀▀▄ █▌·.█▌█▌▐█▌▐▀▀▪▄▄▀▀▀█▄ ▐█.▪
▐███▌ ▐█▀·.██▄▪▐█▐█▄▄▌▐█•█▌▐█▪▄█·▐█▄█▌▐█▄▄▌▐█▄▪▐█ ▐█▌·
·▀▀▀   ▀ • ·▀▀▀▀  ▀▀▀ .▀  ▀·▀▀█.  ▀▀▀  ▀▀▀  ▀▀▀▀  ▀▀▀`

const arcadeTitleCompact = "C · Y · B · E · R · Q · U · E · S · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	finalStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	final := dimStyle.Render("⚑ FINAL —")
	if st.finalCompleted {
		final = finalStyle.Render(fmt.Sprintf("⚑ FINAL %d%%", st.finalScore))
	}

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			doneStyle.Render(fmt.Sprintf("✔%d/%d", st.completed, st.modules)),
			scoreStyle.Render(fmt.Sprintf("★%d", st.score)),
			final,
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			doneStyle.Render(fmt.Sprintf("✔ %d/%d MODULES", st.completed, st.modules)),
			scoreStyle.Render(fmt.Sprintf("★ %d PTS", st.score)),
			final,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		BorderForeground(theme.Primary)
	normalBtn := base.
		Foreground(theme.Text).
		BorderForeground(theme.Border)
	disabledBtn := base.
		Foreground(theme.TextDim).
		BorderForeground(theme.Border)

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render("🔒 "+label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		switch {
		case disabled[i]:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" 🔒 " + label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderConfirm renders the reset confirmation prompt.
func renderConfirm(cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Foreground(theme.Error).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render("Erase all progress and attempt history?\n\n[y] yes    [n] no")
}

// renderMascotBox renders the sentinel centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
