package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/acrodrill/internal/core/drill"
	"github.com/hay-kot/acrodrill/internal/core/styles"
)

const defaultWidth = 80

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var body string
	switch m.state {
	case stateDebug:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.debug.View(width),
			styles.HelpStyle.Render(m.help.ShortHelpView(m.debugKeys.ShortHelp())),
		)
	case stateHelp:
		body = m.helpView.View(width)
	default:
		body = m.renderDrill(width)
	}

	return m.toastView.Overlay(body, width)
}

func (m Model) renderDrill(width int) string {
	v := m.session.View()

	parts := []string{m.renderHeader(), m.renderCard(v, width)}
	if !v.LookingUp && v.HasCard {
		parts = append(parts, m.renderGrade(v))
	}
	if m.state == stateLookupInput {
		parts = append(parts, m.lookupInput.View())
	}
	parts = append(parts, styles.HelpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	v := m.session.View()

	badges := []string{styles.HeaderStyle.Render("acrodrill")}

	filter := "all lengths"
	if v.Filter > 0 {
		filter = fmt.Sprintf("length %d", v.Filter)
	}
	badges = append(badges, styles.BadgeStyle.Render(filter))

	if v.ReviewMode {
		badges = append(badges, styles.BadgeStyle.Render("review"))
	}
	if m.app.Debug.Strict() {
		badges = append(badges, styles.BadgeStyle.Render("strict"))
	}
	if m.loading {
		badges = append(badges, styles.BadgeOffStyle.Render("loading…"))
	}

	if v.Total > 0 {
		badges = append(badges, styles.PositionStyle.Render(fmt.Sprintf("%d/%d", v.Position, v.Total)))
	}
	badges = append(badges,
		styles.CorrectStyle.Render(fmt.Sprintf("✓ %d", v.Score.Correct)),
		styles.IncorrectStyle.Render(fmt.Sprintf("✗ %d", v.Score.Incorrect)),
	)

	return strings.Join(badges, " ")
}

func (m Model) renderCard(v drill.View, width int) string {
	frame := styles.CardFrameStyle
	if v.LookingUp {
		frame = styles.LookupFrameStyle
	}
	frame = frame.Width(max(width-4, 20))

	if v.LookingUp && !v.HasCard {
		msg := "type a key to look it up"
		if v.LookupQuery != "" {
			msg = fmt.Sprintf("no card matches %q", v.LookupQuery)
		}
		return frame.Render(styles.HiddenStyle.Render(msg))
	}

	if v.Empty() {
		msg := "no cards loaded"
		if len(m.session.Lengths()) > 1 {
			msg = "no cards for this length"
		}
		return frame.Render(styles.HiddenStyle.Render(msg))
	}

	var b strings.Builder
	if v.LookingUp {
		b.WriteString(styles.HiddenStyle.Render("lookup "))
	}
	b.WriteString(styles.KeyStyle.Render(v.Card.Key))
	b.WriteString("\n\n")

	if !v.Revealed {
		b.WriteString(styles.HiddenStyle.Render("press space to reveal"))
		return frame.Render(b.String())
	}

	for i, val := range v.Card.Values {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.ValueStyle.Render(val))
	}
	if urls := v.Card.URLs(); len(urls) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.HiddenStyle.Render(strings.Join(urls, "\n")))
	}

	return frame.Render(b.String())
}

func (m Model) renderGrade(v drill.View) string {
	mark := styles.CorrectStyle.Render("marked correct")
	if !v.MarkedCorrect {
		mark = styles.IncorrectStyle.Render("marked incorrect")
	}

	var result string
	switch v.Result {
	case drill.Correct:
		result = styles.CorrectStyle.Render("was correct")
	case drill.Incorrect:
		result = styles.IncorrectStyle.Render("was incorrect")
	default:
		result = styles.StatusStyle.Render("untested")
	}

	return styles.StatusStyle.Render(mark + "  " + result)
}
