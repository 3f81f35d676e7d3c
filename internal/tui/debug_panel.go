package tui

import (
	"fmt"
	"strings"

	"github.com/hay-kot/acrodrill/internal/app"
	"github.com/hay-kot/acrodrill/internal/core/styles"
)

// maxFindings caps each diagnostics list in the panel.
const maxFindings = 8

// DebugPanel shows the configured sources, the strict flag and the
// data-quality report for the loaded cards.
type DebugPanel struct {
	sources []app.SourceState
	strict  bool
	report  app.Report
	cursor  int
}

// NewDebugPanel snapshots the debug collaborator.
func NewDebugPanel(d *app.DebugService) *DebugPanel {
	p := &DebugPanel{}
	p.Refresh(d)
	return p
}

// Refresh re-reads sources, strict flag and diagnostics.
func (p *DebugPanel) Refresh(d *app.DebugService) {
	p.sources = d.Sources()
	p.strict = d.Strict()
	p.report = d.Report()
	p.cursor = min(p.cursor, max(len(p.sources)-1, 0))
}

// MoveUp moves the cursor to the previous source.
func (p *DebugPanel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor to the next source.
func (p *DebugPanel) MoveDown() {
	if p.cursor < len(p.sources)-1 {
		p.cursor++
	}
}

// Selected returns the source under the cursor.
func (p *DebugPanel) Selected() (app.SourceState, bool) {
	if len(p.sources) == 0 {
		return app.SourceState{}, false
	}
	return p.sources[p.cursor], true
}

// View renders the panel.
func (p *DebugPanel) View(width int) string {
	var b strings.Builder

	b.WriteString(styles.PanelTitleStyle.Render("Sources"))
	b.WriteString("\n")
	if len(p.sources) == 0 {
		b.WriteString(styles.HiddenStyle.Render("  no sources configured"))
		b.WriteString("\n")
	}
	for i, src := range p.sources {
		check := "[ ]"
		if src.Enabled {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s", check, src.Name, styles.HiddenStyle.Render(src.Path))
		if i == p.cursor {
			b.WriteString(styles.PanelSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(styles.PanelNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	strict := styles.BadgeOffStyle.Render("strict off")
	if p.strict {
		strict = styles.BadgeStyle.Render("strict on")
	}
	b.WriteString(strict)
	b.WriteString("\n\n")

	b.WriteString(styles.PanelTitleStyle.Render(fmt.Sprintf("Duplicate keys (%d)", len(p.report.Duplicates))))
	b.WriteString("\n")
	for i, c := range p.report.Duplicates {
		if i == maxFindings {
			b.WriteString(styles.HiddenStyle.Render(fmt.Sprintf("  … %d more", len(p.report.Duplicates)-maxFindings)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", styles.KeyStyle.Render(c.Key), c.Definition(" | ")))
	}

	b.WriteString("\n")
	b.WriteString(styles.PanelTitleStyle.Render(fmt.Sprintf("Trailing whitespace (%d)", len(p.report.Whitespace))))
	b.WriteString("\n")
	for i, w := range p.report.Whitespace {
		if i == maxFindings {
			b.WriteString(styles.HiddenStyle.Render(fmt.Sprintf("  … %d more", len(p.report.Whitespace)-maxFindings)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s %q\n", styles.KeyStyle.Render(w.Key), w.Field, w.Text))
	}

	return styles.PanelStyle.Width(max(width-4, 20)).Render(strings.TrimRight(b.String(), "\n"))
}
