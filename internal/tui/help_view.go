package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// HelpView renders the key reference as markdown through glamour. The
// rendered output is cached per width.
type HelpView struct {
	keys     keyMap
	width    int
	rendered string
}

func NewHelpView(keys keyMap) *HelpView {
	return &HelpView{keys: keys}
}

// Markdown returns the key reference as a markdown document.
func (h *HelpView) Markdown() string {
	var b strings.Builder
	b.WriteString("# acrodrill\n\n")
	b.WriteString("Step through the cards, reveal the definition, and grade yourself. ")
	b.WriteString("Moving forward records the pending grade for the card you leave.\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range h.keys.FullHelp() {
		for _, kb := range group {
			hp := kb.Help()
			if hp.Key == "" {
				continue
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", hp.Key, hp.Desc)
		}
	}
	b.WriteString("\nReview mode visits only cards graded incorrect and ends on its own once none are left.\n")
	return b.String()
}

// View renders the help document wrapped to width.
func (h *HelpView) View(width int) string {
	if h.rendered != "" && h.width == width {
		return h.rendered
	}

	md := h.Markdown()
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		log.Debug().Err(err).Msg("help renderer unavailable")
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("render help")
		return md
	}

	h.width = width
	h.rendered = out
	return out
}
