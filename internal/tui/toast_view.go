package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/acrodrill/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders toast notifications below the main view.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack with the oldest at the top.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	var style lipgloss.Style

	switch t.level {
	case LevelError:
		style = styles.ErrorStyle
	case LevelWarning:
		style = styles.WarningStyle
	default:
		style = styles.StatusStyle
	}

	return style.MaxWidth(toastWidth).Render(t.message)
}

// Overlay places the toast stack right-aligned under background.
func (v *ToastView) Overlay(background string, width int) string {
	content := v.View()
	if content == "" {
		return background
	}
	if width <= 0 {
		width = lipgloss.Width(background)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		background,
		lipgloss.PlaceHorizontal(width, lipgloss.Right, content),
	)
}
