package doctor

import (
	"context"
	"os/exec"

	"github.com/atotto/clipboard"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// clipboardUnsupported reports whether no clipboard utility was found.
var clipboardUnsupported = func() bool { return clipboard.Unsupported }

// ToolsCheck verifies that the reference opener and a clipboard utility are
// available.
type ToolsCheck struct {
	opener string
}

// NewToolsCheck creates a new tools check for the given opener command.
func NewToolsCheck(opener string) *ToolsCheck {
	return &ToolsCheck{opener: opener}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	// The opener is optional; cards still drill without it.
	if path, err := lookPathFunc(c.opener); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  c.opener,
			Status: StatusWarn,
			Detail: "not found on PATH (needed to open reference links)",
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  c.opener,
			Status: StatusPass,
			Detail: path,
		})
	}

	if clipboardUnsupported() {
		result.Items = append(result.Items, CheckItem{
			Label:  "clipboard",
			Status: StatusWarn,
			Detail: "no clipboard utility found (install xclip, xsel or wl-clipboard)",
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "clipboard",
			Status: StatusPass,
		})
	}

	return result
}
