package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/config"
)

// ConfigCheck reports where configuration comes from.
type ConfigCheck struct {
	path string
}

func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{path: path}
}

func (c *ConfigCheck) Name() string {
	return "Config"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	info, err := os.Stat(c.path)
	switch {
	case os.IsNotExist(err):
		result.Items = append(result.Items, CheckItem{
			Label:  c.path,
			Status: StatusWarn,
			Detail: "not found, using defaults (run 'acrodrill init')",
		})
	case err != nil:
		result.Items = append(result.Items, CheckItem{Label: c.path, Status: StatusFail, Detail: err.Error()})
	case info.IsDir():
		result.Items = append(result.Items, CheckItem{Label: c.path, Status: StatusFail, Detail: "is a directory"})
	default:
		result.Items = append(result.Items, CheckItem{Label: c.path, Status: StatusPass})
	}

	return result
}

// SourcesCheck parses every file of every configured source. Disabled
// sources are listed but not read.
type SourcesCheck struct {
	sources []config.Source
	baseDir string
}

func NewSourcesCheck(sources []config.Source, baseDir string) *SourcesCheck {
	return &SourcesCheck{sources: sources, baseDir: baseDir}
}

func (c *SourcesCheck) Name() string {
	return "Sources"
}

func (c *SourcesCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if len(c.sources) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "sources",
			Status: StatusFail,
			Detail: "none configured",
		})
		return result
	}

	for _, src := range c.sources {
		if !src.IsEnabled() {
			result.Items = append(result.Items, CheckItem{Label: src.Name, Status: StatusPass, Detail: "disabled"})
			continue
		}

		files, err := src.Resolve(c.baseDir)
		if err != nil {
			result.Items = append(result.Items, CheckItem{Label: src.Name, Status: StatusFail, Detail: err.Error()})
			continue
		}

		for _, f := range files {
			label := src.Name
			if src.IsPattern() {
				label = src.Name + ": " + f
			}

			rows, err := card.ReadRows(card.FileSource{Path: f})
			if err != nil {
				result.Items = append(result.Items, CheckItem{Label: label, Status: StatusFail, Detail: err.Error()})
				continue
			}
			result.Items = append(result.Items, CheckItem{
				Label:  label,
				Status: StatusPass,
				Detail: fmt.Sprintf("%d rows", len(rows)),
			})
		}
	}

	return result
}
