package commands

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/hay-kot/acrodrill/internal/core/card"
	"github.com/hay-kot/acrodrill/internal/core/config"
)

// ApplySourceOverrides replaces the configured sources with the files given
// via --source. Relative paths then resolve against the working directory.
func ApplySourceOverrides(cfg *config.Config, flags *Flags) {
	if len(flags.Sources) == 0 {
		return
	}
	cfg.Sources = config.SourcesFromPaths(flags.FileSources())
	cfg.BaseDir = ""
}

// ExtraSources returns the card sources that do not come from the config,
// which today is only piped stdin.
func ExtraSources(flags *Flags, stdin *os.File) ([]card.Source, error) {
	if !flags.WantsStdin() {
		return nil, nil
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return nil, fmt.Errorf("--source %s expects CSV piped on stdin", StdinSource)
	}

	src, err := readStdinSource(stdin)
	if err != nil {
		return nil, err
	}
	return []card.Source{src}, nil
}

func readStdinSource(r io.Reader) (card.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &card.SourceUnavailableError{Source: "stdin", Err: err}
	}
	return card.ReaderSource{Label: "stdin", Text: string(data)}, nil
}
