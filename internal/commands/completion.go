package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/acrodrill/internal/app"
)

// KeyCompleter returns a ShellCompleteFunc that suggests card keys as
// positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func KeyCompleter(a *app.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		cards, err := a.Cards.Reload(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, c := range cards {
			_, _ = fmt.Fprintln(w, c.Key)
		}
	}
}
