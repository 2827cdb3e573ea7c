package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"

	"toolbox/internal/calculator"
	"toolbox/internal/config"
	"toolbox/pkg/cache"
	"toolbox/pkg/serrors"
)

// calcCommand constructs the 'calc' subcommand evaluating one operation
// locally. Arguments are a JSON object given as the second argument, or read
// from stdin when it is "-".
func calcCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc [operation] [arguments|-]",
		Short: "Evaluates an operation without the API server",
		Example: `  toolbox calc --list
  toolbox calc irr '{"cashFlows": [-1000, 300, 400, 500]}'
  echo '{"a": "99999999999999999999", "b": 2}' | toolbox calc big-mul -`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := calculator.New(nil,
				cache.NewMemory(cfg.Cache.MaxEntries),
				calculator.DefaultRegistry(),
				nil,
				calculator.NewOptions(cfg))
			if err != nil {
				return err //nolint: wrapcheck
			}

			out := cmd.OutOrStdout()
			if list, _ := cmd.Flags().GetBool("list"); list {
				return printOperations(out, calc.Operations())
			}
			if len(args) == 0 {
				return cmd.Usage()
			}

			var input []byte
			if len(args) == 2 {
				input = []byte(args[1])
				if args[1] == "-" {
					if input, err = io.ReadAll(cmd.InOrStdin()); err != nil {
						return fmt.Errorf("could not read arguments: %w", err)
					}
				}
			}

			res, err := calc.Evaluate(context.Background(), args[0], input)
			if err != nil {
				code, msg := serrors.Describe(err)
				fmt.Fprintf(os.Stderr, "%s: %s\n", code, msg) //nolint: forbidigo

				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintln(out, string(res))

			return err //nolint: wrapcheck
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("list", "l", false, "List available operations as JSON")

	return cmd
}

func printOperations(w io.Writer, ops []calculator.Operation) error {
	var e jx.Encoder
	e.SetIdent(2)
	e.Arr(func(e *jx.Encoder) {
		for _, op := range ops {
			e.Obj(func(e *jx.Encoder) {
				e.Field("name", func(e *jx.Encoder) { e.Str(op.Name) })
				e.Field("group", func(e *jx.Encoder) { e.Str(string(op.Group)) })
				e.Field("summary", func(e *jx.Encoder) { e.Str(op.Summary) })
			})
		}
	})

	_, err := fmt.Fprintln(w, e.String())

	return err //nolint: wrapcheck
}
