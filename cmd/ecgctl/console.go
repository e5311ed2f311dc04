package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/ivanzxc/go-ecg-stream/internal/console"
	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

type lineReader interface {
	Readline() (string, error)
}

func newConsoleCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Edit parameters interactively and generate windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.catalog()
			if err != nil {
				return err
			}
			sess := console.NewSession(signal.DefaultCanvas(), c)
			if root.Preset != "" {
				if _, err := sess.Exec("preset " + root.Preset); err != nil {
					return wrapExit(exitCommandError, "failed to select preset", err)
				}
			}

			items := make([]readline.PrefixCompleterInterface, 0, len(console.Commands()))
			for _, name := range console.Commands() {
				items = append(items, readline.PcItem(name))
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:       "ecg> ",
				AutoComplete: readline.NewPrefixCompleter(items...),
				Stdout:       cmd.OutOrStdout(),
			})
			if err != nil {
				return wrapExit(exitFailure, "failed to start console", err)
			}
			defer rl.Close()

			return runConsole(rl, sess, cmd.OutOrStdout())
		},
	}
}

// runConsole termina con quit, EOF o Ctrl-C sobre una línea vacía. Los
// errores de comando se muestran y la sesión sigue.
func runConsole(rl lineReader, sess *console.Session, out io.Writer) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return wrapExit(exitFailure, "read failed", err)
		}

		res, err := sess.Exec(line)
		if errors.Is(err, console.ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(out, strings.TrimRight(res, "\n"))
		}
	}
}
