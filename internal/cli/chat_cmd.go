package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/amarkin/studybot/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the planner interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runChatShell(app)
			}
			return runChatPipe(app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message...>",
		Short: "Send one chat message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := joinArgs(args)
			reply := app.Planner.Respond(cmd.Context(), msg)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderMarkup(reply))
			return nil
		},
	}
}

// runChatShell starts the bubbletea REPL.
func runChatShell(app *App) error {
	prog := tea.NewProgram(newChatModel(app))
	_, err := prog.Run()
	return err
}

// runChatPipe services piped stdin: one message per line, one reply block
// per message. Keeps the bot scriptable without a terminal.
func runChatPipe(app *App, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		reply := app.Planner.Respond(context.Background(), line)
		fmt.Fprintln(out, formatter.StripMarkup(reply))
	}
	return scanner.Err()
}
