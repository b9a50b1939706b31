package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"contactbook/contact"
)

const (
	DefaultPrompt = "Enter a command: "

	greeting = "Welcome to the assistant bot!"
	farewell = "Good bye!"
)

// HandlerFunc runs one command and returns the text to print.
type HandlerFunc func(ctx context.Context, args []string) (string, error)

type Bot struct {
	// In is read line by line until a close command or end of input.
	In io.Reader

	// Out receives the greeting, prompts and command results.
	Out io.Writer

	Prompt string

	ContactService contact.Service

	// Clock stamps exported calendars.
	Clock contact.Clock

	commands map[string]HandlerFunc
}

func Default(svc contact.Service) *Bot {
	b := Bot{
		In:             os.Stdin,
		Out:            os.Stdout,
		Prompt:         DefaultPrompt,
		ContactService: svc,
		Clock:          contact.RealClock{},
		commands:       make(map[string]HandlerFunc),
	}

	b.RegisterGeneralCommands()
	b.RegisterContactCommands()
	b.RegisterBirthdayCommands()
	b.RegisterExportCommands()
	return &b
}

// Handle registers h under name, replacing any previous handler.
func (b *Bot) Handle(name string, h HandlerFunc) {
	b.commands[name] = h
}

// Commands lists registered command names in alphabetical order.
func (b *Bot) Commands() []string {
	names := make([]string, 0, len(b.commands))
	for name := range b.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run greets the user and processes commands until close/exit, end of input
// or context cancellation.
func (b *Bot) Run(ctx context.Context) error {
	b.println(greeting)

	scanner := bufio.NewScanner(b.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(b.Out, b.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		command, args := ParseInput(scanner.Text())
		if command == "close" || command == "exit" {
			b.println(farewell)
			return nil
		}
		b.println(b.Dispatch(ctx, command, args))
	}
}

// Dispatch routes one parsed command to its handler and turns the outcome
// into a single printable result.
func (b *Bot) Dispatch(ctx context.Context, command string, args []string) string {
	h, ok := b.commands[command]
	if !ok {
		return errorMessage(ctx, command, ErrInvalidCommand)
	}

	slog.DebugContext(ctx, "handling command", "command", command, "args", len(args))
	out, err := h(ctx, args)
	if err != nil {
		return errorMessage(ctx, command, err)
	}
	return out
}

func (b *Bot) println(s string) {
	fmt.Fprintln(b.Out, s)
}
