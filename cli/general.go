package cli

import (
	"context"
	"strings"
)

var helpLines = []string{
	"hello                             greet the bot",
	"add <name> <phone>                add a contact or a phone to it",
	"change <name> <old> <new>         replace a phone",
	"phone <name>                      list phones of a contact",
	"remove-phone <name> <phone>       remove a phone",
	"delete <name>                     delete a contact",
	"add-birthday <name> <YYYY-MM-DD>  set a birthday",
	"show-birthday <name>              show a birthday",
	"birthdays                         birthdays in the next 7 days",
	"show all                          list all contacts",
	"export                            print all contacts as vCard",
	"calendar                          print upcoming birthdays as iCalendar",
	"close | exit                      quit",
}

func (b *Bot) RegisterGeneralCommands() {
	b.Handle("hello", b.handleHello)
	b.Handle("help", b.handleHelp)
}

func (b *Bot) handleHello(_ context.Context, _ []string) (string, error) {
	return "How can I help you?", nil
}

func (b *Bot) handleHelp(_ context.Context, _ []string) (string, error) {
	return strings.Join(helpLines, "\n"), nil
}
