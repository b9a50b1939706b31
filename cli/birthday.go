package cli

import (
	"context"
	"fmt"
	"strings"

	"contactbook/contact"
)

const noUpcoming = "No upcoming birthdays in the next 7 days."

func (b *Bot) RegisterBirthdayCommands() {
	b.Handle("add-birthday", b.handleAddBirthday)
	b.Handle("show-birthday", b.handleShowBirthday)
	b.Handle("birthdays", b.handleBirthdays)
}

func (b *Bot) handleAddBirthday(ctx context.Context, args []string) (string, error) {
	var name, date string
	if err := bindArgs(args, "add-birthday <name> <YYYY-MM-DD>", &name, &date); err != nil {
		return "", err
	}

	if err := b.ContactService.AddBirthday(ctx, name, date); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s added.", name), nil
}

func (b *Bot) handleShowBirthday(ctx context.Context, args []string) (string, error) {
	var name string
	if err := bindArgs(args, "show-birthday <name>", &name); err != nil {
		return "", err
	}

	bday, err := b.ContactService.Birthday(ctx, name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", name, bday), nil
}

func (b *Bot) handleBirthdays(ctx context.Context, _ []string) (string, error) {
	upcoming, err := b.ContactService.UpcomingBirthdays(ctx)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return noUpcoming, nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s -> %s", u.Name, u.Date.Format(contact.DateLayout))
	}
	return strings.Join(lines, "\n"), nil
}
