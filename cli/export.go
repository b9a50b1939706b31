package cli

import (
	"bytes"
	"context"
	"strings"

	"contactbook/export"
)

func (b *Bot) RegisterExportCommands() {
	b.Handle("export", b.handleExportContacts)
	b.Handle("calendar", b.handleExportCalendar)
}

func (b *Bot) handleExportContacts(ctx context.Context, _ []string) (string, error) {
	records, err := b.ContactService.ListContacts(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return noContacts, nil
	}

	var buf bytes.Buffer
	if err := export.VCard(&buf, records); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}

func (b *Bot) handleExportCalendar(ctx context.Context, _ []string) (string, error) {
	upcoming, err := b.ContactService.UpcomingBirthdays(ctx)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return noUpcoming, nil
	}

	var buf bytes.Buffer
	if err := export.Calendar(&buf, upcoming, b.Clock.Now()); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}
