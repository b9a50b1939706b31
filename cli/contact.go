package cli

import (
	"context"
	"fmt"
	"strings"
)

const noContacts = "No contacts found."

func (b *Bot) RegisterContactCommands() {
	b.Handle("add", b.handleAddContact)
	b.Handle("change", b.handleChangePhone)
	b.Handle("phone", b.handlePhones)
	b.Handle("remove-phone", b.handleRemovePhone)
	b.Handle("delete", b.handleDeleteContact)
	b.Handle("show", b.handleShow)
}

func (b *Bot) handleAddContact(ctx context.Context, args []string) (string, error) {
	var name, phone string
	if err := bindArgs(args, "add <name> <phone>", &name, &phone); err != nil {
		return "", err
	}

	created, err := b.ContactService.AddContact(ctx, name, phone)
	if err != nil {
		return "", err
	}
	if created {
		return fmt.Sprintf("Contact %s added.", name), nil
	}
	return fmt.Sprintf("Contact %s updated.", name), nil
}

func (b *Bot) handleChangePhone(ctx context.Context, args []string) (string, error) {
	var name, oldPhone, newPhone string
	if err := bindArgs(args, "change <name> <old_phone> <new_phone>", &name, &oldPhone, &newPhone); err != nil {
		return "", err
	}

	if err := b.ContactService.ChangePhone(ctx, name, oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone for %s changed.", name), nil
}

func (b *Bot) handlePhones(ctx context.Context, args []string) (string, error) {
	var name string
	if err := bindArgs(args, "phone <name>", &name); err != nil {
		return "", err
	}

	phones, err := b.ContactService.Phones(ctx, name)
	if err != nil {
		return "", err
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(values, "; ")), nil
}

func (b *Bot) handleRemovePhone(ctx context.Context, args []string) (string, error) {
	var name, phone string
	if err := bindArgs(args, "remove-phone <name> <phone>", &name, &phone); err != nil {
		return "", err
	}

	if err := b.ContactService.RemovePhone(ctx, name, phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s removed from %s.", phone, name), nil
}

func (b *Bot) handleDeleteContact(ctx context.Context, args []string) (string, error) {
	var name string
	if err := bindArgs(args, "delete <name>", &name); err != nil {
		return "", err
	}

	if err := b.ContactService.DeleteContact(ctx, name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s deleted.", name), nil
}

// handleShow only knows "show all".
func (b *Bot) handleShow(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 || args[0] != "all" {
		return "", ErrInvalidCommand
	}

	records, err := b.ContactService.ListContacts(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return noContacts, nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}
