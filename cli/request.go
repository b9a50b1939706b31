package cli

import (
	"strings"

	"contactbook/errs"
)

var ErrInvalidCommand = errs.Errorf(errs.EINVALID, "Invalid command.")

// ParseInput splits a line on whitespace. The first token, lowercased, is the
// command; the rest are its arguments.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func usageError(usage string) error {
	return errs.Errorf(errs.EINVALID, "Usage: %s", usage)
}

// bindArgs copies args into dst when the counts match exactly.
func bindArgs(args []string, usage string, dst ...*string) error {
	if len(args) != len(dst) {
		return usageError(usage)
	}
	for i, d := range dst {
		*d = args[i]
	}
	return nil
}
