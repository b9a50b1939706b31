package cli

import (
	"context"
	"log/slog"

	"contactbook/errs"
	"contactbook/pkg/sentry"
)

// errorMessage maps an error to the line shown to the user. Errors that are
// not application errors are logged and reported.
func errorMessage(ctx context.Context, command string, err error) string {
	if errs.ErrorCode(err) == errs.EINTERNAL {
		slog.ErrorContext(ctx, "command failed", "command", command, "error", err)
		sentry.WithContext(ctx).
			WithTags(map[string]string{"command": command}).
			Error(err)
	}
	return errs.ErrorMessage(err)
}
