package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"
)

// Supported subcommands:
// - login, logout, whoami: session management
// - guests, invite:         guest list and bulk invitations
// - schedule:               wedding-day timeline (list, add, status, rm, move)
// - gifts:                  registry (list, status)
// - notifications:          inbox (list, read, read-all)
// - gallery:                images (list, upload, rm)
// - rsvp:                   public RSVP link (show, reply)
// - countdown:              days until the wedding

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string) error {
	switch name {
	case "help", "-h", "--help":
		printUsage()

		return nil
	}
	if !isCommand(name) {
		printUsage()

		return errors.Errorf("unknown command %q", name)
	}

	c, shutdown, err := newCLI(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer shutdown()

	return c.dispatch(ctx, name, args)
}

// describeError turns a failure into the single line printed on stderr.
func describeError(err error) string {
	if domainerrors.IsUnauthorized(err) {
		return "session expired, run `plannerctl login`"
	}

	if apiErr, ok := domainerrors.AsAPIError(err); ok {
		var b strings.Builder
		b.WriteString("Error: ")
		b.WriteString(apiErr.Message())
		for _, f := range apiErr.Errors {
			if f.Field == "" {
				fmt.Fprintf(&b, "\n  %s", f.Message)

				continue
			}
			fmt.Fprintf(&b, "\n  %s %s", f.Field, f.Message)
		}

		return b.String()
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.Details() != "" {
			return fmt.Sprintf("Error: %s (%s)", appErr.Message(), appErr.Details())
		}

		return "Error: " + appErr.Message()
	}

	return fmt.Sprintf("Error: %v", err)
}

func printUsage() {
	fmt.Println("Planner CLI")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  plannerctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login -login <email|username> [-password <password>]")
	fmt.Println("  logout")
	fmt.Println("  whoami")
	fmt.Println("  guests [-search text] [-status all|pending|accepted|declined|maybe|not_invited] [-sent all|sent|not_sent]")
	fmt.Println("  invite <guest-id>...")
	fmt.Println("  schedule list")
	fmt.Println("  schedule add -time HH:MM -event <name> [-location l] [-responsible r] [-description d]")
	fmt.Println("  schedule status <event-id> <pending|confirmed|completed>")
	fmt.Println("  schedule move <event-id> <index>")
	fmt.Println("  schedule rm <event-id>")
	fmt.Println("  gifts [-search text] [-status all|available|reserved|purchased] [-priority all|high|medium|low]")
	fmt.Println("  gifts status <gift-id> <available|reserved|purchased>")
	fmt.Println("  notifications [-unread] [-type t] [-search text]")
	fmt.Println("  notifications read <id> | read-all")
	fmt.Println("  gallery list | upload <bucket-url> [prefix] | rm <image-url>")
	fmt.Println("  rsvp <token> [-status accepted|declined|maybe] [-plus-one] [-guests n] [-message m] [-dietary d]")
	fmt.Println("  countdown")
	fmt.Println()
	fmt.Println("Configuration is read from config/config.yaml and PLANNER_* environment variables.")
}
