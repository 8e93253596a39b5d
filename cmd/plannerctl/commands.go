package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/view"
	"planner/internal/errors"
	"planner/internal/util"
)

const titleWidth = 60

type cli struct {
	deps         cliDeps
	out          io.Writer
	now          func() time.Time
	readPassword func() (string, error)
}

type command func(c *cli, ctx context.Context, args []string) error

var commands = map[string]command{
	"login":         (*cli).login,
	"logout":        (*cli).logout,
	"whoami":        (*cli).whoami,
	"guests":        (*cli).guests,
	"invite":        (*cli).invite,
	"schedule":      (*cli).schedule,
	"gifts":         (*cli).gifts,
	"notifications": (*cli).notifications,
	"gallery":       (*cli).gallery,
	"rsvp":          (*cli).rsvp,
	"countdown":     (*cli).countdown,
}

func isCommand(name string) bool {
	_, ok := commands[name]

	return ok
}

func (c *cli) dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %q", name)
	}

	return cmd(c, ctx, args)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	login := fs.String("login", "", "Email or username")
	password := fs.String("password", "", "Password, prompted when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *password == "" && strings.TrimSpace(*login) != "" {
		p, err := c.readPassword()
		if err != nil {
			return errors.Wrap(err, "read password")
		}
		*password = p
	}

	out, err := c.deps.Auth.Login(ctx, entity.Credentials{Login: *login, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Signed in as %s\n", describeUser(out.User))

	return nil
}

func (c *cli) logout(ctx context.Context, _ []string) error {
	if _, err := c.deps.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Signed out")

	return nil
}

func (c *cli) whoami(ctx context.Context, _ []string) error {
	state, err := c.deps.Auth.LoadSession(ctx)
	if err != nil {
		return err
	}
	if !state.Authenticated {
		return domainerrors.NewUnauthorizedError("", state.Redirect)
	}

	suffix := ""
	if state.FromCache {
		suffix = " (cached)"
	}
	fmt.Fprintf(c.out, "%s%s\n", describeUser(state.User), suffix)

	return nil
}

func describeUser(u *entity.User) string {
	if u == nil {
		return "unknown user"
	}
	if u.Email == "" {
		return u.Name
	}

	return fmt.Sprintf("%s <%s>", u.Name, u.Email)
}

func (c *cli) guests(ctx context.Context, args []string) error {
	fs := newFlagSet("guests")
	var filter view.GuestFilter
	fs.StringVar(&filter.Search, "search", "", "Name, email or handle substring")
	status := fs.String("status", "", "RSVP status filter")
	sent := fs.String("sent", "", "Invitation sent filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter.Status = view.StatusFilter(*status)
	filter.Sent = view.SentFilter(*sent)

	result, err := c.deps.Guests.ListGuests(ctx, filter)
	if err != nil {
		return err
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tRSVP\tINVITED\tPLUS ONE\tCONTACT")
	for _, g := range result.Guests {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			g.ID, g.Name, g.EffectiveRSVPStatus(), yesNo(g.Invited), yesNo(g.PlusOne), contactOf(g))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := result.Stats
	fmt.Fprintf(c.out, "\n%d guests, %d accepted, %d pending, %d declined, %d maybe, %d not invited, %d expected\n",
		s.Total, s.Accepted, s.Pending, s.Declined, s.Maybe, s.NotInvited, s.ExpectedAttendees)

	return nil
}

func contactOf(g entity.Guest) string {
	switch {
	case g.TelegramUsername != "":
		return "@" + strings.TrimPrefix(g.TelegramUsername, "@")
	case g.Email != "":
		return g.Email
	}

	return g.Phone
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

func (c *cli) invite(ctx context.Context, args []string) error {
	report, err := c.deps.Guests.SendInvitations(ctx, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Sent %d of %d invitations\n", len(report.Sent), report.Requested)
	for _, f := range report.Failed {
		fmt.Fprintf(c.out, "  %s: %s\n", f.GuestID, f.Reason)
	}
	if report.Provisional {
		fmt.Fprintln(c.out, "The server did not confirm each guest, refresh with `plannerctl guests`")
	}

	return nil
}

func (c *cli) schedule(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		events, err := c.deps.Schedule.GetSchedule(ctx)
		if err != nil {
			return err
		}

		return c.printSchedule(events)
	case "add":
		fs := newFlagSet("schedule add")
		var ev entity.ScheduleEvent
		fs.StringVar(&ev.Time, "time", "", "Start time, HH:MM")
		fs.StringVar(&ev.Event, "event", "", "Event name")
		fs.StringVar(&ev.Location, "location", "", "Location")
		fs.StringVar(&ev.Responsible, "responsible", "", "Person in charge")
		fs.StringVar(&ev.Description, "description", "", "Description")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		created, err := c.deps.Schedule.AddEvent(ctx, ev)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Added %s %s (%s)\n", created.Time, created.Event, created.ID)

		return nil
	case "status":
		if len(rest) != 2 {
			return errors.New("usage: schedule status <event-id> <status>")
		}
		updated, err := c.deps.Schedule.SetEventStatus(ctx, rest[0], entity.EventStatus(rest[1]))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s is now %s\n", updated.Event, updated.Status)

		return nil
	case "move":
		if len(rest) != 2 {
			return errors.New("usage: schedule move <event-id> <index>")
		}
		index, err := strconv.Atoi(rest[1])
		if err != nil {
			return errors.Wrapf(err, "invalid index %q", rest[1])
		}
		events, err := c.deps.Schedule.MoveEvent(ctx, rest[0], index)
		if err != nil {
			return err
		}

		return c.printSchedule(events)
	case "rm":
		if len(rest) != 1 {
			return errors.New("usage: schedule rm <event-id>")
		}
		if err := c.deps.Schedule.DeleteEvent(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Deleted")

		return nil
	}

	return errors.Errorf("unknown schedule action %q", action)
}

func (c *cli) printSchedule(events []entity.ScheduleEvent) error {
	w := c.table()
	fmt.Fprintln(w, "ID\tTIME\tEVENT\tLOCATION\tRESPONSIBLE\tSTATUS")
	for _, ev := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			ev.ID, ev.Time, ev.Event, ev.Location, ev.Responsible, ev.Status)
	}

	return w.Flush()
}

func (c *cli) gifts(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "status" {
		if len(args) != 3 {
			return errors.New("usage: gifts status <gift-id> <status>")
		}
		gift, err := c.deps.Gifts.SetGiftStatus(ctx, args[1], entity.GiftStatus(args[2]))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s is now %s\n", gift.Name, gift.Status)

		return nil
	}

	fs := newFlagSet("gifts")
	var filter view.GiftFilter
	fs.StringVar(&filter.Search, "search", "", "Name or description substring")
	status := fs.String("status", "", "Status filter")
	priority := fs.String("priority", "", "Priority filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter.Status = entity.GiftStatus(*status)
	filter.Priority = entity.GiftPriority(*priority)

	result, err := c.deps.Gifts.ListGifts(ctx, filter)
	if err != nil {
		return err
	}

	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tPRIORITY\tSTATUS\tREMAINING")
	for _, g := range result.Gifts {
		fmt.Fprintf(w, "%s\t%s\t%.2f %s\t%s\t%s\t%d\n",
			g.ID, g.Name, g.Price, g.Currency, g.Priority, g.Status, g.Remaining())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := result.Stats
	fmt.Fprintf(c.out, "\n%d items, %d available, %d reserved, %d purchased, %.2f of %.2f purchased\n",
		s.Total, s.Available, s.Reserved, s.Purchased, s.PurchasedValue, s.TotalValue)

	return nil
}

func (c *cli) notifications(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "")

	switch action {
	case "read":
		if len(rest) != 1 {
			return errors.New("usage: notifications read <id>")
		}
		if err := c.deps.Notifications.MarkRead(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Marked as read")

		return nil
	case "read-all":
		if err := c.deps.Notifications.MarkAllRead(ctx); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Marked all as read")

		return nil
	case "":
	default:
		return errors.Errorf("unknown notifications action %q", action)
	}

	fs := newFlagSet("notifications")
	var filter view.NotificationFilter
	unread := fs.Bool("unread", false, "Only unread notifications")
	typ := fs.String("type", "", "Notification type")
	fs.StringVar(&filter.Search, "search", "", "Title or description substring")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	filter.Type = entity.NotificationType(*typ)
	if *unread {
		filter.Read = view.ReadUnread
	}

	result, err := c.deps.Notifications.ListNotifications(ctx, filter)
	if err != nil {
		return err
	}

	w := c.table()
	fmt.Fprintln(w, "ID\t \tTYPE\tTITLE\tWHEN")
	for _, n := range result.Notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			n.ID, marker, n.Type, util.TruncateText(n.Title, titleWidth), c.age(n.CreatedAt))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\n%d unread\n", result.Unread)

	return nil
}

func (c *cli) gallery(ctx context.Context, args []string) error {
	action, rest := splitAction(args, "list")

	switch action {
	case "list":
		urls, err := c.deps.Gallery.ListImages(ctx)
		if err != nil {
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(c.out, u)
		}

		return nil
	case "upload":
		if len(rest) < 1 || len(rest) > 2 {
			return errors.New("usage: gallery upload <bucket-url> [prefix]")
		}
		prefix := ""
		if len(rest) == 2 {
			prefix = rest[1]
		}
		urls, err := c.deps.Gallery.UploadFromBucket(ctx, rest[0], prefix)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Uploaded %d images\n", len(urls))

		return nil
	case "rm":
		if len(rest) != 1 {
			return errors.New("usage: gallery rm <image-url>")
		}
		if err := c.deps.Gallery.DeleteImage(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "Deleted")

		return nil
	}

	return errors.Errorf("unknown gallery action %q", action)
}

func (c *cli) rsvp(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return errors.New("usage: rsvp <token> [-status s]")
	}
	token := args[0]

	fs := newFlagSet("rsvp")
	status := fs.String("status", "", "Reply: accepted, declined or maybe")
	var sub entity.RSVPSubmission
	fs.BoolVar(&sub.PlusOne, "plus-one", false, "Bringing a companion")
	fs.IntVar(&sub.GuestCount, "guests", 1, "Number of people attending")
	fs.StringVar(&sub.Message, "message", "", "Message to the couple")
	fs.StringVar(&sub.Dietary, "dietary", "", "Dietary requirements")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var (
		inv *entity.RSVPInvitation
		err error
	)
	if *status == "" {
		inv, err = c.deps.RSVP.GetInvitation(ctx, token)
	} else {
		sub.Status = entity.RSVPStatus(*status)
		inv, err = c.deps.RSVP.Submit(ctx, token, &sub)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s, you are invited to %s\n", inv.GuestName, inv.WeddingTitle)
	fmt.Fprintf(c.out, "%s at %s\n", inv.WeddingDate.Format("Monday, January 2, 2006"), inv.Venue)
	fmt.Fprintf(c.out, "Reply: %s\n", inv.RSVPStatus)

	return nil
}

func (c *cli) countdown(ctx context.Context, _ []string) error {
	cd, err := c.deps.Wedding.Countdown(ctx, c.now())
	if err != nil {
		return err
	}

	switch {
	case cd.Days > 1:
		fmt.Fprintf(c.out, "%d days until %s\n", cd.Days, cd.Title)
	case cd.Days == 1:
		fmt.Fprintf(c.out, "1 day until %s\n", cd.Title)
	case cd.Days == 0:
		fmt.Fprintf(c.out, "%s is today\n", cd.Title)
	default:
		fmt.Fprintf(c.out, "%s was %d days ago\n", cd.Title, -cd.Days)
	}

	return nil
}

// age renders t relative to now for the last day and as a date before that.
func (c *cli) age(t time.Time) string {
	d := c.now().Sub(t)
	if d < 0 || d >= 24*time.Hour {
		return t.Local().Format(time.DateTime)
	}

	return util.FormatDuration(d) + " ago"
}

// splitAction separates a leading verb from the flags that follow it.
func splitAction(args []string, fallback string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return fallback, args
	}

	return args[0], args[1:]
}
