package view

import (
	"strings"

	"planner/internal/domain/entity"
)

// ReadFilter selects notifications by read state.
type ReadFilter string

const (
	ReadAll    ReadFilter = "all"
	ReadUnread ReadFilter = "unread"
	ReadRead   ReadFilter = "read"
)

// NotificationFilter is the criteria of the inbox.
type NotificationFilter struct {
	Search string                  `json:"search" query:"search"`
	Type   entity.NotificationType `json:"type" query:"type"`
	Read   ReadFilter              `json:"read" query:"read"`
}

// Valid reports whether the type and read criteria are known values.
func (f NotificationFilter) Valid() bool {
	switch f.Read {
	case "", ReadAll, ReadUnread, ReadRead:
	default:
		return false
	}

	return isAny(f.Type) || f.Type.IsValid()
}

// NotificationView is a filtered inbox with the unread count of the whole inbox.
type NotificationView struct {
	Notifications []entity.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// FilterNotifications returns the notifications matching every criterion of f.
func FilterNotifications(items []entity.Notification, f NotificationFilter) []entity.Notification {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entity.Notification, 0, len(items))

	for _, n := range items {
		if !isAny(f.Type) && n.Type != f.Type {
			continue
		}
		if f.Read == ReadUnread && n.Read || f.Read == ReadRead && !n.Read {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(n.Title), needle) &&
			!strings.Contains(strings.ToLower(n.Description), needle) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// CountUnread counts notifications not yet read.
func CountUnread(items []entity.Notification) int {
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}

	return count
}

// BuildNotificationView filters items with f and counts unread over the whole inbox.
func BuildNotificationView(items []entity.Notification, f NotificationFilter) NotificationView {
	return NotificationView{
		Notifications: FilterNotifications(items, f),
		Unread:        CountUnread(items),
	}
}
