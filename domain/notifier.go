package domain

import (
	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

type AnnouncementField struct {
	Name  string
	Value string
}

// Announcement is a human readable marketplace event, e.g. a sale or a mint
type Announcement struct {
	Title       string
	Description string
	ImageUrl    string
	Fields      []AnnouncementField
}

// Notifier publishes announcements. Delivery is best effort and never fails the caller.
type Notifier interface {
	Announce(c ctx.Ctx, a *Announcement)
}
