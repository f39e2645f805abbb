package specification

import "gorm.io/gorm"

// InboxOnly narrows a note query to inbox-flagged rows. Listing applies it
// only when the caller asks for inbox=true; inbox=false performs no
// filtering at all. Clients depend on that asymmetry, so it stays.
type InboxOnly struct{}

func (s InboxOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("inbox = ?", true)
}
