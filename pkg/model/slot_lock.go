package model

import "time"

// SlotLock is an advisory lock document preventing concurrent booking writes
// for the same staff member and date. The _id encodes the (staff, date) pair,
// so a duplicate-key insert failure means another booker holds the section.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
