package models

import "time"

// LocalSession is the credential the terminal client keeps on disk.
type LocalSession struct {
	Identity  Identity
	Token     string
	ExpiresAt time.Time
	SavedAt   time.Time
}

// Expired reports whether the credential is no longer usable at now.
func (s LocalSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
