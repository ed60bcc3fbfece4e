package share

import "time"

// Expiry is how long a share link stays valid after creation.
const Expiry = 7 * 24 * time.Hour

// MaxLinks caps the stored collection at the most recent links.
const MaxLinks = 10

// ShareLink is a simulated, time-limited reference to a snapshot of the
// data. Nothing is reachable at the URL; sharing never exposes data to
// another party.
type ShareLink struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	AccessCount int       `json:"accessCount"`
}

// Expired reports whether the link has passed its expiry at the given time.
func (l ShareLink) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
