package models

import "time"

// PersonalAccessToken is an issued API token. Only the SHA-256 digest of the secret is stored.
type PersonalAccessToken struct {
	ID          int64      `db:"id" json:"id"`
	TokenableID int64      `db:"tokenable_id" json:"tokenable_id"`
	Name        string     `db:"name" json:"name"`
	Token       string     `db:"token" json:"-"`
	LastUsedAt  *time.Time `db:"last_used_at" json:"last_used_at"`
	ExpiresAt   *time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Expired reports whether the token has an expiry in the past relative to now.
func (t PersonalAccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now)
}

// APIUser is a machine client allowed to request tokens.
type APIUser struct {
	ID        int64      `db:"id" json:"id"`
	Username  string     `db:"username" json:"username"`
	Password  string     `db:"password" json:"-"`
	Name      *string    `db:"name" json:"name"`
	CreatedAt *time.Time `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	User      APIUser
	TokenID   int64
	ExpiresAt *time.Time
}
