package entity

import (
	"time"
)

// MemberStatus is a two-state lifecycle flag. There is deliberately no
// transition back from Withdrawn: Withdraw is the only mutator.
type MemberStatus int16

const (
	StatusActive MemberStatus = iota
	StatusWithdrawn
)

func (s MemberStatus) String() string {
	if s == StatusWithdrawn {
		return "withdrawn"
	}
	return "active"
}

// Member is the aggregate root for the identity domain.
// UserID is the login name chosen by the member (letter followed by letters
// or digits, 4-20 chars); ID is the surrogate key assigned by the store.
// Passwords are stored as bcrypt hashes in PasswordHash.
type Member struct {
	ID           int64
	UserID       string
	Nickname     string
	PasswordHash string
	ImageURL     string
	Status       MemberStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Withdraw marks the member as withdrawn. Records are never hard-deleted.
func (m *Member) Withdraw() {
	m.Status = StatusWithdrawn
}

// Withdrawn reports whether the member has left the platform.
func (m *Member) Withdrawn() bool {
	return m.Status == StatusWithdrawn
}

// UpdateProfile replaces the mutable identity fields in place.
func (m *Member) UpdateProfile(userID, passwordHash, nickname, imageURL string) {
	m.UserID = userID
	m.PasswordHash = passwordHash
	m.Nickname = nickname
	m.ImageURL = imageURL
}

// MemberProfile is the public projection returned by member search.
// It intentionally exposes neither UserID nor credentials.
type MemberProfile struct {
	Nickname string
	ImageURL string
}

// MemberInfo is the detail view of a member, with engagement counts.
type MemberInfo struct {
	UserID     string
	Nickname   string
	ImageURL   string
	PostCount  int
	ScrapCount int
}
