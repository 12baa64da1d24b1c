package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ConflictField enumerates the member fields covered by the uniqueness rule.
type ConflictField string

const (
	FieldUserID   ConflictField = "user_id"
	FieldNickname ConflictField = "nickname"
)

// DuplicateError reports every uniqueness violation found in one check, not
// just the first, so callers can surface all conflicts at once. The map is
// keyed by field and holds the offending candidate value.
type DuplicateError struct {
	Fields map[ConflictField]string
}

func (e *DuplicateError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, v := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s=%q", f, v))
	}
	sort.Strings(parts)
	return "duplicate member field(s): " + strings.Join(parts, ", ")
}

// Details converts the conflict map into a plain field→value map for API
// error payloads.
func (e *DuplicateError) Details() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for f, v := range e.Fields {
		out[string(f)] = v
	}
	return out
}

// UnknownUserError means the referenced member identity does not exist.
// UserID holds whichever identifier the caller supplied.
type UnknownUserError struct {
	UserID string
}

func (e *UnknownUserError) Error() string {
	return "unknown member: " + e.UserID
}

var (
	// ErrMemberWithdrawn is returned on login before any password check
	// when the account exists but has been withdrawn.
	ErrMemberWithdrawn = errors.New("member account has been withdrawn")

	// ErrPasswordMismatch is returned when credentials fail for an
	// existing, active member.
	ErrPasswordMismatch = errors.New("password does not match")
)
