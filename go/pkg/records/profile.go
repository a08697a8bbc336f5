package records

import (
	"sync/atomic"
	"time"

	"github.com/example/orderdesk/go/pkg/models"
)

const (
	roleGuest = "Guest"
	roleAdmin = "Admin"
)

// IDSequence hands out strictly increasing profile ids. Ids follow the wall
// clock in milliseconds and are bumped by one when two calls land in the same
// millisecond. The zero value is ready to use.
type IDSequence struct {
	last atomic.Int64
	now  func() time.Time
}

// NewIDSequence returns a sequence driven by the given clock.
func NewIDSequence(now func() time.Time) *IDSequence {
	return &IDSequence{now: now}
}

// Next returns the next id.
func (s *IDSequence) Next() int64 {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	candidate := now().UnixMilli()
	for {
		last := s.last.Load()
		next := max(candidate, last+1)
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

var defaultIDs IDSequence

// DeriveUserProfile builds the display profile of user using the process-wide
// id sequence.
func DeriveUserProfile(user models.User, cfg models.ProfileConfig) (models.UserProfile, error) {
	return DeriveUserProfileWith(&defaultIDs, user, cfg)
}

// DeriveUserProfileWith is DeriveUserProfile with an explicit id sequence.
func DeriveUserProfileWith(ids *IDSequence, user models.User, cfg models.ProfileConfig) (models.UserProfile, error) {
	var missing []string
	if user.Name == "" {
		missing = append(missing, "name")
	}
	if user.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return models.UserProfile{}, &InvalidUserError{Missing: missing}
	}

	role := roleGuest
	if cfg.IsAdmin {
		role = roleAdmin
	}

	return models.UserProfile{
		ID:      ids.Next(),
		Display: "User: " + user.Name + " (" + role + ")",
		Contact: user.Email,
		Age:     user.Age,
	}, nil
}
