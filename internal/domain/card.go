package domain

import "time"

// BizNumberBase is the floor for server-assigned business numbers.
const BizNumberBase = 1_000_000

// Card is a business card owned by a business user.
type Card struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Phone       string
	Email       string
	Web         string
	Address     string
	BizNumber   int64
	Likes       []string
	OwnerUserID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LikedBy reports whether userID is in the likes set.
func (c *Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike flips userID's membership in the likes set and returns
// whether the user likes the card afterwards. Toggling twice restores
// the original set.
func (c *Card) ToggleLike(userID string) bool {
	for i, id := range c.Likes {
		if id == userID {
			c.Likes = append(c.Likes[:i], c.Likes[i+1:]...)
			return false
		}
	}
	c.Likes = append(c.Likes, userID)
	return true
}
