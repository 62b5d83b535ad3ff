package models

import (
	"time"
)

// Follow is a directed edge: the follower sees the followed user in their
// "following" list. The (follower, following) pair is unique at the storage
// layer, which is the final arbiter against concurrent duplicate follows.
type Follow struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	FollowerUserID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"follower_user_id"`
	FollowingUserID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"following_user_id"`

	FollowerUser  User `json:"-" gorm:"foreignKey:FollowerUserID;constraint:OnDelete:CASCADE"`
	FollowingUser User `json:"-" gorm:"foreignKey:FollowingUserID;constraint:OnDelete:CASCADE"`
}
