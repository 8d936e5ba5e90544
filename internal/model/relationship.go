// File: internal/model/relationship.go
package model

import "time"

// Relationship is a directed edge: FollowerID follows FollowedID.
type Relationship struct {
	ID         int       `db:"id" json:"id"`
	FollowerID int       `db:"follower_id" json:"follower_id"`
	FollowedID int       `db:"followed_id" json:"followed_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
