package api

type RelationshipResponse struct {
	FollowerID  int  `json:"follower_id" example:"1"`
	FollowedID  int  `json:"followed_id" example:"2"`
	IsFollowing bool `json:"is_following" example:"true"`
}
