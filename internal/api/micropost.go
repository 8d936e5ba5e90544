package api

import (
	"time"

	"sample-app/internal/model"
	"sample-app/internal/service"
)

type CreateMicropostRequest struct {
	Content string `json:"content" form:"content" example:"Lorem ipsum"`
}

func (r CreateMicropostRequest) Input() service.MicropostInput {
	return service.MicropostInput{Content: r.Content}
}

type MicropostResponse struct {
	ID        int       `json:"id" example:"1"`
	UserID    int       `json:"user_id" example:"1"`
	Content   string    `json:"content" example:"Lorem ipsum"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMicropostResponse(m model.Micropost) MicropostResponse {
	return MicropostResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func NewMicropostResponses(posts []model.Micropost) []MicropostResponse {
	out := make([]MicropostResponse, 0, len(posts))
	for _, m := range posts {
		out = append(out, NewMicropostResponse(m))
	}
	return out
}
