package dto

import (
	"github.com/google/uuid"

	"second-brain-be/internal/entity"
)

type TagResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func NewTagResponse(t *entity.Tag) TagResponse {
	return TagResponse{
		Id:   t.Id,
		Name: t.Name,
	}
}

func NewTagResponses(tags []entity.Tag) []TagResponse {
	res := make([]TagResponse, 0, len(tags))
	for i := range tags {
		res = append(res, NewTagResponse(&tags[i]))
	}
	return res
}
