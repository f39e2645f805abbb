package dto

import (
	"time"

	"github.com/google/uuid"

	"second-brain-be/internal/entity"
)

// Wire format is camelCase: existing clients were built against it.

type CreateNoteRequest struct {
	Title   *string `json:"title"`
	Content string  `json:"content" validate:"required"`
	Inbox   bool    `json:"inbox"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID `json:"-"`
	Title   *string   `json:"title"`
	Content string    `json:"content" validate:"required"`
	Inbox   *bool     `json:"inbox"`
}

// ListNotesFilter mirrors the query string. Inbox narrows the result only
// when true; false and absent are identical (documented API asymmetry).
type ListNotesFilter struct {
	Inbox bool
}

type NoteResponse struct {
	Id        uuid.UUID     `json:"id"`
	Title     *string       `json:"title"`
	Content   string        `json:"content"`
	Inbox     bool          `json:"inbox"`
	UserId    uuid.UUID     `json:"userId"`
	Tags      []TagResponse `json:"tags"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func NewNoteResponse(n *entity.Note) *NoteResponse {
	return &NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		Inbox:     n.Inbox,
		UserId:    n.UserId,
		Tags:      NewTagResponses(n.Tags),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func NewNoteResponses(notes []*entity.Note) []*NoteResponse {
	res := make([]*NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, NewNoteResponse(n))
	}
	return res
}
