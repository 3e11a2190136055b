// Package dto provides data transfer objects for the learning endpoints.
package dto

import (
	"time"

	learningDomain "github.com/allisson/lifetrack/internal/learning/domain"
)

// CreateLearningNoteRequest carries a new study note.
type CreateLearningNoteRequest struct {
	Topic   string   `json:"topic"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// ToInput converts the request to the use case input.
func (r CreateLearningNoteRequest) ToInput() learningDomain.CreateLearningNoteInput {
	return learningDomain.CreateLearningNoteInput{
		Topic:   r.Topic,
		Content: r.Content,
		Tags:    r.Tags,
	}
}

// LearningNoteResponse is one study note row.
type LearningNoteResponse struct {
	ID        int64     `json:"id"`
	Topic     string    `json:"topic"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// MapLearningNote converts a domain row to its API shape.
func MapLearningNote(note learningDomain.LearningNote) LearningNoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return LearningNoteResponse{
		ID:        note.ID,
		Topic:     note.Topic,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
	}
}

// MapLearningNotes converts a list of domain rows to their API shape.
func MapLearningNotes(notes []learningDomain.LearningNote) []LearningNoteResponse {
	responses := make([]LearningNoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, MapLearningNote(note))
	}
	return responses
}
