// Package domain defines the learning note model.
package domain

import (
	"time"

	validation "github.com/jellydator/validation"
)

// LearningNote is a study note row. Tags are stored as a JSON array.
type LearningNote struct {
	ID        int64
	UserID    int64
	Topic     string
	Content   string
	Tags      []string
	CreatedAt time.Time
}

// CreateLearningNoteInput carries a new learning note.
type CreateLearningNoteInput struct {
	Topic   string
	Content string
	Tags    []string
}

// Validate checks the input before persistence.
func (i CreateLearningNoteInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Topic, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.Content, validation.Required),
	)
}
