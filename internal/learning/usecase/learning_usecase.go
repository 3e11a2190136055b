package usecase

import (
	"context"

	learningDomain "github.com/allisson/lifetrack/internal/learning/domain"
	"github.com/allisson/lifetrack/internal/validation"
)

const weeklyWindowDays = 7

type learningUseCase struct {
	repo LearningNoteRepository
}

// NewLearningUseCase creates the learning use case.
func NewLearningUseCase(repo LearningNoteRepository) LearningUseCase {
	return &learningUseCase{repo: repo}
}

func (l *learningUseCase) CreateNote(
	ctx context.Context,
	userID int64,
	input learningDomain.CreateLearningNoteInput,
) (learningDomain.LearningNote, error) {
	if err := input.Validate(); err != nil {
		return learningDomain.LearningNote{}, validation.WrapValidationError(err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	note := learningDomain.LearningNote{
		UserID:  userID,
		Topic:   input.Topic,
		Content: input.Content,
		Tags:    tags,
	}
	if err := l.repo.Create(ctx, &note); err != nil {
		return learningDomain.LearningNote{}, err
	}
	return note, nil
}

func (l *learningUseCase) ListNotes(
	ctx context.Context,
	userID int64,
) ([]learningDomain.LearningNote, error) {
	return l.repo.List(ctx, userID)
}

// WeeklyTopics lists the distinct topics studied in the past 7 days, newest
// first. Used by the weekly insight prompt.
func (l *learningUseCase) WeeklyTopics(ctx context.Context, userID int64) ([]string, error) {
	notes, err := l.repo.ListByWindow(ctx, userID, weeklyWindowDays)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(notes))
	topics := make([]string, 0, len(notes))
	for _, note := range notes {
		if _, ok := seen[note.Topic]; ok {
			continue
		}
		seen[note.Topic] = struct{}{}
		topics = append(topics, note.Topic)
	}
	return topics, nil
}

func (l *learningUseCase) DeleteNote(ctx context.Context, userID, id int64) error {
	return l.repo.Delete(ctx, userID, id)
}
