package forms

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Its-donkey/ai-directory/internal/ui/model"
	"github.com/Its-donkey/ai-directory/logging"
)

// TimestampLayout renders submission times as ISO-8601 UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Sink receives each valid submission. It stands in for a real backend.
type Sink interface {
	Submit(ctx context.Context, record model.SubmissionRecord) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, record model.SubmissionRecord) error

func (f SinkFunc) Submit(ctx context.Context, record model.SubmissionRecord) error {
	return f(ctx, record)
}

// LogSink writes submissions to a structured logger.
type LogSink struct {
	Logger *logging.Logger
}

func (s LogSink) Submit(_ context.Context, record model.SubmissionRecord) error {
	s.Logger.Info("submission", "Form Submission", record.Fields())
	return nil
}

// BuildRecord maps raw field values onto a new record stamped with now.
func BuildRecord(values map[string]string, now time.Time) model.SubmissionRecord {
	return model.SubmissionRecord{
		ID:             uuid.NewString(),
		SubmitterName:  values[model.FieldSubmitterName],
		SubmitterEmail: values[model.FieldSubmitterEmail],
		ListingName:    values[model.FieldListingName],
		ListingURL:     values[model.FieldListingURL],
		Category:       values[model.FieldCategory],
		PricingModel:   values[model.FieldPricingModel],
		Description:    values[model.FieldDescription],
		Tags:           values[model.FieldTags],
		SubmittedAt:    now.UTC().Format(TimestampLayout),
	}
}
