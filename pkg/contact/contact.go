package contact

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Toast texts shown after a submission.
const (
	ThanksMessage     = "Thank you for your message! We'll get back to you soon."
	IncompleteMessage = "Please fill in all fields."
)

// Message is what the contact form posts.
type Message struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Body  string `json:"message"`
}

// validationError communicates rule violations back to HTTP handlers.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

// IsValidation helps callers distinguish incomplete input from infrastructure failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

// Validate requires every field to carry non-blank text.
func Validate(msg Message) error {
	for _, field := range []string{msg.Name, msg.Email, msg.Body} {
		if strings.TrimSpace(field) == "" {
			return validationError{message: IncompleteMessage}
		}
	}
	return nil
}

// Form accepts contact messages. Nothing is delivered; accepted messages are logged.
type Form struct {
	logger *zap.Logger
}

// NewForm keeps the logger optional so tests stay quiet.
func NewForm(logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{logger: logger}
}

// Submit validates the message and records it.
func (f *Form) Submit(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := Validate(msg); err != nil {
		return err
	}
	f.logger.Info("contact message received",
		zap.String("name", strings.TrimSpace(msg.Name)),
		zap.String("email", strings.TrimSpace(msg.Email)),
		zap.Int("length", len(msg.Body)))
	return nil
}
