package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		ok   bool
	}{
		{name: "complete", msg: Message{Name: "Ada", Email: "ada@example.com", Body: "Do you deliver?"}, ok: true},
		{name: "missing name", msg: Message{Email: "ada@example.com", Body: "hi"}},
		{name: "blank email", msg: Message{Name: "Ada", Email: "   ", Body: "hi"}},
		{name: "missing body", msg: Message{Name: "Ada", Email: "ada@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.msg)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, IncompleteMessage, err.Error())
		})
	}
}

func TestIsValidationIgnoresOtherErrors(t *testing.T) {
	assert.False(t, IsValidation(errors.New("boom")))
	assert.False(t, IsValidation(nil))
}

func TestSubmitLogsAcceptedMessages(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	form := NewForm(zap.New(core))

	require.NoError(t, form.Submit(context.Background(), Message{Name: "Ada", Email: "ada@example.com", Body: "hello"}))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "contact message received", logs.All()[0].Message)

	err := form.Submit(context.Background(), Message{Name: "Ada"})
	assert.True(t, IsValidation(err))
	assert.Equal(t, 1, logs.Len())
}

func TestSubmitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewForm(nil).Submit(ctx, Message{Name: "Ada", Email: "a@b", Body: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
