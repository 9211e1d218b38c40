package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, name string
	err      error
}

func (f *fakeSender) SendWelcomeEmail(to, name string) error {
	f.to, f.name = to, name
	return f.err
}

func newTestService(sender welcomeSender) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, emails: sender}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("eva@example.com", "Eva Stanley")
	require.NoError(t, err)

	assert.Equal(t, TaskWelcome, task.Type())

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, WelcomeEmailPayload{To: "eva@example.com", Name: "Eva Stanley"}, p)
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender)

	task, err := NewWelcomeEmailTask("eva@example.com", "Eva Stanley")
	require.NoError(t, err)

	require.NoError(t, svc.handleWelcomeEmailTask(context.Background(), task))
	assert.Equal(t, "eva@example.com", sender.to)
	assert.Equal(t, "Eva Stanley", sender.name)
}

func TestHandleWelcomeEmailTask_SendFailure(t *testing.T) {
	sendErr := errors.New("resend unavailable")
	svc := newTestService(&fakeSender{err: sendErr})

	task, err := NewWelcomeEmailTask("eva@example.com", "Eva")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.handleWelcomeEmailTask(context.Background(), task), sendErr)
}

func TestHandleWelcomeEmailTask_BadPayload(t *testing.T) {
	svc := newTestService(&fakeSender{})

	err := svc.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestMux_RoutesWelcomeTask(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender)

	task, err := NewWelcomeEmailTask("kian@example.com", "Kian")
	require.NoError(t, err)

	require.NoError(t, svc.Mux().ProcessTask(context.Background(), task))
	assert.Equal(t, "kian@example.com", sender.to)
}
