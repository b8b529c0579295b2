package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/logger"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	failures int
	calls    int
	sent     []*gomail.Message
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("421 service not available")
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSendVerificationCode(t *testing.T) {
	sender := &fakeSender{}
	m := NewMailer("Troski <no-reply@troski.app>", sender, logger.NewNopLogger())

	require.NoError(t, m.SendVerificationCode(context.Background(), "ama@troski.app", "482913"))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"ama@troski.app"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Troski <no-reply@troski.app>"}, msg.GetHeader("From"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "482913")
}

func TestSendVerificationCode_RetriesTransientFailure(t *testing.T) {
	sender := &fakeSender{failures: 1}
	m := NewMailer("no-reply@troski.app", sender, logger.NewNopLogger())

	require.NoError(t, m.SendVerificationCode(context.Background(), "kofi@troski.app", "000123"))
	assert.Equal(t, 2, sender.calls)
}

func TestSendVerificationCode_GivesUp(t *testing.T) {
	sender := &fakeSender{failures: 10}
	m := NewMailer("no-reply@troski.app", sender, logger.NewNopLogger())

	err := m.SendVerificationCode(context.Background(), "kofi@troski.app", "000123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send verification email")
	assert.Equal(t, 3, sender.calls)
}
