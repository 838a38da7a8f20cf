package service

import (
	"context"
	"testing"

	"careerflow-be/internal/dto"
	"careerflow-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sentTo []string
	err    error
}

func (m *recordingMailer) SendWelcome(toEmail, name string) error {
	m.sentTo = append(m.sentTo, toEmail)
	return m.err
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()
	mailer := &recordingMailer{}
	svc := NewAuthService(newTestFactory(t), mailer, 24)

	res, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "sam@example.com",
		Password: "hunter22",
		FullName: "Sam Lee",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, []string{"sam@example.com"}, mailer.sentTo)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "sam@example.com",
			Password: "different",
			FullName: "Sam Again",
		})
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})
}

func TestAuthRegisterSurvivesMailFailure(t *testing.T) {
	ctx := context.Background()
	mailer := &recordingMailer{err: assert.AnError}
	svc := NewAuthService(newTestFactory(t), mailer, 24)

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "sam@example.com",
		Password: "hunter22",
		FullName: "Sam Lee",
	})
	assert.NoError(t, err)
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newTestFactory(t), &recordingMailer{}, 24)

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "sam@example.com",
		Password: "hunter22",
		FullName: "Sam Lee",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(ctx, &dto.LoginRequest{Email: "sam@example.com", Password: "hunter22"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "sam@example.com", Password: "wrong"})
		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	})
}

func TestAuthProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newTestFactory(t), &recordingMailer{}, 24)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "sam@example.com",
		Password: "hunter22",
		FullName: "Sam Lee",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, registered.Id)
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", profile.FullName)
	assert.Equal(t, "sam@example.com", profile.Email)

	t.Run("update full name", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, registered.Id, &dto.UpdateProfileRequest{
			FullName: strPtr("Sam A. Lee"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Sam A. Lee", updated.FullName)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, uuid.New())
		assert.True(t, apperror.IsNotFound(err))
	})
}
