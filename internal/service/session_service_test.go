package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lingua/backend/internal/model"
	"lingua/backend/internal/objectstore"
	"lingua/backend/internal/repository/mock"
	"lingua/backend/internal/service"
)

func TestSessionService_Save_MissingLanguages(t *testing.T) {
	svc := service.NewSessionService(nil)

	_, err := svc.Save(context.Background(), model.ConversationSession{LanguageA: "English"})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Save(context.Background(), model.ConversationSession{LanguageB: "Spanish"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSessionService_Save_NoStore(t *testing.T) {
	svc := service.NewSessionService(nil)
	_, err := svc.Save(context.Background(), model.ConversationSession{
		LanguageA: "English",
		LanguageB: "Spanish",
	})
	require.ErrorIs(t, err, service.ErrStoreSave)
}

func TestSessionService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s model.ConversationSession) (model.ConversationSession, error) {
			s.ID = "session-1"
			return s, nil
		})

	svc := service.NewSessionService(repo)
	saved, err := svc.Save(context.Background(), model.ConversationSession{
		LanguageA: "English",
		LanguageB: "Spanish",
		Messages: []model.SessionMessage{
			{Text: "hello", Translation: "hola", Sender: "a"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "session-1", saved.ID)
	require.Len(t, saved.Messages, 1)
}

func TestSessionService_Save_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().
		Store(gomock.Any(), gomock.Any()).
		Return(model.ConversationSession{}, errors.New("bucket rejected the write"))

	svc := service.NewSessionService(repo)
	_, err := svc.Save(context.Background(), model.ConversationSession{
		LanguageA: "English",
		LanguageB: "Spanish",
	})
	require.ErrorIs(t, err, service.ErrStoreSave)
}

func TestSessionService_List_NoStore(t *testing.T) {
	svc := service.NewSessionService(nil)
	sessions, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, sessions)
	require.Empty(t, sessions)
}

func TestSessionService_List_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), "user-1", service.DefaultHistoryLimit).
		Return(nil, objectstore.ErrNotConfigured)

	svc := service.NewSessionService(repo)
	sessions, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, sessions)
}

func TestSessionService_Delete(t *testing.T) {
	svc := service.NewSessionService(nil)
	err := svc.Delete(context.Background(), "")
	require.ErrorIs(t, err, service.ErrInvalid)

	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), "session-1").Return(nil)
	svc = service.NewSessionService(repo)
	require.NoError(t, svc.Delete(context.Background(), "session-1"))
}
