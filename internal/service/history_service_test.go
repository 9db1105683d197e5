package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lingua/backend/internal/model"
	"lingua/backend/internal/objectstore"
	"lingua/backend/internal/repository/mock"
	"lingua/backend/internal/service"
)

func TestHistoryService_List_NoStore(t *testing.T) {
	svc := service.NewHistoryService(nil, nil)

	translations, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err, "an unconfigured store means empty history, not an error")
	require.NotNil(t, translations)
	require.Empty(t, translations)
}

func TestHistoryService_List_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), "user-1", service.DefaultHistoryLimit).
		Return(nil, objectstore.ErrNotConfigured)

	svc := service.NewHistoryService(repo, nil)
	translations, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, translations)
}

func TestHistoryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), "user-1", service.DefaultHistoryLimit).
		Return([]model.Translation{
			{ID: "a", SourceText: "hello", TranslatedText: "hola"},
			{ID: "b", SourceText: "bye", TranslatedText: "adiós"},
		}, nil)

	svc := service.NewHistoryService(repo, nil)
	translations, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, translations, 2)
	require.Equal(t, "a", translations[0].ID)
}

func TestHistoryService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTranslationRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), "", service.DefaultHistoryLimit).
		Return(nil, errors.New("store exploded"))

	svc := service.NewHistoryService(repo, nil)
	_, err := svc.List(context.Background(), "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "list history")
}

func TestHistoryService_Delete_EmptyID(t *testing.T) {
	svc := service.NewHistoryService(nil, nil)
	err := svc.Delete(context.Background(), "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestHistoryService_Delete_NoStore(t *testing.T) {
	svc := service.NewHistoryService(nil, nil)
	err := svc.Delete(context.Background(), "some-id")
	require.ErrorIs(t, err, service.ErrStoreSave)
}

func TestHistoryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTranslationRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), "obj-1").Return(nil)

	svc := service.NewHistoryService(repo, nil)
	require.NoError(t, svc.Delete(context.Background(), "obj-1"))
}

func TestHistoryService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationRepository(ctrl)
	translations.EXPECT().
		List(gomock.Any(), "user-1", service.DefaultHistoryLimit).
		Return([]model.Translation{{ID: "t1"}}, nil)
	sessions := mock.NewMockSessionRepository(ctrl)
	sessions.EXPECT().
		List(gomock.Any(), "user-1", service.DefaultHistoryLimit).
		Return([]model.ConversationSession{{ID: "s1", CreatedAt: time.Now()}}, nil)

	svc := service.NewHistoryService(translations, sessions)
	export, err := svc.Export(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, export.Translations, 1)
	require.Len(t, export.Sessions, 1)
}

func TestHistoryService_Export_NoStore(t *testing.T) {
	svc := service.NewHistoryService(nil, nil)
	export, err := svc.Export(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, export.Translations)
	require.Empty(t, export.Translations)
	require.NotNil(t, export.Sessions)
	require.Empty(t, export.Sessions)
}

func TestHistoryService_Export_SessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	translations := mock.NewMockTranslationRepository(ctrl)
	translations.EXPECT().
		List(gomock.Any(), "user-1", service.DefaultHistoryLimit).
		Return([]model.Translation{}, nil).
		AnyTimes()
	sessions := mock.NewMockSessionRepository(ctrl)
	sessions.EXPECT().
		List(gomock.Any(), "user-1", service.DefaultHistoryLimit).
		Return(nil, errors.New("store exploded"))

	svc := service.NewHistoryService(translations, sessions)
	_, err := svc.Export(context.Background(), "user-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "list sessions")
}
