package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lingua/backend/internal/model"
	"lingua/backend/internal/repository/mock"
	"lingua/backend/internal/service"
)

func TestLanguageService_List_NoStore(t *testing.T) {
	svc := service.NewLanguageService(nil)
	languages := svc.List(context.Background())
	require.Equal(t, model.DefaultLanguages, languages, "no store means the reference catalog")
	require.NotEmpty(t, languages)
}

func TestLanguageService_List_StoreError_FallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLanguageRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("store exploded"))

	svc := service.NewLanguageService(repo)
	languages := svc.List(context.Background())
	require.Equal(t, model.DefaultLanguages, languages)
}

func TestLanguageService_List_EmptyStore_FallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLanguageRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return([]model.Language{}, nil)

	svc := service.NewLanguageService(repo)
	languages := svc.List(context.Background())
	require.Equal(t, model.DefaultLanguages, languages)
}

func TestLanguageService_List_FromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	stored := []model.Language{
		{Name: "Esperanto", Code: "eo", NativeName: "Esperanto"},
	}
	repo := mock.NewMockLanguageRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(stored, nil)

	svc := service.NewLanguageService(repo)
	languages := svc.List(context.Background())
	require.Equal(t, stored, languages)
}
