package repository

import (
	"context"

	"lingua/backend/internal/model"
	"lingua/backend/internal/objectstore"
)

const languageType = "languages"

// LanguageRepository reads the language catalog from the object store.
type LanguageRepository interface {
	List(ctx context.Context) ([]model.Language, error)
}

type languageRepository struct {
	store *objectstore.Client
}

func NewLanguageRepository(store *objectstore.Client) LanguageRepository {
	return &languageRepository{store: store}
}

func (r *languageRepository) List(ctx context.Context) ([]model.Language, error) {
	objects, err := r.store.Find(ctx, objectstore.Query{Type: languageType})
	if err != nil {
		return nil, err
	}

	languages := make([]model.Language, 0, len(objects))
	for _, obj := range objects {
		m := obj.Metadata
		lang := model.Language{
			Name:       obj.Title,
			Code:       metaString(m, "code"),
			NativeName: metaString(m, "native_name"),
			Flag:       metaString(m, "flag"),
			Voice:      metaBool(m, "voice_supported"),
			Quality:    metaString(m, "quality"),
		}
		if name := metaString(m, "name"); name != "" {
			lang.Name = name
		}
		languages = append(languages, lang)
	}
	return languages, nil
}
