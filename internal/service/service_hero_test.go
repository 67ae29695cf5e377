package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-hero-registry/internal/logger"
	"github.com/MKhiriev/go-hero-registry/internal/mock"
	"github.com/MKhiriev/go-hero-registry/internal/store"
	"github.com/MKhiriev/go-hero-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingCleanupQueue collects enqueued superhero ids.
type recordingCleanupQueue struct {
	enqueued []string
}

func (q *recordingCleanupQueue) Enqueue(superheroID string) {
	q.enqueued = append(q.enqueued, superheroID)
}

func newTestHeroSvc(t *testing.T, ctrl *gomock.Controller) (HeroService, *mock.MockHeroRepository, *mock.MockImageStore, *recordingCleanupQueue) {
	t.Helper()

	mockRepo := mock.NewMockHeroRepository(ctrl)
	mockImages := mock.NewMockImageStore(ctrl)
	queue := &recordingCleanupQueue{}

	storages := &store.Storages{
		HeroRepository: mockRepo,
		ImageStore:     mockImages,
	}
	svc := NewHeroService(storages, queue, logger.NewLogger("test"))
	return svc, mockRepo, mockImages, queue
}

func TestListSuperheroes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	listing := []models.Superhero{
		{UserID: "auth0|user-1", SuperheroID: "hero-1", Visibility: models.VisibilityPrivate},
		{UserID: "auth0|user-2", SuperheroID: "hero-2", Visibility: models.VisibilityPublic},
	}
	mockRepo.EXPECT().ListForOwnerOrPublic(ctx, "auth0|user-1").Return(listing, nil)

	heroes, err := svc.ListSuperheroes(ctx, "auth0|user-1")
	require.NoError(t, err)
	assert.Equal(t, listing, heroes)
}

func TestListSuperheroes_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ListForOwnerOrPublic(ctx, "auth0|user-1").Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListSuperheroes(ctx, "auth0|user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestRegisterSuperhero_GeneratesIDAndDefaultsToPrivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	request := models.RegisterSuperheroRequest{
		Name:        "Nightwatch",
		Backstory:   "watches at night",
		Superpowers: []string{"flight"},
	}

	mockRepo.EXPECT().
		CreateHero(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, hero models.Superhero) (models.Superhero, error) {
			assert.Equal(t, "auth0|user-1", hero.UserID)
			assert.NotEmpty(t, hero.SuperheroID)
			assert.Equal(t, models.VisibilityPrivate, hero.Visibility)
			assert.Empty(t, hero.ImageURL)
			return hero, nil
		})

	registered, err := svc.RegisterSuperhero(ctx, "auth0|user-1", request)
	require.NoError(t, err)
	assert.Equal(t, "Nightwatch", registered.Name)
	assert.NotEmpty(t, registered.SuperheroID)
}

func TestRegisterSuperhero_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateHero(ctx, gomock.Any()).Return(models.Superhero{}, store.ErrHeroAlreadyExists)

	_, err := svc.RegisterSuperhero(ctx, "auth0|user-1", models.RegisterSuperheroRequest{Name: "Nightwatch"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrHeroAlreadyExists)
}

func TestUpdateSuperhero_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	request := models.UpdateSuperheroRequest{
		Name:        "Shade",
		Backstory:   "updated",
		Superpowers: []string{"stealth"},
		Public:      true,
	}

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "hero-1").Return(models.Superhero{SuperheroID: "hero-1"}, nil)
	mockRepo.EXPECT().
		UpdateHero(ctx, "auth0|user-1", "hero-1", models.SuperheroUpdate{
			Name:        "Shade",
			Backstory:   "updated",
			Superpowers: []string{"stealth"},
			Visibility:  models.VisibilityPublic,
		}).
		Return(nil)

	require.NoError(t, svc.UpdateSuperhero(ctx, "auth0|user-1", "hero-1", request))
}

func TestUpdateSuperhero_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "missing").Return(models.Superhero{}, store.ErrHeroNotFound)

	err := svc.UpdateSuperhero(ctx, "auth0|user-1", "missing", models.UpdateSuperheroRequest{})
	assert.ErrorIs(t, err, ErrHeroNotFound)
}

func TestDeleteSuperhero_EnqueuesImageCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, queue := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "hero-1").Return(models.Superhero{SuperheroID: "hero-1"}, nil)
	mockRepo.EXPECT().DeleteHero(ctx, "auth0|user-1", "hero-1").Return(nil)

	require.NoError(t, svc.DeleteSuperhero(ctx, "auth0|user-1", "hero-1"))
	assert.Equal(t, []string{"hero-1"}, queue.enqueued)
}

func TestDeleteSuperhero_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, queue := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "missing").Return(models.Superhero{}, store.ErrHeroNotFound)

	err := svc.DeleteSuperhero(ctx, "auth0|user-1", "missing")
	assert.ErrorIs(t, err, ErrHeroNotFound)
	assert.Empty(t, queue.enqueued)
}

func TestDeleteSuperhero_StoreErrorSkipsCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, queue := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "hero-1").Return(models.Superhero{SuperheroID: "hero-1"}, nil)
	mockRepo.EXPECT().DeleteHero(ctx, "auth0|user-1", "hero-1").Return(store.ErrExecutingStatement)

	err := svc.DeleteSuperhero(ctx, "auth0|user-1", "hero-1")
	require.Error(t, err)
	assert.Empty(t, queue.enqueued)
}

func TestCreateImageUploadURL_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockImages, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	presigned, err := url.Parse("https://images.example.com/hero-images/hero-1?X-Amz-Signature=abc")
	require.NoError(t, err)

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "hero-1").Return(models.Superhero{SuperheroID: "hero-1"}, nil)
	mockImages.EXPECT().PresignUploadURL(ctx, "hero-1").Return(presigned, nil)
	mockRepo.EXPECT().SetHeroImageURL(ctx, "auth0|user-1", "hero-1", presigned.String()).Return(nil)

	uploadURL, err := svc.CreateImageUploadURL(ctx, "auth0|user-1", "hero-1")
	require.NoError(t, err)
	assert.Equal(t, presigned.String(), uploadURL)
}

func TestCreateImageUploadURL_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "missing").Return(models.Superhero{}, store.ErrHeroNotFound)

	_, err := svc.CreateImageUploadURL(ctx, "auth0|user-1", "missing")
	assert.ErrorIs(t, err, ErrHeroNotFound)
}

func TestCreateImageUploadURL_PresignFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockImages, _ := newTestHeroSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetHero(ctx, "auth0|user-1", "hero-1").Return(models.Superhero{SuperheroID: "hero-1"}, nil)
	mockImages.EXPECT().PresignUploadURL(ctx, "hero-1").Return(nil, errors.New("connection refused"))

	_, err := svc.CreateImageUploadURL(ctx, "auth0|user-1", "hero-1")
	require.Error(t, err)
}
