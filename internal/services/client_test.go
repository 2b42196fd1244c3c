package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_CreateClient(t *testing.T) {

	t.Run("Success - Markup stripped", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		svc := service.NewClientService(repo)

		repo.On("CreateClient", mock.Anything, mock.MatchedBy(func(c *models.Client) bool {
			return c.FirstName == "Ana" && c.LastName == "Lopez" && c.Phone == "5512345678"
		})).Return(nil).Once()

		client, err := svc.CreateClient(context.Background(), &models.ClientRequest{
			FirstName: "<b>Ana</b>",
			LastName:  "Lopez",
			Phone:     " 5512345678 ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana", client.FirstName)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		repo.On("CreateClient", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := service.NewClientService(repo).CreateClient(context.Background(), &models.ClientRequest{FirstName: "Ana"})

		assertAppCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestClientService_UpdateAndDelete(t *testing.T) {

	t.Run("Failure - Update unknown client", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		id := uuid.New()
		repo.On("UpdateClient", mock.Anything, mock.MatchedBy(func(c *models.Client) bool { return c.ID == id })).
			Return(repository.ErrNotFound).Once()

		_, err := service.NewClientService(repo).UpdateClient(context.Background(), id, &models.ClientRequest{FirstName: "Ana"})

		assertAppCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Delete client with tickets", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		id := uuid.New()
		repo.On("DeleteClient", mock.Anything, id).Return(repository.ErrInvalidReference).Once()

		err := service.NewClientService(repo).DeleteClient(context.Background(), id)

		assertAppCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Success - Delete", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		id := uuid.New()
		repo.On("DeleteClient", mock.Anything, id).Return(nil).Once()

		assert.NoError(t, service.NewClientService(repo).DeleteClient(context.Background(), id))
	})
}

func TestClientService_SearchClients(t *testing.T) {

	t.Run("Success - Term passed through", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)
		found := []*models.Client{{ID: uuid.New(), FirstName: "Ana"}}
		repo.On("SearchClients", mock.Anything, "ana").Return(found, nil).Once()

		clients, err := service.NewClientService(repo).SearchClients(context.Background(), " ana ")

		require.NoError(t, err)
		assert.Equal(t, found, clients)
	})

	t.Run("Failure - Blank term", func(t *testing.T) {
		repo := mocks.NewClientRepository(t)

		_, err := service.NewClientService(repo).SearchClients(context.Background(), "<i></i>")

		assertAppCode(t, err, appErrors.ErrCodeValidation)
	})
}
