package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	emailMocks "github.com/aaravmahajanofficial/repair-shop-platform/pkg/sendGrid/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationFixture struct {
	notifications *mocks.NotificationRepository
	users         *mocks.UserRepository
	repairs       *mocks.RepairRepository
	email         *emailMocks.EmailService
	svc           service.NotificationService
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	f := &notificationFixture{
		notifications: mocks.NewNotificationRepository(t),
		users:         mocks.NewUserRepository(t),
		repairs:       mocks.NewRepairRepository(t),
		email:         emailMocks.NewEmailService(t),
	}
	f.svc = service.NewNotificationService(f.notifications, f.users, f.repairs, f.email)
	return f
}

func TestNotificationService_NotifyTechnicianAssigned(t *testing.T) {

	techID := uuid.New()
	repairID := uuid.New()
	notificationID := uuid.New()
	technician := &models.User{ID: techID, Nombre: "Luis", Email: "luis@example.com"}
	repair := &models.Repair{
		ID:      repairID,
		Modelo:  "iPhone 12",
		Marca:   models.MarcaRef{Name: "Apple"},
		Cliente: models.ClientRef{Nombre: "Ana Lopez"},
		Estatus: models.RepairPendiente,
	}

	t.Run("Success - Email sent", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()

		f.users.On("GetUserById", ctx, techID).Return(technician, nil).Once()
		f.repairs.On("GetRepairByID", ctx, repairID).Return(repair, nil).Once()
		f.notifications.On("CreateNotification", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Recipient == technician.Email && n.Status == models.NotificationPending && n.RepairID.UUID == repairID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Notification).ID = notificationID
		}).Return(nil).Once()
		f.email.On("Send", ctx, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == technician.Email &&
				strings.Contains(req.Subject, "iPhone 12") &&
				strings.Contains(req.Content, "Ana Lopez")
		})).Return(nil).Once()
		f.notifications.On("UpdateNotificationStatus", ctx, notificationID, models.NotificationSent, "").Return(nil).Once()

		err := f.svc.NotifyTechnicianAssigned(ctx, techID, repairID)

		require.NoError(t, err)
	})

	t.Run("Failure - Email provider error recorded", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()

		f.users.On("GetUserById", ctx, techID).Return(technician, nil).Once()
		f.repairs.On("GetRepairByID", ctx, repairID).Return(repair, nil).Once()
		f.notifications.On("CreateNotification", ctx, mock.AnythingOfType("*models.Notification")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Notification).ID = notificationID
		}).Return(nil).Once()
		f.email.On("Send", ctx, mock.Anything).Return(errors.New("quota exceeded")).Once()
		f.notifications.On("UpdateNotificationStatus", ctx, notificationID, models.NotificationFailed, "quota exceeded").Return(nil).Once()

		err := f.svc.NotifyTechnicianAssigned(ctx, techID, repairID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("Failure - Unknown technician", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()

		f.users.On("GetUserById", ctx, techID).Return(nil, repository.ErrNotFound).Once()

		err := f.svc.NotifyTechnicianAssigned(ctx, techID, repairID)

		require.ErrorIs(t, err, repository.ErrNotFound)
		f.email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_ListNotifications(t *testing.T) {

	t.Run("Success - Page size defaulted", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()
		want := []*models.Notification{{ID: uuid.New(), Status: models.NotificationSent}}

		f.notifications.On("ListNotifications", ctx, 1, 10).Return(want, 1, nil).Once()

		got, total, err := f.svc.ListNotifications(ctx, 0, 500)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, want, got)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		f := newNotificationFixture(t)
		ctx := context.Background()

		f.notifications.On("ListNotifications", ctx, 2, 20).Return(nil, 0, errors.New("timeout")).Once()

		_, _, err := f.svc.ListNotifications(ctx, 2, 20)

		assertAppCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}
