package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewNotificationRepo(db)
	ctx := t.Context()

	t.Run("CreateNotification_Success", func(t *testing.T) {
		repairID := uuid.New()
		n := &models.Notification{
			RepairID:  uuid.NullUUID{UUID: repairID, Valid: true},
			Recipient: "tec@example.com",
			Subject:   "Reparacion asignada",
			Content:   "Hola",
			Status:    models.NotificationPending,
		}
		newID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notifications (repair_id, recipient, subject, content, status, error_message)`)).
			WithArgs(repairID, n.Recipient, n.Subject, n.Content, n.Status, "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID.String(), now, now))

		require.NoError(t, repo.CreateNotification(ctx, n))
		assert.Equal(t, newID, n.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateNotificationStatus_NotFound", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications SET status = $1, error_message = $2`)).
			WithArgs(models.NotificationFailed, "boom", id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateNotificationStatus(ctx, id, models.NotificationFailed, "boom")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListNotifications_Paginated", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM notifications`)).
			WithArgs(5, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "repair_id", "recipient", "subject", "content", "status", "error_message", "created_at", "updated_at"}).
				AddRow(uuid.NewString(), nil, "tec@example.com", "s", "c", "sent", "", now, now))

		notifications, total, err := repo.ListNotifications(ctx, 2, 5)

		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, notifications, 1)
		assert.False(t, notifications[0].RepairID.Valid)
		assert.Equal(t, models.NotificationSent, notifications[0].Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListNotifications_CountError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM notifications`)).
			WillReturnError(errors.New("connection reset"))

		_, _, err := repo.ListNotifications(ctx, 1, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count notifications")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
