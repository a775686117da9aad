//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationRepositoryMarkFailed(t *testing.T) {
	tests := []struct {
		name   string
		giveUp bool
		status string
	}{
		{name: "retry keeps job queued", giveUp: false, status: "queued"},
		{name: "give up marks job failed", giveUp: true, status: "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			retryAt := time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

			dbtx := new(MockDBTX)
			dbtx.On("Exec", mock.Anything, markNotificationFailedSQL, mock.MatchedBy(func(args []any) bool {
				return len(args) == 4 && args[0] == id && args[1] == tt.status && args[3] == retryAt
			})).Return(pgconn.NewCommandTag("UPDATE 1"), nil)

			err := NewNotificationRepository(dbtx).MarkFailed(context.Background(), id, "broker down", retryAt, tt.giveUp)
			assert.NoError(t, err)
			dbtx.AssertExpectations(t)
		})
	}
}

func TestNotificationRepositoryLease(t *testing.T) {
	t.Run("leases every claimed id", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		until := time.Date(2025, 1, 1, 9, 5, 0, 0, time.UTC)

		dbtx := new(MockDBTX)
		dbtx.On("Exec", mock.Anything, leaseNotificationJobsSQL, mock.MatchedBy(func(args []any) bool {
			if len(args) != 2 {
				return false
			}
			keys, ok := args[0].([]string)
			return ok && len(keys) == 2 && keys[0] == ids[0].String() && keys[1] == ids[1].String()
		})).Return(pgconn.NewCommandTag("UPDATE 2"), nil)

		assert.NoError(t, NewNotificationRepository(dbtx).Lease(context.Background(), ids, until))
		dbtx.AssertExpectations(t)
	})

	t.Run("nothing to lease skips the query", func(t *testing.T) {
		dbtx := new(MockDBTX)

		assert.NoError(t, NewNotificationRepository(dbtx).Lease(context.Background(), nil, time.Now()))
		dbtx.AssertNotCalled(t, "Exec")
	})
}
