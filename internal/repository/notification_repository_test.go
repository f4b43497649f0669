package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/grant-assistant/internal/models"
)

func TestNotificationRepository_CreateAndList(t *testing.T) {
	repo := NewNotificationRepository(0)
	ctx := context.Background()
	sessionID := uuid.New()

	first := models.Notification{SessionID: sessionID, Title: "Missing Information"}
	second := models.Notification{SessionID: sessionID, Title: "Success!"}
	require.NoError(t, repo.Create(ctx, &first))
	require.NoError(t, repo.Create(ctx, &second))

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	list, err := repo.List(ctx, sessionID, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Success!", list[0].Title)
	assert.Equal(t, "Missing Information", list[1].Title)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestNotificationRepository_Capacity(t *testing.T) {
	repo := NewNotificationRepository(3)
	ctx := context.Background()
	sessionID := uuid.New()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Notification{SessionID: sessionID, Title: fmt.Sprintf("n%d", i)}))
	}

	list, err := repo.List(ctx, sessionID, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n4", list[0].Title)
	assert.Equal(t, "n2", list[2].Title)

	limited, err := repo.List(ctx, sessionID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestNotificationRepository_SessionsIsolated(t *testing.T) {
	repo := NewNotificationRepository(0)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, &models.Notification{SessionID: a, Title: "A"}))

	list, err := repo.List(ctx, b, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationRepository_DeleteSession(t *testing.T) {
	repo := NewNotificationRepository(0)
	ctx := context.Background()
	sessionID := uuid.New()
	require.NoError(t, repo.Create(ctx, &models.Notification{SessionID: sessionID, Title: "x"}))

	require.NoError(t, repo.DeleteSession(ctx, sessionID))

	list, err := repo.List(ctx, sessionID, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
