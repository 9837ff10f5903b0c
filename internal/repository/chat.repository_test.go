package repository

import (
	"context"
	"testing"

	"healthmate/internal/apperr"
	"healthmate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatAppendKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "a@example.com")
	repo := NewChatRepository(db)

	chat := &models.Chat{UserID: u.ID, Title: models.DefaultChatTitle}
	require.NoError(t, repo.Create(ctx, chat))

	require.NoError(t, repo.AppendMessages(ctx, u.ID, chat.ID, &models.ChatMessage{Role: models.RoleUser, Content: "first"}))
	require.NoError(t, repo.AppendMessages(ctx, u.ID, chat.ID,
		&models.ChatMessage{Role: models.RoleAssistant, Content: "second"},
		&models.ChatMessage{Role: models.RoleUser, Content: "third"},
	))

	got, err := repo.Get(ctx, u.ID, chat.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "first", got.Messages[0].Content)
	assert.Equal(t, "second", got.Messages[1].Content)
	assert.Equal(t, "third", got.Messages[2].Content)
	assert.False(t, got.Messages[0].Timestamp.IsZero())
}

func TestChatSoftDeleteHidesButKeepsRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "a@example.com")
	repo := NewChatRepository(db)

	chat := &models.Chat{UserID: u.ID, Title: "to delete"}
	require.NoError(t, repo.Create(ctx, chat))
	keep := &models.Chat{UserID: u.ID, Title: "keep"}
	require.NoError(t, repo.Create(ctx, keep))

	require.NoError(t, repo.SoftDelete(ctx, u.ID, chat.ID))

	_, err := repo.Get(ctx, u.ID, chat.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = repo.UpdateTitle(ctx, u.ID, chat.ID, "renamed")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.AppendMessages(ctx, u.ID, chat.ID, &models.ChatMessage{Role: models.RoleUser, Content: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, repo.SoftDelete(ctx, u.ID, chat.ID), apperr.ErrNotFound)

	list, total, err := repo.List(ctx, u.ID, Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	var raw models.Chat
	require.NoError(t, db.Where("id = ?", chat.ID).First(&raw).Error)
	assert.False(t, raw.IsActive)
	assert.Equal(t, "to delete", raw.Title)
}

func TestChatCrossUserIsolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	repo := NewChatRepository(db)

	chat := &models.Chat{UserID: bob.ID, Title: "bob's"}
	require.NoError(t, repo.Create(ctx, chat))

	_, err := repo.Get(ctx, alice.ID, chat.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = repo.UpdateTitle(ctx, alice.ID, chat.ID, "mine now")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.AppendMessages(ctx, alice.ID, chat.ID, &models.ChatMessage{Role: models.RoleUser, Content: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, repo.SoftDelete(ctx, alice.ID, chat.ID), apperr.ErrNotFound)

	list, total, err := repo.List(ctx, alice.ID, Page{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)

	got, err := repo.Get(ctx, bob.ID, chat.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob's", got.Title)
	assert.Empty(t, got.Messages)
}

func TestChatListPaginatesByRecency(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "a@example.com")
	repo := NewChatRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		c := &models.Chat{UserID: u.ID, Title: "c"}
		require.NoError(t, repo.Create(ctx, c))
		ids = append(ids, c.ID.String())
	}
	// touching the first chat makes it the most recent
	require.NoError(t, repo.AppendMessages(ctx, u.ID, uuidOf(t, ids[0]), &models.ChatMessage{Role: models.RoleUser, Content: "bump"}))

	page1, total, err := repo.List(ctx, u.ID, Page{Number: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	assert.Equal(t, ids[0], page1[0].ID.String())
	require.Len(t, page1[0].Messages, 1)

	page2, _, err := repo.List(ctx, u.ID, Page{Number: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page2, 1)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
}
