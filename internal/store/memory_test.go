package store

import (
	"context"
	"testing"
	"time"

	"github.com/instalink/backend/internal/apperr"
	"github.com/instalink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	account := models.InstagramAccount{
		UserID:             "user-1",
		InstagramAccountID: "ig-123",
		FacebookPageID:     "page-1",
		AccessToken:        "long-token",
		ConnectedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	stored, err := st.Upsert(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, account, stored)

	got, err := st.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestMemoryStoreUpsertReplacesByUserID(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Upsert(context.Background(), models.InstagramAccount{UserID: "user-1", FacebookPageID: "page-a"})
	require.NoError(t, err)
	_, err = st.Upsert(context.Background(), models.InstagramAccount{UserID: "user-1", FacebookPageID: "page-b"})
	require.NoError(t, err)

	assert.Equal(t, 1, st.Len())
	got, err := st.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "page-b", got.FacebookPageID)
}

func TestMemoryStoreUnknownUser(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Get(context.Background(), "missing")

	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
