package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbook/models"
	"hotelbook/utils"
)

func TestSaveDraftNormalisesDates(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(nil)

	d, err := svc.SaveDraft(ctx, "tab-1", standardForm("2025-06-01T10:00:00Z", "2025-06-04"))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", d.CheckInDate)
	assert.Equal(t, today, d.SavedAt)

	_, err = svc.SaveDraft(ctx, "tab-1", standardForm("2025-06-04", "2025-06-01"))
	assert.NotNil(t, IsInputError(err))

	drafts, err := svc.Drafts(ctx, "tab-1")
	require.NoError(t, err)
	assert.Len(t, drafts, 1)

	other, err := svc.Drafts(ctx, "tab-2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, svc.ClearDrafts(ctx, "tab-1"))
	drafts, err = svc.Drafts(ctx, "tab-1")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestRedisDraftStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisDraftStore(client, time.Hour)
	first := models.BookingDraft{BookingForm: standardForm("2025-06-01", "2025-06-03"), SavedAt: today}
	second := models.BookingDraft{BookingForm: standardForm("2025-07-01", "2025-07-03"), SavedAt: today}
	require.NoError(t, store.Append(ctx, "tab-1", first))
	require.NoError(t, store.Append(ctx, "tab-1", second))

	assert.Equal(t, time.Hour, mr.TTL(utils.DraftKeyPrefix+"tab-1"))

	drafts, err := store.List(ctx, "tab-1")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "2025-06-01", drafts[0].CheckInDate)
	assert.Equal(t, "2025-07-01", drafts[1].CheckInDate)

	require.NoError(t, store.Clear(ctx, "tab-1"))
	drafts, err = store.List(ctx, "tab-1")
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestMemoryDraftStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := today
	store := NewMemoryDraftStore(time.Hour)
	store.now = func() time.Time { return now }

	draft := models.BookingDraft{BookingForm: standardForm("2025-06-01", "2025-06-03"), SavedAt: today}
	require.NoError(t, store.Append(ctx, "tab-1", draft))
	require.NoError(t, store.Append(ctx, "tab-2", draft))

	now = now.Add(30 * time.Minute)
	require.NoError(t, store.Append(ctx, "tab-1", draft))

	now = now.Add(45 * time.Minute)
	drafts, err := store.List(ctx, "tab-1")
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
	drafts, err = store.List(ctx, "tab-2")
	require.NoError(t, err)
	assert.Empty(t, drafts)

	// abandoned scopes are swept by later appends
	for i := 0; i < 50; i++ {
		require.NoError(t, store.Append(ctx, fmt.Sprintf("anon-%d", i), draft))
	}
	now = now.Add(2 * time.Hour)
	require.NoError(t, store.Append(ctx, "tab-3", draft))
	assert.Equal(t, 1, store.scopeCount())
}
