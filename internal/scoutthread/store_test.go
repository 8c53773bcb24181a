package scoutthread_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/dmitrijs2005/percify/internal/kvstore"
	"github.com/dmitrijs2005/percify/internal/models"
	"github.com/dmitrijs2005/percify/internal/scoutthread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 11, 4, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type failingRepo struct {
	*kvstore.MemoryRepository
	err     error
	setMany int
}

func (r *failingRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.err != nil {
		return r.err
	}
	return r.MemoryRepository.Set(ctx, key, value)
}

func (r *failingRepo) SetMany(ctx context.Context, values map[string][]byte) error {
	r.setMany++
	if r.err != nil {
		return r.err
	}
	return r.MemoryRepository.SetMany(ctx, values)
}

func stored[T any](t *testing.T, repo kvstore.Repository, key string) T {
	t.Helper()
	blob, err := repo.Get(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, blob, key)

	var v T
	require.NoError(t, json.Unmarshal(blob, &v))
	return v
}

func TestNew_SeedsAndPersistsPlaceholders(t *testing.T) {
	repo := kvstore.NewMemoryRepository()
	s := scoutthread.New(context.Background(), repo, scoutthread.WithClock(clock))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		assert.False(t, m.FromCurrentUser)
		assert.True(t, m.Timestamp.Before(fixedNow))
	}
	assert.False(t, s.IsAccepted())

	persisted := stored[[]models.ChatMessage](t, repo, scoutthread.MessagesKey)
	assert.Equal(t, ids(msgs), ids(persisted))
}

func TestNew_LoadsStoredState(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewMemoryRepository()

	first := scoutthread.New(ctx, repo, scoutthread.WithClock(clock))
	_, err := first.SendMessage(ctx, "よろしくお願いします")
	require.NoError(t, err)
	first.AcceptScout(ctx)

	second := scoutthread.New(ctx, repo, scoutthread.WithClock(clock))
	assert.True(t, second.IsAccepted())
	assert.Equal(t, ids(first.Messages()), ids(second.Messages()))
	assert.Len(t, second.Messages(), 3)
}

func TestNew_UnreadableStateFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, scoutthread.MessagesKey, []byte("oops")))
	require.NoError(t, repo.Set(ctx, scoutthread.AcceptedKey, []byte("maybe")))

	s := scoutthread.New(ctx, repo)
	assert.Len(t, s.Messages(), 2)
	assert.False(t, s.IsAccepted())
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	repo := kvstore.NewMemoryRepository()
	s := scoutthread.New(ctx, repo, scoutthread.WithClock(clock))

	msg, err := s.SendMessage(ctx, "  ぜひお話を伺いたいです\n")
	require.NoError(t, err)
	assert.Equal(t, "ぜひお話を伺いたいです", msg.Text)
	assert.True(t, msg.FromCurrentUser)
	assert.True(t, msg.Timestamp.Equal(fixedNow))
	assert.NotEmpty(t, msg.ID)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, msg.ID, msgs[2].ID)

	persisted := stored[[]models.ChatMessage](t, repo, scoutthread.MessagesKey)
	assert.Len(t, persisted, 3)
	assert.Equal(t, msg.Text, persisted[2].Text)
	assert.True(t, persisted[2].FromCurrentUser)
}

func TestSendMessage_RejectsBlank(t *testing.T) {
	ctx := context.Background()
	s := scoutthread.New(ctx, kvstore.NewMemoryRepository())

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := s.SendMessage(ctx, text)
		require.ErrorIs(t, err, common.ErrEmptyMessage)
	}
	assert.Len(t, s.Messages(), 2)
}

func TestAcceptAndResetDemo(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepo{MemoryRepository: kvstore.NewMemoryRepository()}
	s := scoutthread.New(ctx, repo)

	var events []scoutthread.EventKind
	s.Subscribe(func(e scoutthread.Event) { events = append(events, e.Kind) })

	s.AcceptScout(ctx)
	assert.True(t, s.IsAccepted())
	_, err := s.SendMessage(ctx, "hello")
	require.NoError(t, err)

	s.ResetDemo(ctx)
	assert.False(t, s.IsAccepted())
	assert.Len(t, s.Messages(), 2)
	assert.Equal(t, 1, repo.setMany)
	assert.False(t, stored[bool](t, repo, scoutthread.AcceptedKey))
	assert.Len(t, stored[[]models.ChatMessage](t, repo, scoutthread.MessagesKey), 2)

	assert.Equal(t, []scoutthread.EventKind{
		scoutthread.EventAccepted,
		scoutthread.EventMessageSent,
		scoutthread.EventReset,
	}, events)
}

func TestPersistenceFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepo{MemoryRepository: kvstore.NewMemoryRepository(), err: errors.New("quota")}
	s := scoutthread.New(ctx, repo)

	_, err := s.SendMessage(ctx, "hi")
	require.NoError(t, err)
	s.AcceptScout(ctx)
	assert.True(t, s.IsAccepted())
	assert.Len(t, s.Messages(), 3)

	s.ResetDemo(ctx)
	assert.False(t, s.IsAccepted())
	assert.Len(t, s.Messages(), 2)
}

func ids(msgs []models.ChatMessage) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}
