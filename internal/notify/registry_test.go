package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegistry_SendToSubscriber(t *testing.T) {
	t.Parallel()

	r := NewRegistry(zap.NewNop())
	userID := uuid.New()
	ch, unsubscribe := r.Subscribe(userID)
	defer unsubscribe()

	delivered := r.Send(userID, map[string]string{"message": "hello"})

	require.True(t, delivered)
	raw := <-ch
	assert.JSONEq(t, `{"message":"hello"}`, string(raw))
}

func TestRegistry_SendWithoutSubscriber(t *testing.T) {
	t.Parallel()

	r := NewRegistry(zap.NewNop())

	delivered := r.Send(uuid.New(), map[string]string{"message": "hello"})

	assert.False(t, delivered)
}

func TestRegistry_SendAfterUnsubscribe(t *testing.T) {
	t.Parallel()

	r := NewRegistry(zap.NewNop())
	userID := uuid.New()
	_, unsubscribe := r.Subscribe(userID)
	unsubscribe()

	delivered := r.Send(userID, map[string]string{"message": "hello"})

	assert.False(t, delivered)
	assert.Equal(t, 0, r.Connected())
}

func TestRegistry_MultipleSessionsPerUser(t *testing.T) {
	t.Parallel()

	r := NewRegistry(zap.NewNop())
	userID := uuid.New()
	first, stopFirst := r.Subscribe(userID)
	second, stopSecond := r.Subscribe(userID)
	defer stopFirst()
	defer stopSecond()

	require.True(t, r.Send(userID, map[string]string{"message": "both"}))

	assert.NotEmpty(t, <-first)
	assert.NotEmpty(t, <-second)
	assert.Equal(t, 1, r.Connected())
}

func TestRegistry_FullBufferDoesNotBlock(t *testing.T) {
	t.Parallel()

	r := NewRegistry(zap.NewNop())
	userID := uuid.New()
	_, unsubscribe := r.Subscribe(userID)
	defer unsubscribe()

	for i := 0; i < 32; i++ {
		r.Send(userID, map[string]int{"seq": i})
	}
	// channel capacity is 16, the rest were dropped but Send returned
	assert.Equal(t, 1, r.Connected())
}
