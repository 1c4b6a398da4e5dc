package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/kv"
)

func newTestStore() *Store {
	return NewStore(kv.New(time.Minute), time.Minute)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore()

	token := s.Create("u1", "customer")
	require.NotEmpty(t, token)

	identity, ok := s.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "customer", identity.Role)

	s.Destroy(token)
	_, ok = s.Resolve(token)
	assert.False(t, ok, "destroyed sessions must not resolve")
}

func TestResolveUnknownToken(t *testing.T) {
	s := newTestStore()

	_, ok := s.Resolve("not-a-token")
	assert.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	s := newTestStore()

	t1 := s.Create("u1", "customer")
	t2 := s.Create("u1", "customer")
	assert.NotEqual(t, t1, t2)
}

func TestFlashIsSingleUse(t *testing.T) {
	type summary struct {
		OrderNumber int64  `json:"order_number"`
		Total       string `json:"total"`
	}

	s := newTestStore()
	token := s.Create("u1", "customer")

	require.NoError(t, s.StashFlash(token, summary{OrderNumber: 7, Total: "28.75"}))

	var got summary
	found, err := s.PopFlash(token, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, summary{OrderNumber: 7, Total: "28.75"}, got)

	// La segunda lectura no encuentra nada
	found, err = s.PopFlash(token, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
