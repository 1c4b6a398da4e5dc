package kv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	s := New(time.Minute)

	s.Set("k", "v")
	got, found := s.GetValue("k")
	require.True(t, found)
	assert.Equal(t, "v", got)

	_, found = s.GetValue("missing")
	assert.False(t, found)
}

func TestStoreExpiration(t *testing.T) {
	s := New(time.Minute)

	s.Set("k", "v", 10*time.Millisecond)
	_, found := s.GetValue("k")
	require.True(t, found)

	time.Sleep(20 * time.Millisecond)
	_, found = s.GetValue("k")
	assert.False(t, found, "expired keys must not be returned")
}

func TestStorePop(t *testing.T) {
	s := New(time.Minute)

	s.Set("k", "v")
	got, found := s.Pop("k")
	require.True(t, found)
	assert.Equal(t, "v", got)

	_, found = s.Pop("k")
	assert.False(t, found, "pop must consume the key")
	_, found = s.GetValue("k")
	assert.False(t, found)
}

func TestStoreDeleteByPrefix(t *testing.T) {
	s := New(time.Minute)

	s.Set("products:list:1", 1)
	s.Set("products:list:2", 2)
	s.Set("product:abc", 3)

	s.DeleteByPrefix("products:list:")

	assert.Equal(t, 1, s.Size())
	_, found := s.GetValue("product:abc")
	assert.True(t, found)
}

func TestStoreMarshalUnmarshal(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	s := New(time.Minute)

	require.NoError(t, s.Marshal("k", payload{Name: "x", Count: 3}))

	var got payload
	found, err := s.Unmarshal("k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)

	found, err = s.Unmarshal("missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreClear(t *testing.T) {
	s := New(time.Minute)

	s.Set("a", 1)
	s.Set("b", 2)
	s.Clear()

	assert.Equal(t, 0, s.Size())
}
