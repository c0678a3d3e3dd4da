package repository

import (
	"testing"

	authdomain "bookstore-backend/internal/auth/domain"
	"bookstore-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryRoundTripKeepsPasswordHash(t *testing.T) {
	repo := NewUserDirectoryRepository(storage.NewMemoryStore())

	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, repo.Append(authdomain.User{Email: "a@x.com", Password: hash, Name: "Alice", Provider: "local"}))

	user, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, hash, user.Password)
	assert.True(t, CheckPasswordHash("secret", user.Password))
	assert.False(t, CheckPasswordHash("wrong", user.Password))
}

func TestDirectoryAbsentReadsEmpty(t *testing.T) {
	repo := NewUserDirectoryRepository(storage.NewMemoryStore())

	users, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, users)

	user, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestDirectoryMalformedReadsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Write(storage.KeyUserDirectory, []byte("][")))

	repo := NewUserDirectoryRepository(store)
	users, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDirectoryAppendPreservesOrder(t *testing.T) {
	repo := NewUserDirectoryRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Append(authdomain.User{Email: "a@x.com", Provider: "local"}))
	require.NoError(t, repo.Append(authdomain.User{Email: "b@x.com", Provider: "local"}))

	users, err := repo.All()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.Equal(t, "b@x.com", users[1].Email)
}

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(storage.NewMemoryStore())

	session, err := repo.Get("v1")
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, repo.Put("v1", authdomain.Session{Email: "a@x.com", Name: "Alice", Provider: "local"}))
	session, err = repo.Get("v1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "a@x.com", session.Email)

	// Overwrite is whole-value: the newer login wins.
	require.NoError(t, repo.Put("v1", authdomain.Session{Email: "b@x.com", Name: "Bob", Provider: "google"}))
	session, err = repo.Get("v1")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", session.Email)

	require.NoError(t, repo.Delete("v1"))
	session, err = repo.Get("v1")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestPKCELifecycle(t *testing.T) {
	repo := NewPKCERepository(storage.NewMemoryStore())

	attempt, err := repo.Get("v1")
	require.NoError(t, err)
	assert.Nil(t, attempt)

	require.NoError(t, repo.Put("v1", authdomain.PKCESession{Verifier: "ver", State: "st"}))
	attempt, err = repo.Get("v1")
	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.Equal(t, "ver", attempt.Verifier)
	assert.Equal(t, "st", attempt.State)

	require.NoError(t, repo.Delete("v1"))
	attempt, err = repo.Get("v1")
	require.NoError(t, err)
	assert.Nil(t, attempt)
}
