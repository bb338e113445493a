package services

import (
	"strings"
	"testing"

	"attendance-registry/internal/logger"
	"attendance-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (*AuthService, *memUsers) {
	t.Helper()
	logger.Nop()
	repo := &memUsers{}
	return NewAuthService(repo, "admin", "admin123"), repo
}

func TestBootstrap_SeedsAdminOnce(t *testing.T) {
	s, repo := newAuth(t)

	created, err := s.Bootstrap()
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Bootstrap()
	require.NoError(t, err)
	assert.False(t, created)

	require.Len(t, repo.users, 1)
	assert.Equal(t, "admin", repo.users[0].Username)
	assert.True(t, s.Verify("admin", "admin123"))
	assert.False(t, s.Verify("admin", "wrong"))
}

func TestBootstrap_StoreError(t *testing.T) {
	s, repo := newAuth(t)
	repo.failErr = errStore

	_, err := s.Bootstrap()
	assert.ErrorIs(t, err, errStore)
}

func TestVerify_OneCharacterOff(t *testing.T) {
	s, _ := newAuth(t)
	_, err := s.Bootstrap()
	require.NoError(t, err)
	require.NoError(t, s.Provision("admin", "maria", "segredo1"))

	assert.True(t, s.Verify("maria", "segredo1"))
	assert.False(t, s.Verify("maria", "segredo2"))
	assert.False(t, s.Verify("Maria", "segredo1"))
	assert.False(t, s.Verify("nobody", "segredo1"))
}

func TestVerify_LegacyDigest(t *testing.T) {
	s, repo := newAuth(t)
	repo.users = append(repo.users, models.User{ID: 1, Username: "admin", PasswordHash: LegacyDigest("admin123")})

	assert.Equal(t, "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9", LegacyDigest("admin123"))
	assert.True(t, s.Verify("admin", "admin123"))
	assert.False(t, s.Verify("admin", "admin124"))
}

func TestVerify_StoreErrorIsFalse(t *testing.T) {
	s, repo := newAuth(t)
	repo.failErr = errStore
	assert.False(t, s.Verify("admin", "admin123"))
}

func TestProvision(t *testing.T) {
	s, repo := newAuth(t)
	_, err := s.Bootstrap()
	require.NoError(t, err)

	t.Run("only admin", func(t *testing.T) {
		assert.ErrorIs(t, s.Provision("maria", "joao", "pw"), ErrForbidden)
		assert.ErrorIs(t, s.Provision("", "joao", "pw"), ErrForbidden)
	})

	t.Run("empty fields", func(t *testing.T) {
		assert.ErrorIs(t, s.Provision("admin", "  ", "pw"), ErrEmptyField)
		assert.ErrorIs(t, s.Provision("admin", "joao", ""), ErrEmptyField)
	})

	t.Run("duplicate keeps existing hash", func(t *testing.T) {
		before := repo.users[0].PasswordHash
		assert.ErrorIs(t, s.Provision("admin", "admin", "other"), ErrDuplicateUser)
		assert.Equal(t, before, repo.users[0].PasswordHash)
		assert.True(t, s.Verify("admin", "admin123"))
	})

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, s.Provision("admin", "joao", "pw"))
		users, err := s.ListUsers()
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "joao", users[1].Username)
	})

	t.Run("store error", func(t *testing.T) {
		repo.failErr = errStore
		defer func() { repo.failErr = nil }()
		err := s.Provision("admin", "carla", "pw")
		assert.ErrorIs(t, err, errStore)
		assert.NotErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestIsPrivileged(t *testing.T) {
	s, _ := newAuth(t)
	assert.True(t, s.IsPrivileged("admin"))
	assert.False(t, s.IsPrivileged("Admin"))
	assert.False(t, s.IsPrivileged(""))
}

func TestProvision_LongPassword(t *testing.T) {
	s, _ := newAuth(t)
	_, err := s.Bootstrap()
	require.NoError(t, err)

	long := strings.Repeat("p", 73)
	require.NoError(t, s.Provision("admin", "longpw", long))

	assert.True(t, s.Verify("longpw", long))
	assert.False(t, s.Verify("longpw", strings.Repeat("p", 72)))
	assert.False(t, s.Verify("longpw", long+"p"))
}

func TestBootstrap_LongAdminPassword(t *testing.T) {
	logger.Nop()
	long := strings.Repeat("a", 100)
	s := NewAuthService(&memUsers{}, "admin", long)

	_, err := s.Bootstrap()
	require.NoError(t, err)
	assert.True(t, s.Verify("admin", long))
}
