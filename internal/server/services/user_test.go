package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/greeter/internal/common"
	"github.com/dmitrijs2005/greeter/internal/cryptox"
	"github.com/dmitrijs2005/greeter/internal/server/models"
	"github.com/dmitrijs2005/greeter/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Validation(t *testing.T) {
	s := NewUserService(nil, memory.NewInMemoryRepositoryManager())

	cases := []struct{ user, pass string }{
		{"", ""},
		{"alice", ""},
		{"", "secret"},
	}
	for _, c := range cases {
		_, err := s.Register(context.Background(), c.user, c.pass)
		assert.ErrorIs(t, err, common.ErrorValidation, "user=%q pass=%q", c.user, c.pass)
	}
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	rm := memory.NewInMemoryRepositoryManager()
	s := NewUserService(nil, rm)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.UserName)

	stored, err := rm.Users(nil).GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.Len(t, stored.PasswordSalt, cryptox.SaltSize*2)
	assert.Len(t, stored.PasswordHash, cryptox.KeyLength*2)

	ok, err := cryptox.VerifyPassword("s3cret", stored.PasswordSalt, stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_DuplicateIsConflict(t *testing.T) {
	s := NewUserService(nil, memory.NewInMemoryRepositoryManager())
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "one")
	require.NoError(t, err)
	_, err = s.Register(ctx, "alice", "two")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_RaceLostOnInsertIsConflict(t *testing.T) {
	u := &fakeUsersRepo{getErr: common.ErrorNotFound, createErr: common.ErrorAlreadyExists}
	s := NewUserService(nil, &fakeRepoManager{u: u})

	_, err := s.Register(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, 1, u.createCalls)
}

func TestRegister_LookupErrorIsInternal(t *testing.T) {
	u := &fakeUsersRepo{getErr: errors.New("db down")}
	s := NewUserService(nil, &fakeRepoManager{u: u})

	_, err := s.Register(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
	assert.NotErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, 0, u.createCalls)
}

func TestRegister_CreateError(t *testing.T) {
	u := &fakeUsersRepo{getErr: common.ErrorNotFound, createErr: errors.New("db error: boom")}
	s := NewUserService(nil, &fakeRepoManager{u: u})

	_, err := s.Register(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRegister_HashFailureIsInternal(t *testing.T) {
	orig := hashPassword
	hashPassword = func(string) (string, string, error) { return "", "", errors.New("no entropy") }
	t.Cleanup(func() { hashPassword = orig })

	u := &fakeUsersRepo{getErr: common.ErrorNotFound}
	s := NewUserService(nil, &fakeRepoManager{u: u})

	_, err := s.Register(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.Equal(t, 0, u.createCalls)
}

func TestLogin(t *testing.T) {
	rm := memory.NewInMemoryRepositoryManager()
	s := NewUserService(nil, rm)
	ctx := context.Background()

	registered, err := s.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		u, err := s.Login(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
		assert.Equal(t, "alice", u.UserName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, "alice", "nope")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, err := s.Login(ctx, "ghost", "s3cret")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := s.Login(ctx, "alice", "")
		assert.ErrorIs(t, err, common.ErrorValidation)
	})
}

func TestLogin_CorruptStoredHashIsUnauthorized(t *testing.T) {
	u := &fakeUsersRepo{getOut: &models.User{ID: 7, UserName: "alice", PasswordSalt: "00", PasswordHash: "not-hex"}}
	s := NewUserService(nil, &fakeRepoManager{u: u})

	_, err := s.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_LookupErrorIsNotUnauthorized(t *testing.T) {
	u := &fakeUsersRepo{getErr: errors.New("db down")}
	s := NewUserService(nil, &fakeRepoManager{u: u})

	_, err := s.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_VerifyFailureIsInternal(t *testing.T) {
	orig := verifyPassword
	verifyPassword = func(string, string, string) (bool, error) { return false, errors.New("kdf") }
	t.Cleanup(func() { verifyPassword = orig })

	u := &fakeUsersRepo{getOut: &models.User{ID: 1, UserName: "alice"}}
	s := NewUserService(nil, &fakeRepoManager{u: u})

	_, err := s.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrorInternal)
}
