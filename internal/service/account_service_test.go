package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazaroperez207/agro-en-casa/internal/auth"
	"github.com/lazaroperez207/agro-en-casa/internal/models"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
)

func newAccountFixture(t *testing.T) (*AccountService, *store.Store) {
	t.Helper()

	db := store.NewStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAccountService(db, tokens), db
}

func TestLogin(t *testing.T) {
	svc, _ := newAccountFixture(t)

	session, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, models.RoleAdmin, session.User.Role)
}

func TestLoginCaseInsensitiveEmail(t *testing.T) {
	svc, _ := newAccountFixture(t)

	session, err := svc.Login("ADMIN", "admin123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.User.ID)
}

func TestLoginAllOrNothing(t *testing.T) {
	svc, _ := newAccountFixture(t)

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@test.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterLogsInImmediately(t *testing.T) {
	svc, db := newAccountFixture(t)

	session, err := svc.Register("Pedro Lopez", "pedro@test.com", "secreto")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, models.RoleCustomer, session.User.Role)

	created, ok := db.FindUserByEmail("pedro@test.com")
	require.True(t, ok)
	assert.Equal(t, session.User.ID, created.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, db := newAccountFixture(t)

	usersBefore := len(db.GetUsers())

	_, err := svc.Register("Otra Ana", "CLIENTE@TEST.COM", "x")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, db.GetUsers(), usersBefore)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAccountFixture(t)

	err := svc.ChangePassword(1, "wrong", "nuevo")
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword(1, "admin123", "nuevo")
	require.NoError(t, err)

	_, err = svc.Login("admin", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("admin", "nuevo")
	assert.NoError(t, err)
}

func TestCreateUser(t *testing.T) {
	svc, _ := newAccountFixture(t)

	user, err := svc.CreateUser("Maria Diaz", "maria.diaz", "clave", models.RoleMessenger)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMessenger, user.Role)

	_, err = svc.CreateUser("Duplicada", "MARIA.DIAZ", "clave", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteUserSelfForbidden(t *testing.T) {
	svc, db := newAccountFixture(t)

	usersBefore := len(db.GetUsers())

	err := svc.DeleteUser(1, 1)
	assert.ErrorIs(t, err, ErrSelfDelete)
	assert.Len(t, db.GetUsers(), usersBefore)

	err = svc.DeleteUser(1, 5)
	require.NoError(t, err)
	assert.Len(t, db.GetUsers(), usersBefore-1)
}
