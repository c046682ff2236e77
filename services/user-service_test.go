package services

import (
	"context"
	"encoding/json"
	"testing"

	"construction-tracker/backend/models"
	"construction-tracker/backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*UserService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	service := NewUserService(store)
	require.NoError(t, service.Load(context.Background()))
	return service, store
}

func TestRegisterCreatesPendingMember(t *testing.T) {
	service, _ := newUserFixture(t)
	ctx := context.Background()

	user, err := service.Register(ctx, "Amy", "amy@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, models.RoleMember, user.Role)
	assert.Equal(t, models.StatusPending, user.Status)
	assert.Empty(t, user.Password, "returned account must be redacted")
	assert.Empty(t, user.Education)
	assert.Empty(t, user.Experience)
	assert.Empty(t, user.Licenses)

	assert.Len(t, service.Users(), 3)
}

func TestRegisterDoesNotRejectDuplicateEmail(t *testing.T) {
	service, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "Amy", "amy@x.com", "pw")
	require.NoError(t, err)
	_, err = service.Register(ctx, "Amy Again", "amy@x.com", "other")
	require.NoError(t, err)

	assert.Len(t, service.Users(), 4)
}

func TestLoginPendingAccountFailsUntilApproved(t *testing.T) {
	service, _ := newUserFixture(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, "Amy", "amy@x.com", "pw")
	require.NoError(t, err)

	_, err = service.Login(ctx, "amy@x.com", "pw")
	assert.ErrorIs(t, err, ErrAuthFailure)

	require.NoError(t, service.Approve(ctx, registered.ID))

	user, err := service.Login(ctx, "amy@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, user.Status)
	assert.Empty(t, user.Password)

	current, ok := service.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, registered.ID, current.ID)
}

func TestLoginWrongCredentials(t *testing.T) {
	service, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "wu@dwcc.com.tw", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailure)
	_, err = service.Login(ctx, "nobody@dwcc.com.tw", "123")
	assert.ErrorIs(t, err, ErrAuthFailure)

	_, ok := service.CurrentUser()
	assert.False(t, ok)
}

func TestLoginReadsPersistedCollection(t *testing.T) {
	service, store := newUserFixture(t)
	ctx := context.Background()

	// Another writer replaces the persisted collection behind the service's
	// back; login must see it.
	external := []models.User{{
		ID: "99", Name: "Ghost", Email: "ghost@x.com", Password: "pw",
		Role: models.RoleMember, Status: models.StatusApproved,
	}}
	raw, err := json.Marshal(external)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "dw_users_db", raw))

	user, err := service.Login(ctx, "ghost@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "99", user.ID)
}

func TestLoginPersistsRedactedSession(t *testing.T) {
	service, store := newUserFixture(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "wu@dwcc.com.tw", "123")
	require.NoError(t, err)

	raw, err := store.Get(ctx, "dw_user")
	require.NoError(t, err)
	require.NotNil(t, raw)

	var saved models.User
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.Equal(t, "wu@dwcc.com.tw", saved.Email)
	assert.Empty(t, saved.Password)
}

func TestLogoutClearsSession(t *testing.T) {
	service, store := newUserFixture(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "wu@dwcc.com.tw", "123")
	require.NoError(t, err)
	require.NoError(t, service.Logout(ctx))

	_, ok := service.CurrentUser()
	assert.False(t, ok)

	raw, err := store.Get(ctx, "dw_user")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRestoreSessionAcrossRestart(t *testing.T) {
	service, store := newUserFixture(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "site@dwcc.com.tw", "123")
	require.NoError(t, err)

	restarted := NewUserService(store)
	require.NoError(t, restarted.Load(ctx))
	require.NoError(t, restarted.RestoreSession(ctx))

	current, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "site@dwcc.com.tw", current.Email)
}

func TestChangePasswordRequiresSession(t *testing.T) {
	service, _ := newUserFixture(t)
	ctx := context.Background()

	err := service.ChangePassword(ctx, "newpw")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = service.Login(ctx, "wu@dwcc.com.tw", "123")
	require.NoError(t, err)
	require.NoError(t, service.ChangePassword(ctx, "newpw"))

	_, err = service.Login(ctx, "wu@dwcc.com.tw", "123")
	assert.ErrorIs(t, err, ErrAuthFailure)
	_, err = service.Login(ctx, "wu@dwcc.com.tw", "newpw")
	assert.NoError(t, err)
}

func TestUpdateProfileMergesSuppliedFieldsOnly(t *testing.T) {
	service, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := service.Login(ctx, "site@dwcc.com.tw", "123")
	require.NoError(t, err)

	name := "Renamed Engineer"
	phone := "0900-000-000"
	updated, err := service.UpdateProfile(ctx, models.UserPatch{Name: &name, Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Engineer", updated.Name)
	assert.Equal(t, "0900-000-000", updated.Phone)
	assert.Equal(t, "Site Director", updated.Title, "omitted fields stay untouched")
	assert.Empty(t, updated.Password)

	current, ok := service.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Renamed Engineer", current.Name)

	// The password survives in the collection even though every exposed
	// copy is redacted.
	_, err = service.Login(ctx, "site@dwcc.com.tw", "123")
	assert.NoError(t, err)
}

func TestDeleteRemovesAccount(t *testing.T) {
	service, _ := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, service.Delete(ctx, "2"))
	assert.Len(t, service.Users(), 1)

	_, err := service.Login(ctx, "site@dwcc.com.tw", "123")
	assert.ErrorIs(t, err, ErrAuthFailure)
}

func TestApproveUnknownIDIsNoOp(t *testing.T) {
	service, _ := newUserFixture(t)
	require.NoError(t, service.Approve(context.Background(), "does-not-exist"))
	assert.Len(t, service.Users(), 2)
}

func TestYearsOfService(t *testing.T) {
	years, ok := YearsOfService(models.User{StartDate: "2020-01-01"})
	require.True(t, ok)
	assert.GreaterOrEqual(t, years, 5)

	_, ok = YearsOfService(models.User{})
	assert.False(t, ok)

	_, ok = YearsOfService(models.User{StartDate: "not-a-date"})
	assert.False(t, ok)
}
