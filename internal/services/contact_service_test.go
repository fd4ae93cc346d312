package services

import (
	"testing"

	"messenger_backend/internal/models"
	"messenger_backend/internal/repositories"
	"messenger_backend/internal/services/dto"
	"messenger_backend/internal/testutil"
	"messenger_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContactFixture(t *testing.T) (ContactService, UserService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	contactSvc := NewContactService(repositories.NewContactRepository(db), userRepo)
	return contactSvc, NewUserService(userRepo), db
}

func registerUser(t *testing.T, users UserService, name, login string) uint {
	t.Helper()
	id, err := users.Register(&dto.RegisterRequest{Name: name, Login: login, Password: "password1"})
	require.NoError(t, err)
	return id
}

func TestAddContact_SelfReference(t *testing.T) {
	contacts, users, _ := newContactFixture(t)
	alice := registerUser(t, users, "Alice", "a1")

	_, err := contacts.AddContact(alice, alice)
	assert.ErrorIs(t, err, apperrors.ErrSelfContact)
}

func TestAddContact_UserNotFound(t *testing.T) {
	contacts, users, _ := newContactFixture(t)
	alice := registerUser(t, users, "Alice", "a1")

	_, err := contacts.AddContact(alice, 9999)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	_, err = contacts.AddContact(9999, alice)
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestAddContact_SymmetricDeduplication(t *testing.T) {
	contacts, users, db := newContactFixture(t)
	alice := registerUser(t, users, "Alice", "a1")
	bob := registerUser(t, users, "Bob", "b1")

	id, err := contacts.AddContact(alice, bob)
	require.NoError(t, err)
	assert.NotZero(t, id)

	// Same pair in either orientation is a conflict.
	_, err = contacts.AddContact(alice, bob)
	assert.ErrorIs(t, err, apperrors.ErrContactAlreadyExists)
	_, err = contacts.AddContact(bob, alice)
	assert.ErrorIs(t, err, apperrors.ErrContactAlreadyExists)

	var count int64
	db.Model(&models.Contact{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListContacts_YieldsOtherEndpointWithName(t *testing.T) {
	contacts, users, _ := newContactFixture(t)
	alice := registerUser(t, users, "Alice", "a1")
	bob := registerUser(t, users, "Bob", "b1")
	carol := registerUser(t, users, "Carol", "c1")

	_, err := contacts.AddContact(alice, bob)
	require.NoError(t, err)
	// Edge stored with alice as the second column.
	_, err = contacts.AddContact(carol, alice)
	require.NoError(t, err)

	list, err := contacts.ListContacts(alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, bob, list[0].UserID)
	assert.Equal(t, "Bob", list[0].Name)
	assert.Equal(t, carol, list[1].UserID)
	assert.Equal(t, "Carol", list[1].Name)

	// Bob sees only alice.
	list, err = contacts.ListContacts(bob)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice, list[0].UserID)
	assert.Equal(t, "Alice", list[0].Name)
}
