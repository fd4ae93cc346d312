package services

import (
	"testing"

	"messenger_backend/internal/models"
	"messenger_backend/internal/repositories"
	"messenger_backend/internal/services/dto"
	"messenger_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChatFixture(t *testing.T) (ChatService, UserService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	chatSvc := NewChatService(repositories.NewChatRepository(db))
	userSvc := NewUserService(repositories.NewUserRepository(db))
	return chatSvc, userSvc, db
}

func memberIDs(t *testing.T, db *gorm.DB, chatID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&models.ChatMember{}).
		Where("chat_id = ?", chatID).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error)
	return ids
}

func TestCreateChat_CreatorAlwaysMember(t *testing.T) {
	chats, users, db := newChatFixture(t)
	alice := registerUser(t, users, "Alice", "a1")
	bob := registerUser(t, users, "Bob", "b1")

	chatID, err := chats.CreateChat(&dto.CreateChatRequest{
		Name:         "Team",
		IsGroup:      true,
		CreatedBy:    alice,
		Participants: []uint{bob},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{alice, bob}, memberIDs(t, db, chatID))
}

func TestCreateChat_DuplicateParticipantsCollapse(t *testing.T) {
	chats, users, db := newChatFixture(t)
	alice := registerUser(t, users, "Alice", "a1")
	bob := registerUser(t, users, "Bob", "b1")

	// Creator listed among participants, and bob listed twice.
	chatID, err := chats.CreateChat(&dto.CreateChatRequest{
		Name:         "Team",
		IsGroup:      true,
		CreatedBy:    alice,
		Participants: []uint{alice, bob, bob},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{alice, bob}, memberIDs(t, db, chatID))
}

func TestAddMember_Idempotent(t *testing.T) {
	chats, users, db := newChatFixture(t)
	alice := registerUser(t, users, "Alice", "a1")
	bob := registerUser(t, users, "Bob", "b1")

	chatID, err := chats.CreateChat(&dto.CreateChatRequest{
		Name:      "Team",
		IsGroup:   true,
		CreatedBy: alice,
	})
	require.NoError(t, err)

	require.NoError(t, chats.AddMember(bob, chatID))
	require.NoError(t, chats.AddMember(bob, chatID))

	assert.Equal(t, []uint{alice, bob}, memberIDs(t, db, chatID))
}

func TestListChats_NewestFirst_MembershipOnly(t *testing.T) {
	chats, users, _ := newChatFixture(t)
	alice := registerUser(t, users, "Alice", "a1")
	bob := registerUser(t, users, "Bob", "b1")

	first, err := chats.CreateChat(&dto.CreateChatRequest{Name: "First", IsGroup: true, CreatedBy: alice})
	require.NoError(t, err)
	second, err := chats.CreateChat(&dto.CreateChatRequest{Name: "Second", IsGroup: true, CreatedBy: alice})
	require.NoError(t, err)
	// Bob's own chat must not appear in alice's listing.
	_, err = chats.CreateChat(&dto.CreateChatRequest{Name: "Private", IsGroup: false, CreatedBy: bob})
	require.NoError(t, err)

	list, err := chats.ListChats(alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
}
