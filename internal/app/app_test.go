package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"messenger_backend/internal/config"
	"messenger_backend/internal/services"
	"messenger_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Env = "test"

	db := testutil.NewTestDB(t)
	server := httptest.NewServer(SetupRouter(cfg, db))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, server *httptest.Server, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var reqBody *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, server.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func asID(t *testing.T, body map[string]any, key string) uint {
	t.Helper()
	raw, ok := body[key].(float64)
	require.True(t, ok, "expected numeric %q in %v", key, body)
	return uint(raw)
}

func register(t *testing.T, server *httptest.Server, name, login, password string) uint {
	t.Helper()
	status, body := doJSON(t, server, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     name,
		"login":    login,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", login, body)
	return asID(t, body, "id")
}

func TestLivenessProbe(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// The full conversation flow: two users register, open a group chat,
// exchange a message, and a third party receives it by forwarding.
func TestForwardFlow(t *testing.T) {
	server := newTestServer(t)

	alice := register(t, server, "Alice", "alice", "secret1")
	bob := register(t, server, "Bob", "bob", "secret2")
	carol := register(t, server, "Carol", "carol", "secret3")

	// Alice opens a group chat with Bob.
	status, body := doJSON(t, server, http.MethodPost, "/api/v1/chats", map[string]any{
		"name":         "Team",
		"isGroup":      true,
		"createdBy":    alice,
		"participants": []uint{bob},
	})
	require.Equal(t, http.StatusCreated, status)
	teamChat := asID(t, body, "id")

	// Both sides see the chat.
	for _, userID := range []uint{alice, bob} {
		status, body = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/chats/%d", userID), nil)
		require.Equal(t, http.StatusOK, status)
		chats, ok := body["chats"].([]any)
		require.True(t, ok)
		require.Len(t, chats, 1)
	}

	// Alice says hi.
	status, body = doJSON(t, server, http.MethodPost, "/api/v1/messages", map[string]any{
		"userId":  alice,
		"chatId":  teamChat,
		"message": "hi",
	})
	require.Equal(t, http.StatusCreated, status)
	hiMessage := asID(t, body, "id")

	// Bob opens a direct chat with Carol and forwards Alice's message
	// into it.
	status, body = doJSON(t, server, http.MethodPost, "/api/v1/chats", map[string]any{
		"isGroup":      false,
		"createdBy":    bob,
		"participants": []uint{carol},
	})
	require.Equal(t, http.StatusCreated, status)
	directChat := asID(t, body, "id")

	status, body = doJSON(t, server, http.MethodPost, "/api/v1/messages/forward", map[string]any{
		"originalMessageId": hiMessage,
		"targetChatId":      directChat,
		"userId":            bob,
	})
	require.Equal(t, http.StatusCreated, status)
	forwarded := asID(t, body, "id")
	assert.NotEqual(t, hiMessage, forwarded)

	// The forwarded copy is authored by Bob, carries the marker, and
	// names Alice as the origin.
	status, body = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/chats/%d/messages", directChat), nil)
	require.Equal(t, http.StatusOK, status)
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)

	entry, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, bob, entry["userId"])
	assert.EqualValues(t, alice, entry["resendId"])
	messageBody, _ := entry["message"].(string)
	assert.True(t, strings.HasPrefix(messageBody, services.ForwardedPrefix))
	assert.Equal(t, services.ForwardedPrefix+"hi", messageBody)
}

func TestRegister_DuplicateLoginConflict(t *testing.T) {
	server := newTestServer(t)
	register(t, server, "Alice", "alice", "secret1")

	status, body := doJSON(t, server, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Impostor",
		"login":    "alice",
		"password": "secret9",
	})
	assert.Equal(t, http.StatusConflict, status)
	if errObj, ok := body["error"].(map[string]any); ok {
		assert.Equal(t, "CONFLICT", errObj["code"])
	}
}

func TestLogin_BadCredentialsUnauthorized(t *testing.T) {
	server := newTestServer(t)
	alice := register(t, server, "Alice", "alice", "secret1")

	status, body := doJSON(t, server, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"login":    "alice",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, alice, asID(t, body, "id"))

	// Wrong password and unknown login fail identically.
	status, _ = doJSON(t, server, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"login":    "alice",
		"password": "wrong99",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, server, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"login":    "nobody",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestContacts_SelfReferenceRejected(t *testing.T) {
	server := newTestServer(t)
	alice := register(t, server, "Alice", "alice", "secret1")

	status, _ := doJSON(t, server, http.MethodPost, "/api/v1/contacts", map[string]any{
		"userId1": alice,
		"userId2": alice,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMessages_EditByNonAuthorForbidden(t *testing.T) {
	server := newTestServer(t)
	alice := register(t, server, "Alice", "alice", "secret1")
	bob := register(t, server, "Bob", "bob", "secret2")

	status, body := doJSON(t, server, http.MethodPost, "/api/v1/chats", map[string]any{
		"name":      "Team",
		"isGroup":   true,
		"createdBy": alice,
	})
	require.Equal(t, http.StatusCreated, status)
	chatID := asID(t, body, "id")

	status, body = doJSON(t, server, http.MethodPost, "/api/v1/messages", map[string]any{
		"userId":  alice,
		"chatId":  chatID,
		"message": "original",
	})
	require.Equal(t, http.StatusCreated, status)
	messageID := asID(t, body, "id")

	status, _ = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/v1/messages/%d", messageID), map[string]any{
		"userId":  bob,
		"message": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = doJSON(t, server, http.MethodPut, "/api/v1/messages/9999", map[string]any{
		"userId":  alice,
		"message": "whatever",
	})
	assert.Equal(t, http.StatusNotFound, status)

	// The body survives both failed attempts.
	status, body = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/messages/%d", messageID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "original", body["message"])
}
