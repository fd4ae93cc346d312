package apperrors

import (
	"net/http"
)

// Predefined domain errors. Each tag in the taxonomy has exactly one
// variable here and exactly one HTTP representation.

// --- Users & auth ---

// ErrLoginAlreadyExists - the login is taken by another user.
var ErrLoginAlreadyExists = New(
	CodeConflict,
	"users",
	"Login already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - unknown login or wrong password.
// Intentionally undifferentiated: never reveals which half failed.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid login or password",
	http.StatusUnauthorized,
)

// ErrUserNotFound - no user with the given id.
var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// --- Contacts ---

// ErrSelfContact - a user cannot be their own contact.
var ErrSelfContact = New(
	CodeSelfReference,
	"contacts",
	"Cannot add yourself as contact",
	http.StatusBadRequest,
)

// ErrContactAlreadyExists - the unordered pair is already stored.
var ErrContactAlreadyExists = New(
	CodeConflict,
	"contacts",
	"Contact already exists",
	http.StatusConflict,
)

// --- Messages ---

// ErrMessageNotFound - no message with the given id.
var ErrMessageNotFound = New(
	CodeNotFound,
	"messages",
	"Message not found",
	http.StatusNotFound,
)

// ErrNotMessageAuthor - edit/delete requested by someone other than
// the author. The original server collapsed this with "not found";
// they are kept distinct here.
var ErrNotMessageAuthor = New(
	CodeForbidden,
	"messages",
	"Only the author can modify this message",
	http.StatusForbidden,
)

// ErrOriginalMessageNotFound - forward source does not exist.
var ErrOriginalMessageNotFound = New(
	CodeNotFound,
	"messages",
	"Original message not found",
	http.StatusNotFound,
)
