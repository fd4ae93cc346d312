package repositories

import (
	"messenger_backend/internal/models"

	"gorm.io/gorm"
)

// ContactEntry is one row of a user's contact list: the other endpoint
// of the edge and its current display name.
type ContactEntry struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
}

type ContactRepository interface {
	Create(contact *models.Contact) error
	PairExists(userID1, userID2 uint) (bool, error)
	ListForUser(userID uint) ([]ContactEntry, error)
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// PairExists reports whether the unordered pair is already stored,
// checking both orientations.
func (r *ContactRepositoryImpl) PairExists(userID1, userID2 uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("(user_id1 = ? AND user_id2 = ?) OR (user_id1 = ? AND user_id2 = ?)",
			userID1, userID2, userID2, userID1).
		Count(&count).Error
	return count > 0, err
}

// ListForUser yields, for every edge touching userID, the other
// endpoint joined with its display name.
func (r *ContactRepositoryImpl) ListForUser(userID uint) ([]ContactEntry, error) {
	var entries []ContactEntry
	err := r.db.Model(&models.Contact{}).
		Select("CASE WHEN contacts.user_id1 = ? THEN contacts.user_id2 ELSE contacts.user_id1 END AS user_id, users.name AS name", userID).
		Joins("JOIN users ON (contacts.user_id1 = users.id OR contacts.user_id2 = users.id) AND users.id <> ?", userID).
		Where("contacts.user_id1 = ? OR contacts.user_id2 = ?", userID, userID).
		Order("contacts.id ASC").
		Scan(&entries).Error
	return entries, err
}
