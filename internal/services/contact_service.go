package services

import (
	"messenger_backend/internal/models"
	"messenger_backend/internal/repositories"
	"messenger_backend/pkg/apperrors"
)

type ContactService interface {
	AddContact(userID1, userID2 uint) (uint, error)
	ListContacts(userID uint) ([]repositories.ContactEntry, error)
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	userRepo    repositories.UserRepository
}

func NewContactService(contactRepo repositories.ContactRepository, userRepo repositories.UserRepository) ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		userRepo:    userRepo,
	}
}

// AddContact stores the undirected edge (userID1, userID2). Checks run
// in a fixed order: self-reference, endpoint existence, duplication in
// either orientation.
func (s *ContactServiceImpl) AddContact(userID1, userID2 uint) (uint, error) {
	if userID1 == userID2 {
		return 0, apperrors.ErrSelfContact
	}

	for _, id := range []uint{userID1, userID2} {
		exists, err := s.userRepo.Exists(id)
		if err != nil {
			return 0, apperrors.StoreError(err)
		}
		if !exists {
			return 0, apperrors.ErrUserNotFound.WithDetails(map[string]uint{"userId": id})
		}
	}

	exists, err := s.contactRepo.PairExists(userID1, userID2)
	if err != nil {
		return 0, apperrors.StoreError(err)
	}
	if exists {
		return 0, apperrors.ErrContactAlreadyExists
	}

	contact := &models.Contact{UserID1: userID1, UserID2: userID2}
	if err := s.contactRepo.Create(contact); err != nil {
		return 0, apperrors.StoreError(err)
	}

	return contact.ID, nil
}

// ListContacts yields the other endpoint and its current display name
// for every edge touching userID.
func (s *ContactServiceImpl) ListContacts(userID uint) ([]repositories.ContactEntry, error) {
	entries, err := s.contactRepo.ListForUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return entries, nil
}
