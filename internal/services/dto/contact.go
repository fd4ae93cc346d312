package dto

// AddContactRequest - add an undirected contact edge
type AddContactRequest struct {
	UserID1 uint `json:"userId1" binding:"required"`
	UserID2 uint `json:"userId2" binding:"required"`
}
