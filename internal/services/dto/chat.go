package dto

// CreateChatRequest - new direct or group chat
type CreateChatRequest struct {
	Name         string `json:"name"`
	IsGroup      bool   `json:"isGroup"`
	CreatedBy    uint   `json:"createdBy" binding:"required"`
	Participants []uint `json:"participants"`
}

// AddMemberRequest - add one user to an existing chat
type AddMemberRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
