package dto

// SendMessageRequest - append a message to a chat's log. ReplyID and
// ResendID are optional lineage fields; 0 means none.
type SendMessageRequest struct {
	UserID   uint   `json:"userId" binding:"required"`
	ChatID   uint   `json:"chatId" binding:"required"`
	Message  string `json:"message" binding:"required"`
	ReplyID  uint   `json:"replyId"`
	ResendID uint   `json:"resendId"`
}

// EditMessageRequest - replace the body of an own message
type EditMessageRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// DeleteMessageRequest - remove an own message
type DeleteMessageRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// ForwardMessageRequest - copy an existing message into another chat
type ForwardMessageRequest struct {
	OriginalMessageID uint `json:"originalMessageId" binding:"required"`
	TargetChatID      uint `json:"targetChatId" binding:"required"`
	UserID            uint `json:"userId" binding:"required"`
}

// MessageInfoResponse - author and body of a single message
type MessageInfoResponse struct {
	UserID  uint   `json:"userId"`
	Message string `json:"message"`
}
