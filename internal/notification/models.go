package notification

import (
	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
)

// Notification is a message addressed to a single user.
type Notification struct {
	RecipientID  uuid.UUID
	Type         db.NotificationType
	Title        string
	Message      string
	AuctionID    *uuid.UUID
	AuctionTitle string
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 100

	maxSubjectTitleLength = 60
)

// emailTypes are the notification types that are also delivered by email.
var emailTypes = map[db.NotificationType]bool{
	db.NotificationTypeAuctionWon:         true,
	db.NotificationTypeBuyNowPurchase:     true,
	db.NotificationTypeAuctionEndedSeller: true,
}
