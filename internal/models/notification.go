package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/domain/valueobject"
)

// Notification всплывающее уведомление (toast) для страницы сессии.
type Notification struct {
	ID          uuid.UUID                       `json:"id"`
	SessionID   uuid.UUID                       `json:"session_id"`
	Title       string                          `json:"title"`
	Description string                          `json:"description"`
	Variant     valueobject.NotificationVariant `json:"variant"`
	CreatedAt   time.Time                       `json:"created_at"`
}

// Тексты уведомлений формы.
var (
	SuccessNotification = Notification{
		Title:       "Success!",
		Description: "Grant writing suggestions generated successfully.",
		Variant:     valueobject.NotificationVariantDefault,
	}
	FailureNotification = Notification{
		Title:       "Error",
		Description: "Failed to generate suggestions. Please try again.",
		Variant:     valueobject.NotificationVariantDestructive,
	}
	MissingInformationNotification = Notification{
		Title:       "Missing Information",
		Description: "Please fill in all fields before generating suggestions.",
		Variant:     valueobject.NotificationVariantDestructive,
	}
)
