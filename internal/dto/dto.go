package dto

import "encoding/json"

// SavedOrder is one manifest entry of a reconciliation run.
type SavedOrder struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// ImportResult is the response body of the order import endpoints.
type ImportResult struct {
	Message     string       `json:"message"`
	SavedOrders []SavedOrder `json:"savedOrders"`
}

// CategorySyncStats summarizes a category sync run.
type CategorySyncStats struct {
	Total   int `json:"total"`
	New     int `json:"new"`
	Updated int `json:"updated"`
}

// CategorySyncResult is the response body of the category fetch endpoint.
type CategorySyncResult struct {
	Success   bool              `json:"success"`
	Timestamp string            `json:"timestamp"`
	Message   string            `json:"message"`
	Stats     CategorySyncStats `json:"stats"`
}

type CreateUserRequest struct {
	UID            string   `json:"uid" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone"`
	Rut            string   `json:"rut"`
	Specialties    []string `json:"specialties"`
	Commune        string   `json:"commune"`
	Description    string   `json:"personalDescription"`
	ProfilePicture string   `json:"profilePicture"`
	Status         string   `json:"status"`
	ValidUser      bool     `json:"validUser"`
	Delete         bool     `json:"delete"`
}

type UpdateUserRequest struct {
	Name           *string  `json:"name"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Phone          *string  `json:"phone"`
	Rut            *string  `json:"rut"`
	Specialties    []string `json:"specialties"`
	Commune        *string  `json:"commune"`
	Description    *string  `json:"personalDescription"`
	ProfilePicture *string  `json:"profilePicture"`
	Status         *string  `json:"status"`
	ValidUser      *bool    `json:"validUser"`
	Delete         *bool    `json:"delete"`
}

type CreateListingRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Duration       int     `json:"duration" validate:"gte=0"`
	Category       string  `json:"category"`
	IsActive       bool    `json:"isActive"`
	Certifications string  `json:"certifications"`
	Portfolio      string  `json:"portfolio"`
}

type UpdateListingRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price" validate:"omitempty,gt=0"`
	Duration       *int     `json:"duration" validate:"omitempty,gte=0"`
	Category       *string  `json:"category"`
	IsActive       *bool    `json:"isActive"`
	Certifications *string  `json:"certifications"`
	Portfolio      *string  `json:"portfolio"`
}

type CreateTransactionRequest struct {
	RequestID          string  `json:"requestId" validate:"required"`
	PaymentMethod      string  `json:"paymentMethod" validate:"required"`
	PaymentDate        string  `json:"paymentDate"`
	PlatformFee        float64 `json:"platformFee" validate:"gte=0"`
	ProfessionalAmount float64 `json:"professionalAmount" validate:"required,gt=0"`
}

type UpdateTransactionRequest struct {
	PaymentMethod *string `json:"paymentMethod"`
	PaymentDate   *string `json:"paymentDate"`
}

type CreateReviewRequest struct {
	RequestID      string `json:"requestId" validate:"required"`
	ClientID       string `json:"clientId" validate:"required"`
	ProfessionalID string `json:"professionalId" validate:"required"`
	Rating         int    `json:"rating" validate:"required"`
	Comment        string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end" validate:"required"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

type OrderNotificationRequest struct {
	OrderID        string          `json:"orderId" validate:"required"`
	Status         string          `json:"status"`
	TotalAmount    float64         `json:"totalAmount"`
	AdditionalData json.RawMessage `json:"additionalData"`
}

// UploadSignature is handed to browser clients so they can upload directly
// to the media host.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
