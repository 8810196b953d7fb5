package model

import (
	"encoding/json"
	"time"
)

// OrderPartition names the storage subdivision an imported order lands in.
// Cancelled orders are kept apart from everything else.
type OrderPartition string

const (
	PartitionActive    OrderPartition = "pedidos"
	PartitionCancelled OrderPartition = "cancelados"
)

// PartitionForStatus picks the destination partition for a storefront status.
func PartitionForStatus(status string) OrderPartition {
	if status == "cancelled" {
		return PartitionCancelled
	}
	return PartitionActive
}

// ImportedOrder is the local projection of a storefront order. The same
// schema backs both partitions; OrderID is unique within a partition.
type ImportedOrder struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	OrderID       string          `gorm:"size:64;uniqueIndex;not null" json:"orderId"` // storefront order id
	Status        string          `gorm:"size:32;index;not null" json:"status"`
	TotalAmount   float64         `json:"montoTotal"`
	CustomerEmail string          `json:"emailCliente"`
	CustomerName  string          `json:"nombreCliente"`
	CustomerPhone string          `json:"telefono"`
	Products      json.RawMessage `gorm:"type:text" json:"productos"`
	PaymentMethod string          `json:"metodoPago"`
	PlacedAt      time.Time       `json:"fechaCreacion"`
	ImportedAt    time.Time       `json:"fechaImportacion"`
	RawPayload    json.RawMessage `gorm:"type:text" json:"datosOriginales"`
	Category      *string         `json:"categoria"`
}

// CategoryProductRef is one product reference attached to a category.
type CategoryProductRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Category mirrors a storefront category, used as a lookup table when
// resolving the trade category of an imported order.
type Category struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	ProviderID  string               `gorm:"size:64;uniqueIndex;not null" json:"providerId"` // storefront category id
	Name        string               `gorm:"index" json:"name"`
	Permalink   string               `json:"permalink"`
	ParentID    *string              `json:"parent_id"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
	Products    []CategoryProductRef `gorm:"serializer:json" json:"products"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// User is a marketplace account; ID comes from the identity provider.
type User struct {
	ID             string    `gorm:"primaryKey;size:64" json:"uid"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"size:128;index;not null" json:"email"`
	Phone          string    `json:"phone"`
	Rut            string    `gorm:"size:16" json:"rut"`
	Specialties    []string  `gorm:"serializer:json" json:"specialties"`
	Commune        string    `json:"commune"`
	Description    string    `json:"personalDescription"`
	ProfilePicture string    `json:"profilePicture"`
	Status         string    `gorm:"size:32" json:"status"`
	ValidUser      bool      `json:"validUser"`
	Deleted        bool      `json:"delete"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ServiceListing is a service offered on the marketplace.
type ServiceListing struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Description    string    `json:"description"`
	Price          float64   `gorm:"not null" json:"price"`
	Duration       int       `json:"duration"` // minutes
	Category       string    `gorm:"size:64;index" json:"category"`
	IsActive       bool      `json:"isActive"`
	Certifications string    `json:"certifications"`
	Portfolio      string    `json:"portfolio"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

const (
	TransactionStatusPending   = "pendiente"
	TransactionStatusCompleted = "completado"
	TransactionStatusRefunded  = "reembolsado"
)

// Transaction records a payment between a client and a professional.
type Transaction struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"id"`
	RequestID          string    `gorm:"size:64;uniqueIndex;not null" json:"requestId"`
	Amount             float64   `gorm:"not null" json:"amount"` // professional amount + platform fee
	PaymentDate        string    `json:"paymentDate"`
	PaymentStatus      string    `gorm:"size:32;index;not null" json:"paymentStatus"`
	PaymentMethod      string    `json:"paymentMethod"`
	PlatformFee        float64   `json:"platformFee"` // percentage
	ProfessionalAmount float64   `json:"professionalAmount"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Review is a client rating of a completed service request.
type Review struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	RequestID      string    `gorm:"size:64;uniqueIndex;not null" json:"requestId"`
	ClientID       string    `gorm:"size:64;index;not null" json:"clientId"`
	ProfessionalID string    `gorm:"size:64;index;not null" json:"professionalId"`
	Rating         int       `gorm:"not null" json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
}

const (
	EventStatusActive   = "active"
	EventStatusCanceled = "canceled"
)

// Event is a calendar entry created by an authenticated user.
type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CreatedBy   string    `gorm:"size:64;index" json:"createdBy"`
	Status      string    `gorm:"size:16" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderNotification is a raw storefront webhook callback, stored as received.
type OrderNotification struct {
	ID             string          `gorm:"primaryKey;size:36" json:"id"`
	OrderID        string          `gorm:"size:64;index" json:"orderId"`
	Status         string          `gorm:"size:32" json:"status"`
	TotalAmount    float64         `json:"totalAmount"`
	AdditionalData json.RawMessage `gorm:"type:text" json:"additionalData"`
	ReceivedAt     time.Time       `json:"receivedAt"`
}
