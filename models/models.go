package models

import "time"

// Categories a customization option (and therefore a vendor task) may belong to.
var Categories = []string{"venue", "catering", "decoration", "entertainment", "photography"}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	Status        string    `json:"status" bson:"status"` // active, pending, disabled
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	LastLogin     time.Time `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

type EventPackage struct {
	PackageID   string    `json:"packageid" bson:"packageid"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	BasePrice   float64   `json:"basePrice" bson:"basePrice"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Features    []string  `json:"features" bson:"features"`
	Popular     bool      `json:"popular,omitempty" bson:"popular,omitempty"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type CustomizationOption struct {
	OptionID    string    `json:"optionid" bson:"optionid"`
	Category    string    `json:"category" bson:"category"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"` // catering is per guest, everything else flat
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type Booking struct {
	BookingID      string                `json:"bookingid" bson:"bookingid"`
	ClientID       string                `json:"clientId" bson:"clientId"`
	ClientName     string                `json:"clientName" bson:"clientName"`
	PackageID      string                `json:"packageId" bson:"packageId"`
	PackageName    string                `json:"packageName" bson:"packageName"`
	Customizations []CustomizationOption `json:"customizations" bson:"customizations"`
	TotalPrice     float64               `json:"totalPrice" bson:"totalPrice"`
	EventDate      string                `json:"eventDate" bson:"eventDate"` // YYYY-MM-DD
	GuestCount     int                   `json:"guestCount" bson:"guestCount"`
	Requirements   string                `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Status         string                `json:"status" bson:"status"`
	CreatedAt      time.Time             `json:"createdAt" bson:"createdAt"`
}

type VendorTask struct {
	TaskID             string    `json:"taskid" bson:"taskid"`
	BookingID          string    `json:"bookingId" bson:"bookingId"`
	VendorID           string    `json:"vendorId" bson:"vendorId"`
	VendorName         string    `json:"vendorName" bson:"vendorName"`
	Category           string    `json:"category" bson:"category"`
	Title              string    `json:"title" bson:"title"`
	Description        string    `json:"description" bson:"description"`
	Status             string    `json:"status" bson:"status"` // assigned, in-progress, completed
	EventDate          string    `json:"eventDate" bson:"eventDate"`
	ClientRequirements string    `json:"clientRequirements" bson:"clientRequirements"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
}

type Review struct {
	ReviewID   string    `json:"reviewid" bson:"reviewid"`
	PackageID  string    `json:"packageId" bson:"packageId"`
	BookingID  string    `json:"bookingId" bson:"bookingId"`
	ClientID   string    `json:"clientId" bson:"clientId"`
	ClientName string    `json:"clientName" bson:"clientName"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment" bson:"comment"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

type Notification struct {
	NotificationID string    `json:"notificationid" bson:"notificationid"`
	UserID         string    `json:"userId" bson:"userId"`
	Message        string    `json:"message" bson:"message"`
	IsRead         bool      `json:"isRead" bson:"isRead"`
	Link           string    `json:"link,omitempty" bson:"link,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

type ActivityMeta struct {
	UserID     string `json:"userId,omitempty" bson:"userId,omitempty"`
	BookingID  string `json:"bookingId,omitempty" bson:"bookingId,omitempty"`
	VendorName string `json:"vendorName,omitempty" bson:"vendorName,omitempty"`
	ClientName string `json:"clientName,omitempty" bson:"clientName,omitempty"`
}

type Activity struct {
	ActivityID string       `json:"activityid" bson:"activityid"`
	Message    string       `json:"message" bson:"message"`
	Meta       ActivityMeta `json:"meta,omitempty" bson:"meta,omitempty"`
	Timestamp  time.Time    `json:"timestamp" bson:"timestamp"`
}

type Wishlist struct {
	UserID     string   `json:"userId" bson:"userId"`
	PackageIDs []string `json:"packageIds" bson:"packageIds"`
}

// ChatMessage is one line in a booking's client–admin conversation.
type ChatMessage struct {
	MessageID  string    `json:"messageid" bson:"messageid"`
	BookingID  string    `json:"bookingId" bson:"bookingId"`
	SenderID   string    `json:"senderId" bson:"senderId"`
	SenderName string    `json:"senderName" bson:"senderName"`
	Text       string    `json:"text" bson:"text"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

type VendorAvailability struct {
	VendorID         string   `json:"vendorId" bson:"vendorId"`
	UnavailableDates []string `json:"unavailableDates" bson:"unavailableDates"` // YYYY-MM-DD
}

// Index represents an indexing-related message emitted to the event channel.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
