package domain

// UserRole determines which portal and endpoints a user may access.
type UserRole string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleSeller UserRole = "seller"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleBuyer, UserRoleSeller, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// SellerStatus is the lifecycle state of an ESM seller profile.
type SellerStatus string

const (
	SellerStatusPending   SellerStatus = "pending"
	SellerStatusActive    SellerStatus = "active"
	SellerStatusRejected  SellerStatus = "rejected"
	SellerStatusSuspended SellerStatus = "suspended"
)

func (s SellerStatus) String() string { return string(s) }

func (s SellerStatus) IsValid() bool {
	switch s {
	case SellerStatusPending, SellerStatusActive, SellerStatusRejected, SellerStatusSuspended:
		return true
	}
	return false
}

// ListingStatus is shared by products and service listings.
type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusActive   ListingStatus = "active"
	ListingStatusRejected ListingStatus = "rejected"
	ListingStatusInactive ListingStatus = "inactive"
)

func (s ListingStatus) String() string { return string(s) }

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusPending, ListingStatusActive, ListingStatusRejected, ListingStatusInactive:
		return true
	}
	return false
}

// ApprovalType identifies what an approval moderates.
type ApprovalType string

const (
	ApprovalTypeSellerRegistration   ApprovalType = "seller_registration"
	ApprovalTypeProductListing       ApprovalType = "product_listing"
	ApprovalTypeServiceListing       ApprovalType = "service_listing"
	ApprovalTypeDocumentVerification ApprovalType = "document_verification"
)

// ApprovalTypes lists every approval type in a stable order.
var ApprovalTypes = []ApprovalType{
	ApprovalTypeSellerRegistration,
	ApprovalTypeProductListing,
	ApprovalTypeServiceListing,
	ApprovalTypeDocumentVerification,
}

func (t ApprovalType) String() string { return string(t) }

func (t ApprovalType) IsValid() bool {
	switch t {
	case ApprovalTypeSellerRegistration, ApprovalTypeProductListing,
		ApprovalTypeServiceListing, ApprovalTypeDocumentVerification:
		return true
	}
	return false
}

// ApprovalStatus moves only from pending to one of the terminal states.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) String() string { return string(s) }

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// ApprovalAction is the decision an admin applies to an approval.
type ApprovalAction string

const (
	ApprovalActionApprove ApprovalAction = "approve"
	ApprovalActionReject  ApprovalAction = "reject"
)

func (a ApprovalAction) IsValid() bool {
	return a == ApprovalActionApprove || a == ApprovalActionReject
}

// DocumentStatus is the verification state of an uploaded document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusRejected DocumentStatus = "rejected"
)

func (s DocumentStatus) String() string { return string(s) }

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusVerified, DocumentStatusRejected:
		return true
	}
	return false
}

// ConversationStatus: active ⇄ archived, either → deleted.
type ConversationStatus string

const (
	ConversationStatusActive   ConversationStatus = "active"
	ConversationStatusArchived ConversationStatus = "archived"
	ConversationStatusDeleted  ConversationStatus = "deleted"
)

func (s ConversationStatus) String() string { return string(s) }

func (s ConversationStatus) IsValid() bool {
	switch s {
	case ConversationStatusActive, ConversationStatusArchived, ConversationStatusDeleted:
		return true
	}
	return false
}

// MessageStatus tracks soft deletion and moderation of a message.
type MessageStatus string

const (
	MessageStatusActive   MessageStatus = "active"
	MessageStatusArchived MessageStatus = "archived"
	MessageStatusDeleted  MessageStatus = "deleted"
	MessageStatusFlagged  MessageStatus = "flagged"
)

func (s MessageStatus) String() string { return string(s) }

func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusActive, MessageStatusArchived, MessageStatusDeleted, MessageStatusFlagged:
		return true
	}
	return false
}

// ItemKind identifies which catalog a listing id points into.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	return k == ItemKindProduct || k == ItemKindService
}

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
	BlogStatusArchived  BlogStatus = "archived"
)

func (s BlogStatus) String() string { return string(s) }

func (s BlogStatus) IsValid() bool {
	switch s {
	case BlogStatusDraft, BlogStatusPublished, BlogStatusArchived:
		return true
	}
	return false
}

// BookingStatus is the state of a service booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string { return string(s) }

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ReviewStatus controls review visibility.
type ReviewStatus string

const (
	ReviewStatusActive ReviewStatus = "active"
	ReviewStatusHidden ReviewStatus = "hidden"
)

func (s ReviewStatus) IsValid() bool {
	return s == ReviewStatusActive || s == ReviewStatusHidden
}

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationTypeApproval NotificationType = "approval"
	NotificationTypeOrder    NotificationType = "order"
	NotificationTypeBooking  NotificationType = "booking"
	NotificationTypeMessage  NotificationType = "message"
	NotificationTypeSystem   NotificationType = "system"
)

func (t NotificationType) String() string { return string(t) }
