package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequesterModel discriminates which collection Approval.Requester points into.
// Only sellers submit approvals today.
type RequesterModel string

const RequesterModelSeller RequesterModel = "seller"

// ItemModel discriminates which collection Approval.Item points into.
type ItemModel string

const (
	ItemModelProduct  ItemModel = "product"
	ItemModelService  ItemModel = "service"
	ItemModelDocument ItemModel = "document"
)

func (m ItemModel) IsValid() bool {
	switch m {
	case ItemModelProduct, ItemModelService, ItemModelDocument:
		return true
	}
	return false
}

// RequesterRef is a typed reference to the party that submitted an approval.
type RequesterRef struct {
	Model RequesterModel
	ID    uuid.UUID
}

// ItemRef is a typed reference to the entity under review.
type ItemRef struct {
	Model ItemModel
	ID    uuid.UUID
}

// ApprovalDocument is a file attached to an approval for verification.
type ApprovalDocument struct {
	ID         uuid.UUID
	Type       string
	Name       string
	Path       string
	Status     DocumentStatus
	UploadedAt time.Time
}

// Approval is a moderation decision on a seller, listing or document set.
type Approval struct {
	ID              uuid.UUID
	Type            ApprovalType
	Status          ApprovalStatus
	Requester       RequesterRef
	Item            *ItemRef
	Documents       []ApprovalDocument
	AdminNotes      string
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	RejectedBy      *uuid.UUID
	RejectedAt      *time.Time
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPending reports whether the approval still awaits a decision.
func (a *Approval) IsPending() bool { return a.Status == ApprovalStatusPending }

// Approve moves a pending approval to approved. The receiver is left
// untouched when the approval is not pending.
func (a *Approval) Approve(adminID uuid.UUID, notes string, now time.Time) error {
	if !a.IsPending() {
		return NewStateError("Approval is already %s", a.Status)
	}
	a.Status = ApprovalStatusApproved
	a.ApprovedBy = &adminID
	a.ApprovedAt = &now
	if notes != "" {
		a.AdminNotes = notes
	}
	a.UpdatedAt = now
	return nil
}

// Reject moves a pending approval to rejected. A reason is mandatory and is
// checked before the status.
func (a *Approval) Reject(adminID uuid.UUID, reason, notes string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return NewValidationError("reason", "rejection reason is required")
	}
	if !a.IsPending() {
		return NewStateError("Approval is already %s", a.Status)
	}
	a.Status = ApprovalStatusRejected
	a.RejectedBy = &adminID
	a.RejectedAt = &now
	a.RejectionReason = strings.TrimSpace(reason)
	if notes != "" {
		a.AdminNotes = notes
	}
	a.UpdatedAt = now
	return nil
}

// SetDocumentStatus updates one embedded document in place.
// Returns ErrNotFound when the document is not attached to this approval.
func (a *Approval) SetDocumentStatus(documentID uuid.UUID, status DocumentStatus, now time.Time) error {
	for i := range a.Documents {
		if a.Documents[i].ID == documentID {
			a.Documents[i].Status = status
			a.UpdatedAt = now
			return nil
		}
	}
	return ErrNotFound
}

// SetAllDocuments sets every embedded document to the given status.
func (a *Approval) SetAllDocuments(status DocumentStatus) {
	for i := range a.Documents {
		a.Documents[i].Status = status
	}
}

// ApprovalRequester is the requester summary shown in the admin queue.
type ApprovalRequester struct {
	SellerID     uuid.UUID
	UserID       uuid.UUID
	Name         string
	Email        string
	BusinessName string
}

// ApprovalDetail is an approval joined with its requester and item names.
type ApprovalDetail struct {
	Approval
	Requester ApprovalRequester
	ItemName  string
}

// ApprovalFilter holds the admin queue filters.
type ApprovalFilter struct {
	Status *ApprovalStatus
	Type   *ApprovalType
	Search string
	From   *time.Time
	To     *time.Time
	PageRequest
}

// ApprovalStats counts pending approvals overall and per type.
type ApprovalStats struct {
	TotalPending         int
	SellerRegistration   int
	ProductListing       int
	ServiceListing       int
	DocumentVerification int
}

// ApprovalDecision is one entry of a batch request.
type ApprovalDecision struct {
	ID     string
	Action string
	Reason string
	Notes  string
}

// BatchSuccess describes a successfully processed batch item.
type BatchSuccess struct {
	ID     uuid.UUID
	Action ApprovalAction
	Type   ApprovalType
	Item   *ItemRef
}

// BatchFailure describes a batch item that could not be processed.
type BatchFailure struct {
	ID    string
	Error string
}

// BatchResult collects per-item outcomes of a batch decision.
type BatchResult struct {
	Successful []BatchSuccess
	Failed     []BatchFailure
}
