package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type paginationDTO struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type listDTO[T any] struct {
	Items      []T           `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

func toPagination(p domain.Pagination) paginationDTO {
	return paginationDTO{
		Total:       p.Total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  p.TotalPages,
		HasNextPage: p.HasNextPage,
		HasPrevPage: p.HasPrevPage,
	}
}

func toList[S, T any](page domain.Page[S], conv func(*S) T) listDTO[T] {
	items := make([]T, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, conv(&page.Items[i]))
	}
	return listDTO[T]{Items: items, Pagination: toPagination(page.Pagination)}
}

func mapSlice[S, T any](in []S, conv func(*S) T) []T {
	out := make([]T, 0, len(in))
	for i := range in {
		out = append(out, conv(&in[i]))
	}
	return out
}

// --- users and sellers ---

type userDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUser(u *domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type sellerDTO struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	BusinessName    string    `json:"businessName"`
	ServiceBranch   string    `json:"serviceBranch"`
	Rank            string    `json:"rank,omitempty"`
	ServiceNumber   string    `json:"serviceNumber,omitempty"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	City            string    `json:"city,omitempty"`
	State           string    `json:"state,omitempty"`
	IsVerified      bool      `json:"isVerified"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	Name            string    `json:"name,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toSeller(s *domain.Seller) sellerDTO {
	return sellerDTO{
		ID:              s.ID,
		UserID:          s.UserID,
		BusinessName:    s.BusinessName,
		ServiceBranch:   s.ServiceBranch,
		Rank:            s.Rank,
		ServiceNumber:   s.ServiceNumber,
		Category:        s.Category,
		Description:     s.Description,
		City:            s.City,
		State:           s.State,
		IsVerified:      s.IsVerified,
		Status:          s.Status.String(),
		RejectionReason: s.RejectionReason,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toSellerWithUser(s *domain.SellerWithUser) sellerDTO {
	d := toSeller(&s.Seller)
	d.Name, d.Email, d.Phone = s.Name, s.Email, s.Phone
	return d
}

type reviewSummaryDTO struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

func toReviewSummary(s domain.ReviewSummary) reviewSummaryDTO {
	return reviewSummaryDTO{Count: s.Count, Average: s.Average}
}

// --- catalog ---

type productDTO struct {
	ID              uuid.UUID `json:"id"`
	SellerID        uuid.UUID `json:"sellerId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	Images          []string  `json:"images"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toProduct(p *domain.Product) productDTO {
	return productDTO{
		ID:              p.ID,
		SellerID:        p.SellerID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Price:           p.Price,
		Stock:           p.Stock,
		Images:          nonNil(p.Images),
		Status:          p.Status.String(),
		RejectionReason: p.RejectionReason,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type serviceDTO struct {
	ID              uuid.UUID `json:"id"`
	SellerID        uuid.UUID `json:"sellerId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	PriceFrom       float64   `json:"priceFrom"`
	PriceUnit       string    `json:"priceUnit,omitempty"`
	ServiceArea     string    `json:"serviceArea,omitempty"`
	Images          []string  `json:"images"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toService(l *domain.ServiceListing) serviceDTO {
	return serviceDTO{
		ID:              l.ID,
		SellerID:        l.SellerID,
		Name:            l.Name,
		Description:     l.Description,
		Category:        l.Category,
		PriceFrom:       l.PriceFrom,
		PriceUnit:       l.PriceUnit,
		ServiceArea:     l.ServiceArea,
		Images:          nonNil(l.Images),
		Status:          l.Status.String(),
		RejectionReason: l.RejectionReason,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// --- approvals ---

type refDTO struct {
	Model string    `json:"model"`
	ID    uuid.UUID `json:"id"`
}

type approvalDocumentDTO struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type requesterDTO struct {
	SellerID     uuid.UUID `json:"sellerId"`
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessName string    `json:"businessName"`
}

type approvalDTO struct {
	ID              uuid.UUID             `json:"id"`
	Type            string                `json:"type"`
	Status          string                `json:"status"`
	Requester       refDTO                `json:"requester"`
	Item            *refDTO               `json:"item,omitempty"`
	Documents       []approvalDocumentDTO `json:"documents"`
	AdminNotes      string                `json:"adminNotes,omitempty"`
	ApprovedBy      *uuid.UUID            `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time            `json:"approvedAt,omitempty"`
	RejectedBy      *uuid.UUID            `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time            `json:"rejectedAt,omitempty"`
	RejectionReason string                `json:"rejectionReason,omitempty"`
	RequesterInfo   *requesterDTO         `json:"requesterInfo,omitempty"`
	ItemName        string                `json:"itemName,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func toApproval(a *domain.Approval) approvalDTO {
	d := approvalDTO{
		ID:              a.ID,
		Type:            a.Type.String(),
		Status:          a.Status.String(),
		Requester:       refDTO{Model: string(a.Requester.Model), ID: a.Requester.ID},
		Documents:       make([]approvalDocumentDTO, 0, len(a.Documents)),
		AdminNotes:      a.AdminNotes,
		ApprovedBy:      a.ApprovedBy,
		ApprovedAt:      a.ApprovedAt,
		RejectedBy:      a.RejectedBy,
		RejectedAt:      a.RejectedAt,
		RejectionReason: a.RejectionReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.Item != nil {
		d.Item = &refDTO{Model: string(a.Item.Model), ID: a.Item.ID}
	}
	for _, doc := range a.Documents {
		d.Documents = append(d.Documents, approvalDocumentDTO{
			ID:         doc.ID,
			Type:       doc.Type,
			Name:       doc.Name,
			Path:       doc.Path,
			Status:     doc.Status.String(),
			UploadedAt: doc.UploadedAt,
		})
	}
	return d
}

func toApprovalDetail(a *domain.ApprovalDetail) approvalDTO {
	d := toApproval(&a.Approval)
	d.RequesterInfo = &requesterDTO{
		SellerID:     a.Requester.SellerID,
		UserID:       a.Requester.UserID,
		Name:         a.Requester.Name,
		Email:        a.Requester.Email,
		BusinessName: a.Requester.BusinessName,
	}
	d.ItemName = a.ItemName
	return d
}

type approvalStatsDTO struct {
	TotalPending int            `json:"totalPending"`
	ByType       map[string]int `json:"byType"`
}

func toApprovalStats(s domain.ApprovalStats) approvalStatsDTO {
	return approvalStatsDTO{
		TotalPending: s.TotalPending,
		ByType: map[string]int{
			domain.ApprovalTypeSellerRegistration.String():   s.SellerRegistration,
			domain.ApprovalTypeProductListing.String():       s.ProductListing,
			domain.ApprovalTypeServiceListing.String():       s.ServiceListing,
			domain.ApprovalTypeDocumentVerification.String(): s.DocumentVerification,
		},
	}
}

type batchSuccessDTO struct {
	ID     uuid.UUID `json:"id"`
	Action string    `json:"action"`
	Type   string    `json:"type"`
	Item   *refDTO   `json:"item,omitempty"`
}

type batchFailureDTO struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type batchResultDTO struct {
	Successful []batchSuccessDTO `json:"successful"`
	Failed     []batchFailureDTO `json:"failed"`
}

func toBatchResult(r *domain.BatchResult) batchResultDTO {
	out := batchResultDTO{
		Successful: make([]batchSuccessDTO, 0, len(r.Successful)),
		Failed:     make([]batchFailureDTO, 0, len(r.Failed)),
	}
	for _, s := range r.Successful {
		d := batchSuccessDTO{ID: s.ID, Action: string(s.Action), Type: s.Type.String()}
		if s.Item != nil {
			d.Item = &refDTO{Model: string(s.Item.Model), ID: s.Item.ID}
		}
		out.Successful = append(out.Successful, d)
	}
	for _, f := range r.Failed {
		out.Failed = append(out.Failed, batchFailureDTO{ID: f.ID, Error: f.Error})
	}
	return out
}

// --- messaging ---

type listingRefDTO struct {
	Type string    `json:"type"`
	ID   uuid.UUID `json:"id"`
}

func toListingRef(r *domain.ListingRef) *listingRefDTO {
	if r == nil {
		return nil
	}
	return &listingRefDTO{Type: r.Kind.String(), ID: r.ID}
}

type participantDTO struct {
	UserID   uuid.UUID  `json:"userId"`
	IsSeller bool       `json:"isSeller"`
	SellerID *uuid.UUID `json:"sellerId,omitempty"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	LastRead *time.Time `json:"lastRead,omitempty"`
}

type latestMessageDTO struct {
	MessageID uuid.UUID `json:"messageId"`
	SenderID  uuid.UUID `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}

type conversationDTO struct {
	ID             uuid.UUID         `json:"id"`
	ConversationID string            `json:"conversationId"`
	Participants   []participantDTO  `json:"participants"`
	RelatedItem    *listingRefDTO    `json:"relatedItem,omitempty"`
	RelatedOrderID *uuid.UUID        `json:"relatedOrder,omitempty"`
	LatestMessage  *latestMessageDTO `json:"latestMessage,omitempty"`
	MessageCount   int               `json:"messageCount"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func toConversation(c *domain.Conversation) conversationDTO {
	d := conversationDTO{
		ID:             c.ID,
		ConversationID: c.ConversationID,
		Participants:   make([]participantDTO, 0, len(c.Participants)),
		RelatedItem:    toListingRef(c.RelatedItem),
		RelatedOrderID: c.RelatedOrderID,
		MessageCount:   c.MessageCount,
		Status:         c.Status.String(),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	for _, p := range c.Participants {
		d.Participants = append(d.Participants, participantDTO{
			UserID:   p.UserID,
			IsSeller: p.IsSeller,
			SellerID: p.SellerID,
			Name:     p.Name,
			Email:    p.Email,
			LastRead: p.LastRead,
		})
	}
	if lm := c.LatestMessage; lm != nil {
		d.LatestMessage = &latestMessageDTO{
			MessageID: lm.MessageID,
			SenderID:  lm.SenderID,
			Content:   lm.Content,
			Timestamp: lm.Timestamp,
			IsRead:    lm.IsRead,
		}
	}
	return d
}

type attachmentDTO struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

type messageDTO struct {
	ID                uuid.UUID       `json:"id"`
	ConversationID    string          `json:"conversationId"`
	SenderID          uuid.UUID       `json:"sender"`
	SenderIsSeller    bool            `json:"senderIsSeller"`
	RecipientID       uuid.UUID       `json:"recipient"`
	RecipientIsSeller bool            `json:"recipientIsSeller"`
	Content           string          `json:"content"`
	RelatedItem       *listingRefDTO  `json:"relatedItem,omitempty"`
	RelatedOrderID    *uuid.UUID      `json:"relatedOrder,omitempty"`
	IsRead            bool            `json:"isRead"`
	ReadAt            *time.Time      `json:"readAt,omitempty"`
	Attachments       []attachmentDTO `json:"attachments"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func toMessage(m *domain.Message) messageDTO {
	d := messageDTO{
		ID:                m.ID,
		ConversationID:    m.ConversationID,
		SenderID:          m.SenderID,
		SenderIsSeller:    m.SenderIsSeller,
		RecipientID:       m.RecipientID,
		RecipientIsSeller: m.RecipientIsSeller,
		Content:           m.Content,
		RelatedItem:       toListingRef(m.RelatedItem),
		RelatedOrderID:    m.RelatedOrderID,
		IsRead:            m.IsRead,
		ReadAt:            m.ReadAt,
		Attachments:       make([]attachmentDTO, 0, len(m.Attachments)),
		Status:            m.Status.String(),
		CreatedAt:         m.CreatedAt,
	}
	for _, a := range m.Attachments {
		d.Attachments = append(d.Attachments, attachmentDTO(a))
	}
	return d
}

type notificationDTO struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNotification(n *domain.Notification) notificationDTO {
	return notificationDTO{
		ID:        n.ID,
		Type:      n.Type.String(),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// --- orders ---

type historyDTO struct {
	Kind      string     `json:"kind"`
	Value     string     `json:"value"`
	Note      string     `json:"note,omitempty"`
	ChangedBy *uuid.UUID `json:"changedBy,omitempty"`
	ChangedAt time.Time  `json:"changedAt"`
}

func toHistory(h *domain.OrderHistoryEntry) historyDTO {
	d := historyDTO{Kind: string(h.Kind), Value: h.Value, Note: h.Note, ChangedAt: h.ChangedAt}
	if h.ChangedBy != uuid.Nil {
		by := h.ChangedBy
		d.ChangedBy = &by
	}
	return d
}

type orderDTO struct {
	ID              uuid.UUID    `json:"id"`
	OrderNumber     string       `json:"orderNumber"`
	BuyerID         uuid.UUID    `json:"buyerId"`
	SellerID        uuid.UUID    `json:"sellerId"`
	ProductID       uuid.UUID    `json:"productId"`
	ProductName     string       `json:"productName"`
	Quantity        int          `json:"quantity"`
	UnitPrice       float64      `json:"unitPrice"`
	TotalAmount     float64      `json:"totalAmount"`
	ShippingAddress string       `json:"shippingAddress"`
	Status          string       `json:"status"`
	PaymentStatus   string       `json:"paymentStatus"`
	PaymentMethod   string       `json:"paymentMethod,omitempty"`
	TrackingNumber  string       `json:"trackingNumber,omitempty"`
	Carrier         string       `json:"carrier,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	TrackingURL     string       `json:"trackingUrl,omitempty"`
	StatusHistory   []historyDTO `json:"statusHistory"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func toOrder(o *domain.Order) orderDTO {
	return orderDTO{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		ProductID:       o.ProductID,
		ProductName:     o.ProductName,
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          o.Status.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		PaymentMethod:   o.PaymentMethod,
		TrackingNumber:  o.TrackingNumber,
		Carrier:         o.Carrier,
		Notes:           o.Notes,
		StatusHistory:   mapSlice(o.StatusHistory, toHistory),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// --- blog, bookings, reviews ---

type blogPostDTO struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"authorId"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toBlogPost(p *domain.BlogPost) blogPostDTO {
	return blogPostDTO{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		Tags:        nonNil(p.Tags),
		Status:      p.Status.String(),
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type bookingDTO struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"serviceId"`
	BuyerID     uuid.UUID `json:"buyerId"`
	SellerID    uuid.UUID `json:"sellerId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBooking(b *domain.Booking) bookingDTO {
	return bookingDTO{
		ID:          b.ID,
		ServiceID:   b.ServiceID,
		BuyerID:     b.BuyerID,
		SellerID:    b.SellerID,
		ScheduledAt: b.ScheduledAt,
		Notes:       b.Notes,
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type reviewDTO struct {
	ID         uuid.UUID     `json:"id"`
	ReviewerID uuid.UUID     `json:"reviewerId"`
	Item       listingRefDTO `json:"item"`
	Rating     int           `json:"rating"`
	Comment    string        `json:"comment,omitempty"`
	Status     string        `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func toReview(r *domain.Review) reviewDTO {
	return reviewDTO{
		ID:         r.ID,
		ReviewerID: r.ReviewerID,
		Item:       listingRefDTO{Type: r.Item.Kind.String(), ID: r.Item.ID},
		Rating:     r.Rating,
		Comment:    r.Comment,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}
