package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const maxImages = 10

// ProductInput holds the fields of a product create or full update.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	Images      []string
}

func (i *ProductInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = strings.TrimSpace(i.Description)
	i.Category = strings.TrimSpace(i.Category)
}

// Validate validates the product input against the marketplace limits.
func (i ProductInput) Validate(cfg config.MarketplaceConfig) error {
	errs := validateCommon(cfg, i.Name, i.Description, i.Category, i.Images)

	if i.Price <= 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be greater than 0"})
	}
	if i.Stock < 0 {
		errs = append(errs, domain.FieldError{Field: "stock", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ServiceInput holds the fields of a service listing create or full update.
type ServiceInput struct {
	Name        string
	Description string
	Category    string
	PriceFrom   float64
	PriceUnit   string
	ServiceArea string
	Images      []string
}

func (i *ServiceInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = strings.TrimSpace(i.Description)
	i.Category = strings.TrimSpace(i.Category)
	i.PriceUnit = strings.TrimSpace(i.PriceUnit)
	i.ServiceArea = strings.TrimSpace(i.ServiceArea)
}

// Validate validates the service input against the marketplace limits.
func (i ServiceInput) Validate(cfg config.MarketplaceConfig) error {
	errs := validateCommon(cfg, i.Name, i.Description, i.Category, i.Images)

	if i.PriceFrom <= 0 {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be greater than 0"})
	}
	if utf8.RuneCountInString(i.PriceUnit) > 50 {
		errs = append(errs, domain.FieldError{Field: "priceUnit", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateCommon(cfg config.MarketplaceConfig, name, description, category string, images []string) []domain.FieldError {
	var errs []domain.FieldError

	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > cfg.MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if utf8.RuneCountInString(description) < cfg.MinDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too short"})
	}
	if category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if len(images) > maxImages {
		errs = append(errs, domain.FieldError{Field: "images", Message: "too many images"})
	}
	return errs
}

// ListInput holds listing query parameters.
type ListInput struct {
	Category  string
	Search    string
	SellerID  *uuid.UUID
	MinPrice  *float64
	MaxPrice  *float64
	Status    string
	SortBy    string
	SortOrder string
	domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.MinPrice != nil && *i.MinPrice < 0 {
		errs = append(errs, domain.FieldError{Field: "minPrice", Message: "must not be negative"})
	}
	if i.MinPrice != nil && i.MaxPrice != nil && *i.MaxPrice < *i.MinPrice {
		errs = append(errs, domain.FieldError{Field: "maxPrice", Message: "must not be less than minPrice"})
	}
	if i.Status != "" && !domain.ListingStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid listing status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.ListingFilter {
	f := domain.ListingFilter{
		Category:    strings.TrimSpace(i.Category),
		Search:      strings.TrimSpace(i.Search),
		SellerID:    i.SellerID,
		MinPrice:    i.MinPrice,
		MaxPrice:    i.MaxPrice,
		SortBy:      i.SortBy,
		SortOrder:   domain.ParseSortOrder(i.SortOrder, domain.SortDesc),
		PageRequest: i.PageRequest.Normalize(),
	}
	if i.Status != "" {
		st := domain.ListingStatus(i.Status)
		f.Status = &st
	}
	return f
}
