package usecase

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEstimateNotFound = errors.New("estimate not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrInvalidID        = errors.New("invalid id")
)
