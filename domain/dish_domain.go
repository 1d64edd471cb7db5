package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateDish  = "dish created successfully"
	MessageSuccessUpdateDish  = "dish updated successfully"
	MessageSuccessDeleteDish  = "dish deleted successfully"
	MessageSuccessGetDishes   = "dishes retrieved successfully"
	MessageSuccessGetDish     = "dish retrieved successfully"
	MessageSuccessUploadImage = "dish image uploaded successfully"
	MessageFailedCreateDish   = "failed to create dish"
	MessageFailedUpdateDish   = "failed to update dish"
	MessageFailedDeleteDish   = "failed to delete dish"
	MessageFailedGetDishes    = "failed to retrieve dishes"
	MessageFailedGetDish      = "failed to retrieve dish"
	MessageFailedUploadImage  = "failed to upload dish image"

	ErrDishNotFound       = errors.New("dish not found")
	ErrDishMenuNotFound   = errors.New("dish menu not found")
	ErrInvalidPrice       = errors.New("price must be a decimal with at most 2 fraction digits")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrMissingImage       = errors.New("image field is required")
)

type (
	CreateDishRequest struct {
		MenuID       uint   `json:"menu" validate:"required"`
		Name         string `json:"name" validate:"required"`
		Description  string `json:"description"`
		Price        string `json:"price" validate:"required"`
		PrepTime     *uint  `json:"prep_time" validate:"required"`
		IsVegetarian bool   `json:"is_vegetarian"`
	}

	UpdateDishRequest struct {
		MenuID       uint   `json:"menu" validate:"omitempty"`
		Name         string `json:"name" validate:"omitempty"`
		Description  *string `json:"description"`
		Price        string `json:"price" validate:"omitempty"`
		PrepTime     *uint  `json:"prep_time"`
		IsVegetarian *bool  `json:"is_vegetarian"`
	}

	ListDishesQuery struct {
		MenuID       uint
		IsVegetarian *bool
		Search       string
	}

	DishResponse struct {
		ID           uint      `json:"id"`
		MenuID       uint      `json:"menu"`
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		Price        string    `json:"price"`
		PrepTime     uint      `json:"prep_time"`
		IsVegetarian bool      `json:"is_vegetarian"`
		ImageURL     string    `json:"image,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	UploadDishImageResponse struct {
		ID       uint   `json:"id"`
		ImageURL string `json:"image"`
	}
)

// ParsePrice parses a fixed-point price with at most 2 fraction digits.
// Negative values are allowed, matching the storage model.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	if price.Exponent() < -2 {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	return price, nil
}
