package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateMenu  = "menu created successfully"
	MessageSuccessUpdateMenu  = "menu updated successfully"
	MessageSuccessDeleteMenu  = "menu deleted successfully"
	MessageSuccessGetMenus    = "menus retrieved successfully"
	MessageSuccessGetMenu     = "menu retrieved successfully"
	MessageFailedCreateMenu   = "failed to create menu"
	MessageFailedUpdateMenu   = "failed to update menu"
	MessageFailedDeleteMenu   = "failed to delete menu"
	MessageFailedGetMenus     = "failed to retrieve menus"
	MessageFailedGetMenu      = "failed to retrieve menu"

	ErrMenuNotFound  = errors.New("menu not found")
	ErrMenuNameTaken = errors.New("menu name already taken")
)

type (
	CreateMenuRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	UpdateMenuRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Description *string `json:"description"`
	}

	// ListMenusQuery carries the supported query parameters for the menu
	// listing. Ordering accepts name, dishes_count and created_at with an
	// optional "-" prefix; anything else falls back to ascending id.
	ListMenusQuery struct {
		Name     string
		Search   string
		Ordering string
	}

	MenuResponse struct {
		ID          uint      `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	MenuDetailResponse struct {
		ID          uint           `json:"id"`
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Dishes      []DishResponse `json:"dishes"`
		CreatedAt   time.Time      `json:"created_at"`
		UpdatedAt   time.Time      `json:"updated_at"`
	}
)
