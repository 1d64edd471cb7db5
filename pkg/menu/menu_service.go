package menu

import (
	"context"
	"errors"

	"emenu/domain"
	"emenu/entities"

	"gorm.io/gorm"
)

type (
	MenuService interface {
		ListMenus(ctx context.Context, q domain.ListMenusQuery, authenticated bool) ([]domain.MenuResponse, error)
		GetMenuDetail(ctx context.Context, id uint) (domain.MenuDetailResponse, error)
		CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (domain.MenuResponse, error)
		UpdateMenu(ctx context.Context, id uint, req domain.UpdateMenuRequest) (domain.MenuResponse, error)
		DeleteMenu(ctx context.Context, id uint) error
	}

	menuService struct {
		menuRepository MenuRepository
	}
)

func NewMenuService(menuRepository MenuRepository) MenuService {
	return &menuService{menuRepository: menuRepository}
}

// ListMenus returns the menu collection visible to the caller. Anonymous
// callers only see menus that hold at least one dish; authenticated callers
// see every menu.
func (s *menuService) ListMenus(ctx context.Context, q domain.ListMenusQuery, authenticated bool) ([]domain.MenuResponse, error) {
	menus, err := s.menuRepository.ListMenus(ctx, q, !authenticated)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MenuResponse, 0, len(menus))
	for _, m := range menus {
		response = append(response, menuResponse(&m.Menu))
	}
	return response, nil
}

func (s *menuService) GetMenuDetail(ctx context.Context, id uint) (domain.MenuDetailResponse, error) {
	menu, err := s.menuRepository.GetMenuByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuDetailResponse{}, domain.ErrMenuNotFound
		}
		return domain.MenuDetailResponse{}, err
	}

	dishes := make([]domain.DishResponse, 0, len(menu.Dishes))
	for i := range menu.Dishes {
		dishes = append(dishes, dishResponse(&menu.Dishes[i]))
	}

	return domain.MenuDetailResponse{
		ID:          menu.ID,
		Name:        menu.Name,
		Description: menu.Description,
		Dishes:      dishes,
		CreatedAt:   menu.CreatedAt,
		UpdatedAt:   menu.UpdatedAt,
	}, nil
}

func (s *menuService) CreateMenu(ctx context.Context, req domain.CreateMenuRequest) (domain.MenuResponse, error) {
	taken, err := s.menuRepository.MenuNameTaken(ctx, req.Name, 0)
	if err != nil {
		return domain.MenuResponse{}, err
	}
	if taken {
		return domain.MenuResponse{}, domain.ErrMenuNameTaken
	}

	menu := &entities.Menu{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.menuRepository.CreateMenu(ctx, menu); err != nil {
		return domain.MenuResponse{}, err
	}

	return menuResponse(menu), nil
}

func (s *menuService) UpdateMenu(ctx context.Context, id uint, req domain.UpdateMenuRequest) (domain.MenuResponse, error) {
	menu, err := s.menuRepository.GetMenuByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuResponse{}, domain.ErrMenuNotFound
		}
		return domain.MenuResponse{}, err
	}

	if req.Name != "" && req.Name != menu.Name {
		taken, err := s.menuRepository.MenuNameTaken(ctx, req.Name, id)
		if err != nil {
			return domain.MenuResponse{}, err
		}
		if taken {
			return domain.MenuResponse{}, domain.ErrMenuNameTaken
		}
		menu.Name = req.Name
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}

	if err := s.menuRepository.UpdateMenu(ctx, menu); err != nil {
		return domain.MenuResponse{}, err
	}

	return menuResponse(menu), nil
}

func (s *menuService) DeleteMenu(ctx context.Context, id uint) error {
	if _, err := s.menuRepository.GetMenuByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuNotFound
		}
		return err
	}
	return s.menuRepository.DeleteMenu(ctx, id)
}

func menuResponse(menu *entities.Menu) domain.MenuResponse {
	return domain.MenuResponse{
		ID:          menu.ID,
		Name:        menu.Name,
		Description: menu.Description,
		CreatedAt:   menu.CreatedAt,
		UpdatedAt:   menu.UpdatedAt,
	}
}

func dishResponse(dish *entities.Dish) domain.DishResponse {
	return domain.DishResponse{
		ID:           dish.ID,
		MenuID:       dish.MenuID,
		Name:         dish.Name,
		Description:  dish.Description,
		Price:        dish.Price.StringFixed(2),
		PrepTime:     dish.PrepTime,
		IsVegetarian: dish.IsVegetarian,
		ImageURL:     dish.ImageURL,
		CreatedAt:    dish.CreatedAt,
		UpdatedAt:    dish.UpdatedAt,
	}
}
