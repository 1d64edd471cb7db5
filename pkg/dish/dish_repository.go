package dish

import (
	"context"
	"strings"

	"emenu/domain"
	"emenu/entities"

	"gorm.io/gorm"
)

type (
	DishRepository interface {
		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, id uint) (*entities.Dish, error)
		UpdateDish(ctx context.Context, dish *entities.Dish) error
		DeleteDish(ctx context.Context, id uint) error
		ListDishes(ctx context.Context, q domain.ListDishesQuery) ([]entities.Dish, error)
		MenuExists(ctx context.Context, menuID uint) (bool, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) GetDishByID(ctx context.Context, id uint) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepository) DeleteDish(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Dish{}, id).Error
}

func (r *dishRepository) ListDishes(ctx context.Context, q domain.ListDishesQuery) ([]entities.Dish, error) {
	query := r.db.WithContext(ctx).Model(&entities.Dish{})

	if q.MenuID != 0 {
		query = query.Where("menu_id = ?", q.MenuID)
	}
	if q.IsVegetarian != nil {
		query = query.Where("is_vegetarian = ?", *q.IsVegetarian)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(description) LIKE ?", pattern, pattern)
	}

	var dishes []entities.Dish
	if err := query.Order("id asc").Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) MenuExists(ctx context.Context, menuID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Menu{}).Where("id = ?", menuID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
