package menu

import (
	"context"
	"strings"

	"emenu/domain"
	"emenu/entities"

	"gorm.io/gorm"
)

type (
	// MenuWithCount is a menu row annotated with its live dish count. The
	// count only drives the dishes_count ordering key, it is not serialized.
	MenuWithCount struct {
		entities.Menu
		DishesCount int64
	}

	MenuRepository interface {
		CreateMenu(ctx context.Context, menu *entities.Menu) error
		GetMenuByID(ctx context.Context, id uint) (*entities.Menu, error)
		UpdateMenu(ctx context.Context, menu *entities.Menu) error
		DeleteMenu(ctx context.Context, id uint) error
		ListMenus(ctx context.Context, q domain.ListMenusQuery, onlyNonEmpty bool) ([]MenuWithCount, error)
		MenuNameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) GetMenuByID(ctx context.Context, id uint) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Dishes", func(db *gorm.DB) *gorm.DB {
			return db.Order("dishes.id asc")
		}).
		Where("id = ?", id).
		First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) UpdateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

// DeleteMenu removes a menu and all of its dishes in one transaction. The
// cascade is explicit so it holds on storage engines that do not enforce the
// declared foreign key.
func (r *menuRepository) DeleteMenu(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&entities.Dish{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Menu{}, id).Error
	})
}

func (r *menuRepository) ListMenus(ctx context.Context, q domain.ListMenusQuery, onlyNonEmpty bool) ([]MenuWithCount, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Menu{}).
		Select("menus.*, count(dishes.id) as dishes_count").
		Joins("left join dishes on dishes.menu_id = menus.id").
		Group("menus.id")

	if q.Name != "" {
		query = query.Where("menus.name = ?", q.Name)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("lower(menus.name) LIKE ? OR lower(menus.description) LIKE ?", pattern, pattern)
	}
	if onlyNonEmpty {
		query = query.Having("count(dishes.id) > 0")
	}

	var menus []MenuWithCount
	if err := query.Order(orderClause(q.Ordering)).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) MenuNameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Menu{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// orderClause maps an ordering key to a SQL order expression. Unknown keys
// fall back to ascending id; id is always the tiebreaker so repeated calls
// return groups in a consistent order.
func orderClause(ordering string) string {
	direction := "asc"
	key := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "desc"
		key = strings.TrimPrefix(ordering, "-")
	}

	var column string
	switch key {
	case "name":
		column = "menus.name"
	case "dishes_count":
		column = "dishes_count"
	case "created_at":
		column = "menus.created_at"
	default:
		return "menus.id asc"
	}

	return column + " " + direction + ", menus.id asc"
}
