package report

import (
	"context"
	"time"

	"emenu/entities"

	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		// DishActivity returns the dishes created inside the window and the
		// dishes updated inside the window that were not created there. Both
		// sets come from a single transaction so a dish never lands in both
		// or neither under concurrent writes.
		DishActivity(ctx context.Context, start, end time.Time) (newDishes, modifiedDishes []entities.Dish, err error)
		ActiveUserEmails(ctx context.Context) ([]string, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DishActivity(ctx context.Context, start, end time.Time) ([]entities.Dish, []entities.Dish, error) {
	var newDishes, modifiedDishes []entities.Dish

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Preload("Menu").
			Where("created_at BETWEEN ? AND ?", start, end).
			Order("id asc").
			Find(&newDishes).Error; err != nil {
			return err
		}

		query := tx.
			Where("updated_at BETWEEN ? AND ?", start, end).
			Order("id asc")
		if len(newDishes) > 0 {
			newIDs := make([]uint, 0, len(newDishes))
			for _, d := range newDishes {
				newIDs = append(newIDs, d.ID)
			}
			query = query.Where("id NOT IN ?", newIDs)
		}
		return query.Find(&modifiedDishes).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return newDishes, modifiedDishes, nil
}

func (r *reportRepository) ActiveUserEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("is_active = ?", true).
		Order("id asc").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
