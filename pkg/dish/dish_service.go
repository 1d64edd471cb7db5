package dish

import (
	"context"
	"errors"
	"image"
	"mime/multipart"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"emenu/domain"
	"emenu/entities"
	"emenu/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DishService interface {
		ListDishes(ctx context.Context, q domain.ListDishesQuery) ([]domain.DishResponse, error)
		GetDishByID(ctx context.Context, id uint) (domain.DishResponse, error)
		CreateDish(ctx context.Context, req domain.CreateDishRequest) (domain.DishResponse, error)
		UpdateDish(ctx context.Context, id uint, req domain.UpdateDishRequest) (domain.DishResponse, error)
		DeleteDish(ctx context.Context, id uint) error
		UploadDishImage(ctx context.Context, id uint, file *multipart.FileHeader) (domain.UploadDishImageResponse, error)
	}

	dishService struct {
		dishRepository DishRepository
		s3             storage.AwsS3
	}
)

func NewDishService(dishRepository DishRepository, s3 storage.AwsS3) DishService {
	return &dishService{
		dishRepository: dishRepository,
		s3:             s3,
	}
}

func (s *dishService) ListDishes(ctx context.Context, q domain.ListDishesQuery) ([]domain.DishResponse, error) {
	dishes, err := s.dishRepository.ListDishes(ctx, q)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DishResponse, 0, len(dishes))
	for i := range dishes {
		response = append(response, dishResponse(&dishes[i]))
	}
	return response, nil
}

func (s *dishService) GetDishByID(ctx context.Context, id uint) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}
	return dishResponse(dish), nil
}

func (s *dishService) CreateDish(ctx context.Context, req domain.CreateDishRequest) (domain.DishResponse, error) {
	price, err := domain.ParsePrice(req.Price)
	if err != nil {
		return domain.DishResponse{}, domain.NewValidationError("price", err.Error())
	}
	if req.PrepTime == nil {
		return domain.DishResponse{}, domain.NewValidationError("prep_time", "this field is required")
	}

	exists, err := s.dishRepository.MenuExists(ctx, req.MenuID)
	if err != nil {
		return domain.DishResponse{}, err
	}
	if !exists {
		return domain.DishResponse{}, domain.ErrDishMenuNotFound
	}

	dish := &entities.Dish{
		MenuID:       req.MenuID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		PrepTime:     *req.PrepTime,
		IsVegetarian: req.IsVegetarian,
	}
	if err := s.dishRepository.CreateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	return dishResponse(dish), nil
}

func (s *dishService) UpdateDish(ctx context.Context, id uint, req domain.UpdateDishRequest) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if req.MenuID != 0 && req.MenuID != dish.MenuID {
		exists, err := s.dishRepository.MenuExists(ctx, req.MenuID)
		if err != nil {
			return domain.DishResponse{}, err
		}
		if !exists {
			return domain.DishResponse{}, domain.ErrDishMenuNotFound
		}
		dish.MenuID = req.MenuID
	}
	if req.Name != "" {
		dish.Name = req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Price != "" {
		price, err := domain.ParsePrice(req.Price)
		if err != nil {
			return domain.DishResponse{}, domain.NewValidationError("price", err.Error())
		}
		dish.Price = price
	}
	if req.PrepTime != nil {
		dish.PrepTime = *req.PrepTime
	}
	if req.IsVegetarian != nil {
		dish.IsVegetarian = *req.IsVegetarian
	}

	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	return dishResponse(dish), nil
}

func (s *dishService) DeleteDish(ctx context.Context, id uint) error {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}

	if dish.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(dish.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.dishRepository.DeleteDish(ctx, id)
}

// UploadDishImage validates the payload as a decodable raster image and
// replaces the dish image reference with a freshly keyed blob. The previous
// blob is orphaned, not deleted.
func (s *dishService) UploadDishImage(ctx context.Context, id uint, file *multipart.FileHeader) (domain.UploadDishImageResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadDishImageResponse{}, domain.ErrDishNotFound
		}
		return domain.UploadDishImageResponse{}, err
	}

	if err := validateImage(file); err != nil {
		return domain.UploadDishImageResponse{}, domain.NewValidationError("image", err.Error())
	}

	fileName := uuid.New().String()
	objectKey, err := s.s3.UploadFile(fileName, file, "uploads/dish", storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.UploadDishImageResponse{}, domain.NewValidationError("image", domain.ErrInvalidImageFormat.Error())
		}
		return domain.UploadDishImageResponse{}, err
	}

	dish.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.UploadDishImageResponse{}, err
	}

	return domain.UploadDishImageResponse{
		ID:       dish.ID,
		ImageURL: dish.ImageURL,
	}, nil
}

func validateImage(file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return domain.ErrInvalidImageFormat
	}
	defer src.Close()

	if _, _, err := image.DecodeConfig(src); err != nil {
		return domain.ErrInvalidImageFormat
	}
	return nil
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
