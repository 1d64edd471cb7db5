package handlers

import (
	"errors"
	"strconv"

	"emenu/domain"
	"emenu/internal/api/presenters"
	"emenu/pkg/dish"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		ListDishes(c *fiber.Ctx) error
		GetDishDetail(c *fiber.Ctx) error
		CreateDish(c *fiber.Ctx) error
		UpdateDish(c *fiber.Ctx) error
		DeleteDish(c *fiber.Ctx) error
		UploadDishImage(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) ListDishes(c *fiber.Ctx) error {
	query := domain.ListDishesQuery{
		Search: c.Query("search"),
	}
	if raw := c.Query("menu"); raw != "" {
		if menuID, err := strconv.ParseUint(raw, 10, 64); err == nil {
			query.MenuID = uint(menuID)
		}
	}
	if raw := c.Query("is_vegetarian"); raw != "" {
		if veg, err := strconv.ParseBool(raw); err == nil {
			query.IsVegetarian = &veg
		}
	}

	dishes, err := h.dishService.ListDishes(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, dishes, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *dishHandler) GetDishDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDish, domain.ErrDishNotFound)
	}

	res, err := h.dishService.GetDishByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDish, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDish)
}

func (h *dishHandler) CreateDish(c *fiber.Ctx) error {
	req := new(domain.CreateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	res, err := h.dishService.CreateDish(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDish)
}

func (h *dishHandler) UpdateDish(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDish, domain.ErrDishNotFound)
	}

	req := new(domain.UpdateDishRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDish, err)
	}

	res, err := h.dishService.UpdateDish(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDish, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDish)
}

func (h *dishHandler) DeleteDish(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteDish, domain.ErrDishNotFound)
	}

	if err := h.dishService.DeleteDish(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteDish, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteDish, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *dishHandler) UploadDishImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadImage, domain.ErrDishNotFound)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.NewValidationError("image", domain.ErrMissingImage.Error()))
	}

	res, err := h.dishService.UploadDishImage(c.Context(), id, file)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
