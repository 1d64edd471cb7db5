package handlers

import (
	"errors"
	"strconv"

	"emenu/domain"
	"emenu/internal/api/presenters"
	"emenu/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		ListMenus(c *fiber.Ctx) error
		GetMenuDetail(c *fiber.Ctx) error
		CreateMenu(c *fiber.Ctx) error
		UpdateMenu(c *fiber.Ctx) error
		DeleteMenu(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) ListMenus(c *fiber.Ctx) error {
	authenticated, _ := c.Locals("is_authenticated").(bool)
	query := domain.ListMenusQuery{
		Name:     c.Query("name"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}

	menus, err := h.menuService.ListMenus(c.Context(), query, authenticated)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenus, err)
	}

	return presenters.SuccessResponse(c, menus, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

func (h *menuHandler) GetMenuDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenu, domain.ErrMenuNotFound)
	}

	detail, err := h.menuService.GetMenuDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMenuNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenu, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, detail, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) CreateMenu(c *fiber.Ctx) error {
	req := new(domain.CreateMenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenu, err)
	}

	res, err := h.menuService.CreateMenu(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMenu)
}

func (h *menuHandler) UpdateMenu(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateMenu, domain.ErrMenuNotFound)
	}

	req := new(domain.UpdateMenuRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenu, err)
	}

	res, err := h.menuService.UpdateMenu(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrMenuNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateMenu, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenu, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMenu)
}

func (h *menuHandler) DeleteMenu(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMenu, domain.ErrMenuNotFound)
	}

	if err := h.menuService.DeleteMenu(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMenuNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMenu, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMenu, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
