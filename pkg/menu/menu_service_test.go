package menu

import (
	"context"
	"testing"

	"emenu/domain"
	"emenu/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Menu{}, &entities.Dish{}))
	return db
}

func newTestService(t *testing.T) (MenuService, *gorm.DB) {
	db := newTestDB(t)
	return NewMenuService(NewMenuRepository(db)), db
}

func createMenu(t *testing.T, db *gorm.DB, name, description string, dishCount int) entities.Menu {
	t.Helper()
	menu := entities.Menu{Name: name, Description: description}
	require.NoError(t, db.Create(&menu).Error)

	for i := 0; i < dishCount; i++ {
		dish := entities.Dish{
			MenuID:   menu.ID,
			Name:     "Dish",
			Price:    decimal.RequireFromString("10.00"),
			PrepTime: 5,
		}
		require.NoError(t, db.Create(&dish).Error)
	}
	return menu
}

func menuNames(menus []domain.MenuResponse) []string {
	names := make([]string, 0, len(menus))
	for _, m := range menus {
		names = append(names, m.Name)
	}
	return names
}

func TestListMenus_AnonymousHidesEmptyMenus(t *testing.T) {
	service, db := newTestService(t)
	createMenu(t, db, "Empty", "", 0)
	createMenu(t, db, "Full", "", 1)

	menus, err := service.ListMenus(context.Background(), domain.ListMenusQuery{}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Full"}, menuNames(menus))
}

func TestListMenus_AuthenticatedSeesEmptyMenus(t *testing.T) {
	service, db := newTestService(t)
	createMenu(t, db, "Empty", "", 0)
	createMenu(t, db, "Full", "", 1)

	menus, err := service.ListMenus(context.Background(), domain.ListMenusQuery{}, true)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Empty", "Full"}, menuNames(menus))
}

func TestListMenus_FilterByName(t *testing.T) {
	service, db := newTestService(t)
	createMenu(t, db, "Vegetarian", "No meat", 1)
	createMenu(t, db, "Carnivore", "Meat only", 1)

	menus, err := service.ListMenus(context.Background(), domain.ListMenusQuery{Name: "Vegetarian"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vegetarian"}, menuNames(menus))
}

func TestListMenus_Search(t *testing.T) {
	service, db := newTestService(t)
	createMenu(t, db, "Lunch Special", "Cheap", 1)
	createMenu(t, db, "Dinner Deluxe", "Expensive", 1)

	menus, err := service.ListMenus(context.Background(), domain.ListMenusQuery{Search: "lunch"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunch Special"}, menuNames(menus))

	// Search also covers the description.
	menus, err = service.ListMenus(context.Background(), domain.ListMenusQuery{Search: "expensive"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dinner Deluxe"}, menuNames(menus))
}

func TestListMenus_OrderByDishesCountDescending(t *testing.T) {
	service, db := newTestService(t)
	createMenu(t, db, "Less", "", 1)
	createMenu(t, db, "More", "", 2)

	menus, err := service.ListMenus(context.Background(), domain.ListMenusQuery{Ordering: "-dishes_count"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"More", "Less"}, menuNames(menus))
}

func TestListMenus_UnknownOrderingFallsBackToID(t *testing.T) {
	service, db := newTestService(t)
	createMenu(t, db, "B Menu", "", 1)
	createMenu(t, db, "A Menu", "", 1)

	menus, err := service.ListMenus(context.Background(), domain.ListMenusQuery{Ordering: "bogus"}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"B Menu", "A Menu"}, menuNames(menus))
}

func TestGetMenuDetail_IncludesDishes(t *testing.T) {
	service, db := newTestService(t)
	menu := createMenu(t, db, "Detail Menu", "Detail Desc", 2)

	detail, err := service.GetMenuDetail(context.Background(), menu.ID)
	require.NoError(t, err)

	assert.Equal(t, "Detail Menu", detail.Name)
	assert.Equal(t, "Detail Desc", detail.Description)
	assert.Len(t, detail.Dishes, 2)
}

func TestGetMenuDetail_EmptyMenuVisibleToAnyone(t *testing.T) {
	// Detail is not visibility-filtered, only the listing is.
	service, db := newTestService(t)
	menu := createMenu(t, db, "Empty", "", 0)

	detail, err := service.GetMenuDetail(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "Empty", detail.Name)
	assert.Empty(t, detail.Dishes)
}

func TestGetMenuDetail_NotFound(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetMenuDetail(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

func TestCreateMenu_RoundTrip(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateMenu(context.Background(), domain.CreateMenuRequest{
		Name:        "New Menu",
		Description: "Desc",
	})
	require.NoError(t, err)

	detail, err := service.GetMenuDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Menu", detail.Name)
	assert.Equal(t, "Desc", detail.Description)
}

func TestCreateMenu_DuplicateName(t *testing.T) {
	service, db := newTestService(t)
	createMenu(t, db, "Taken", "", 0)

	_, err := service.CreateMenu(context.Background(), domain.CreateMenuRequest{Name: "Taken"})
	assert.ErrorIs(t, err, domain.ErrMenuNameTaken)
}

func TestUpdateMenu_Partial(t *testing.T) {
	service, db := newTestService(t)
	menu := createMenu(t, db, "Before", "Old Desc", 0)

	updated, err := service.UpdateMenu(context.Background(), menu.ID, domain.UpdateMenuRequest{Name: "After"})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "Old Desc", updated.Description, "untouched fields keep their value")
}

func TestDeleteMenu_CascadesToDishes(t *testing.T) {
	service, db := newTestService(t)
	menu := createMenu(t, db, "Doomed", "", 3)

	require.NoError(t, service.DeleteMenu(context.Background(), menu.ID))

	var dishCount int64
	require.NoError(t, db.Model(&entities.Dish{}).Where("menu_id = ?", menu.ID).Count(&dishCount).Error)
	assert.Zero(t, dishCount)

	_, err := service.GetMenuDetail(context.Background(), menu.ID)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

func TestDeleteMenu_NotFound(t *testing.T) {
	service, _ := newTestService(t)
	assert.ErrorIs(t, service.DeleteMenu(context.Background(), 999), domain.ErrMenuNotFound)
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		ordering string
		want     string
	}{
		{"", "menus.id asc"},
		{"name", "menus.name asc, menus.id asc"},
		{"-name", "menus.name desc, menus.id asc"},
		{"dishes_count", "dishes_count asc, menus.id asc"},
		{"-dishes_count", "dishes_count desc, menus.id asc"},
		{"created_at", "menus.created_at asc, menus.id asc"},
		{"-created_at", "menus.created_at desc, menus.id asc"},
		{"bogus", "menus.id asc"},
		{"-bogus", "menus.id asc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, orderClause(tt.ordering), "ordering=%q", tt.ordering)
	}
}
