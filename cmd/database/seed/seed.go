package seed

import (
	"log"

	"emenu/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sampleDish struct {
	Name         string
	Description  string
	Price        string
	PrepTime     uint
	IsVegetarian bool
}

// Seed populates sample users, menus and dishes. Safe to run repeatedly,
// existing rows are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedUser(db, "admin@example.com", "Super Admin", "password123", true); err != nil {
		return err
	}
	if err := seedUser(db, "user@example.com", "Regular Joe", "password123", false); err != nil {
		return err
	}

	menus := []struct {
		Name        string
		Description string
		Dishes      []sampleDish
	}{
		{
			Name:        "Breakfast Specials",
			Description: "Start your day with energy!",
			Dishes: []sampleDish{
				{"Classic Pancakes", "Fluffy pancakes with maple syrup.", "15.99", 15, true},
				{"Full English Breakfast", "Eggs, bacon, sausages, beans, and toast.", "25.50", 20, false},
				{"Avocado Toast", "Sourdough bread with smashed avocado and chili flakes.", "12.50", 10, true},
			},
		},
		{
			Name:        "Italian Dinner",
			Description: "Authentic taste of Italy.",
			Dishes: []sampleDish{
				{"Spaghetti Carbonara", "Pasta with guanciale, egg, and pecorino romano.", "32.00", 25, false},
				{"Margherita Pizza", "Tomato sauce, mozzarella di bufala, basil.", "28.00", 20, true},
				{"Tiramisu", "Classic coffee-flavoured Italian dessert.", "18.00", 10, true},
				{"Lasagna Bolognese", "Layers of pasta, meat sauce, and bechamel.", "30.00", 45, false},
			},
		},
		{
			Name:        "Lunch Deals",
			Description: "Quick and tasty meals for your break.",
			Dishes: []sampleDish{
				{"Cheeseburger", "Beef patty, cheddar, lettuce, tomato, fries.", "12.50", 15, false},
				{"Caesar Salad", "Romaine lettuce, croutons, parmesan, caesar dressing.", "10.00", 10, false},
				{"Club Sandwich", "Chicken, bacon, lettuce, tomato, mayo.", "11.50", 12, false},
			},
		},
		{
			Name:        "Vegan Corner",
			Description: "100% plant-based deliciousness.",
			Dishes: []sampleDish{
				{"Buddha Bowl", "Quinoa, avocado, chickpeas, sweet potato, tahini.", "14.00", 15, true},
				{"Lentil Curry", "Red lentils, coconut milk, spinach, basmati rice.", "13.50", 20, true},
			},
		},
		{
			Name:        "Dessert Heaven",
			Description: "Sweet treats to finish your meal.",
			Dishes: []sampleDish{
				{"New York Cheesecake", "Creamy cheesecake with berry compote.", "8.50", 5, true},
				{"Chocolate Brownie", "Warm brownie with vanilla ice cream.", "7.50", 10, true},
			},
		},
		{
			// Intentionally empty so anonymous listing behaviour is visible.
			Name:        "Seasonal Drinks",
			Description: "Refreshing beverages (Currently empty).",
		},
	}

	for _, m := range menus {
		menu := entities.Menu{Name: m.Name, Description: m.Description}
		if err := db.Where(entities.Menu{Name: m.Name}).FirstOrCreate(&menu).Error; err != nil {
			return err
		}
		for _, d := range m.Dishes {
			price, err := decimal.NewFromString(d.Price)
			if err != nil {
				return err
			}
			dish := entities.Dish{
				MenuID:       menu.ID,
				Name:         d.Name,
				Description:  d.Description,
				Price:        price,
				PrepTime:     d.PrepTime,
				IsVegetarian: d.IsVegetarian,
			}
			if err := db.Where(entities.Dish{MenuID: menu.ID, Name: d.Name}).FirstOrCreate(&dish).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Sample data check/population finished")
	return nil
}

func seedUser(db *gorm.DB, email, name, password string, staff bool) error {
	var count int64
	if err := db.Model(&entities.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entities.User{
		Email:    email,
		Name:     name,
		Password: string(hash),
		IsActive: true,
		IsStaff:  staff,
	}).Error
}
