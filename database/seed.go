package database

import (
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bellavista/ordering/models"
	"github.com/bellavista/ordering/utils"
)

type seedItem struct {
	name, description, price string
	popular, veg, spicy      bool
}

var seedMenu = []struct {
	category  string
	slug      string
	sortOrder int
	items     []seedItem
}{
	{"Starters", "starters", 1, []seedItem{
		{"Bruschetta", "Grilled bread, tomato, basil, olive oil", "8.50", true, true, false},
		{"Calamari Fritti", "Crispy squid with lemon aioli", "12.00", false, false, false},
		{"Arancini", "Fried risotto balls with spicy marinara", "9.50", false, true, true},
	}},
	{"Pizza", "pizza", 2, []seedItem{
		{"Margherita", "San Marzano tomato, fior di latte, basil", "15.00", true, true, false},
		{"Diavola", "Spicy salami, chili oil, mozzarella", "18.00", true, false, true},
		{"Quattro Formaggi", "Mozzarella, gorgonzola, fontina, parmesan", "19.00", false, true, false},
	}},
	{"Pasta", "pasta", 3, []seedItem{
		{"Spaghetti Carbonara", "Guanciale, pecorino, egg yolk", "17.50", true, false, false},
		{"Penne Arrabbiata", "Tomato, garlic, chili", "14.00", false, true, true},
		{"Lasagna della Casa", "Slow-cooked beef ragu, bechamel", "24.00", true, false, false},
	}},
	{"Desserts", "desserts", 4, []seedItem{
		{"Tiramisu", "Espresso-soaked savoiardi, mascarpone", "8.00", true, true, false},
		{"Panna Cotta", "Vanilla cream with berry coulis", "7.50", false, true, false},
	}},
	{"Drinks", "drinks", 5, []seedItem{
		{"San Pellegrino", "Sparkling water 500ml", "3.50", false, true, false},
		{"House Red", "Glass of Montepulciano", "7.00", false, true, false},
	}},
}

// Seed populates the catalog, a welcome notice, and the back-office admin
// account. It is idempotent: a non-empty table is left alone.
func Seed(db *gorm.DB) error {
	if err := seedCatalog(db); err != nil {
		return err
	}
	if err := seedNotices(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, c := range seedMenu {
		category := models.MenuCategory{
			Name:      c.category,
			Slug:      c.slug,
			SortOrder: c.sortOrder,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}

		for _, it := range c.items {
			price, err := models.MoneyFromString(it.price)
			if err != nil {
				return err
			}
			item := models.MenuItem{
				CategoryID:   category.ID,
				Name:         it.name,
				Description:  it.description,
				Price:        price,
				IsPopular:    it.popular,
				IsVegetarian: it.veg,
				IsSpicy:      it.spicy,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	utils.InfoLogger.Println("Seeded menu catalog")
	return nil
}

func seedNotices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Notice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&models.Notice{
		Title:       "Online ordering is live",
		Body:        "Order for pickup or delivery straight from our kitchen.",
		Active:      true,
		PublishedAt: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}).Error
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@bellavista.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		utils.InfoLogger.Println("ADMIN_PASSWORD not set, using default credentials")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:      "Administrator",
		Email:     email,
		Password:  string(hashed),
		Role:      "admin",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Error
}
