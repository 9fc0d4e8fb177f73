package config

import (
	"gorm.io/gorm"

	"bistro_boss/internal/models"
)

var seedMenu = []models.MenuItem{
	{Name: "Escalope de Veau", Category: "popular", Price: 14.5, Description: "Pan-fried veal with lemon butter"},
	{Name: "Chicken and Walnut Salad", Category: "salad", Price: 9.5, Description: "Chicken, walnut, celery and grapes"},
	{Name: "Roast Duck Breast", Category: "dessert", Price: 14.5, Description: "Roasted duck with cherry glaze"},
	{Name: "Tuna Niçoise", Category: "salad", Price: 12.5, Description: "Seared tuna with olives and egg"},
	{Name: "Haddock", Category: "soup", Price: 14.7, Description: "Smoked haddock chowder"},
	{Name: "Margherita", Category: "pizza", Price: 11.0, Description: "Tomato, mozzarella and basil"},
	{Name: "Lemonade", Category: "drinks", Price: 3.5, Description: "Fresh squeezed lemonade"},
}

var seedReviews = []models.Review{
	{Name: "Jane Doe", Details: "Great food and quick service.", Rating: 5},
	{Name: "John Smith", Details: "The soup was a little cold.", Rating: 3.5},
	{Name: "Alex Chen", Details: "Best salad in town.", Rating: 4.5},
}

// Seed inserts sample menu items and reviews that are not already present.
func Seed(db *gorm.DB) error {
	for _, m := range seedMenu {
		item := m
		if err := db.Where(models.MenuItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}
	for _, r := range seedReviews {
		review := r
		if err := db.Where(models.Review{Name: review.Name, Details: review.Details}).FirstOrCreate(&review).Error; err != nil {
			return err
		}
	}
	return nil
}
