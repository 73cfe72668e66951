package dto

import "github.com/gaon-hs/gaon-portal-api/internal/models"

// MealsResponse tags the three-slot meal structure with the requested date.
type MealsResponse struct {
	Date  string         `json:"date"`
	Meals models.MealSet `json:"meals"`
}
