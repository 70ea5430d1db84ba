package models

import (
	"github.com/shopspring/decimal"
)

type MenuCategory string

const (
	MenuCategoryAppetizer      MenuCategory = "APPETIZER"
	MenuCategoryMainCourse     MenuCategory = "MAIN_COURSE"
	MenuCategoryDessert        MenuCategory = "DESSERT"
	MenuCategoryBeverage       MenuCategory = "BEVERAGE"
	MenuCategorySideDish       MenuCategory = "SIDE_DISH"
	MenuCategoryAlcoholicDrink MenuCategory = "ALCOHOLIC_DRINK"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case MenuCategoryAppetizer, MenuCategoryMainCourse, MenuCategoryDessert,
		MenuCategoryBeverage, MenuCategorySideDish, MenuCategoryAlcoholicDrink:
		return true
	}
	return false
}

type MenuItem struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category        MenuCategory    `gorm:"type:varchar(30);not null" json:"category"`
	IsAvailable     bool            `gorm:"not null;default:true" json:"is_available"`
	PreparationTime int             `json:"preparation_time"` // minutes
	Ingredients     []string        `gorm:"serializer:json" json:"ingredients,omitempty"`
}
