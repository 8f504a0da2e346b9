package database

import (
	"fmt"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	providers := []model.Provider{
		{Name: "Golden Lotus Bistro", Slug: "golden-lotus-bistro", Type: constants.PROVIDER_RESTAURANT, Address: "12 Harbor St", Active: true},
		{Name: "FreshFarm Produce", Slug: "freshfarm-produce", Type: constants.PROVIDER_SUPPLIER, Address: "4 Market Rd", Active: true},
	}
	for i := range providers {
		if err := db.Where(model.Provider{Slug: providers[i].Slug}).FirstOrCreate(&providers[i]).Error; err != nil {
			log.Println("failed to seed provider:", providers[i].Name, "error:", err)
		}
	}
	restaurant := providers[0]
	supplier := providers[1]

	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "123456cn"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
		{Username: "manager01", Password: hashPassword, Active: true, Role: constants.ROLE_MANAGER, ProviderId: &restaurant.ID},
		{Username: "cashier01", Password: hashPassword, Active: true, Role: constants.ROLE_CASHIER, ProviderId: &restaurant.ID},
		{Username: "kitchen01", Password: hashPassword, Active: true, Role: constants.ROLE_KITCHEN, ProviderId: &restaurant.ID},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	tables := []model.Table{}
	for i := 1; i <= 8; i++ {
		capacity := 4
		if i%3 == 0 {
			capacity = 6
		}
		tables = append(tables, model.Table{
			Name:       fmt.Sprintf("T%d", i),
			Capacity:   capacity,
			Status:     constants.TABLE_AVAILABLE,
			ProviderId: restaurant.ID,
		})
	}
	for _, table := range tables {
		if err := db.Where(model.Table{Name: table.Name, ProviderId: table.ProviderId}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.Name, "error:", err)
		}
	}

	products := []model.Product{
		{Name: "Jasmine Rice", Slug: "jasmine-rice", Category: "dry goods", Unit: "kg", Price: 1.8, Stock: 120, MinStock: 30, ProviderId: supplier.ID, Listed: true},
		{Name: "Chicken Breast", Slug: "chicken-breast", Category: "meat", Unit: "kg", Price: 6.5, Stock: 40, MinStock: 15, ProviderId: supplier.ID, Listed: true},
		{Name: "Fish Sauce", Slug: "fish-sauce", Category: "condiments", Unit: "l", Price: 3.2, Stock: 25, MinStock: 10, ProviderId: supplier.ID, Listed: true},
		{Name: "Rice Noodles", Slug: "rice-noodles", Category: "dry goods", Unit: "kg", Price: 2.4, Stock: 18, MinStock: 20, ProviderId: restaurant.ID},
		{Name: "Peanut Oil", Slug: "peanut-oil", Category: "condiments", Unit: "l", Price: 4.1, Stock: 9, MinStock: 5, ProviderId: restaurant.ID},
	}
	for _, product := range products {
		if err := db.Where(model.Product{Slug: product.Slug, ProviderId: product.ProviderId}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Name, "error:", err)
		}
	}

	shifts := []model.Shift{
		{Name: "Morning", StartTime: "08:00", EndTime: "16:00", ProviderId: restaurant.ID},
		{Name: "Evening", StartTime: "16:00", EndTime: "23:30", ProviderId: restaurant.ID},
	}
	for _, shift := range shifts {
		if err := db.Where(model.Shift{Name: shift.Name, ProviderId: shift.ProviderId}).FirstOrCreate(&shift).Error; err != nil {
			log.Println("failed to seed shift:", shift.Name, "error:", err)
		}
	}
}
