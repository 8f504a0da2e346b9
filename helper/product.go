package helper

import (
	"fmt"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var stockScheduler gocron.Scheduler

// SendLowStockDigest scans every restaurant's inventory and mails its
// managers the products at or below minimum stock.
func SendLowStockDigest() {
	log.Println("[CRON] SendLowStockDigest triggered")

	db := database.DB
	var providers []model.Provider
	if err := db.Where("type = ? AND active = ?", constants.PROVIDER_RESTAURANT, true).Find(&providers).Error; err != nil {
		log.Printf("Error scanning providers: %v", err)
		return
	}

	for _, provider := range providers {
		var products []model.Product
		if err := db.Where("provider_id = ? AND stock <= min_stock AND min_stock > 0", provider.ID).
			Order("stock ASC").Find(&products).Error; err != nil {
			log.Printf("Error scanning stock for provider %d: %v", provider.ID, err)
			continue
		}
		if len(products) == 0 {
			continue
		}

		lines := make([]string, 0, len(products))
		for _, product := range products {
			lines = append(lines, fmt.Sprintf("%s: %.2f %s left (minimum %.2f)", product.Name, product.Stock, product.Unit, product.MinStock))
		}

		var managers []model.Account
		db.Where("provider_id = ? AND role IN ? AND active = ?", provider.ID,
			[]string{constants.ROLE_ADMIN, constants.ROLE_MANAGER}, true).
			Preload("Employee").Find(&managers)

		for _, manager := range managers {
			if manager.Employee == nil || manager.Employee.Email == "" {
				continue
			}
			utils.SendLowStockEmail(manager.Employee.Email, lines)
		}
		log.Printf("Low stock digest: provider=%d products=%d", provider.ID, len(products))
	}
}

func StartLowStockScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	stockScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(6, 30, 0),
			),
		),
		gocron.NewTask(SendLowStockDigest),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Low stock scheduler started (06:30 daily)")
}

func StopLowStockScheduler() {
	if stockScheduler != nil {
		_ = stockScheduler.Shutdown()
	}
}
