package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/store"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats builds the manager dashboard: today's numbers against
// yesterday's, the live floor snapshot and the month's top sellers.
func GetDashboardStats(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	db := database.DB

	type Stats struct {
		TodayRevenue float64 `json:"todayRevenue"`
		TodayOrders  int64   `json:"todayOrders"`

		RevenueGrowth float64 `json:"revenueGrowth"` // %
		OrdersGrowth  float64 `json:"ordersGrowth"`  // %

		OrdersByStatus map[string]int64 `json:"ordersByStatus"`
		OccupancyRate  float64          `json:"occupancyRate"` // %
		OpenTickets    int64            `json:"openTickets"`
	}

	var stats Stats

	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayEnd := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE provider_id = ?
          AND status = 'delivered'
          AND created_at BETWEEN ? AND ?
    `, providerId, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE provider_id = ?
          AND created_at BETWEEN ? AND ?
    `, providerId, todayStart, todayEnd).Scan(&stats.TodayOrders)

	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total), 0)
        FROM orders
        WHERE provider_id = ?
          AND status = 'delivered'
          AND created_at BETWEEN ? AND ?
    `, providerId, yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	db.Raw(`
        SELECT COUNT(*)
        FROM orders
        WHERE provider_id = ?
          AND created_at BETWEEN ? AND ?
    `, providerId, yesterdayStart, yesterdayEnd).Scan(&yesterdayOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	// Live numbers come from the floor state, not the database.
	floor := Floor(providerId)

	stats.OrdersByStatus = make(map[string]int64, len(constants.ORDER_STATUSES))
	for _, status := range constants.ORDER_STATUSES {
		stats.OrdersByStatus[status] = 0
	}
	for _, order := range floor.Orders.List("all") {
		stats.OrdersByStatus[order.Status]++
	}

	tables := floor.Tables.List()
	if len(tables) > 0 {
		var occupied int
		for _, table := range tables {
			if table.Status != constants.TABLE_AVAILABLE {
				occupied++
			}
		}
		stats.OccupancyRate = float64(occupied) * 100 / float64(len(tables))
	}

	for _, ticket := range floor.Kitchen.List() {
		if store.DeriveStatus(ticket.Items) != constants.KITCHEN_READY {
			stats.OpenTickets++
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetTopProducts ranks this month's best selling order items by revenue.
func GetTopProducts(c *fiber.Ctx) error {
	claim, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	providerId := helper.RequireProvider(claim)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type TopProduct struct {
		Name     string  `json:"name"`
		Quantity int64   `json:"quantity"`
		Revenue  float64 `json:"revenue"`
	}

	var topProducts []TopProduct
	database.DB.Raw(`
        SELECT
            i.name,
            SUM(i.quantity) AS quantity,
            SUM(i.quantity * i.unit_price) AS revenue
        FROM order_items i
        JOIN orders o ON o.id = i.order_id
        WHERE o.provider_id = ?
          AND o.status = 'delivered'
          AND o.created_at >= ?
        GROUP BY i.name
        ORDER BY revenue DESC
        LIMIT 5
    `, providerId, monthStart).Scan(&topProducts)

	return utils.SuccessResponse(c, fiber.StatusOK, topProducts)
}
