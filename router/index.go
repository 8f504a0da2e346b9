package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Post("/my-password", middleware.Protected(), validate.EmployeeChangePassword(), handler.EmployeeChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.GetById("accountId"), handler.ActiveAccount)

	provider := v1.Group("/provider", logger.New())
	provider.Get("/", middleware.Protected(), handler.GetProviders)
	provider.Get("/suppliers", middleware.Protected(), handler.GetSuppliers)
	provider.Get("/:providerId", middleware.Protected(), validate.GetById("providerId"), handler.GetProviderById)
	provider.Post("/", middleware.Protected(), validate.CreateProvider(), handler.CreateProvider)
	provider.Put("/:providerId", middleware.Protected(), validate.GetById("providerId"), handler.EditProvider)

	employee := v1.Group("/employee", logger.New())
	employee.Get("/", middleware.Protected(), handler.GetEmployees)
	employee.Get("/:employeeId", middleware.Protected(), validate.GetById("employeeId"), handler.GetEmployeeById)
	employee.Post("/", middleware.Protected(), validate.CreateEmployee(), handler.CreateEmployee)
	employee.Put("/:employeeId", middleware.Protected(), validate.EditEmployee("employeeId"), handler.EditEmployee)
	employee.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteEmployee)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.Protected(), handler.GetProducts)
	product.Get("/:productId", middleware.Protected(), validate.GetById("productId"), handler.GetProductById)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProduct)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateProductUploadSignature)

	table := v1.Group("/table", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Delete("/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.DeleteTable)
	table.Post("/:tableId/action", middleware.Protected(), validate.TableAction("tableId"), handler.ApplyTableAction)
	table.Get("/:tableId/qr", middleware.Protected(), validate.GetById("tableId"), handler.GetTableQR)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:orderCode", middleware.Protected(), handler.GetOrderByCode)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Patch("/:orderCode/status", middleware.Protected(), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	order.Patch("/:orderCode/payment", middleware.Protected(), validate.SetPaymentMethod(), handler.SetOrderPayment)

	kitchen := v1.Group("/kitchen", logger.New())
	kitchen.Get("/", middleware.Protected(), handler.GetKitchenTickets)
	kitchen.Patch("/:ticketId/items/:itemId", middleware.Protected(), validate.UpdateKitchenItem(), handler.UpdateKitchenItemStatus)
	kitchen.Post("/:ticketId/notify", middleware.Protected(), handler.NotifyOrder)

	message := v1.Group("/message", logger.New())
	message.Get("/", middleware.Protected(), handler.GetMessages)
	message.Post("/", middleware.Protected(), validate.CreateMessage(), handler.CreateMessage)
	message.Get("/ws/:providerId", websocket.New(handler.ChatWebsocket))

	transaction := v1.Group("/transaction", logger.New())
	transaction.Get("/", middleware.Protected(), handler.GetTransactions)
	transaction.Post("/", middleware.Protected(), validate.CreateTransaction(), handler.CreateTransaction)
	transaction.Post("/:transactionCode/pay", middleware.Protected(), validate.PayTransaction(), handler.PayTransaction)
	transaction.Post("/:transactionCode/cancel", middleware.Protected(), handler.CancelTransaction)

	shift := v1.Group("/shift", logger.New())
	shift.Get("/", middleware.Protected(), handler.GetShifts)
	shift.Post("/", middleware.Protected(), validate.CreateShift(), handler.CreateShift)
	shift.Delete("/:id", middleware.Protected(), handler.DeleteShift)

	schedule := v1.Group("/schedule", logger.New())
	schedule.Get("/", middleware.Protected(), handler.GetSchedules)
	schedule.Post("/", middleware.Protected(), validate.CreateSchedule(), handler.CreateSchedule)
	schedule.Delete("/:id", middleware.Protected(), handler.DeleteSchedule)
	schedule.Post("/send-emails", middleware.Protected(), handler.SendScheduleEmails)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetDashboardStats)
	statistic.Get("/top-products", middleware.Protected(), handler.GetTopProducts)
}
