package router

import (
	"github.com/gin-gonic/gin"

	"restaurant-ops/controllers"
	"restaurant-ops/middlewares"
	"restaurant-ops/models"
	"restaurant-ops/repository"
	"restaurant-ops/services"
)

// Services bundles everything the HTTP layer exposes.
type Services struct {
	Auth      *services.AuthService
	Orders    *services.OrderService
	Payments  *services.PaymentService
	Tables    *services.TableService
	Menu      *services.MenuService
	Customers *services.CustomerService
	Employees *services.EmployeeService
}

// NewServices wires the service layer over one repository backend.
func NewServices(repos *repository.Repositories) *Services {
	menu := services.NewMenuService(repos.MenuItems)
	tables := services.NewTableService(repos.Tables)
	orders := services.NewOrderService(repos.Orders, menu, tables)
	return &Services{
		Auth:      services.NewAuthService(repos.Users),
		Orders:    orders,
		Payments:  services.NewPaymentService(repos.Payments, orders),
		Tables:    tables,
		Menu:      menu,
		Customers: services.NewCustomerService(repos.Customers),
		Employees: services.NewEmployeeService(repos.Employees),
	}
}

func SetupRouter(svcs *Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(svcs.Auth)
	orderCtrl := controllers.NewOrderController(svcs.Orders)
	paymentCtrl := controllers.NewPaymentController(svcs.Payments)
	tableCtrl := controllers.NewTableController(svcs.Tables)
	menuCtrl := controllers.NewMenuController(svcs.Menu)
	customerCtrl := controllers.NewCustomerController(svcs.Customers)
	employeeCtrl := controllers.NewEmployeeController(svcs.Employees)
	eventsCtrl := controllers.NewEventsController()

	// Public endpoints
	r.POST("/auth/register", authCtrl.Register)
	r.POST("/auth/login", authCtrl.Login)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/logout", authCtrl.Logout)
		api.GET("/events", eventsCtrl.Stream)

		orders := api.Group("/orders")
		{
			orders.POST("", orderCtrl.CreateOrder)
			orders.GET("", orderCtrl.GetAllOrders)
			orders.GET("/:order_id", orderCtrl.GetOrderByID)
			orders.POST("/:order_id/items", orderCtrl.AddItem)
			orders.DELETE("/:order_id/items/:menu_item_id", orderCtrl.RemoveItem)
			orders.PATCH("/:order_id/status", orderCtrl.UpdateStatus)
			orders.DELETE("/:order_id", middlewares.RequireRole(models.UserRoleAdmin), orderCtrl.DeleteOrder)

			orders.POST("/:order_id/payments", paymentCtrl.PayOrder)
			orders.GET("/:order_id/balance", paymentCtrl.GetBalance)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", paymentCtrl.GetAllPayments)
			payments.GET("/:payment_id", paymentCtrl.GetPaymentByID)
		}

		tables := api.Group("/tables")
		{
			tables.POST("", middlewares.RequireRole(models.UserRoleManager), tableCtrl.CreateTable)
			tables.GET("", tableCtrl.GetAllTables)
			tables.GET("/:table_id", tableCtrl.GetTableByID)
			tables.PATCH("/:table_id", middlewares.RequireRole(models.UserRoleManager), tableCtrl.UpdateTable)
			tables.POST("/:table_id/reserve", tableCtrl.ReserveTable)
			tables.POST("/:table_id/release", tableCtrl.ReleaseTable)
			tables.DELETE("/:table_id", middlewares.RequireRole(models.UserRoleAdmin), tableCtrl.DeleteTable)
		}

		menu := api.Group("/menu")
		{
			menu.POST("", middlewares.RequireRole(models.UserRoleManager), menuCtrl.CreateMenuItem)
			menu.GET("", menuCtrl.GetAllMenuItems)
			menu.GET("/:menu_item_id", menuCtrl.GetMenuItemByID)
			menu.PATCH("/:menu_item_id", middlewares.RequireRole(models.UserRoleManager), menuCtrl.UpdateMenuItem)
			menu.DELETE("/:menu_item_id", middlewares.RequireRole(models.UserRoleAdmin), menuCtrl.DeleteMenuItem)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", customerCtrl.CreateCustomer)
			customers.GET("", customerCtrl.GetAllCustomers)
			customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
			customers.PATCH("/:customer_id", customerCtrl.UpdateCustomer)
			customers.DELETE("/:customer_id", middlewares.RequireRole(models.UserRoleAdmin), customerCtrl.DeleteCustomer)
		}

		employees := api.Group("/employees")
		employees.Use(middlewares.RequireRole(models.UserRoleManager))
		{
			employees.POST("", employeeCtrl.CreateEmployee)
			employees.GET("", employeeCtrl.GetAllEmployees)
			employees.GET("/:employee_id", employeeCtrl.GetEmployeeByID)
			employees.PATCH("/:employee_id", employeeCtrl.UpdateEmployee)
			employees.DELETE("/:employee_id", middlewares.RequireRole(models.UserRoleAdmin), employeeCtrl.DeleteEmployee)
		}
	}

	return r
}
