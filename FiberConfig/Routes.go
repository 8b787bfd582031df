package FiberConfig

import (
	"fmt"
	"time"

	"Workshop/Config"
	"Workshop/Controllers"
	"Workshop/Database"
	"Workshop/Models"
	"Workshop/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
)

func SetupRoutes(app *fiber.App, store *Database.Store) {
	// Initialize handlers
	customerController := Controllers.NewCustomerController(store)
	vehicleController := Controllers.NewVehicleController(store)
	workOrderController := Controllers.NewWorkOrderController(store)
	invoiceController := Controllers.NewInvoiceController(store)
	appointmentController := Controllers.NewAppointmentController(store)
	templateController := Controllers.NewTemplateController(store)
	assetController := Controllers.NewAssetController(store)
	settingController := Controllers.NewSettingController(store)
	reportController := Controllers.NewReportController(store)
	attachmentController := Controllers.NewAttachmentController(store)

	// API group
	api := app.Group("/api")

	// Customer routes
	customers := api.Group("/customers")
	customers.Get("/", customerController.GetCustomers)
	customers.Post("/", customerController.CreateCustomer)
	customers.Put("/:id", customerController.UpdateCustomer)
	customers.Delete("/:id", customerController.DeleteCustomer)

	// Vehicle routes
	vehicles := api.Group("/vehicles")
	vehicles.Get("/", vehicleController.GetVehicles)
	vehicles.Post("/", vehicleController.CreateVehicle)
	vehicles.Put("/:id", vehicleController.UpdateVehicle)
	vehicles.Delete("/:id", vehicleController.DeleteVehicle)

	// Vehicle type catalog - place helper routes BEFORE the ID routes to avoid conflicts
	vehicleTypes := api.Group("/vehicle-types")
	vehicleTypes.Get("/", vehicleController.GetVehicleTypes)
	vehicleTypes.Get("/brands", vehicleController.GetBrands)
	vehicleTypes.Get("/brands/:brand/models", vehicleController.GetModelsByBrand)
	vehicleTypes.Post("/", vehicleController.CreateVehicleType)
	vehicleTypes.Post("/import", reportController.ImportVehicleTypes)
	vehicleTypes.Put("/:id", vehicleController.UpdateVehicleType)
	vehicleTypes.Delete("/:id", vehicleController.DeleteVehicleType)

	// Work order routes
	workOrders := api.Group("/work-orders")
	workOrders.Get("/", workOrderController.GetWorkOrders)
	workOrders.Post("/", workOrderController.CreateWorkOrder)
	workOrders.Get("/:id", workOrderController.GetWorkOrderDetails)
	workOrders.Patch("/:id/status", workOrderController.UpdateWorkOrderStatus)
	workOrders.Patch("/:id/payment-status", workOrderController.UpdateWorkOrderPaymentStatus)
	workOrders.Delete("/:id", workOrderController.DeleteWorkOrder)

	// Line item routes under work orders
	workOrders.Get("/:id/services", workOrderController.GetServices)
	workOrders.Post("/:id/services", workOrderController.AddService)
	workOrders.Put("/:id/services/:serviceId", workOrderController.UpdateService)
	workOrders.Delete("/:id/services/:serviceId", workOrderController.DeleteService)
	workOrders.Get("/:id/spare-parts", workOrderController.GetSpareParts)
	workOrders.Post("/:id/spare-parts", workOrderController.AddSparePart)
	workOrders.Put("/:id/spare-parts/:partId", workOrderController.UpdateSparePart)
	workOrders.Delete("/:id/spare-parts/:partId", workOrderController.DeleteSparePart)

	// Attachments under work orders
	workOrders.Post("/:id/attachments", attachmentController.UploadAttachment)

	// Invoice routes
	invoices := api.Group("/invoices")
	invoices.Get("/", invoiceController.GetInvoices)
	invoices.Post("/", invoiceController.CreateInvoice)
	invoices.Patch("/:id/status", invoiceController.UpdateInvoiceStatus)
	invoices.Get("/:id/print", invoiceController.PrintInvoice)

	// Appointment routes
	appointments := api.Group("/appointments")
	appointments.Get("/", appointmentController.GetAppointments)
	appointments.Post("/", appointmentController.CreateAppointment)
	appointments.Put("/:id", appointmentController.UpdateAppointment)
	appointments.Delete("/:id", appointmentController.DeleteAppointment)

	// Service template routes
	serviceTemplates := api.Group("/service-templates")
	serviceTemplates.Get("/", templateController.GetServiceTemplates)
	serviceTemplates.Get("/categories", templateController.GetServiceCategories)
	serviceTemplates.Post("/", templateController.CreateServiceTemplate)
	serviceTemplates.Put("/:id", templateController.UpdateServiceTemplate)
	serviceTemplates.Patch("/:id/toggle", templateController.ToggleServiceTemplate)
	serviceTemplates.Delete("/:id", templateController.DeleteServiceTemplate)

	// Spare part template routes
	partTemplates := api.Group("/spare-part-templates")
	partTemplates.Get("/", templateController.GetSparePartTemplates)
	partTemplates.Get("/categories", templateController.GetPartCategories)
	partTemplates.Post("/", templateController.CreateSparePartTemplate)
	partTemplates.Put("/:id", templateController.UpdateSparePartTemplate)
	partTemplates.Patch("/:id/toggle", templateController.ToggleSparePartTemplate)
	partTemplates.Delete("/:id", templateController.DeleteSparePartTemplate)

	// Workshop asset routes
	employees := api.Group("/employees")
	employees.Get("/", assetController.GetEmployees)
	employees.Post("/", assetController.CreateEmployee)
	employees.Put("/:id", assetController.UpdateEmployee)
	employees.Delete("/:id", assetController.DeleteEmployee)

	tools := api.Group("/tools")
	tools.Get("/", assetController.GetTools)
	tools.Post("/", assetController.CreateTool)
	tools.Put("/:id", assetController.UpdateTool)
	tools.Delete("/:id", assetController.DeleteTool)

	diagnostics := api.Group("/diagnostics")
	diagnostics.Get("/", assetController.GetDiagnostics)
	diagnostics.Post("/", assetController.CreateDiagnostic)
	diagnostics.Put("/:id", assetController.UpdateDiagnostic)
	diagnostics.Delete("/:id", assetController.DeleteDiagnostic)

	// Settings routes
	settings := api.Group("/settings")
	settings.Post("/logo", attachmentController.UploadLogo)
	settings.Get("/:key", settingController.GetSetting)
	settings.Put("/:key", settingController.SetSetting)

	// Report routes
	reports := api.Group("/reports")
	reports.Get("/statistics", reportController.GetStatistics)
	reports.Get("/revenue", reportController.GetRevenueByPeriod)
	reports.Get("/export/csv", reportController.ExportDatasetCSV)
	reports.Get("/export/xlsx", reportController.ExportDatasetXLSX)
	reports.Get("/export/statistics", reportController.ExportStatisticsXLSX)

	// Logs API routes
	api.Get("/logs", Controllers.GetLogs)
	api.Get("/logs/stats", Controllers.GetLogStats)
	api.Get("/logs/path/:path", Controllers.GetLogsByPath)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*", // Allow all origins
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,  // Max age for preflight requests caching (5 minutes)
	}))

	store := Database.NewStore(Models.DB)
	SetupRoutes(app, store)

	// Serve uploaded attachments and generated exports
	app.Static("/assets", Config.AssetsDir, fiber.Static{Compress: true, CacheDuration: time.Second * 10})
	app.Static("/exports", Config.ExportsDir, fiber.Static{Compress: true, CacheDuration: time.Second * 10})

	app.Listen(Config.Port)
}
