package server

import (
	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Simulation routes
	apiRoutes.POST("/simulation", routes.ImportSimulationHandler, middleware.RequirePermission("simulation.import"))
	apiRoutes.DELETE("/simulation", routes.WipeSimulationHandler, middleware.RequirePermission("simulation.wipe"))

	// Person routes
	apiRoutes.GET("/people", routes.ListPeopleHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.GET("/people/:id", routes.GetPersonHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.POST("/people", routes.CreatePersonHandler, middleware.RequirePermission("entity.create"))
	apiRoutes.PATCH("/people/:id", routes.UpdatePersonHandler, middleware.RequirePermission("entity.update"))
	apiRoutes.DELETE("/people/:id", routes.DeletePersonHandler, middleware.RequirePermission("entity.delete"))

	// Organization routes
	apiRoutes.GET("/organizations", routes.ListOrganizationsHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.GET("/organizations/:id", routes.GetOrganizationHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.POST("/organizations", routes.CreateOrganizationHandler, middleware.RequirePermission("entity.create"))
	apiRoutes.PATCH("/organizations/:id", routes.UpdateOrganizationHandler, middleware.RequirePermission("entity.update"))
	apiRoutes.DELETE("/organizations/:id", routes.DeleteOrganizationHandler, middleware.RequirePermission("entity.delete"))

	// Event routes
	apiRoutes.GET("/events", routes.ListEventsHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.GET("/events/:id", routes.GetEventHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.POST("/events", routes.CreateEventHandler, middleware.RequirePermission("entity.create"))
	apiRoutes.PATCH("/events/:id", routes.UpdateEventHandler, middleware.RequirePermission("entity.update"))
	apiRoutes.DELETE("/events/:id", routes.DeleteEventHandler, middleware.RequirePermission("entity.delete"))

	// Relationship routes
	apiRoutes.GET("/relationships", routes.ListRelationshipsHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.POST("/relationships", routes.CreateRelationshipHandler, middleware.RequirePermission("relationship.create"))
	apiRoutes.DELETE("/relationships/:kind/:id", routes.DeleteRelationshipHandler, middleware.RequirePermission("relationship.delete"))

	// Graph route
	apiRoutes.GET("/graph", routes.GetGraphHandler, middleware.RequirePermission("graph.view"))

	// File routes
	apiRoutes.GET("/files", routes.ListFilesHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.GET("/files/:id/download", routes.GetFileDownloadHandler, middleware.RequirePermission("entity.view"))
	apiRoutes.POST("/files", routes.UploadFileHandler, middleware.RequirePermission("file.upload"))
	apiRoutes.DELETE("/files/:id", routes.DeleteFileHandler, middleware.RequirePermission("file.delete"))
}
