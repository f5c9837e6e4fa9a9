package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/handlers"
)

func InitRoutes(
	e *echo.Echo,
	orderHandler *handlers.OrderHandler,
	shellHandler *handlers.ShellHandler,
	health echo.HandlerFunc,
	pageMiddlewares ...echo.MiddlewareFunc,
) {
	e.GET("/health", health)

	pages := e.Group("", pageMiddlewares...)
	{
		pages.GET("/orders/:id", orderHandler.GetOrderDetails())
		pages.GET("/orders/:id/cancel", orderHandler.ConfirmCancelOrder())
		pages.POST("/orders/:id/cancel", orderHandler.CancelOrder())

		pages.GET("/ui/navbar", shellHandler.GetNavbar())
		pages.POST("/logout", shellHandler.Logout())
		pages.POST("/language", shellHandler.SetLanguage())
	}
}
