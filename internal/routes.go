package internal

import (
	"net/http"

	"wld/internal/controllers"
	"wld/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/load", http.HandlerFunc(apiController.Load))
	routers.Post("/api/save", http.HandlerFunc(apiController.Save))
	routers.Get("/api/stats", http.HandlerFunc(apiController.Stats))
	routers.Post("/api/import", http.HandlerFunc(apiController.Import))
	return routers
}
