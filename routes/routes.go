package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Asseton1/Asseton-Backend/handlers"
	"github.com/Asseton1/Asseton-Backend/middleware"
)

// RegisterRoutes wires the public read surface and the JWT-protected write
// surface. Reference updates are PATCH only; PUT is intentionally not routed.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")
	auth := middleware.JWTMiddleware()

	userController := handlers.NewUserController()
	api.POST("/users/register", userController.Register)
	api.POST("/users/login", userController.Login)
	api.GET("/users/profile", userController.GetProfile, auth)
	api.PATCH("/users/profile", userController.UpdateProfile, auth)
	api.DELETE("/users/profile", userController.DeleteAccount, auth)
	api.GET("/users", userController.GetAllUsers, auth)

	stateController := handlers.NewStateController()
	api.GET("/states", stateController.List)
	api.GET("/states/:id", stateController.Get)
	api.POST("/states", stateController.Create, auth)
	api.PATCH("/states/:id", stateController.Update, auth)
	api.DELETE("/states/:id", stateController.Delete, auth)

	districtController := handlers.NewDistrictController()
	api.GET("/districts", districtController.List)
	api.GET("/districts/:id", districtController.Get)
	api.POST("/districts", districtController.Create, auth)
	api.PATCH("/districts/:id", districtController.Update, auth)
	api.DELETE("/districts/:id", districtController.Delete, auth)

	cityController := handlers.NewCityController()
	api.GET("/cities", cityController.List)
	api.GET("/cities/:id", cityController.Get)
	api.POST("/cities", cityController.Create, auth)
	api.PATCH("/cities/:id", cityController.Update, auth)
	api.DELETE("/cities/:id", cityController.Delete, auth)

	featureController := handlers.NewFeatureController()
	api.GET("/features", featureController.List)
	api.GET("/features/:id", featureController.Get)
	api.POST("/features", featureController.Create, auth)
	api.PATCH("/features/:id", featureController.Update, auth)
	api.DELETE("/features/:id", featureController.Delete, auth)

	typeController := handlers.NewPropertyTypeController()
	api.GET("/property-types", typeController.List)
	api.GET("/property-types/:id", typeController.Get)
	api.POST("/property-types", typeController.Create, auth)
	api.PATCH("/property-types/:id", typeController.Update, auth)
	api.DELETE("/property-types/:id", typeController.Delete, auth)

	propertyController := handlers.NewPropertyController()
	api.GET("/properties", propertyController.ListProperties)
	api.GET("/properties/:id", propertyController.GetProperty)
	api.POST("/properties", propertyController.CreateProperty, auth)
	api.PATCH("/properties/:id", propertyController.UpdateProperty, auth)
	api.DELETE("/properties/:id", propertyController.DeleteProperty, auth)
	api.DELETE("/properties/:id/images/:imageId", propertyController.DeleteImage, auth)

	heroBannerController := handlers.NewHeroBannerController()
	api.GET("/hero-banners", heroBannerController.List)
	api.POST("/hero-banners", heroBannerController.Create, auth)
	api.DELETE("/hero-banners/:id", heroBannerController.Delete, auth)

	offerBannerController := handlers.NewOfferBannerController()
	api.GET("/offer-banners", offerBannerController.List)
	api.POST("/offer-banners", offerBannerController.Create, auth)
	api.DELETE("/offer-banners/:id", offerBannerController.Delete, auth)

	contactController := handlers.NewContactController()
	api.POST("/contacts", contactController.CreateContact)
	api.GET("/contacts", contactController.ListContacts, auth)
	api.DELETE("/contacts/:id", contactController.DeleteContact, auth)

	settingsController := handlers.NewSettingsController()
	api.GET("/site-settings", settingsController.GetSettings, auth)
	api.PATCH("/site-settings", settingsController.UpdateSettings, auth)
}
