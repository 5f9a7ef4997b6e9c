package routes

import (
	"html/template"
	"net/http"
	"time"

	"bookit/handlers"
	"bookit/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the view handlers for route registration.
type Handlers struct {
	Catalog    *handlers.CatalogHandler
	Experience *handlers.ExperienceHandler
	Checkout   *handlers.CheckoutHandler
	Success    *handlers.SuccessHandler
	Bookings   *handlers.BookingLookupHandler
	Health     *handlers.HealthHandler
}

// SetupRenderer installs the template helpers and loads the view templates.
// Must run before the first request is served.
func SetupRenderer(r *gin.Engine, glob string) {
	r.SetFuncMap(template.FuncMap{
		"currency":  utils.FormatCurrency,
		"date":      utils.FormatDate,
		"dateShort": utils.FormatDateShort,
		"time12":    utils.FormatTime,
		"dayName":   utils.DayName,
	})
	r.LoadHTMLGlob(glob)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/static", "./static")

	r.GET("/", h.Catalog.Home)
	r.GET("/experience/:id", h.Experience.Details)
	r.POST("/experience/:id/book", h.Experience.Book)

	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.GET("", h.Checkout.Show)
		checkoutGroup.POST("", h.Checkout.Submit)
		checkoutGroup.POST("/promo", h.Checkout.ApplyPromo)
		checkoutGroup.POST("/promo/remove", h.Checkout.RemovePromo)
	}

	r.GET("/success", h.Success.Show)
	r.GET("/bookings", h.Bookings.Show)

	if h.Health != nil {
		r.GET("/health", h.Health.Health)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
	})
}
