package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"staytrack/internal/infra/config"
	"staytrack/internal/infra/obs"
)

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h *TrackerHandler) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	RegisterRoutes(api, h)

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

// RegisterRoutes mounts the tracker surface on a route group.
func RegisterRoutes(api *gin.RouterGroup, h *TrackerHandler) {
	props := api.Group("/properties")
	props.POST("", h.CreateProperty)
	props.GET("", h.ListProperties)
	props.GET("/:name", h.PropertySummary)
	props.DELETE("/:name", h.RemoveProperty)
	props.POST("/:name/rename", h.RenameProperty)
	props.POST("/:name/rooms", h.AddRooms)
	props.GET("/:name/rooms/:number", h.RoomDetail)
	props.DELETE("/:name/rooms/:number", h.RemoveRoom)
	props.POST("/:name/price", h.UpdateRoomPrices)
	props.POST("/:name/rates", h.SetRateOverride)
	props.POST("/:name/bookings", h.SimulateBooking)
	props.GET("/:name/reservations/:guest", h.ReservationDetail)
	props.DELETE("/:name/reservations/:guest", h.RemoveReservation)
	props.GET("/:name/earnings", h.Earnings)
	props.GET("/:name/occupancy", h.DayOccupancy)
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
