package server

import (
	"net/http"
	"time"

	"github.com/itemhub/itemhub/internal/config"
	"github.com/itemhub/itemhub/internal/handler"
	"github.com/itemhub/itemhub/internal/mail"
	"github.com/itemhub/itemhub/internal/repository"
	"github.com/itemhub/itemhub/internal/service"
	"github.com/itemhub/itemhub/web"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(cfg *config.Config, db *gorm.DB, sender mail.Sender) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	itemRepo := repository.NewItemRepository(db)
	itemSvc := service.NewItemService(itemRepo)
	itemHandler := handler.NewItemHandler(itemSvc)

	enquirySvc := service.NewEnquiryService(sender)
	enquiryHandler := handler.NewEnquiryHandler(enquirySvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.GET("/items", itemHandler.List)
	api.GET("/items/:id", itemHandler.Get)
	api.POST("/items", itemHandler.Create)
	api.POST("/enquire", enquiryHandler.Enquire)
	api.POST("/contact", enquiryHandler.Contact)
	api.GET("/config", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"cloudName":    cfg.UploadCloudName,
			"uploadPreset": cfg.UploadPreset,
		})
	})

	e.StaticFS("/", web.StaticFS())

	return &Server{e: e}
}

// Start serves until the listener fails. Timeouts guard against a
// stalled client holding a connection open forever.
func (s *Server) Start(addr string) error {
	s.e.Server.ReadTimeout = 10 * time.Second
	s.e.Server.WriteTimeout = 30 * time.Second
	s.e.Server.IdleTimeout = 60 * time.Second
	return s.e.Start(addr)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}
