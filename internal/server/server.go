package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	mwecho "github.com/labstack/echo/v4/middleware"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/database"
	"winsbygroup.com/lunchly/internal/demodata"
	"winsbygroup.com/lunchly/internal/http/api"
	"winsbygroup.com/lunchly/internal/reservation"
)

type Server struct {
	Echo   *echo.Echo
	HTTP   *http.Server
	DB     *sqlx.DB
	Config *config.Config
}

func Build(cfg *config.Config) (*Server, error) {
	//
	// Database
	//
	db, isNewDB, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	// Load demo data if requested and database is new
	if cfg.DemoMode && isNewDB {
		if err := demodata.Load(context.Background(), db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to load demo data: %w", err)
		}
		log.Print("Demo data loaded")
	}

	//
	// Domain services
	//
	reservationSvc := reservation.NewService(db)
	customerSvc := customer.NewService(db, reservationSvc)

	//
	// Echo
	//
	e := echo.New()
	e.HideBanner = true

	// Health endpoints
	e.GET("/livez", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/readyz", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "DB not ready")
		}
		return c.String(http.StatusOK, "Ready")
	})

	// Middleware
	e.Use(mwecho.RequestIDWithConfig(mwecho.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(mwecho.Logger())
	e.Use(mwecho.Recover())

	api.RegisterRoutes(e.Group("/api"), api.NewHandler(customerSvc, reservationSvc))

	//
	// HTTP server
	//
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		Echo:   e,
		HTTP:   srv,
		DB:     db,
		Config: cfg,
	}, nil
}
