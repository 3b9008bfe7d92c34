package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmoura-dev/barber-booking-api/internal/cache"
	"github.com/dmoura-dev/barber-booking-api/internal/config"
	dbpkg "github.com/dmoura-dev/barber-booking-api/internal/db"
	"github.com/dmoura-dev/barber-booking-api/internal/holidays"
	"github.com/dmoura-dev/barber-booking-api/internal/middleware"
	"github.com/dmoura-dev/barber-booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// tabela de feriados fixa, montada uma vez na subida
	year := time.Now().Year()
	calendar := holidays.NewBrazil(year-1, year+5)

	store := cache.New(cfg.RedisURL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, calendar, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
