package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/uturns/booking-agent/internal/config"
	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/routes"
)

func main() {

	// .env é opcional: em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()
	kv := localstore.NewRedis(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, kv)

	log.Printf("Agent running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start agent: %v", err)
	}
}
