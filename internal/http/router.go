package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/liquidacion/backend/internal/config"
	"github.com/liquidacion/backend/internal/http/handlers"
	"github.com/liquidacion/backend/internal/http/middleware"
	"github.com/liquidacion/backend/internal/sheet"

	_ "github.com/liquidacion/backend/docs"
)

func Router(cfg config.Config, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id", handlers.FingerprintHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Reader:         sheet.NewReader(validator.New()),
		Logger:         logger,
		ReportFilename: cfg.ReportFilename,
		ReportSheet:    cfg.ReportSheet,
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/nomina", h.Form)
	r.POST("/nomina", h.Liquidate)

	api := r.Group("/api")
	{
		api.POST("/liquidacion/preview", h.Preview)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
