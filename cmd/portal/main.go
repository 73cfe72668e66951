package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gaon-hs/gaon-portal-api/api/swagger"
	"github.com/gaon-hs/gaon-portal-api/internal/gemini"
	"github.com/gaon-hs/gaon-portal-api/internal/handler"
	"github.com/gaon-hs/gaon-portal-api/internal/middleware"
	"github.com/gaon-hs/gaon-portal-api/internal/neis"
	"github.com/gaon-hs/gaon-portal-api/internal/schedule"
	"github.com/gaon-hs/gaon-portal-api/internal/service"
	"github.com/gaon-hs/gaon-portal-api/pkg/config"
	"github.com/gaon-hs/gaon-portal-api/pkg/logger"
	corsmiddleware "github.com/gaon-hs/gaon-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gaon-hs/gaon-portal-api/pkg/middleware/requestid"
)

// @title Gaon Portal API
// @version 1.0.0
// @description School information portal backend
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	loc, err := time.LoadLocation(cfg.School.Timezone)
	if err != nil {
		logr.Sugar().Warnw("unknown timezone, using local", "timezone", cfg.School.Timezone)
		loc = time.Local
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.RegisterValidators()

	metricsSvc := service.NewMetricsService()

	neisClient, err := neis.NewClient(cfg.NEIS, cfg.Cache.Capacity, logr, metricsSvc)
	if err != nil {
		logr.Sugar().Fatalw("failed to init NEIS client", "error", err)
	}
	geminiClient := gemini.NewClient(cfg.Gemini)

	window := schedule.NewWindow(time.Now, loc)
	timetableSvc := service.NewTimetableService(neisClient, window, loc, logr)
	mealSvc := service.NewMealService(neisClient, logr)
	chatSvc := service.NewChatService(geminiClient, neisClient, time.Now, loc, metricsSvc, logr)
	schoolSvc := service.NewSchoolService(cfg.School.Name)
	userSvc := service.NewUserConfigService()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	if templates, _ := filepath.Glob("web/templates/*.html"); len(templates) > 0 {
		r.LoadHTMLGlob("web/templates/*.html")
		handler.RegisterPages(r)
	}

	handler.Routes{
		School:    handler.NewSchoolHandler(schoolSvc, loc),
		Timetable: handler.NewTimetableHandler(timetableSvc, loc),
		Meal:      handler.NewMealHandler(mealSvc, loc),
		Chat:      handler.NewChatHandler(chatSvc),
		User:      handler.NewUserHandler(userSvc),
		Device:    handler.NewDeviceHandler(),
	}.Register(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "school", cfg.School.Name)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
