// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"iapedia/internal/cache"
	"iapedia/internal/database"
	"iapedia/internal/mailer"
	"iapedia/internal/router"
	"iapedia/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "iapedia/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const minJWTSecretLen = 32

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newMailer       = func() mailer.Mailer { return mailer.NewSMTPMailer() }
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = idx
	}

	if secret := os.Getenv("JWT_SECRET"); len(secret) < minJWTSecretLen {
		return fmt.Errorf("JWT_SECRET 未設定或長度不足 %d 字元", minJWTSecretLen)
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: strings.Split(origins, ","),
		}))
	}

	router.Setup(e, db, redis, newMailer(), wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+port)
}
