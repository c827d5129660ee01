package main

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/sublime247/Lumenpulse/internal/auth"
	"github.com/sublime247/Lumenpulse/internal/config"
	"github.com/sublime247/Lumenpulse/internal/database"
	"github.com/sublime247/Lumenpulse/internal/event"
	"github.com/sublime247/Lumenpulse/internal/logger"
	"github.com/sublime247/Lumenpulse/internal/router"
	"github.com/sublime247/Lumenpulse/internal/scheduler"
	"github.com/sublime247/Lumenpulse/internal/store"
	"github.com/sublime247/Lumenpulse/internal/token"
	"github.com/sublime247/Lumenpulse/internal/vault"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	setupLogger(cfg.Log)
	defer logger.Sync()

	// 初始化数据库与状态存储
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize database: %v", err)
	}

	kv, err := store.OpenGormStore(db)
	if err != nil {
		logger.Fatal("failed to open state store: %v", err)
	}

	// 初始化事件总线
	bus, err := event.NewBus(cfg.Vault.EventWorkers)
	if err != nil {
		logger.Fatal("failed to create event bus: %v", err)
	}
	defer bus.Close()

	eventLog, err := logger.New(logger.ParseLogLevel(cfg.Log.Level))
	if err != nil {
		logger.Fatal("failed to create event logger: %v", err)
	}
	bus.Subscribe(event.LogSubscriber(eventLog))

	// 初始化账本
	if !common.IsHexAddress(cfg.Vault.CustodyAddress) {
		logger.Fatal("invalid custody address: %s", cfg.Vault.CustodyAddress)
	}
	custody := common.HexToAddress(cfg.Vault.CustodyAddress)

	tokens := token.NewLedger(kv, auth.AllowAll{})
	v := vault.New(kv, tokens, auth.AllowAll{}, bus, custody)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(v, tokens)

	// 启动定时任务
	manager, err := scheduler.Start(v, cfg)
	if err != nil {
		logger.Fatal("failed to start scheduler: %v", err)
	}
	defer manager.Stop()

	// 启动服务器
	logger.Info("server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("failed to start server: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := logger.ParseLogLevel(cfg.Level)

	if cfg.Output == "file" {
		l, err := logger.NewWithRotation(level, logger.RotationConfig{
			Filename: cfg.File,
			Compress: true,
		})
		if err != nil {
			logger.Fatal("failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(l)
		return
	}

	l, err := logger.New(level)
	if err != nil {
		logger.Fatal("failed to initialize logger: %v", err)
	}
	logger.SetDefaultLogger(l)
}
