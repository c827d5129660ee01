package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sublime247/Lumenpulse/internal/handler"
	"github.com/sublime247/Lumenpulse/internal/token"
	"github.com/sublime247/Lumenpulse/internal/vault"
)

func Setup(v *vault.Vault, tokens *token.Ledger) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "lumenpulse",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 资金库管理路由
		vaultHandler := handler.NewVaultHandler(v)
		vaultGroup := v1.Group("/vault")
		{
			vaultGroup.POST("/initialize", vaultHandler.Initialize)
			vaultGroup.GET("/status", vaultHandler.Status)
			vaultGroup.POST("/pause", vaultHandler.Pause)
			vaultGroup.POST("/unpause", vaultHandler.Unpause)
			vaultGroup.PUT("/admin", vaultHandler.SetAdmin)
			vaultGroup.POST("/matching-pool", vaultHandler.FundMatchingPool)
			vaultGroup.GET("/matching-pool/:asset", vaultHandler.MatchingPoolBalance)
		}

		// 项目相关路由
		projectHandler := handler.NewProjectHandler(v)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/milestone/approve", projectHandler.ApproveMilestone)
			projects.POST("/:id/deposits", projectHandler.Deposit)
			projects.POST("/:id/withdrawals", projectHandler.Withdraw)
			projects.GET("/:id/contributions/:address", projectHandler.GetContribution)
			projects.GET("/:id/match", projectHandler.CalculateMatch)
			projects.POST("/:id/match/distribute", projectHandler.DistributeMatch)
		}

		// 贡献者相关路由
		contributorHandler := handler.NewContributorHandler(v)
		contributors := v1.Group("/contributors")
		{
			contributors.POST("", contributorHandler.Register)
			contributors.GET("/:address/reputation", contributorHandler.GetReputation)
			contributors.PUT("/:address/reputation", contributorHandler.UpdateReputation)
		}

		// 代币账本路由
		tokenHandler := handler.NewTokenHandler(tokens)
		tokenGroup := v1.Group("/tokens")
		{
			tokenGroup.POST("/:asset", tokenHandler.InitializeAsset)
			tokenGroup.GET("/:asset", tokenHandler.GetMetadata)
			tokenGroup.POST("/:asset/mint", tokenHandler.Mint)
			tokenGroup.PUT("/:asset/frozen", tokenHandler.SetFrozen)
			tokenGroup.GET("/:asset/balances/:address", tokenHandler.GetBalance)
			tokenGroup.GET("/:asset/allowances/:from/:spender", tokenHandler.GetAllowance)
			tokenGroup.POST("/:asset/transfers", tokenHandler.Transfer)
			tokenGroup.POST("/:asset/approvals", tokenHandler.Approve)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
