package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"xcauditing-console/config"
	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
	"xcauditing-console/internal/cache"
	"xcauditing-console/internal/console/handlers"
	"xcauditing-console/internal/console/middleware"
	"xcauditing-console/internal/reports"
)

func main() {
	cfg := config.LoadConfig()

	rdb := config.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	store := auth.NewStore(rdb, cfg.Session.TTL)
	queryCache := cache.New(rdb)
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	engine := reports.NewEngine(client, queryCache, 500)

	authHandler := handlers.NewAuthHandler(client, store, cfg.Session.CookieName, cfg.Session.TTL)
	accountsHandler := handlers.NewAccountsHandler(client, store, cfg.Session.CookieName, queryCache)
	staffsHandler := handlers.NewStaffsHandler(client, store, cfg.Session.CookieName, queryCache)
	groupsHandler := handlers.NewGroupsHandler(client, store, cfg.Session.CookieName, queryCache)
	reportsHandler := handlers.NewReportsHandler(client, engine, store, cfg.Session.CookieName, queryCache)
	chatsHandler := handlers.NewChatsHandler(client, store, cfg.Session.CookieName)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(cfg.Limit.Rate))

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		authGroup := public.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1/admin")
	protected.Use(middleware.AuthGuard(store, cfg.Session.CookieName))
	{
		protected.GET("/session", authHandler.Session)

		accounts := protected.Group("/account-users")
		{
			accounts.GET("", accountsHandler.List)
			accounts.GET("/:id", accountsHandler.Get)
			accounts.POST("", accountsHandler.Create)
			accounts.PUT("/:id", accountsHandler.Update)
			accounts.DELETE("/:id", accountsHandler.Delete)
			accounts.PUT("/:id/reset-password", accountsHandler.ResetPassword)
		}

		employees := protected.Group("/employees")
		{
			employees.GET("", staffsHandler.List)
			employees.POST("", staffsHandler.Create)
			employees.PUT("/:id", staffsHandler.Update)
			employees.DELETE("/:id", staffsHandler.Delete)
			employees.PUT("/:id/account/:accountUserId", staffsHandler.AssignAccount)
			employees.DELETE("/:id/account", staffsHandler.RemoveAccount)
			employees.GET("/available-accounts", staffsHandler.AvailableAccounts)
		}

		groups := protected.Group("/employee-groups")
		{
			groups.GET("", groupsHandler.List)
			groups.GET("/:id", groupsHandler.Get)
			groups.POST("", groupsHandler.Create)
			groups.PUT("/:id", groupsHandler.Update)
			groups.DELETE("/:id", groupsHandler.Delete)
			groups.POST("/:id/members", groupsHandler.AddMembers)
			groups.DELETE("/:id/members/:employeeId", groupsHandler.RemoveMember)
			groups.PUT("/:id/leader/:employeeId", groupsHandler.SetLeader)
			groups.GET("/unassigned-employees", groupsHandler.UnassignedEmployees)
		}

		reportGroup := protected.Group("/weekly-report-summaries")
		{
			reportGroup.GET("", reportsHandler.List)
			reportGroup.GET("/summary", reportsHandler.FleetSummary)
			reportGroup.GET("/:id", reportsHandler.Get)
			reportGroup.GET("/:id/details", reportsHandler.Details)
			reportGroup.GET("/:id/not-yet-due", reportsHandler.NotYetDue)
			reportGroup.GET("/:id/missing-order-check", reportsHandler.MissingOrderCheck)
		}

		protected.GET("/report-periods", reportsHandler.Periods)
		protected.GET("/chat-sessions/:sessionId", chatsHandler.Get)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   "Console is running",
			"timestamp": time.Now(),
		})
	})

	log.Printf("Starting console on %s (backend %s)", cfg.Server.Addr, cfg.Backend.BaseURL)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
