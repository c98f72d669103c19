package main

import (
	"context"
	"log"

	_ "jobportal/api/swagger" // swagger docs
	"jobportal/internal/config"
	"jobportal/internal/database"
	"jobportal/internal/handler"
	"jobportal/internal/middleware"
	"jobportal/internal/repository"
	"jobportal/internal/service"
	"jobportal/internal/token"
	"jobportal/internal/websocket"
	"jobportal/pkg/email"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Job Portal API
// @version         1.0
// @description     REST API for the job portal: auth, companies, jobs, resumes and subscriptions.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	if err := database.SeedRolesAndPermissions(context.Background(), db); err != nil {
		log.Fatalf("Seeding roles and permissions failed: %v", err)
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	issuer := token.NewIssuer(
		cfg.JWTAccessSecret,
		cfg.JWTRefreshSecret,
		cfg.JWTAccessExpire.Duration(),
		cfg.JWTRefreshExpire.Duration(),
	)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, issuer)
	userService := service.NewUserService(userRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo, permissionRepo, txManager)
	permissionService := service.NewPermissionService(permissionRepo)
	companyService := service.NewCompanyService(companyRepo)
	jobService := service.NewJobService(jobRepo, companyRepo)
	resumeService := service.NewResumeService(resumeRepo, jobRepo, companyRepo, wsHub)
	subscriberService := service.NewSubscriberService(subscriberRepo)

	mailer := email.NewSender(cfg.ResendAPIKey, cfg.DigestFrom)
	digestService := service.NewDigestService(subscriberRepo, jobRepo, mailer)

	// Initialize Handlers
	cookieMaxAge := int(cfg.JWTRefreshExpire.Duration().Seconds())
	authHandler := handler.NewAuthHandler(authService, cookieMaxAge)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	resumeHandler := handler.NewResumeHandler(resumeService)
	subscriberHandler := handler.NewSubscriberHandler(subscriberService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, []byte(cfg.JWTAccessSecret))
	})

	// Assemble the route policy before the Guard sees any traffic.
	policy := middleware.NewPolicy()
	authHandler.Policy(policy)
	userHandler.Policy(policy)
	roleHandler.Policy(policy)
	permissionHandler.Policy(policy)
	companyHandler.Policy(policy)
	jobHandler.Policy(policy)
	resumeHandler.Policy(policy)
	subscriberHandler.Policy(policy)

	api := router.Group("")
	api.Use(middleware.Guard([]byte(cfg.JWTAccessSecret), policy))

	// Register API Routes
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	roleHandler.RegisterRoutes(api)
	permissionHandler.RegisterRoutes(api)
	companyHandler.RegisterRoutes(api)
	jobHandler.RegisterRoutes(api)
	resumeHandler.RegisterRoutes(api)
	subscriberHandler.RegisterRoutes(api)

	// Weekly job digest for subscribers
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.DigestCron, func() {
		if err := digestService.Run(context.Background()); err != nil {
			log.Printf("Job digest run failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Invalid digest cron expression %q: %v", cfg.DigestCron, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
