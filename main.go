package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resumekit/config"
	"resumekit/handlers"
	"resumekit/middleware"
	"resumekit/services"
	"resumekit/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogWarn("No .env file found, using environment as-is")
	}

	cfg := config.GetAppConfig()

	var s3Service *services.S3Service
	if cfg.AWS.Configured() {
		var err error
		s3Service, err = services.NewS3Service()
		if err != nil {
			utils.LogError("S3 storage disabled", err)
			s3Service = nil
		}
	} else {
		utils.LogInfo("S3 storage not configured, exports served directly")
	}

	engine := services.NewChromeEngine()
	if !engine.Available() {
		utils.LogWarn("No browser binary found, PDF exports will fall back to HTML")
	}

	exportService := services.NewExportService(engine)
	resumeService := services.NewResumeService(s3Service)
	if err := resumeService.EnsureOutputDirectory(); err != nil {
		utils.LogError("Failed to create static directory", err)
	}

	h := handlers.NewResumeHandler(exportService, resumeService)
	limiters := middleware.CreateRateLimiters()

	r := gin.Default()
	r.Use(cors.Default())
	r.Static("/static", "./static")

	api := r.Group("/api")
	api.Use(limiters["general"].Limit())
	{
		api.GET("/templates", h.GetTemplates)
		api.GET("/resume/default", h.GetDefaultResume)
		api.POST("/resume/import", h.ImportResume)
		api.POST("/resume/preview", h.PreviewResume)
		api.POST("/resume/parse", h.ParseResumeText)
		api.GET("/resume/download/:filename", h.GetDownloadURL)
		api.DELETE("/resume/download/:filename", h.DeleteArtifact)

		api.POST("/resume/export", limiters["export"].Limit(), h.ExportResume)
		api.POST("/resume/tailor", limiters["ai"].Limit(), h.TailorResume)
	}

	utils.LogInfo("Starting server", map[string]interface{}{"port": cfg.Port, "env": cfg.Environment})
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.LogError("Server exited", err)
	}
}
