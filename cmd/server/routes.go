package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"edu-connect.backend/internal/interfaces/http/handlers"
	"edu-connect.backend/internal/interfaces/http/middleware"
	"edu-connect.backend/internal/metrics"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	courseHandler  *handlers.CourseHandler
	studentHandler *handlers.StudentHandler
	authMiddleware gin.HandlerFunc
	collector      *metrics.Collector
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		// Auth routes (register/verify/login are public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/verify", d.authHandler.VerifyPhone)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Teacher-facing course routes
		courses := api.Group("/courses")
		courses.Use(d.authMiddleware)
		{
			courses.GET("", middleware.RequireTeacher(), d.courseHandler.ListOwned)
			courses.POST("", middleware.RequireTeacher(), d.courseHandler.Create)
			courses.GET("/:id", d.courseHandler.GetDetail)
			courses.POST("/:id/reviews", middleware.RequireStudent(), d.courseHandler.AddReview)
		}

		// Student-facing catalog and enrollment routes. The catalog reads are
		// open to any authenticated user; only enrolling requires the student
		// role.
		student := api.Group("/student", d.authMiddleware)
		{
			student.GET("/courses/available", d.studentHandler.ListAvailable)
			student.GET("/courses/enrolled", d.studentHandler.ListEnrolled)
			student.POST("/courses/:id/enroll", middleware.RequireStudent(), middleware.IdempotencyMiddleware(), d.studentHandler.Enroll)
		}
	}

	r.GET("/metrics", gin.WrapH(d.collector.Handler()))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "edu-connect-backend",
			"version": "0.1.0",
		})
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, x-auth-token, Idempotency-Key, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}
