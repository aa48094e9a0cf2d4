package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// accessLogFormat is gin's default line with the request id appended.
func accessLogFormat(param gin.LogFormatterParams) string {
	requestID, _ := param.Keys[ContextKeyRequestID].(string)
	return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v | %s\n%s",
		param.TimeStamp.Format("2006/01/02 - 15:04:05"),
		param.StatusCode,
		param.Latency,
		param.ClientIP,
		param.Method,
		param.Path,
		requestID,
		param.ErrorMessage,
	)
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(gin.LoggerWithFormatter(accessLogFormat))
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	authors := NewAuthorsController(cfg.Authors, cfg.Books)
	books := NewBooksController(cfg.Books, cfg.Authors, cfg.Categories)
	categories := NewCategoriesController(cfg.Categories)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Author endpoints
	router.POST("/author", authors.SaveAuthor)
	router.POST("/author/:bookId", authors.SaveAuthorWithBook)
	router.GET("/author/:id", authors.GetAuthor)
	router.DELETE("/author/:id", authors.DeleteAuthor)

	// Book endpoints
	router.POST("/book/saveByAuthor", books.SaveBookByAuthor)
	router.POST("/book/:categoryId", books.SaveBookInCategory)
	router.GET("/book/:id", books.GetBook)
	router.DELETE("/book/:id", books.DeleteBook)

	// Category endpoints
	router.POST("/category", categories.SaveCategory)
	router.GET("/category/:id", categories.GetCategory)
	router.DELETE("/category/:id", categories.DeleteCategory)

	// Audit endpoints
	if cfg.AuditLog != nil {
		auditController := NewAuditController(cfg.AuditLog)
		router.GET("/api/audit", auditController.GetAuditEvents)
		router.GET("/api/audit/:entityType/:id", auditController.GetEntityEvents)
	}

	// Task management endpoints
	if cfg.TaskStatus != nil {
		tasksController := NewTasksController(cfg.TaskStatus, cfg.CleanupRunner)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
