package app

import (
	"net/http"

	"todo-api/internal/config"
	"todo-api/internal/dto"
	"todo-api/internal/handlers"
	"todo-api/internal/repo"
	"todo-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

const healthMessage = "Simple CRUD API with Go, Gin, pgx and Postgres"

// Setup registers all routes on the given engine. The route table is
// static; the pool handle is attached once through the layer constructors.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, log zerolog.Logger) {
	r.GET("/", rootHandler())
	r.GET("/health", healthHandler())
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	todoRepo := repo.NewPGTodoRepo(db)
	todoSvc := service.NewTodoService(todoRepo, log)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	registerTodoRoutes(r, todoHandler)
}

func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	}
}

// healthHandler godoc
// @Summary      Liveness probe
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.StatusMessage
// @Router       /health [get]
func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.StatusMessage{Status: "success", Message: healthMessage})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version, "env": cfg.App.Env})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(r *gin.Engine, h *handlers.TodoHandler) {
	r.GET("/todos", h.List)
	r.POST("/todo", h.Create)
	r.GET("/todo/:id", h.GetByID)
	r.PATCH("/todo/:id", h.Update)
	r.DELETE("/todo/:id", h.Delete)
}
