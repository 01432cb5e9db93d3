package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/the-todo-app/todo-backend/internal/api/http"
	"github.com/the-todo-app/todo-backend/internal/api/http/middleware"
	"github.com/the-todo-app/todo-backend/internal/auth"
	"github.com/the-todo-app/todo-backend/internal/todos"
	todohttp "github.com/the-todo-app/todo-backend/internal/todos/http"
)

type RouterDeps[T any] struct {
	ServiceName string
	Version     string
	Store       todos.Store[T]
	Policy      todohttp.ResponsePolicy
	// Resolver enables tenant scoping; nil runs the service single-tenant.
	Resolver  auth.Resolver
	StorePing httpapi.PingFunc
}

func BuildRouter[T any](dep RouterDeps[T]) *gin.Engine {
	r := gin.Default()

	// Development posture: every origin, method and header is allowed.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.StorePing)
	healthHandler.RegisterRoutes(r)

	todosGroup := r.Group("/todos")
	if dep.Resolver != nil {
		todosGroup.Use(auth.RequireUser(dep.Resolver))
	}
	todohttp.Register(todosGroup, dep.Store, dep.Policy)

	return r
}
