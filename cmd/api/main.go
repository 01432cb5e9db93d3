package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/the-todo-app/todo-backend/config"
	"github.com/the-todo-app/todo-backend/internal/auth"
	"github.com/the-todo-app/todo-backend/internal/bootstrap"
	todohttp "github.com/the-todo-app/todo-backend/internal/todos/http"
	"github.com/the-todo-app/todo-backend/internal/todos/mongostore"
	"github.com/the-todo-app/todo-backend/internal/todos/pgstore"
)

const serviceName = "todo-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var r *gin.Engine
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, err := bootstrap.OpenMongo(ctx, bootstrap.MongoOptions{URI: cfg.Mongo.URI})
		if err != nil {
			log.Fatalf("mongo: %v", err)
		}
		col := client.Database(cfg.Mongo.Database).Collection("todos")

		var resolver auth.Resolver
		if cfg.Store.MultiTenant {
			resolver = auth.DefaultResolver()
		}

		r = bootstrap.BuildRouter(bootstrap.RouterDeps[mongostore.Todo]{
			ServiceName: serviceName,
			Version:     cfg.App.Version,
			Store:       mongostore.NewStore(col),
			Policy:      todohttp.DocumentPolicy,
			Resolver:    resolver,
			StorePing: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
		})

	case config.BackendPostgres:
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}

		r = bootstrap.BuildRouter(bootstrap.RouterDeps[pgstore.Todo]{
			ServiceName: serviceName,
			Version:     cfg.App.Version,
			Store:       pgstore.NewStore(pool),
			Policy:      todohttp.RelationalPolicy,
			StorePing:   pool.Ping,
		})
	}

	log.Printf("listening on :%s (store=%s multi_tenant=%v)",
		cfg.Server.Port, cfg.Store.Backend, cfg.Store.MultiTenant)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
