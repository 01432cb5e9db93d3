package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoOptions struct {
	URI       string
	ConnectTO time.Duration
	PingTO    time.Duration
}

// OpenMongo opens the document-store client. Same lifecycle posture as
// OpenDB: a failed startup ping is a warning, not a crash.
func OpenMongo(ctx context.Context, opt MongoOptions) (*mongo.Client, error) {
	if opt.URI == "" {
		return nil, fmt.Errorf("mongo URI is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 5 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opt.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		log.Printf("Warning: mongo ping failed, continuing anyway: %v", err)
	}

	return client, nil
}
