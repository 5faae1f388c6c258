package main

import (
	"context"
	"fmt"
	"log"

	"go-restaurant/config"
	"go-restaurant/store"
)

// openStore builds the configured store driver, behind the redis cache
// when REDIS_ADDR is set. The returned func releases every connection.
func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) (store.FoodStore, func(), error) {
	var (
		foods   store.FoodStore
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := config.ConnectMongoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = client.Disconnect(context.Background()) })
		foods = store.NewMongoStore(client.Database(cfg.MongoDatabase))
		logger.Println("Connected to MongoDB!")
	case config.DriverPostgres:
		db, err := config.ConnectPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { sqlDB.Close() })
		}
		pg, err := store.NewPostgresStore(db)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("migrating foods table: %w", err)
		}
		foods = pg
		logger.Println("Connected to Postgres!")
	case config.DriverBolt:
		db, err := config.OpenBolt(cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { db.Close() })
		bs, err := store.NewBoltStore(db)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		foods = bs
	default:
		foods = store.NewMemoryStore()
	}

	rdb, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	if rdb != nil {
		closers = append(closers, func() { rdb.Close() })
		foods = store.NewCachedStore(foods, rdb, cfg.CacheTTL, logger)
		logger.Println("Connected to Redis!")
	}
	return foods, closeAll, nil
}
