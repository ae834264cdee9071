package main

import (
	"context"
	"log"
	"os"
	"path"

	flag "github.com/spf13/pflag"

	"github.com/matst80/slask-orders/pkg/orders"
	"github.com/matst80/slask-orders/pkg/presets"
	"github.com/matst80/slask-orders/pkg/query"
	"github.com/matst80/slask-orders/pkg/session"
	"github.com/matst80/slask-orders/pkg/storage"
)

var redisPassword = os.Getenv("REDIS_PASSWORD")

var (
	dataFile  = flag.String("data", "data/orders.json", "path to the order dataset")
	storeDir  = flag.String("store", defaultStoreDir(), "folder for persisted view state and presets")
	redisAddr = flag.String("redis", os.Getenv("REDIS_URL"), "optional redis address for a shared store")
	pageSize  = flag.Int("page-size", query.DefaultPageSize, "orders per page")
)

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".orderdeck"
	}
	return path.Join(home, ".orderdeck")
}

func main() {
	flag.Parse()
	ctx := context.Background()

	file, err := os.Open(*dataFile)
	if err != nil {
		log.Fatalf("Could not open dataset: %v", err)
	}
	collection, err := orders.LoadJSON(file)
	file.Close()
	if err != nil {
		log.Fatalf("Could not load dataset: %v", err)
	}
	log.Printf("Loaded %d orders", collection.Len())

	var kv storage.KeyValue
	if *redisAddr != "" {
		kv = storage.NewRedis(*redisAddr, redisPassword, 0)
	} else {
		kv, err = storage.NewDisk(*storeDir)
		if err != nil {
			log.Fatalf("Could not open store: %v", err)
		}
	}

	profile, err := session.ProfileID(ctx, kv)
	if err != nil {
		log.Fatalf("Could not resolve profile: %v", err)
	}
	scoped := storage.WithPrefix(kv, profile+":")

	sess := session.New(scoped)
	engine := query.NewEngine(collection, sess, *pageSize)
	engine.Restore(sess.Restore())
	presetStore := presets.NewStore(scoped)

	repl := &repl{
		engine:  engine,
		presets: presetStore,
	}
	repl.run(ctx)
}
