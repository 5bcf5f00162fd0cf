package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/eventlog"
	"github.com/beka-birhanu/vinom-maze/infrastruture/lock"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	mazeLocker     i.Locker
	eventLog       i.EventLog
	editTokenizer  i.EditTokenizer
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initRedisLocker(client *redis.Client) {
	lockLogger, err := logger.New("LOCKER", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating locker logger: %v", err))
		os.Exit(1)
	}

	mazeLocker = lock.NewRedisLocker(client, 0, lockLogger)
	appLogger.Info("Redis locker initialized")
}

func initRedisEventLog(client *redis.Client) {
	ttl := time.Duration(config.Envs.EventTTLSeconds) * time.Second
	eventLog = eventlog.NewRedisEventLog(client, ttl)
	appLogger.Info("Redis event log initialized")
}

func initMemoryBackend() {
	mazeRepo = repo.NewMemoryMazeRepo()
	mazeLocker = lock.NewLocalLocker()
	eventLog = eventlog.NewMemoryEventLog()
	appLogger.Warning("Using in-memory storage; mazes are lost on restart")
}

func initEditTokenizer() {
	editTokenizer = token.NewEditTokenService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("Edit tokenizer initialized")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(mazeRepo, mazeLocker, eventLog, editTokenizer, mazeLogger, &service.Options{
		MaxDimension: config.Envs.MaxMazeDimension,
		TokenTTL:     time.Duration(config.Envs.EditTokenTTLMinutes) * time.Minute,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	mazeController = mazeapi.NewMazeController(mazeService)
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.EditTokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	switch config.Envs.StorageBackend {
	case config.BackendMongo:
		initMongo(ctx)
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
		initRedis(ctx)
		defer redisClient.Close()

		initMazeRepo(mongoClient)
		initRedisLocker(redisClient)
		initRedisEventLog(redisClient)
	case config.BackendMemory:
		initMemoryBackend()
	default:
		appLogger.Error(fmt.Sprintf("Unknown storage backend %q", config.Envs.StorageBackend))
		os.Exit(1)
	}

	initEditTokenizer()
	initMazeService()
	initMazeController()
	initRouter(editTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
