package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/hml69/thanbaitet/internal/dependencies/clock"
	"github.com/hml69/thanbaitet/internal/dependencies/identity"
	"github.com/hml69/thanbaitet/internal/services/scoring"
	"github.com/hml69/thanbaitet/internal/services/table"
	"github.com/hml69/thanbaitet/internal/storage"
	filestorage "github.com/hml69/thanbaitet/internal/storage/file"
	"github.com/hml69/thanbaitet/internal/storage/memory"
	redisstorage "github.com/hml69/thanbaitet/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// DefaultStateFile is the default path of the file backend's document
const DefaultStateFile = "data/state.json"

// App contains all wired application components
type App struct {
	// Storage
	Gateway storage.Gateway

	// External dependencies
	Clock clock.Clock
	IDs   identity.Generator

	// Services
	ScoringService  *scoring.Service
	TableController *table.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// StateFile is the path for the file backend (optional)
	// If empty, defaults to DefaultStateFile
	StateFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var gateway storage.Gateway
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeMemory:
		gateway = memory.New()
	case StorageTypeFile:
		path := cfg.StateFile
		if path == "" {
			path = DefaultStateFile
		}
		gateway = filestorage.New(path)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisGateway, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		gateway = redisGateway
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	return newWithDependencies(gateway, clock.New(), identity.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(gateway storage.Gateway, clk clock.Clock, ids identity.Generator, logger *slog.Logger) *App {
	scoringService := scoring.New()
	tableController := table.NewController(gateway, clk, ids, logger)

	return &App{
		Gateway:         gateway,
		Clock:           clk,
		IDs:             ids,
		ScoringService:  scoringService,
		TableController: tableController,
	}
}
