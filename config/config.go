package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"emostore/internal/infrastructure/broker"
	"emostore/internal/infrastructure/database"
	"emostore/internal/infrastructure/fsblob"
	"emostore/internal/infrastructure/minioblob"
	"emostore/internal/infrastructure/settings"
	"emostore/pkg/logger"
)

// Blob store backends selectable in config.
const (
	BackendFS = "fs"
	BackendS3 = "s3"
)

type DefaultConfig struct {
	Address string `yaml:"address"`
	Backend string `yaml:"blob_backend"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	FSBlob          fsblob.Config          `yaml:"fs_blob"`
	MinIOBlob       minioblob.Config       `yaml:"minio_blob"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Settings        settings.Config        `yaml:"storage_policy"`
	Logger          logger.Config          `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOBlob.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOBlob.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch c.Default.Backend {
	case BackendFS:
		if c.FSBlob.Root == "" {
			return errors.New("fs_blob.root must be set for the fs backend")
		}
	case BackendS3:
		if c.MinIOBlob.Endpoint == "" || c.MinIOBlob.Bucket == "" {
			return errors.New("minio_blob endpoint and bucket must be set for the s3 backend")
		}
	default:
		return errors.New("default.blob_backend must be fs or s3")
	}

	return nil
}
