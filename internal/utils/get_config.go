package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server configuration
	ServerPort string `yaml:"SERVER_PORT"`

	// Storage backend: "postgres" or "local"
	StorageBackend string `yaml:"STORAGE_BACKEND"`
	LocalStorePath string `yaml:"LOCAL_STORE_PATH"`

	// Pantry alert thresholds
	ExpiringSoonDays    string `yaml:"PANTRY_EXPIRING_SOON_DAYS"`
	LowStockThreshold   string `yaml:"PANTRY_LOW_STOCK_THRESHOLD"`
	RunningLowThreshold string `yaml:"PANTRY_RUNNING_LOW_THRESHOLD"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "SERVER_PORT":
		return config.ServerPort
	case "STORAGE_BACKEND":
		return config.StorageBackend
	case "LOCAL_STORE_PATH":
		return config.LocalStorePath
	case "PANTRY_EXPIRING_SOON_DAYS":
		return config.ExpiringSoonDays
	case "PANTRY_LOW_STOCK_THRESHOLD":
		return config.LowStockThreshold
	case "PANTRY_RUNNING_LOW_THRESHOLD":
		return config.RunningLowThreshold
	default:
		return ""
	}
}
