package constants

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite   = "sqlite"
	StoreDynamoDB = "dynamodb"
)

// MaxChartSize is the largest chart accepted over HTTP, in either direction.
const MaxChartSize = 16 * 1024 * 1024

type Config struct {
	DBPath         string
	Store          string
	DynamoEndpoint string
	DynamoRegion   string
	DynamoTable    string
	Addr           string
	LogLevel       string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads a .env file into the environment if one exists. Variables
// already set win over the file.
func LoadEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

func FromEnv() Config {
	return Config{
		DBPath:         getenv("PATTERNDEX_DB_PATH", "./out/patterndex.db"),
		Store:          getenv("PATTERNDEX_STORE", StoreSQLite),
		DynamoEndpoint: os.Getenv("PATTERNDEX_DYNAMO_ENDPOINT"),
		DynamoRegion:   getenv("PATTERNDEX_DYNAMO_REGION", "us-east-1"),
		DynamoTable:    getenv("PATTERNDEX_DYNAMO_TABLE", "patterndex-reports"),
		Addr:           getenv("PATTERNDEX_ADDR", ":8080"),
		LogLevel:       getenv("PATTERNDEX_LOG_LEVEL", "info"),
	}
}
