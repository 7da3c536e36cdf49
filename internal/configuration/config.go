package configuration

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	Uri             string
	Database        string
	UsersCollection string
}

type ServerConfig struct {
	Port string
}

type Config struct {
	Mongo  MongoConfig
	Server ServerConfig
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one exists.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Mongo: MongoConfig{
			Uri:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:        getEnv("MONGO_DB", "usuariosdb"),
			UsersCollection: getEnv("USERS_COLLECTION", "usuarios"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
