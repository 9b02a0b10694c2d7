package config

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	RedisPass string
	JWTSecret string
	HTTPPort  string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:  mongoURI(),
		MongoDB:   getEnv("MONGO_DB", "matchMingle"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		// no default: a guessable signing secret makes every token forgeable,
		// so main refuses to start without one
		JWTSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		HTTPPort:  getEnv("PORT", "5000"),
	}
}

// mongoURI prefers a full MONGO_URI; otherwise builds an Atlas URI from
// DB_USER/DB_PASS against DB_HOST.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	if user != "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "cluster0.8ww6tl6.mongodb.net"
		}
		return fmt.Sprintf(
			"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
			url.QueryEscape(user), url.QueryEscape(pass), host,
		)
	}
	log.Println("[config] neither MONGO_URI nor DB_USER set, falling back to localhost")
	return "mongodb://localhost:27017"
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s not set, using default\n", key)
		return def
	}
	return v
}
