package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// APIName is reported by the root endpoint next to a freshly issued token.
const APIName = "Fuel Station API"

var DB *gorm.DB

// Resolved once by Load; never read from the environment after startup.
var (
	jwtKey   = []byte("secret")
	tokenTTL = 3 * 24 * time.Hour
)

// Load resolves process configuration from the environment (with .env
// support) exactly once at startup.
func Load() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if key := os.Getenv("JWT_KEY"); key != "" {
		jwtKey = []byte(key)
	}

	if days := os.Getenv("TOKEN_TTL_DAYS"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			log.Fatalf("invalid TOKEN_TTL_DAYS %q", days)
		}
		tokenTTL = time.Duration(n) * 24 * time.Hour
	}
}

// JWTKey is the shared secret tokens are signed and verified with.
func JWTKey() []byte { return jwtKey }

// TokenTTL is how long an issued token stays valid.
func TokenTTL() time.Duration { return tokenTTL }

func Connect() {
	Load()

	dsn := os.Getenv("DB_DSN")
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
}
