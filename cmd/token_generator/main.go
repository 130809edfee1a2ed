package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// makeToken signs a long-lived role token for local testing.
func makeToken(secret string, role string, ttl time.Duration) string {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})

	s, err := t.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return s
}

func main() {
	var ttl time.Duration
	flag.DurationVar(&ttl, "ttl", 365*24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	coachSecret := envOr("COACH_JWT_SECRET", "coach_secret_key")
	parentSecret := envOr("PARENT_JWT_SECRET", "parent_secret_key")

	fmt.Println("COACH_TOKEN=" + makeToken(coachSecret, "coach", ttl))
	fmt.Println("PARENT_TOKEN=" + makeToken(parentSecret, "parent", ttl))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
