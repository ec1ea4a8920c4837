// Command token prints a bearer token for the catalog admin endpoints,
// signed with AUTH_SECRET.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kahvecikaan/catalog-api/internal/auth"
	"github.com/nicholasjackson/env"
)

var (
	authSecret = env.String("AUTH_SECRET", true,
		"", "HMAC secret for admin bearer tokens")
	subject = env.String("TOKEN_SUBJECT", false,
		"admin", "Subject recorded in the token")
	ttl = env.Duration("TOKEN_TTL", false,
		24*time.Hour, "Lifetime of the token")
)

func main() {
	godotenv.Load()

	logger := hclog.New(&hclog.LoggerOptions{Name: "token"})

	if err := env.Parse(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	token, err := auth.NewTokenVerifier(*authSecret).Issue(*subject, *ttl)
	if err != nil {
		logger.Error("Unable to sign token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
