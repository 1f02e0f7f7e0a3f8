// Command finops_token issues bearer tokens for the API using the server's
// JWT_SECRET and JWT_ISSUER. Users are managed outside this service, so this
// is how operators and local clients obtain a token.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/finops_core/internal/platform/config"
	"github.com/SscSPs/finops_core/internal/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	userID := flag.String("user", "", "user ID to put in the token subject")
	company := flag.String("company", "", "restrict the token to one company ID")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	genSecret := flag.Bool("gen-secret", false, "print a random value suitable for JWT_SECRET and exit")
	flag.Parse()

	if *genSecret {
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			logger.Error("Failed to generate secret", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(secret)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*userID, *company, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		flag.Usage()
		os.Exit(2)
	}
	fmt.Println(token)
}
