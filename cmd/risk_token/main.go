// Command risk_token prints a bearer token accepted by the API. It signs with
// the same JWT_SECRET and JWT_ISSUER the server loads.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/surety_risk_app/internal/platform/config"
	"github.com/SscSPs/surety_risk_app/internal/utils"
	"github.com/spf13/pflag"
)

func main() {
	subject := pflag.StringP("subject", "s", "", "token subject, e.g. the underwriter id (required)")
	ttl := pflag.DurationP("ttl", "t", 8*time.Hour, "token lifetime")
	pflag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.IssueJWT(*subject, cfg.JWTSecret, cfg.JWTIssuer, *ttl, time.Now())
	if err != nil {
		slog.Error("Failed to issue token", slog.String("error", err.Error()))
		pflag.Usage()
		os.Exit(2)
	}
	fmt.Println(token)
}
