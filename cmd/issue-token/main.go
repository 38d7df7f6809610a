package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sportsinventory/internal/config"
	"sportsinventory/internal/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "", "operator name stored in the token")
	role := flag.String("role", jwt.RoleClerk, "operator role: clerk or admin")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to read .env")
	}

	if *subject == "" {
		logrus.Fatal("-subject is required")
	}
	if !jwt.ValidRole(*role) {
		logrus.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	token, err := jwt.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(*subject, *role)
	if err != nil {
		logrus.WithError(err).Fatal("token generation failed")
	}

	logrus.WithFields(logrus.Fields{
		"subject": *subject,
		"role":    *role,
		"ttl":     cfg.JWTTTL.String(),
	}).Info("token issued")
	fmt.Println(token)
}
