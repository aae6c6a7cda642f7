// Command token mints a staff access token for operating the admin endpoints.
package main

import (
	"flag"
	"fmt"
	"slices"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/shared/constant"
	"hotel/shared/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	email := flag.String("email", "", "staff email")
	role := flag.String("role", constant.RoleStaff, "superadmin, admin or staff")
	userID := flag.String("id", "", "staff id, random when empty")
	refresh := flag.String("refresh", "", "exchange a refresh token for a new pair instead of minting one")
	flag.Parse()

	service := jwt.New(cfg)

	if *refresh != "" {
		pair, err := service.RefreshTokens(*refresh)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to refresh token")
		}

		printPair(pair)

		return
	}

	if *email == "" {
		log.Fatal().Msg("-email is required")
	}

	if !slices.Contains([]string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleStaff}, *role) {
		log.Fatal().Str("role", *role).Msg("unknown role")
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	pair, err := service.GenerateTokenPair(*userID, *email, *role)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}

	printPair(pair)
}

func printPair(pair *jwt.TokenPair) {
	fmt.Printf("access:  %s\nrefresh: %s\nexpires in %ds\n", pair.AccessToken, pair.RefreshToken, pair.ExpiresIn)
}
