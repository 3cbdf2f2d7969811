// seed crea la cuenta Admin inicial si no existe.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD del entorno (o .env vía la
// configuración normal); sin ellos usa admin@store-ledger.local / admin123,
// pensado solo para entornos de desarrollo.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tu-usuario/store-ledger/internal/application/auth"
	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/domain"
	"github.com/tu-usuario/store-ledger/internal/domain/policy"
	"github.com/tu-usuario/store-ledger/internal/infrastructure/postgres"
	"github.com/tu-usuario/store-ledger/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@store-ledger.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, policy.AllRoles())

	out, err := authUC.Register(dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Admin",
		Role:     string(policy.RoleAdmin),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Printf("Admin ya existe: %s\n", email)
			return
		}
		fmt.Fprintf(os.Stderr, "crear Admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin creado: %s (id %s)\n", out.Email, out.ID)
}
