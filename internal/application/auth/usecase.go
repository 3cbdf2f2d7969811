package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/domain"
	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/internal/domain/policy"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
	"github.com/tu-usuario/store-ledger/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// El conjunto de roles admitidos al registrar se inyecta como configuración
// explícita; no hay estado ambiente ni enumeración implícita.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	jwtCfg       JWTConfig
	allowedRoles map[policy.Role]struct{}
}

// NewAuthUseCase construye el caso de uso de auth con el conjunto de roles que
// esta instalación acepta al crear cuentas.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, allowedRoles []policy.Role) *AuthUseCase {
	set := make(map[policy.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		set[r] = struct{}{}
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, allowedRoles: set}
}

// Register crea una cuenta: valida el rol contra el conjunto admitido,
// normaliza el email a minúsculas, hashea el password con bcrypt y persiste.
// Devuelve ErrInvalidRole si el rol no está admitido y ErrEmailAlreadyExists
// si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := policy.Role(in.Role)
	if _, ok := uc.allowedRoles[role]; !ok || !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, &domain.MissingFieldError{Field: "email"}
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera un JWT con el rol y retorna token + cuenta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
