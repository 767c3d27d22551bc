package service

import (
	"context"
	"errors"
	"time"

	"feriapos/internal/apierror"
	"feriapos/internal/config"
	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	// Login validates credentials against active users and returns the signed
	// token plus the user profile. Cookie delivery is the handler's job.
	Login(ctx context.Context, req dto.LoginRequest) (string, *dto.UsuarioResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.EditarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *dto.UsuarioResponse, error) {
	user, err := s.repo.FindActivoPorUsuario(ctx, req.Usuario)
	if err != nil {
		return "", nil, apierror.Validation("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasena), []byte(req.Contrasena)); err != nil {
		return "", nil, apierror.Validation("credenciales inválidas")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, apierror.Transaction("error generando el token", err)
	}
	return token, usuarioToResponse(user), nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindPorUsuario(ctx, req.Usuario); err == nil {
		return nil, apierror.Conflict("el nombre de usuario ya está en uso")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), 12)
	if err != nil {
		return nil, apierror.Transaction("error generando el hash de la contraseña", err)
	}

	user := &model.Usuario{
		Nombre:         req.Nombre,
		PrimerApellido: req.PrimerApellido,
		Usuario:        req.Usuario,
		Contrasena:     string(hash),
		Rol:            req.Rol,
		Estado:         "activo",
		FechaCreacion:  time.Now(),
	}
	if req.SegundoApellido != nil {
		user.SegundoApellido = *req.SegundoApellido
	}
	if req.Estado != nil {
		user.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apierror.Transaction("error creando el usuario", err)
	}
	return usuarioToResponse(user), nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Transaction("error listando usuarios", err)
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = *usuarioToResponse(&users[i])
	}
	return resp, nil
}

// ActualizarUsuario is a patch: only fields present in the request change.
// The password is re-hashed only when a non-empty one is supplied.
func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.EditarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("usuario no encontrado")
		}
		return nil, apierror.Transaction("error consultando el usuario", err)
	}

	if req.Usuario != nil && *req.Usuario != user.Usuario {
		if _, err := s.repo.FindPorUsuario(ctx, *req.Usuario); err == nil {
			return nil, apierror.Conflict("el nombre de usuario ya está en uso")
		}
		user.Usuario = *req.Usuario
	}
	if req.Nombre != nil {
		user.Nombre = *req.Nombre
	}
	if req.PrimerApellido != nil {
		user.PrimerApellido = *req.PrimerApellido
	}
	if req.SegundoApellido != nil {
		user.SegundoApellido = *req.SegundoApellido
	}
	if req.Rol != nil {
		user.Rol = *req.Rol
	}
	if req.Estado != nil {
		user.Estado = *req.Estado
	}
	if req.Contrasena != nil && *req.Contrasena != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Contrasena), 12)
		if err != nil {
			return nil, apierror.Transaction("error generando el hash de la contraseña", err)
		}
		user.Contrasena = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apierror.Transaction("error actualizando el usuario", err)
	}
	return usuarioToResponse(user), nil
}

// DesactivarUsuario flips the user to inactivo. Users are never hard-deleted:
// cajas and ventas keep referencing them.
func (s *authService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("usuario no encontrado")
		}
		return apierror.Transaction("error consultando el usuario", err)
	}
	user.Estado = "inactivo"
	if err := s.repo.Update(ctx, user); err != nil {
		return apierror.Transaction("error desactivando el usuario", err)
	}
	return nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"id":      user.ID.String(),
		"usuario": user.Usuario,
		"nombre":  user.Nombre,
		"rol":     user.Rol,
		"exp":     time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:              u.ID.String(),
		Nombre:          u.Nombre,
		PrimerApellido:  u.PrimerApellido,
		SegundoApellido: u.SegundoApellido,
		Usuario:         u.Usuario,
		Rol:             u.Rol,
		Estado:          u.Estado,
		FechaCreacion:   u.FechaCreacion.Format(time.RFC3339),
	}
}
