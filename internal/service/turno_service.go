package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TurnoService interface {
	Crear(ctx context.Context, req dto.CrearTurnoRequest) (*dto.TurnoResponse, error)
	ListarPorEvento(ctx context.Context, eventoID uuid.UUID) ([]dto.TurnoResponse, error)
	Editar(ctx context.Context, id uuid.UUID, req dto.EditarTurnoRequest) (*dto.TurnoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	Asignar(ctx context.Context, req dto.AsignarUsuarioRequest) (*dto.AsignacionResponse, error)
	ListarAsignaciones(ctx context.Context, turnoID uuid.UUID) ([]dto.AsignacionResponse, error)
	EditarRolAsignado(ctx context.Context, id uuid.UUID, rol string) error
	EliminarAsignacion(ctx context.Context, id uuid.UUID) error
}

type turnoService struct {
	repo        repository.TurnoRepository
	eventoRepo  repository.EventoRepository
	usuarioRepo repository.UsuarioRepository
}

func NewTurnoService(repo repository.TurnoRepository, eventoRepo repository.EventoRepository, usuarioRepo repository.UsuarioRepository) TurnoService {
	return &turnoService{repo: repo, eventoRepo: eventoRepo, usuarioRepo: usuarioRepo}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// The turno and its asignaciones are inserted in one transaction: a failure on
// any asignacion rolls back the whole thing.

func (s *turnoService) Crear(ctx context.Context, req dto.CrearTurnoRequest) (*dto.TurnoResponse, error) {
	eventoID, err := uuid.Parse(req.EventoID)
	if err != nil {
		return nil, apierror.Validation("evento_id inválido")
	}
	if _, err := s.eventoRepo.FindByID(ctx, eventoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("evento no encontrado")
		}
		return nil, apierror.Transaction("error consultando el evento", err)
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, apierror.Validation("fecha inválida, formato esperado YYYY-MM-DD")
	}
	if req.HoraFin <= req.HoraInicio {
		return nil, apierror.Validation("hora_fin debe ser posterior a hora_inicio")
	}

	turno := model.Turno{
		EventoID:   eventoID,
		Fecha:      fecha,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
	}
	vistos := make(map[uuid.UUID]bool)
	for _, a := range req.Asignaciones {
		usuarioID, err := uuid.Parse(a.UsuarioID)
		if err != nil {
			return nil, apierror.Validation("usuario_id inválido en asignaciones")
		}
		if vistos[usuarioID] {
			return nil, apierror.Conflict("el usuario ya está asignado a este turno")
		}
		vistos[usuarioID] = true
		turno.Asignaciones = append(turno.Asignaciones, model.TurnoUsuario{
			UsuarioID:   usuarioID,
			RolAsignado: strings.TrimSpace(a.RolAsignado),
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &turno); err != nil {
			return apierror.Transaction("error creando el turno", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return turnoToResponse(&turno), nil
}

// ── Listados ──────────────────────────────────────────────────────────────────

func (s *turnoService) ListarPorEvento(ctx context.Context, eventoID uuid.UUID) ([]dto.TurnoResponse, error) {
	turnos, err := s.repo.ListPorEvento(ctx, eventoID)
	if err != nil {
		return nil, apierror.Transaction("error listando turnos", err)
	}
	resp := make([]dto.TurnoResponse, 0, len(turnos))
	for i := range turnos {
		resp = append(resp, *turnoToResponse(&turnos[i]))
	}
	return resp, nil
}

func (s *turnoService) ListarAsignaciones(ctx context.Context, turnoID uuid.UUID) ([]dto.AsignacionResponse, error) {
	asigs, err := s.repo.ListAsignaciones(ctx, turnoID)
	if err != nil {
		return nil, apierror.Transaction("error listando asignaciones", err)
	}
	resp := make([]dto.AsignacionResponse, 0, len(asigs))
	for i := range asigs {
		resp = append(resp, asignacionToResponse(&asigs[i]))
	}
	return resp, nil
}

// ── Editar / Eliminar turno ───────────────────────────────────────────────────

func (s *turnoService) Editar(ctx context.Context, id uuid.UUID, req dto.EditarTurnoRequest) (*dto.TurnoResponse, error) {
	turno, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("turno no encontrado")
		}
		return nil, apierror.Transaction("error consultando el turno", err)
	}
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, apierror.Validation("fecha inválida, formato esperado YYYY-MM-DD")
	}
	if req.HoraFin <= req.HoraInicio {
		return nil, apierror.Validation("hora_fin debe ser posterior a hora_inicio")
	}

	turno.Fecha = fecha
	turno.HoraInicio = req.HoraInicio
	turno.HoraFin = req.HoraFin
	if err := s.repo.Update(ctx, turno); err != nil {
		return nil, apierror.Transaction("error actualizando el turno", err)
	}
	return turnoToResponse(turno), nil
}

// Eliminar cascades: asignaciones first, then the turno, in one transaction.
func (s *turnoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("turno no encontrado")
		}
		return apierror.Transaction("error consultando el turno", err)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteAsignacionesTx(tx, id); err != nil {
			return apierror.Transaction("error eliminando las asignaciones del turno", err)
		}
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return apierror.Transaction("error eliminando el turno", err)
		}
		return nil
	})
}

// ── Asignaciones ──────────────────────────────────────────────────────────────

func (s *turnoService) Asignar(ctx context.Context, req dto.AsignarUsuarioRequest) (*dto.AsignacionResponse, error) {
	turnoID, err := uuid.Parse(req.TurnoID)
	if err != nil {
		return nil, apierror.Validation("turno_id inválido")
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.Validation("usuario_id inválido")
	}

	if _, err := s.repo.FindByID(ctx, turnoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("turno no encontrado")
		}
		return nil, apierror.Transaction("error consultando el turno", err)
	}
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("usuario no encontrado")
		}
		return nil, apierror.Transaction("error consultando el usuario", err)
	}

	// Duplicate pair check; the composite unique index backs this up against
	// concurrent inserts.
	if _, err := s.repo.FindAsignacion(ctx, turnoID, usuarioID); err == nil {
		return nil, apierror.Conflict("el usuario ya está asignado a este turno")
	}

	a := &model.TurnoUsuario{
		TurnoID:     turnoID,
		UsuarioID:   usuarioID,
		RolAsignado: strings.TrimSpace(req.RolAsignado),
	}
	if err := s.repo.CreateAsignacion(ctx, a); err != nil {
		return nil, apierror.Transaction("error asignando el usuario al turno", err)
	}
	a.Usuario = usuario

	resp := asignacionToResponse(a)
	return &resp, nil
}

func (s *turnoService) EditarRolAsignado(ctx context.Context, id uuid.UUID, rol string) error {
	n, err := s.repo.UpdateRolAsignado(ctx, id, strings.TrimSpace(rol))
	if err != nil {
		return apierror.Transaction("error actualizando el rol asignado", err)
	}
	if n == 0 {
		return apierror.NotFound("asignación no encontrada")
	}
	return nil
}

func (s *turnoService) EliminarAsignacion(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.DeleteAsignacion(ctx, id)
	if err != nil {
		return apierror.Transaction("error eliminando la asignación", err)
	}
	if n == 0 {
		return apierror.NotFound("asignación no encontrada")
	}
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func turnoToResponse(t *model.Turno) *dto.TurnoResponse {
	return &dto.TurnoResponse{
		ID:         t.ID.String(),
		EventoID:   t.EventoID.String(),
		Fecha:      t.Fecha.Format("2006-01-02"),
		HoraInicio: t.HoraInicio,
		HoraFin:    t.HoraFin,
	}
}

func asignacionToResponse(a *model.TurnoUsuario) dto.AsignacionResponse {
	resp := dto.AsignacionResponse{
		ID:          a.ID.String(),
		TurnoID:     a.TurnoID.String(),
		UsuarioID:   a.UsuarioID.String(),
		RolAsignado: a.RolAsignado,
	}
	if a.Usuario != nil {
		resp.Nombre = strings.TrimSpace(a.Usuario.Nombre + " " + a.Usuario.PrimerApellido)
	}
	return resp
}
