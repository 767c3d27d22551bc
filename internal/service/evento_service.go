package service

import (
	"context"
	"errors"
	"time"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventoService interface {
	Crear(ctx context.Context, req dto.CrearEventoRequest) (*dto.EventoResponse, error)
	Listar(ctx context.Context) ([]dto.EventoResponse, error)
	Activo(ctx context.Context) (*dto.EventoResponse, error)
	Editar(ctx context.Context, id uuid.UUID, req dto.EditarEventoRequest) (*dto.EventoResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type eventoService struct {
	repo repository.EventoRepository
}

func NewEventoService(repo repository.EventoRepository) EventoService {
	return &eventoService{repo: repo}
}

func (s *eventoService) Crear(ctx context.Context, req dto.CrearEventoRequest) (*dto.EventoResponse, error) {
	inicio, fin, err := parseRangoFechas(req.FechaInicio, req.FechaFin)
	if err != nil {
		return nil, err
	}

	e := &model.Evento{
		Nombre:      req.Nombre,
		FechaInicio: inicio,
		FechaFin:    fin,
		Estado:      "activo",
	}
	if req.Descripcion != nil {
		e.Descripcion = *req.Descripcion
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apierror.Transaction("error creando el evento", err)
	}
	return eventoToResponse(e), nil
}

func (s *eventoService) Listar(ctx context.Context) ([]dto.EventoResponse, error) {
	eventos, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Transaction("error listando eventos", err)
	}
	resp := make([]dto.EventoResponse, 0, len(eventos))
	for i := range eventos {
		resp = append(resp, *eventoToResponse(&eventos[i]))
	}
	return resp, nil
}

// Activo returns the active evento whose date range covers today.
func (s *eventoService) Activo(ctx context.Context) (*dto.EventoResponse, error) {
	e, err := s.repo.FindActivo(ctx, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("no hay un evento activo")
		}
		return nil, apierror.Transaction("error consultando el evento activo", err)
	}
	return eventoToResponse(e), nil
}

func (s *eventoService) Editar(ctx context.Context, id uuid.UUID, req dto.EditarEventoRequest) (*dto.EventoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("evento no encontrado")
		}
		return nil, apierror.Transaction("error consultando el evento", err)
	}
	inicio, fin, err := parseRangoFechas(req.FechaInicio, req.FechaFin)
	if err != nil {
		return nil, err
	}

	e.Nombre = req.Nombre
	if req.Descripcion != nil {
		e.Descripcion = *req.Descripcion
	}
	e.FechaInicio = inicio
	e.FechaFin = fin
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, apierror.Transaction("error actualizando el evento", err)
	}
	return eventoToResponse(e), nil
}

func (s *eventoService) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	if estado != "activo" && estado != "inactivo" {
		return apierror.Validation("estado inválido, se esperaba activo o inactivo")
	}
	n, err := s.repo.UpdateEstado(ctx, id, estado)
	if err != nil {
		return apierror.Transaction("error cambiando el estado del evento", err)
	}
	if n == 0 {
		return apierror.NotFound("evento no encontrado")
	}
	return nil
}

func (s *eventoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apierror.Transaction("error eliminando el evento", err)
	}
	if n == 0 {
		return apierror.NotFound("evento no encontrado")
	}
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func parseRangoFechas(inicioStr, finStr string) (time.Time, time.Time, error) {
	inicio, err := time.Parse("2006-01-02", inicioStr)
	if err != nil {
		return time.Time{}, time.Time{}, apierror.Validation("fecha_inicio inválida, formato esperado YYYY-MM-DD")
	}
	fin, err := time.Parse("2006-01-02", finStr)
	if err != nil {
		return time.Time{}, time.Time{}, apierror.Validation("fecha_fin inválida, formato esperado YYYY-MM-DD")
	}
	if fin.Before(inicio) {
		return time.Time{}, time.Time{}, apierror.Validation("fecha_fin no puede ser anterior a fecha_inicio")
	}
	return inicio, fin, nil
}

func eventoToResponse(e *model.Evento) *dto.EventoResponse {
	return &dto.EventoResponse{
		ID:          e.ID.String(),
		Nombre:      e.Nombre,
		Descripcion: e.Descripcion,
		FechaInicio: e.FechaInicio.Format("2006-01-02"),
		FechaFin:    e.FechaFin.Format("2006-01-02"),
		Estado:      e.Estado,
	}
}
