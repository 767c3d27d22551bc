package tests

import (
	"context"
	"testing"
	"time"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTurnoSvc() (service.TurnoService, *stubTurnoRepo, *stubEventoRepo, *stubUsuarioRepo) {
	repo := newStubTurnoRepo()
	eventoRepo := newStubEventoRepo()
	usuarioRepo := newStubUsuarioRepo()
	svc := service.NewTurnoService(repo, eventoRepo, usuarioRepo)
	return svc, repo, eventoRepo, usuarioRepo
}

func TestCrearTurnoConAsignaciones(t *testing.T) {
	svc, repo, eventoRepo, usuarioRepo := buildTurnoSvc()

	evento := seedEvento(eventoRepo, "Feria agosto", time.Now(), time.Now().AddDate(0, 0, 2))
	u1 := seedUsuario(usuarioRepo, "vend1", "vendedor")
	u2 := seedUsuario(usuarioRepo, "vend2", "vendedor")

	resp, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:   evento.ID.String(),
		Fecha:      "2026-08-15",
		HoraInicio: "08:00",
		HoraFin:    "14:00",
		Asignaciones: []dto.AsignacionRequest{
			{UsuarioID: u1.ID.String(), RolAsignado: "caja"},
			{UsuarioID: u2.ID.String(), RolAsignado: "cocina"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", resp.Fecha)
	assert.Len(t, repo.turnos, 1)
	assert.Len(t, repo.asignaciones, 2)
}

func TestCrearTurno_EventoInexistente(t *testing.T) {
	svc, repo, _, _ := buildTurnoSvc()

	_, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:   uuid.New().String(),
		Fecha:      "2026-08-15",
		HoraInicio: "08:00",
		HoraFin:    "14:00",
	})
	assertKind(t, err, apierror.KindNotFound)
	assert.Empty(t, repo.turnos)
}

func TestCrearTurno_HorasInvertidas(t *testing.T) {
	svc, _, eventoRepo, _ := buildTurnoSvc()

	evento := seedEvento(eventoRepo, "Feria", time.Now(), time.Now().AddDate(0, 0, 1))

	_, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:   evento.ID.String(),
		Fecha:      "2026-08-15",
		HoraInicio: "14:00",
		HoraFin:    "08:00",
	})
	assertKind(t, err, apierror.KindValidation)
}

func TestCrearTurno_UsuarioDuplicadoEnRequest(t *testing.T) {
	svc, repo, eventoRepo, usuarioRepo := buildTurnoSvc()

	evento := seedEvento(eventoRepo, "Feria", time.Now(), time.Now().AddDate(0, 0, 1))
	u := seedUsuario(usuarioRepo, "vend1", "vendedor")

	_, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:   evento.ID.String(),
		Fecha:      "2026-08-15",
		HoraInicio: "08:00",
		HoraFin:    "14:00",
		Asignaciones: []dto.AsignacionRequest{
			{UsuarioID: u.ID.String(), RolAsignado: "caja"},
			{UsuarioID: u.ID.String(), RolAsignado: "cocina"},
		},
	})
	assertKind(t, err, apierror.KindConflict)
	assert.Empty(t, repo.turnos)
	assert.Empty(t, repo.asignaciones)
}

func TestEditarTurno(t *testing.T) {
	svc, repo, eventoRepo, usuarioRepo := buildTurnoSvc()

	evento := seedEvento(eventoRepo, "Feria", time.Now(), time.Now().AddDate(0, 0, 1))
	u := seedUsuario(usuarioRepo, "vend1", "vendedor")
	creado, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:     evento.ID.String(),
		Fecha:        "2026-08-15",
		HoraInicio:   "08:00",
		HoraFin:      "14:00",
		Asignaciones: []dto.AsignacionRequest{{UsuarioID: u.ID.String(), RolAsignado: "caja"}},
	})
	require.NoError(t, err)

	id := uuid.MustParse(creado.ID)
	resp, err := svc.Editar(context.Background(), id, dto.EditarTurnoRequest{
		Fecha:      "2026-08-16",
		HoraInicio: "10:00",
		HoraFin:    "16:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-16", resp.Fecha)
	assert.Equal(t, "10:00", repo.turnos[id].HoraInicio)
}

func TestEliminarTurno_CascadaAsignaciones(t *testing.T) {
	svc, repo, eventoRepo, usuarioRepo := buildTurnoSvc()

	evento := seedEvento(eventoRepo, "Feria", time.Now(), time.Now().AddDate(0, 0, 1))
	u1 := seedUsuario(usuarioRepo, "vend1", "vendedor")
	u2 := seedUsuario(usuarioRepo, "vend2", "vendedor")
	creado, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:   evento.ID.String(),
		Fecha:      "2026-08-15",
		HoraInicio: "08:00",
		HoraFin:    "14:00",
		Asignaciones: []dto.AsignacionRequest{
			{UsuarioID: u1.ID.String(), RolAsignado: "caja"},
			{UsuarioID: u2.ID.String(), RolAsignado: "cocina"},
		},
	})
	require.NoError(t, err)
	require.Len(t, repo.asignaciones, 2)

	require.NoError(t, svc.Eliminar(context.Background(), uuid.MustParse(creado.ID)))
	assert.Empty(t, repo.turnos)
	assert.Empty(t, repo.asignaciones)
}

func TestAsignarUsuario(t *testing.T) {
	svc, repo, eventoRepo, usuarioRepo := buildTurnoSvc()

	evento := seedEvento(eventoRepo, "Feria", time.Now(), time.Now().AddDate(0, 0, 1))
	creado, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:   evento.ID.String(),
		Fecha:      "2026-08-15",
		HoraInicio: "08:00",
		HoraFin:    "14:00",
	})
	require.NoError(t, err)

	u := seedUsuario(usuarioRepo, "vend3", "vendedor")
	resp, err := svc.Asignar(context.Background(), dto.AsignarUsuarioRequest{
		TurnoID:     creado.ID,
		UsuarioID:   u.ID.String(),
		RolAsignado: "  parrilla  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "parrilla", resp.RolAsignado)
	assert.Equal(t, "Test Usuario", resp.Nombre)
	assert.Len(t, repo.asignaciones, 1)

	// same pair again
	_, err = svc.Asignar(context.Background(), dto.AsignarUsuarioRequest{
		TurnoID:     creado.ID,
		UsuarioID:   u.ID.String(),
		RolAsignado: "caja",
	})
	assertKind(t, err, apierror.KindConflict)
	assert.Len(t, repo.asignaciones, 1)
}

func TestAsignarUsuario_TurnoInexistente(t *testing.T) {
	svc, _, _, usuarioRepo := buildTurnoSvc()

	u := seedUsuario(usuarioRepo, "vend1", "vendedor")
	_, err := svc.Asignar(context.Background(), dto.AsignarUsuarioRequest{
		TurnoID:     uuid.New().String(),
		UsuarioID:   u.ID.String(),
		RolAsignado: "caja",
	})
	assertKind(t, err, apierror.KindNotFound)
}

func TestEditarRolAsignado(t *testing.T) {
	svc, repo, eventoRepo, usuarioRepo := buildTurnoSvc()

	evento := seedEvento(eventoRepo, "Feria", time.Now(), time.Now().AddDate(0, 0, 1))
	u := seedUsuario(usuarioRepo, "vend1", "vendedor")
	creado, err := svc.Crear(context.Background(), dto.CrearTurnoRequest{
		EventoID:     evento.ID.String(),
		Fecha:        "2026-08-15",
		HoraInicio:   "08:00",
		HoraFin:      "14:00",
		Asignaciones: []dto.AsignacionRequest{{UsuarioID: u.ID.String(), RolAsignado: "caja"}},
	})
	require.NoError(t, err)

	asigs, err := svc.ListarAsignaciones(context.Background(), uuid.MustParse(creado.ID))
	require.NoError(t, err)
	require.Len(t, asigs, 1)

	asigID := uuid.MustParse(asigs[0].ID)
	require.NoError(t, svc.EditarRolAsignado(context.Background(), asigID, "cocina"))
	assert.Equal(t, "cocina", repo.asignaciones[asigID].RolAsignado)

	require.NoError(t, svc.EliminarAsignacion(context.Background(), asigID))
	assert.Empty(t, repo.asignaciones)

	err = svc.EliminarAsignacion(context.Background(), asigID)
	assertKind(t, err, apierror.KindNotFound)
}
