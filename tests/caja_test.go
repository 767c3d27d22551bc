package tests

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCajaSvc() (service.CajaService, *stubCajaRepo) {
	repo := newStubCajaRepo()
	return service.NewCajaService(repo), repo
}

func TestAbrirCaja(t *testing.T) {
	svc, repo := buildCajaSvc()

	usuarioID := uuid.New()
	resp, err := svc.Abrir(context.Background(), usuarioID, dto.AbrirCajaRequest{
		MontoApertura: dec(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, "abierta", resp.Estado)
	assert.Equal(t, usuarioID.String(), resp.UsuarioID)
	assert.True(t, resp.MontoApertura.Equal(dec(5000)))
	assert.Len(t, repo.cajas, 1)
}

func TestAbrirCaja_YaExisteAbierta(t *testing.T) {
	svc, repo := buildCajaSvc()

	usuarioID := uuid.New()
	seedCajaAbierta(repo, usuarioID)

	_, err := svc.Abrir(context.Background(), usuarioID, dto.AbrirCajaRequest{MontoApertura: dec(1000)})
	assertKind(t, err, apierror.KindConflict)
	assert.Len(t, repo.cajas, 1)
}

func TestAbrirCaja_OtroUsuarioNoBloquea(t *testing.T) {
	svc, repo := buildCajaSvc()

	seedCajaAbierta(repo, uuid.New())

	_, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoApertura: dec(2000)})
	require.NoError(t, err)
	assert.Len(t, repo.cajas, 2)
}

func TestAbrirCaja_ErrorDeConsulta(t *testing.T) {
	svc, repo := buildCajaSvc()
	repo.findErr = errors.New("connection reset by peer")

	// a failed lookup must not be read as "no open caja"
	_, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{MontoApertura: dec(1000)})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apierror.Status(err))
	assert.Empty(t, repo.cajas)
}

func TestAbrirCaja_MontoNegativo(t *testing.T) {
	svc, _ := buildCajaSvc()

	_, err := svc.Abrir(context.Background(), uuid.New(), dto.AbrirCajaRequest{
		MontoApertura: decimal.NewFromInt(-100),
	})
	assertKind(t, err, apierror.KindValidation)
}

func TestCerrarCaja(t *testing.T) {
	svc, repo := buildCajaSvc()

	usuarioID := uuid.New()
	caja := seedCajaAbierta(repo, usuarioID)

	obs := "  Faltaron ₡200 en el conteo  "
	resp, err := svc.Cerrar(context.Background(), usuarioID, dto.CerrarCajaRequest{
		MontoCierre:   dec(47000),
		Observaciones: &obs,
	})
	require.NoError(t, err)
	assert.Equal(t, "cerrada", resp.Estado)
	require.NotNil(t, resp.MontoCierre)
	assert.True(t, resp.MontoCierre.Equal(dec(47000)))
	assert.Equal(t, "Faltaron ₡200 en el conteo", resp.Observaciones)
	assert.NotNil(t, resp.FechaCierre)

	stored := repo.cajas[caja.ID]
	assert.Equal(t, "cerrada", stored.Estado)
	assert.NotNil(t, stored.FechaCierre)
}

func TestCerrarCaja_SinCajaAbierta(t *testing.T) {
	svc, _ := buildCajaSvc()

	_, err := svc.Cerrar(context.Background(), uuid.New(), dto.CerrarCajaRequest{MontoCierre: dec(100)})
	assertKind(t, err, apierror.KindNotFound)
}

func TestCajaActual(t *testing.T) {
	svc, repo := buildCajaSvc()

	usuarioID := uuid.New()
	caja := seedCajaAbierta(repo, usuarioID)

	resp, err := svc.Actual(context.Background(), usuarioID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, caja.ID.String(), resp.ID)

	// no open caja is a normal answer, not an error
	resp, err = svc.Actual(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestResumenCaja(t *testing.T) {
	svc, repo := buildCajaSvc()

	usuarioID := uuid.New()
	seedCajaAbierta(repo, usuarioID)
	repo.sums = map[string]decimal.Decimal{
		"efectivo": dec(1500),
		"sinpe":    dec(700),
	}

	resp, err := svc.Resumen(context.Background(), usuarioID)
	require.NoError(t, err)
	assert.True(t, resp.Resumen.Efectivo.Equal(dec(1500)))
	assert.True(t, resp.Resumen.Sinpe.Equal(dec(700)))
	assert.True(t, resp.Resumen.Total.Equal(dec(2200)))
	assert.Equal(t, "abierta", resp.Caja.Estado)
}

func TestResumenCaja_SinVentas(t *testing.T) {
	svc, repo := buildCajaSvc()

	usuarioID := uuid.New()
	seedCajaAbierta(repo, usuarioID)

	resp, err := svc.Resumen(context.Background(), usuarioID)
	require.NoError(t, err)
	assert.True(t, resp.Resumen.Total.IsZero())
}

func TestReporteCajas_NombreUsuario(t *testing.T) {
	svc, repo := buildCajaSvc()

	usuarioID := uuid.New()
	caja := seedCajaAbierta(repo, usuarioID)
	caja.Usuario = &model.Usuario{Nombre: "Juana", PrimerApellido: "Mora"}

	items, err := svc.Reporte(context.Background(), dto.ReporteCajasFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Juana Mora", items[0].NombreUsuario)
	assert.Equal(t, caja.ID.String(), items[0].ID)
}
