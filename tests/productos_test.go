package tests

import (
	"context"
	"testing"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductoSvc() (service.ProductoService, *stubProductoRepo, *stubCategoriaRepo) {
	repo := newStubProductoRepo()
	categoriaRepo := newStubCategoriaRepo()
	svc := service.NewProductoService(repo, categoriaRepo, nil)
	return svc, repo, categoriaRepo
}

func TestCrearProducto(t *testing.T) {
	svc, repo, categoriaRepo := buildProductoSvc()
	cat := seedCategoria(categoriaRepo, "Platos fuertes")

	desc := "Casado tradicional con pollo"
	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "Casado con pollo",
		Descripcion: &desc,
		Precio:      dec(2500),
		Cantidad:    30,
		CategoriaID: cat.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "activo", resp.Estado)
	assert.Equal(t, "Platos fuertes", resp.Categoria)
	assert.Equal(t, 30, resp.Cantidad)
	assert.Len(t, repo.productos, 1)
}

func TestCrearProducto_CategoriaInexistente(t *testing.T) {
	svc, repo, _ := buildProductoSvc()

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "Huérfano",
		Precio:      dec(100),
		CategoriaID: uuid.New().String(),
	})
	assertKind(t, err, apierror.KindValidation)
	assert.Empty(t, repo.productos)
}

func TestCrearProducto_PrecioNegativo(t *testing.T) {
	svc, _, categoriaRepo := buildProductoSvc()
	cat := seedCategoria(categoriaRepo, "Bebidas")

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:      "Refresco",
		Precio:      decimal.NewFromInt(-50),
		CategoriaID: cat.ID.String(),
	})
	assertKind(t, err, apierror.KindValidation)
}

func TestListarProductos_EstadoInvalido(t *testing.T) {
	svc, _, _ := buildProductoSvc()

	_, err := svc.Listar(context.Background(), "eliminado")
	assertKind(t, err, apierror.KindValidation)
}

func TestListarProductos_FiltroPorEstado(t *testing.T) {
	svc, repo, _ := buildProductoSvc()

	seedProducto(repo, "Activo A", 100, 1)
	inactivo := seedProducto(repo, "Inactivo B", 200, 1)
	inactivo.Estado = "inactivo"

	activos, err := svc.Listar(context.Background(), "activo")
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "Activo A", activos[0].Nombre)

	todos, err := svc.Listar(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestActualizarProducto_Patch(t *testing.T) {
	svc, repo, _ := buildProductoSvc()

	p := seedProducto(repo, "Empanada", 800, 10)
	imagen := "empanada.jpg"
	p.ImagenURL = &imagen

	nuevoPrecio := dec(900)
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)

	// untouched fields survive, including the imagen
	assert.Equal(t, "Empanada", resp.Nombre)
	assert.Equal(t, 10, resp.Cantidad)
	require.NotNil(t, resp.ImagenURL)
	assert.Equal(t, "empanada.jpg", *resp.ImagenURL)
	assert.True(t, repo.productos[p.ID].Precio.Equal(dec(900)))
}

func TestActualizarProducto_CambioCategoria(t *testing.T) {
	svc, repo, categoriaRepo := buildProductoSvc()

	p := seedProducto(repo, "Empanada", 800, 10)
	cat := seedCategoria(categoriaRepo, "Boquitas")

	catID := cat.ID.String()
	resp, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		CategoriaID: &catID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Boquitas", resp.Categoria)

	malo := uuid.New().String()
	_, err = svc.Actualizar(context.Background(), p.ID, dto.ActualizarProductoRequest{
		CategoriaID: &malo,
	})
	assertKind(t, err, apierror.KindValidation)
}

func TestActualizarProducto_NoExiste(t *testing.T) {
	svc, _, _ := buildProductoSvc()

	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarProductoRequest{})
	assertKind(t, err, apierror.KindNotFound)
}

func TestDesactivarRestaurarProducto(t *testing.T) {
	svc, repo, _ := buildProductoSvc()

	p := seedProducto(repo, "Tamal", 1200, 5)

	require.NoError(t, svc.Desactivar(context.Background(), p.ID))
	assert.Equal(t, "inactivo", repo.productos[p.ID].Estado)

	require.NoError(t, svc.Restaurar(context.Background(), p.ID))
	assert.Equal(t, "activo", repo.productos[p.ID].Estado)
}

func TestDesactivarProducto_NoExiste(t *testing.T) {
	svc, _, _ := buildProductoSvc()

	err := svc.Desactivar(context.Background(), uuid.New())
	assertKind(t, err, apierror.KindNotFound)
}

func TestListarCategorias(t *testing.T) {
	svc, _, categoriaRepo := buildProductoSvc()

	seedCategoria(categoriaRepo, "Platos fuertes")
	seedCategoria(categoriaRepo, "Bebidas")

	categorias, err := svc.ListarCategorias(context.Background())
	require.NoError(t, err)
	assert.Len(t, categorias, 2)
}
