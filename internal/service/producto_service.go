package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"feriapos/internal/apierror"
	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// cacheKeyProductosActivos holds the JSON-encoded active product list.
// Invalidated on every catalog write.
const cacheKeyProductosActivos = "productos:activos"

const cacheTTLProductos = 5 * time.Minute

// ProductoService defines the business logic contract for the catalog.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, estado string) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
	Restaurar(ctx context.Context, id uuid.UUID) error

	ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	rdb           *redis.Client
}

func NewProductoService(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository, rdb *redis.Client) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo, rdb: rdb}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio.IsNegative() {
		return nil, apierror.Validation("precio no puede ser negativo")
	}
	categoriaID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.Validation("categoria_id inválido")
	}
	categoria, err := s.categoriaRepo.FindByID(ctx, categoriaID)
	if err != nil {
		return nil, apierror.Validation("la categoría indicada no existe")
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		Cantidad:    req.Cantidad,
		CategoriaID: categoriaID,
		ImagenURL:   req.ImagenURL,
		Estado:      "activo",
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Transaction("error creando el producto", err)
	}
	p.Categoria = categoria

	s.invalidateCache(ctx)
	return productoToResponse(p), nil
}

// ── ObtenerPorID ──────────────────────────────────────────────────────────────

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, apierror.Transaction("error consultando el producto", err)
	}
	return productoToResponse(p), nil
}

// ── Listar ────────────────────────────────────────────────────────────────────
// The active list is the hot path (every POS screen load), so it is served
// from redis when possible.

func (s *productoService) Listar(ctx context.Context, estado string) ([]dto.ProductoResponse, error) {
	if estado != "" && estado != "activo" && estado != "inactivo" {
		return nil, apierror.Validation("estado inválido, se esperaba activo o inactivo")
	}

	if estado == "activo" && s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKeyProductosActivos).Bytes(); err == nil {
			var resp []dto.ProductoResponse
			if json.Unmarshal(cached, &resp) == nil {
				return resp, nil
			}
		}
	}

	productos, err := s.repo.List(ctx, estado)
	if err != nil {
		return nil, apierror.Transaction("error listando productos", err)
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}

	if estado == "activo" && s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, cacheKeyProductosActivos, data, cacheTTLProductos)
		}
	}
	return resp, nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────
// Patch semantics: only fields present in the request change. imagen_url is
// replaced only when a new one is supplied.

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto no encontrado")
		}
		return nil, apierror.Transaction("error consultando el producto", err)
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, apierror.Validation("precio no puede ser negativo")
		}
		p.Precio = *req.Precio
	}
	if req.Cantidad != nil {
		p.Cantidad = *req.Cantidad
	}
	if req.CategoriaID != nil {
		categoriaID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.Validation("categoria_id inválido")
		}
		categoria, err := s.categoriaRepo.FindByID(ctx, categoriaID)
		if err != nil {
			return nil, apierror.Validation("la categoría indicada no existe")
		}
		p.CategoriaID = categoriaID
		p.Categoria = categoria
	}
	if req.ImagenURL != nil {
		p.ImagenURL = req.ImagenURL
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Transaction("error actualizando el producto", err)
	}

	s.invalidateCache(ctx)
	return productoToResponse(p), nil
}

// ── Desactivar / Restaurar ────────────────────────────────────────────────────
// Status flips, idempotent: flipping to the current state is not an error.

func (s *productoService) Desactivar(ctx context.Context, id uuid.UUID) error {
	return s.cambiarEstado(ctx, id, "inactivo")
}

func (s *productoService) Restaurar(ctx context.Context, id uuid.UUID) error {
	return s.cambiarEstado(ctx, id, "activo")
}

func (s *productoService) cambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	n, err := s.repo.UpdateEstado(ctx, id, estado)
	if err != nil {
		return apierror.Transaction("error cambiando el estado del producto", err)
	}
	if n == 0 {
		return apierror.NotFound("producto no encontrado")
	}
	s.invalidateCache(ctx)
	return nil
}

// ── Categorias ────────────────────────────────────────────────────────────────

func (s *productoService) ListarCategorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.categoriaRepo.List(ctx)
	if err != nil {
		return nil, apierror.Transaction("error listando categorías", err)
	}
	resp := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		resp = append(resp, dto.CategoriaResponse{ID: c.ID.String(), Nombre: c.Nombre})
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *productoService) invalidateCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, cacheKeyProductosActivos)
	}
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Cantidad:    p.Cantidad,
		CategoriaID: p.CategoriaID.String(),
		ImagenURL:   p.ImagenURL,
		Estado:      p.Estado,
	}
	if p.Categoria != nil {
		resp.Categoria = p.Categoria.Nombre
	}
	return resp
}
