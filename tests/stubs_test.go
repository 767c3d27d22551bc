package tests

// In-memory repository stubs shared by the service tests. They satisfy the
// repository interfaces with map-backed state and return gorm.ErrRecordNotFound
// exactly where the real GORM repos would.

import (
	"context"
	"time"

	"feriapos/internal/dto"
	"feriapos/internal/model"
	"feriapos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Producto ──────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, estado string) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if estado == "" || p.Estado == estado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) (int64, error) {
	p, ok := r.productos[id]
	if !ok {
		return 0, nil
	}
	p.Estado = estado
	return 1, nil
}

func (r *stubProductoRepo) DecrementarStockTx(_ *gorm.DB, id uuid.UUID, n int) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Cantidad -= n
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func seedProducto(r *stubProductoRepo, nombre string, precio float64, cantidad int) *model.Producto {
	p := &model.Producto{
		ID:          uuid.New(),
		Nombre:      nombre,
		Precio:      decimal.NewFromFloat(precio),
		Cantidad:    cantidad,
		CategoriaID: uuid.New(),
		Estado:      "activo",
	}
	r.productos[p.ID] = p
	return p
}

// ── Categoria ─────────────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) List(_ context.Context) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.categorias {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

func seedCategoria(r *stubCategoriaRepo, nombre string) *model.Categoria {
	c := &model.Categoria{ID: uuid.New(), Nombre: nombre}
	r.categorias[c.ID] = c
	return c
}

// ── Caja ──────────────────────────────────────────────────────────────────────

type stubCajaRepo struct {
	cajas map[uuid.UUID]*model.Caja
	// sums feeds SumVentasPorFormaPago for the resumen tests
	sums map[string]decimal.Decimal
	// findErr, when set, is returned from the open-caja lookup to simulate a
	// storage failure
	findErr error
}

func newStubCajaRepo() *stubCajaRepo {
	return &stubCajaRepo{cajas: make(map[uuid.UUID]*model.Caja)}
}

func (r *stubCajaRepo) Create(_ context.Context, c *model.Caja) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cajas[c.ID] = c
	return nil
}

func (r *stubCajaRepo) findAbierta(usuarioID uuid.UUID) *model.Caja {
	for _, c := range r.cajas {
		if c.UsuarioID == usuarioID && c.Estado == "abierta" {
			return c
		}
	}
	return nil
}

func (r *stubCajaRepo) FindAbiertaPorUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Caja, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if c := r.findAbierta(usuarioID); c != nil {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCajaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Caja, error) {
	c, ok := r.cajas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCajaRepo) Update(_ context.Context, c *model.Caja) error {
	r.cajas[c.ID] = c
	return nil
}

func (r *stubCajaRepo) FindAbiertaTx(_ *gorm.DB, usuarioID uuid.UUID) (*model.Caja, error) {
	if c := r.findAbierta(usuarioID); c != nil {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCajaRepo) SumVentasPorFormaPago(_ context.Context, _ uuid.UUID) (map[string]decimal.Decimal, error) {
	if r.sums != nil {
		return r.sums, nil
	}
	return map[string]decimal.Decimal{"efectivo": decimal.Zero, "sinpe": decimal.Zero}, nil
}

func (r *stubCajaRepo) Reporte(_ context.Context, filter dto.ReporteCajasFilter) ([]model.Caja, error) {
	var out []model.Caja
	for _, c := range r.cajas {
		if filter.UsuarioID != "" && c.UsuarioID.String() != filter.UsuarioID {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

func seedCajaAbierta(r *stubCajaRepo, usuarioID uuid.UUID) *model.Caja {
	c := &model.Caja{
		ID:            uuid.New(),
		UsuarioID:     usuarioID,
		MontoApertura: decimal.NewFromInt(5000),
		Estado:        "abierta",
		FechaApertura: time.Now(),
	}
	r.cajas[c.ID] = c
	return c
}

// ── Venta ─────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) ListPorCaja(_ context.Context, cajaID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.CajaID == cajaID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) ReportePorEvento(_ context.Context, eventoID uuid.UUID, desde, hasta time.Time) (*repository.ReporteEvento, error) {
	rep := &repository.ReporteEvento{
		MontoTotal:    decimal.Zero,
		TotalEfectivo: decimal.Zero,
		TotalSinpe:    decimal.Zero,
	}
	for _, v := range r.ventas {
		if v.EventoID != eventoID || v.Fecha.Before(desde) || v.Fecha.After(hasta) {
			continue
		}
		rep.TotalVentas++
		rep.MontoTotal = rep.MontoTotal.Add(v.Total)
		switch v.FormaPago {
		case "efectivo":
			rep.TotalEfectivo = rep.TotalEfectivo.Add(v.Total)
		case "sinpe":
			rep.TotalSinpe = rep.TotalSinpe.Add(v.Total)
		}
	}
	return rep, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Evento ────────────────────────────────────────────────────────────────────

type stubEventoRepo struct {
	eventos map[uuid.UUID]*model.Evento
}

func newStubEventoRepo() *stubEventoRepo {
	return &stubEventoRepo{eventos: make(map[uuid.UUID]*model.Evento)}
}

func (r *stubEventoRepo) Create(_ context.Context, e *model.Evento) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.eventos[e.ID] = e
	return nil
}

func (r *stubEventoRepo) List(_ context.Context) ([]model.Evento, error) {
	var out []model.Evento
	for _, e := range r.eventos {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEventoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Evento, error) {
	e, ok := r.eventos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEventoRepo) FindActivo(_ context.Context, hoy time.Time) (*model.Evento, error) {
	fecha := hoy.Format("2006-01-02")
	for _, e := range r.eventos {
		if e.Estado != "activo" {
			continue
		}
		if e.FechaInicio.Format("2006-01-02") <= fecha && e.FechaFin.Format("2006-01-02") >= fecha {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEventoRepo) Update(_ context.Context, e *model.Evento) error {
	r.eventos[e.ID] = e
	return nil
}

func (r *stubEventoRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) (int64, error) {
	e, ok := r.eventos[id]
	if !ok {
		return 0, nil
	}
	e.Estado = estado
	return 1, nil
}

func (r *stubEventoRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.eventos[id]; !ok {
		return 0, nil
	}
	delete(r.eventos, id)
	return 1, nil
}

var _ repository.EventoRepository = (*stubEventoRepo)(nil)

func seedEvento(r *stubEventoRepo, nombre string, inicio, fin time.Time) *model.Evento {
	e := &model.Evento{
		ID:          uuid.New(),
		Nombre:      nombre,
		FechaInicio: inicio,
		FechaFin:    fin,
		Estado:      "activo",
	}
	r.eventos[e.ID] = e
	return e
}

// ── Turno ─────────────────────────────────────────────────────────────────────

type stubTurnoRepo struct {
	turnos       map[uuid.UUID]*model.Turno
	asignaciones map[uuid.UUID]*model.TurnoUsuario
}

func newStubTurnoRepo() *stubTurnoRepo {
	return &stubTurnoRepo{
		turnos:       make(map[uuid.UUID]*model.Turno),
		asignaciones: make(map[uuid.UUID]*model.TurnoUsuario),
	}
}

func (r *stubTurnoRepo) CreateTx(_ *gorm.DB, t *model.Turno) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	for i := range t.Asignaciones {
		a := &t.Asignaciones[i]
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		a.TurnoID = t.ID
		r.asignaciones[a.ID] = a
	}
	r.turnos[t.ID] = t
	return nil
}

func (r *stubTurnoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Turno, error) {
	t, ok := r.turnos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTurnoRepo) ListPorEvento(_ context.Context, eventoID uuid.UUID) ([]model.Turno, error) {
	var out []model.Turno
	for _, t := range r.turnos {
		if t.EventoID == eventoID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTurnoRepo) Update(_ context.Context, t *model.Turno) error {
	r.turnos[t.ID] = t
	return nil
}

func (r *stubTurnoRepo) DeleteAsignacionesTx(_ *gorm.DB, turnoID uuid.UUID) error {
	for id, a := range r.asignaciones {
		if a.TurnoID == turnoID {
			delete(r.asignaciones, id)
		}
	}
	return nil
}

func (r *stubTurnoRepo) DeleteTx(_ *gorm.DB, turnoID uuid.UUID) error {
	delete(r.turnos, turnoID)
	return nil
}

func (r *stubTurnoRepo) CreateAsignacion(_ context.Context, a *model.TurnoUsuario) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.asignaciones[a.ID] = a
	return nil
}

func (r *stubTurnoRepo) FindAsignacion(_ context.Context, turnoID, usuarioID uuid.UUID) (*model.TurnoUsuario, error) {
	for _, a := range r.asignaciones {
		if a.TurnoID == turnoID && a.UsuarioID == usuarioID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTurnoRepo) FindAsignacionByID(_ context.Context, id uuid.UUID) (*model.TurnoUsuario, error) {
	a, ok := r.asignaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubTurnoRepo) ListAsignaciones(_ context.Context, turnoID uuid.UUID) ([]model.TurnoUsuario, error) {
	var out []model.TurnoUsuario
	for _, a := range r.asignaciones {
		if a.TurnoID == turnoID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubTurnoRepo) UpdateRolAsignado(_ context.Context, id uuid.UUID, rol string) (int64, error) {
	a, ok := r.asignaciones[id]
	if !ok {
		return 0, nil
	}
	a.RolAsignado = rol
	return 1, nil
}

func (r *stubTurnoRepo) DeleteAsignacion(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.asignaciones[id]; !ok {
		return 0, nil
	}
	delete(r.asignaciones, id)
	return 1, nil
}

func (r *stubTurnoRepo) DB() *gorm.DB { return nil }

var _ repository.TurnoRepository = (*stubTurnoRepo)(nil)

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindActivoPorUsuario(_ context.Context, usuario string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Usuario == usuario && u.Estado == "activo" {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindPorUsuario(_ context.Context, usuario string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Usuario == usuario {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.usuarios[id]; !ok {
		return 0, nil
	}
	delete(r.usuarios, id)
	return 1, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func seedUsuario(r *stubUsuarioRepo, usuario, rol string) *model.Usuario {
	u := &model.Usuario{
		ID:             uuid.New(),
		Nombre:         "Test",
		PrimerApellido: "Usuario",
		Usuario:        usuario,
		Rol:            rol,
		Estado:         "activo",
		FechaCreacion:  time.Now(),
	}
	r.usuarios[u.ID] = u
	return u
}
