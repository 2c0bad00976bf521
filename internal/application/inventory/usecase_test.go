package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/application/inventory"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
//
// memStore guarda el estado compartido; memTxRunner toma una copia antes de
// ejecutar el callback y la restaura si falla, emulando el rollback de la
// transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	inventories map[string]*entity.Inventory // por productID
	movements   map[string]*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		inventories: make(map[string]*entity.Inventory),
		movements:   make(map[string]*entity.Movement),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.inventories {
		cp := *v
		c.inventories[k] = &cp
	}
	for k, v := range s.movements {
		cp := *v
		c.movements[k] = &cp
	}
	return c
}

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	cp := *inv
	r.s.inventories[inv.ProductID] = &cp
	return nil
}

func (r *memInventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[productID]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

// En memoria no hay filas que bloquear; el runner serializa las transacciones.
func (r *memInventoryRepo) GetForUpdateByProductID(productID string) (*entity.Inventory, error) {
	return r.GetByProductID(productID)
}

func (r *memInventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	cp := *inv
	r.s.inventories[inv.ProductID] = &cp
	return nil
}

func (r *memInventoryRepo) List(limit, offset int) ([]*entity.InventoryInfo, error) {
	var out []*entity.InventoryInfo
	for _, inv := range r.s.inventories {
		out = append(out, &entity.InventoryInfo{Inventory: *inv})
	}
	return out, nil
}

func (r *memInventoryRepo) DeleteByProductID(productID string) error {
	delete(r.s.inventories, productID)
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements[m.ID] = &cp
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovementRepo) List(limit, offset int) ([]*entity.MovementInfo, error) {
	var out []*entity.MovementInfo
	for _, m := range r.s.movements {
		out = append(out, &entity.MovementInfo{Movement: *m})
	}
	return out, nil
}

func (r *memMovementRepo) UpdateMetadata(id string, description *string, date *time.Time) error {
	m, ok := r.s.movements[id]
	if !ok {
		return domain.ErrNotFound
	}
	if description != nil {
		m.Description = *description
	}
	if date != nil {
		m.Date = *date
	}
	return nil
}

func (r *memMovementRepo) Delete(id string) error {
	delete(r.s.movements, id)
	return nil
}

func (r *memMovementRepo) SumByInventoryID(inventoryID string) (int, error) {
	sum := 0
	for _, m := range r.s.movements {
		if m.InventoryID == inventoryID {
			sum += m.Quantity
		}
	}
	return sum, nil
}

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(ctx context.Context, fn func(repository.InventoryRepository, repository.MovementRepository) error) error {
	snapshot := t.s.clone()
	if err := fn(&memInventoryRepo{s: t.s}, &memMovementRepo{s: t.s}); err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

type memProductRepo struct{ products map[string]*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error                    { return nil }
func (r *memProductRepo) Delete(id string) error                            { return nil }

type memUserRepo struct{ users map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByPersonID(personID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.PersonID == personID {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) Delete(id string) error                         { return nil }

type memTypeMovementRepo struct{ types map[string]*entity.TypeMovement }

func (r *memTypeMovementRepo) Create(tm *entity.TypeMovement) error { r.types[tm.ID] = tm; return nil }
func (r *memTypeMovementRepo) GetByID(id string) (*entity.TypeMovement, error) {
	return r.types[id], nil
}
func (r *memTypeMovementRepo) GetByCode(code string) (*entity.TypeMovement, error) {
	for _, tm := range r.types {
		if tm.Code == code {
			return tm, nil
		}
	}
	return nil, nil
}
func (r *memTypeMovementRepo) List() ([]*entity.TypeMovement, error) { return nil, nil }
func (r *memTypeMovementRepo) Update(tm *entity.TypeMovement) error  { return nil }
func (r *memTypeMovementRepo) Delete(id string) error                { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	productID    = "prod-1"
	inventoryID  = "inv-1"
	actorUserID  = "user-1"
	inflowTypeID = "tm-entrada"
)

type fixture struct {
	store *memStore
	uc    *inventory.UseCase
}

// newFixture: un producto con stock inicial, un usuario y el tipo de entrada manual.
func newFixture(t *testing.T, initialStock int) *fixture {
	t.Helper()
	store := newMemStore()
	store.inventories[productID] = &entity.Inventory{
		ID:        inventoryID,
		ProductID: productID,
		Quantity:  initialStock,
		UpdatedAt: time.Now(),
	}
	products := &memProductRepo{products: map[string]*entity.Product{
		productID: {ID: productID, Code: "HER-001", Name: "Martillo uña 16oz"},
	}}
	users := &memUserRepo{users: map[string]*entity.User{
		actorUserID: {ID: actorUserID, PersonID: "person-1", Username: "bodeguero1", Role: entity.RoleBodeguero},
	}}
	types := &memTypeMovementRepo{types: map[string]*entity.TypeMovement{
		inflowTypeID: {ID: inflowTypeID, Code: entity.TypeMovementManualInflow, Description: "Entrada manual"},
	}}
	uc := inventory.NewUseCase(
		&memTxRunner{s: store},
		&memInventoryRepo{s: store},
		&memMovementRepo{s: store},
		products,
		users,
		types,
	)
	return &fixture{store: store, uc: uc}
}

func (f *fixture) stock(t *testing.T) int {
	t.Helper()
	inv, ok := f.store.inventories[productID]
	require.True(t, ok, "el inventario del producto debe existir")
	return inv.Quantity
}

func (f *fixture) ledgerSum(t *testing.T) int {
	t.Helper()
	repo := &memMovementRepo{s: f.store}
	sum, err := repo.SumByInventoryID(inventoryID)
	require.NoError(t, err)
	return sum
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

// Entrada: el delta positivo incrementa la existencia y deja la entrada en el libro.
func TestRegisterMovement_EntradaIncrementaStock(t *testing.T) {
	f := newFixture(t, 10)

	out, err := f.uc.RegisterMovement(context.Background(), actorUserID, dto.RegisterMovementRequest{
		ProductID:      productID,
		TypeMovementID: inflowTypeID,
		Quantity:       5,
		Description:    "reposición proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, 15, f.stock(t), "10 + 5 = 15")
	assert.Equal(t, 5, out.Quantity, "la respuesta lleva el delta con signo")
	assert.Equal(t, "Martillo uña 16oz", out.ProductName)
	assert.Equal(t, "bodeguero1", out.Username)
	assert.Equal(t, 5, f.ledgerSum(t), "la suma del libro debe reconstruir el delta aplicado")
}

// Salida exacta: dejar la existencia en cero es válido.
func TestRegisterMovement_SalidaHastaCero(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.RegisterMovement(context.Background(), actorUserID, dto.RegisterMovementRequest{
		ProductID:      productID,
		TypeMovementID: inflowTypeID,
		Quantity:       -10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.stock(t))
}

// Salida mayor a la existencia: se rechaza y NADA queda escrito.
func TestRegisterMovement_StockInsuficiente_NadaEscrito(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.RegisterMovement(context.Background(), actorUserID, dto.RegisterMovementRequest{
		ProductID:      productID,
		TypeMovementID: inflowTypeID,
		Quantity:       -11,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Martillo uña 16oz", stockErr.ProductName)
	assert.Equal(t, 10, stockErr.Available)
	assert.Equal(t, 11, stockErr.Requested)

	assert.Equal(t, 10, f.stock(t), "la existencia no debe cambiar")
	assert.Empty(t, f.store.movements, "el libro no debe tener entradas")
}

// Delta cero: no hay movimiento que registrar.
func TestRegisterMovement_DeltaCero_EntradaInvalida(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.RegisterMovement(context.Background(), actorUserID, dto.RegisterMovementRequest{
		ProductID:      productID,
		TypeMovementID: inflowTypeID,
		Quantity:       0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Referencias inexistentes: usuario, tipo, producto e inventario.
func TestRegisterMovement_ReferenciasInexistentes(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()
	valid := dto.RegisterMovementRequest{ProductID: productID, TypeMovementID: inflowTypeID, Quantity: 1}

	_, err := f.uc.RegisterMovement(ctx, "no-existe", valid)
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "usuario inexistente")

	in := valid
	in.TypeMovementID = "no-existe"
	_, err = f.uc.RegisterMovement(ctx, actorUserID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "tipo de movimiento inexistente")

	in = valid
	in.ProductID = "no-existe"
	_, err = f.uc.RegisterMovement(ctx, actorUserID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")

	// Producto real pero sin inventario aprovisionado
	delete(f.store.inventories, productID)
	_, err = f.uc.RegisterMovement(ctx, actorUserID, valid)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto sin inventario")
}

// Varios movimientos seguidos: la existencia final es la suma de los deltas.
func TestRegisterMovement_LibroReconstruyeExistencia(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	for _, delta := range []int{20, -5, 3, -8} {
		_, err := f.uc.RegisterMovement(ctx, actorUserID, dto.RegisterMovementRequest{
			ProductID:      productID,
			TypeMovementID: inflowTypeID,
			Quantity:       delta,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 10, f.stock(t))
	assert.Equal(t, f.stock(t), f.ledgerSum(t),
		"la suma de los deltas del libro debe coincidir con la existencia")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateMovement / DeleteMovement
// ──────────────────────────────────────────────────────────────────────────────

func registerOne(t *testing.T, f *fixture, delta int) string {
	t.Helper()
	out, err := f.uc.RegisterMovement(context.Background(), actorUserID, dto.RegisterMovementRequest{
		ProductID:      productID,
		TypeMovementID: inflowTypeID,
		Quantity:       delta,
	})
	require.NoError(t, err)
	return out.ID
}

// Solo descripción y fecha son editables.
func TestUpdateMovement_SoloMetadatos(t *testing.T) {
	f := newFixture(t, 10)
	id := registerOne(t, f, 5)

	desc := "conteo físico"
	date := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	out, err := f.uc.UpdateMovement(context.Background(), id, dto.UpdateMovementRequest{
		Description: &desc,
		Date:        &date,
	})
	require.NoError(t, err)
	assert.Equal(t, "conteo físico", out.Description)
	assert.True(t, date.Equal(out.Date))
	assert.Equal(t, 5, out.Quantity, "la cantidad no cambia")
}

// Cambiar cantidad, producto, tipo o actor desincronizaría el libro: rechazo.
func TestUpdateMovement_CamposInmutables_Rechazados(t *testing.T) {
	f := newFixture(t, 10)
	id := registerOne(t, f, 5)
	ctx := context.Background()

	qty := 99
	_, err := f.uc.UpdateMovement(ctx, id, dto.UpdateMovementRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)

	otherProduct := "otro"
	_, err = f.uc.UpdateMovement(ctx, id, dto.UpdateMovementRequest{ProductID: &otherProduct})
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)

	otherUser := "otro"
	_, err = f.uc.UpdateMovement(ctx, id, dto.UpdateMovementRequest{UserID: &otherUser})
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)

	assert.Equal(t, 15, f.stock(t), "la existencia no debe tocarse en los rechazos")
}

// Patch vacío: no hay nada que actualizar.
func TestUpdateMovement_PatchVacio_EntradaInvalida(t *testing.T) {
	f := newFixture(t, 10)
	id := registerOne(t, f, 5)

	_, err := f.uc.UpdateMovement(context.Background(), id, dto.UpdateMovementRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Eliminar una entrada del libro NO revierte su efecto sobre la existencia.
func TestDeleteMovement_NoRevierteStock(t *testing.T) {
	f := newFixture(t, 10)
	id := registerOne(t, f, 5)
	require.Equal(t, 15, f.stock(t))

	require.NoError(t, f.uc.DeleteMovement(context.Background(), id))
	assert.Equal(t, 15, f.stock(t), "la existencia conserva el efecto del movimiento eliminado")

	err := f.uc.DeleteMovement(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound, "segunda eliminación: ya no existe")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInventory_DuplicadoRechazado(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.CreateInventory(context.Background(), dto.CreateInventoryRequest{
		ProductID: productID,
		Quantity:  3,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "a lo más un inventario por producto")
}

func TestCreateInventory_SemillaNegativaInvalida(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.CreateInventory(context.Background(), dto.CreateInventoryRequest{
		ProductID: "nuevo",
		Quantity:  -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInventory_ProductoInexistente(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.uc.CreateInventory(context.Background(), dto.CreateInventoryRequest{
		ProductID: "no-existe",
		Quantity:  0,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
