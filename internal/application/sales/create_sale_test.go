package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/application/inventory"
	"github.com/jhoicas/Ferreteria-api/internal/application/sales"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
//
// saleStore guarda el estado compartido; el runner toma una copia antes del
// callback y la restaura si falla, emulando el rollback de la transacción.
// Las transacciones se ejecutan serializadas, como lo harían en PostgreSQL
// con el bloqueo de fila sobre el inventario.
// ──────────────────────────────────────────────────────────────────────────────

type saleStore struct {
	inventories map[string]*entity.Inventory // por productID
	movements   map[string]*entity.Movement
	sales       map[string]*entity.Sale
	details     map[string][]*entity.SaleDetail // por saleID
}

func newSaleStore() *saleStore {
	return &saleStore{
		inventories: make(map[string]*entity.Inventory),
		movements:   make(map[string]*entity.Movement),
		sales:       make(map[string]*entity.Sale),
		details:     make(map[string][]*entity.SaleDetail),
	}
}

func (s *saleStore) clone() *saleStore {
	c := newSaleStore()
	for k, v := range s.inventories {
		cp := *v
		c.inventories[k] = &cp
	}
	for k, v := range s.movements {
		cp := *v
		c.movements[k] = &cp
	}
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	for k, list := range s.details {
		for _, d := range list {
			cp := *d
			c.details[k] = append(c.details[k], &cp)
		}
	}
	return c
}

type invRepo struct{ s *saleStore }

func (r *invRepo) Create(inv *entity.Inventory) error {
	cp := *inv
	r.s.inventories[inv.ProductID] = &cp
	return nil
}
func (r *invRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[productID]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}
func (r *invRepo) GetForUpdateByProductID(productID string) (*entity.Inventory, error) {
	return r.GetByProductID(productID)
}
func (r *invRepo) UpdateQuantity(inv *entity.Inventory) error {
	cp := *inv
	r.s.inventories[inv.ProductID] = &cp
	return nil
}
func (r *invRepo) List(limit, offset int) ([]*entity.InventoryInfo, error) { return nil, nil }
func (r *invRepo) DeleteByProductID(productID string) error {
	delete(r.s.inventories, productID)
	return nil
}

type movRepo struct{ s *saleStore }

func (r *movRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements[m.ID] = &cp
	return nil
}
func (r *movRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}
func (r *movRepo) List(limit, offset int) ([]*entity.MovementInfo, error) { return nil, nil }
func (r *movRepo) UpdateMetadata(id string, description *string, date *time.Time) error {
	return nil
}
func (r *movRepo) Delete(id string) error { return nil }
func (r *movRepo) SumByInventoryID(inventoryID string) (int, error) {
	sum := 0
	for _, m := range r.s.movements {
		if m.InventoryID == inventoryID {
			sum += m.Quantity
		}
	}
	return sum, nil
}

type saleRepo struct{ s *saleStore }

func (r *saleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}
func (r *saleRepo) CreateDetail(d *entity.SaleDetail) error {
	cp := *d
	r.s.details[d.SaleID] = append(r.s.details[d.SaleID], &cp)
	return nil
}
func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}
func (r *saleRepo) GetInfoByID(id string) (*entity.SaleInfo, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &entity.SaleInfo{Sale: *sale}, nil
}
func (r *saleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	return r.s.details[saleID], nil
}
func (r *saleRepo) List(limit, offset int) ([]*entity.SaleInfo, error) {
	var out []*entity.SaleInfo
	for _, sale := range r.s.sales {
		out = append(out, &entity.SaleInfo{Sale: *sale})
	}
	return out, nil
}
func (r *saleRepo) UpdateRefs(sale *entity.Sale) error {
	stored, ok := r.s.sales[sale.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.CustomerID = sale.CustomerID
	stored.EmployeeID = sale.EmployeeID
	stored.PaymentMethodID = sale.PaymentMethodID
	return nil
}
func (r *saleRepo) Delete(id string) error {
	delete(r.s.sales, id)
	delete(r.s.details, id)
	return nil
}

type saleTxRunner struct{ s *saleStore }

func (t *saleTxRunner) RunSale(ctx context.Context, fn func(repository.InventoryRepository, repository.MovementRepository, repository.SaleRepository) error) error {
	snapshot := t.s.clone()
	if err := fn(&invRepo{s: t.s}, &movRepo{s: t.s}, &saleRepo{s: t.s}); err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

type personRepo struct{ persons map[string]*entity.Person }

func (r *personRepo) Create(p *entity.Person) error { r.persons[p.ID] = p; return nil }
func (r *personRepo) GetByID(id string) (*entity.Person, error) {
	return r.persons[id], nil
}
func (r *personRepo) GetByIdentification(number string) (*entity.Person, error) { return nil, nil }
func (r *personRepo) List(limit, offset int) ([]*entity.Person, error)         { return nil, nil }
func (r *personRepo) Update(p *entity.Person) error                            { return nil }
func (r *personRepo) Delete(id string) error                                   { return nil }

type userRepo struct{ users map[string]*entity.User }

func (r *userRepo) Create(u *entity.User) error                     { r.users[u.ID] = u; return nil }
func (r *userRepo) GetByID(id string) (*entity.User, error)         { return r.users[id], nil }
func (r *userRepo) GetByUsername(string) (*entity.User, error)      { return nil, nil }
func (r *userRepo) List(limit, offset int) ([]*entity.User, error)  { return nil, nil }
func (r *userRepo) Delete(id string) error                          { return nil }
func (r *userRepo) GetByPersonID(personID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.PersonID == personID {
			return u, nil
		}
	}
	return nil, nil
}

type productRepo struct{ products map[string]*entity.Product }

func (r *productRepo) Create(p *entity.Product) error                    { r.products[p.ID] = p; return nil }
func (r *productRepo) GetByID(id string) (*entity.Product, error)        { return r.products[id], nil }
func (r *productRepo) GetByCode(code string) (*entity.Product, error)    { return nil, nil }
func (r *productRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *productRepo) Update(p *entity.Product) error                    { return nil }
func (r *productRepo) Delete(id string) error                            { return nil }

type paymentMethodRepo struct{ methods map[string]*entity.PaymentMethod }

func (r *paymentMethodRepo) Create(pm *entity.PaymentMethod) error { r.methods[pm.ID] = pm; return nil }
func (r *paymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	return r.methods[id], nil
}
func (r *paymentMethodRepo) List() ([]*entity.PaymentMethod, error) { return nil, nil }
func (r *paymentMethodRepo) Update(pm *entity.PaymentMethod) error  { return nil }
func (r *paymentMethodRepo) Delete(id string) error                 { return nil }

type typeMovementRepo struct{ types map[string]*entity.TypeMovement }

func (r *typeMovementRepo) Create(tm *entity.TypeMovement) error          { r.types[tm.ID] = tm; return nil }
func (r *typeMovementRepo) GetByID(id string) (*entity.TypeMovement, error) { return r.types[id], nil }
func (r *typeMovementRepo) GetByCode(code string) (*entity.TypeMovement, error) {
	for _, tm := range r.types {
		if tm.Code == code {
			return tm, nil
		}
	}
	return nil, nil
}
func (r *typeMovementRepo) List() ([]*entity.TypeMovement, error) { return nil, nil }
func (r *typeMovementRepo) Update(tm *entity.TypeMovement) error  { return nil }
func (r *typeMovementRepo) Delete(id string) error                { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	customerID   = "person-cliente"
	employeeID   = "person-empleado"
	sellerUserID = "user-vendedor"
	cashID       = "pm-efectivo"
	saleTypeID   = "tm-salida-venta"

	hammerID = "prod-martillo"
	screwID  = "prod-tornillos"
)

type saleFixture struct {
	store    *saleStore
	uc       *sales.UseCase
	types    *typeMovementRepo
	users    *userRepo
	products *productRepo
	methods  *paymentMethodRepo
}

// newSaleFixture: cliente, empleado vendedor con cuenta, efectivo, tipo
// SALIDA_VENTA y dos productos con inventario.
func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	store := newSaleStore()
	store.inventories[hammerID] = &entity.Inventory{ID: "inv-martillo", ProductID: hammerID, Quantity: 10}
	store.inventories[screwID] = &entity.Inventory{ID: "inv-tornillos", ProductID: screwID, Quantity: 50}

	persons := &personRepo{persons: map[string]*entity.Person{
		customerID: {ID: customerID, FirstName: "Carlos", LastName: "Pérez", Kind: "cliente"},
		employeeID: {ID: employeeID, FirstName: "Ana", LastName: "Gómez", Kind: "empleado"},
	}}
	users := &userRepo{users: map[string]*entity.User{
		sellerUserID: {ID: sellerUserID, PersonID: employeeID, Username: "agomez", Role: entity.RoleVendedor},
	}}
	products := &productRepo{products: map[string]*entity.Product{
		hammerID: {
			ID: hammerID, Code: "HER-001", Name: "Martillo uña 16oz",
			Price:   decimal.RequireFromString("29000"),
			TaxRate: decimal.RequireFromString("0.19"),
		},
		screwID: {
			ID: screwID, Code: "TOR-001", Name: "Tornillo drywall 6x1 caja x100",
			Price:   decimal.RequireFromString("7500"),
			TaxRate: decimal.RequireFromString("0.19"),
		},
	}}
	methods := &paymentMethodRepo{methods: map[string]*entity.PaymentMethod{
		cashID: {ID: cashID, Description: "Efectivo"},
	}}
	types := &typeMovementRepo{types: map[string]*entity.TypeMovement{
		saleTypeID: {ID: saleTypeID, Code: entity.TypeMovementSaleOutflow, Description: "Salida por venta"},
	}}

	// El registrador de stock es el caso de uso de inventario real:
	// RegisterOutflowInTx opera exclusivamente sobre los repos de la transacción.
	stock := inventory.NewUseCase(nil, nil, nil, nil, nil, nil)

	uc := sales.NewUseCase(
		&saleTxRunner{s: store},
		stock,
		&saleRepo{s: store},
		persons,
		users,
		products,
		methods,
		types,
	)
	return &saleFixture{store: store, uc: uc, types: types, users: users, products: products, methods: methods}
}

func (f *saleFixture) stock(productID string) int {
	return f.store.inventories[productID].Quantity
}

func validRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		CustomerID:      customerID,
		EmployeeID:      employeeID,
		PaymentMethodID: cashID,
		Items: []dto.SaleItemRequest{
			{ProductID: hammerID, Quantity: 3},
			{ProductID: screwID, Quantity: 2},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// La venta descuenta el stock de cada línea, deja un movimiento SALIDA_VENTA
// por línea a nombre de la cuenta del empleado y calcula el total sin IVA.
func TestCreateSale_DescuentaStockYRegistraMovimientos(t *testing.T) {
	f := newSaleFixture(t)

	out, err := f.uc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 7, f.stock(hammerID), "10 - 3 = 7")
	assert.Equal(t, 48, f.stock(screwID), "50 - 2 = 48")

	// Total = 3×29000 + 2×7500 = 102000 (el IVA se guarda por línea, no se suma)
	assert.True(t, decimal.RequireFromString("102000").Equal(out.Total),
		"total esperado 102000, obtenido %s", out.Total)

	require.Len(t, out.Details, 2)
	assert.True(t, decimal.RequireFromString("29000").Equal(out.Details[0].UnitPrice),
		"la línea lleva la instantánea del precio")
	assert.True(t, decimal.RequireFromString("0.19").Equal(out.Details[0].TaxRate))

	require.Len(t, f.store.movements, 2, "un movimiento por línea")
	for _, m := range f.store.movements {
		assert.Equal(t, saleTypeID, m.TypeMovementID, "tipo SALIDA_VENTA")
		assert.Equal(t, sellerUserID, m.UserID, "actor: la cuenta del empleado que vende")
		assert.Negative(t, m.Quantity, "las salidas son deltas negativos")
	}

	assert.Equal(t, "Carlos Pérez", out.CustomerName)
	assert.Equal(t, "Ana Gómez", out.EmployeeName)
	assert.Equal(t, "Efectivo", out.PaymentMethod)
}

// Total de referencia: 2 unidades a 10.00 más 1 unidad a 5.00 suman 25.00.
func TestCreateSale_TotalSinIVA(t *testing.T) {
	f := newSaleFixture(t)
	f.products.products[hammerID].Price = decimal.RequireFromString("10.00")
	f.products.products[screwID].Price = decimal.RequireFromString("5.00")

	in := validRequest()
	in.Items[0].Quantity = 2 // martillos a 10.00
	in.Items[1].Quantity = 1 // tornillos a 5.00

	out, err := f.uc.CreateSale(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("25.00").Equal(out.Total),
		"total esperado 25.00, obtenido %s", out.Total)
}

// Leer la misma venta dos veces sin escrituras intermedias da resultados iguales.
func TestGetSale_LecturasIdempotentes(t *testing.T) {
	f := newSaleFixture(t)
	created, err := f.uc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)

	first, err := f.uc.GetSale(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := f.uc.GetSale(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Cambiar el precio del producto después de vender no altera las líneas guardadas.
func TestCreateSale_InstantaneaDePrecioInmune(t *testing.T) {
	f := newSaleFixture(t)

	out, err := f.uc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)

	f.products.products[hammerID].Price = decimal.RequireFromString("35000")

	stored := f.store.details[out.ID]
	require.NotEmpty(t, stored)
	assert.True(t, decimal.RequireFromString("29000").Equal(stored[0].UnitPrice),
		"el precio de la línea es la instantánea al momento de la venta")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale — atomicidad y rechazos
// ──────────────────────────────────────────────────────────────────────────────

// Si la segunda línea no tiene stock, NADA queda escrito: ni venta, ni líneas,
// ni movimientos, y el stock de la primera línea se conserva.
func TestCreateSale_StockInsuficiente_TodoRevertido(t *testing.T) {
	f := newSaleFixture(t)

	in := validRequest()
	in.Items[1].Quantity = 51 // tornillos: solo hay 50

	_, err := f.uc.CreateSale(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Tornillo drywall 6x1 caja x100", stockErr.ProductName)
	assert.Equal(t, 50, stockErr.Available)
	assert.Equal(t, 51, stockErr.Requested)

	assert.Equal(t, 10, f.stock(hammerID), "la primera línea también se revierte")
	assert.Equal(t, 50, f.stock(screwID))
	assert.Empty(t, f.store.sales, "sin venta")
	assert.Empty(t, f.store.details, "sin líneas")
	assert.Empty(t, f.store.movements, "sin movimientos")
}

// Vender la última unidad dos veces: la primera venta pasa, la segunda se
// rechaza porque la existencia quedó en cero.
func TestCreateSale_UltimaUnidad_SegundaVentaRechazada(t *testing.T) {
	f := newSaleFixture(t)
	f.store.inventories[hammerID].Quantity = 1

	in := dto.CreateSaleRequest{
		CustomerID:      customerID,
		EmployeeID:      employeeID,
		PaymentMethodID: cashID,
		Items:           []dto.SaleItemRequest{{ProductID: hammerID, Quantity: 1}},
	}

	_, err := f.uc.CreateSale(context.Background(), in)
	require.NoError(t, err, "la primera venta se lleva la última unidad")
	assert.Equal(t, 0, f.stock(hammerID))

	_, err = f.uc.CreateSale(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "la segunda venta no tiene unidades")
	assert.Len(t, f.store.sales, 1, "solo la primera venta quedó escrita")
}

// Sin el tipo SALIDA_VENTA configurado no se puede vender: error de instalación.
func TestCreateSale_SinTipoSalidaVenta_ErrorConfiguracion(t *testing.T) {
	f := newSaleFixture(t)
	delete(f.types.types, saleTypeID)

	_, err := f.uc.CreateSale(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrConfiguracion)
	assert.Equal(t, 10, f.stock(hammerID), "nada escrito")
}

// El empleado referenciado debe ser de tipo empleado.
func TestCreateSale_EmpleadoNoEsEmpleado(t *testing.T) {
	f := newSaleFixture(t)

	in := validRequest()
	in.EmployeeID = customerID // es un cliente

	_, err := f.uc.CreateSale(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El empleado sin cuenta de usuario no puede figurar como actor de movimientos.
func TestCreateSale_EmpleadoSinCuenta(t *testing.T) {
	f := newSaleFixture(t)
	delete(f.users.users, sellerUserID)

	_, err := f.uc.CreateSale(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Validaciones del carrito: vacío o con cantidades no positivas.
func TestCreateSale_CarritoInvalido(t *testing.T) {
	f := newSaleFixture(t)
	ctx := context.Background()

	in := validRequest()
	in.Items = nil
	_, err := f.uc.CreateSale(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "carrito vacío")

	in = validRequest()
	in.Items[0].Quantity = 0
	_, err = f.uc.CreateSale(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	in = validRequest()
	in.Items[0].Quantity = -2
	_, err = f.uc.CreateSale(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateSale / DeleteSale
// ──────────────────────────────────────────────────────────────────────────────

// Las líneas de una venta son inmutables: Items presente en el PATCH se rechaza.
func TestUpdateSale_ItemsPresentes_Rechazo(t *testing.T) {
	f := newSaleFixture(t)
	out, err := f.uc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.uc.UpdateSale(context.Background(), out.ID, dto.UpdateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: hammerID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}

// Re-apuntar el método de pago no toca total, líneas ni stock.
func TestUpdateSale_ReapuntaMetodoPago(t *testing.T) {
	f := newSaleFixture(t)
	out, err := f.uc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)

	cardID := "pm-tarjeta"
	f.methods.methods[cardID] = &entity.PaymentMethod{ID: cardID, Description: "Tarjeta débito"}

	updated, err := f.uc.UpdateSale(context.Background(), out.ID, dto.UpdateSaleRequest{
		PaymentMethodID: &cardID,
	})
	require.NoError(t, err)
	assert.Equal(t, cardID, updated.PaymentMethodID)
	assert.True(t, out.Total.Equal(updated.Total), "el total no cambia")
	assert.Equal(t, 7, f.stock(hammerID), "el stock no cambia")
}

// PATCH sin ningún campo: no hay nada que actualizar.
func TestUpdateSale_PatchVacio(t *testing.T) {
	f := newSaleFixture(t)
	out, err := f.uc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.uc.UpdateSale(context.Background(), out.ID, dto.UpdateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Eliminar la venta no devuelve el stock vendido ni borra los movimientos.
func TestDeleteSale_NoRevierteStock(t *testing.T) {
	f := newSaleFixture(t)
	out, err := f.uc.CreateSale(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, 7, f.stock(hammerID))

	require.NoError(t, f.uc.DeleteSale(context.Background(), out.ID))

	assert.Equal(t, 7, f.stock(hammerID), "el stock conserva la salida")
	assert.Len(t, f.store.movements, 2, "el libro conserva la historia")
	assert.Empty(t, f.store.sales)

	err = f.uc.DeleteSale(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
