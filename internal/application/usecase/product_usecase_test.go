package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ferreteria-api/internal/application/dto"
	"github.com/jhoicas/Ferreteria-api/internal/application/usecase"
	"github.com/jhoicas/Ferreteria-api/internal/domain"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
)

type memProductRepo struct{ products map[string]*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(p *entity.Product) error                    { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Delete(id string) error                            { delete(r.products, id); return nil }

type memCategoryRepo struct{ categories map[string]*entity.Category }

func (r *memCategoryRepo) Create(c *entity.Category) error             { r.categories[c.ID] = c; return nil }
func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) { return r.categories[id], nil }
func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	return nil, nil
}
func (r *memCategoryRepo) Update(c *entity.Category) error { return nil }
func (r *memCategoryRepo) Delete(id string) error          { return nil }

const categoryID = "cat-herramientas"

func newProductUC() *usecase.ProductUseCase {
	products := &memProductRepo{products: make(map[string]*entity.Product)}
	categories := &memCategoryRepo{categories: map[string]*entity.Category{
		categoryID: {ID: categoryID, Description: "Herramientas"},
	}}
	return usecase.NewProductUseCase(products, categories)
}

func validProduct() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:       "HER-001",
		Name:       "Martillo uña 16oz",
		CategoryID: categoryID,
		Cost:       decimal.RequireFromString("18000"),
		Price:      decimal.RequireFromString("29000"),
		TaxRate:    decimal.RequireFromString("0.19"),
	}
}

// Las tarifas de IVA aceptadas son las fracciones colombianas: 0, 0.05 y 0.19.
func TestProductCreate_TarifasIVA(t *testing.T) {
	uc := newProductUC()

	for i, rate := range []string{"0", "0.05", "0.19"} {
		in := validProduct()
		in.Code = in.Code + string(rune('A'+i))
		in.TaxRate = decimal.RequireFromString(rate)
		_, err := uc.Create(in)
		assert.NoError(t, err, "tarifa %s debe aceptarse", rate)
	}

	for _, rate := range []string{"0.16", "19", "0.1", "-0.05"} {
		in := validProduct()
		in.Code = "X-" + rate
		in.TaxRate = decimal.RequireFromString(rate)
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tarifa %s debe rechazarse", rate)
	}
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := newProductUC()

	_, err := uc.Create(validProduct())
	require.NoError(t, err)

	_, err = uc.Create(validProduct())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc := newProductUC()

	in := validProduct()
	in.CategoryID = "no-existe"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_PrecioNegativoRechazado(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(validProduct())
	require.NoError(t, err)

	negative := decimal.RequireFromString("-1")
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByCode(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Create(validProduct())
	require.NoError(t, err)

	out, err := uc.GetByCode("HER-001")
	require.NoError(t, err)
	assert.Equal(t, "Martillo uña 16oz", out.Name)

	_, err = uc.GetByCode("NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
