// seed crea los datos mínimos para arrancar en desarrollo: una cuenta
// administradora y un catálogo pequeño de categorías, productos e inventarios.
//
// Uso: SEED_ADMIN_PASSWORD=... go run ./cmd/seed
// Idempotente: si el usuario admin ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/Ferreteria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ferreteria-api/pkg/config"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD es requerida")
		os.Exit(2)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	personRepo := postgres.NewPersonRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	existing, err := userRepo.GetByUsername("admin")
	if err != nil {
		fail("consultar usuario admin", err)
	}
	if existing != nil {
		fmt.Println("usuario admin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña", err)
	}

	admin := &entity.Person{
		ID:                   uuid.New().String(),
		FirstName:            "Administrador",
		IdentificationType:   "CC",
		IdentificationNumber: "0000000000",
		Email:                "admin@ferreteria.local",
		Kind:                 "empleado",
	}
	if err := personRepo.Create(admin); err != nil {
		fail("crear persona admin", err)
	}
	if err := userRepo.Create(&entity.User{
		ID:           uuid.New().String(),
		PersonID:     admin.ID,
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}); err != nil {
		fail("crear usuario admin", err)
	}

	categories := map[string]*entity.Category{
		"Tornillería":  {ID: uuid.New().String(), Description: "Tornillería"},
		"Pinturas":     {ID: uuid.New().String(), Description: "Pinturas"},
		"Herramientas": {ID: uuid.New().String(), Description: "Herramientas"},
	}
	for _, cat := range categories {
		if err := categoryRepo.Create(cat); err != nil {
			fail("crear categoría", err)
		}
	}

	type sample struct {
		code, name, category string
		cost, price          string
		taxRate              string
		minQty, stock        int
	}
	samples := []sample{
		{"TOR-001", "Tornillo drywall 6x1 caja x100", "Tornillería", "4500", "7500", "0.19", 10, 120},
		{"PIN-001", "Pintura vinilo blanco galón", "Pinturas", "38000", "55000", "0.19", 5, 24},
		{"HER-001", "Martillo uña 16oz", "Herramientas", "18000", "29000", "0.19", 3, 15},
		{"HER-002", "Flexómetro 5m", "Herramientas", "6000", "11000", "0.19", 5, 30},
	}
	now := time.Now()
	for _, s := range samples {
		product := &entity.Product{
			ID:          uuid.New().String(),
			Code:        s.code,
			Name:        s.name,
			CategoryID:  categories[s.category].ID,
			MinQuantity: s.minQty,
			Cost:        decimal.RequireFromString(s.cost),
			Price:       decimal.RequireFromString(s.price),
			TaxRate:     decimal.RequireFromString(s.taxRate),
		}
		if err := productRepo.Create(product); err != nil {
			fail("crear producto "+s.code, err)
		}
		if err := inventoryRepo.Create(&entity.Inventory{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  s.stock,
			UpdatedAt: now,
		}); err != nil {
			fail("crear inventario "+s.code, err)
		}
	}

	fmt.Println("datos de arranque creados: usuario admin, 3 categorías, 4 productos")
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
