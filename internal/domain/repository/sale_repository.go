package repository

import "github.com/jhoicas/Ferreteria-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus detalles.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	// GetInfoByID devuelve la cabecera con nombres de cliente/empleado/método resueltos.
	GetInfoByID(id string) (*entity.SaleInfo, error)
	GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error)
	List(limit, offset int) ([]*entity.SaleInfo, error)
	// UpdateRefs re-apunta cliente, empleado y método de pago; las líneas son inmutables.
	UpdateRefs(sale *entity.Sale) error
	// Delete elimina la venta y sus detalles (cascada). No revierte stock.
	Delete(id string) error
}
