package repositories

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db}
}

type ShipmentLine struct {
	Sku string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"required,gt=0"`
}

// RecordShipment writes, for every line, the shipment row, the IN balance
// upsert and the SUPPLIER-IN log entry inside one transaction. Either the
// whole declaration lands or none of it does.
func (r *ShipmentRepository) RecordShipment(supplier, tracking, carrier, shipDate, hub, notes string, lines []ShipmentLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		invRepo := NewInventoryRepository(tx)

		for _, line := range lines {
			shipment := models.Shipment{
				Supplier: supplier,
				Tracking: tracking,
				Carrier:  carrier,
				ShipDate: shipDate,
				Hub:      hub,
				Sku:      line.Sku,
				Qty:      line.Qty,
			}
			if err := tx.Create(&shipment).Error; err != nil {
				return err
			}

			comment := "Tracking: " + tracking + ", Carrier: " + carrier + ", Date: " + shipDate
			if notes != "" {
				comment += ", Notes: " + notes
			}
			if err := invRepo.ApplyMovement(supplier, line.Sku, hub, models.ActionSupplierIn, line.Qty, comment); err != nil {
				return err
			}
		}

		return nil
	})
}

type ShipmentFilter struct {
	Hub       string
	Hubs      []string
	Supplier  string
	StartDate string
	EndDate   string
}

// GetShipments lists shipment rows newest first with any combination of
// date-range, hub and supplier filters.
func (r *ShipmentRepository) GetShipments(filter ShipmentFilter) ([]models.Shipment, error) {
	query := r.db.Order("timestamp desc, id desc")

	if filter.Hub != "" {
		query = query.Where("hub = ?", filter.Hub)
	}
	if len(filter.Hubs) > 0 {
		query = query.Where("hub IN ?", filter.Hubs)
	}
	if filter.Supplier != "" {
		query = query.Where("supplier = ?", filter.Supplier)
	}
	if filter.StartDate != "" {
		query = query.Where("date(ship_date) >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date(ship_date) <= ?", filter.EndDate)
	}

	var shipments []models.Shipment
	if err := query.Find(&shipments).Error; err != nil {
		return nil, err
	}
	return shipments, nil
}
