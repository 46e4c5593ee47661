package repositories

import (
	"fmt"

	"inventory-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

type ListBalance struct {
	Sku      string `json:"sku"`
	Name     string `json:"name"`
	Barcode  string `json:"barcode"`
	Hub      string `json:"hub"`
	Quantity int    `json:"quantity"`
}

type SkuTotal struct {
	Sku      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ApplyMovement upserts the (sku, hub) balance with a single atomic increment
// and appends the paired log row. Run it inside a transaction so the two
// writes land together. OUT may drive the balance negative; COUNT accumulates
// like IN (legacy behavior, see DESIGN.md).
func (r *InventoryRepository) ApplyMovement(username, sku, hub, action string, qty int, comment string) error {
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	delta := qty
	if !models.IsInbound(action) {
		delta = -qty
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sku"}, {Name: "hub"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", delta),
		}),
	}).Create(&models.Inventory{Sku: sku, Hub: hub, Quantity: delta}).Error
	if err != nil {
		return err
	}

	return r.db.Create(&models.ActionLog{
		Username: username,
		Sku:      sku,
		Hub:      hub,
		Action:   action,
		Qty:      qty,
		Comment:  comment,
	}).Error
}

// GetBalance returns the current quantity for a (sku, hub), zero if no row
// exists yet.
func (r *InventoryRepository) GetBalance(sku, hub string) (int, error) {
	var inv models.Inventory
	err := r.db.Where("sku = ? AND hub = ?", sku, hub).First(&inv).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return inv.Quantity, nil
}

// GetBalances lists balance rows joined with the catalog, optionally filtered
// by hub and/or a sku prefix.
func (r *InventoryRepository) GetBalances(hub, sku string) ([]ListBalance, error) {
	sqlBalances := `select a.sku, a.hub, a.quantity,
	coalesce(b.name, '') as name, coalesce(b.barcode, '') as barcode
	from inventory a
	left join sku_info b on a.sku = b.sku
	where 1=1`

	var params []interface{}
	if hub != "" {
		sqlBalances += " and a.hub = ?"
		params = append(params, hub)
	}
	if sku != "" {
		sqlBalances += " and a.sku like ?"
		params = append(params, sku+"%")
	}
	sqlBalances += " order by a.sku, a.hub"

	var balances []ListBalance
	if err := r.db.Raw(sqlBalances, params...).Scan(&balances).Error; err != nil {
		return nil, err
	}

	return balances, nil
}

// GetBalancesForHubs lists balance rows restricted to a hub list.
func (r *InventoryRepository) GetBalancesForHubs(hubs []string, sku string) ([]ListBalance, error) {
	sqlBalances := `select a.sku, a.hub, a.quantity,
	coalesce(b.name, '') as name, coalesce(b.barcode, '') as barcode
	from inventory a
	left join sku_info b on a.sku = b.sku
	where a.hub in ?`

	params := []interface{}{hubs}
	if sku != "" {
		sqlBalances += " and a.sku like ?"
		params = append(params, sku+"%")
	}
	sqlBalances += " order by a.sku, a.hub"

	var balances []ListBalance
	if err := r.db.Raw(sqlBalances, params...).Scan(&balances).Error; err != nil {
		return nil, err
	}

	return balances, nil
}

// GetTotals sums each sku's balance across every hub.
func (r *InventoryRepository) GetTotals() ([]SkuTotal, error) {
	sqlTotals := `select sku, sum(quantity) as quantity
	from inventory
	group by sku
	order by sku`

	var totals []SkuTotal
	if err := r.db.Raw(sqlTotals).Scan(&totals).Error; err != nil {
		return nil, err
	}

	return totals, nil
}

// GetLowStock lists balances strictly below the threshold.
func (r *InventoryRepository) GetLowStock(hub string, threshold int) ([]ListBalance, error) {
	sqlLowStock := `select a.sku, a.hub, a.quantity,
	coalesce(b.name, '') as name, coalesce(b.barcode, '') as barcode
	from inventory a
	left join sku_info b on a.sku = b.sku
	where a.quantity < ?`

	params := []interface{}{threshold}
	if hub != "" {
		sqlLowStock += " and a.hub = ?"
		params = append(params, hub)
	}
	sqlLowStock += " order by a.quantity asc, a.sku"

	var balances []ListBalance
	if err := r.db.Raw(sqlLowStock, params...).Scan(&balances).Error; err != nil {
		return nil, err
	}

	return balances, nil
}
