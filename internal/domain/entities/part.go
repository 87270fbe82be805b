package entities

// Part represents an inventory part tied to a car
type Part struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	StockQty      int     `json:"stock_qty"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price"`
	CarID         int64   `json:"car_id"`
}
