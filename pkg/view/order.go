package view

import "time"

type OrderLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
	UnitPrice Money  `json:"unit_price"`
	LineTotal Money  `json:"line_total"`
	IsCustom  bool   `json:"is_custom"`
	ImageURL  string `json:"image_url,omitempty"`
}

type OrderSummary struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Total         Money     `json:"total"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderDetail struct {
	ID            string      `json:"id"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	PaymentMethod string      `json:"payment_method"`
	Lines         []OrderLine `json:"lines"`
	Total         Money       `json:"total"`
	Address       Address     `json:"address"`
	Notes         string      `json:"notes,omitempty"`
	AdminNotes    string      `json:"admin_notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	CanCancel     bool        `json:"can_cancel"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}
