package view

type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
	IsCustom  bool   `json:"is_custom"`

	UnitPriceCents int64 `json:"unit_price_cents"`
	LineTotalCents int64 `json:"line_total_cents"`

	UnitPrice Money `json:"unit_price"`
	LineTotal Money `json:"line_total"`
}

type CartPage struct {
	Items         []CartItem `json:"items"`
	Count         int        `json:"count"`
	Currency      string     `json:"currency"`
	SubtotalCents int64      `json:"subtotal_cents"`
	Subtotal      Money      `json:"subtotal"`
	TotalCents    int64      `json:"total_cents"`
	Total         Money      `json:"total"`

	// Items whose catalog product disappeared since they were added.
	RemovedItems []string `json:"removed_items,omitempty"`

	Flash *Flash `json:"flash,omitempty"`
}
