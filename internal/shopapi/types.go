package shopapi

import "time"

// Prices are integer cents end to end.

type ImageRef struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
}

type CategoryRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type SizeStock struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PriceCents  int64       `json:"price"`
	Images      []ImageRef  `json:"images"`
	Category    CategoryRef `json:"category"`
	Sizes       []SizeStock `json:"sizes"`
	Active      bool        `json:"active"`
	Featured    bool        `json:"featured"`
}

type ProductInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PriceCents  int64       `json:"price"`
	CategoryID  string      `json:"categoryId"`
	Sizes       []SizeStock `json:"sizes"`
	Active      bool        `json:"active"`
	Featured    bool        `json:"featured"`
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Parent   string `json:"parent"`
	ImageURL string `json:"imageUrl,omitempty"`
	Active   bool   `json:"active"`
}

type CategoryGroup struct {
	Parent     string     `json:"parent"`
	Categories []Category `json:"categories"`
}

type CategoryInput struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
	Active bool   `json:"active"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

// OrderCustomItem carries a custom design line so the shop API can record
// it without a catalog row behind it.
type OrderCustomItem struct {
	Name         string `json:"name"`
	PriceCents   int64  `json:"price"`
	ImageURL     string `json:"imageUrl"`
	GarmentColor string `json:"garmentColor"`
}

type OrderItemInput struct {
	ProductID string           `json:"product"`
	Qty       int              `json:"quantity"`
	Size      string           `json:"size"`
	Custom    *OrderCustomItem `json:"custom,omitempty"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput `json:"products"`
	ShippingAddress Address          `json:"shippingAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	Notes           string           `json:"notes,omitempty"`
}

type OrderItem struct {
	ProductID  string `json:"product"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	Qty        int    `json:"quantity"`
	PriceCents int64  `json:"price"`
	ImageURL   string `json:"imageUrl,omitempty"`
	IsCustom   bool   `json:"isCustom,omitempty"`
}

type Order struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"` // pending|confirmed|shipped|delivered|cancelled
	PaymentStatus   string      `json:"paymentStatus"`
	PaymentMethod   string      `json:"paymentMethod"`
	Items           []OrderItem `json:"products"`
	TotalCents      int64       `json:"total"`
	ShippingAddress Address     `json:"shippingAddress"`
	Notes           string      `json:"notes,omitempty"`
	AdminNotes      string      `json:"adminNotes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"` // customer|admin
	Verified bool     `json:"verified"`
	Address  *Address `json:"address,omitempty"`
}
