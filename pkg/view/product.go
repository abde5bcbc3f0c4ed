package view

type ProductCard struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	PriceCents int64  `json:"price_cents"`
	Price      Money  `json:"price"`
	Category   string `json:"category"`
	Featured   bool   `json:"featured"`
}

type ProductSize struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type ProductDetail struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	PriceCents  int64         `json:"price_cents"`
	Price       Money         `json:"price"`
	Category    string        `json:"category"`
	Sizes       []ProductSize `json:"sizes"`
	Active      bool          `json:"active"`
	Featured    bool          `json:"featured"`
}

type CategoryNav struct {
	Parent   string         `json:"parent"`
	Children []CategoryLink `json:"children"`
}

type CategoryLink struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}
