package view

// DesignerScene is the JSON projection of a designer session the client
// renders its controls from. Layer is nil while the scene is empty.
type DesignerScene struct {
	SceneID    string         `json:"scene_id"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background string         `json:"background"`
	Layer      *DesignerLayer `json:"layer,omitempty"`

	BasePrice Money `json:"base_price"`
	Surcharge Money `json:"print_surcharge"`
	Total     Money `json:"total"`
}

type DesignerLayer struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
	Width    int     `json:"width"`  // source bitmap px
	Height   int     `json:"height"` // source bitmap px
	Selected bool    `json:"selected"`
}
