// mockapi is a tiny in-memory stand-in for the remote shop API so the web
// app can run locally without the real backend. Data resets on restart.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       int64       `json:"price"`
	Images      []imageRef  `json:"images"`
	Category    categoryRef `json:"category"`
	Sizes       []sizeStock `json:"sizes"`
	Active      bool        `json:"active"`
	Featured    bool        `json:"featured"`
}

type imageRef struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
}

type categoryRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type sizeStock struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type order struct {
	ID              string         `json:"id"`
	Status          string         `json:"status"`
	PaymentStatus   string         `json:"paymentStatus"`
	PaymentMethod   string         `json:"paymentMethod"`
	Products        []any          `json:"products"`
	Total           int64          `json:"total"`
	ShippingAddress map[string]any `json:"shippingAddress"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type state struct {
	mu       sync.Mutex
	products map[string]*product
	orders   map[string]*order
}

func seed() *state {
	s := &state{
		products: map[string]*product{},
		orders:   map[string]*order{},
	}
	for i, name := range []string{"Classic White Tee", "Classic Black Tee", "Oversize Hoodie"} {
		id := fmt.Sprintf("prod-%d", i+1)
		s.products[id] = &product{
			ID:          id,
			Name:        name,
			Description: "Demo product",
			Price:       int64(9000 + i*2500),
			Images:      []imageRef{{ID: "img-1", URL: "https://placehold.co/400x500"}},
			Category:    categoryRef{ID: "cat-1", Name: "Remeras"},
			Sizes:       []sizeStock{{Size: "S", Stock: 5}, {Size: "M", Stock: 8}, {Size: "L", Stock: 3}},
			Active:      true,
			Featured:    i == 0,
		}
	}
	return s
}

func main() {
	addr := flag.String("addr", ":9090", "Listen address")
	uploadDir := flag.String("upload-dir", "./storage/mock-uploads", "Where uploaded designs land")
	flag.Parse()

	if err := os.MkdirAll(*uploadDir, 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	st := seed()
	r := gin.Default()

	r.GET("/products", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		out := make([]*product, 0, len(st.products))
		admin := c.Query("admin") == "true"
		for _, p := range st.products {
			if !admin && !p.Active {
				continue
			}
			out = append(out, p)
		}
		c.JSON(http.StatusOK, out)
	})

	r.GET("/products/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		p, ok := st.products[c.Param("id")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.GET("/categories/grouped", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{
				"parent": "Ropa",
				"categories": []gin.H{
					{"id": "cat-1", "name": "Remeras", "active": true},
					{"id": "cat-2", "name": "Buzos", "active": true},
				},
			},
		})
	})

	r.POST("/auth/login", func(c *gin.Context) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password required"})
			return
		}
		role := "customer"
		if body.Email == "admin@example.com" {
			role = "admin"
		}
		c.JSON(http.StatusOK, gin.H{
			"token":    "mock-" + uuid.NewString(),
			"id":       uuid.NewString(),
			"name":     "Demo User",
			"email":    body.Email,
			"role":     role,
			"verified": true,
		})
	})

	r.GET("/auth/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":       "user-1",
			"name":     "Demo User",
			"email":    "demo@example.com",
			"role":     "customer",
			"verified": true,
		})
	})

	r.POST("/orders", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order"})
			return
		}
		o := &order{
			ID:            uuid.NewString(),
			Status:        "pending",
			PaymentStatus: "pending",
			CreatedAt:     time.Now(),
		}
		if v, ok := body["paymentMethod"].(string); ok {
			o.PaymentMethod = v
		}
		if v, ok := body["products"].([]any); ok {
			o.Products = v
		}
		if v, ok := body["shippingAddress"].(map[string]any); ok {
			o.ShippingAddress = v
		}
		st.mu.Lock()
		st.orders[o.ID] = o
		st.mu.Unlock()
		c.JSON(http.StatusCreated, o)
	})

	r.GET("/orders/myorders", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		out := make([]*order, 0, len(st.orders))
		for _, o := range st.orders {
			out = append(out, o)
		}
		c.JSON(http.StatusOK, out)
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		o, ok := st.orders[c.Param("id")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	})

	r.PUT("/orders/:id/cancel", func(c *gin.Context) {
		st.mu.Lock()
		defer st.mu.Unlock()
		o, ok := st.orders[c.Param("id")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if o.Status != "pending" {
			c.JSON(http.StatusConflict, gin.H{"message": "Only pending orders can be cancelled"})
			return
		}
		o.Status = "cancelled"
		c.JSON(http.StatusOK, o)
	})

	r.POST("/products/upload-custom-design", func(c *gin.Context) {
		fh, err := c.FormFile("images")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing images part"})
			return
		}
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Open failed"})
			return
		}
		defer src.Close()

		name := uuid.NewString() + filepath.Ext(fh.Filename)
		dst, err := os.Create(filepath.Join(*uploadDir, name))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Store failed"})
			return
		}
		defer dst.Close()
		if _, err := io.Copy(dst, src); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Store failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": "http://localhost" + *addr + "/uploads/" + name})
	})

	r.Static("/uploads", *uploadDir)

	log.Printf("mock shop API listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatal(err)
	}
}
