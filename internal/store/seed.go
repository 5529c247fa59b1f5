package store

import (
	"time"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

const defaultLogoURL = "https://i.ibb.co/9g65y9s/agro-en-casa-logo.png"

// seed loads the demo catalog, accounts, orders and settings
func (s *Store) seed() {
	s.products = []models.Product{
		{ID: 1, Name: "Aji Pimiento (verde)", Price: 450, ImageURL: "https://images.unsplash.com/photo-1599819098376-e5d71b53c6e2?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "libra", Stock: 100},
		{ID: 2, Name: "Zanahoria", Price: 380, ImageURL: "https://images.unsplash.com/photo-1590436427599-015893a7e5c3?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "mazo", Stock: 80},
		{ID: 3, Name: "Remolacha", Price: 380, ImageURL: "https://images.unsplash.com/photo-1588669528621-0a09f81df16d?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "mazo", Stock: 75},
		{ID: 4, Name: "Cebolla Morada", Price: 300, ImageURL: "https://images.unsplash.com/photo-1580252174938-273123840342?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "mazo", Stock: 120},
		{ID: 5, Name: "Maíz Tierno", Price: 50, ImageURL: "https://images.unsplash.com/photo-1599940822971-d645d86235b2?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "unidad", Stock: 200},
		{ID: 6, Name: "Col", Price: 380, ImageURL: "https://images.unsplash.com/photo-1561587317-233634116d12?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "unidad", Stock: 50},
		{ID: 7, Name: "Aji Pimiento Importado (rojo)", Price: 900, ImageURL: "https://images.unsplash.com/photo-1518736349582-1a2243e33355?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "libra", Stock: 40},
		{ID: 8, Name: "Naranjas Importadas", Price: 900, ImageURL: "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "libra", Stock: 60},
		{ID: 9, Name: "Mandarinas Importadas", Price: 1100, ImageURL: "https://images.unsplash.com/photo-1557800636-894a64c1696f?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "libra", Stock: 55},
		{ID: 10, Name: "Manzanas", Price: 260, ImageURL: "https://images.unsplash.com/photo-1560806887-1e4cd0b69665?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "unidad", Stock: 150},
		{ID: 11, Name: "Pepino", Price: 120, ImageURL: "https://images.unsplash.com/photo-1627799092451-19694857b15a?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "libra", Stock: 90},
		{ID: 12, Name: "Guayaba", Price: 150, ImageURL: "https://images.unsplash.com/photo-1631160242231-3c4671457497?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "libra", Stock: 85},
		{ID: 13, Name: "Fruta Bomba Madura", Price: 120, ImageURL: "https://images.unsplash.com/photo-1596370932234-9c3f41f05e3f?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "libra", Stock: 70},
		{ID: 14, Name: "Papas Importadas", Price: 400, ImageURL: "https://images.unsplash.com/photo-1518977676601-b53f82aba657?w=400&auto=format&fit=crop", Category: "Tubérculos", Unit: "libra", Stock: 200},
		{ID: 15, Name: "Plátano Macho", Price: 80, ImageURL: "https://images.unsplash.com/photo-1556271923-281b5133e69f?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "unidad", Stock: 180},
		{ID: 16, Name: "Plátano Burro Grande", Price: 250, ImageURL: "https://plus.unsplash.com/premium_photo-1674485546255-a0d49852277c?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "mano", Stock: 100},
		{ID: 17, Name: "Cebolla Blanca Grande (española)", Price: 400, ImageURL: "https://images.unsplash.com/photo-1618512496248-a07fe83aa8cb?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "libra", Stock: 110},
		{ID: 18, Name: "Ajo Importado", Price: 80, ImageURL: "https://images.unsplash.com/photo-1594298159336-229d443a129f?w=400&auto=format&fit=crop", Category: "Condimentos", Unit: "cabeza", Stock: 300},
		{ID: 19, Name: "Piña", Price: 280, ImageURL: "https://images.unsplash.com/photo-1587883139192-e171c6675553?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "unidad", Stock: 60},
		{ID: 20, Name: "Plátano Fruta Maduro", Price: 250, ImageURL: "https://images.unsplash.com/photo-1528825871115-3581a5387919?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "mano", Stock: 90},
		{ID: 21, Name: "Arroz Importado", Price: 270, ImageURL: "https://images.unsplash.com/photo-1586201375765-c12eda5741e4?w=400&auto=format&fit=crop", Category: "Granos", Unit: "libra", Stock: 500},
		{ID: 22, Name: "Tomate de Ensalada Importado", Price: 750, ImageURL: "https://images.unsplash.com/photo-1582284540020-8acbe03fec79?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "libra", Stock: 80},
		{ID: 23, Name: "Frijoles Colorados (California)", Price: 480, ImageURL: "https://images.unsplash.com/photo-1605584344439-e338d2f5597a?w=400&auto=format&fit=crop", Category: "Granos", Unit: "libra", Stock: 100},
		{ID: 24, Name: "Frijoles Negros", Price: 380, ImageURL: "https://images.unsplash.com/photo-1605312109353-c408339c08a9?w=400&auto=format&fit=crop", Category: "Granos", Unit: "libra", Stock: 150},
		{ID: 25, Name: "Frijoles Colorados (pequeño)", Price: 400, ImageURL: "https://plus.unsplash.com/premium_photo-1664478144214-046a6f11a84f?w=400&auto=format&fit=crop", Category: "Granos", Unit: "libra", Stock: 120},
		{ID: 26, Name: "Aguacates Grandes", Price: 130, ImageURL: "https://images.unsplash.com/photo-1601039641847-7857b994d704?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "unidad", Stock: 90},
		{ID: 27, Name: "Boniato", Price: 80, ImageURL: "https://images.unsplash.com/photo-1582877543887-2483f88b00a5?w=400&auto=format&fit=crop", Category: "Tubérculos", Unit: "libra", Stock: 130},
		{ID: 28, Name: "Malanga", Price: 150, ImageURL: "https://plus.unsplash.com/premium_photo-1698031233816-4a372e9a7216?w=400&auto=format&fit=crop", Category: "Tubérculos", Unit: "libra", Stock: 100},
		{ID: 29, Name: "Calabaza Amarilla", Price: 50, ImageURL: "https://images.unsplash.com/photo-1601982570023-e11504a259d4?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "libra", Stock: 160},
		{ID: 30, Name: "Limón Persa", Price: 480, ImageURL: "https://images.unsplash.com/photo-1603120790103-013b3e5513e9?w=400&auto=format&fit=crop", Category: "Frutas", Unit: "libra", Stock: 80},
		{ID: 31, Name: "Aji Cachucha", Price: 70, ImageURL: "https://plus.unsplash.com/premium_photo-1699252926040-34d28f804561?w=400&auto=format&fit=crop", Category: "Verduras", Unit: "paquete", Stock: 95},
	}

	s.users = []models.User{
		{ID: 1, Email: "admin", Password: "admin123", Role: models.RoleAdmin, Name: "Admin General"},
		{ID: 2, Email: "juan.perez", Password: "password123", Role: models.RoleMessenger, Name: "Juan Perez"},
		{ID: 3, Email: "cliente@test.com", Role: models.RoleCustomer, Name: "Ana Garcia"},
		{ID: 4, Email: "carlos@test.com", Role: models.RoleCustomer, Name: "Carlos Rodriguez"},
		{ID: 5, Email: "beatriz@test.com", Role: models.RoleCustomer, Name: "Beatriz Gonzalez"},
	}
	s.nextUserID = 5

	item := func(productID int64, qty int) models.CartItem {
		for _, p := range s.products {
			if p.ID == productID {
				return models.CartItem{Product: p, Quantity: qty}
			}
		}
		return models.CartItem{}
	}

	s.orders = []models.Order{
		{
			ID:            3,
			OrderNumber:   "AEC-1685831115",
			CustomerID:    4,
			CustomerName:  "Carlos Rodriguez",
			Address:       "Edificio Focsa, Apto 10A, Vedado, La Habana",
			Phone:         "555-9012",
			Date:          time.Date(2024, 7, 27, 15, 0, 0, 0, time.UTC),
			Status:        models.StatusReadyForCourier,
			Items:         []models.CartItem{item(26, 4), item(21, 2)},
			DeliveryCost:  150,
			Total:         130*4 + 270*2 + 150,
			PaymentMethod: "Zelle",
		},
		{
			ID:            2,
			OrderNumber:   "AEC-1685828410",
			CustomerID:    5,
			CustomerName:  "Beatriz Gonzalez",
			Address:       "Ave 31 #1234, Playa, La Habana",
			Phone:         "555-5678",
			Date:          time.Date(2024, 7, 28, 11, 30, 0, 0, time.UTC),
			Status:        models.StatusApproved,
			Items:         []models.CartItem{item(10, 5), item(20, 2)},
			DeliveryCost:  300,
			Total:         260*5 + 250*2 + 300,
			PaymentMethod: "Transferencia",
		},
		{
			ID:            1,
			OrderNumber:   "AEC-1685824901",
			CustomerID:    4,
			CustomerName:  "Carlos Rodriguez",
			Address:       "Calle F #25 apto 3, Vedado, La Habana",
			Phone:         "555-1234",
			Date:          time.Date(2024, 7, 28, 10, 0, 0, 0, time.UTC),
			Status:        models.StatusPending,
			Items:         []models.CartItem{item(1, 2), item(4, 1), item(14, 3)},
			DeliveryCost:  150,
			Total:         450*2 + 300*1 + 400*3 + 150,
			PaymentMethod: "Efectivo (CUP)",
		},
	}
	s.nextOrderID = 3

	s.zones = []models.DeliveryZone{
		{ID: 1, Name: "Zona 1 (Céntrica)", MaxDistanceKm: 5, Cost: 150},
		{ID: 2, Name: "Zona 2 (Periferia)", MaxDistanceKm: 10, Cost: 300},
		{ID: 3, Name: "Zona 3 (Lejana)", MaxDistanceKm: 20, Cost: 500},
	}
	s.nextZoneID = 3

	s.paymentMethods = []models.PaymentMethod{
		{ID: "transferencia", Name: "Transferencia", Enabled: true},
		{ID: "zelle", Name: "Zelle", Enabled: true},
		{ID: "usd", Name: "Dólares (USD)", Enabled: false},
		{ID: "eur", Name: "Euros (EUR)", Enabled: false},
		{ID: "cup", Name: "Efectivo (CUP)", Enabled: true},
	}

	s.logoURL = defaultLogoURL
}
