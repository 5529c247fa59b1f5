package models

import "time"

// Role identifies which dashboard a user may access
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
	RoleMessenger Role = "messenger"
)

// Product represents a product in the catalog
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Stock    int     `json:"stock"`
}

// CartItem is a catalog entry plus the quantity in the cart
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// User represents an account. Email doubles as the username for
// admin/messenger accounts. Passwords are stored in plain text to stay
// faithful to the demo data set.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// Order statuses, in workflow order. Cancelado is reachable from any
// state as an admin-only side branch.
const (
	StatusPending         = "Pendiente"
	StatusPendingPayment  = "Pendiente de Pago"
	StatusApproved        = "Aprobado"
	StatusPreparing       = "En Preparación"
	StatusReadyForCourier = "Listo para Mensajería"
	StatusOnTheWay        = "En Camino"
	StatusDelivered       = "Entregado"
	StatusCancelled       = "Cancelado"
)

// OrderStatuses lists every valid status value.
var OrderStatuses = []string{
	StatusPending,
	StatusPendingPayment,
	StatusApproved,
	StatusPreparing,
	StatusReadyForCourier,
	StatusOnTheWay,
	StatusDelivered,
	StatusCancelled,
}

// StatusMessages maps statuses to the customer-facing notification text.
// Pendiente de Pago and Cancelado intentionally have no entry.
var StatusMessages = map[string]string{
	StatusApproved:        "Tu pedido ha sido aprobado y pronto estará en preparación.",
	StatusPreparing:       "¡Estamos preparando tu pedido! Te avisaremos cuando esté en camino.",
	StatusReadyForCourier: "¡Buenas noticias! Tu pedido está listo y ha sido asignado a un mensajero.",
	StatusOnTheWay:        "Tu pedido ya está en camino. ¡Prepárate para recibirlo!",
	StatusDelivered:       "¡Tu pedido ha sido entregado! Gracias por tu compra.",
}

// Order represents a placed order with an items snapshot taken at checkout
type Order struct {
	ID            int64      `json:"id"`
	OrderNumber   string     `json:"order_number"`
	CustomerID    int64      `json:"customer_id,omitempty"`
	CustomerName  string     `json:"customer_name"`
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	Items         []CartItem `json:"items"`
	DeliveryCost  float64    `json:"delivery_cost"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
}

// Notification is a customer-facing message tied to an order
type Notification struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"-"`
	Message     string    `json:"message"`
	OrderNumber string    `json:"order_number"`
	Date        time.Time `json:"date"`
	Read        bool      `json:"read"`
}

// DeliveryZone is a maximum-distance/flat-fee pair used to price delivery
type DeliveryZone struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	MaxDistanceKm float64 `json:"max_distance_km"`
	Cost          float64 `json:"cost"`
}

// PaymentMethod is an admin-toggled checkout option
type PaymentMethod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// PaymentDetails holds the account information shown at checkout
type PaymentDetails struct {
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	BankNotes     string `json:"bank_notes"`
	ZelleInfo     string `json:"zelle_info"`
	ZelleNotes    string `json:"zelle_notes"`
}

// SocialLinks holds the footer links; whatsapp also feeds the deep link
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	WhatsApp  string `json:"whatsapp"`
}
