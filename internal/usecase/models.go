package usecase

import "time"

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Name            string
	Category        string
	Price           int64
	QuantityInStock int64
}

// UpdateProductReq — запрос на полное обновление товара.
type UpdateProductReq struct {
	ID              int64
	Name            string
	Category        string
	Price           int64
	QuantityInStock int64
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID              int64
	Name            string
	Category        string
	Price           int64
	QuantityInStock int64
}

// StockReq — запрос на изменение остатка товара.
type StockReq struct {
	ProductID int64
	Quantity  int64
}

// CUSTOMER USECASE

type CreateCustomerReq struct {
	Name  string
	Email string
}

type UpdateCustomerReq struct {
	ID    int64
	Name  string
	Email string
}

type CustomerInfo struct {
	ID    int64
	Name  string
	Email string
}

// ORDER USECASE

// OrderItemReq — пара (товар, количество) в запросе на заказ.
// Порядок пар в запросе определяет порядок позиций заказа.
type OrderItemReq struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderReq struct {
	CustomerID int64
	OrderDate  time.Time
	Items      []OrderItemReq
}

// UpdateOrderReq — запрос на обновление заказа: дата шапки и полная замена позиций.
type UpdateOrderReq struct {
	OrderID   int64
	OrderDate time.Time
	Items     []OrderItemReq
}

// OrderItemDetail — позиция сохранённого заказа с зафиксированной ценой.
type OrderItemDetail struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	UnitPrice   int64 // снапшот цены на момент сохранения заказа
	Subtotal    int64
}

type OrderDetail struct {
	ID        int64
	Customer  CustomerInfo
	OrderDate time.Time
	Items     []OrderItemDetail
	Total     int64
}

// OrderSummary — шапка заказа для списка, позиции не загружаются.
type OrderSummary struct {
	ID        int64
	Customer  CustomerInfo
	OrderDate time.Time
}

// OrderItemRecord — строка таблицы order_items для выгрузки.
type OrderItemRecord struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	UnitPrice int64
}

// ANALYTICS USECASE

// CategoryGroup — товары одной категории в порядке исходной коллекции.
type CategoryGroup struct {
	Category string
	Products []ProductInfo
}

type StockReportRes struct {
	TotalStockValue int64
	Categories      []CategoryGroup
}

// REPOSITORIES

// StockDeduction — снапшот товара сразу после списания остатка.
type StockDeduction struct {
	ProductID int64
	Name      string
	Category  string
	UnitPrice int64
	Remaining int64
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderPlaced OutboxEventType = "order_placed"

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderPlacedPayload — тело события order_placed в outbox.
type OrderPlacedPayload struct {
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	Total      int64     `json:"total"`
	ItemCount  int       `json:"item_count"`
	OrderDate  time.Time `json:"order_date"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

func NewProductInfo(id int64, name, category string, price, quantityInStock int64) ProductInfo {
	return ProductInfo{
		ID:              id,
		Name:            name,
		Category:        category,
		Price:           price,
		QuantityInStock: quantityInStock,
	}
}

func NewCustomerInfo(id int64, name, email string) CustomerInfo {
	return CustomerInfo{
		ID:    id,
		Name:  name,
		Email: email,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewStockDeduction(productID int64, name, category string, unitPrice, remaining int64) *StockDeduction {
	return &StockDeduction{
		ProductID: productID,
		Name:      name,
		Category:  category,
		UnitPrice: unitPrice,
		Remaining: remaining,
	}
}
