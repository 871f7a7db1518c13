package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID              int64  `db:"id"`
	Name            string `db:"name"`
	Category        string `db:"category"`
	Price           int64  `db:"price"`
	QuantityInStock int64  `db:"quantity_in_stock"`
}

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
