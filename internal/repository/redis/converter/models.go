package converter

// ProductInfoRedisModel — представление товара в кэше Redis (JSON).
type ProductInfoRedisModel struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           int64  `json:"price"`
	QuantityInStock int64  `json:"quantity_in_stock"`
}
