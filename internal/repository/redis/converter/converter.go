//go:generate goverter gen github.com/DRSN-tech/inventory-backend/internal/repository/redis/converter
package converter

import "github.com/DRSN-tech/inventory-backend/internal/usecase"

// ProductInfoConverter преобразует DTO ProductInfo между usecase и моделью Redis.
// goverter:converter
type ProductInfoConverter interface {
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
	ToRedisModel(info usecase.ProductInfo) ProductInfoRedisModel
	ToArrRedisModel(infos []usecase.ProductInfo) []ProductInfoRedisModel
}
