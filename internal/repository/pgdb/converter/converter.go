//go:generate goverter gen github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []*domain.Product
}

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
// goverter:converter
type CustomerConverter interface {
	ToModel(entity *domain.Customer) *CustomerModel
	ToEntity(model *CustomerModel) *domain.Customer
	ToArrEntity(models []*CustomerModel) []*domain.Customer
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertOutboxStatusToString
// goverter:extend ConvertOutboxEventTypeToString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}

func ConvertOutboxStatusToString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventTypeToString(t usecase.OutboxEventType) string {
	return string(t)
}
