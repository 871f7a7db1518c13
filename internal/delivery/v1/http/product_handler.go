package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// ProductRequest — тело запроса создания или обновления товара.
// Цена передаётся строкой, хранится в копейках.
type ProductRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           string `json:"price"`
	QuantityInStock int64  `json:"quantity_in_stock"`
}

type ProductResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           string `json:"price"`
	QuantityInStock int64  `json:"quantity_in_stock"`
}

type StockRequest struct {
	Quantity int64 `json:"quantity"`
}

func newProductResponse(info *usecase.ProductInfo) *ProductResponse {
	return &ProductResponse{
		ID:              info.ID,
		Name:            info.Name,
		Category:        info.Category,
		Price:           centsToMoney(info.Price),
		QuantityInStock: info.QuantityInStock,
	}
}

func newProductResponses(infos []usecase.ProductInfo) []ProductResponse {
	res := make([]ProductResponse, 0, len(infos))
	for i := range infos {
		res = append(res, *newProductResponse(&infos[i]))
	}
	return res
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создает новый товар в каталоге
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		p.logger.Warnf("invalid price %q: %s", req.Price, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:            req.Name,
		Category:        req.Category,
		Price:           price,
		QuantityInStock: req.QuantityInStock,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(info))
}

// listProducts
//
//	@Summary	Список товаров
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	infos, err := p.productUsecase.ListProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponses(infos))
}

// getProduct
//
//	@Summary	Товар по ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(info))
}

// updateProduct
//
//	@Summary	Обновление товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID товара"
//	@Param		product	body		ProductRequest	true	"Товар"
//	@Success	200		{object}	ProductResponse
//	@Failure	404		{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		p.logger.Warnf("invalid price %q: %s", req.Price, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:              id,
		Name:            req.Name,
		Category:        req.Category,
		Price:           price,
		QuantityInStock: req.QuantityInStock,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(info))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Param		id	path	int	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// addStock
//
//	@Summary	Пополнение остатка
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID товара"
//	@Param		stock	body		StockRequest	true	"Количество"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse	"Некорректное количество"
//	@Router		/products/{id}/add-stock [post]
func (p *ProductHandler) addStock(w http.ResponseWriter, r *http.Request) {
	p.mutateStock(w, r, p.productUsecase.AddStock)
}

// removeStock
//
//	@Summary	Списание остатка
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID товара"
//	@Param		stock	body		StockRequest	true	"Количество"
//	@Success	200		{object}	ProductResponse
//	@Failure	409		{object}	ErrorResponse	"Недостаточно остатка"
//	@Router		/products/{id}/remove-stock [post]
func (p *ProductHandler) removeStock(w http.ResponseWriter, r *http.Request) {
	p.mutateStock(w, r, p.productUsecase.RemoveStock)
}

func (p *ProductHandler) mutateStock(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, req *usecase.StockReq) (*usecase.ProductInfo, error),
) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req StockRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	info, err := op(r.Context(), &usecase.StockReq{ProductID: id, Quantity: req.Quantity})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(info))
}
