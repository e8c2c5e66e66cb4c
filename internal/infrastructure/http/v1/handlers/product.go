package handlers

import (
	"github.com/gin-gonic/gin"

	"exportdoc/internal/domain/catalogs/product"
	"exportdoc/internal/infrastructure/http/v1/dto"
)

// ProductHandler extends the generic catalog handler with size-scoped
// listing.
type ProductHandler struct {
	*CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]
	service *product.Service
}

// NewProductHandler creates a configured handler for the Product catalog.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	config := CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *product.Product) any {
			return dto.FromProduct(entity)
		},
	}

	return &ProductHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// ListBySize handles GET /products/by-size/:id - products of one size.
func (h *ProductHandler) ListBySize(c *gin.Context) {
	sizeID, ok := h.ParseID(c)
	if !ok {
		return
	}

	products, err := h.service.ListBySize(c.Request.Context(), sizeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(products))
	for i, p := range products {
		items[i] = dto.FromProduct(p)
	}

	h.OK(c, gin.H{"items": items})
}
