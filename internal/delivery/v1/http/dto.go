package http

import (
	"github.com/DRSN-tech/kasir-api/internal/domain"
	"github.com/DRSN-tech/kasir-api/internal/usecase"
)

// REQUESTS

type CreateCategoryRequest struct {
	Name        *string `json:"name" validate:"required" example:"Beverages"`
	Description *string `json:"description" example:"Drinks"`
}

// UpdateCategoryRequest: отсутствующие поля не меняются.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" example:"Beverages"`
	Description *string `json:"description" example:"Drinks"`
}

type CreateProductRequest struct {
	Name       *string `json:"name" validate:"required" example:"Iced tea"`
	Price      *int64  `json:"price" validate:"required" example:"5000"`
	Stock      *int64  `json:"stock" validate:"required" example:"20"`
	CategoryID *int64  `json:"category_id" validate:"required" example:"1"`
}

// UpdateProductRequest: отсутствующие поля не меняются.
type UpdateProductRequest struct {
	Name       *string `json:"name" example:"Iced tea"`
	Price      *int64  `json:"price" example:"5500"`
	Stock      *int64  `json:"stock" example:"18"`
	CategoryID *int64  `json:"category_id" example:"1"`
}

func (r *CreateCategoryRequest) toUC() *usecase.CreateCategoryReq {
	return usecase.NewCreateCategoryReq(*r.Name, r.Description)
}

func (r *UpdateCategoryRequest) toUC() *usecase.UpdateCategoryReq {
	return usecase.NewUpdateCategoryReq(r.Name, r.Description)
}

func (r *CreateProductRequest) toUC() *usecase.CreateProductReq {
	return usecase.NewCreateProductReq(*r.Name, *r.Price, *r.Stock, *r.CategoryID)
}

func (r *UpdateProductRequest) toUC() *usecase.UpdateProductReq {
	return usecase.NewUpdateProductReq(r.Name, r.Price, r.Stock, r.CategoryID)
}

// RESPONSES

type CategoryResponse struct {
	ID          int64   `json:"id" example:"1"`
	Name        string  `json:"name" example:"Beverages"`
	Description *string `json:"description" example:"Drinks"`
}

type ProductResponse struct {
	ID         int64             `json:"id" example:"1"`
	Name       string            `json:"name" example:"Iced tea"`
	Price      int64             `json:"price" example:"5000"`
	Stock      int64             `json:"stock" example:"20"`
	CategoryID int64             `json:"category_id" example:"1"`
	Category   *CategoryResponse `json:"category"`
}

type CheckResponse struct {
	Status    string   `json:"status" example:"healthy"`
	LatencyMs *float64 `json:"latency_ms" example:"1.27"`
	Error     *string  `json:"error"`
}

type HealthResponse struct {
	Status string                   `json:"status" example:"healthy"`
	Checks map[string]CheckResponse `json:"checks"`
}

// MAPPERS

func newCategoryResponse(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func newCategoryListResponse(categories []domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, *newCategoryResponse(&categories[i]))
	}

	return result
}

func newProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		Category:   newCategoryResponse(p.Category),
	}
}

func newProductListResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *newProductResponse(&products[i]))
	}

	return result
}

func newHealthResponse(report *domain.HealthReport) *HealthResponse {
	checks := make(map[string]CheckResponse, len(report.Checks))
	for name, check := range report.Checks {
		checks[name] = CheckResponse{
			Status:    check.Status,
			LatencyMs: check.LatencyMs,
			Error:     check.Error,
		}
	}

	return &HealthResponse{
		Status: report.Status,
		Checks: checks,
	}
}
