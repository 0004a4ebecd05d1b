package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/models"
)

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/category/update/1e777d24-3f5b-4c43-8000-04f65f895578"`
	Income       string `json:"income" example:"https://example.com/api/income/getAll/1e777d24-3f5b-4c43-8000-04f65f895578"`              // Income entries of the category
	BudgetIncome string `json:"budgetIncome" example:"https://example.com/api/budget-income/getAll/1e777d24-3f5b-4c43-8000-04f65f895578"` // Budget income entries of the category
	Outcome      string `json:"outcome" example:"https://example.com/api/outcome/getAll/1e777d24-3f5b-4c43-8000-04f65f895578"`            // Outcome entries of the category
	Budget       string `json:"budget" example:"https://example.com/api/budget/getData/1e777d24-3f5b-4c43-8000-04f65f895578"`             // Budget overview of the category
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	models.CategoryCreate
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel:   model.DefaultModel,
		CategoryCreate: model.CategoryCreate,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/category/update/%s", url, model.ID),
			Income:       fmt.Sprintf("%s/income/getAll/%s", url, model.ID),
			BudgetIncome: fmt.Sprintf("%s/budget-income/getAll/%s", url, model.ID),
			Outcome:      fmt.Sprintf("%s/outcome/getAll/%s", url, model.ID),
			Budget:       fmt.Sprintf("%s/budget/getData/%s", url, model.ID),
		},
	}
}

type CategoryResponse struct {
	Success  bool      `json:"success" example:"true"`
	Message  string    `json:"message,omitempty" example:"Category created successfully!"`
	Category *Category `json:"category,omitempty"`
}

type CategoryListResponse struct {
	Success    bool       `json:"success" example:"true"`
	Categories []Category `json:"categories"`
}

type CategoryDeleteResponse struct {
	Success  bool   `json:"success" example:"true"`
	Message  string `json:"message" example:"Category deleted successfully"`
	Detached int64  `json:"detached" example:"12"` // Number of ledger entries that were detached from the category
}
