package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/entities"
)

type CategoriesController struct {
	categories CategoryStore
}

func NewCategoriesController(categories CategoryStore) *CategoriesController {
	return &CategoriesController{categories: categories}
}

// SaveCategory handles POST /category
func (cc *CategoriesController) SaveCategory(c *gin.Context) {
	var category entities.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondInvalidBody(c, err)
		return
	}

	saved, err := cc.categories.Save(c.Request.Context(), &category)
	if err != nil {
		respondServiceError(c, err, "save category")
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(saved))
}

// GetCategory handles GET /category/:id
func (cc *CategoriesController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := cc.categories.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "find category")
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

// DeleteCategory handles DELETE /category/:id
func (cc *CategoriesController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.categories.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete category")
		return
	}

	respondSuccess(c, "category deleted")
}
