// controllers/product.go
package controllers

import (
	"errors"
	"net/http"

	"invoicedesk-backend/config"
	"invoicedesk-backend/models"
	"invoicedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for adding a
// catalog product
type CreateProductInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Position int     `json:"position" binding:"min=0"`
}

// UpdateProductInput defines the expected JSON structure for updating a
// catalog product. Persisted line items keep their frozen name and price;
// only future snapshots see the change.
type UpdateProductInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Position *int     `json:"position" binding:"omitempty,min=0"`
	IsActive *bool    `json:"isActive"`
}

// CreateProduct adds a product to the catalog
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	product := models.Product{
		ID:       uuid.New(),
		Name:     input.Name,
		Price:    input.Price,
		Position: input.Position,
		IsActive: true,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves the catalog in display order
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("position ASC").Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct retrieves a specific catalog product by ID
func GetProduct(c *gin.Context) {
	productID := c.Param("id")
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ?", productUUID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates a catalog product
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing product
	var product models.Product
	if err := config.DB.Where("id = ?", productUUID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Position != nil {
		product.Position = *input.Position
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog product
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	result := config.DB.Where("id = ?", productUUID).Delete(&models.Product{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
