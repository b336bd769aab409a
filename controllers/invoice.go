// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"invoicedesk-backend/services"
	"invoicedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceController serves the read side of the invoice list: the paginated
// admin listing and the single-invoice view. All queries are scoped to the
// authenticated user's own records.
type InvoiceController struct {
	ws *services.Workspace
}

func NewInvoiceController(ws *services.Workspace) *InvoiceController {
	return &InvoiceController{ws: ws}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// GetInvoices lists the user's invoice headers, newest issued date first,
// windowed to 4 records per page. ?page= is clamped to [1, totalPages].
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoices, err := ic.ws.Store().List(c.Request.Context(), userUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	requested := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			requested = n
		}
	}

	page := services.PageWindow(len(invoices), requested, services.InvoicesPerPage)

	c.JSON(http.StatusOK, gin.H{
		"invoices": invoices[page.Start:page.End],
		"page":     page,
		"total":    len(invoices),
	})
}

// GetInvoice returns one invoice header with its full item set.
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoiceID := c.Param("id")
	invoiceUUID, err := uuid.Parse(invoiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	inv, items, err := ic.ws.Store().Get(c.Request.Context(), userUUID, invoiceUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	inv.Items = items
	c.JSON(http.StatusOK, inv)
}
