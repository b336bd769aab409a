// controllers/panel.go
package controllers

import (
	"errors"
	"net/http"

	"invoicedesk-backend/services"
	"invoicedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PanelController drives the create/edit/delete panel. Each endpoint maps
// onto one workspace transition; the workspace keeps one mode controller per
// user, so only one operation can be in flight at a time.
type PanelController struct {
	ws *services.Workspace
}

func NewPanelController(ws *services.Workspace) *PanelController {
	return &PanelController{ws: ws}
}

func draftView(mode services.Mode, d *services.Draft) gin.H {
	view := gin.H{"mode": mode.String()}
	if d != nil {
		view["draft"] = gin.H{
			"invoiceId":     d.InvoiceID,
			"invoiceNumber": d.InvoiceNumber,
			"customerName":  d.CustomerName,
			"issuedDate":    d.IssuedDate,
			"rows":          d.Rows(),
			"total":         d.Total(),
		}
	}
	return view
}

func respondPanelError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var hErr *services.HeaderWriteError
	var iErr *services.ItemWriteError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  vErr.Error(),
			"field":  vErr.Field,
			"reason": vErr.Reason,
		})
	case errors.Is(err, services.ErrModeBusy):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNoDraft):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
	case errors.As(err, &hErr), errors.As(err, &iErr):
		// Store failure: the mode and draft are preserved for a retry.
		utils.RespondWithError(c, http.StatusBadGateway, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
	}
}

// GetPanel reports the current mode and draft
func (pc *PanelController) GetPanel(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	mode, draft := pc.ws.Panel(userUUID)
	c.JSON(http.StatusOK, draftView(mode, draft))
}

// StartCreate opens an empty draft and enters create mode
func (pc *PanelController) StartCreate(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	draft, err := pc.ws.StartCreate(c.Request.Context(), userUUID)
	if err != nil {
		respondPanelError(c, err)
		return
	}

	c.JSON(http.StatusOK, draftView(services.ModeCreating, draft))
}

// StartEdit loads the target invoice into a draft and enters edit mode
func (pc *PanelController) StartEdit(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	draft, err := pc.ws.StartEdit(c.Request.Context(), userUUID, invoiceUUID)
	if err != nil {
		respondPanelError(c, err)
		return
	}

	c.JSON(http.StatusOK, draftView(services.ModeEditing, draft))
}

// StartDelete enters delete mode for the target invoice, which fires the
// store delete immediately. There is no confirmation step.
func (pc *PanelController) StartDelete(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	if err := pc.ws.StartDelete(c.Request.Context(), userUUID, invoiceUUID); err != nil {
		respondPanelError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// UpdateDraft applies form edits to the open draft; every call returns the
// draft with subtotals and the grand total recomputed
func (pc *PanelController) UpdateDraft(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.DraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	draft, err := pc.ws.UpdateDraft(userUUID, input)
	if err != nil {
		respondPanelError(c, err)
		return
	}

	mode, _ := pc.ws.Panel(userUUID)
	c.JSON(http.StatusOK, draftView(mode, draft))
}

// Submit validates and persists the open draft
func (pc *PanelController) Submit(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := pc.ws.Submit(c.Request.Context(), userUUID)
	if err != nil {
		respondPanelError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice saved", "id": id})
}

// Cancel discards the draft and returns the panel to idle
func (pc *PanelController) Cancel(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	pc.ws.Cancel(userUUID)
	c.JSON(http.StatusOK, gin.H{"mode": services.ModeIdle.String()})
}
