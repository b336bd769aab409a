package controllers

import (
	"net/http"
	"time"

	"invoicedesk-backend/config"
	"invoicedesk-backend/models"
	"invoicedesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalInvoices   int64            `json:"totalInvoices"`
	TotalBilled     float64          `json:"totalBilled"`
	MonthlyRevenue  float64          `json:"monthlyRevenue"`
	RecentInvoices  []models.Invoice `json:"recentInvoices"`
	DanglingHeaders int64            `json:"danglingHeaders"`
}

func GetDashboardOverview(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var overview DashboardOverview

	// Total invoices and amount billed
	config.DB.Model(&models.Invoice{}).
		Where("owner_user_id = ?", userUUID).
		Count(&overview.TotalInvoices)
	config.DB.Model(&models.Invoice{}).
		Where("owner_user_id = ?", userUUID).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&overview.TotalBilled)

	// This month's revenue
	firstOfMonth := utils.BeginningOfMonth(time.Now())
	config.DB.Model(&models.Invoice{}).
		Where("owner_user_id = ? AND issued_date >= ?", userUUID, firstOfMonth).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&overview.MonthlyRevenue)

	// Five most recent invoices
	if err := config.DB.
		Where("owner_user_id = ?", userUUID).
		Order("issued_date DESC").
		Limit(5).
		Find(&overview.RecentInvoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve recent invoices")
		return
	}

	// Open reconciliation findings
	config.DB.Model(&models.ReconciliationLog{}).
		Where("owner_user_id = ?", userUUID).
		Count(&overview.DanglingHeaders)

	c.JSON(http.StatusOK, overview)
}

// GetReconciliationLogs lists the sweeper's findings for the user, newest
// first.
func GetReconciliationLogs(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var logs []models.ReconciliationLog
	if err := config.DB.
		Where("owner_user_id = ?", userUUID).
		Order("detected_at DESC").
		Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reconciliation logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
