package domain

import (
	"time"
)

type AlertType string

const (
	AlertTypeStockBreak  AlertType = "stock_break"
	AlertTypePriceAlert  AlertType = "price_alert"
	AlertTypeShareLoss   AlertType = "share_loss"
	AlertTypeOpportunity AlertType = "opportunity"
)

type AlertSeverity string

const (
	AlertSeverityLow    AlertSeverity = "low"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

// Alert es una alerta comercial. El pipeline de agregación la trata como
// dato de solo lectura; la generación corre por el detector programado.
type Alert struct {
	ID          string        `json:"id"`
	Type        AlertType     `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	IsRead      bool          `json:"is_read"`
	ProductID   *string       `json:"product_id,omitempty"`
	RegionID    *string       `json:"region_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}
