package tracking

import (
	"time"

	"github.com/producao/backend/internal/domain/tracking"
)

// =============================================================================
// Absenteeism DTOs
// =============================================================================

// CreateAbsenteeismRequest represents a request to register an absence
type CreateAbsenteeismRequest struct {
	EmployeeName string  `json:"employeeName" binding:"required,min=1,max=200"`
	Date         string  `json:"date" binding:"required"`
	Sector       string  `json:"sector" binding:"required"`
	AbsenceType  string  `json:"absenceType" binding:"required"`
	DaysAbsent   *int    `json:"daysAbsent" binding:"required"`
	Notes        *string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateAbsenteeismRequest represents a partial update of an absence record
type UpdateAbsenteeismRequest struct {
	EmployeeName *string `json:"employeeName" binding:"omitempty,min=1,max=200"`
	Date         *string `json:"date"`
	Sector       *string `json:"sector"`
	AbsenceType  *string `json:"absenceType"`
	DaysAbsent   *int    `json:"daysAbsent"`
	Notes        *string `json:"notes" binding:"omitempty,max=2000"`
}

// AbsenteeismResponse represents an absence record in API responses
type AbsenteeismResponse struct {
	ID           uint          `json:"id"`
	EmployeeName string        `json:"employeeName"`
	Date         tracking.Date `json:"date"`
	Sector       string        `json:"sector"`
	AbsenceType  string        `json:"absenceType"`
	DaysAbsent   int           `json:"daysAbsent"`
	Notes        *string       `json:"notes"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// =============================================================================
// Loss DTOs
// =============================================================================

// CreateLossRequest represents a request to register a production loss.
// TotalCost may be omitted; it is then derived as quantity times unit cost.
type CreateLossRequest struct {
	Date      string   `json:"date" binding:"required"`
	Sector    string   `json:"sector" binding:"required"`
	Product   string   `json:"product" binding:"required,min=1,max=200"`
	LossType  string   `json:"lossType" binding:"required"`
	Quantity  *float64 `json:"quantity" binding:"required"`
	Unit      string   `json:"unit" binding:"required,min=1,max=20"`
	UnitCost  *float64 `json:"unitCost" binding:"required"`
	TotalCost *float64 `json:"totalCost"`
	Reason    *string  `json:"reason" binding:"omitempty,max=2000"`
}

// UpdateLossRequest represents a partial update of a loss record
type UpdateLossRequest struct {
	Date      *string  `json:"date"`
	Sector    *string  `json:"sector"`
	Product   *string  `json:"product" binding:"omitempty,min=1,max=200"`
	LossType  *string  `json:"lossType"`
	Quantity  *float64 `json:"quantity"`
	Unit      *string  `json:"unit" binding:"omitempty,min=1,max=20"`
	UnitCost  *float64 `json:"unitCost"`
	TotalCost *float64 `json:"totalCost"`
	Reason    *string  `json:"reason" binding:"omitempty,max=2000"`
}

// LossResponse represents a loss record in API responses
type LossResponse struct {
	ID        uint          `json:"id"`
	Date      tracking.Date `json:"date"`
	Sector    string        `json:"sector"`
	Product   string        `json:"product"`
	LossType  string        `json:"lossType"`
	Quantity  float64       `json:"quantity"`
	Unit      string        `json:"unit"`
	UnitCost  float64       `json:"unitCost"`
	TotalCost float64       `json:"totalCost"`
	Reason    *string       `json:"reason"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// =============================================================================
// Production error DTOs
// =============================================================================

// CreateErrorRequest represents a request to register a production error
type CreateErrorRequest struct {
	Date        string   `json:"date" binding:"required"`
	Sector      string   `json:"sector" binding:"required"`
	Product     string   `json:"product" binding:"required,min=1,max=200"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required,min=1,max=2000"`
	Cost        *float64 `json:"cost" binding:"required"`
}

// UpdateErrorRequest represents a partial update of a production error
type UpdateErrorRequest struct {
	Date        *string  `json:"date"`
	Sector      *string  `json:"sector"`
	Product     *string  `json:"product" binding:"omitempty,min=1,max=200"`
	Category    *string  `json:"category"`
	Description *string  `json:"description" binding:"omitempty,min=1,max=2000"`
	Cost        *float64 `json:"cost"`
}

// ErrorResponse represents a production error in API responses
type ErrorResponse struct {
	ID          uint          `json:"id"`
	Date        tracking.Date `json:"date"`
	Sector      string        `json:"sector"`
	Product     string        `json:"product"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Cost        float64       `json:"cost"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// =============================================================================
// Production speed DTOs
// =============================================================================

// CreateProductionRequest represents a request to register a production run.
// UnitsPerHour is always derived server-side from quantity and duration.
type CreateProductionRequest struct {
	Date             string   `json:"date" binding:"required"`
	Sector           string   `json:"sector" binding:"required"`
	Product          string   `json:"product" binding:"required,min=1,max=200"`
	Machine          string   `json:"machine" binding:"required,min=1,max=100"`
	QuantityProduced *float64 `json:"quantityProduced" binding:"required"`
	DurationMinutes  *int     `json:"durationMinutes" binding:"required"`
	Operator         *string  `json:"operator" binding:"omitempty,max=200"`
}

// UpdateProductionRequest represents a partial update of a production run
type UpdateProductionRequest struct {
	Date             *string  `json:"date"`
	Sector           *string  `json:"sector"`
	Product          *string  `json:"product" binding:"omitempty,min=1,max=200"`
	Machine          *string  `json:"machine" binding:"omitempty,min=1,max=100"`
	QuantityProduced *float64 `json:"quantityProduced"`
	DurationMinutes  *int     `json:"durationMinutes"`
	Operator         *string  `json:"operator" binding:"omitempty,max=200"`
}

// ProductionResponse represents a production run in API responses
type ProductionResponse struct {
	ID               uint          `json:"id"`
	Date             tracking.Date `json:"date"`
	Sector           string        `json:"sector"`
	Product          string        `json:"product"`
	Machine          string        `json:"machine"`
	QuantityProduced float64       `json:"quantityProduced"`
	DurationMinutes  int           `json:"durationMinutes"`
	UnitsPerHour     float64       `json:"unitsPerHour"`
	Operator         *string       `json:"operator"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// =============================================================================
// Maintenance DTOs
// =============================================================================

// CreateMaintenanceRequest represents a request to register a maintenance event
type CreateMaintenanceRequest struct {
	Date            string   `json:"date" binding:"required"`
	Sector          string   `json:"sector" binding:"required"`
	Machine         string   `json:"machine" binding:"required,min=1,max=100"`
	MaintenanceType string   `json:"maintenanceType" binding:"required"`
	Description     string   `json:"description" binding:"required,min=1,max=2000"`
	DowntimeMinutes *int     `json:"downtimeMinutes" binding:"required"`
	Cost            *float64 `json:"cost" binding:"required"`
	Technician      *string  `json:"technician" binding:"omitempty,max=200"`
}

// UpdateMaintenanceRequest represents a partial update of a maintenance event
type UpdateMaintenanceRequest struct {
	Date            *string  `json:"date"`
	Sector          *string  `json:"sector"`
	Machine         *string  `json:"machine" binding:"omitempty,min=1,max=100"`
	MaintenanceType *string  `json:"maintenanceType"`
	Description     *string  `json:"description" binding:"omitempty,min=1,max=2000"`
	DowntimeMinutes *int     `json:"downtimeMinutes"`
	Cost            *float64 `json:"cost"`
	Technician      *string  `json:"technician" binding:"omitempty,max=200"`
}

// MaintenanceResponse represents a maintenance event in API responses
type MaintenanceResponse struct {
	ID              uint          `json:"id"`
	Date            tracking.Date `json:"date"`
	Sector          string        `json:"sector"`
	Machine         string        `json:"machine"`
	MaintenanceType string        `json:"maintenanceType"`
	Description     string        `json:"description"`
	DowntimeMinutes int           `json:"downtimeMinutes"`
	Cost            float64       `json:"cost"`
	Technician      *string       `json:"technician"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
