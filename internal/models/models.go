package models

import "time"

// Source column headers of the timesheet export.
const (
	ColEmployeeID   = "CEDULA INSPECTOR"
	ColEmployeeName = "NOMBRE INSPECTOR"
	ColWorkCenter   = "CENTRO DE VINCULACIÓN"
	ColActivity     = "ACTIVIDAD"
	ColDate         = "FECHA"
	ColInspections  = "TOTAL REVISIONES"
	ColLM           = "LM"
	ColSuspensions  = "TOTAL SUSPENSIONES"
)

var SourceColumns = []string{
	ColEmployeeID,
	ColEmployeeName,
	ColWorkCenter,
	ColActivity,
	ColDate,
	ColInspections,
	ColLM,
	ColSuspensions,
}

// ReportColumns is the fixed column order of the liquidation sheet.
var ReportColumns = []string{
	"CENTRO_DE_VINCULACION",
	"CEDULA INSPECTOR",
	"NOMBRE_INSPECTOR",
	"Total Dias Laborados",
	"TOTAL_SUSPENSIONES",
	"TOTAL_INSPECCIONES",
	"Total_LM",
	"Bono_Gestion",
	"Bono_Adicional",
	"Auxilio_Moto",
	"Auxilio_Suspensiones",
	"Bono_Total",
	"Auxilio_Total",
	"Categoria",
}

type Record struct {
	Row          int       `json:"row"`
	EmployeeID   string    `json:"employee_id" validate:"required"`
	EmployeeName string    `json:"employee_name"`
	WorkCenter   string    `json:"work_center"`
	Activity     string    `json:"activity"`
	Date         time.Time `json:"date"`
	Inspections  float64   `json:"inspections"`
	LM           float64   `json:"lm"`
	Suspensions  float64   `json:"suspensions"`
}

// HasDate reports whether the source cell carried a date.
func (r Record) HasDate() bool {
	return !r.Date.IsZero()
}

type EmployeeAggregate struct {
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	WorkCenter          string  `json:"work_center"`
	WorkedDays          int     `json:"worked_days"`
	TotalInspections    float64 `json:"total_inspections"`
	TotalLM             float64 `json:"total_lm"`
	TotalSuspensions    float64 `json:"total_suspensions"`
	Operational         bool    `json:"operational"`
	ManagementBonus     float64 `json:"management_bonus"`
	AdditionalBonus     float64 `json:"additional_bonus"`
	MotorcycleAllowance float64 `json:"motorcycle_allowance"`
	SuspensionAllowance float64 `json:"suspension_allowance"`
	Tier                string  `json:"tier"`
}

type ReportRow struct {
	WorkCenter          string  `json:"CENTRO_DE_VINCULACION"`
	EmployeeID          string  `json:"CEDULA INSPECTOR"`
	EmployeeName        string  `json:"NOMBRE_INSPECTOR"`
	WorkedDays          int     `json:"Total Dias Laborados"`
	TotalSuspensions    float64 `json:"TOTAL_SUSPENSIONES"`
	TotalInspections    float64 `json:"TOTAL_INSPECCIONES"`
	TotalLM             float64 `json:"Total_LM"`
	ManagementBonus     float64 `json:"Bono_Gestion"`
	AdditionalBonus     float64 `json:"Bono_Adicional"`
	MotorcycleAllowance float64 `json:"Auxilio_Moto"`
	SuspensionAllowance float64 `json:"Auxilio_Suspensiones"`
	BonusTotal          float64 `json:"Bono_Total"`
	AllowanceTotal      float64 `json:"Auxilio_Total"`
	Tier                string  `json:"Categoria"`
}

// Values returns the row cells in ReportColumns order.
func (r ReportRow) Values() []any {
	return []any{
		r.WorkCenter,
		r.EmployeeID,
		r.EmployeeName,
		r.WorkedDays,
		r.TotalSuspensions,
		r.TotalInspections,
		r.TotalLM,
		r.ManagementBonus,
		r.AdditionalBonus,
		r.MotorcycleAllowance,
		r.SuspensionAllowance,
		r.BonusTotal,
		r.AllowanceTotal,
		r.Tier,
	}
}

type Report struct {
	Columns []string    `json:"columns"`
	Rows    []ReportRow `json:"rows"`
}
