package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/liquidacion/backend/internal/models"
)

const operationalPattern = "operativo"

// nonWorkedActivities are leave, disability, vacation, administrative duty and
// termination codes. Matching is exact and case-sensitive.
var nonWorkedActivities = map[string]struct{}{
	"PERMISO":     {},
	"INCAPACIDAD": {},
	"VACACIONES":  {},
	"FUNC ADMON":  {},
	"RETIRO":      {},
}

// IsWorkedActivity reports whether an activity code counts toward worked days.
func IsWorkedActivity(activity string) bool {
	_, skip := nonWorkedActivities[activity]
	return !skip
}

// FilterWorked returns the records whose activity counts as a worked day.
// Blank or unknown activities are kept.
func FilterWorked(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if IsWorkedActivity(r.Activity) {
			out = append(out, r)
		}
	}
	return out
}

// IsOperational reports whether a work center belongs to field operations.
func IsOperational(workCenter string) bool {
	return strings.Contains(strings.ToLower(workCenter), operationalPattern)
}

// Aggregate groups records by employee. Worked days come from the worked
// subset; inspections, LM and suspensions are summed over all records.
// Name and work center are taken from the first record seen for the employee.
func Aggregate(worked, all []models.Record) map[string]*models.EmployeeAggregate {
	out := map[string]*models.EmployeeAggregate{}
	for _, r := range all {
		agg, ok := out[r.EmployeeID]
		if !ok {
			agg = &models.EmployeeAggregate{
				EmployeeID:   r.EmployeeID,
				EmployeeName: r.EmployeeName,
				WorkCenter:   r.WorkCenter,
			}
			out[r.EmployeeID] = agg
		}
		agg.TotalInspections += r.Inspections
		agg.TotalLM += r.LM
		agg.TotalSuspensions += r.Suspensions
		if IsOperational(r.WorkCenter) {
			agg.Operational = true
		}
	}

	days := map[string]map[string]struct{}{}
	for _, r := range worked {
		if !r.HasDate() {
			continue
		}
		set, ok := days[r.EmployeeID]
		if !ok {
			set = map[string]struct{}{}
			days[r.EmployeeID] = set
		}
		set[r.Date.Format("2006-01-02")] = struct{}{}
	}
	for id, set := range days {
		if agg, ok := out[id]; ok {
			agg.WorkedDays = len(set)
		}
	}
	return out
}

// Score fills in the rule outputs of an aggregate.
func Score(agg *models.EmployeeAggregate) {
	agg.ManagementBonus = ManagementBonus(agg.TotalInspections)
	agg.AdditionalBonus = AdditionalBonus(agg.TotalInspections)
	agg.Tier = Tier(agg.TotalInspections)
	agg.MotorcycleAllowance = MotorcycleAllowance(agg.WorkedDays, agg.Operational)
	agg.SuspensionAllowance = SuspensionAllowance(agg.TotalSuspensions)
}

// Assemble builds one report row per aggregate, sorted by employee id.
func Assemble(aggregates map[string]*models.EmployeeAggregate) models.Report {
	ids := make([]string, 0, len(aggregates))
	for id := range aggregates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return lessEmployeeID(ids[i], ids[j])
	})

	rows := make([]models.ReportRow, 0, len(ids))
	for _, id := range ids {
		a := aggregates[id]
		rows = append(rows, models.ReportRow{
			WorkCenter:          a.WorkCenter,
			EmployeeID:          a.EmployeeID,
			EmployeeName:        a.EmployeeName,
			WorkedDays:          a.WorkedDays,
			TotalSuspensions:    a.TotalSuspensions,
			TotalInspections:    a.TotalInspections,
			TotalLM:             a.TotalLM,
			ManagementBonus:     a.ManagementBonus,
			AdditionalBonus:     a.AdditionalBonus,
			MotorcycleAllowance: a.MotorcycleAllowance,
			SuspensionAllowance: a.SuspensionAllowance,
			BonusTotal:          a.ManagementBonus + a.AdditionalBonus,
			AllowanceTotal:      a.MotorcycleAllowance + a.SuspensionAllowance,
			Tier:                a.Tier,
		})
	}

	columns := make([]string, len(models.ReportColumns))
	copy(columns, models.ReportColumns)
	return models.Report{Columns: columns, Rows: rows}
}

// ComputeReport runs the whole liquidation over one upload. It keeps no state
// between calls and returns the same report for the same records.
func ComputeReport(records []models.Record) models.Report {
	aggregates := Aggregate(FilterWorked(records), records)
	for _, agg := range aggregates {
		Score(agg)
	}
	return Assemble(aggregates)
}

// lessEmployeeID orders integer ids numerically and everything else
// lexically, integers first. Ids with the same integer value ("123",
// "0123") fall back to their text so the order is total.
func lessEmployeeID(a, b string) bool {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}
