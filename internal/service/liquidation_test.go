package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/liquidacion/backend/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func findRow(t *testing.T, report models.Report, id string) models.ReportRow {
	t.Helper()
	for _, r := range report.Rows {
		if r.EmployeeID == id {
			return r
		}
	}
	t.Fatalf("employee %s not in report", id)
	return models.ReportRow{}
}

func TestFilterWorkedExcludesNonWorkedActivities(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "1", Activity: "NORMAL"},
		{EmployeeID: "1", Activity: "PERMISO"},
		{EmployeeID: "1", Activity: "INCAPACIDAD"},
		{EmployeeID: "1", Activity: "VACACIONES"},
		{EmployeeID: "1", Activity: "FUNC ADMON"},
		{EmployeeID: "1", Activity: "RETIRO"},
		{EmployeeID: "1", Activity: ""},
		{EmployeeID: "1", Activity: "vacaciones"},
	}
	got := FilterWorked(records)
	if len(got) != 3 {
		t.Fatalf("expected 3 worked records, got %d: %+v", len(got), got)
	}
	if got[0].Activity != "NORMAL" || got[1].Activity != "" || got[2].Activity != "vacaciones" {
		t.Fatalf("unexpected worked records %+v", got)
	}
	if len(FilterWorked(nil)) != 0 {
		t.Fatalf("expected empty output for empty input")
	}
}

func TestIsOperational(t *testing.T) {
	cases := map[string]bool{
		"OPERATIVO ZONA 1":  true,
		"Centro Operativo":  true,
		"operativo":         true,
		"ADMINISTRATIVO":    false,
		"":                  false,
		"OPERACIONES NORTE": false,
	}
	for center, want := range cases {
		if got := IsOperational(center); got != want {
			t.Fatalf("IsOperational(%q) = %v, want %v", center, got, want)
		}
	}
}

func TestAggregateCountsDistinctWorkedDays(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "E1", EmployeeName: "Ana", WorkCenter: "OPERATIVO ZONA 1", Activity: "NORMAL", Date: day(1), Inspections: 100, LM: 2},
		{EmployeeID: "E1", EmployeeName: "Ana", WorkCenter: "OPERATIVO ZONA 1", Activity: "VACACIONES", Date: day(2)},
		{EmployeeID: "E1", EmployeeName: "Ana", WorkCenter: "OPERATIVO ZONA 1", Activity: "NORMAL", Date: day(1).Add(3 * time.Hour)},
	}
	aggs := Aggregate(FilterWorked(records), records)
	agg := aggs["E1"]
	if agg == nil {
		t.Fatalf("missing aggregate for E1")
	}
	if agg.WorkedDays != 1 {
		t.Fatalf("expected 1 worked day, got %d", agg.WorkedDays)
	}
	if agg.TotalInspections != 100 || agg.TotalLM != 2 {
		t.Fatalf("unexpected totals %+v", agg)
	}
	if !agg.Operational {
		t.Fatalf("expected E1 operational")
	}
}

func TestAggregateSumsInspectionsOnNonWorkedDays(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "7", Activity: "INCAPACIDAD", Date: day(3), Inspections: 12, LM: 1.5, Suspensions: 2},
		{EmployeeID: "7", Activity: "PERMISO", Date: day(4), Inspections: 3, Suspensions: 1},
	}
	agg := Aggregate(FilterWorked(records), records)["7"]
	if agg.WorkedDays != 0 {
		t.Fatalf("expected 0 worked days, got %d", agg.WorkedDays)
	}
	if agg.TotalInspections != 15 || agg.TotalLM != 1.5 || agg.TotalSuspensions != 3 {
		t.Fatalf("unexpected totals %+v", agg)
	}
}

func TestAggregateFirstOccurrenceWins(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "9", EmployeeName: "Luis", WorkCenter: "ADMINISTRATIVO", Date: day(1)},
		{EmployeeID: "9", EmployeeName: "Luis Perez", WorkCenter: "OPERATIVO SUR", Date: day(2)},
	}
	agg := Aggregate(FilterWorked(records), records)["9"]
	if agg.EmployeeName != "Luis" || agg.WorkCenter != "ADMINISTRATIVO" {
		t.Fatalf("expected first occurrence to win, got %+v", agg)
	}
	if !agg.Operational {
		t.Fatalf("expected operational when any record matches")
	}
}

func TestAggregateSkipsBlankDates(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "3", Activity: "NORMAL", Inspections: 4},
		{EmployeeID: "3", Activity: "NORMAL", Date: day(5), Inspections: 1},
	}
	agg := Aggregate(FilterWorked(records), records)["3"]
	if agg.WorkedDays != 1 || agg.TotalInspections != 5 {
		t.Fatalf("unexpected aggregate %+v", agg)
	}
}

func TestComputeReportScenarioDeduplicatedDay(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "E1", WorkCenter: "OPERATIVO ZONA 1", Activity: "NORMAL", Date: day(1), Inspections: 100, LM: 2},
		{EmployeeID: "E1", WorkCenter: "OPERATIVO ZONA 1", Activity: "VACACIONES", Date: day(2)},
		{EmployeeID: "E1", WorkCenter: "OPERATIVO ZONA 1", Activity: "NORMAL", Date: day(1)},
	}
	row := findRow(t, ComputeReport(records), "E1")
	if row.WorkedDays != 1 {
		t.Fatalf("expected 1 worked day, got %d", row.WorkedDays)
	}
	if row.TotalInspections != 100 || row.Tier != TierNone || row.ManagementBonus != 0 {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.MotorcycleAllowance != 22000 {
		t.Fatalf("expected motorcycle allowance 22000, got %v", row.MotorcycleAllowance)
	}
}

func TestComputeReportScenarioBronzeNonOperational(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "E2", WorkCenter: "ADMINISTRATIVO", Activity: "NORMAL", Date: day(1), Inspections: 120},
		{EmployeeID: "E2", WorkCenter: "ADMINISTRATIVO", Activity: "NORMAL", Date: day(2), Inspections: 100},
	}
	row := findRow(t, ComputeReport(records), "E2")
	if row.ManagementBonus != 780000 {
		t.Fatalf("expected management bonus 780000, got %v", row.ManagementBonus)
	}
	if row.AdditionalBonus != 180000 || row.Tier != TierBronze {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.MotorcycleAllowance != 0 {
		t.Fatalf("expected no motorcycle allowance, got %v", row.MotorcycleAllowance)
	}
	if row.WorkedDays != 2 {
		t.Fatalf("expected 2 worked days, got %d", row.WorkedDays)
	}
}

func TestComputeReportScenarioGold(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "E3", WorkCenter: "OPERATIVO", Activity: "NORMAL", Date: day(1), Inspections: 260, Suspensions: 4},
	}
	row := findRow(t, ComputeReport(records), "E3")
	if row.ManagementBonus != 1500000 || row.AdditionalBonus != 500000 || row.Tier != TierGold {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.SuspensionAllowance != 12000 {
		t.Fatalf("expected suspension allowance 12000, got %v", row.SuspensionAllowance)
	}
	if row.BonusTotal != 2000000 || row.AllowanceTotal != 22000+12000 {
		t.Fatalf("unexpected totals %+v", row)
	}
}

func TestComputeReportEmptyInput(t *testing.T) {
	report := ComputeReport(nil)
	if len(report.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(report.Rows))
	}
	if !reflect.DeepEqual(report.Columns, models.ReportColumns) {
		t.Fatalf("unexpected columns %v", report.Columns)
	}
	if len(report.Columns) != 14 {
		t.Fatalf("expected 14 columns, got %d", len(report.Columns))
	}
}

func TestComputeReportIdempotentAndSorted(t *testing.T) {
	records := []models.Record{
		{EmployeeID: "100", Activity: "NORMAL", Date: day(1), Inspections: 200},
		{EmployeeID: "20", Activity: "NORMAL", Date: day(1), Inspections: 240},
		{EmployeeID: "3", WorkCenter: "operativo", Activity: "NORMAL", Date: day(2), Inspections: 10},
		{EmployeeID: "ABC", Activity: "RETIRO", Date: day(2), Inspections: 1},
		{EmployeeID: "20", Activity: "PERMISO", Date: day(3), Inspections: 5},
	}
	first := ComputeReport(records)
	second := ComputeReport(records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports")
	}
	var ids []string
	for _, r := range first.Rows {
		ids = append(ids, r.EmployeeID)
	}
	want := []string{"3", "20", "100", "ABC"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected order %v, got %v", want, ids)
	}
}

func TestComputeReportInvariants(t *testing.T) {
	var records []models.Record
	for i := 0; i < 40; i++ {
		center := "ADMINISTRATIVO"
		if i%3 == 0 {
			center = "OPERATIVO"
		}
		activity := "NORMAL"
		if i%4 == 0 {
			activity = "VACACIONES"
		}
		records = append(records, models.Record{
			EmployeeID:  string(rune('A' + i%5)),
			WorkCenter:  center,
			Activity:    activity,
			Date:        day(1 + i%7),
			Inspections: float64(i * 3),
			Suspensions: float64(i % 2),
		})
	}
	distinct := map[string]map[string]struct{}{}
	for _, r := range records {
		if distinct[r.EmployeeID] == nil {
			distinct[r.EmployeeID] = map[string]struct{}{}
		}
		distinct[r.EmployeeID][r.Date.Format("2006-01-02")] = struct{}{}
	}

	aggs := Aggregate(FilterWorked(records), records)
	for _, row := range ComputeReport(records).Rows {
		if row.BonusTotal != row.ManagementBonus+row.AdditionalBonus {
			t.Fatalf("bonus total mismatch %+v", row)
		}
		if row.AllowanceTotal != row.MotorcycleAllowance+row.SuspensionAllowance {
			t.Fatalf("allowance total mismatch %+v", row)
		}
		if row.WorkedDays > len(distinct[row.EmployeeID]) {
			t.Fatalf("worked days %d exceed distinct dates %d", row.WorkedDays, len(distinct[row.EmployeeID]))
		}
		if !aggs[row.EmployeeID].Operational && row.MotorcycleAllowance != 0 {
			t.Fatalf("non-operational employee got motorcycle allowance %+v", row)
		}
	}
}

func TestComputeReportOrdersIdsWithEqualIntegerValue(t *testing.T) {
	ids := []string{"123", "0123", "00123", "+123", "124", "0124", "12"}
	var records []models.Record
	for _, id := range ids {
		records = append(records, models.Record{EmployeeID: id, Activity: "NORMAL", Date: day(1), Inspections: 1})
	}
	want := []string{"12", "+123", "00123", "0123", "123", "0124", "124"}
	for run := 0; run < 50; run++ {
		var got []string
		for _, r := range ComputeReport(records).Rows {
			got = append(got, r.EmployeeID)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: expected order %v, got %v", run, want, got)
		}
	}
}

func TestLessEmployeeIDIsAntisymmetric(t *testing.T) {
	ids := []string{"123", "0123", "+123", "-5", "ABC", "abc", ""}
	for _, a := range ids {
		for _, b := range ids {
			if a != b && lessEmployeeID(a, b) == lessEmployeeID(b, a) {
				t.Fatalf("lessEmployeeID(%q, %q) and reverse agree", a, b)
			}
		}
	}
}
