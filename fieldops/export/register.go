package export

import (
	"fmt"
	"sort"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/utils"
	"github.com/xuri/excelize/v2"
)

var headers = []string{
	"Employee ID", "Biometric Code", "Name", "Role",
	"Date", "Status", "Check-In", "Synced", "Supervisor",
}

// WriteRegister renders the buffered attendance register for one site as an
// XLSX workbook. Plain data out: one header row, one row per record, sorted
// by employee name.
func WriteRegister(path string, site model.Site, employees []model.Employee, records []model.AttendanceRecord) error {
	byEmployee := make(map[string]model.Employee, len(employees))
	for _, e := range employees {
		byEmployee[e.ID] = e
	}

	// One block of rows per employee, blocks ordered by employee name and
	// rows within a block by date.
	groups := utils.GroupBy(records, func(r model.AttendanceRecord) string {
		return r.EmployeeID
	})
	employeeIDs := make([]string, 0, len(groups))
	for id := range groups {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Slice(employeeIDs, func(i, j int) bool {
		ni := byEmployee[employeeIDs[i]].Name
		nj := byEmployee[employeeIDs[j]].Name
		if ni != nj {
			return ni < nj
		}
		return employeeIDs[i] < employeeIDs[j]
	})

	var sorted []model.AttendanceRecord
	for _, id := range employeeIDs {
		recs := groups[id]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Date < recs[j].Date })
		sorted = append(sorted, recs...)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Attendance"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	sheet = "Attendance"

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for row, rec := range sorted {
		emp := byEmployee[rec.EmployeeID]
		synced := "No"
		if rec.IsSynced {
			synced = "Yes"
		}
		values := []interface{}{
			rec.EmployeeID, emp.BiometricCode, emp.Name, emp.Role,
			rec.Date, string(rec.Status), rec.CheckInTime, synced, rec.SupervisorName,
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	if site.Name != "" {
		f.SetDocProps(&excelize.DocProperties{Title: "Attendance Register - " + site.Name})
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save register: %w", err)
	}
	return nil
}
