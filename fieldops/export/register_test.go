package export

import (
	"path/filepath"
	"testing"

	"ambe.com/fieldops/fieldops/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.xlsx")

	site := model.Site{ID: "site-1", Name: "Phoenix Mills"}
	employees := []model.Employee{
		{ID: "E1", BiometricCode: "1001", Name: "Asha", Role: "Janitor"},
		{ID: "E2", BiometricCode: "1002", Name: "Binod", Role: "Security"},
	}
	records := []model.AttendanceRecord{
		{ID: "r2", EmployeeID: "E2", Date: "2025-11-05", Status: model.StatusAbsent},
		{ID: "r1", EmployeeID: "E1", Date: "2025-11-05", Status: model.StatusPresent,
			CheckInTime: "09:15", IsSynced: true, SupervisorName: "Ravi"},
	}

	require.NoError(t, WriteRegister(path, site, employees, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, "Status", rows[0][5])

	// Sorted by employee name: Asha before Binod.
	assert.Equal(t, []string{"E1", "1001", "Asha", "Janitor", "2025-11-05", "P", "09:15", "Yes", "Ravi"}, rows[1])
	assert.Equal(t, "E2", rows[2][0])
	assert.Equal(t, "A", rows[2][5])
	assert.Equal(t, "No", rows[2][7])
}

func TestWriteRegisterEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.xlsx")

	require.NoError(t, WriteRegister(path, model.Site{}, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
