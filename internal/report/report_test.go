package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hrconsole/internal/models"
)

func TestWriteAttendance(t *testing.T) {
	employees := []models.Employee{
		{EmployeeID: "E1", FullName: "Ada Lovelace", Department: "Engineering"},
		{EmployeeID: "E2", FullName: "Bob Fett", Department: "Sales"},
	}
	records := []models.AttendanceRecord{
		{ID: 1, EmployeeID: "E1", AttendanceDate: "2026-08-27", Status: models.StatusPresent},
		{ID: 2, EmployeeID: "E1", AttendanceDate: "2026-08-28", Status: models.StatusPresent},
		{ID: 3, EmployeeID: "E2", AttendanceDate: "2026-08-28", Status: models.StatusAbsent},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteAttendance(path, employees, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per record")
	require.Equal(t, "Employee ID", rows[0][1])
	require.Equal(t, "E1", rows[1][1])
	require.Equal(t, "Ada Lovelace", rows[1][2])
	require.Equal(t, "PRESENT", rows[1][4])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 3, "header plus one row per department")
	// Departments are written sorted.
	require.Equal(t, []string{"Engineering", "2", "2"}, summary[1][:3])
	require.Equal(t, []string{"Sales", "1", "0"}, summary[2][:3])
}

func TestWriteAttendance_EmptyInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteAttendance(path, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}

func TestWriteAttendance_UnknownEmployeeHasEmptyName(t *testing.T) {
	records := []models.AttendanceRecord{
		{ID: 1, EmployeeID: "GHOST", AttendanceDate: "2026-08-28", Status: models.StatusPresent},
	}

	path := filepath.Join(t.TempDir(), "ghost.xlsx")
	require.NoError(t, WriteAttendance(path, nil, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Attendance", "C2")
	require.NoError(t, err)
	require.Equal(t, "", got)
}
