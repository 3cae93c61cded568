package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	attendanceerrors "github.com/piyushraj0718/payrollmanagement/internal/attendance/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/calendar"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn                 func(tx *sql.Tx) Repository
	employeeInOrganizationFn func(ctx context.Context, organization, employeeID string) (bool, error)
	upsertFn                 func(ctx context.Context, a *Attendance) error
	findByEmployeeBetweenFn  func(ctx context.Context, employeeID string, from, to calendar.Date) ([]Attendance, error)
	findDailyRosterFn        func(ctx context.Context, organization string, date calendar.Date) ([]RosterRow, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) EmployeeInOrganization(ctx context.Context, organization, employeeID string) (bool, error) {
	return f.employeeInOrganizationFn(ctx, organization, employeeID)
}
func (f *fakeRepo) Upsert(ctx context.Context, a *Attendance) error { return f.upsertFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeBetween(ctx context.Context, employeeID string, from, to calendar.Date) ([]Attendance, error) {
	return f.findByEmployeeBetweenFn(ctx, employeeID, from, to)
}
func (f *fakeRepo) FindDailyRoster(ctx context.Context, organization string, date calendar.Date) ([]RosterRow, error) {
	return f.findDailyRosterFn(ctx, organization, date)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeInOrganizationFn = func(ctx context.Context, organization, employeeID string) (bool, error) {
		return organization == "Acme", nil
	}
	return repo
}

func newTestService(db *sql.DB, repo Repository, now time.Time) *service {
	svc := NewService(db, repo).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Mark(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()

	t.Run("upserts the day", func(t *testing.T) {
		repo := newFakeRepo()
		var saved Attendance
		repo.upsertFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }

		svc := newTestService(nil, repo, time.Now())
		resp, err := svc.Mark(ctx, "Acme", MarkAttendanceRequest{EmployeeID: employeeID, Date: "2024-03-04", IsPresent: true})

		assert.NoError(t, err)
		assert.Equal(t, "2024-03-04", resp.Date)
		assert.True(t, saved.IsPresent)
		assert.Equal(t, calendar.NewDate(2024, time.March, 4), calendar.DateOf(saved.AttendanceDate))
	})

	t.Run("employee of another organization", func(t *testing.T) {
		svc := newTestService(nil, newFakeRepo(), time.Now())
		_, err := svc.Mark(ctx, "Globex", MarkAttendanceRequest{EmployeeID: employeeID, Date: "2024-03-04", IsPresent: true})
		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})

	t.Run("sunday cannot be present", func(t *testing.T) {
		svc := newTestService(nil, newFakeRepo(), time.Now())
		_, err := svc.Mark(ctx, "Acme", MarkAttendanceRequest{EmployeeID: employeeID, Date: "2024-03-03", IsPresent: true})
		assert.ErrorIs(t, err, attendanceerrors.ErrSundayPresence)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := newTestService(nil, newFakeRepo(), time.Now())
		_, err := svc.Mark(ctx, "Acme", MarkAttendanceRequest{EmployeeID: employeeID, Date: "04-03-2024"})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
	})
}

func TestService_GetMonthSheet(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()

	repo := newFakeRepo()
	repo.findByEmployeeBetweenFn = func(ctx context.Context, id string, from, to calendar.Date) ([]Attendance, error) {
		assert.Equal(t, calendar.NewDate(2024, time.March, 1), from)
		assert.Equal(t, calendar.NewDate(2024, time.March, 31), to)
		return []Attendance{
			{AttendanceDate: calendar.NewDate(2024, time.March, 1).Time(), IsPresent: true},
			{AttendanceDate: calendar.NewDate(2024, time.March, 2).Time(), IsPresent: false},
			// stale present flag on a Sunday is not shown
			{AttendanceDate: calendar.NewDate(2024, time.March, 3).Time(), IsPresent: true},
		}, nil
	}

	// defaults to the current month
	svc := newTestService(nil, repo, time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC))
	sheet, err := svc.GetMonthSheet(ctx, "Acme", MonthSheetRequest{EmployeeID: employeeID})

	assert.NoError(t, err)
	assert.Equal(t, 2024, sheet.Year)
	assert.Equal(t, 3, sheet.Month)
	assert.Equal(t, "March", sheet.MonthName)
	assert.Equal(t, "Sun", sheet.Weekdays[0])
	assert.Len(t, sheet.Weeks, 6)

	first := sheet.Weeks[0]
	assert.False(t, first[0].InMonth)
	assert.Equal(t, "2024-03-01", first[5].Date)
	assert.True(t, first[5].Present)
	assert.False(t, first[6].Present)

	sunday := sheet.Weeks[1][0]
	assert.Equal(t, "2024-03-03", sunday.Date)
	assert.True(t, sunday.Disabled)
	assert.False(t, sunday.Present)
}

func TestService_SaveMonth(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()

	t.Run("writes every day in one transaction", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newFakeRepo()
		present := map[string]bool{}
		count := 0
		repo.upsertFn = func(ctx context.Context, a *Attendance) error {
			count++
			present[calendar.DateOf(a.AttendanceDate).String()] = a.IsPresent
			return nil
		}

		mock.ExpectBegin()
		mock.ExpectCommit()

		svc := newTestService(db, repo, time.Now())
		resp, err := svc.SaveMonth(ctx, "Acme", SaveMonthRequest{
			EmployeeID:   employeeID,
			Year:         2024,
			Month:        2,
			PresentDates: []string{"2024-02-01", "2024-02-04", "2024-02-29"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 29, resp.DaysSaved)
		assert.Equal(t, 2, resp.DaysMarked)
		assert.Equal(t, 29, count)
		assert.True(t, present["2024-02-01"])
		assert.False(t, present["2024-02-04"], "sunday is never present")
		assert.True(t, present["2024-02-29"])
		assert.False(t, present["2024-02-02"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("upsert failure rolls back", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		repo := newFakeRepo()
		repo.upsertFn = func(ctx context.Context, a *Attendance) error { return errors.New("deadlock") }

		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := newTestService(db, repo, time.Now())
		_, err := svc.SaveMonth(ctx, "Acme", SaveMonthRequest{EmployeeID: employeeID, Year: 2024, Month: 2})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("date outside month", func(t *testing.T) {
		svc := newTestService(nil, newFakeRepo(), time.Now())
		_, err := svc.SaveMonth(ctx, "Acme", SaveMonthRequest{
			EmployeeID: employeeID, Year: 2024, Month: 2, PresentDates: []string{"2024-03-01"},
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrDateOutsideMonth)
	})

	t.Run("invalid month", func(t *testing.T) {
		svc := newTestService(nil, newFakeRepo(), time.Now())
		_, err := svc.SaveMonth(ctx, "Acme", SaveMonthRequest{EmployeeID: employeeID, Year: 2024, Month: 13})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidPeriod)
	})
}

func TestService_GetDailyRoster(t *testing.T) {
	yes, no := true, false
	repo := newFakeRepo()
	repo.findDailyRosterFn = func(ctx context.Context, organization string, date calendar.Date) ([]RosterRow, error) {
		assert.Equal(t, calendar.NewDate(2024, time.March, 4), date)
		return []RosterRow{
			{EmployeeID: uuid.New(), Name: "Ann", Department: "Ops", IsPresent: &yes},
			{EmployeeID: uuid.New(), Name: "Bob", Department: "Ops", IsPresent: &no},
			{EmployeeID: uuid.New(), Name: "Cid", Department: "HR"},
		}, nil
	}

	svc := newTestService(nil, repo, time.Now())
	rows, err := svc.GetDailyRoster(context.Background(), "Acme", "2024-03-04")

	assert.NoError(t, err)
	if assert.Len(t, rows, 3) {
		assert.Equal(t, "Present", rows[0].Attendance)
		assert.Equal(t, "Absent", rows[1].Attendance)
		assert.Equal(t, "Absent", rows[2].Attendance)
	}
}
