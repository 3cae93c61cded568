package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "github.com/piyushraj0718/payrollmanagement/internal/attendance/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/calendar"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statusPresent = "Present"
	statusAbsent  = "Absent"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, organization string, req MarkAttendanceRequest) (AttendanceResponse, error)
	GetMonthSheet(ctx context.Context, organization string, req MonthSheetRequest) (MonthSheetResponse, error)
	SaveMonth(ctx context.Context, organization string, req SaveMonthRequest) (SaveMonthResponse, error)
	GetDailyRoster(ctx context.Context, organization, date string) ([]DailyRosterResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) ensureEmployee(ctx context.Context, repo Repository, organization, employeeID string) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return attendanceerrors.ErrInvalidEmployeeID
	}
	ok, err := repo.EmployeeInOrganization(ctx, organization, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return attendanceerrors.ErrEmployeeNotFound
	}
	return nil
}

func (s *service) Mark(ctx context.Context, organization string, req MarkAttendanceRequest) (AttendanceResponse, error) {
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	if req.IsPresent && !date.IsWorkday() {
		return AttendanceResponse{}, attendanceerrors.ErrSundayPresence
	}

	if err := s.ensureEmployee(ctx, s.repo, organization, req.EmployeeID); err != nil {
		return AttendanceResponse{}, err
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		AttendanceDate: date.Time(),
		IsPresent:      req.IsPresent,
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Error("mark attendance failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	return AttendanceResponse{
		EmployeeID: req.EmployeeID,
		Date:       date.String(),
		IsPresent:  req.IsPresent,
	}, nil
}

// resolvePeriod fills a missing year or month from the current date.
func (s *service) resolvePeriod(year, month int) (int, int, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if !calendar.ValidMonth(year, month) {
		return 0, 0, attendanceerrors.ErrInvalidPeriod
	}
	return year, month, nil
}

func (s *service) GetMonthSheet(ctx context.Context, organization string, req MonthSheetRequest) (MonthSheetResponse, error) {
	year, month, err := s.resolvePeriod(req.Year, req.Month)
	if err != nil {
		return MonthSheetResponse{}, err
	}
	if err := s.ensureEmployee(ctx, s.repo, organization, req.EmployeeID); err != nil {
		return MonthSheetResponse{}, err
	}

	first, last := calendar.MonthRange(year, time.Month(month))
	rows, err := s.repo.FindByEmployeeBetween(ctx, req.EmployeeID, first, last)
	if err != nil {
		s.logger.Error("load month attendance failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return MonthSheetResponse{}, err
	}
	presence := PresenceMap(rows)

	grid := calendar.MonthGrid(year, time.Month(month))
	weeks := make([][]DayCell, len(grid))
	for i, week := range grid {
		cells := make([]DayCell, len(week))
		for j, c := range week {
			cell := DayCell{Date: c.Date.String(), Day: c.Date.Day, InMonth: c.InMonth}
			if c.InMonth {
				cell.Disabled = !c.Date.IsWorkday()
				cell.Present = !cell.Disabled && presence[c.Date]
			}
			cells[j] = cell
		}
		weeks[i] = cells
	}

	return MonthSheetResponse{
		EmployeeID: req.EmployeeID,
		Year:       year,
		Month:      month,
		MonthName:  time.Month(month).String(),
		Weekdays:   weekdayHeaders,
		Weeks:      weeks,
	}, nil
}

// SaveMonth writes a row for every day of the month in one transaction. A day
// is present when it is listed and is not a Sunday.
func (s *service) SaveMonth(ctx context.Context, organization string, req SaveMonthRequest) (SaveMonthResponse, error) {
	if !calendar.ValidMonth(req.Year, req.Month) {
		return SaveMonthResponse{}, attendanceerrors.ErrInvalidPeriod
	}

	listed := make(map[calendar.Date]bool, len(req.PresentDates))
	for _, raw := range req.PresentDates {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return SaveMonthResponse{}, attendanceerrors.ErrInvalidDate.WithDetails(map[string]string{"date": raw})
		}
		if d.Year != req.Year || int(d.Month) != req.Month {
			return SaveMonthResponse{}, attendanceerrors.ErrDateOutsideMonth.WithDetails(map[string]string{"date": raw})
		}
		listed[d] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save month begin tx failed", zap.Error(err))
		return SaveMonthResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.ensureEmployee(ctx, qtx, organization, req.EmployeeID); err != nil {
		return SaveMonthResponse{}, err
	}

	employeeID := uuid.MustParse(req.EmployeeID)
	saved, present := 0, 0
	for _, d := range calendar.MonthDays(req.Year, time.Month(req.Month)) {
		isPresent := listed[d] && d.IsWorkday()
		if err := qtx.Upsert(ctx, &Attendance{
			ID:             uuid.New(),
			EmployeeID:     employeeID,
			AttendanceDate: d.Time(),
			IsPresent:      isPresent,
		}); err != nil {
			s.logger.Error("save month upsert failed",
				zap.String("employee_id", req.EmployeeID),
				zap.String("date", d.String()),
				zap.Error(err),
			)
			return SaveMonthResponse{}, err
		}
		saved++
		if isPresent {
			present++
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save month commit failed", zap.Error(err))
		return SaveMonthResponse{}, err
	}

	s.logger.Info("attendance saved",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days", saved),
	)

	return SaveMonthResponse{EmployeeID: req.EmployeeID, DaysSaved: saved, DaysMarked: present}, nil
}

func (s *service) GetDailyRoster(ctx context.Context, organization, date string) ([]DailyRosterResponse, error) {
	d := calendar.DateOf(s.now())
	if date != "" {
		parsed, err := calendar.ParseDate(date)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
		d = parsed
	}

	rows, err := s.repo.FindDailyRoster(ctx, organization, d)
	if err != nil {
		s.logger.Error("daily roster failed", zap.String("date", d.String()), zap.Error(err))
		return nil, err
	}

	out := make([]DailyRosterResponse, len(rows))
	for i, r := range rows {
		status := statusAbsent
		if r.IsPresent != nil && *r.IsPresent {
			status = statusPresent
		}
		out[i] = DailyRosterResponse{
			EmployeeID: r.EmployeeID.String(),
			Name:       r.Name,
			Department: r.Department,
			Attendance: status,
		}
	}
	return out, nil
}

// PresenceMap indexes stored attendance rows by calendar date.
func PresenceMap(rows []Attendance) map[calendar.Date]bool {
	m := make(map[calendar.Date]bool, len(rows))
	for _, r := range rows {
		m[calendar.DateOf(r.AttendanceDate)] = r.IsPresent
	}
	return m
}
