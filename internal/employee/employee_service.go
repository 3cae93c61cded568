package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "github.com/piyushraj0718/payrollmanagement/internal/employee/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKeyPrefix = "employees:options:"
	optionsCacheTTL          = time.Hour
)

func GetEmployeeOptionsKey(organization string) string {
	return EmployeeOptionsKeyPrefix + organization
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, organization string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, organization, search string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, organization string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, organization, id string) (EmployeeResponse, error)
	Update(ctx context.Context, organization, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, organization, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// validateFields trims name and department and checks the salary.
func validateFields(name, department string, salary decimal.Decimal) (string, string, error) {
	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	if name == "" {
		return "", "", employeeerrors.ErrNameRequired
	}
	if department == "" {
		return "", "", employeeerrors.ErrDepartmentRequired
	}
	if !salary.IsPositive() {
		return "", "", employeeerrors.ErrInvalidBasicSalary
	}
	return name, department, nil
}

func (s *service) Create(
	ctx context.Context,
	organization string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("organization", organization),
	)

	name, department, err := validateFields(req.Name, req.Department, req.BasicSalary)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:           uuid.New(),
		Organization: organization,
		Name:         name,
		Department:   department,
		BasicSalary:  req.BasicSalary.Round(2),
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx, organization)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	organization, search string,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("organization", organization),
		zap.String("q", search),
	)
	empls, err := s.repo.FindAllByOrganization(ctx, organization, search)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context, organization string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeOptionsKey(organization)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// collapses concurrent misses for the same organization into one query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptionsByOrganization(ctx, organization)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeResponse, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeResponse{ID: e.ID.String(), Name: e.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	organization, id string,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndOrganization(ctx, organization, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	organization, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("organization", organization),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	name, department, err := validateFields(req.Name, req.Department, req.BasicSalary)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDAndOrganization(ctx, organization, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = name
	empl.Department = department
	empl.BasicSalary = req.BasicSalary.Round(2)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx, organization)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

// Delete removes the employee together with all of their attendance records.
func (s *service) Delete(
	ctx context.Context,
	organization, id string,
) error {
	s.logger.Debug("delete employee requested",
		zap.String("organization", organization),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, organization, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.DeleteAttendances(ctx, id); err != nil {
		s.logger.Error("delete employee attendances failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx, organization)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, organization string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeOptionsKey(organization)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           empl.ID.String(),
		Name:         empl.Name,
		Department:   empl.Department,
		BasicSalary:  empl.BasicSalary.StringFixed(2),
		Organization: empl.Organization,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
