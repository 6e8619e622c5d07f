package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mecsphere/appo/engine/instanceinfo"
	"github.com/mecsphere/appo/engine/instanceinfo/uc"
)

const tableName = "app_instance_info"

var columns = []string{
	"tenant_id",
	"app_instance_id",
	"app_name",
	"app_package_id",
	"app_descriptor",
	"mec_host",
	"applcm_host",
	"operational_status",
	"operation_info",
	"create_time",
	"update_time",
}

// Repository implements the instance info repository interface using
// PostgreSQL
type Repository struct {
	db DBInterface
}

// DBInterface defines the minimal interface needed by the repository
type DBInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewRepository creates a new instance info repository
func NewRepository(db DBInterface) uc.Repository {
	return &Repository{db: db}
}

// GetInstanceInfo retrieves one record by (tenant id, app instance id)
func (r *Repository) GetInstanceInfo(ctx context.Context, tenantID, appInstanceID string) (*instanceinfo.AppInstanceInfo, error) {
	query, args, err := squirrel.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"tenant_id": tenantID, "app_instance_id": appInstanceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var info instanceinfo.AppInstanceInfo
	if err := pgxscan.Get(ctx, r.db, &info, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, uc.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("scanning instance info: %w", err)
	}
	return &info, nil
}

// ListInstanceInfos retrieves all records of a tenant, newest first
func (r *Repository) ListInstanceInfos(ctx context.Context, tenantID string) ([]*instanceinfo.AppInstanceInfo, error) {
	query, args, err := squirrel.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("create_time DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var infos []*instanceinfo.AppInstanceInfo
	if err := pgxscan.Select(ctx, r.db, &infos, query, args...); err != nil {
		return nil, fmt.Errorf("scanning instance infos: %w", err)
	}
	return infos, nil
}

// CreateInstanceInfo inserts a new record
func (r *Repository) CreateInstanceInfo(ctx context.Context, info *instanceinfo.AppInstanceInfo) error {
	query, args, err := squirrel.Insert(tableName).
		Columns(columns...).
		Values(
			info.TenantID,
			info.AppInstanceID,
			info.AppName,
			info.AppPackageID,
			info.AppDescriptor,
			info.MecHost,
			info.ApplcmHost,
			info.OperationalStatus,
			info.OperationInfo,
			info.CreateTime,
			info.UpdateTime,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return uc.ErrInstanceExists
		}
		return fmt.Errorf("inserting instance info: %w", err)
	}
	return nil
}

// UpdateInstanceInfo updates the mutable fields of a record and returns the
// stored result
func (r *Repository) UpdateInstanceInfo(ctx context.Context, info *instanceinfo.AppInstanceInfo) (*instanceinfo.AppInstanceInfo, error) {
	query, args, err := squirrel.Update(tableName).
		Set("app_name", info.AppName).
		Set("app_package_id", info.AppPackageID).
		Set("app_descriptor", info.AppDescriptor).
		Set("mec_host", info.MecHost).
		Set("applcm_host", info.ApplcmHost).
		Set("operational_status", info.OperationalStatus).
		Set("operation_info", info.OperationInfo).
		Set("update_time", info.UpdateTime).
		Where(squirrel.Eq{"tenant_id": info.TenantID, "app_instance_id": info.AppInstanceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("updating instance info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, uc.ErrInstanceNotFound
	}
	return r.GetInstanceInfo(ctx, info.TenantID, info.AppInstanceID)
}

// DeleteInstanceInfo removes a record by (tenant id, app instance id)
func (r *Repository) DeleteInstanceInfo(ctx context.Context, tenantID, appInstanceID string) error {
	query, args, err := squirrel.Delete(tableName).
		Where(squirrel.Eq{"tenant_id": tenantID, "app_instance_id": appInstanceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting instance info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return uc.ErrInstanceNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
