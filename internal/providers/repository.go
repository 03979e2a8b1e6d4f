package providers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hsd-hub/ngo-explorer/internal/platform/db"
	"github.com/hsd-hub/ngo-explorer/internal/platform/httpx"
)

// FilterValues lists the distinct categorical values used to populate the
// UI filter choices.
type FilterValues struct {
	LocalHealthDistricts  []string `json:"local_health_districts"`
	CommissioningAgencies []string `json:"commissioning_agencies"`
}

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Provider, int, error)
	Get(ctx context.Context, id int64) (Provider, error)
	DistinctFilterValues(ctx context.Context) (FilterValues, error)
	CreateBatch(ctx context.Context, records []Provider) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(conn *sql.DB) Repository {
	return &repository{db: conn}
}

const selectColumns = `SELECT id, provider_name, provider_identifier_abn, delivery_area,
	local_government_area, local_health_district, target_group, classification,
	gender, indigenous_status, commissioning_agency, program_name,
	agreement_identifier, agreement_start_date, agreement_end_date
	FROM providers`

// List returns one page of providers plus the total count of rows matching
// the same predicate. The count deliberately ignores skip/limit so callers
// always see the full matching set size.
func (r *repository) List(ctx context.Context, opts ListOptions) ([]Provider, int, error) {
	where := ` WHERE 1=1`
	args := []any{}

	if opts.LocalHealthDistrict != "" {
		where += ` AND local_health_district = ?`
		args = append(args, opts.LocalHealthDistrict)
	}
	if opts.CommissioningAgency != "" {
		where += ` AND commissioning_agency = ?`
		args = append(args, opts.CommissioningAgency)
	}
	if opts.Search != "" {
		// SQLite LIKE is only case-insensitive for ASCII; lowering both
		// sides keeps behaviour predictable. NULL columns never match.
		where += ` AND (LOWER(provider_name) LIKE ? ESCAPE '\'` +
			` OR LOWER(program_name) LIKE ? ESCAPE '\'` +
			` OR LOWER(local_government_area) LIKE ? ESCAPE '\')`
		pattern := "%" + escapeLike(strings.ToLower(opts.Search)) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM providers`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("providers: count: %w", err)
	}

	query := selectColumns + where + ` ORDER BY provider_name ASC, id ASC LIMIT ? OFFSET ?`
	args = append(args, opts.Limit, opts.Skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("providers: list: %w", err)
	}
	defer rows.Close()

	records := make([]Provider, 0, opts.Limit)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("providers: scan: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("providers: list rows: %w", err)
	}
	return records, total, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Provider, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	p, err := scanProvider(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Provider{}, fmt.Errorf("provider %d: %w", id, httpx.ErrNotFound)
	}
	if err != nil {
		return Provider{}, fmt.Errorf("providers: get %d: %w", id, err)
	}
	return p, nil
}

// DistinctFilterValues recomputes the distinct non-empty categorical values
// on every call. No caching; acceptable at this data scale.
func (r *repository) DistinctFilterValues(ctx context.Context) (FilterValues, error) {
	districts, err := r.distinctColumn(ctx, "local_health_district")
	if err != nil {
		return FilterValues{}, err
	}
	agencies, err := r.distinctColumn(ctx, "commissioning_agency")
	if err != nil {
		return FilterValues{}, err
	}
	return FilterValues{LocalHealthDistricts: districts, CommissioningAgencies: agencies}, nil
}

func (r *repository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	query := `SELECT DISTINCT ` + column + ` FROM providers WHERE ` + column +
		` IS NOT NULL AND ` + column + ` != '' ORDER BY ` + column + ` ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("providers: distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("providers: distinct %s scan: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// CreateBatch inserts records inside one transaction. A batch is the unit of
// flush for the importer: either every record in it commits or none do.
func (r *repository) CreateBatch(ctx context.Context, records []Provider) error {
	return db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO providers (
			provider_name, provider_identifier_abn, delivery_area,
			local_government_area, local_health_district, target_group,
			classification, gender, indigenous_status, commissioning_agency,
			program_name, agreement_identifier, agreement_start_date,
			agreement_end_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("providers: prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range records {
			if _, err := stmt.ExecContext(ctx,
				p.ProviderName, p.ProviderIdentifierABN, p.DeliveryArea,
				p.LocalGovernmentArea, p.LocalHealthDistrict, p.TargetGroup,
				p.Classification, p.Gender, p.IndigenousStatus, p.CommissioningAgency,
				p.ProgramName, p.AgreementIdentifier, p.AgreementStartDate,
				p.AgreementEndDate,
			); err != nil {
				return fmt.Errorf("providers: insert: %w", err)
			}
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProvider(row rowScanner) (Provider, error) {
	var p Provider
	err := row.Scan(&p.ID, &p.ProviderName, &p.ProviderIdentifierABN, &p.DeliveryArea,
		&p.LocalGovernmentArea, &p.LocalHealthDistrict, &p.TargetGroup, &p.Classification,
		&p.Gender, &p.IndigenousStatus, &p.CommissioningAgency, &p.ProgramName,
		&p.AgreementIdentifier, &p.AgreementStartDate, &p.AgreementEndDate)
	return p, err
}

// escapeLike escapes the LIKE wildcards so a search term is matched
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
