package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var (
	_ Store = (*PostgresStore)(nil)
	_ Tx    = (*postgresTx)(nil)
)

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A poolSize of zero uses the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	if poolSize > 0 {
		cfg.MaxConns = int32(poolSize) //nolint:gosec // bounded by config validation
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// InTx runs fn inside a single database transaction. The transaction is
// committed if fn returns nil and rolled back otherwise.
func (s *PostgresStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(&postgresTx{tx: tx})
	})
}

// CreateSensor inserts a new sensor.
func (s *PostgresStore) CreateSensor(ctx context.Context, sn *domain.Sensor) error {
	args := pgx.NamedArgs{
		"code":        sn.Code,
		"name":        sn.Name,
		"location":    sn.Location,
		"description": sn.Description,
		"kind":        string(sn.Kind),
		"unit":        sn.Unit,
		"model":       sn.Model,
		"range_min":   sn.RangeMin,
		"range_max":   sn.RangeMax,
		"tank_code":   sn.TankCode,
		"is_critical": sn.IsCritical,
		"active":      sn.Active,
	}

	if err := s.pool.QueryRow(ctx, queryCreateSensor, args).Scan(
		&sn.ID, &sn.CreatedAt, &sn.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating sensor %s: %w", sn.Code, conflict(err))
	}
	return nil
}

// GetSensor retrieves a sensor by its ID.
func (s *PostgresStore) GetSensor(ctx context.Context, id int64) (*domain.Sensor, error) {
	sn := &domain.Sensor{}
	if err := scanSensor(s.pool.QueryRow(ctx, queryGetSensor, id), sn); err != nil {
		return nil, notFound(err)
	}
	return sn, nil
}

// GetSensorByCode retrieves a sensor by its unique device code.
func (s *PostgresStore) GetSensorByCode(ctx context.Context, code string) (*domain.Sensor, error) {
	sn := &domain.Sensor{}
	if err := scanSensor(s.pool.QueryRow(ctx, queryGetSensorByCode, code), sn); err != nil {
		return nil, notFound(err)
	}
	return sn, nil
}

// ListSensors returns every sensor ordered by code.
func (s *PostgresStore) ListSensors(ctx context.Context) ([]domain.Sensor, error) {
	rows, err := s.pool.Query(ctx, queryListSensors)
	if err != nil {
		return nil, fmt.Errorf("querying sensors: %w", err)
	}
	defer rows.Close()

	var sensors []domain.Sensor
	for rows.Next() {
		var sn domain.Sensor
		if err := scanSensor(rows, &sn); err != nil {
			return nil, fmt.Errorf("scanning sensor: %w", err)
		}
		sensors = append(sensors, sn)
	}

	return sensors, rows.Err()
}

// SetSensorActive enables or disables a sensor.
func (s *PostgresStore) SetSensorActive(ctx context.Context, id int64, active bool) error {
	tag, err := s.pool.Exec(ctx, querySetSensorActive, id, active)
	return affected(tag, err, "setting sensor active")
}

// CreateActuator inserts a new actuator.
func (s *PostgresStore) CreateActuator(ctx context.Context, a *domain.Actuator) error {
	args := pgx.NamedArgs{
		"code":        a.Code,
		"name":        a.Name,
		"location":    a.Location,
		"description": a.Description,
		"kind":        string(a.Kind),
		"channel":     a.Channel,
		"power_watts": a.PowerWatts,
		"tank_code":   a.TankCode,
		"is_on":       a.IsOn,
	}

	if err := s.pool.QueryRow(ctx, queryCreateActuator, args).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating actuator %s: %w", a.Code, conflict(err))
	}
	return nil
}

// GetActuator retrieves an actuator by its ID.
func (s *PostgresStore) GetActuator(ctx context.Context, id int64) (*domain.Actuator, error) {
	a := &domain.Actuator{}
	if err := scanActuator(s.pool.QueryRow(ctx, queryGetActuator, id), a); err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// GetActuatorByCode retrieves an actuator by its unique device code.
func (s *PostgresStore) GetActuatorByCode(ctx context.Context, code string) (*domain.Actuator, error) {
	a := &domain.Actuator{}
	if err := scanActuator(s.pool.QueryRow(ctx, queryGetActuatorByCode, code), a); err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// ListActuators returns every actuator ordered by code.
func (s *PostgresStore) ListActuators(ctx context.Context) ([]domain.Actuator, error) {
	rows, err := s.pool.Query(ctx, queryListActuators)
	if err != nil {
		return nil, fmt.Errorf("querying actuators: %w", err)
	}
	defer rows.Close()

	var actuators []domain.Actuator
	for rows.Next() {
		var a domain.Actuator
		if err := scanActuator(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning actuator: %w", err)
		}
		actuators = append(actuators, a)
	}

	return actuators, rows.Err()
}

// SetActuatorOn persists an explicit on/off transition.
func (s *PostgresStore) SetActuatorOn(ctx context.Context, id int64, on bool) error {
	tag, err := s.pool.Exec(ctx, querySetActuatorOn, id, on)
	return affected(tag, err, "setting actuator state")
}

// DeleteSensor removes a sensor. Its readings, rules and alerts are removed
// by the foreign key cascade.
func (s *PostgresStore) DeleteSensor(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, queryDeleteSensor, id)
	return affected(tag, err, "deleting sensor")
}

// DeleteActuator removes an actuator. Rules that referenced it keep existing
// without an actuator.
func (s *PostgresStore) DeleteActuator(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, queryDeleteActuator, id)
	return affected(tag, err, "deleting actuator")
}

// CreateRule inserts a new rule.
func (s *PostgresStore) CreateRule(ctx context.Context, r *domain.Rule) error {
	args := pgx.NamedArgs{
		"sensor_id":      r.SensorID,
		"actuator_id":    r.ActuatorID,
		"comparator":     string(r.Comparator),
		"threshold":      r.Threshold,
		"action_message": r.ActionMessage,
		"severity":       string(r.Severity),
		"active":         r.Active,
	}

	if err := s.pool.QueryRow(ctx, queryCreateRule, args).Scan(
		&r.ID, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating rule: %w", conflict(err))
	}
	return nil
}

// ListRules returns all rules, optionally restricted to one sensor.
func (s *PostgresStore) ListRules(ctx context.Context, sensorID *int64) ([]domain.Rule, error) {
	if sensorID == nil {
		return queryRules(ctx, s.pool, queryListRulesAll)
	}
	return queryRules(ctx, s.pool, queryListRulesBySensor, *sensorID)
}

// SetRuleActive enables or disables a rule.
func (s *PostgresStore) SetRuleActive(ctx context.Context, id int64, active bool) error {
	tag, err := s.pool.Exec(ctx, querySetRuleActive, id, active)
	return affected(tag, err, "setting rule active")
}

// GetReading retrieves a reading by its ID.
func (s *PostgresStore) GetReading(ctx context.Context, id int64) (*domain.Reading, error) {
	r := &domain.Reading{}
	if err := scanReading(s.pool.QueryRow(ctx, queryGetReading, id), r); err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

// ListReadings returns readings matching q, most recent first.
func (s *PostgresStore) ListReadings(ctx context.Context, q *ReadingQuery) ([]domain.Reading, error) {
	if q == nil {
		q = &ReadingQuery{}
	}
	dataSQL, args := q.ToSQL()

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.Reading
	for rows.Next() {
		var r domain.Reading
		if err := scanReading(rows, &r); err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}
		readings = append(readings, r)
	}

	return readings, rows.Err()
}

// LatestReading returns the most recent reading of a sensor.
func (s *PostgresStore) LatestReading(ctx context.Context, sensorID int64) (*domain.Reading, error) {
	r := &domain.Reading{}
	if err := scanReading(s.pool.QueryRow(ctx, queryLatestReading, sensorID), r); err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

// ListAlerts returns alerts matching q, most recent first.
func (s *PostgresStore) ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.Alert, error) {
	if q == nil {
		q = &AlertQuery{}
	}
	dataSQL, args := q.ToSQL()

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID, &a.SensorID, &a.ReadingID, &a.RuleID,
			&a.Severity, &a.Message, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

// postgresTx implements Tx on top of a pgx transaction.
type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) CreateReading(ctx context.Context, r *domain.Reading) error {
	args := pgx.NamedArgs{
		"sensor_id":   r.SensorID,
		"value":       r.Value,
		"unit":        r.Unit,
		"recorded_at": r.Timestamp,
		"source":      string(r.Source),
		"raw_payload": nullableJSON(r.RawPayload),
	}

	if err := t.tx.QueryRow(ctx, queryCreateReading, args).Scan(&r.ID, &r.CreatedAt); err != nil {
		return fmt.Errorf("creating reading: %w", conflict(err))
	}
	return nil
}

func (t *postgresTx) ListActiveRules(ctx context.Context, sensorID int64) ([]domain.Rule, error) {
	return queryRules(ctx, t.tx, queryListActiveRules, sensorID)
}

func (t *postgresTx) CreateAlert(ctx context.Context, a *domain.Alert) error {
	args := pgx.NamedArgs{
		"sensor_id":  a.SensorID,
		"reading_id": a.ReadingID,
		"rule_id":    a.RuleID,
		"severity":   string(a.Severity),
		"message":    a.Message,
		"status":     string(a.Status),
	}

	if err := t.tx.QueryRow(ctx, queryCreateAlert, args).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("creating alert: %w", conflict(err))
	}
	return nil
}

func (t *postgresTx) SwitchActuatorOn(ctx context.Context, actuatorID int64) (bool, error) {
	var wasOn bool
	if err := t.tx.QueryRow(ctx, queryLockActuator, actuatorID).Scan(&wasOn); err != nil {
		return false, fmt.Errorf("locking actuator %d: %w", actuatorID, notFound(err))
	}

	if _, err := t.tx.Exec(ctx, querySetActuatorOn, actuatorID, true); err != nil {
		return wasOn, fmt.Errorf("switching actuator %d on: %w", actuatorID, err)
	}
	return wasOn, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryRules(ctx context.Context, q querier, sql string, args ...any) ([]domain.Rule, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.Rule
	for rows.Next() {
		var r domain.Rule
		if err := rows.Scan(
			&r.ID, &r.SensorID, &r.ActuatorID, &r.Comparator, &r.Threshold,
			&r.ActionMessage, &r.Severity, &r.Active, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}
		rules = append(rules, r)
	}

	return rules, rows.Err()
}

func scanSensor(row pgx.Row, sn *domain.Sensor) error {
	return row.Scan(
		&sn.ID, &sn.Code, &sn.Name, &sn.Location, &sn.Description,
		&sn.Kind, &sn.Unit, &sn.Model, &sn.RangeMin, &sn.RangeMax, &sn.TankCode,
		&sn.IsCritical, &sn.Active, &sn.CreatedAt, &sn.UpdatedAt,
	)
}

func scanActuator(row pgx.Row, a *domain.Actuator) error {
	return row.Scan(
		&a.ID, &a.Code, &a.Name, &a.Location, &a.Description,
		&a.Kind, &a.Channel, &a.PowerWatts, &a.TankCode, &a.IsOn,
		&a.CreatedAt, &a.UpdatedAt,
	)
}

func scanReading(row pgx.Row, r *domain.Reading) error {
	var raw []byte
	if err := row.Scan(
		&r.ID, &r.SensorID, &r.Value, &r.Unit, &r.Timestamp,
		&r.Source, &raw, &r.CreatedAt,
	); err != nil {
		return err
	}
	if len(raw) > 0 {
		r.RawPayload = json.RawMessage(raw)
	}
	return nil
}

// nullableJSON maps an empty payload to SQL NULL.
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Postgres SQLSTATE codes mapped to store sentinels.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// conflict maps unique-constraint violations to ErrConflict and dangling
// references to ErrNotFound.
func conflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrConflict
	case pgForeignKeyViolation:
		return ErrNotFound
	default:
		return err
	}
}

func affected(tag pgconn.CommandTag, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
