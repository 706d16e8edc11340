package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// MemoryStore implements Store in process memory. It backs the "memory"
// database driver and end-to-end tests. Transactions are serialized and a
// failed transaction restores the state it started from.
type MemoryStore struct {
	mu  sync.Mutex
	now func() time.Time
	d   memData
}

// memData is the full state of a MemoryStore. It is copied wholesale to
// take a rollback snapshot.
type memData struct {
	sensors   map[int64]domain.Sensor
	actuators map[int64]domain.Actuator
	rules     map[int64]domain.Rule
	readings  map[int64]domain.Reading
	alerts    map[int64]domain.Alert
	seq       memSequences
}

// memSequences mirrors one BIGSERIAL per table.
type memSequences struct {
	sensor, actuator, rule, reading, alert int64
}

func (d *memData) clone() memData {
	return memData{
		sensors:   maps.Clone(d.sensors),
		actuators: maps.Clone(d.actuators),
		rules:     maps.Clone(d.rules),
		readings:  maps.Clone(d.readings),
		alerts:    maps.Clone(d.alerts),
		seq:       d.seq,
	}
}

func next(seq *int64) int64 {
	*seq++
	return *seq
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Tx    = (*memoryTx)(nil)
)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithNow sets the clock used for created_at and updated_at columns.
func WithNow(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		now: time.Now,
		d: memData{
			sensors:   map[int64]domain.Sensor{},
			actuators: map[int64]domain.Actuator{},
			rules:     map[int64]domain.Rule{},
			readings:  map[int64]domain.Reading{},
			alerts:    map[int64]domain.Alert{},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) stamp() time.Time {
	return s.now().UTC()
}

// Ping always succeeds.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Migrate is a no-op; the in-memory schema needs no setup.
func (s *MemoryStore) Migrate(_ context.Context) error {
	return nil
}

// InTx runs fn with exclusive access to the store. If fn returns an error
// every write it made is discarded.
func (s *MemoryStore) InTx(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := s.d.clone()
	if err := fn(&memoryTx{s: s}); err != nil {
		s.d = snapshot
		return err
	}
	return nil
}

// CreateSensor inserts a new sensor.
func (s *MemoryStore) CreateSensor(_ context.Context, sn *domain.Sensor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.d.sensors {
		if existing.Code == sn.Code {
			return fmt.Errorf("creating sensor %s: %w", sn.Code, ErrConflict)
		}
	}

	sn.ID = next(&s.d.seq.sensor)
	sn.CreatedAt = s.stamp()
	sn.UpdatedAt = sn.CreatedAt
	s.d.sensors[sn.ID] = *sn
	return nil
}

// GetSensor retrieves a sensor by its ID.
func (s *MemoryStore) GetSensor(_ context.Context, id int64) (*domain.Sensor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sn, ok := s.d.sensors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sn, nil
}

// GetSensorByCode retrieves a sensor by its unique device code.
func (s *MemoryStore) GetSensorByCode(_ context.Context, code string) (*domain.Sensor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sn := range s.d.sensors {
		if sn.Code == code {
			return &sn, nil
		}
	}
	return nil, ErrNotFound
}

// ListSensors returns every sensor ordered by code.
func (s *MemoryStore) ListSensors(_ context.Context) ([]domain.Sensor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sensors := slices.Collect(maps.Values(s.d.sensors))
	sort.Slice(sensors, func(i, j int) bool {
		return sensors[i].Code < sensors[j].Code
	})
	return sensors, nil
}

// SetSensorActive enables or disables a sensor.
func (s *MemoryStore) SetSensorActive(_ context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sn, ok := s.d.sensors[id]
	if !ok {
		return fmt.Errorf("setting sensor active: %w", ErrNotFound)
	}
	sn.Active = active
	sn.UpdatedAt = s.stamp()
	s.d.sensors[id] = sn
	return nil
}

// DeleteSensor removes a sensor with its readings, rules and alerts.
// References to the removed readings and rules from any other alert are
// cleared.
func (s *MemoryStore) DeleteSensor(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.d.sensors[id]; !ok {
		return fmt.Errorf("deleting sensor: %w", ErrNotFound)
	}
	delete(s.d.sensors, id)

	readings := make(map[int64]struct{})
	for rid, r := range s.d.readings {
		if r.SensorID == id {
			readings[rid] = struct{}{}
			delete(s.d.readings, rid)
		}
	}
	rules := make(map[int64]struct{})
	for rid, r := range s.d.rules {
		if r.SensorID == id {
			rules[rid] = struct{}{}
			delete(s.d.rules, rid)
		}
	}

	for aid, a := range s.d.alerts {
		if a.SensorID == id {
			delete(s.d.alerts, aid)
			continue
		}
		if a.ReadingID != nil {
			if _, gone := readings[*a.ReadingID]; gone {
				a.ReadingID = nil
			}
		}
		if a.RuleID != nil {
			if _, gone := rules[*a.RuleID]; gone {
				a.RuleID = nil
			}
		}
		s.d.alerts[aid] = a
	}
	return nil
}

// CreateActuator inserts a new actuator.
func (s *MemoryStore) CreateActuator(_ context.Context, a *domain.Actuator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.d.actuators {
		if existing.Code == a.Code {
			return fmt.Errorf("creating actuator %s: %w", a.Code, ErrConflict)
		}
	}

	a.ID = next(&s.d.seq.actuator)
	a.CreatedAt = s.stamp()
	a.UpdatedAt = a.CreatedAt
	s.d.actuators[a.ID] = *a
	return nil
}

// GetActuator retrieves an actuator by its ID.
func (s *MemoryStore) GetActuator(_ context.Context, id int64) (*domain.Actuator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.d.actuators[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

// GetActuatorByCode retrieves an actuator by its unique device code.
func (s *MemoryStore) GetActuatorByCode(_ context.Context, code string) (*domain.Actuator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.d.actuators {
		if a.Code == code {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

// ListActuators returns every actuator ordered by code.
func (s *MemoryStore) ListActuators(_ context.Context) ([]domain.Actuator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actuators := slices.Collect(maps.Values(s.d.actuators))
	sort.Slice(actuators, func(i, j int) bool {
		return actuators[i].Code < actuators[j].Code
	})
	return actuators, nil
}

// SetActuatorOn persists an explicit on/off transition.
func (s *MemoryStore) SetActuatorOn(_ context.Context, id int64, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.setActuatorOn(id, on) {
		return fmt.Errorf("setting actuator state: %w", ErrNotFound)
	}
	return nil
}

func (s *MemoryStore) setActuatorOn(id int64, on bool) bool {
	a, ok := s.d.actuators[id]
	if !ok {
		return false
	}
	a.IsOn = on
	a.UpdatedAt = s.stamp()
	s.d.actuators[id] = a
	return true
}

// DeleteActuator removes an actuator and detaches it from its rules.
func (s *MemoryStore) DeleteActuator(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.d.actuators[id]; !ok {
		return fmt.Errorf("deleting actuator: %w", ErrNotFound)
	}
	delete(s.d.actuators, id)

	for ruleID, r := range s.d.rules {
		if r.ActuatorID != nil && *r.ActuatorID == id {
			r.ActuatorID = nil
			s.d.rules[ruleID] = r
		}
	}
	return nil
}

// CreateRule inserts a new rule. The sensor and, when set, the actuator must
// exist.
func (s *MemoryStore) CreateRule(_ context.Context, r *domain.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.d.sensors[r.SensorID]; !ok {
		return fmt.Errorf("creating rule: sensor %d: %w", r.SensorID, ErrNotFound)
	}
	if r.ActuatorID != nil {
		if _, ok := s.d.actuators[*r.ActuatorID]; !ok {
			return fmt.Errorf("creating rule: actuator %d: %w", *r.ActuatorID, ErrNotFound)
		}
	}

	r.ID = next(&s.d.seq.rule)
	r.CreatedAt = s.stamp()
	r.UpdatedAt = r.CreatedAt
	s.d.rules[r.ID] = *r
	return nil
}

// ListRules returns all rules, optionally restricted to one sensor.
func (s *MemoryStore) ListRules(_ context.Context, sensorID *int64) ([]domain.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rulesWhere(func(r domain.Rule) bool {
		return sensorID == nil || r.SensorID == *sensorID
	}), nil
}

func (s *MemoryStore) rulesWhere(keep func(domain.Rule) bool) []domain.Rule {
	var rules []domain.Rule
	for _, r := range s.d.rules {
		if keep(r) {
			rules = append(rules, r)
		}
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
	return rules
}

// SetRuleActive enables or disables a rule.
func (s *MemoryStore) SetRuleActive(_ context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.d.rules[id]
	if !ok {
		return fmt.Errorf("setting rule active: %w", ErrNotFound)
	}
	r.Active = active
	r.UpdatedAt = s.stamp()
	s.d.rules[id] = r
	return nil
}

// GetReading retrieves a reading by its ID.
func (s *MemoryStore) GetReading(_ context.Context, id int64) (*domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.d.readings[id]
	if !ok {
		return nil, ErrNotFound
	}
	r.RawPayload = slices.Clone(r.RawPayload)
	return &r, nil
}

// ListReadings returns readings matching q, most recent first.
func (s *MemoryStore) ListReadings(_ context.Context, q *ReadingQuery) ([]domain.Reading, error) {
	if q == nil {
		q = &ReadingQuery{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	readings := s.sortedReadings(q.SensorID)
	limit, offset := ClampPage(q.Limit, q.Offset)
	return page(readings, limit, offset), nil
}

// LatestReading returns the most recent reading of a sensor.
func (s *MemoryStore) LatestReading(_ context.Context, sensorID int64) (*domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	readings := s.sortedReadings(&sensorID)
	if len(readings) == 0 {
		return nil, ErrNotFound
	}
	return &readings[0], nil
}

func (s *MemoryStore) sortedReadings(sensorID *int64) []domain.Reading {
	var readings []domain.Reading
	for _, r := range s.d.readings {
		if sensorID != nil && r.SensorID != *sensorID {
			continue
		}
		r.RawPayload = slices.Clone(r.RawPayload)
		readings = append(readings, r)
	}
	sort.Slice(readings, func(i, j int) bool {
		if !readings[i].Timestamp.Equal(readings[j].Timestamp) {
			return readings[i].Timestamp.After(readings[j].Timestamp)
		}
		return readings[i].ID > readings[j].ID
	})
	return readings
}

// ListAlerts returns alerts matching q, most recent first.
func (s *MemoryStore) ListAlerts(_ context.Context, q *AlertQuery) ([]domain.Alert, error) {
	if q == nil {
		q = &AlertQuery{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var alerts []domain.Alert
	for _, a := range s.d.alerts {
		if q.SensorID != nil && a.SensorID != *q.SensorID {
			continue
		}
		if q.Status != nil && a.Status != *q.Status {
			continue
		}
		alerts = append(alerts, a)
	}
	sort.Slice(alerts, func(i, j int) bool {
		if !alerts[i].CreatedAt.Equal(alerts[j].CreatedAt) {
			return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
		}
		return alerts[i].ID > alerts[j].ID
	})

	limit, offset := ClampPage(q.Limit, q.Offset)
	return page(alerts, limit, offset), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

// memoryTx implements Tx for a MemoryStore. Its methods run while InTx holds
// the store mutex.
type memoryTx struct {
	s *MemoryStore
}

func (t *memoryTx) CreateReading(ctx context.Context, r *domain.Reading) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := t.s.d.sensors[r.SensorID]; !ok {
		return fmt.Errorf("creating reading: sensor %d: %w", r.SensorID, ErrNotFound)
	}

	r.ID = next(&t.s.d.seq.reading)
	r.CreatedAt = t.s.stamp()
	stored := *r
	stored.RawPayload = slices.Clone(r.RawPayload)
	t.s.d.readings[r.ID] = stored
	return nil
}

func (t *memoryTx) ListActiveRules(ctx context.Context, sensorID int64) ([]domain.Rule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.s.rulesWhere(func(r domain.Rule) bool {
		return r.SensorID == sensorID && r.Active
	}), nil
}

func (t *memoryTx) CreateAlert(ctx context.Context, a *domain.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := t.s.d.sensors[a.SensorID]; !ok {
		return fmt.Errorf("creating alert: sensor %d: %w", a.SensorID, ErrNotFound)
	}
	if a.ReadingID != nil {
		if _, ok := t.s.d.readings[*a.ReadingID]; !ok {
			return fmt.Errorf("creating alert: reading %d: %w", *a.ReadingID, ErrNotFound)
		}
	}
	if a.RuleID != nil {
		if _, ok := t.s.d.rules[*a.RuleID]; !ok {
			return fmt.Errorf("creating alert: rule %d: %w", *a.RuleID, ErrNotFound)
		}
	}

	a.ID = next(&t.s.d.seq.alert)
	a.CreatedAt = t.s.stamp()
	t.s.d.alerts[a.ID] = *a
	return nil
}

func (t *memoryTx) SwitchActuatorOn(ctx context.Context, actuatorID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a, ok := t.s.d.actuators[actuatorID]
	if !ok {
		return false, fmt.Errorf("locking actuator %d: %w", actuatorID, ErrNotFound)
	}
	t.s.setActuatorOn(actuatorID, true)
	return a.IsOn, nil
}
