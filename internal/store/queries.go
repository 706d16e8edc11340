package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Sensor queries.
const (
	sensorColumns = `id, code, name, location, description,
		kind, unit, model, range_min, range_max, tank_code,
		is_critical, active, created_at, updated_at`

	queryCreateSensor = `
		INSERT INTO sensors (
			code, name, location, description,
			kind, unit, model, range_min, range_max, tank_code,
			is_critical, active
		) VALUES (
			@code, @name, @location, @description,
			@kind, @unit, @model, @range_min, @range_max, @tank_code,
			@is_critical, @active
		)
		RETURNING id, created_at, updated_at`

	queryGetSensor = `SELECT ` + sensorColumns + ` FROM sensors WHERE id = $1`

	queryGetSensorByCode = `SELECT ` + sensorColumns + ` FROM sensors WHERE code = $1`

	queryListSensors = `SELECT ` + sensorColumns + ` FROM sensors ORDER BY code`

	querySetSensorActive = `
		UPDATE sensors SET active = $2, updated_at = now()
		WHERE id = $1`
)

// Actuator queries.
const (
	actuatorColumns = `id, code, name, location, description,
		kind, channel, power_watts, tank_code, is_on,
		created_at, updated_at`

	queryCreateActuator = `
		INSERT INTO actuators (
			code, name, location, description,
			kind, channel, power_watts, tank_code, is_on
		) VALUES (
			@code, @name, @location, @description,
			@kind, @channel, @power_watts, @tank_code, @is_on
		)
		RETURNING id, created_at, updated_at`

	queryGetActuator = `SELECT ` + actuatorColumns + ` FROM actuators WHERE id = $1`

	queryGetActuatorByCode = `SELECT ` + actuatorColumns + ` FROM actuators WHERE code = $1`

	queryListActuators = `SELECT ` + actuatorColumns + ` FROM actuators ORDER BY code`

	querySetActuatorOn = `
		UPDATE actuators SET is_on = $2, updated_at = now()
		WHERE id = $1`

	queryLockActuator = `SELECT is_on FROM actuators WHERE id = $1 FOR UPDATE`

	queryDeleteActuator = `DELETE FROM actuators WHERE id = $1`
	queryDeleteSensor   = `DELETE FROM sensors WHERE id = $1`
)

// Rule queries.
const (
	ruleColumns = `id, sensor_id, actuator_id, comparator, threshold,
		action_message, severity, active, created_at, updated_at`

	queryCreateRule = `
		INSERT INTO rules (
			sensor_id, actuator_id, comparator, threshold,
			action_message, severity, active
		) VALUES (
			@sensor_id, @actuator_id, @comparator, @threshold,
			@action_message, @severity, @active
		)
		RETURNING id, created_at, updated_at`

	queryListRulesAll = `SELECT ` + ruleColumns + ` FROM rules ORDER BY id`

	queryListRulesBySensor = `SELECT ` + ruleColumns + ` FROM rules WHERE sensor_id = $1 ORDER BY id`

	queryListActiveRules = `
		SELECT ` + ruleColumns + ` FROM rules
		WHERE sensor_id = $1 AND active
		ORDER BY id`

	querySetRuleActive = `
		UPDATE rules SET active = $2, updated_at = now()
		WHERE id = $1`
)

// Reading queries.
const (
	queryCreateReading = `
		INSERT INTO readings (sensor_id, value, unit, recorded_at, source, raw_payload)
		VALUES (@sensor_id, @value, @unit, @recorded_at, @source, @raw_payload)
		RETURNING id, created_at`

	queryGetReading = baseReadingsSelect + ` WHERE id = $1`

	queryLatestReading = baseReadingsSelect + `
		WHERE sensor_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1`
)

// Alert queries.
const (
	queryCreateAlert = `
		INSERT INTO alerts (sensor_id, reading_id, rule_id, severity, message, status)
		VALUES (@sensor_id, @reading_id, @rule_id, @severity, @message, @status)
		RETURNING id, created_at`
)
