package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// plant-telemetry operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("plant-alerts", []RuleGroup{
		{
			Name: "plant-alerts",
			Rules: []Rule{
				{
					Alert: "PlantTelemetryDown",
					Expr:  `absent(up{job="plant-telemetry"})`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "plant-telemetry is down",
						"description": "The plant-telemetry job has been absent for more than 2 minutes.",
					},
				},
				{
					Alert: "PlantDatastoreUnreachable",
					Expr:  `plant_readyz_up == 0`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "plant-telemetry cannot reach its datastore",
						"description": "The readiness probe has been failing for more than 2 minutes; readings cannot be stored.",
					},
				},
				{
					Alert: "PlantHighErrorRate",
					Expr:  `plant:http_errors:rate5m / plant:http_requests:rate5m > 0.05`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "High HTTP error rate on plant-telemetry",
						"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
					},
				},
				{
					Alert: "PlantIngestionFailures",
					Expr:  `plant:ingestion_errors:rate5m > 0`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Readings are failing to persist",
						"description": "Ingestion transactions have been aborting for more than 5 minutes.",
					},
				},
				{
					Alert: "PlantNoReadings",
					Expr:  `plant:readings_ingested:rate5m == 0`,
					For:   "15m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "No sensor readings received",
						"description": "No reading has been stored for 15 minutes; devices or the broker may be offline.",
					},
				},
				{
					Alert: "PlantHighRejectionRate",
					Expr:  `plant:ingest_rejected:rate5m / (plant:ingest_rejected:rate5m + plant:readings_ingested:rate5m) > 0.25`,
					For:   "10m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Many submissions are rejected",
						"description": "More than 25% of submissions failed validation over the last 10 minutes.",
					},
				},
				{
					Alert: "PlantCriticalAlertRaised",
					Expr:  `plant:alerts_created:rate5m{severity="CRITICAL"} > 0`,
					For:   "0m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "A CRITICAL plant rule fired",
						"description": "At least one CRITICAL alert was raised by the rule engine in the last 5 minutes.",
					},
				},
				{
					Alert: "PlantMQTTFailures",
					Expr:  `plant:mqtt_failed:rate5m > 0`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "MQTT readings are failing",
						"description": "MQTT messages have been failing to ingest for more than 5 minutes.",
					},
				},
			},
		},
	})
}
