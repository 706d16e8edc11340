package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("plant-recording-rules", []RuleGroup{
		{
			Name: "plant-recording",
			Rules: []Rule{
				{
					Record: "plant:http_requests:rate5m",
					Expr:   `sum(rate(plant_http_requests_total[5m]))`,
				},
				{
					Record: "plant:http_errors:rate5m",
					Expr:   `sum(rate(plant_http_requests_total{status=~"5.."}[5m]))`,
				},
				{
					Record: "plant:readings_ingested:rate5m",
					Expr:   `sum(rate(plant_readings_ingested_total[5m]))`,
				},
				{
					Record: "plant:ingest_rejected:rate5m",
					Expr:   `sum(rate(plant_ingest_rejected_total[5m]))`,
				},
				{
					Record: "plant:ingestion_errors:rate5m",
					Expr:   `rate(plant_ingestion_errors_total[5m])`,
				},
				{
					Record: "plant:alerts_created:rate5m",
					Expr:   `sum by (severity) (rate(plant_alerts_created_total[5m]))`,
				},
				{
					Record: "plant:mqtt_failed:rate5m",
					Expr:   `sum(rate(plant_mqtt_messages_total{result="failed"}[5m]))`,
				},
			},
		},
	})
}
