// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/plant-telemetry/tools/dashgen/panels"
)

// BuildOverview constructs the Plant Telemetry Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Plant Telemetry Overview").
		Uid("plant-overview").
		Tags([]string{"plant", "plant-telemetry"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.ReadingsLastHour()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyP95()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Ingestion").
		WithPanel(panels.ReadingsRate()).
		WithPanel(panels.Rejections()).
		WithPanel(panels.IngestionLatency()))

	b.WithRow(dashboard.NewRowBuilder("Rules & Alerts").
		WithPanel(panels.RuleOutcomes()).
		WithPanel(panels.AlertsBySeverity()).
		WithPanel(panels.CriticalAlerts()))

	b.WithRow(dashboard.NewRowBuilder("Actuators & MQTT").
		WithPanel(panels.ActuatorSwitches()).
		WithPanel(panels.MQTTMessages()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
