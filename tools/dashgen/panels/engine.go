package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RuleOutcomes returns a timeseries panel showing rule evaluations by outcome.
func RuleOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rule Evaluations").
		Description("Rule evaluations per second, by outcome (fired, skipped, error)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(SumRateBy("plant_rule_evaluations_total", "outcome"), "{{outcome}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AlertsBySeverity returns a timeseries panel showing alerts created per
// minute by severity.
func AlertsBySeverity() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Alerts / min").
		Description("Alerts raised by firing rules per minute, by severity").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(SumRateBy("plant_alerts_created_total", "severity")+" * 60", "{{severity}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// CriticalAlerts returns a stat panel counting CRITICAL alerts in the last
// 24 hours.
func CriticalAlerts() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Critical Alerts (24h)").
		Description("CRITICAL alerts raised in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(plant_alerts_created_total{job=%q,severity="CRITICAL"}[24h]))`, Job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// ActuatorSwitches returns a timeseries panel showing actuator state writes
// by trigger and state.
func ActuatorSwitches() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Actuator Switches").
		Description("Actuator state writes per minute, by trigger (rule, manual) and state").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum by (trigger, state) (rate(plant_actuator_switches_total{job=%q}[5m])) * 60`, Job),
			"{{trigger}} {{state}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}
