package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ReadingsRate returns a timeseries panel showing stored readings per minute
// by source.
func ReadingsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Readings / min").
		Description("Readings persisted per minute, by source (DEVICE, MANUAL, SIMULATED)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(SumRateBy("plant_readings_ingested_total", "source")+" * 60", "{{source}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// Rejections returns a timeseries panel showing rejected submissions per
// minute by validation reason.
func Rejections() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rejected / min").
		Description("Submissions rejected by validation per minute, by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(SumRateBy("plant_ingest_rejected_total", "reason")+" * 60", "{{reason}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// IngestionLatency returns a timeseries panel showing the p95 ingestion
// transaction duration over the failure rate.
func IngestionLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Transaction p95 & Failures").
		Description("95th percentile ingestion transaction duration and aborted ingestions per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(P95("plant_ingestion_duration_seconds"), "p95 (s)", "A")).
		WithTarget(PromQuery(`plant:ingestion_errors:rate5m * 60`, "failures/min", "B")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
