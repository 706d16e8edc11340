package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MQTTMessages returns a timeseries panel showing MQTT reading messages by
// result.
func MQTTMessages() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("MQTT Messages").
		Description("MQTT reading messages per second, by result (accepted, rejected, failed)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(SumRateBy("plant_mqtt_messages_total", "result"), "{{result}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
