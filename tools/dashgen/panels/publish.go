package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PublishOutcomes returns a timeseries panel showing publish attempts per
// minute split by outcome.
func PublishOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Publishes / min").
		Description("Marketplace publish attempts per minute by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(flashlist_publish_attempts_total{`+Job+`}[5m])) by (outcome) * 60`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PublishDuration returns a timeseries panel showing p50 and p95 publish
// duration.
func PublishDuration() *timeseries.PanelBuilder {
	const metric = "flashlist_publish_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Publish Duration").
		Description("Time to run a full inventory, offer, and publish sequence").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(histogramP(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(histogramP(0.95, metric), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// StepRetries returns a timeseries panel showing transient-failure retries
// per publish step.
func StepRetries() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Step Retries / min").
		Description("Retries of transient eBay failures by publish step").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(flashlist_publish_step_retries_total{`+Job+`}[5m])) by (step) * 60`,
			"{{step}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
