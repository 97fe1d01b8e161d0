package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokenRefreshes returns a timeseries panel showing seller token refreshes
// by outcome.
func TokenRefreshes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token Refreshes").
		Description("Seller OAuth refreshes per minute (success, failure, shared)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(rate(flashlist_token_refreshes_total{`+Job+`}[5m])) by (outcome) * 60`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CategoryResolutions returns a timeseries panel showing which path
// produced each resolved category id.
func CategoryResolutions() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Category Resolutions").
		Description("Resolved category ids per minute by source").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(rate(flashlist_category_resolutions_total{`+Job+`}[5m])) by (source) * 60`,
			"{{source}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CategoryFallbacks returns a stat panel counting category table rebuilds
// that fell back to the built-in defaults.
func CategoryFallbacks() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Category Fallbacks (24h)").
		Description("Category refreshes that used the built-in table").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(flashlist_category_cache_refreshes_total{`+Job+`,source="fallback"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 4)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// DeletionNotifications returns a timeseries panel showing marketplace
// deletion notifications by kind and result.
func DeletionNotifications() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deletion Notifications").
		Description("Item and account deletions applied per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(flashlist_deletion_notifications_total{`+Job+`}[1h])) by (kind, result)`,
			"{{kind}} {{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
