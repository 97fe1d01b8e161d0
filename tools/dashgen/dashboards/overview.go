// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/flashlist/tools/dashgen/panels"
)

// BuildOverview constructs the FlashList Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("FlashList Overview").
		Uid("flashlist-overview").
		Tags([]string{"flashlist"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.ListingsCreatedStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Publishing.
	b.WithRow(dashboard.NewRowBuilder("Publishing").
		WithPanel(panels.PublishOutcomes()).
		WithPanel(panels.PublishDuration()).
		WithPanel(panels.StepRetries()))

	// Row 4: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APIErrors()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 5: Accounts and categories.
	b.WithRow(dashboard.NewRowBuilder("Accounts & Categories").
		WithPanel(panels.TokenRefreshes()).
		WithPanel(panels.CategoryResolutions()).
		WithPanel(panels.CategoryFallbacks()).
		WithPanel(panels.DeletionNotifications()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
