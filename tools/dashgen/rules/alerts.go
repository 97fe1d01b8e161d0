package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// flashlist operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "flashlist-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "flashlist-alerts",
					Rules: []Rule{
						{
							Alert: "FlashlistDown",
							Expr:  `absent(up{job="flashlist"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "FlashList is down",
								"description": "The flashlist job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "FlashlistReadinessDown",
							Expr:  `flashlist_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "FlashList readiness check is failing",
								"description": "The database has been unreachable for more than 2 minutes.",
							},
						},
						{
							Alert: "FlashlistHighErrorRate",
							Expr:  `flashlist:http_errors:rate5m / flashlist:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on FlashList",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "FlashlistPublishFailures",
							Expr:  `flashlist:publish_failures:rate5m / flashlist:publish_attempts:rate5m > 0.25`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay publishes are failing",
								"description": "More than a quarter of publish attempts did not post over the last 15 minutes.",
							},
						},
						{
							Alert: "FlashlistTokenRefreshFailures",
							Expr:  `flashlist:token_refresh_failures:rate5m > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Seller token refreshes are failing",
								"description": "eBay has rejected refresh tokens for 10 minutes; affected sellers must reconnect.",
							},
						},
						{
							Alert: "FlashlistEbayQuotaHigh",
							Expr:  `flashlist_ebay_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily usage is above 80% of the quota",
								"description": "Daily eBay API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "FlashlistEbayLimitReached",
							Expr:  `increase(flashlist_ebay_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily limit has been reached",
								"description": "The daily eBay call budget is exhausted. Publishing is paused until reset.",
							},
						},
						{
							Alert: "FlashlistCategoryFallback",
							Expr:  `increase(flashlist_category_cache_refreshes_total{source="fallback"}[1h]) > 0`,
							For:   "1h",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Category table is using built-in defaults",
								"description": "The eBay taxonomy could not be read; listings resolve against the fallback table.",
							},
						},
					},
				},
			},
		},
	}
}
