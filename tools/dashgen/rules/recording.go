package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "flashlist-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "flashlist-recording",
					Rules: []Rule{
						{
							Record: "flashlist:http_requests:rate5m",
							Expr:   `sum(rate(flashlist_http_requests_total[5m]))`,
						},
						{
							Record: "flashlist:http_errors:rate5m",
							Expr:   `sum(rate(flashlist_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "flashlist:publish_attempts:rate5m",
							Expr:   `sum(rate(flashlist_publish_attempts_total[5m]))`,
						},
						{
							Record: "flashlist:publish_failures:rate5m",
							Expr:   `sum(rate(flashlist_publish_attempts_total{outcome!="posted"}[5m]))`,
						},
						{
							Record: "flashlist:token_refresh_failures:rate5m",
							Expr:   `sum(rate(flashlist_token_refreshes_total{outcome="failure"}[5m]))`,
						},
						{
							Record: "flashlist:ebay_api_calls:rate5m",
							Expr:   `rate(flashlist_ebay_api_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
