// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the server does not export.
package validate

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/flashlist/tools/dashgen/rules"
)

// Result collects validation problems. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// histogram series suffixes accepted for a known base metric.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and checks every selected metric against known.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("parsing %q: %w", expr, err))
		return res
	}

	selectors := 0
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		selectors++
		name := metricName(vs)
		if name == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%q selects without a metric name", expr))
			return nil
		}
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Errorf("%q references unknown metric %s", expr, name))
		}
		return nil
	})

	if selectors == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%q selects no series", expr))
	}
	return res
}

// Dashboard checks every Prometheus target in every panel of d.
func Dashboard(d dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range d.Panels {
		if p.Panel != nil {
			res.merge(panel(*p.Panel, known))
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				res.merge(panel(inner, known))
			}
		}
	}
	return res
}

// Rules checks every expression in cr. Recording rule names count as known
// for the alerts that follow them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			if r.Record == "" && r.Alert == "" {
				res.Errors = append(res.Errors, fmt.Errorf("group %s: rule has neither record nor alert", g.Name))
				continue
			}
			res.merge(Expr(r.Expr, known))
		}
	}
	return res
}

func panel(p dashboard.Panel, known map[string]bool) Result {
	var res Result
	title := ""
	if p.Title != nil {
		title = *p.Title
	}
	for _, t := range p.Targets {
		expr, ok := promExpr(t)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has a non-Prometheus target", title))
			continue
		}
		r := Expr(expr, known)
		for i, err := range r.Errors {
			r.Errors[i] = fmt.Errorf("panel %q: %w", title, err)
		}
		res.merge(r)
	}
	return res
}

func promExpr(t any) (string, bool) {
	switch q := t.(type) {
	case prometheus.Dataquery:
		return q.Expr, true
	case *prometheus.Dataquery:
		return q.Expr, true
	default:
		return "", false
	}
}

func metricName(vs *parser.VectorSelector) string {
	if vs.Name != "" {
		return vs.Name
	}
	for _, m := range vs.LabelMatchers {
		if m.Name == labels.MetricName && m.Type == labels.MatchEqual {
			return m.Value
		}
	}
	return ""
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
