// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/plant-telemetry/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings are
// reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// histogramSuffixes are series a histogram exposes beyond its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and checks every selector against known.
func Expr(expr string, known map[string]bool) []string {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return []string{fmt.Sprintf("invalid PromQL %q: %v", expr, err)}
	}

	var errs []string
	for _, name := range selectorNames(node) {
		if !isKnown(name, known) {
			errs = append(errs, fmt.Sprintf("unknown metric %q in %q", name, expr))
		}
	}
	return errs
}

func selectorNames(node parser.Node) []string {
	seen := map[string]bool{}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[vs.Name] = true
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
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

// DashboardJSON validates a marshaled Grafana dashboard. Panels without
// queries produce warnings.
func DashboardJSON(data []byte, known map[string]bool) Result {
	var res Result

	var dash struct {
		Panels []panel `json:"panels"`
	}
	if err := json.Unmarshal(data, &dash); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}
	if len(dash.Panels) == 0 {
		res.errorf("dashboard has no panels")
	}

	for i := range dash.Panels {
		dash.Panels[i].check(&res, known)
	}
	return res
}

type panel struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Panels  []panel  `json:"panels"`
	Targets []target `json:"targets"`
}

type target struct {
	Expr string `json:"expr"`
}

func (p *panel) check(res *Result, known map[string]bool) {
	if p.Type == "row" {
		for i := range p.Panels {
			p.Panels[i].check(res, known)
		}
		return
	}

	if p.Title == "" {
		res.warnf("panel of type %q has no title", p.Type)
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no queries", p.Title)
	}
	for _, t := range p.Targets {
		if t.Expr == "" {
			res.errorf("panel %q has an empty query", p.Title)
			continue
		}
		for _, e := range Expr(t.Expr, known) {
			res.errorf("panel %q: %s", p.Title, e)
		}
	}
}

// Rules validates the expressions of a PrometheusRule. Recording rule names
// defined in the resource count as known for the rest of it.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	local := make(map[string]bool, len(known))
	for k, v := range known {
		local[k] = v
	}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			if r.Record != "" {
				local[r.Record] = true
			}
		}
	}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %q has a rule with neither record nor alert", g.Name)
				continue
			}
			if r.Record != "" && !strings.Contains(r.Record, ":") {
				res.warnf("recording rule %q does not follow level:metric:operation naming", r.Record)
			}
			if r.Alert != "" && r.Annotations["summary"] == "" {
				res.warnf("alert %q has no summary", r.Alert)
			}
			for _, e := range Expr(r.Expr, local) {
				res.errorf("rule %q: %s", name, e)
			}
		}
	}
	return res
}
