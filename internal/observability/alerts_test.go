package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type alertRule struct {
	Alert       string            `yaml:"alert"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for"`
	Labels      map[string]string `yaml:"labels"`
	Annotations map[string]string `yaml:"annotations"`
}

type alertGroup struct {
	Name  string      `yaml:"name"`
	Rules []alertRule `yaml:"rules"`
}

type alertFile struct {
	Groups []alertGroup `yaml:"groups"`
}

func TestDashboardAlertRules(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "deploy", "prometheus", "alerts", "dashboard.yml"))
	require.NoError(t, err)

	var file alertFile
	require.NoError(t, yaml.Unmarshal(data, &file))
	require.Len(t, file.Groups, 1)

	group := file.Groups[0]
	assert.Equal(t, "dashboard", group.Name)

	expected := map[string]struct {
		severity string
		runbook  string
		metric   string
	}{
		"WidgetFetchErrors": {"critical", "docs/runbook-dashboard.md#widget-fetch-errors", "energy_dashboard_widget_fetches_total"},
		"SlowBackend":       {"warning", "docs/runbook-dashboard.md#slow-backend", "energy_dashboard_widget_fetch_duration_seconds_bucket"},
		"DuplicateCharts":   {"warning", "docs/runbook-dashboard.md#duplicate-charts", "energy_dashboard_live_charts"},
	}
	require.Len(t, group.Rules, len(expected))

	for _, rule := range group.Rules {
		want, ok := expected[rule.Alert]
		require.True(t, ok, "unexpected rule %q", rule.Alert)
		assert.Equal(t, want.severity, rule.Labels["severity"], rule.Alert)
		assert.Equal(t, want.runbook, rule.Annotations["runbook"], rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], rule.Alert)
		assert.Contains(t, rule.Expr, want.metric, rule.Alert)
		assert.NotEmpty(t, rule.For, rule.Alert)
	}
}
