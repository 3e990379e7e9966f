// Package display renders catalog and session state for the terminal.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nick-prog/Microsoft-API-Email/internal/catalog"
	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0078D4")).
			Padding(0, 2)

	methodStyles = map[string]lipgloss.Style{
		"GET": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#61AFEF")).
			Padding(0, 1),
		"POST": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#98C379")).
			Padding(0, 1),
		"PUT": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E5C07B")).
			Padding(0, 1),
		"DELETE": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#E06C75")).
			Padding(0, 1),
		"PATCH": lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#C678DD")).
			Padding(0, 1),
	}

	defaultMethodStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#ABB2BF")).
				Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5C07B")).
			Bold(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ABB2BF")).
				MarginLeft(2)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ABB2BF")).
			Background(lipgloss.Color("#3E4452")).
			Padding(0, 1)

	filterLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#98C379")).
				Bold(true)

	fragmentStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2C323C")).
			Foreground(lipgloss.Color("#E5C07B")).
			Padding(0, 1)

	urlStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0078D4")).
			Padding(0, 1)
)

func methodBadge(method string) string {
	if style, ok := methodStyles[strings.ToUpper(method)]; ok {
		return style.Render(strings.ToUpper(method))
	}
	return defaultMethodStyle.Render(strings.ToUpper(method))
}

// EndpointList renders a catalog listing.
func EndpointList(endpoints []catalog.EndpointDescriptor) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("API Endpoints"))
	b.WriteString("\n\n")

	if len(endpoints) == 0 {
		b.WriteString(descriptionStyle.Render("No endpoints match your criteria."))
		b.WriteString("\n")
		return b.String()
	}

	for _, ep := range endpoints {
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			methodBadge(ep.Method),
			nameStyle.Render(ep.Name),
			badgeStyle.Render(ep.Category),
			badgeStyle.Render(string(ep.Version)),
		))
		b.WriteString(descriptionStyle.Render(fmt.Sprintf("id: %s | %s", ep.ID, ep.Description)))
		b.WriteString("\n")
		b.WriteString(descriptionStyle.Render(fmt.Sprintf("%d dynamic filters", len(ep.Filters))))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Showing %d endpoint%s\n", len(endpoints), plural(len(endpoints))))
	return b.String()
}

// EndpointDetail renders one endpoint with its filter configurations.
func EndpointDetail(ep *catalog.EndpointDescriptor) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", methodBadge(ep.Method), nameStyle.Render(ep.Name)))
	b.WriteString(descriptionStyle.Render(ep.Description))
	b.WriteString("\n")
	b.WriteString(descriptionStyle.Render("URL: " + ep.BaseURL))
	b.WriteString("\n")
	if len(ep.Scopes) > 0 {
		b.WriteString(descriptionStyle.Render("Scopes: " + strings.Join(ep.Scopes, ", ")))
		b.WriteString("\n")
	}
	if ep.SupportsPathContext() {
		b.WriteString(descriptionStyle.Render("Supports folder scoping (--folder / --context)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Dynamic Filters"))
	b.WriteString("\n\n")

	for i := range ep.Filters {
		b.WriteString(FilterConfig(&ep.Filters[i]))
		b.WriteString("\n")
	}

	return b.String()
}

// FilterConfig renders one filter configuration with its input hints.
func FilterConfig(cfg *filter.Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n",
		filterLabelStyle.Render(cfg.Label),
		badgeStyle.Render(string(cfg.Kind)),
	))
	b.WriteString(descriptionStyle.Render(cfg.Description))
	b.WriteString("\n")
	b.WriteString(descriptionStyle.Render("template: " + cfg.Template))
	b.WriteString("\n")

	var hints []string
	if len(cfg.Options) > 0 {
		hints = append(hints, "options: "+strings.Join(cfg.Options, ", "))
	}
	if cfg.Default != "" {
		hints = append(hints, "default: "+cfg.Default)
	}
	if len(cfg.DefaultFields) > 0 {
		hints = append(hints, "default: "+strings.Join(cfg.DefaultFields, ","))
	}
	if cfg.Min != nil || cfg.Max != nil {
		hints = append(hints, fmt.Sprintf("range: %s - %s", boundHint(cfg.Min), boundHint(cfg.Max)))
	}
	for _, sub := range cfg.Fields {
		hints = append(hints, fmt.Sprintf("%s: %s", sub.Name, strings.Join(sub.Options, ", ")))
	}

	for _, hint := range hints {
		b.WriteString(descriptionStyle.Render(hint))
		b.WriteString("\n")
	}

	return b.String()
}

// ActiveFilters renders the current selection in insertion order.
func ActiveFilters(active []filter.ActiveFilter) string {
	if len(active) == 0 {
		return descriptionStyle.Render("Selected filters: none") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Selected Filters"))
	b.WriteString("\n\n")
	for _, af := range active {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			badgeStyle.Render(af.ParamKey),
			fragmentStyle.Render(af.Fragment),
		))
	}
	return b.String()
}

// QueryURL renders the assembled URL prominently.
func QueryURL(url string) string {
	return urlStyle.Render(url) + "\n"
}

func boundHint(v *float64) string {
	if v == nil {
		return "none"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
