package handlers

import (
	"net/http"

	"attendance-registry/internal/models"
	"attendance-registry/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	viewMunicipality = "municipality"
	viewTimeline     = "timeline"
)

func (h *Handler) Visualizations(c *gin.Context) {
	records, err := h.Records.ListAll()
	if err != nil {
		renderFailure(c, models.PageVisualizations, "list records", err)
		return
	}

	view := c.Query("view")
	data := gin.H{
		"records": records,
		"view":    view,
	}

	switch view {
	case viewMunicipality:
		data["counts"] = services.CountsByLocality(records)
	case viewTimeline:
		points, skipped := services.CumulativeByDate(records)
		data["points"] = points
		data["skipped"] = skipped
	default:
		data["view"] = ""
	}

	render(c, http.StatusOK, models.PageVisualizations, "visualizations.html", data)
}

// MunicipalityChart: столбчатая диаграмма обращений по муниципалитетам.
func (h *Handler) MunicipalityChart(c *gin.Context) {
	records, err := h.Records.ListAll()
	if err != nil {
		renderFailure(c, models.PageVisualizations, "municipality chart", err)
		return
	}

	counts := services.CountsByLocality(records)
	names := make([]string, 0, len(counts))
	items := make([]opts.BarData, 0, len(counts))
	for _, lc := range counts {
		names = append(names, BlankLabel(lc.Municipality))
		items = append(items, opts.BarData{Value: lc.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		h.chartInit(),
		charts.WithTitleOpts(opts.Title{Title: "Attendances by municipality"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Municipality"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Attendances"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).AddSeries("Attendances", items)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := bar.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// TimelineChart: накопительный итог по датам, подписи над точками.
func (h *Handler) TimelineChart(c *gin.Context) {
	records, err := h.Records.ListAll()
	if err != nil {
		renderFailure(c, models.PageVisualizations, "timeline chart", err)
		return
	}

	points, _ := services.CumulativeByDate(records)
	dates := make([]string, 0, len(points))
	items := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		dates = append(dates, p.Date)
		items = append(items, opts.LineData{Value: p.Total})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		h.chartInit(),
		charts.WithTitleOpts(opts.Title{Title: "Attendances by date (cumulative)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Cumulative attendances"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(dates).AddSeries("Cumulative", items,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := line.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func (h *Handler) chartInit() charts.GlobalOpts {
	initOpts := opts.Initialization{}
	if h.ChartAssetsHost != "" {
		initOpts.AssetsHost = h.ChartAssetsHost
	}
	return charts.WithInitializationOpts(initOpts)
}

// BlankLabel подписывает пустой муниципалитет.
func BlankLabel(s string) string {
	if s == "" {
		return "(blank)"
	}
	return s
}
