package http

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
	"github.com/comitanigiacomo/kanso-energy/internal/core/services"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	dashboardTemplate   = "dashboard.tmpl"
	defaultSliderTempC  = 25
	defaultDashboardAge = 25
)

var dashboardTemplates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"barWidth":   barWidth,
		"linePoints": linePoints,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// LoadTemplates installs the dashboard templates on the engine.
func LoadTemplates(r *gin.Engine) {
	r.SetHTMLTemplate(dashboardTemplates)
}

func barWidth(value, peak float64) string {
	if peak <= 0 {
		return "0"
	}
	return strconv.FormatFloat(value/peak*100, 'f', 0, 64)
}

const (
	chartWidth  = 300.0
	chartHeight = 100.0
	chartMargin = 10.0
)

// linePoints scales a series into an SVG polyline points attribute.
func linePoints(points []services.Point) string {
	if len(points) == 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	scale := func(v, lo, hi, size float64, invert bool) float64 {
		if hi == lo {
			return size / 2
		}
		f := (v - lo) / (hi - lo)
		if invert {
			f = 1 - f
		}
		return chartMargin + f*(size-2*chartMargin)
	}

	parts := make([]string, 0, len(points))
	for _, p := range points {
		x := scale(p.X, minX, maxX, chartWidth, false)
		y := scale(p.Y, minY, maxY, chartHeight, true)
		parts = append(parts, strconv.FormatFloat(x, 'f', 1, 64)+","+strconv.FormatFloat(y, 'f', 1, 64))
	}
	return strings.Join(parts, " ")
}

type dashboardForm struct {
	Name         string
	City         string
	Area         string
	Age          string
	Housing      string
	BHK          string
	Temperatures []string
}

type dashboardView struct {
	Form           dashboardForm
	HousingOptions []string
	BHKOptions     []string
	Days           []string
	Estimate       *services.WeeklyEstimate
	Error          string
}

type DashboardHandler struct {
	svc Estimator
}

func NewDashboardHandler(svc Estimator) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.Show)
}

func (h *DashboardHandler) options() ([]string, []string) {
	var housing, bhk []string
	seenHousing := map[string]bool{}
	seenBHK := map[string]bool{}
	for _, p := range h.svc.Profiles() {
		if name := p.Key.Housing.String(); !seenHousing[name] {
			seenHousing[name] = true
			housing = append(housing, name)
		}
		if name := p.Key.BHK.String(); !seenBHK[name] {
			seenBHK[name] = true
			bhk = append(bhk, name)
		}
	}
	return housing, bhk
}

func readForm(c *gin.Context) dashboardForm {
	form := dashboardForm{
		Name:    c.Query("name"),
		City:    c.Query("city"),
		Area:    c.Query("area"),
		Age:     c.DefaultQuery("age", strconv.Itoa(defaultDashboardAge)),
		Housing: c.DefaultQuery("housing", domain.Flat.String()),
		BHK:     c.DefaultQuery("bhk", domain.BHK(1).String()),
	}

	// A fresh form has no sliders yet; every slider starts at the default.
	form.Temperatures = c.QueryArray("t")
	if len(form.Temperatures) == 0 {
		form.Temperatures = make([]string, domain.DaysPerWeek)
		for i := range form.Temperatures {
			form.Temperatures[i] = strconv.Itoa(defaultSliderTempC)
		}
	}
	return form
}

// Slider is the value shown for day i. Submitted values are passed to the
// service as-is, so a wrong count is reported rather than padded or cut.
func (f dashboardForm) Slider(i int) string {
	if i < len(f.Temperatures) {
		return f.Temperatures[i]
	}
	return strconv.Itoa(defaultSliderTempC)
}

// Show renders the dashboard. Until the personal details are filled in only
// the form is shown; after that every request recomputes the whole week.
func (h *DashboardHandler) Show(c *gin.Context) {
	housing, bhk := h.options()
	view := dashboardView{
		Form:           readForm(c),
		HousingOptions: housing,
		BHKOptions:     bhk,
		Days:           domain.WeekDays[:],
	}

	if strings.TrimSpace(view.Form.Name+view.Form.City+view.Form.Area) == "" {
		c.HTML(http.StatusOK, dashboardTemplate, view)
		return
	}

	input, err := view.Form.toInput()
	if err == nil {
		view.Estimate, err = h.svc.EstimateWeek(c.Request.Context(), input)
	}
	if err != nil {
		status := statusFor(err)
		view.Error = err.Error()
		if status == http.StatusUnprocessableEntity {
			view.Error = invalidConfigMessage
		}
		if status == http.StatusInternalServerError {
			view.Error = "internal server error"
		}
		c.HTML(status, dashboardTemplate, view)
		return
	}

	c.HTML(http.StatusOK, dashboardTemplate, view)
}

func (f dashboardForm) toInput() (services.WeeklyEstimateInput, error) {
	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		return services.WeeklyEstimateInput{}, domain.ErrAgeOutOfRange
	}

	temps := make([]float64, 0, len(f.Temperatures))
	for _, raw := range f.Temperatures {
		t, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return services.WeeklyEstimateInput{}, domain.ErrTemperatureNotNumeric
		}
		temps = append(temps, t)
	}

	return services.WeeklyEstimateInput{
		Name:         f.Name,
		City:         f.City,
		Area:         f.Area,
		Age:          age,
		HousingType:  f.Housing,
		BHK:          f.BHK,
		Temperatures: temps,
	}, nil
}
