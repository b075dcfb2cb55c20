package handler

import (
	"net/http"

	"github.com/cleberrangel/reader-calc/internal/estimator"
	"github.com/cleberrangel/reader-calc/internal/logger"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/service"
	"github.com/cleberrangel/reader-calc/internal/web"
	"github.com/gin-gonic/gin"
)

// CalculatorHandler serves the HTML calculator form
type CalculatorHandler struct {
	calculator *service.CalculatorService
}

// NewCalculatorHandler creates a new calculator form handler
func NewCalculatorHandler(calculator *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculator: calculator,
	}
}

// calculateForm is the form-encoded body of POST /calculate
type calculateForm struct {
	Pages      string `form:"pages"`
	Language   string `form:"language"`
	Difficulty string `form:"difficulty"`
	Focus      string `form:"focus"`
}

// Index renders the form with default values and no result
// @Summary      Calculator page
// @Tags         calculator
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       / [get]
func (h *CalculatorHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, h.page(estimator.DefaultRequest()))
}

// Calculate reads the submitted form, computes the estimate and renders the
// form again with the result block
// @Summary      Run calculation from the form
// @Tags         calculator
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       /calculate [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	log := logger.FromGin(c)

	var form calculateForm
	if err := c.ShouldBind(&form); err != nil {
		// Campos inválidos caem nos valores padrão
		log.Debug().Err(err).Msg("Formulário inválido, usando padrões")
	}

	req := h.calculator.FormRequest(form.Pages, form.Language, form.Difficulty, form.Focus)

	result, err := h.calculator.Calculate(c.Request.Context(), req, metrics.SourceForm)
	if err != nil {
		log.Error().Err(err).Msg("Erro ao calcular estimativa")
		c.HTML(http.StatusInternalServerError, web.IndexTemplate, h.page(req))
		return
	}

	page := h.page(req)
	page.ShowResult = true
	page.Minutes = result.Minutes
	page.Formatted = result.Formatted
	page.Status = web.StatusConfirmed

	c.HTML(http.StatusOK, web.IndexTemplate, page)
}

func (h *CalculatorHandler) page(req estimator.Request) web.Page {
	page := web.Page{
		Pages:    req.Pages,
		MaxPages: h.calculator.MaxPages(),
	}
	for _, l := range estimator.LanguageLevels() {
		page.Language = append(page.Language, web.Option{Code: l.Code(), Label: l.Label(), Selected: l == req.Language})
	}
	for _, d := range estimator.DifficultyLevels() {
		page.Difficulty = append(page.Difficulty, web.Option{Code: d.Code(), Label: d.Label(), Selected: d == req.Difficulty})
	}
	for _, f := range estimator.FocusLevels() {
		page.Focus = append(page.Focus, web.Option{Code: f.Code(), Label: f.Label(), Selected: f == req.Focus})
	}
	return page
}
