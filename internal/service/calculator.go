package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cleberrangel/reader-calc/internal/estimator"
	"github.com/cleberrangel/reader-calc/internal/logger"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/model"
)

// CalculatorService converte requisições em estimativas de leitura
type CalculatorService struct {
	maxPages int
	metrics  *metrics.Metrics
}

// NewCalculatorService cria um novo serviço de cálculo
func NewCalculatorService(maxPages int, m *metrics.Metrics) *CalculatorService {
	if m == nil {
		m = metrics.Get()
	}
	return &CalculatorService{
		maxPages: maxPages,
		metrics:  m,
	}
}

// MaxPages retorna o limite superior de páginas aceito
func (s *CalculatorService) MaxPages() int {
	return s.maxPages
}

// ParseRequest valida o payload da API e converte os códigos em níveis
func (s *CalculatorService) ParseRequest(req model.EstimateRequest) (estimator.Request, error) {
	if req.Pages == nil {
		return estimator.Request{}, fmt.Errorf("pages ausente: %w", model.ErrInvalidPages)
	}
	pages := *req.Pages
	if pages < 0 || pages > s.maxPages {
		return estimator.Request{}, fmt.Errorf("pages=%d fora de [0, %d]: %w", pages, s.maxPages, model.ErrInvalidPages)
	}

	language, err := estimator.ParseLanguage(req.Language)
	if err != nil {
		return estimator.Request{}, levelError(err)
	}
	difficulty, err := estimator.ParseDifficulty(req.Difficulty)
	if err != nil {
		return estimator.Request{}, levelError(err)
	}
	focus, err := estimator.ParseFocus(req.Focus)
	if err != nil {
		return estimator.Request{}, levelError(err)
	}

	return estimator.Request{
		Pages:      pages,
		Language:   language,
		Difficulty: difficulty,
		Focus:      focus,
	}, nil
}

func levelError(err error) error {
	if errors.Is(err, estimator.ErrUnknownLevel) {
		return fmt.Errorf("%v: %w", err, model.ErrInvalidLevel)
	}
	return err
}

// FormRequest converte os campos do formulário sem rejeitar nada.
// Páginas não numéricas viram 0 e depois são ajustadas para [1, maxPages];
// códigos desconhecidos caem no valor padrão.
func (s *CalculatorService) FormRequest(pages, language, difficulty, focus string) estimator.Request {
	req := estimator.DefaultRequest()

	n, err := strconv.Atoi(strings.TrimSpace(pages))
	if err != nil {
		n = 0
	}
	if n < 1 {
		n = 1
	}
	if n > s.maxPages {
		n = s.maxPages
	}
	req.Pages = n

	if l, err := estimator.ParseLanguage(language); err == nil {
		req.Language = l
	}
	if d, err := estimator.ParseDifficulty(difficulty); err == nil {
		req.Difficulty = d
	}
	if f, err := estimator.ParseFocus(focus); err == nil {
		req.Focus = f
	}

	return req
}

// Estimate valida e calcula uma estimativa vinda da API
func (s *CalculatorService) Estimate(ctx context.Context, req model.EstimateRequest, source string) (*model.EstimateResult, error) {
	parsed, err := s.ParseRequest(req)
	if err != nil {
		s.Reject(ctx, err, source)
		return nil, err
	}
	return s.Calculate(ctx, parsed, source)
}

// Reject registra uma requisição de estimativa recusada
func (s *CalculatorService) Reject(ctx context.Context, err error, source string) {
	s.metrics.IncrementEstimateError()
	logger.Get(ctx).Warn().Err(err).Str("source", source).Msg("Estimativa rejeitada")
}

// Calculate executa o estimador e monta o resultado formatado
func (s *CalculatorService) Calculate(ctx context.Context, req estimator.Request, source string) (*model.EstimateResult, error) {
	if err := req.Validate(); err != nil {
		err = fmt.Errorf("%v: %w", err, model.ErrInvalidLevel)
		s.Reject(ctx, err, source)
		return nil, err
	}

	b := req.Explain()
	result := &model.EstimateResult{
		Pages:       req.Pages,
		Language:    req.Language.Code(),
		Difficulty:  req.Difficulty.Code(),
		Focus:       req.Focus.Code(),
		Minutes:     b.Minutes,
		Formatted:   estimator.FormatDuration(b.Minutes),
		TimePerPage: b.TimePerPage.String(),
		Multipliers: model.Multipliers{
			Language:   b.LanguageMultiplier.String(),
			Difficulty: b.DifficultyMultiplier.String(),
			Focus:      b.FocusMultiplier.String(),
		},
	}

	s.metrics.RecordEstimate(source, req.Pages, b.Minutes)

	logger.Get(ctx).Info().
		Str("source", source).
		Int("pages", req.Pages).
		Str("language", result.Language).
		Str("difficulty", result.Difficulty).
		Str("focus", result.Focus).
		Int("minutes", result.Minutes).
		Msg("Estimativa calculada")

	return result, nil
}

// Catalog lista todos os níveis com códigos, rótulos e multiplicadores
func Catalog() model.LevelCatalog {
	var catalog model.LevelCatalog
	for _, l := range estimator.LanguageLevels() {
		catalog.Language = append(catalog.Language, model.LevelOption{
			Code:       l.Code(),
			Name:       l.String(),
			Label:      l.Label(),
			Multiplier: l.Multiplier().String(),
		})
	}
	for _, d := range estimator.DifficultyLevels() {
		catalog.Difficulty = append(catalog.Difficulty, model.LevelOption{
			Code:       d.Code(),
			Name:       d.String(),
			Label:      d.Label(),
			Multiplier: d.Multiplier().String(),
		})
	}
	for _, f := range estimator.FocusLevels() {
		catalog.Focus = append(catalog.Focus, model.LevelOption{
			Code:       f.Code(),
			Name:       f.String(),
			Label:      f.Label(),
			Multiplier: f.Multiplier().String(),
		})
	}
	return catalog
}
