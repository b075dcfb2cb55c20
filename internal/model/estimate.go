package model

// EstimateRequest representa o payload de entrada para estimativa de leitura
type EstimateRequest struct {
	Pages      *int   `json:"pages"`
	Language   string `json:"language"`
	Difficulty string `json:"difficulty"`
	Focus      string `json:"focus"`
}

// Multipliers contém os fatores aplicados por página
type Multipliers struct {
	Language   string `json:"language" yaml:"language"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Focus      string `json:"focus" yaml:"focus"`
}

// EstimateResult contém o resultado da estimativa
type EstimateResult struct {
	Pages       int         `json:"pages" yaml:"pages"`
	Language    string      `json:"language" yaml:"language"`
	Difficulty  string      `json:"difficulty" yaml:"difficulty"`
	Focus       string      `json:"focus" yaml:"focus"`
	Minutes     int         `json:"minutes" yaml:"minutes"`
	Formatted   string      `json:"formatted" yaml:"formatted"` // Ex: "1h 15m"
	TimePerPage string      `json:"time_per_page" yaml:"time_per_page"`
	Multipliers Multipliers `json:"multipliers" yaml:"multipliers"`
}

// LevelOption descreve um nível selecionável
type LevelOption struct {
	Code       string `json:"code" yaml:"code"`
	Name       string `json:"name" yaml:"name"`
	Label      string `json:"label" yaml:"label"`
	Multiplier string `json:"multiplier" yaml:"multiplier"`
}

// LevelCatalog agrupa todas as opções por dimensão
type LevelCatalog struct {
	Language   []LevelOption `json:"language" yaml:"language"`
	Difficulty []LevelOption `json:"difficulty" yaml:"difficulty"`
	Focus      []LevelOption `json:"focus" yaml:"focus"`
}
