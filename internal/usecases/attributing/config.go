package attributing

import (
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// OverrideRule é uma regra de atribuição por nome de campanha. O padrão é
// testado como expressão regular case-insensitive contra o nome da campanha;
// um padrão sem metacaracteres funciona como teste de substring.
type OverrideRule struct {
	Pattern  string `json:"pattern"`
	Customer string `json:"customer"`

	compiled *regexp.Regexp
}

// Config é o mapa de atribuição versionado, carregado uma vez na subida do
// processo e injetado nos serviços que dele dependem. Não há estado global:
// testes carregam fixtures próprias.
type Config struct {
	// Version identifica a revisão do mapa em logs e no endpoint de stats
	Version string `json:"version"`

	// Overrides são avaliadas em ordem; a primeira que casar vence. A ordem
	// importa porque algumas contas de anúncios contêm campanhas de mais de
	// um cliente.
	Overrides []OverrideRule `json:"overrides"`

	// AccountDefaults mapeia conta de anúncios -> slug do cliente, consultado
	// apenas quando nenhuma override casou.
	AccountDefaults map[string]string `json:"account_defaults"`
}

// LoadConfig lê e compila o mapa de atribuição de um arquivo JSON.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o mapa de atribuição de %s", path)
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar o mapa de atribuição de %s", path)
	}

	if err := config.Compile(); err != nil {
		return nil, err
	}

	return config, nil
}

// Compile pré-compila os padrões das overrides. Deve ser chamado antes do
// primeiro uso quando a Config é montada manualmente (fixtures de teste).
func (c *Config) Compile() error {
	for i := range c.Overrides {
		rule := &c.Overrides[i]

		pattern := rule.Pattern
		if !strings.HasPrefix(pattern, "(?i)") {
			pattern = "(?i)" + pattern
		}

		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return errors.Wrapf(err, "padrão de override inválido %q", rule.Pattern)
		}

		rule.compiled = compiled
	}

	if c.AccountDefaults == nil {
		c.AccountDefaults = map[string]string{}
	}

	return nil
}

// AdAccountIDs retorna as contas de anúncios conhecidas pelo mapa, ordenadas.
// O job de sincronização usa esta lista para decidir quais contas coletar.
func (c *Config) AdAccountIDs() []string {
	ids := make([]string, 0, len(c.AccountDefaults))
	for id := range c.AccountDefaults {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
