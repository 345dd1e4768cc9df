package attributing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	config := &Config{
		Version: "2025-12-01",
		Overrides: []OverrideRule{
			{Pattern: "sommeraktion", Customer: "herlitz"},
			{Pattern: "^black friday", Customer: "pelikan"},
		},
		AccountDefaults: map[string]string{
			"594963889574701": "pelikan",
			"112233445566778": "herlitz",
		},
	}

	assert.NoError(t, config.Compile())
	return config
}

func TestResolveCustomerForCampaign(t *testing.T) {
	tests := []struct {
		name         string
		accountID    string
		campaignName string
		wantCustomer string
		wantOk       bool
	}{
		{
			name:         "Conta mapeada sem override - usa o padrão da conta",
			accountID:    "594963889574701",
			campaignName: "Conversões Dezembro",
			wantCustomer: "pelikan",
			wantOk:       true,
		},
		{
			name:         "Override por nome de campanha vence o padrão da conta",
			accountID:    "594963889574701",
			campaignName: "Herlitz Sommeraktion 2025",
			wantCustomer: "herlitz",
			wantOk:       true,
		},
		{
			name:         "Override casa sem diferenciar maiúsculas",
			accountID:    "594963889574701",
			campaignName: "HERLITZ SOMMERAKTION",
			wantCustomer: "herlitz",
			wantOk:       true,
		},
		{
			name:         "Primeira override que casa vence",
			accountID:    "594963889574701",
			campaignName: "Black Friday Sommeraktion",
			wantCustomer: "herlitz",
			wantOk:       true,
		},
		{
			name:         "Padrão ancorado só casa no início do nome",
			accountID:    "112233445566778",
			campaignName: "Remarketing Black Friday",
			wantCustomer: "herlitz",
			wantOk:       true,
		},
		{
			name:         "Conta desconhecida sem override - campanha não atribuível",
			accountID:    "999999999999999",
			campaignName: "Campanha Avulsa",
			wantCustomer: "",
			wantOk:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(testConfig(t))

			customer, ok := service.ResolveCustomerForCampaign(tt.accountID, tt.campaignName)

			assert.Equal(t, tt.wantCustomer, customer)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestStatsCounters(t *testing.T) {
	service := NewService(testConfig(t))

	service.ResolveCustomerForCampaign("594963889574701", "Conversões Dezembro")
	service.ResolveCustomerForCampaign("594963889574701", "Herlitz Sommeraktion")
	service.ResolveCustomerForCampaign("999999999999999", "Campanha Avulsa")
	service.ResolveCustomerForCampaign("999999999999999", "Outra Avulsa")
	service.ResolveCustomerForCampaign("888888888888888", "Sem Dono")

	stats := service.Stats()

	assert.Equal(t, "2025-12-01", stats.Version)
	assert.Equal(t, int64(2), stats.TotalResolved)
	assert.Equal(t, int64(3), stats.TotalExcluded)
	assert.Equal(t, int64(2), stats.Unattributed["999999999999999"])
	assert.Equal(t, int64(1), stats.Unattributed["888888888888888"])

	assert.Equal(t, []string{"888888888888888", "999999999999999"}, service.UnattributedAccounts())
}

func TestAdAccountIDs(t *testing.T) {
	config := testConfig(t)

	assert.Equal(t, []string{"112233445566778", "594963889574701"}, config.AdAccountIDs())
}
