package pricesync

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Account binds a provider ticker to the ledger file recording its price
// history. Accounts come from the registry file and are read-only to the
// sync engine.
type Account struct {
	Ticker string `yaml:"ticker"`
	Ledger string `yaml:"ledger"`
}

// registryFile is the on-disk shape of the account registry.
type registryFile struct {
	Accounts []Account `yaml:"accounts"`
}

// LoadAccounts reads the account registry from a YAML file:
//
//	accounts:
//	  - ticker: FOO
//	    ledger: ${HOME}/ledgers/foo.csv
//
// Environment variables in ledger paths are expanded. The order of the file
// is the order accounts are synced in. Every entry must carry both fields,
// and tickers must be unique, since one run owns one ledger per ticker.
func LoadAccounts(path string) ([]Account, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read account registry: %w", err)
	}

	var reg registryFile
	if err := yaml.Unmarshal(content, &reg); err != nil {
		return nil, fmt.Errorf("invalid account registry %s: %w", path, err)
	}

	seen := make(map[string]bool, len(reg.Accounts))
	for i, a := range reg.Accounts {
		if a.Ticker == "" {
			return nil, fmt.Errorf("invalid account registry %s: account #%d has no ticker", path, i+1)
		}
		if a.Ledger == "" {
			return nil, fmt.Errorf("invalid account registry %s: account %q has no ledger", path, a.Ticker)
		}
		if seen[a.Ticker] {
			return nil, fmt.Errorf("invalid account registry %s: duplicate ticker %q", path, a.Ticker)
		}
		seen[a.Ticker] = true
		reg.Accounts[i].Ledger = os.ExpandEnv(a.Ledger)
	}
	return reg.Accounts, nil
}
