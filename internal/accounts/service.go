// Package accounts holds the chart of accounts for one company: lookup,
// hierarchy building, search, validation, and CSV persistence.
package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/counted-dev/counted/internal/model"
)

// Service provides in-memory lookup over one company's chart of accounts.
type Service struct {
	companyID string
	accounts  []model.Account
	byCode    map[string]model.Account
}

// NewService creates a Service scoped to companyID, keeping only that
// company's accounts in their input order.
func NewService(companyID string, accounts []model.Account) *Service {
	s := &Service{companyID: companyID, byCode: make(map[string]model.Account)}
	for _, a := range accounts {
		if a.CompanyID != companyID {
			continue
		}
		s.accounts = append(s.accounts, a)
		s.byCode[a.Code] = a
	}
	return s
}

// Load reads chart-of-accounts.csv from a data root and returns a Service
// scoped to companyID.
func Load(root, companyID string) (*Service, error) {
	path := filepath.Join(root, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(companyID, accts), nil
}

// CompanyID returns the company the service is scoped to.
func (s *Service) CompanyID() string { return s.companyID }

// All returns all accounts in input order.
func (s *Service) All() []model.Account { return s.accounts }

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Upsert adds or replaces an account after validating it against the
// catalog. Deleting accounts is unsupported; postings may reference them
// forever.
func (s *Service) Upsert(a model.Account) error {
	if err := s.validate(a); err != nil {
		return err
	}
	if _, ok := s.byCode[a.Code]; ok {
		for i := range s.accounts {
			if s.accounts[i].Code == a.Code {
				s.accounts[i] = a
				break
			}
		}
	} else {
		s.accounts = append(s.accounts, a)
	}
	s.byCode[a.Code] = a
	return nil
}

func (s *Service) validate(a model.Account) error {
	if a.Code == "" {
		return fmt.Errorf("account code is required")
	}
	if a.CompanyID != s.companyID {
		return fmt.Errorf("account %s belongs to company %q, catalog is scoped to %q", a.Code, a.CompanyID, s.companyID)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("account %s: invalid type %q", a.Code, a.Type)
	}
	if a.IsMainAccount && a.ParentCode != "" {
		return fmt.Errorf("account %s: main accounts must be root-level", a.Code)
	}
	if a.ParentCode != "" {
		if a.ParentCode == a.Code {
			return CyclicHierarchyError{Code: a.Code}
		}
		if !s.Exists(a.ParentCode) {
			return fmt.Errorf("account %s: parent %q does not exist", a.Code, a.ParentCode)
		}
		// Walk up from the proposed parent; reaching a.Code again means
		// the update would close a cycle.
		seen := map[string]bool{a.Code: true}
		cur := a.ParentCode
		for cur != "" {
			if seen[cur] {
				return CyclicHierarchyError{Code: a.Code}
			}
			seen[cur] = true
			parent, ok := s.byCode[cur]
			if !ok {
				break
			}
			cur = parent.ParentCode
		}
	}
	return nil
}

// Save writes the chart of accounts to <root>/accounts/chart-of-accounts.csv.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
