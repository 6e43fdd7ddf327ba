package accounts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counted-dev/counted/internal/model"
)

func TestNewService_ScopesToCompany(t *testing.T) {
	other := acct("9", "", "Foreign", model.AccountTypeAsset)
	other.CompanyID = "co2"
	svc := NewService("co1", append(sampleCatalog(), other))

	assert.Len(t, svc.All(), 3)
	assert.False(t, svc.Exists("9"))
	assert.Equal(t, "co1", svc.CompanyID())
}

func TestGetExistsByType(t *testing.T) {
	svc := NewService("co1", DefaultChart("co1"))

	a, ok := svc.Get("101.01")
	assert.True(t, ok)
	assert.Equal(t, "Cash on Hand", a.Name)

	_, ok = svc.Get("999")
	assert.False(t, ok)
	assert.True(t, svc.Exists("301"))

	for _, e := range svc.ByType(model.AccountTypeExpense) {
		assert.Equal(t, model.AccountTypeExpense, e.Type)
	}
	assert.NotEmpty(t, svc.ByType(model.AccountTypeIncome))
}

func TestUpsert_AddAndUpdate(t *testing.T) {
	svc := NewService("co1", sampleCatalog())

	added := acct("102", "1", "Receivables", model.AccountTypeAsset)
	require.NoError(t, svc.Upsert(added))
	assert.True(t, svc.Exists("102"))

	added.Name = "Accounts Receivable"
	require.NoError(t, svc.Upsert(added))
	got, _ := svc.Get("102")
	assert.Equal(t, "Accounts Receivable", got.Name)
	assert.Len(t, svc.All(), 4)
}

func TestUpsert_RejectsUnknownParent(t *testing.T) {
	svc := NewService("co1", sampleCatalog())
	err := svc.Upsert(acct("201", "2", "Payables", model.AccountTypeLiability))
	assert.Error(t, err)
}

func TestUpsert_RejectsCycle(t *testing.T) {
	svc := NewService("co1", sampleCatalog())

	// Re-parenting the root "1" under its grandchild closes a cycle.
	root, _ := svc.Get("1")
	root.IsMainAccount = false
	root.ParentCode = "101.01"
	err := svc.Upsert(root)
	assert.ErrorAs(t, err, &CyclicHierarchyError{})
}

func TestUpsert_RejectsNonRootMainAccount(t *testing.T) {
	svc := NewService("co1", sampleCatalog())

	a := acct("104", "1", "Main Under Parent", model.AccountTypeAsset)
	a.IsMainAccount = true
	assert.Error(t, svc.Upsert(a))
}

func TestUpsert_RejectsInvalidType(t *testing.T) {
	svc := NewService("co1", sampleCatalog())
	a := acct("104", "1", "Oddball", model.AccountType("revenue"))
	assert.Error(t, svc.Upsert(a))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc := NewService("co1", DefaultChart("co1"))
	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir, "co1")
	require.NoError(t, err)
	assert.Equal(t, svc.All(), loaded.All())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), "co1")
	assert.Error(t, err)
}
