package financial

import "github.com/BeautyProBR/beautypro-api/internal/models"

type Balance struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// Summarize agrega o razão inteiro a cada leitura: não existe saldo
// cacheado para invalidar.
func Summarize(entries []models.FinancialEntry) Balance {
	var b Balance

	for _, e := range entries {
		switch e.Type {
		case models.EntryIncome:
			b.Income += e.Amount
		case models.EntryExpense:
			b.Expenses += e.Amount
		}
	}

	b.Balance = b.Income - b.Expenses
	return b
}

// ValidEntryType valida o tipo antes do insert (append-only, sem
// correção posterior).
func ValidEntryType(t string) bool {
	return t == models.EntryIncome || t == models.EntryExpense
}
