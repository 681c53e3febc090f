package services

import (
	"fmt"
	"time"

	"budget-engine/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoCategory struct {
	name      string
	icon      string
	minAmount float64
	maxAmount float64
}

var demoCategories = []demoCategory{
	{"Groceries", "cart", 10, 300},
	{"Dining", "utensils", 5, 150},
	{"Transportation", "car", 5, 100},
	{"Shopping", "bag", 20, 500},
	{"Entertainment", "film", 5, 100},
	{"Bills & Utilities", "bolt", 30, 400},
	{"Healthcare", "heart", 10, 500},
	{"Travel", "plane", 100, 2000},
}

var demoAccountKinds = []string{"Checking", "Savings", "Card", "Wallet"}

const (
	minIncomeAmount = 500
	maxIncomeAmount = 5000
)

type ledgerGenerator struct {
	faker *gofakeit.Faker
}

// NewLedgerGenerator creates a demo ledger generator. A zero seed picks a random one.
func NewLedgerGenerator(seed uint64) LedgerGeneratorInterface {
	return &ledgerGenerator{
		faker: gofakeit.New(seed),
	}
}

// GenerateAccounts creates count accounts, cycling through currencies.
func (g *ledgerGenerator) GenerateAccounts(count int, currencies []string) []models.Account {
	accounts := make([]models.Account, 0, count)
	for i := 0; i < count; i++ {
		currency := ""
		if len(currencies) > 0 {
			currency = currencies[i%len(currencies)]
		}
		accounts = append(accounts, models.Account{
			ID:               uuid.New(),
			Name:             fmt.Sprintf("%s %s", g.faker.Company(), g.faker.RandomString(demoAccountKinds)),
			Currency:         currency,
			Color:            g.faker.HexColor(),
			OrderNum:         float64(i),
			IncludeInBalance: true,
		})
	}
	return accounts
}

func (g *ledgerGenerator) GenerateCategories() []models.Category {
	categories := make([]models.Category, 0, len(demoCategories))
	for i, c := range demoCategories {
		categories = append(categories, models.Category{
			ID:       uuid.New(),
			Name:     c.name,
			Icon:     c.icon,
			Color:    g.faker.HexColor(),
			OrderNum: float64(i),
		})
	}
	return categories
}

// GenerateTransactions creates count transactions dated inside [from, to):
// roughly 70% expenses, 20% income and 10% transfers. A few expenses are
// uncategorized and a few are planned payments without a date.
func (g *ledgerGenerator) GenerateTransactions(accounts []models.Account, categories []models.Category, from, to time.Time, count int) []models.Transaction {
	if len(accounts) == 0 || !from.Before(to) {
		return nil
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		account := accounts[g.faker.IntRange(0, len(accounts)-1)]
		at := g.faker.DateRange(from, to.Add(-time.Second)).UTC().Truncate(time.Second)

		txn := models.Transaction{
			ID:        uuid.New(),
			AccountID: account.ID,
			Title:     g.faker.Company(),
			DateTime:  &at,
		}

		roll := g.faker.Float64Range(0, 1)
		switch {
		case roll < 0.70:
			txn.Type = models.TransactionTypeExpense
			if len(categories) > 0 && g.faker.Float64Range(0, 1) >= 0.1 {
				idx := g.faker.IntRange(0, len(categories)-1)
				categoryID := categories[idx].ID
				txn.CategoryID = &categoryID
				txn.Amount = g.amountFor(categories[idx].Name)
			} else {
				txn.Amount = g.price(5, 200)
			}
			if g.faker.Float64Range(0, 1) < 0.05 {
				txn.DateTime = nil
				txn.DueDate = &at
			}
		case roll < 0.90:
			txn.Type = models.TransactionTypeIncome
			txn.Title = "Salary " + g.faker.Company()
			txn.Amount = g.price(minIncomeAmount, maxIncomeAmount)
		default:
			txn.Type = models.TransactionTypeTransfer
			txn.Title = "Transfer"
			txn.Amount = g.price(50, 1000)
		}

		transactions = append(transactions, txn)
	}
	return transactions
}

// GenerateBudgets creates one app-wide budget, one account budget and a
// budget for each of the first three categories.
func (g *ledgerGenerator) GenerateBudgets(accounts []models.Account, categories []models.Category) []models.Budget {
	budgets := []models.Budget{{
		ID:     uuid.New(),
		Name:   "Monthly spending",
		Amount: decimal.NewFromInt(3000),
	}}

	if len(accounts) > 0 {
		budgets = append(budgets, models.Budget{
			ID:         uuid.New(),
			Name:       accounts[0].Name + " limit",
			Amount:     g.price(500, 1500).Round(0),
			AccountIDs: models.UUIDList{accounts[0].ID},
		})
	}

	for i := 0; i < len(categories) && i < 3; i++ {
		budgets = append(budgets, models.Budget{
			ID:          uuid.New(),
			Name:        categories[i].Name,
			Amount:      g.price(200, 800).Round(0),
			CategoryIDs: models.UUIDList{categories[i].ID},
		})
	}

	for i := range budgets {
		budgets[i].OrderID = float64(i)
	}
	return budgets
}

func (g *ledgerGenerator) amountFor(category string) decimal.Decimal {
	for _, c := range demoCategories {
		if c.name == category {
			return g.price(c.minAmount, c.maxAmount)
		}
	}
	return g.price(5, 200)
}

func (g *ledgerGenerator) price(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Price(min, max)).Round(2)
}
