package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minipay/ledger-api/internal/core/domain"
)

type stubAccountRepo struct {
	byUsername map[string]*domain.Account
	balances   map[int64]float64
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		byUsername: make(map[string]*domain.Account),
		balances:   make(map[int64]float64),
	}
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.byUsername[account.Username]; exists {
		return nil, domain.ErrUserExists
	}
	account.ID = int64(len(r.byUsername) + 1)
	r.byUsername[account.Username] = account
	r.balances[account.ID] = account.Balance
	return account, nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	account, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return account, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	for _, a := range r.byUsername {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) Balance(_ context.Context, id int64) (float64, error) {
	return r.balances[id], nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id int64) error {
	for name, a := range r.byUsername {
		if a.ID == id {
			delete(r.byUsername, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.AccountSummary, error) {
	var users []domain.AccountSummary
	for _, a := range r.byUsername {
		users = append(users, domain.AccountSummary{ID: a.ID, Username: a.Username})
	}
	return users, nil
}

type stubProductRepo struct {
	products map[int64]*domain.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if r.products == nil {
		r.products = make(map[int64]*domain.Product)
	}
	p.ID = int64(len(r.products) + 1)
	r.products[p.ID] = p
	return p, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

type stubLedgerRepo struct {
	rows []domain.Transaction
}

func (r *stubLedgerRepo) ListByAccount(_ context.Context, accountID int64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, t := range r.rows {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

// stubTransferStore records calls and returns canned results.
type stubTransferStore struct {
	depositCalls  int
	transferCalls int
	purchaseCalls int

	depositBalance  float64
	transferBalance float64
	transferErr     error
	purchaseErr     error

	lastPayer, lastRecipient int64
	lastAmount               float64
}

func (s *stubTransferStore) Deposit(_ context.Context, accountID int64, amount float64) (float64, error) {
	s.depositCalls++
	s.lastPayer = accountID
	s.lastAmount = amount
	return s.depositBalance, nil
}

func (s *stubTransferStore) Transfer(_ context.Context, payerID, recipientID int64, amount float64) (float64, error) {
	s.transferCalls++
	s.lastPayer = payerID
	s.lastRecipient = recipientID
	s.lastAmount = amount
	if s.transferErr != nil {
		return 0, s.transferErr
	}
	return s.transferBalance, nil
}

func (s *stubTransferStore) Purchase(_ context.Context, accountID int64, amount float64) error {
	s.purchaseCalls++
	s.lastPayer = accountID
	s.lastAmount = amount
	return s.purchaseErr
}

func newWalletFixture() (*WalletService, *stubAccountRepo, *stubProductRepo, *stubTransferStore) {
	accounts := newStubAccountRepo()
	products := &stubProductRepo{}
	ledger := &stubLedgerRepo{}
	transfers := &stubTransferStore{}
	svc := NewWalletService(accounts, products, ledger, transfers, zerolog.Nop())
	return svc, accounts, products, transfers
}

func TestWalletService_Fund_Success(t *testing.T) {
	svc, accounts, _, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})
	transfers.depositBalance = 1000

	balance, err := svc.Fund(context.Background(), alice.ID, 1000)
	if err != nil {
		t.Fatalf("Fund returned error: %v", err)
	}
	if balance != 1000 {
		t.Fatalf("expected balance 1000, got %v", balance)
	}
	if transfers.depositCalls != 1 || transfers.lastAmount != 1000 {
		t.Fatalf("unexpected deposit calls: %+v", transfers)
	}
}

func TestWalletService_Fund_RejectsNonPositiveAmount(t *testing.T) {
	svc, accounts, _, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})

	for _, amt := range []float64{0, -50} {
		if _, err := svc.Fund(context.Background(), alice.ID, amt); err != domain.ErrInvalidAmount {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amt, err)
		}
	}
	if transfers.depositCalls != 0 {
		t.Fatalf("deposit should not be called")
	}
}

func TestWalletService_Pay_Success(t *testing.T) {
	svc, accounts, _, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})
	bob, _ := accounts.Create(context.Background(), &domain.Account{Username: "bob"})
	transfers.transferBalance = 700

	balance, err := svc.Pay(context.Background(), alice.ID, "bob", 300)
	if err != nil {
		t.Fatalf("Pay returned error: %v", err)
	}
	if balance != 700 {
		t.Fatalf("expected balance 700, got %v", balance)
	}
	if transfers.transferCalls != 1 {
		t.Fatalf("expected one transfer call, got %d", transfers.transferCalls)
	}
	if transfers.lastPayer != alice.ID || transfers.lastRecipient != bob.ID || transfers.lastAmount != 300 {
		t.Fatalf("unexpected transfer args: %+v", transfers)
	}
}

func TestWalletService_Pay_RecipientNotFound(t *testing.T) {
	svc, accounts, _, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})

	if _, err := svc.Pay(context.Background(), alice.ID, "ghost", 100); err != domain.ErrRecipientNotFound {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
	if transfers.transferCalls != 0 {
		t.Fatalf("transfer should not be called")
	}
}

func TestWalletService_Pay_InsufficientFunds(t *testing.T) {
	svc, accounts, _, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})
	accounts.Create(context.Background(), &domain.Account{Username: "bob"})
	transfers.transferErr = domain.ErrInsufficientFunds

	if _, err := svc.Pay(context.Background(), alice.ID, "bob", 500); err != domain.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestWalletService_Pay_RejectsNonPositiveAmount(t *testing.T) {
	svc, accounts, _, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})
	accounts.Create(context.Background(), &domain.Account{Username: "bob"})

	if _, err := svc.Pay(context.Background(), alice.ID, "bob", -300); err != domain.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if transfers.transferCalls != 0 {
		t.Fatalf("transfer should not be called")
	}
}

func TestWalletService_Buy_Success(t *testing.T) {
	svc, accounts, products, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})
	accounts.balances[alice.ID] = 500
	book, _ := products.Create(context.Background(), &domain.Product{Name: "book", Price: 120})

	result, err := svc.Buy(context.Background(), alice.ID, book.ID)
	if err != nil {
		t.Fatalf("Buy returned error: %v", err)
	}
	// Returned balance is the pre-debit snapshot minus the price.
	if result.Balance != 380 {
		t.Fatalf("expected balance 380, got %v", result.Balance)
	}
	if result.Product.ID != book.ID {
		t.Fatalf("unexpected product: %+v", result.Product)
	}
	if transfers.purchaseCalls != 1 || transfers.lastAmount != 120 {
		t.Fatalf("unexpected purchase call: %+v", transfers)
	}
}

func TestWalletService_Buy_InvalidProduct(t *testing.T) {
	svc, accounts, _, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})

	if _, err := svc.Buy(context.Background(), alice.ID, 42); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if transfers.purchaseCalls != 0 {
		t.Fatalf("purchase should not be called")
	}
}

func TestWalletService_Buy_InsufficientFunds(t *testing.T) {
	svc, accounts, products, transfers := newWalletFixture()
	alice, _ := accounts.Create(context.Background(), &domain.Account{Username: "alice"})
	accounts.balances[alice.ID] = 50
	book, _ := products.Create(context.Background(), &domain.Product{Name: "book", Price: 120})

	if _, err := svc.Buy(context.Background(), alice.ID, book.ID); err != domain.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if transfers.purchaseCalls != 0 {
		t.Fatalf("no mutation may happen on insufficient funds")
	}
}
