package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]*domain.Account

	CreateFunc            func(ctx context.Context, account *domain.Account) error
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.Account, error)
	GetByNumberFunc       func(ctx context.Context, number string) (*domain.Account, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatusFunc      func(ctx context.Context, id int64, status domain.AccountStatus, updatedAt time.Time) error
	ListByCustomerFunc    func(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
	}
}

// Add seeds an account, assigning an ID if needed.
func (m *MockAccountRepository) Add(account *domain.Account) *domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	if account.ID == 0 {
		m.nextID++
		account.ID = m.nextID
	} else if account.ID > m.nextID {
		m.nextID = account.ID
	}
	m.accounts[account.ID] = account
	return account
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.Add(account)
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, acc := range m.accounts {
		if acc.Number == number {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", number, domain.ErrAccountNotFound)
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []int64) ([]*domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id int64, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.Version++
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Status = status
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]*domain.Account, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.CustomerID == customerID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

// MockCardRepository is a mock implementation of CardRepository.
type MockCardRepository struct {
	mu     sync.RWMutex
	nextID int64
	cards  map[int64]*domain.Card

	CreateFunc                func(ctx context.Context, tx usecase.Transaction, card *domain.Card) error
	GetByIDFunc               func(ctx context.Context, id int64) (*domain.Card, error)
	GetByIDForUpdateFunc      func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Card, error)
	CountEnabledByAccountFunc func(ctx context.Context, tx usecase.Transaction, accountID int64) (int, error)
	UpdateStatusFunc          func(ctx context.Context, id int64, status domain.CardStatus, updatedAt time.Time) error
	UpdateLockStatusFunc      func(ctx context.Context, id int64, lockStatus domain.CardLockStatus, updatedAt time.Time) error
	ListByAccountFunc         func(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Card, error)
}

func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{
		cards: make(map[int64]*domain.Card),
	}
}

// Add seeds a card, assigning an ID if needed.
func (m *MockCardRepository) Add(card *domain.Card) *domain.Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	if card.ID == 0 {
		m.nextID++
		card.ID = m.nextID
	} else if card.ID > m.nextID {
		m.nextID = card.ID
	}
	m.cards[card.ID] = card
	return card
}

func (m *MockCardRepository) Create(ctx context.Context, tx usecase.Transaction, card *domain.Card) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, card)
	}
	m.Add(card)
	return nil
}

func (m *MockCardRepository) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if card, ok := m.cards[id]; ok {
		return card, nil
	}
	return nil, fmt.Errorf("card %d: %w", id, domain.ErrCardNotFound)
}

func (m *MockCardRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Card, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockCardRepository) CountEnabledByAccount(ctx context.Context, tx usecase.Transaction, accountID int64) (int, error) {
	if m.CountEnabledByAccountFunc != nil {
		return m.CountEnabledByAccountFunc(ctx, tx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, card := range m.cards {
		if card.AccountID == accountID && card.Status == domain.CardStatusEnabled {
			count++
		}
	}
	return count, nil
}

func (m *MockCardRepository) UpdateStatus(ctx context.Context, id int64, status domain.CardStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if card, ok := m.cards[id]; ok {
		card.Status = status
		card.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockCardRepository) UpdateLockStatus(ctx context.Context, id int64, lockStatus domain.CardLockStatus, updatedAt time.Time) error {
	if m.UpdateLockStatusFunc != nil {
		return m.UpdateLockStatusFunc(ctx, id, lockStatus, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if card, ok := m.cards[id]; ok {
		card.LockStatus = lockStatus
		card.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockCardRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Card, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var cards []*domain.Card
	for _, card := range m.cards {
		if card.AccountID == accountID {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	nextID       int64
	transactions map[int64]*domain.Transaction

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	UpdateStatusFunc  func(ctx context.Context, tx usecase.Transaction, id int64, status domain.TransactionStatus, updatedAt time.Time) error
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Transaction, error)
	ListByAccountFunc func(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[int64]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	txn.ID = m.nextID
	copied := *txn
	m.transactions[txn.ID] = &copied
	return nil
}

func (m *MockTransactionRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id int64, status domain.TransactionStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if txn, ok := m.transactions[id]; ok {
		txn.Status = status
		txn.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if txn, ok := m.transactions[id]; ok {
		return txn, nil
	}
	return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrTransactionNotFound)
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txns []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.AccountID == accountID {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

// All returns every stored transaction record.
func (m *MockTransactionRepository) All() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txns []*domain.Transaction
	for _, txn := range m.transactions {
		txns = append(txns, txn)
	}
	return txns
}

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	nextID    int64
	customers map[int64]*domain.Customer

	CreateFunc     func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[int64]*domain.Customer),
	}
}

// Add seeds a customer, assigning an ID if needed.
func (m *MockCustomerRepository) Add(customer *domain.Customer) *domain.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if customer.ID == 0 {
		m.nextID++
		customer.ID = m.nextID
	} else if customer.ID > m.nextID {
		m.nextID = customer.ID
	}
	m.customers[customer.ID] = customer
	return customer
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	customer.ID = m.nextID
	copied := *customer
	m.customers[customer.ID] = &copied
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if customer, ok := m.customers[id]; ok {
		return customer, nil
	}
	return nil, fmt.Errorf("customer %d: %w", id, domain.ErrCustomerNotFound)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, customer := range m.customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return nil, nil
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	logs []*domain.AuditLog

	CreateFunc func(ctx context.Context, log *domain.AuditLog) error
	ListFunc   func(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logs, nil
}

// Logs returns the recorded audit entries.
func (m *MockAuditRepository) Logs() []*domain.AuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logs
}

// MockTransactionManager is a mock implementation of TransactionManager.
// It records the transactions it hands out so tests can assert on
// commit/rollback behavior.
type MockTransactionManager struct {
	mu           sync.Mutex
	transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.transactions = append(m.transactions, tx)
	return tx, nil
}

// Last returns the most recently started transaction, or nil.
func (m *MockTransactionManager) Last() *MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.transactions) == 0 {
		return nil
	}
	return m.transactions[len(m.transactions)-1]
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-transfer-%d", m.counter)
}

// MockNumberGenerator is a mock implementation of NumberGenerator.
type MockNumberGenerator struct {
	mu      sync.Mutex
	counter int

	AccountNumberFunc func() string
	CardNumberFunc    func() string
}

func NewMockNumberGenerator() *MockNumberGenerator {
	return &MockNumberGenerator{}
}

func (m *MockNumberGenerator) AccountNumber() string {
	if m.AccountNumberFunc != nil {
		return m.AccountNumberFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("ACC%010d", m.counter)
}

func (m *MockNumberGenerator) CardNumber() string {
	if m.CardNumberFunc != nil {
		return m.CardNumberFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("CRD%013d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
