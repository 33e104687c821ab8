package service

import (
	"context"
	"errors"
	"time"

	"github.com/hrshiniA/portfolio-app/internal/apperr"
	"github.com/hrshiniA/portfolio-app/internal/auth"
	"github.com/hrshiniA/portfolio-app/internal/models"
	"github.com/hrshiniA/portfolio-app/internal/repository"
	"github.com/sirupsen/logrus"
)

// Store is the persistence layer used by Service
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)

	ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error)
	FindHolding(ctx context.Context, userID, id int64) (*models.Holding, error)
	CreateHolding(ctx context.Context, h *models.Holding, opening *models.Transaction) error
	UpdateHolding(ctx context.Context, h *models.Holding) error

	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
}

// TokenIssuer creates session tokens
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// Service handles business logic
type Service struct {
	store  Store
	tokens TokenIssuer
	hasher *auth.Hasher
	log    logrus.FieldLogger
	now    func() time.Time
}

// NewService initializes a new service
func NewService(store Store, tokens TokenIssuer, hasher *auth.Hasher, log logrus.FieldLogger) *Service {
	return &Service{store: store, tokens: tokens, hasher: hasher, log: log, now: time.Now}
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, in Credentials) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.Store(err)
	}

	user := &models.User{
		Username:     in.Username,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.ErrDuplicateUsername
		}
		return nil, apperr.Store(err)
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login authenticates a user and returns a session token
func (s *Service) Login(ctx context.Context, in Credentials) (string, error) {
	in.normalize()

	user, err := s.store.FindUserByUsername(ctx, in.Username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.hasher.CheckMissing(in.Password)
		return "", apperr.ErrInvalidCredentials
	case err != nil:
		return "", apperr.Store(err)
	}

	if !s.hasher.Check(in.Password, user.PasswordHash) {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", apperr.Store(err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return token, nil
}

// ListHoldings returns the caller's holdings
func (s *Service) ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error) {
	holdings, err := s.store.ListHoldings(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return holdings, nil
}

// GetHolding returns one of the caller's holdings
func (s *Service) GetHolding(ctx context.Context, userID, id int64) (*models.Holding, error) {
	h, err := s.store.FindHolding(ctx, userID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	return h, nil
}

// CreateHolding adds a holding for the caller and records the matching
// buy transaction.
func (s *Service) CreateHolding(ctx context.Context, userID int64, in HoldingInput) (*models.Holding, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	h := in.holding(userID)
	opening := &models.Transaction{
		UserID:    userID,
		AssetName: h.Name,
		Type:      models.TransactionBuy,
		Quantity:  in.quantity(),
		Price:     h.PurchasePrice,
		Date:      s.stamp(),
	}
	if err := s.store.CreateHolding(ctx, h, opening); err != nil {
		return nil, apperr.Store(err)
	}

	s.log.Infof("Holding %d created for user %d: %s", h.ID, userID, h.Name)
	return h, nil
}

// UpdateHolding overwrites one of the caller's holdings. Holdings that do
// not exist or belong to someone else are reported as not found.
func (s *Service) UpdateHolding(ctx context.Context, userID, id int64, in HoldingInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	h := in.holding(userID)
	h.ID = id
	err := s.store.UpdateHolding(ctx, h)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return apperr.Store(err)
	}

	s.log.Infof("Holding %d updated for user %d", id, userID)
	return nil
}

// ListTransactions returns the caller's transactions
func (s *Service) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return txs, nil
}

// CreateTransaction appends a transaction for the caller, dated now
func (s *Service) CreateTransaction(ctx context.Context, userID int64, in TransactionInput) (*models.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	t := &models.Transaction{
		UserID:    userID,
		AssetName: in.AssetName,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Price:     in.Price,
		Date:      s.stamp(),
	}
	if err := s.store.CreateTransaction(ctx, t); err != nil {
		return nil, apperr.Store(err)
	}

	s.log.Infof("Transaction %d recorded for user %d: %s %s", t.ID, userID, t.Type, t.AssetName)
	return t, nil
}

func (s *Service) stamp() string {
	return s.now().UTC().Format(models.DateLayout)
}
