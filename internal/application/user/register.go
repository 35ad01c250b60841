package user

import (
	"context"
	"time"

	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/internal/domain/user"
)

// TxManager runs fn inside a storage transaction.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RegisterUseCase creates an account. Registering a BUYER also creates the
// buyer profile; account and profile are committed together or not at all.
type RegisterUseCase struct {
	userService  user.Service
	buyerService buyer.Service
	txManager    TxManager
}

// NewRegisterUseCase creates the registration use case.
func NewRegisterUseCase(userService user.Service, buyerService buyer.Service, txManager TxManager) *RegisterUseCase {
	return &RegisterUseCase{
		userService:  userService,
		buyerService: buyerService,
		txManager:    txManager,
	}
}

// RegisterRequest carries account credentials plus the buyer profile fields,
// which are ignored for non-BUYER roles.
type RegisterRequest struct {
	Email     string
	Password  string
	Role      user.Role
	FirstName string
	LastName  string
	Phone     string
	Birth     time.Time
	Wallet    int64 // cents
}

// RegisterResponse is the created account, without the password.
type RegisterResponse struct {
	UserID  uint      `json:"user_id"`
	BuyerID uint      `json:"buyer_id,omitempty"`
	Email   string    `json:"email"`
	Role    user.Role `json:"role"`
}

// Execute registers the account.
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp *RegisterResponse
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userService.Register(txCtx, req.Email, req.Password, req.Role)
		if err != nil {
			return err
		}

		resp = &RegisterResponse{
			UserID: u.ID,
			Email:  u.EmailAddress,
			Role:   u.Role,
		}

		if req.Role != user.RoleBuyer {
			return nil
		}

		b, err := uc.buyerService.Create(txCtx, buyer.CreateParams{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			PhoneNumber: req.Phone,
			Birth:       req.Birth,
			Wallet:      req.Wallet,
			UserID:      u.ID,
		})
		if err != nil {
			return err
		}
		resp.BuyerID = b.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
