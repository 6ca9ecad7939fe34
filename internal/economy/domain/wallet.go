package domain

import (
	"errors"
	"time"
)

// StartingInfinityBalance is granted to every freshly created wallet.
const StartingInfinityBalance = 10000

var (
	// ErrWalletAddressRequired indicates a wallet operation without an
	// address.
	ErrWalletAddressRequired = errors.New("wallet address is required")
	// ErrInsufficientFunds indicates a purchase the buyer cannot afford.
	ErrInsufficientFunds = errors.New("infinity balance is insufficient")
)

// Wallet holds a participant's two balances. Balance accumulates value earned
// from worlds; InfinityBalance is the spendable marketplace currency.
type Wallet struct {
	Address         string
	Balance         int
	InfinityBalance int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewWallet returns a wallet with the starting balances.
func NewWallet(address string, createdAt time.Time) Wallet {
	return Wallet{
		Address:         address,
		Balance:         0,
		InfinityBalance: StartingInfinityBalance,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

// CanAfford reports whether the wallet's infinity balance covers a price.
func (w Wallet) CanAfford(price int) bool {
	return w.InfinityBalance >= price
}
