package domain

import (
	"errors"
	"strings"
	"time"
)

// Role gates what a collaborator may do to a world.
type Role string

// Collaborator roles. Exactly one owner entry exists per world at all times.
const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

var (
	// ErrInvalidRole indicates an unrecognized collaborator role.
	ErrInvalidRole = errors.New("role must be owner, editor, or viewer")
	// ErrAlreadyCollaborator indicates a duplicate collaborator add.
	ErrAlreadyCollaborator = errors.New("wallet is already a collaborator")
	// ErrCollaboratorNotFound indicates a removal of an absent collaborator.
	ErrCollaboratorNotFound = errors.New("wallet is not a collaborator")
	// ErrCollaboratorWalletRequired indicates a collaborator op without a
	// wallet address.
	ErrCollaboratorWalletRequired = errors.New("collaborator wallet is required")
)

// Collaborator grants a wallet a role on a world.
type Collaborator struct {
	WalletAddress string
	Role          Role
	AddedAt       time.Time
	AddedBy       string
}

// ParseRole validates a caller-supplied role string. The owner role is
// assigned by the engine only, so callers may grant editor or viewer.
func ParseRole(value string) (Role, error) {
	switch Role(strings.TrimSpace(value)) {
	case RoleEditor:
		return RoleEditor, nil
	case RoleViewer:
		return RoleViewer, nil
	default:
		return "", ErrInvalidRole
	}
}

// AddCollaborator appends a collaborator to the world, rejecting duplicates
// by wallet address.
func (w *World) AddCollaborator(walletAddress string, role Role, addedAt time.Time, addedBy string) error {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return ErrCollaboratorWalletRequired
	}
	for _, c := range w.Collaborators {
		if c.WalletAddress == walletAddress {
			return ErrAlreadyCollaborator
		}
	}
	w.Collaborators = append(w.Collaborators, Collaborator{
		WalletAddress: walletAddress,
		Role:          role,
		AddedAt:       addedAt,
		AddedBy:       addedBy,
	})
	return nil
}

// RemoveCollaborator removes a non-owner collaborator by wallet address.
// Targeting the owner entry is a no-op: the owner can only change through a
// purchase transfer.
func (w *World) RemoveCollaborator(walletAddress string) error {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return ErrCollaboratorWalletRequired
	}
	for i, c := range w.Collaborators {
		if c.WalletAddress != walletAddress {
			continue
		}
		if c.Role == RoleOwner {
			return nil
		}
		w.Collaborators = append(w.Collaborators[:i], w.Collaborators[i+1:]...)
		return nil
	}
	return ErrCollaboratorNotFound
}

// TransferOwnership replaces the owner collaborator entry with the new owner
// and updates the owning wallet. Non-owner collaborators are preserved.
func (w *World) TransferOwnership(newOwner string, at time.Time) {
	kept := w.Collaborators[:0]
	for _, c := range w.Collaborators {
		if c.Role != RoleOwner {
			kept = append(kept, c)
		}
	}
	w.Collaborators = append(kept, Collaborator{
		WalletAddress: newOwner,
		Role:          RoleOwner,
		AddedAt:       at,
		AddedBy:       newOwner,
	})
	w.OwnerWallet = newOwner
}
