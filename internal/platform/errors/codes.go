// Package errors provides structured error handling for economy operations.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Lookup errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeWalletNotFound   Code = "WALLET_NOT_FOUND"
	CodeUnknownArchetype Code = "UNKNOWN_ARCHETYPE"

	// Ownership and collaboration errors
	CodeNotOwner            Code = "NOT_OWNER"
	CodeAlreadyCollaborator Code = "ALREADY_COLLABORATOR"
	CodeInvalidRole         Code = "INVALID_ROLE"

	// Marketplace errors
	CodeNotListed         Code = "NOT_LISTED"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"
	CodeInvalidPrice      Code = "INVALID_PRICE"

	// Slot machine errors
	CodeInvalidSymbols Code = "INVALID_SYMBOLS"

	// Collaborator boundary errors
	CodeGenerationFailed Code = "GENERATION_FAILED"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeInvalidRole,
		CodeInvalidPrice,
		CodeInvalidSymbols,
		CodeUnknownArchetype:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeNotListed,
		CodeInsufficientFunds:
		return codes.FailedPrecondition

	// PermissionDenied - caller lacks rights over the resource
	case CodeNotOwner:
		return codes.PermissionDenied

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeWalletNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeAlreadyCollaborator:
		return codes.AlreadyExists

	// Unavailable - external collaborator failed
	case CodeGenerationFailed:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
