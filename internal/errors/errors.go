package errors

import "errors"

// Vault and workspace errors indicate issues with the state hierarchy.
var (
	// ErrVaultExists indicates a vault with that name already exists.
	ErrVaultExists = errors.New("vault already exists")

	// ErrVaultNotFound indicates the named vault does not exist.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrNoCurrentVault indicates no vault is currently selected.
	ErrNoCurrentVault = errors.New("no vault is currently selected")

	// ErrWorkspaceExists indicates a workspace with that name already exists in the vault.
	ErrWorkspaceExists = errors.New("workspace already exists in vault")

	// ErrWorkspaceNotFound indicates the named workspace does not exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrNoCurrentWorkspace indicates no workspace is currently selected.
	ErrNoCurrentWorkspace = errors.New("no workspace is currently selected")
)

// Project errors indicate issues with opening project directories.
var (
	// ErrProjectNotFound indicates the project path does not exist.
	ErrProjectNotFound = errors.New("project path does not exist")

	// ErrProjectNotDirectory indicates the project path is not a directory.
	ErrProjectNotDirectory = errors.New("project path is not a directory")
)

// Settings errors indicate issues with the persistent settings store.
var (
	// ErrInvalidDocument indicates imported settings text is not a valid document.
	ErrInvalidDocument = errors.New("settings document is invalid")
)
