// Package vault implements atelier's workspace-organization hierarchy.
//
// The hierarchy is strictly owned, leaves-first:
//
//	Registry -> Vault -> Workspace -> open project paths
//
// A Registry owns the set of named vaults and the current-vault
// selection, persisted as a single JSON document. Each Vault owns its
// named workspaces and a current-workspace pointer; each Workspace
// tracks an ordered, deduplicated list of opened project directories and
// a current project. There is no shared ownership and no back-references
// beyond name-based lookup.
//
// Selection pointers are validated at the boundary: loading a document
// with a dangling pointer clears it, and selecting a nonexistent name is
// rejected. EnsureDefaultVault keeps the registry non-empty, so callers
// can rely on a usable vault existing after initialization even when the
// on-disk document was missing or corrupt.
package vault
