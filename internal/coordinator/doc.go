// Package coordinator sequences startup and shutdown of atelier's state
// layer and exposes workspace operations to the host application.
//
// Startup is two-phase. The essential phase (New) constructs the vault
// registry from disk and is the only phase whose failure should abort
// the host: even a corrupt registry document yields a usable, empty
// registry. The manager phase (Initialize) repairs the registry with a
// default vault and persists it; its failures are logged and absorbed.
// LateInit exists for components that need a host UI surface and only
// warns when none was registered.
//
// A Coordinator is constructed once at startup and passed by reference
// to consumers; there is no process-wide singleton.
package coordinator
