// Package driven defines the secondary ports of the application. These
// are the interfaces the core services require from infrastructure:
// record storage, the remote directory source, and configuration
// persistence. Adapters under internal/adapters/driven implement them.
package driven
