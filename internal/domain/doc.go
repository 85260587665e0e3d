// Package domain contains the core drawing model for draw.
//
// The domain is transport- and persistence-agnostic: it does not read files,
// parse YAML or talk to a terminal. Infra/adapters feed command lines in and
// take snapshots out.
package domain
