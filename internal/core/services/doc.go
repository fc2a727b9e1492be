// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The flavour arithmetic itself (Extract, Validate, ExtractStrict) is a
// set of pure functions so it can be exercised without any adapter.
package services
