// Package core provides the domain models and interfaces shared by the
// crewdeck packages: jobs, candidate placements, conflicts, cascade
// plans, and layout slots.
package core
