// ABOUTME: DomainLabel is the closed set of manual domains used for routing
// ABOUTME: Anything outside the allow-list collapses to General
package models

import "strings"

// DomainLabel classifies a question into one of the manual's domains.
type DomainLabel string

const (
	DomainOperations DomainLabel = "Operations"
	DomainLogistics  DomainLabel = "Logistics"
	DomainAmmunition DomainLabel = "Ammunition"
	DomainMedical    DomainLabel = "Medical"
	DomainGeneral    DomainLabel = "General"
)

// ParseDomainLabel maps a raw model response onto the closed label set.
// The match is a strict allow-list on the trimmed response; any other
// output collapses to General so label drift stays bounded. Matching is
// deliberately case-insensitive: models return "logistics" and "Logistics"
// interchangeably, and both mean the same label. Anything less exact than
// a casing difference still collapses to General.
func ParseDomainLabel(raw string) DomainLabel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "operations":
		return DomainOperations
	case "logistics":
		return DomainLogistics
	case "ammunition":
		return DomainAmmunition
	case "medical":
		return DomainMedical
	default:
		return DomainGeneral
	}
}
