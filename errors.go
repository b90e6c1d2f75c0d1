package ggplot

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ggplot package. Typed errors below unwrap to
// these so callers can match with errors.Is.
var (
	// ErrMissingColumn is returned when an aesthetic mapping names a
	// column that is not present in the dataset it resolves against.
	ErrMissingColumn = errors.New("ggplot: mapped column not found")

	// ErrMissingAesthetic is returned when a geom's required aesthetic
	// has no mapping, parameter, or default value.
	ErrMissingAesthetic = errors.New("ggplot: required aesthetic missing")

	// ErrScaleConflict is returned when no scale was specified for a
	// mapped aesthetic and the geoms disagree on a default.
	ErrScaleConflict = errors.New("ggplot: conflicting default scales")

	// ErrAmbiguousFacet is returned when a Facet spec mixes wrap with
	// row or col, leaving grid versus wrap faceting ambiguous.
	ErrAmbiguousFacet = errors.New("ggplot: ambiguous facet spec")

	// ErrFacetOverflow is returned when an explicit wrap grid has fewer
	// panels than there are facet levels to plot.
	ErrFacetOverflow = errors.New("ggplot: facet grid too small")
)

// MissingColumnError reports an aesthetic mapping that did not resolve.
type MissingColumnError struct {
	Geom      string
	Aesthetic string
	Column    string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("ggplot: %s: aesthetic %q maps to column %q, not found in dataset",
		e.Geom, e.Aesthetic, e.Column)
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// MissingAestheticError reports a geom whose required aesthetic could not
// be resolved from any mapping, parameter, or default.
type MissingAestheticError struct {
	Geom      string
	Aesthetic string
}

func (e *MissingAestheticError) Error() string {
	return fmt.Sprintf("ggplot: %s: no mapping or parameter for required aesthetic %q",
		e.Geom, e.Aesthetic)
}

func (e *MissingAestheticError) Unwrap() error { return ErrMissingAesthetic }

// GroupedAestheticError reports a grouped aesthetic that resolved to more
// than one distinct value within a single group. Grouped aesthetics must
// be constant per group; check groupings and aesthetic scales.
type GroupedAestheticError struct {
	Geom      string
	Aesthetic string
}

func (e *GroupedAestheticError) Error() string {
	return fmt.Sprintf("ggplot: %s: grouped aesthetic %q has multiple values within one group",
		e.Geom, e.Aesthetic)
}

// ScaleConflictError reports clashing geom default scales for an
// aesthetic that has no explicit plot-level scale.
type ScaleConflictError struct {
	Aesthetic string
}

func (e *ScaleConflictError) Error() string {
	return fmt.Sprintf("ggplot: no scale specified for aesthetic %q and geom defaults disagree",
		e.Aesthetic)
}

func (e *ScaleConflictError) Unwrap() error { return ErrScaleConflict }

// FacetColumnError reports a dataset that is missing a faceting variable.
type FacetColumnError struct {
	Source string // which dataset (plot or geom name)
	Column string
}

func (e *FacetColumnError) Error() string {
	return fmt.Sprintf("ggplot: %s: missing faceting variable %q", e.Source, e.Column)
}

func (e *FacetColumnError) Unwrap() error { return ErrMissingColumn }
