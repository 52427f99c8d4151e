// Package body defines what can sit on an orbital point.
//
// Object is a closed sum type: only the variants declared here implement it.
// Code that inspects an Object switches over every variant and panics in the
// default branch, so adding a variant breaks loudly instead of being ignored.
package body

import "fmt"

type Kind string

const (
	KindVoid         Kind = "Void"
	KindStar         Kind = "Star"
	KindPlanet       Kind = "Planet"
	KindAsteroidBelt Kind = "AsteroidBelt"
)

type Object interface {
	kind() Kind
}

// Void marks a barycenter or an empty orbital slot.
type Void struct{}

func (Void) kind() Kind         { return KindVoid }
func (Star) kind() Kind         { return KindStar }
func (Planet) kind() Kind       { return KindPlanet }
func (AsteroidBelt) kind() Kind { return KindAsteroidBelt }

func KindOf(o Object) Kind {
	switch o.(type) {
	case Void:
		return KindVoid
	case Star:
		return KindStar
	case Planet:
		return KindPlanet
	case AsteroidBelt:
		return KindAsteroidBelt
	default:
		panic(unknown(o))
	}
}

// Name returns the display name of a body, or "" for Void.
func Name(o Object) string {
	switch v := o.(type) {
	case Void:
		return ""
	case Star:
		return v.Name
	case Planet:
		return v.Name
	case AsteroidBelt:
		return v.Name
	default:
		panic(unknown(o))
	}
}

func unknown(o Object) string {
	return fmt.Sprintf("body: unknown astronomical object %T", o)
}
