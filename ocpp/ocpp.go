package ocpp

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"ocpp16/validation"
)

var ErrUnsupportedFeature = errors.New("feature not supported")

// Message is any OCPP request or confirmation payload.
type Message interface {
	// GetFeatureName Returns the unique name of the feature, to which this message belongs to.
	GetFeatureName() string
	// Validate reports whether every required field is present and valid.
	Validate() bool
	// Violations lists every failed check; empty when Validate is true.
	Violations() validation.Errors
}

// Request message
type Request interface {
	Message
}

// Response message
type Response interface {
	Message
}

// Feature binds an action name to its request and response payload types.
type Feature interface {
	GetFeatureName() string
	GetRequestType() reflect.Type
	GetResponseType() reflect.Type
}

// NewRequest allocates an empty request for the feature.
func NewRequest(feature Feature) Request {
	return reflect.New(feature.GetRequestType()).Interface().(Request)
}

// NewResponse allocates an empty response for the feature.
func NewResponse(feature Feature) Response {
	return reflect.New(feature.GetResponseType()).Interface().(Response)
}

// Profile is a named group of features, e.g. Core or SmartCharging.
type Profile struct {
	Name     string
	features map[string]Feature
}

func NewProfile(name string, features ...Feature) *Profile {
	profile := &Profile{Name: name, features: make(map[string]Feature, len(features))}
	for _, feature := range features {
		profile.AddFeature(feature)
	}
	return profile
}

// AddFeature registers a feature, panicking on duplicates since profiles are built at init.
func (p *Profile) AddFeature(feature Feature) {
	name := feature.GetFeatureName()
	if _, ok := p.features[name]; ok {
		panic(fmt.Sprintf("ocpp: feature %s registered twice in profile %s", name, p.Name))
	}
	p.features[name] = feature
}

func (p *Profile) Feature(name string) (Feature, bool) {
	feature, ok := p.features[name]
	return feature, ok
}

// Features returns the profile's features ordered by name.
func (p *Profile) Features() []Feature {
	names := make([]string, 0, len(p.features))
	for name := range p.features {
		names = append(names, name)
	}
	sort.Strings(names)
	features := make([]Feature, len(names))
	for i, name := range names {
		features[i] = p.features[name]
	}
	return features
}
