// Package registry maps OCPP action names to their message types and is the single entry
// point for decoding and encoding payloads.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"ocpp16/internal"
	"ocpp16/metrics/counters"
	"ocpp16/ocpp"
	"ocpp16/ocpp/core"
	"ocpp16/ocpp/firmware"
	"ocpp16/ocpp/localauth"
	"ocpp16/ocpp/remotetrigger"
	"ocpp16/ocpp/reservation"
	"ocpp16/ocpp/smartcharging"
	"ocpp16/types"
)

const unknownAction = "unknown"

// Profiles lists every OCPP 1.6 profile known to the module.
var Profiles = []*ocpp.Profile{
	core.Profile,
	firmware.Profile,
	localauth.Profile,
	remotetrigger.Profile,
	reservation.Profile,
	smartcharging.Profile,
}

// Registry is immutable after construction; Parse and Marshal may be called concurrently.
type Registry struct {
	features map[string]ocpp.Feature
	profiles []string
	logger   internal.LogHandler
}

// New builds a registry from profiles. An action present in two profiles is a programming
// error and panics.
func New(profiles ...*ocpp.Profile) *Registry {
	r := &Registry{features: make(map[string]ocpp.Feature)}
	for _, profile := range profiles {
		r.profiles = append(r.profiles, profile.Name)
		for _, feature := range profile.Features() {
			name := feature.GetFeatureName()
			if _, ok := r.features[name]; ok {
				panic(fmt.Sprintf("registry: action %s registered twice", name))
			}
			r.features[name] = feature
		}
	}
	return r
}

// NewDefault returns a registry holding all six OCPP 1.6 profiles.
func NewDefault() *Registry {
	return New(Profiles...)
}

// NewForProfiles builds a registry from profile names, all profiles when names is empty.
func NewForProfiles(names []string) (*Registry, error) {
	if len(names) == 0 {
		return NewDefault(), nil
	}
	selected := make([]*ocpp.Profile, 0, len(names))
	for _, name := range names {
		profile := profileByName(name)
		if profile == nil {
			return nil, fmt.Errorf("unknown profile %q", name)
		}
		selected = append(selected, profile)
	}
	return New(selected...), nil
}

func profileByName(name string) *ocpp.Profile {
	for _, profile := range Profiles {
		if profile.Name == name {
			return profile
		}
	}
	return nil
}

// SetLogger sets the handler receiving rejection events. Call it before the registry is shared.
func (r *Registry) SetLogger(logger internal.LogHandler) {
	r.logger = logger
}

// Feature looks up an action, the error wraps ocpp.ErrUnsupportedFeature.
func (r *Registry) Feature(action string) (ocpp.Feature, error) {
	feature, ok := r.features[action]
	if !ok {
		return nil, fmt.Errorf("action %q: %w", action, ocpp.ErrUnsupportedFeature)
	}
	return feature, nil
}

// Actions returns the registered action names in lexical order.
func (r *Registry) Actions() []string {
	actions := make([]string, 0, len(r.features))
	for action := range r.features {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// ProfileNames returns the names of the registered profiles in registration order.
func (r *Registry) ProfileNames() []string {
	return append([]string(nil), r.profiles...)
}

// ParseRequest decodes a request payload for action and validates it.
func (r *Registry) ParseRequest(action string, payload []byte) (ocpp.Request, error) {
	feature, err := r.Feature(action)
	if err != nil {
		return nil, r.reject(action, counters.KindRequest, err)
	}
	request := ocpp.NewRequest(feature)
	if err = r.decode(payload, request); err != nil {
		return nil, r.reject(action, counters.KindRequest, err)
	}
	counters.CountDecoded(action, counters.KindRequest)
	return request, nil
}

// ParseResponse decodes a response payload for action and validates it.
func (r *Registry) ParseResponse(action string, payload []byte) (ocpp.Response, error) {
	feature, err := r.Feature(action)
	if err != nil {
		return nil, r.reject(action, counters.KindResponse, err)
	}
	response := ocpp.NewResponse(feature)
	if err = r.decode(payload, response); err != nil {
		return nil, r.reject(action, counters.KindResponse, err)
	}
	counters.CountDecoded(action, counters.KindResponse)
	return response, nil
}

// Marshal validates message and encodes it. Invalid messages are never encoded.
func (r *Registry) Marshal(message ocpp.Message) ([]byte, error) {
	action := message.GetFeatureName()
	feature, err := r.Feature(action)
	if err != nil {
		return nil, err
	}
	kind, err := kindOf(feature, message)
	if err != nil {
		return nil, err
	}
	if violations := message.Violations(); len(violations) > 0 {
		return nil, fmt.Errorf("%s %s: %w", action, kind, violations)
	}
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", action, kind, err)
	}
	counters.CountEncoded(action, kind)
	return data, nil
}

func (r *Registry) decode(payload []byte, message ocpp.Message) error {
	if err := types.Unmarshal(payload, message); err != nil {
		return err
	}
	if violations := message.Violations(); len(violations) > 0 {
		return violations
	}
	return nil
}

func (r *Registry) reject(action, kind string, err error) error {
	code := ocpp.ErrorCodeFor(err)
	label := action
	if errors.Is(err, ocpp.ErrUnsupportedFeature) {
		// keep label cardinality bounded for unknown actions
		label = unknownAction
	}
	counters.CountRejected(label, kind, string(code))
	if r.logger != nil {
		r.logger.Debug(fmt.Sprintf("%s %s rejected with %s: %v", action, kind, code, err))
	}
	return fmt.Errorf("%s %s: %w", action, kind, err)
}

func kindOf(feature ocpp.Feature, message ocpp.Message) (string, error) {
	t := reflect.TypeOf(message)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t {
	case feature.GetRequestType():
		return counters.KindRequest, nil
	case feature.GetResponseType():
		return counters.KindResponse, nil
	}
	return "", fmt.Errorf("%s is not a message of action %s", t, feature.GetFeatureName())
}
