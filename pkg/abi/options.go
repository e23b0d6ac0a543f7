package abi

import "strings"

// Logger receives diagnostic messages for conditions that are valid but
// worth surfacing, such as an ambiguous packed encoding. The zero value
// (nil passed to WithLogger, or no option at all) is silent.
type Logger func(format string, args ...any)

func noopLogger(string, ...any) {}

const defaultMaxDepth = 32

type codecConfig struct {
	logger   Logger
	maxDepth int
}

// Option configures a Codec built with New.
type Option func(*codecConfig)

// WithLogger sets the sink for diagnostic messages, such as the warning
// EncodePacked emits when asked to pack nested variable-width elements.
// The default is silent.
func WithLogger(l Logger) Option {
	return func(c *codecConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxDepth bounds how deeply nested a tuple/array type string the
// codec will recurse into, guarding against pathological type strings.
// The default is 32.
func WithMaxDepth(depth int) Option {
	return func(c *codecConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// Codec is a configured encoder/decoder. The zero value is not usable;
// build one with New. The package-level Encode/Decode/EncodePacked
// functions behave like New().Encode/Decode/EncodePacked with default
// options, except that they apply no nesting-depth limit.
type Codec struct {
	cfg codecConfig
}

// New builds a Codec with opts applied over the defaults.
func New(opts ...Option) *Codec {
	cfg := codecConfig{logger: noopLogger, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Codec{cfg: cfg}
}

// Encode is equivalent to the package-level Encode, after checking types
// against the codec's configured maximum nesting depth.
func (c *Codec) Encode(types []string, values []Value) ([]byte, error) {
	if err := checkDepth(types, c.cfg.maxDepth); err != nil {
		return nil, err
	}
	return Encode(types, values)
}

// Decode is equivalent to the package-level Decode, after checking types
// against the codec's configured maximum nesting depth.
func (c *Codec) Decode(types []string, data []byte) ([]Value, error) {
	if err := checkDepth(types, c.cfg.maxDepth); err != nil {
		return nil, err
	}
	return Decode(types, data)
}

// EncodePacked is equivalent to the package-level EncodePacked, but routes
// its ambiguity warnings through the codec's configured Logger.
func (c *Codec) EncodePacked(types []string, values []Value) ([]byte, error) {
	if err := checkDepth(types, c.cfg.maxDepth); err != nil {
		return nil, err
	}
	return encodePacked(types, values, c.cfg.logger)
}

// EncodeWithSignature is equivalent to the package-level
// EncodeWithSignature, after checking the signature's parameter types
// against the codec's configured maximum nesting depth.
func (c *Codec) EncodeWithSignature(signature string, values []Value) ([]byte, error) {
	types, err := GetParamTypes(signature)
	if err != nil {
		return nil, err
	}
	if err := checkDepth(types, c.cfg.maxDepth); err != nil {
		return nil, err
	}
	return EncodeWithSelector(Selector(signature), types, values)
}

// DecodeWithSignature is equivalent to the package-level
// DecodeWithSignature, after checking the signature's parameter types
// against the codec's configured maximum nesting depth.
func (c *Codec) DecodeWithSignature(signature string, data []byte) ([]Value, error) {
	types, err := GetParamTypes(signature)
	if err != nil {
		return nil, err
	}
	if err := checkDepth(types, c.cfg.maxDepth); err != nil {
		return nil, err
	}
	return DecodeWithSignature(signature, data)
}

// checkDepth rejects any type string nested more deeply than maxDepth
// tuple/array levels, before the recursive encoder/decoder ever touches
// attacker-controlled or malformed type strings.
func checkDepth(types []string, maxDepth int) error {
	for _, t := range types {
		if typeDepth(t) > maxDepth {
			return &UnsupportedTypeError{Type: t}
		}
	}
	return nil
}

func typeDepth(t string) int {
	if isArr, _, err := IsArray(t); err == nil && isArr {
		elemType := t[:strings.LastIndex(t, "[")]
		return 1 + typeDepth(elemType)
	}
	if isTup, components, err := IsTuple(t); err == nil && isTup {
		max := 0
		for _, c := range components {
			if d := typeDepth(c); d > max {
				max = d
			}
		}
		return 1 + max
	}
	return 0
}
