// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// registry.go — name- and type-indexed converter registry with pluggable
// logging and metrics, plus the Default registry preloaded with every
// built-in converter.

package textconv

import (
	"fmt"
	"math/big"
	"net/netip"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/AndrewDonelson/textconv/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/currency"
	"golang.org/x/text/encoding"
	"golang.org/x/text/language"
)

// Re-export so callers only import this package.
type MetricsRecorder = metrics.MetricsRecorder

// AnyConverter is the non-generic view of a Converter, used by the registry
// when the value type is only known at runtime. Obtain one with Any.
type AnyConverter interface {
	Name() string
	Type() reflect.Type
	ParseAny(s string) (any, error)
	FormatAny(v any) (string, error)
}

type anyAdapter[T any] struct {
	conv Converter[T]
}

// Any wraps a typed converter for registration.
func Any[T any](c Converter[T]) AnyConverter { return anyAdapter[T]{conv: c} }

func (a anyAdapter[T]) Name() string       { return a.conv.Name() }
func (a anyAdapter[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (a anyAdapter[T]) ParseAny(s string) (any, error) { return a.conv.Parse(s) }

func (a anyAdapter[T]) FormatAny(v any) (string, error) {
	tv, ok := v.(T)
	if !ok {
		return "", fmt.Errorf("%w: %q cannot format %T", ErrWrongType, a.conv.Name(), v)
	}
	return a.conv.Format(tv), nil
}

// ────────────────────────────────────────────────────────────────────────────
// Registry
// ────────────────────────────────────────────────────────────────────────────

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger routes registry logs to l.
func WithLogger(l Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// WithMetrics records conversion counts and latency with m.
func WithMetrics(m MetricsRecorder) RegistryOption {
	return func(r *Registry) { r.metrics = m }
}

// Registry resolves converters by name, or by value type when formatting.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]AnyConverter
	byType  map[reflect.Type]AnyConverter
	logger  Logger
	metrics MetricsRecorder
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byName:  make(map[string]AnyConverter),
		byType:  make(map[reflect.Type]AnyConverter),
		logger:  noopLogger{},
		metrics: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds c under its Name. The first converter registered for a given
// value type also becomes that type's formatter for FormatValue.
func (r *Registry) Register(c AnyConverter) error {
	if c == nil {
		return ErrNilConverter
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name := c.Name()
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("%w: %q", ErrConverterDuplicate, name)
	}
	r.byName[name] = c
	if _, claimed := r.byType[c.Type()]; !claimed {
		r.byType[c.Type()] = c
	}
	r.logger.Debug("converter registered", "name", name, "type", c.Type().String())
	return nil
}

// MustRegister panics on registration failure; intended for package-level setup.
func (r *Registry) MustRegister(c AnyConverter) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Lookup returns the converter registered under name.
func (r *Registry) Lookup(name string) (AnyConverter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConverterNotFound, name)
	}
	return c, nil
}

// Names returns every registered converter name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Parse resolves name and parses s with it.
func (r *Registry) Parse(name, s string) (any, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	v, err := c.ParseAny(s)
	r.metrics.RecordLatency(name, "parse", time.Since(start))
	if err != nil {
		r.metrics.RecordParseError(name)
		return nil, err
	}
	r.metrics.RecordParse(name)
	return v, nil
}

// Format resolves name and formats v with it.
func (r *Registry) Format(name string, v any) (string, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	start := time.Now()
	s, err := c.FormatAny(v)
	r.metrics.RecordLatency(name, "format", time.Since(start))
	if err != nil {
		return "", err
	}
	r.metrics.RecordFormat(name)
	return s, nil
}

// FormatValue formats v with the converter that claimed its dynamic type.
// Unclaimed plain values (numbers, booleans, stringers) fall back to
// spf13/cast rendering.
func (r *Registry) FormatValue(v any) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}
	r.mu.RLock()
	c, ok := r.byType[reflect.TypeOf(v)]
	r.mu.RUnlock()
	if ok {
		return r.Format(c.Name(), v)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: no converter claims %T", ErrConverterNotFound, v)
	}
	r.logger.Debug("no converter for type, cast fallback", "type", fmt.Sprintf("%T", v))
	return s, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Default registry
// ────────────────────────────────────────────────────────────────────────────

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry preloaded with every built-in
// converter, created on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		for _, c := range Builtins() {
			defaultReg.MustRegister(c)
		}
	})
	return defaultReg
}

// Builtins returns an AnyConverter for every built-in converter in this
// package. Where several converters share a value type (time.Time, []byte,
// string), registration order decides which one claims the type for
// FormatValue: the first entry wins.
func Builtins() []AnyConverter {
	return []AnyConverter{
		Any[bool](Bool{}),
		Any[int](Int[int]{}),
		Any[int8](Int[int8]{}),
		Any[int16](Int[int16]{}),
		Any[int32](Int[int32]{}),
		Any[int64](Int[int64]{}),
		Any[uint](Uint[uint]{}),
		Any[uint8](Uint[uint8]{}),
		Any[uint16](Uint[uint16]{}),
		Any[uint32](Uint[uint32]{}),
		Any[uint64](Uint[uint64]{}),
		Any[float32](Float[float32]{}),
		Any[float64](Float[float64]{}),
		Any[*big.Int](BigInt{}),
		Any[decimal.Decimal](Decimal{}),
		Any[string](String{}),
		Any[string](Text{}),
		Any[rune](Rune{}),
		Any[*regexp.Regexp](Pattern{}),
		Any[[]byte](Base64{}),
		Any[[]byte](Base64URL{}),
		Any[[]byte](Hex{}),
		Any[uint64](DataSize{}),
		Any[uuid.UUID](UUID{}),
		Any[*url.URL](URL{}),
		Any[string](FormValue{}),
		Any[netip.Addr](Addr{}),
		Any[netip.AddrPort](AddrPort{}),
		Any[string](Path{}),
		Any[time.Time](Instant{}),
		Any[time.Time](Date{}),
		Any[time.Time](TimeOfDay{}),
		Any[time.Time](DateTime{}),
		Any[time.Time](YearMonth{}),
		Any[time.Time](UnixMillis{}),
		Any[time.Duration](Duration{}),
		Any[*time.Location](Location{}),
		Any[time.Month](Month{}),
		Any[time.Weekday](Weekday{}),
		Any[language.Tag](LanguageTag{}),
		Any[currency.Unit](CurrencyUnit{}),
		Any[encoding.Encoding](Charset{}),
	}
}
