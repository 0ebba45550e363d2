package dict

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/arloliu/bufdict/errs"
)

// Dict is an ordered, append-only mapping from string keys to scalar or
// multi-dimensional values, with every value stored in a contiguous span of
// one shared rank-1 buffer.
//
// Note: Dict is NOT safe for concurrent use.
type Dict[T any] struct {
	keys  []string
	descs map[string]Descriptor
	buf   []T
}

// Pair is a key/value pair for order-preserving construction.
type Pair[T any] struct {
	Key   string
	Value Array[T]
}

// New creates an empty dictionary.
func New[T any]() *Dict[T] {
	return &Dict[T]{
		descs: make(map[string]Descriptor),
	}
}

// FromMap builds a dictionary from an unordered map. Keys are inserted in
// their natural (byte-wise) sorted order so construction is deterministic.
func FromMap[T any](entries map[string]Array[T]) (*Dict[T], error) {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	d := New[T]()
	for _, key := range keys {
		if err := d.Add(key, entries[key]); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// FromPairs builds a dictionary from an ordered sequence of key/value pairs,
// preserving the given order. Repeated keys fail with ErrDuplicateKey.
func FromPairs[T any](pairs []Pair[T]) (*Dict[T], error) {
	d := New[T]()
	for _, p := range pairs {
		if err := d.Add(p.Key, p.Value); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// From builds a dictionary from any of the supported construction forms:
//
//   - nil: empty dictionary
//   - map[string]Array[T] or map[string]T: keys sorted before insertion
//   - []Pair[T]: insertion order preserved
//   - *Dict[T]: structural clone (registry and buffer copied)
//
// Anything else fails with ErrInvalidArguments.
func From[T any](src any) (*Dict[T], error) {
	switch v := src.(type) {
	case nil:
		return New[T](), nil
	case map[string]Array[T]:
		return FromMap(v)
	case map[string]T:
		entries := make(map[string]Array[T], len(v))
		for key, val := range v {
			entries[key] = Scalar(val)
		}

		return FromMap(entries)
	case []Pair[T]:
		return FromPairs(v)
	case *Dict[T]:
		return Clone(v), nil
	default:
		return nil, fmt.Errorf("%w: cannot construct a dictionary from %T", errs.ErrInvalidArguments, src)
	}
}

// Clone returns a structural copy of other: the registry and the buffer are
// both copied, so the clone shares no storage with the source.
func Clone[T any](other *Dict[T]) *Dict[T] {
	d := &Dict[T]{
		keys:  slices.Clone(other.keys),
		descs: make(map[string]Descriptor, len(other.descs)),
		buf:   slices.Clone(other.buf),
	}
	for key, desc := range other.descs {
		d.descs[key] = desc
	}

	return d
}

// WithBuffer returns a dictionary that reuses other's layout verbatim but
// reads and writes through buf. The buffer is aliased, not copied: element
// writes through the result are immediately visible in buf and in any other
// dictionary sharing it, and vice versa.
//
// Fails with ErrSizeMismatch unless len(buf) equals other.Size().
func WithBuffer[T any](other *Dict[T], buf []T) (*Dict[T], error) {
	if len(buf) != len(other.buf) {
		return nil, fmt.Errorf("%w: buffer has %d elements, layout needs %d",
			errs.ErrSizeMismatch, len(buf), len(other.buf))
	}

	d := &Dict[T]{
		keys:  slices.Clone(other.keys),
		descs: make(map[string]Descriptor, len(other.descs)),
		buf:   buf,
	}
	for key, desc := range other.descs {
		d.descs[key] = desc
	}

	return d, nil
}

// FromParts reassembles a dictionary from its persisted pieces: insertion-
// ordered keys, matching descriptors, and the backing buffer (adopted, not
// copied).
//
// Fails with ErrInvalidArguments unless the descriptors tile the buffer
// contiguously in key order with no duplicates.
func FromParts[T any](keys []string, descs []Descriptor, buf []T) (*Dict[T], error) {
	if len(keys) != len(descs) {
		return nil, fmt.Errorf("%w: %d keys but %d descriptors", errs.ErrInvalidArguments, len(keys), len(descs))
	}

	d := &Dict[T]{
		keys:  slices.Clone(keys),
		descs: make(map[string]Descriptor, len(keys)),
		buf:   buf,
	}

	offset := 0
	for i, key := range keys {
		if _, exists := d.descs[key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", errs.ErrInvalidArguments, key)
		}

		desc := descs[i]
		if desc.Start() != offset {
			return nil, fmt.Errorf("%w: key %q starts at %d, expected %d",
				errs.ErrInvalidArguments, key, desc.Start(), offset)
		}

		d.descs[key] = desc
		offset = desc.End()
	}

	if offset != len(buf) {
		return nil, fmt.Errorf("%w: descriptors cover %d elements, buffer has %d",
			errs.ErrInvalidArguments, offset, len(buf))
	}

	return d, nil
}

// Has reports whether key is present.
func (d *Dict[T]) Has(key string) bool {
	_, ok := d.descs[key]
	return ok
}

// Len returns the number of keys.
func (d *Dict[T]) Len() int {
	return len(d.keys)
}

// Size returns the total number of buffer elements.
func (d *Dict[T]) Size() int {
	return len(d.buf)
}

// Keys returns an iterator over keys in insertion order.
// The iterator is restartable: each range over it starts from the first key.
func (d *Dict[T]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, key := range d.keys {
			if !yield(key) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs in insertion order.
// Values are live views, as with Get.
func (d *Dict[T]) All() iter.Seq2[string, Array[T]] {
	return func(yield func(string, Array[T]) bool) {
		for _, key := range d.keys {
			if !yield(key, d.view(d.descs[key])) {
				return
			}
		}
	}
}

// KeyAt returns the key at insertion position i.
func (d *Dict[T]) KeyAt(i int) (string, error) {
	if i < 0 || i >= len(d.keys) {
		return "", fmt.Errorf("%w: index %d out of range [0, %d)", errs.ErrInvalidArguments, i, len(d.keys))
	}

	return d.keys[i], nil
}

// DescriptorOf returns the descriptor recorded for key.
func (d *Dict[T]) DescriptorOf(key string) (Descriptor, error) {
	desc, ok := d.descs[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", errs.ErrUnknownKey, key)
	}

	return desc, nil
}

// IsScalar reports whether key holds a scalar (was added without a shape).
func (d *Dict[T]) IsScalar(key string) (bool, error) {
	desc, ok := d.descs[key]
	if !ok {
		return false, fmt.Errorf("%w: %q", errs.ErrUnknownKey, key)
	}

	return desc.IsScalar(), nil
}

// Add inserts a new key at the end of the insertion order, appending its
// elements to the buffer. This is the single growth primitive: no other
// operation changes the buffer length.
//
// Fails with ErrDuplicateKey if key exists (state unchanged) and
// ErrInvalidShape for empty values.
func (d *Dict[T]) Add(key string, value Array[T]) error {
	if _, exists := d.descs[key]; exists {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
	}

	if value.Size() == 0 {
		return fmt.Errorf("%w: empty value for key %q", errs.ErrInvalidShape, key)
	}

	var shape []int
	if !value.IsScalar() {
		shape = value.Shape()
	}

	d.descs[key] = NewDescriptor(len(d.buf), shape)
	d.keys = append(d.keys, key)
	d.buf = append(d.buf, value.Flat()...)

	return nil
}

// AddScalar inserts a new scalar key.
func (d *Dict[T]) AddScalar(key string, value T) error {
	return d.Add(key, Scalar(value))
}

// Set writes value into an existing key's span, or inserts it as a new key.
//
// For existing keys the write is validated first and the buffer is only
// touched on success: scalar slots accept any value with exactly one
// element, array slots require the value's row-major element count to equal
// the recorded span size. A mismatch fails with ErrShapeMismatch and leaves
// the buffer unmodified. Writes never change the buffer length.
//
// Callers wanting strict "new key only" semantics use Add.
func (d *Dict[T]) Set(key string, value Array[T]) error {
	desc, exists := d.descs[key]
	if !exists {
		return d.Add(key, value)
	}

	if value.Size() != desc.Size() {
		if desc.IsScalar() {
			return fmt.Errorf("%w: key %q holds a scalar, value has %d elements",
				errs.ErrShapeMismatch, key, value.Size())
		}

		return fmt.Errorf("%w: key %q spans %d elements, value has %d",
			errs.ErrShapeMismatch, key, desc.Size(), value.Size())
	}

	copy(d.buf[desc.Start():desc.End()], value.Flat())

	return nil
}

// SetScalar writes a single value to an existing scalar key, or inserts it.
func (d *Dict[T]) SetScalar(key string, value T) error {
	return d.Set(key, Scalar(value))
}

// Get returns the value stored at key as a live view: the array's storage is
// the dictionary's buffer span itself, reshaped row-major to the recorded
// shape, so element writes through it are visible to every alias. Use
// Get(key).Clone() for an independent copy.
func (d *Dict[T]) Get(key string) (Array[T], error) {
	desc, ok := d.descs[key]
	if !ok {
		return Array[T]{}, fmt.Errorf("%w: %q", errs.ErrUnknownKey, key)
	}

	return d.view(desc), nil
}

// GetScalar returns the single element stored at a scalar key, unwrapped.
//
// Fails with ErrShapeMismatch if the key holds an array.
func (d *Dict[T]) GetScalar(key string) (T, error) {
	var zero T

	desc, ok := d.descs[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", errs.ErrUnknownKey, key)
	}

	if !desc.IsScalar() {
		return zero, fmt.Errorf("%w: key %q holds an array of shape %v", errs.ErrShapeMismatch, key, desc.Shape())
	}

	return d.buf[desc.Start()], nil
}

// Delete always fails with ErrUnsupportedOperation, whether or not the key
// exists. Keys are never removed: existing descriptors (and any externally
// held buffer slices) stay valid for the dictionary's lifetime.
func (d *Dict[T]) Delete(key string) error {
	return fmt.Errorf("%w: cannot delete key %q, keys are never removed", errs.ErrUnsupportedOperation, key)
}

// AddAll applies Set for each pair in order: existing keys are overwritten
// in place, new keys are appended.
func (d *Dict[T]) AddAll(pairs []Pair[T]) error {
	for _, p := range pairs {
		if err := d.Set(p.Key, p.Value); err != nil {
			return err
		}
	}

	return nil
}

// Merge applies Set for each key of other in other's insertion order.
func (d *Dict[T]) Merge(other *Dict[T]) error {
	for key, value := range other.All() {
		if err := d.Set(key, value); err != nil {
			return err
		}
	}

	return nil
}

// Flat returns the live backing buffer. Element writes through it are
// immediately visible to all key-based reads and to every dictionary
// aliasing the same buffer.
func (d *Dict[T]) Flat() []T {
	return d.buf
}

// Flatten returns an independent copy of the buffer.
func (d *Dict[T]) Flatten() []T {
	return slices.Clone(d.buf)
}

// ReplaceFlat swaps the backing buffer wholesale, adopting (aliasing) buf.
// Every existing descriptor is reinterpreted against the new buffer, so all
// keys now read and write through the new storage at the same offsets.
//
// Fails with ErrSizeMismatch unless len(buf) equals Size().
func (d *Dict[T]) ReplaceFlat(buf []T) error {
	if len(buf) != len(d.buf) {
		return fmt.Errorf("%w: buffer has %d elements, dictionary holds %d",
			errs.ErrSizeMismatch, len(buf), len(d.buf))
	}

	d.buf = buf

	return nil
}

// SetFlat is ReplaceFlat for Array values: the value must be rank 1
// (ErrRankMismatch otherwise) and the same length (ErrSizeMismatch).
// The value's storage is adopted, not copied.
func (d *Dict[T]) SetFlat(value Array[T]) error {
	if value.Rank() != 1 {
		return fmt.Errorf("%w: flat buffer must be rank 1, got rank %d", errs.ErrRankMismatch, value.Rank())
	}

	return d.ReplaceFlat(value.Flat())
}

func (d *Dict[T]) view(desc Descriptor) Array[T] {
	// Full slice expression so appends through the view cannot clobber the
	// next key's span.
	return Array[T]{
		data:  d.buf[desc.Start():desc.End():desc.End()],
		shape: desc.Shape(),
	}
}
