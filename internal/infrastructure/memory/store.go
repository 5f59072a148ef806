package memory

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kashoe/chessclub-api/internal/infrastructure/docstore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Store is an in-process docstore.Store. Documents are kept encoded, so reads always
// hand out fresh copies and the ISO-8601 codec is exercised exactly as with MongoDB.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

type collection struct {
	docs   []bson.Raw
	unique []string
}

func NewStore() *Store {
	return &Store{collections: make(map[string]*collection)}
}

func (s *Store) coll(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{}
		s.collections[name] = c
	}
	return c
}

func (s *Store) Insert(ctx context.Context, name string, doc bson.Raw) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("memory store: invalid document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.coll(name)
	for _, field := range c.unique {
		v, err := doc.LookupErr(field)
		if err != nil {
			continue
		}
		for _, existing := range c.docs {
			if ev, err := existing.LookupErr(field); err == nil && ev.Equal(v) {
				return fmt.Errorf("%w: %s.%s", docstore.ErrDuplicate, name, field)
			}
		}
	}
	c.docs = append(c.docs, clone(doc))
	return nil
}

func (s *Store) FindOne(ctx context.Context, name string, filter docstore.Filter) (bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	for _, doc := range c.docs {
		if matches(doc, want) {
			return clone(doc), nil
		}
	}
	return nil, docstore.ErrNotFound
}

func (s *Store) Find(ctx context.Context, name string, filter docstore.Filter, opts docstore.FindOptions) ([]bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	var out []bson.Raw
	if c, ok := s.collections[name]; ok {
		for _, doc := range c.docs {
			if matches(doc, want) {
				out = append(out, clone(doc))
			}
		}
	}
	s.mu.RUnlock()

	if len(opts.Sort) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, srt := range opts.Sort {
				cmp := compare(out[i].Lookup(srt.Field), out[j].Lookup(srt.Field))
				if cmp == 0 {
					continue
				}
				if srt.Descending {
					return cmp > 0
				}
				return cmp < 0
			}
			return false
		})
	}
	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *Store) UpdateFields(ctx context.Context, name string, filter docstore.Filter, fields docstore.Fields) (docstore.UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return docstore.UpdateResult{}, err
	}
	want, err := encodeFilter(filter)
	if err != nil {
		return docstore.UpdateResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return docstore.UpdateResult{}, nil
	}
	for i, doc := range c.docs {
		if !matches(doc, want) {
			continue
		}
		updated, err := setFields(doc, fields)
		if err != nil {
			return docstore.UpdateResult{}, err
		}
		res := docstore.UpdateResult{Matched: 1}
		if !bytes.Equal(updated, doc) {
			c.docs[i] = updated
			res.Modified = 1
		}
		return res, nil
	}
	return docstore.UpdateResult{}, nil
}

func (s *Store) EnsureUnique(ctx context.Context, name string, field string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.coll(name)
	for _, f := range c.unique {
		if f == field {
			return nil
		}
	}
	c.unique = append(c.unique, field)
	return nil
}

func (s *Store) Close(context.Context) error { return nil }

// Len reports how many documents a collection holds.
func (s *Store) Len(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.collections[name]; ok {
		return len(c.docs)
	}
	return 0
}

func encodeFilter(filter docstore.Filter) (map[string]bson.RawValue, error) {
	out := make(map[string]bson.RawValue, len(filter))
	for k, v := range filter {
		rv, err := docstore.MarshalValue(v)
		if err != nil {
			return nil, fmt.Errorf("memory store: filter %s: %w", k, err)
		}
		out[k] = rv
	}
	return out, nil
}

func matches(doc bson.Raw, want map[string]bson.RawValue) bool {
	for k, v := range want {
		got, err := doc.LookupErr(k)
		if err != nil || !got.Equal(v) {
			return false
		}
	}
	return true
}

// setFields rewrites doc with fields applied, keeping existing key order and appending
// new keys in sorted order.
func setFields(doc bson.Raw, fields docstore.Fields) (bson.Raw, error) {
	var d bson.D
	if err := docstore.Unmarshal(doc, &d); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		replaced := false
		for i := range d {
			if d[i].Key == k {
				d[i].Value = fields[k]
				replaced = true
				break
			}
		}
		if !replaced {
			d = append(d, bson.E{Key: k, Value: fields[k]})
		}
	}
	return docstore.Marshal(d)
}

// compare orders values the way a document database sorts mixed scalars:
// missing and null first, then numbers, then strings, then booleans.
func compare(a, b bson.RawValue) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case rankNumber:
		fa, fb := number(a), number(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case rankString:
		return strings.Compare(a.StringValue(), b.StringValue())
	case rankBool:
		ba, bb := a.Boolean(), b.Boolean()
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		}
		return 1
	case rankDateTime:
		da, db := a.DateTime(), b.DateTime()
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	}
	return 0
}

const (
	rankNull = iota
	rankNumber
	rankString
	rankBool
	rankDateTime
	rankOther
)

func rank(v bson.RawValue) int {
	switch v.Type {
	case 0, bsontype.Null, bsontype.Undefined:
		return rankNull
	case bsontype.Int32, bsontype.Int64, bsontype.Double:
		return rankNumber
	case bsontype.String:
		return rankString
	case bsontype.Boolean:
		return rankBool
	case bsontype.DateTime:
		return rankDateTime
	}
	return rankOther
}

func number(v bson.RawValue) float64 {
	switch v.Type {
	case bsontype.Int32:
		return float64(v.Int32())
	case bsontype.Int64:
		return float64(v.Int64())
	}
	return v.Double()
}

func clone(doc bson.Raw) bson.Raw {
	return append(bson.Raw(nil), doc...)
}
