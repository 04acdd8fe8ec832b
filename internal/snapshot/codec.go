// Package snapshot reads and writes the JSON files the corpus is exchanged
// in: resources.json (mojam -> root -> passage), dataset.json
// (mojam -> root -> words) and spectrum.json (root -> note). Object key order
// is the order of mojams and roots, so it survives a round trip.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/mojam-curator/internal/domain"
)

// DecodeResources parses a resources document, keeping mojams and roots in
// document order. A repeated key keeps its first position and its last value.
func DecodeResources(r io.Reader) ([]domain.Collection, error) {
	dec := json.NewDecoder(r)

	var collections []domain.Collection
	mojamAt := make(map[string]int)

	err := walkObject(dec, func(mojam string) error {
		i, ok := mojamAt[mojam]
		if !ok {
			i = len(collections)
			mojamAt[mojam] = i
			collections = append(collections, domain.Collection{Mojam: mojam})
		}

		rootAt := make(map[string]int, len(collections[i].Passages))
		for j, p := range collections[i].Passages {
			rootAt[p.Root] = j
		}

		return walkObject(dec, func(root string) error {
			var text string
			if err := dec.Decode(&text); err != nil {
				return fmt.Errorf("%s/%s: %w", mojam, root, err)
			}
			p := domain.Passage{Mojam: mojam, Root: root, Text: text, WordCount: domain.CountWords(text)}
			if j, ok := rootAt[root]; ok {
				p.Position = j
				collections[i].Passages[j] = p
				return nil
			}
			p.Position = len(collections[i].Passages)
			rootAt[root] = p.Position
			collections[i].Passages = append(collections[i].Passages, p)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}

	if collections == nil {
		collections = []domain.Collection{}
	}
	return collections, nil
}

// EncodeResources writes collections as an indented resources document.
func EncodeResources(w io.Writer, collections []domain.Collection) error {
	doc := make(object, 0, len(collections))
	for _, c := range collections {
		roots := make(object, 0, len(c.Passages))
		for _, p := range c.Passages {
			roots = append(roots, member{Key: p.Root, Value: p.Text})
		}
		doc = append(doc, member{Key: c.Mojam, Value: roots})
	}
	return encode(w, doc)
}

// DecodeDataset parses a dataset document. A null word list reads as empty.
func DecodeDataset(r io.Reader) (domain.Dataset, error) {
	var d domain.Dataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	if d == nil {
		d = domain.Dataset{}
	}
	for mojam, roots := range d {
		if roots == nil {
			d[mojam] = map[string][]string{}
			continue
		}
		for root, words := range roots {
			if words == nil {
				roots[root] = []string{}
			}
		}
	}
	return d, nil
}

// EncodeDataset writes d as an indented dataset document with sorted keys.
func EncodeDataset(w io.Writer, d domain.Dataset) error {
	if d == nil {
		d = domain.Dataset{}
	}
	return encode(w, d)
}

// DecodeSpectrum parses a spectrum document into notes in document order.
func DecodeSpectrum(r io.Reader) ([]domain.Note, error) {
	dec := json.NewDecoder(r)

	notes := []domain.Note{}
	at := make(map[string]int)

	err := walkObject(dec, func(root string) error {
		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("%s: %w", root, err)
		}
		if i, ok := at[root]; ok {
			notes[i].Text = text
			return nil
		}
		at[root] = len(notes)
		notes = append(notes, domain.Note{Root: root, Text: text})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode spectrum: %w", err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, fmt.Errorf("decode spectrum: %w", err)
	}
	return notes, nil
}

// EncodeSpectrum writes notes as an indented spectrum document.
func EncodeSpectrum(w io.Writer, notes []domain.Note) error {
	doc := make(object, 0, len(notes))
	for _, n := range notes {
		doc = append(doc, member{Key: n.Root, Value: n.Text})
	}
	return encode(w, doc)
}

// ---------------------------------------------------------------------------
// Ordered JSON
// ---------------------------------------------------------------------------

type member struct {
	Key   string
	Value any
}

// object is a JSON object that marshals its members in slice order.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshal encodes v compactly without escaping '<', '>' and '&'.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// walkObject consumes one JSON object, calling fn for each key with the
// decoder positioned at the key's value. fn must consume the value.
func walkObject(dec *json.Decoder, fn func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := fn(key); err != nil {
			return err
		}
	}

	// Closing '}'.
	_, err = dec.Token()
	return err
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("trailing data after document")
	}
	return nil
}
