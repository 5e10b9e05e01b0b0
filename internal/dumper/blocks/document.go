package blocks

import (
	"bytes"
	"encoding/json"
)

// Document is the content of blocks.json. Field order is part of the format:
// shapes precede the blocks that reference them.
type Document struct {
	BlockEntityTypes []BlockEntityTypeRecord `json:"block_entity_types"`
	Shapes           []ShapeRecord           `json:"shapes"`
	Blocks           []BlockRecord           `json:"blocks"`
}

type BlockEntityTypeRecord struct {
	ID    int    `json:"id"`
	Ident string `json:"ident"`
	Name  string `json:"name"`
}

type ShapeRecord struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MinZ float64 `json:"min_z"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
	MaxZ float64 `json:"max_z"`
}

type BlockRecord struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	TranslationKey string           `json:"translation_key"`
	ItemID         int              `json:"item_id"`
	Properties     []PropertyRecord `json:"properties"`
	DefaultStateID *int             `json:"default_state_id,omitempty"`
	States         []StateRecord    `json:"states"`
}

type PropertyRecord struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Values []any  `json:"values"`
}

type StateRecord struct {
	ID              int             `json:"id"`
	Luminance       int             `json:"luminance"`
	Opaque          bool            `json:"opaque"`
	Replaceable     bool            `json:"replaceable"`
	BlocksMotion    bool            `json:"blocks_motion"`
	IsAir           bool            `json:"is_air"`
	Properties      StateProperties `json:"properties"`
	CollisionShapes []int           `json:"collision_shapes"`
	BlockEntityType *int            `json:"block_entity_type,omitempty"`
}

// StateProperties is a JSON object whose keys keep property declaration
// order instead of the sorted order of a Go map.
type StateProperties []StateProperty

type StateProperty struct {
	Name  string
	Value any
}

func (sp StateProperties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encode appends a newline after every value.
	put := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	buf.WriteByte('{')
	for i, p := range sp {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := put(p.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := put(p.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value of the named property.
func (sp StateProperties) Get(name string) (any, bool) {
	for _, p := range sp {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}
