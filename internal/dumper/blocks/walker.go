package blocks

import (
	"log/slog"
	"reflect"

	"github.com/OCharnyshevich/datadumper/pkg/catalog"
)

// Walk builds the blocks document for the host catalog. State ids are
// assigned from 0 across the whole catalog and collision boxes are shared
// through one ShapeTable.
func Walk(blocks catalog.BlockRegistry, entities catalog.BlockEntityRegistry, items catalog.ItemRegistry, log *slog.Logger) *Document {
	w := &walker{
		entities: entities.All(),
		items:    items,
		shapes:   NewShapeTable(),
		log:      log,
	}

	doc := &Document{
		BlockEntityTypes: make([]BlockEntityTypeRecord, 0, len(w.entities)),
		Blocks:           make([]BlockRecord, 0),
	}
	for _, b := range blocks.All() {
		doc.Blocks = append(doc.Blocks, w.block(b))
	}

	for _, e := range w.entities {
		doc.BlockEntityTypes = append(doc.BlockEntityTypes, BlockEntityTypeRecord{
			ID:    e.RawID(),
			Ident: e.ID().String(),
			Name:  e.ID().Path,
		})
	}

	doc.Shapes = make([]ShapeRecord, 0, w.shapes.Len())
	for _, box := range w.shapes.Boxes() {
		doc.Shapes = append(doc.Shapes, ShapeRecord{
			MinX: box.MinX, MinY: box.MinY, MinZ: box.MinZ,
			MaxX: box.MaxX, MaxY: box.MaxY, MaxZ: box.MaxZ,
		})
	}
	return doc
}

type walker struct {
	entities []catalog.BlockEntityType
	items    catalog.ItemRegistry
	shapes   *ShapeTable
	nextID   int
	log      *slog.Logger
}

func (w *walker) block(b catalog.Block) BlockRecord {
	rec := BlockRecord{
		ID:             b.RawID(),
		Name:           b.Name().Path,
		TranslationKey: b.TranslationKey(),
		ItemID:         w.items.ItemID(b),
		Properties:     make([]PropertyRecord, 0, len(b.Properties())),
	}

	for _, p := range b.Properties() {
		kind := Classify(p)
		rec.Properties = append(rec.Properties, PropertyRecord{
			Name:   NameOf(p),
			Type:   kind.String(),
			Values: Render(p, kind),
		})
	}

	def := b.DefaultState()
	states := b.States()
	rec.States = make([]StateRecord, 0, len(states))
	for _, s := range states {
		st := w.state(s)
		if sameState(s, def) {
			if rec.DefaultStateID != nil {
				w.log.Warn("block has more than one default state",
					"block", b.Name().String(), "kept", *rec.DefaultStateID, "ignored", st.ID)
			} else {
				id := st.ID
				rec.DefaultStateID = &id
			}
		}
		rec.States = append(rec.States, st)
	}
	if rec.DefaultStateID == nil {
		w.log.Warn("default state not among block states", "block", b.Name().String())
	}
	return rec
}

func (w *walker) state(s catalog.BlockState) StateRecord {
	st := StateRecord{
		ID:           w.nextID,
		Luminance:    s.Luminance(),
		Opaque:       s.Opaque(),
		Replaceable:  s.Replaceable(),
		BlocksMotion: s.BlocksMotion(),
		IsAir:        s.IsAir(),
	}
	w.nextID++

	entries := s.Entries()
	st.Properties = make(StateProperties, 0, len(entries))
	for _, e := range entries {
		st.Properties = append(st.Properties, StateProperty{
			Name:  NameOf(e.Property),
			Value: RenderValue(Classify(e.Property), e.Value),
		})
	}

	boxes := s.CollisionBoxes()
	st.CollisionShapes = make([]int, 0, len(boxes))
	for _, box := range boxes {
		st.CollisionShapes = append(st.CollisionShapes, w.shapes.Intern(box))
	}

	st.BlockEntityType = w.blockEntityFor(s, st.ID)
	return st
}

// blockEntityFor returns the raw id of the first block entity type that
// supports s. Registries are small, so every state scans all of them.
func (w *walker) blockEntityFor(s catalog.BlockState, stateID int) *int {
	var found catalog.BlockEntityType
	for _, e := range w.entities {
		if !e.Supports(s) {
			continue
		}
		if found != nil {
			w.log.Warn("state supported by more than one block entity type",
				"state", stateID, "kept", found.ID().String(), "ignored", e.ID().String())
			continue
		}
		found = e
	}
	if found == nil {
		return nil
	}
	id := found.RawID()
	return &id
}

// sameState compares two states by their property assignments.
func sameState(a, b catalog.BlockState) bool {
	if a == nil || b == nil {
		return false
	}
	ea, eb := a.Entries(), b.Entries()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i].Property.Name() != eb[i].Property.Name() {
			return false
		}
		if !reflect.DeepEqual(ea[i].Value, eb[i].Value) {
			return false
		}
	}
	return true
}
