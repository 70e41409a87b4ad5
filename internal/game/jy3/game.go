// If you are AI: This file implements save-game operations on decoded JY3 documents:
// skills, meridians, faction, items and attributes.
// Nested tables use decimal string keys ("14"), matching how the game writes them.

package jy3

import (
	"errors"
	"fmt"
	"strconv"

	"soledit/internal/core/protocol/amf0"
)

// Top-level keys of a JY3 save.
const (
	KeyExperience = "v" // skill id -> experience
	KeyMeridians  = "n" // meridian -> 0/1
	KeyCharacter  = "m" // attribute id -> value
	KeyItemSlots  = "f" // slot -> item id
	KeyItemCounts = "g" // item id -> count
)

// SlotKeys are the top-level objects holding learned skill ids.
var SlotKeys = []string{"o", "p", "q", "r", "s", "t", "u", "v_1", "w"}

// MaxExperience is the experience of a fully trained skill.
const MaxExperience = 999

var (
	// ErrUnknownSkill means the id is not in the skill table.
	ErrUnknownSkill = errors.New("jy3: unknown skill")
	// ErrUnknownFaction means the faction number is not one of the four joinable sects.
	ErrUnknownFaction = errors.New("jy3: unknown faction")
	// ErrBadCount means an item count is not positive.
	ErrBadCount = errors.New("jy3: item count must be positive")
	// ErrMissingTable means a required top-level object is absent.
	ErrMissingTable = errors.New("jy3: missing table")
)

// Skill is a learned skill with its experience.
type Skill struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Experience float64 `json:"experience"`
	Slot       string  `json:"slot"`
}

// Skills lists learned skills in slot order. Each id is reported once.
func Skills(doc *amf0.Document) []Skill {
	exp := table(doc, KeyExperience)
	slots := make(map[string]bool, len(SlotKeys))
	for _, k := range SlotKeys {
		slots[k] = true
	}

	var out []Skill
	seen := make(map[int]bool)
	doc.Range(func(key string, v amf0.Value) bool {
		if !slots[key] {
			return true
		}
		slot, ok := v.AsObject()
		if !ok {
			return true
		}
		slot.Range(func(_ string, sv amf0.Value) bool {
			n, ok := sv.AsInt()
			id := int(n)
			if !ok || n <= 0 || !IsSkill(id) || seen[id] {
				return true
			}
			seen[id] = true
			out = append(out, Skill{
				ID:         id,
				Name:       SkillName(id),
				Category:   SkillCategory(id),
				Experience: number(exp, strconv.Itoa(id)),
				Slot:       key,
			})
			return true
		})
		return true
	})
	return out
}

// SetSkillExperience writes the experience of one skill, creating the table if needed.
func SetSkillExperience(doc *amf0.Document, id int, exp float64) error {
	if !IsSkill(id) {
		return fmt.Errorf("%w: %d", ErrUnknownSkill, id)
	}
	ensureTable(doc, KeyExperience).Set(strconv.Itoa(id), amf0.Number(exp))
	return nil
}

// MaxAllSkills raises every learned skill below limit to limit.
// Skills whose experience is not an integer are left alone. Returns the raised skills.
func MaxAllSkills(doc *amf0.Document, limit int) []Skill {
	exp := table(doc, KeyExperience)
	var raised []Skill
	for _, s := range Skills(doc) {
		if v, ok := exp.Get(strconv.Itoa(s.ID)); ok {
			if _, isInt := v.AsInt(); !isInt {
				continue
			}
		}
		if s.Experience >= float64(limit) {
			continue
		}
		_ = SetSkillExperience(doc, s.ID, float64(limit))
		s.Experience = float64(limit)
		raised = append(raised, s)
	}
	return raised
}

// EnableAllMeridians sets every meridian to 1 and returns how many there are.
func EnableAllMeridians(doc *amf0.Document) (int, error) {
	n := table(doc, KeyMeridians)
	if n == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingTable, KeyMeridians)
	}
	for _, k := range n.Keys() {
		n.Set(k, amf0.Number(1))
	}
	return n.Len(), nil
}

// Faction describes the strings written when joining a sect.
type Faction struct {
	ID    int
	Stage string // m.139
	Sect  string // m.140
	Ethos string // m.10, empty when the sect leaves it unchanged
}

// Factions are the joinable sects, numbered from 1.
var Factions = []Faction{
	{ID: 1, Stage: "初入武当", Sect: "武当派", Ethos: "侠义"},
	{ID: 2, Stage: "初入华山", Sect: "华山派", Ethos: "儒风"},
	{ID: 3, Stage: "初入全真", Sect: "全真教"},
	{ID: 4, Stage: "初入少林", Sect: "少林派", Ethos: "佛法"},
}

// ChangeFaction moves the character to faction id.
func ChangeFaction(doc *amf0.Document, id int) (Faction, error) {
	if id < 1 || id > len(Factions) {
		return Faction{}, fmt.Errorf("%w: %d", ErrUnknownFaction, id)
	}
	f := Factions[id-1]
	m := ensureTable(doc, KeyCharacter)
	m.Set("139", amf0.String(f.Stage))
	m.Set("140", amf0.String(f.Sect))
	if f.Ethos != "" {
		m.Set("10", amf0.String(f.Ethos))
	}
	return f, nil
}

// Item is an inventory entry.
type Item struct {
	Slot  string  `json:"slot"`
	ID    int64   `json:"id"`
	Count float64 `json:"count"`
}

// Items lists inventory slots in order. Slots with negative counts are skipped.
func Items(doc *amf0.Document) []Item {
	slots := table(doc, KeyItemSlots)
	counts := table(doc, KeyItemCounts)

	var out []Item
	slots.Range(func(slot string, v amf0.Value) bool {
		id, ok := itemID(v)
		if !ok {
			return true
		}
		count := number(counts, strconv.FormatInt(id, 10))
		if count >= 0 {
			out = append(out, Item{Slot: slot, ID: id, Count: count})
		}
		return true
	})
	return out
}

// AddItem adds count of item id. An item already held gets its count raised;
// otherwise it takes the next slot.
func AddItem(doc *amf0.Document, id int64, count int64) (Item, error) {
	if count <= 0 {
		return Item{}, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	slots := ensureTable(doc, KeyItemSlots)
	counts := ensureTable(doc, KeyItemCounts)
	key := strconv.FormatInt(id, 10)

	if have := number(counts, key); have > 0 {
		counts.Set(key, amf0.Number(have+float64(count)))
		return Item{Slot: slotOf(slots, id), ID: id, Count: have + float64(count)}, nil
	}

	slot := strconv.Itoa(slots.Len())
	slots.Set(slot, amf0.Number(float64(id)))
	counts.Set(key, amf0.Number(float64(count)))
	return Item{Slot: slot, ID: id, Count: float64(count)}, nil
}

// AttributeValue is an attribute with its stored value.
type AttributeValue struct {
	Attribute
	Value amf0.Value
}

// ReadAttributes returns every known attribute with its value in m.
// Missing entries carry an undefined value.
func ReadAttributes(doc *amf0.Document) []AttributeValue {
	m := table(doc, KeyCharacter)
	out := make([]AttributeValue, 0, len(Attributes))
	for _, a := range Attributes {
		v, _ := m.Get(strconv.Itoa(a.ID))
		out = append(out, AttributeValue{Attribute: a, Value: v})
	}
	return out
}

func table(doc *amf0.Document, key string) *amf0.Document {
	v, ok := doc.Get(key)
	if !ok {
		return nil
	}
	t, _ := v.AsObject()
	return t
}

func ensureTable(doc *amf0.Document, key string) *amf0.Document {
	if t := table(doc, key); t != nil {
		return t
	}
	t := amf0.NewDocument()
	doc.Set(key, amf0.Object(t))
	return t
}

func number(t *amf0.Document, key string) float64 {
	v, _ := t.Get(key)
	n, _ := v.AsNumber()
	return n
}

// itemID accepts numbers and numeric strings.
func itemID(v amf0.Value) (int64, bool) {
	if id, ok := v.AsInt(); ok {
		return id, true
	}
	if s, ok := v.AsString(); ok {
		id, err := strconv.ParseInt(s, 10, 64)
		return id, err == nil
	}
	return 0, false
}

func slotOf(slots *amf0.Document, id int64) string {
	var found string
	slots.Range(func(slot string, v amf0.Value) bool {
		if got, ok := itemID(v); ok && got == id {
			found = slot
			return false
		}
		return true
	})
	return found
}
