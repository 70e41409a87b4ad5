// If you are AI: This file tests JY3 save operations against a small hand-built save.

package jy3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soledit/internal/core/protocol/amf0"
)

func obj(pairs ...any) amf0.Value {
	d := amf0.NewDocument()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i].(string), pairs[i+1].(amf0.Value))
	}
	return amf0.Object(d)
}

func sampleSave() *amf0.Document {
	doc := amf0.NewDocument()
	doc.Set("o", obj("0", amf0.Number(14), "1", amf0.Number(85)))
	doc.Set("p", obj("0", amf0.Number(999), "1", amf0.Number(0)))
	doc.Set("v_1", obj("0", amf0.Number(176), "1", amf0.Number(14)))
	doc.Set("v", obj("14", amf0.Number(120), "85", amf0.Number(999), "176", amf0.String("x")))
	doc.Set("n", obj("a", amf0.Number(0), "b", amf0.Number(0)))
	doc.Set("m", obj("16", amf0.Number(55)))
	doc.Set("f", obj("0", amf0.Number(7), "1", amf0.String("9")))
	doc.Set("g", obj("7", amf0.Number(2), "9", amf0.Number(-1)))
	return doc
}

func TestSkillTables(t *testing.T) {
	assert.Equal(t, "基本刀法", SkillName(14))
	assert.Equal(t, "刀法", SkillCategory(14))
	assert.Equal(t, "身法/轻功", SkillCategory(182))
	assert.Equal(t, UnknownCategory, SkillCategory(1))
	assert.Equal(t, "未知武功(500)", SkillName(500))
	assert.Len(t, SkillsIn("暗器"), 8)
	assert.Nil(t, SkillsIn("no"))

	total := 0
	for _, c := range Categories {
		total += len(SkillsIn(c.Name))
		for _, id := range SkillsIn(c.Name) {
			assert.True(t, IsSkill(id), "id %d", id)
		}
	}
	assert.Equal(t, 181, total)
}

func TestSkills(t *testing.T) {
	skills := Skills(sampleSave())
	require.Len(t, skills, 3)

	assert.Equal(t, Skill{ID: 14, Name: "基本刀法", Category: "刀法", Experience: 120, Slot: "o"}, skills[0])
	assert.Equal(t, 85, skills[1].ID)
	assert.Equal(t, 999.0, skills[1].Experience)
	assert.Equal(t, 176, skills[2].ID)
	assert.Equal(t, "v_1", skills[2].Slot)
	assert.Equal(t, 0.0, skills[2].Experience)
}

func TestSetSkillExperience(t *testing.T) {
	doc := amf0.NewDocument()
	require.ErrorIs(t, SetSkillExperience(doc, 1, 5), ErrUnknownSkill)
	require.NoError(t, SetSkillExperience(doc, 37, 500))

	v, err := GetPath(doc, "v.37")
	require.NoError(t, err)
	n, _ := v.AsNumber()
	assert.Equal(t, 500.0, n)
}

func TestMaxAllSkills(t *testing.T) {
	doc := sampleSave()
	raised := MaxAllSkills(doc, MaxExperience)

	require.Len(t, raised, 1)
	assert.Equal(t, 14, raised[0].ID)
	v, _ := GetPath(doc, "v.14")
	n, _ := v.AsNumber()
	assert.Equal(t, 999.0, n)

	// non-numeric experience is left alone
	v, _ = GetPath(doc, "v.176")
	assert.Equal(t, amf0.KindString, v.Kind())
}

func TestEnableAllMeridians(t *testing.T) {
	doc := sampleSave()
	n, err := EnableAllMeridians(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, k := range []string{"n.a", "n.b"} {
		v, _ := GetPath(doc, k)
		got, _ := v.AsInt()
		assert.Equal(t, int64(1), got)
	}

	_, err = EnableAllMeridians(amf0.NewDocument())
	require.ErrorIs(t, err, ErrMissingTable)
}

func TestChangeFaction(t *testing.T) {
	doc := sampleSave()
	f, err := ChangeFaction(doc, 2)
	require.NoError(t, err)
	assert.Equal(t, "华山派", f.Sect)

	for path, want := range map[string]string{"m.139": "初入华山", "m.140": "华山派", "m.10": "儒风"} {
		v, err := GetPath(doc, path)
		require.NoError(t, err)
		s, _ := v.AsString()
		assert.Equal(t, want, s, path)
	}

	_, err = ChangeFaction(doc, 3)
	require.NoError(t, err)
	v, _ := GetPath(doc, "m.10")
	s, _ := v.AsString()
	assert.Equal(t, "儒风", s, "全真 keeps the previous ethos")

	_, err = ChangeFaction(doc, 5)
	require.ErrorIs(t, err, ErrUnknownFaction)
}

func TestItems(t *testing.T) {
	items := Items(sampleSave())
	assert.Equal(t, []Item{{Slot: "0", ID: 7, Count: 2}}, items)
}

func TestAddItem(t *testing.T) {
	doc := sampleSave()

	it, err := AddItem(doc, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, Item{Slot: "0", ID: 7, Count: 5}, it)

	it, err = AddItem(doc, 42, 1)
	require.NoError(t, err)
	assert.Equal(t, Item{Slot: "2", ID: 42, Count: 1}, it)
	v, _ := GetPath(doc, "f.2")
	id, _ := v.AsInt()
	assert.Equal(t, int64(42), id)

	_, err = AddItem(doc, 42, 0)
	require.ErrorIs(t, err, ErrBadCount)

	fresh := amf0.NewDocument()
	it, err = AddItem(fresh, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "0", it.Slot)
}

func TestReadAttributes(t *testing.T) {
	attrs := ReadAttributes(sampleSave())
	require.Len(t, attrs, 24)
	assert.Equal(t, 14, attrs[0].ID)
	assert.Equal(t, amf0.KindUndefined, attrs[0].Value.Kind())
	assert.Equal(t, "力道", attrs[2].Name)
	n, _ := attrs[2].Value.AsNumber()
	assert.Equal(t, 55.0, n)
}
