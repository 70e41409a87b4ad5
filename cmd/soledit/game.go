// If you are AI: This file implements the subcommands that understand JY3 saves.

package main

import (
	"fmt"
	"io"
	"strconv"

	"soledit/internal/core/protocol/amf0"
	"soledit/internal/game/jy3"
)

func (a *app) skills() error {
	_, f, err := a.open(false)
	if err != nil {
		return err
	}
	writeSkills(a.out, jy3.Skills(f.Body))
	return nil
}

func writeSkills(w io.Writer, skills []jy3.Skill) {
	t := newTable("ID", "NAME", "CATEGORY", "EXP", "SLOT")
	for _, s := range skills {
		t.add(strconv.Itoa(s.ID), s.Name, s.Category, amf0.Number(s.Experience).String(), s.Slot)
	}
	_ = t.write(w)
}

func (a *app) maxSkills(c *maxSkillsCmd) error {
	return a.mutate(func(doc *amf0.Document) error {
		raised := jy3.MaxAllSkills(doc, c.Limit)
		writeSkills(a.out, raised)
		fmt.Fprintf(a.out, "%s skills set to %d\n", okCol(strconv.Itoa(len(raised))), c.Limit)
		return nil
	})
}

func (a *app) meridians() error {
	return a.mutate(func(doc *amf0.Document) error {
		n, err := jy3.EnableAllMeridians(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s meridians opened\n", okCol(strconv.Itoa(n)))
		return nil
	})
}

func (a *app) faction(c *factionCmd) error {
	return a.mutate(func(doc *amf0.Document) error {
		f, err := jy3.ChangeFaction(doc, c.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "joined %s (%s)\n", okCol(f.Sect), f.Stage)
		return nil
	})
}

func (a *app) items() error {
	_, f, err := a.open(false)
	if err != nil {
		return err
	}
	t := newTable("SLOT", "ID", "COUNT")
	for _, it := range jy3.Items(f.Body) {
		t.add(it.Slot, strconv.FormatInt(it.ID, 10), amf0.Number(it.Count).String())
	}
	return t.write(a.out)
}

func (a *app) addItem(c *addItemCmd) error {
	return a.mutate(func(doc *amf0.Document) error {
		it, err := jy3.AddItem(doc, c.ID, c.Count)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "item %d in slot %s, count %s\n", it.ID, keyCol(it.Slot), okCol(amf0.Number(it.Count).String()))
		return nil
	})
}

func (a *app) attrs() error {
	_, f, err := a.open(false)
	if err != nil {
		return err
	}
	t := newTable("ID", "NAME", "VALUE", "CAP")
	for _, av := range jy3.ReadAttributes(f.Body) {
		limit := "-"
		if av.Cap > 0 {
			limit = strconv.Itoa(av.Cap)
		}
		t.add(strconv.Itoa(av.ID), av.Name, av.Value.String(), limit)
	}
	return t.write(a.out)
}
