package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/tmux-pie-menu/internal/format/table"
	"github.com/atomicstack/tmux-pie-menu/internal/menu"
)

// ListMenus writes the ring catalog: every name -menu accepts, with its
// glyph, the number of entries it links to statically, and whether it stays
// open after a commit.
func ListMenus(w io.Writer) error {
	return writeCatalog(w, menu.BuildRegistry())
}

func writeCatalog(w io.Writer, reg *menu.Registry) error {
	rows := [][]string{{"MENU", "GLYPH", "CHILDREN", "STICKY"}}
	for _, id := range reg.Menus() {
		node, _ := reg.Find(id)
		glyph := node.Glyph
		if glyph == "" {
			glyph = "-"
		}
		sticky := ""
		if node.Sticky {
			sticky = "yes"
		}
		rows = append(rows, []string{id, glyph, strconv.Itoa(len(node.Children)), sticky})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
	}
	return nil
}
