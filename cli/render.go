package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/storefront/cart"
	"github.com/grovetools/storefront/catalog"
	"github.com/grovetools/storefront/favorites"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RenderCart writes the cart as a table followed by the totals line.
func RenderCart(w io.Writer, s cart.State) {
	t := DefaultTheme

	drawer := t.Muted.Render("closed")
	if s.IsOpen {
		drawer = t.Info.Render("open")
	}
	fmt.Fprintf(w, "%s %s\n", t.Header.Render("Cart"), t.Muted.Render("(drawer ")+drawer+t.Muted.Render(")"))

	if s.IsEmpty() {
		fmt.Fprintln(w, t.Muted.Render("  Your cart is empty"))
		return
	}

	rows := make([][]string, 0, len(s.Items))
	for _, li := range s.Items {
		rows = append(rows, []string{
			string(li.Kind()),
			strconv.Itoa(li.ID()),
			nameOr(li.Name(), "-"),
			strconv.Itoa(li.Quantity),
			catalog.FormatPrice(li.UnitPrice(), li.Currency()),
			catalog.FormatPrice(li.Subtotal(), li.Currency()),
		})
	}
	renderTable(w, []string{"KIND", "ID", "NAME", "QTY", "UNIT", "SUBTOTAL"}, rows, map[int]bool{3: true, 4: true, 5: true})

	fmt.Fprintf(w, "%s %s\n", t.Bold.Render("Total:"), t.Price.Render(s.Summary()))
}

var favoriteHeadings = map[favorites.Type]string{
	favorites.TypeEvent: "EVENTS",
	favorites.TypeDish:  "DISHES",
	favorites.TypeMenu:  "MENUS",
}

// RenderFavorites writes favorites grouped by type. An empty filter shows all types.
func RenderFavorites(w io.Writer, s favorites.State, filter favorites.Type) {
	t := DefaultTheme
	fmt.Fprintf(w, "%s %s\n", t.Header.Render("Favorites"), t.Muted.Render(fmt.Sprintf("(%d)", s.TotalItems)))

	shown := 0
	for _, typ := range favorites.Types {
		if filter != "" && typ != filter {
			continue
		}
		items := s.GetByType(typ)
		if len(items) == 0 {
			continue
		}
		shown += len(items)

		fmt.Fprintf(w, "\n %s\n", t.Info.Render(favoriteHeadings[typ]))
		rows := make([][]string, 0, len(items))
		for _, f := range items {
			rows = append(rows, []string{
				strconv.Itoa(f.ID),
				nameOr(f.Title(), "-"),
				f.AddedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		renderTable(w, []string{"ID", "TITLE", "ADDED"}, rows, nil)
	}

	if shown == 0 {
		fmt.Fprintln(w, t.Muted.Render("  No favorites yet"))
	}
}

// renderTable prints a left-aligned table; columns in rightAlign are
// right-aligned. Widths are measured with lipgloss so styled text lines up.
func renderTable(w io.Writer, headers []string, rows [][]string, rightAlign map[int]bool) {
	t := DefaultTheme
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := lipgloss.Width(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			align := lipgloss.Left
			if rightAlign[i] {
				align = lipgloss.Right
			}
			parts[i] = style.Width(widths[i]).Align(align).Render(cell)
		}
		return "  " + strings.Join(parts, "  ")
	}

	fmt.Fprintln(w, line(headers, t.Bold))
	total := 0
	for _, wd := range widths {
		total += wd
	}
	total += 2 * (len(widths) - 1)
	fmt.Fprintln(w, "  "+t.Border.Render(strings.Repeat("─", total)))
	for _, row := range rows {
		fmt.Fprintln(w, line(row, lipgloss.NewStyle()))
	}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
