package buttons

type origin struct{ x, y int }

// Paginate splits an ordered collection into pages. A new page starts whenever a
// button's origin is already taken on the current page.
func Paginate(all []ModuleButton) [][]ModuleButton {
	var pages [][]ModuleButton
	var current []ModuleButton
	taken := make(map[origin]struct{})

	for _, b := range all {
		o := origin{b.X(), b.Y()}
		if _, clash := taken[o]; clash {
			pages = append(pages, current)
			current = nil
			taken = make(map[origin]struct{})
		}
		taken[o] = struct{}{}
		current = append(current, b)
	}
	if len(current) > 0 {
		pages = append(pages, current)
	}
	return pages
}
