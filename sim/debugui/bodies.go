package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/planetsim/sim"
)

// BodyInfo is one row of the body browser.
type BodyInfo struct {
	ID      sim.BodyID
	Pos     sim.Vec2
	Speed   float64
	Force   float64
	Samples uint64
	Age     uint64
}

const (
	columnID = iota
	columnPos
	columnSpeed
	columnForce
	columnSamples
)

// BodyBrowser lists the active bodies with paging, filtering and sorting, and
// shows the details of the selected body.
type BodyBrowser struct {
	rows          []BodyInfo
	selected      sim.BodyID
	filterText    string
	perPage       int
	page          int
	sortColumn    int
	sortAscending bool
}

func NewBodyBrowser(perPage int) *BodyBrowser {
	return &BodyBrowser{
		perPage:       perPage,
		sortAscending: true,
	}
}

// Snapshot rebuilds the browser rows from the world's active set.
func (bb *BodyBrowser) Snapshot(world *sim.World) []BodyInfo {
	bb.rows = bb.rows[:0]
	for id, b := range world.Bodies() {
		bb.rows = append(bb.rows, BodyInfo{
			ID:      id,
			Pos:     b.Pos,
			Speed:   b.Speed(),
			Force:   b.Force,
			Samples: b.Samples,
			Age:     world.Tick() - uint64(id.Tick()),
		})
	}
	bb.sortRows()
	return bb.filteredRows()
}

func (bb *BodyBrowser) sortRows() {
	slices.SortStableFunc(bb.rows, func(a, b BodyInfo) int {
		var c int
		switch bb.sortColumn {
		case columnPos:
			c = cmp.Or(cmp.Compare(a.Pos.X, b.Pos.X), cmp.Compare(a.Pos.Y, b.Pos.Y))
		case columnSpeed:
			c = cmp.Compare(a.Speed, b.Speed)
		case columnForce:
			c = cmp.Compare(a.Force, b.Force)
		case columnSamples:
			c = cmp.Compare(a.Samples, b.Samples)
		default:
			c = cmp.Compare(a.ID.Serial(), b.ID.Serial())
		}
		if !bb.sortAscending {
			return -c
		}
		return c
	})
}

func (bb *BodyBrowser) filteredRows() []BodyInfo {
	if bb.filterText == "" {
		return bb.rows
	}

	filter := strings.ToLower(bb.filterText)
	filtered := make([]BodyInfo, 0, len(bb.rows))
	for _, row := range bb.rows {
		if strings.Contains(strings.ToLower(row.ID.String()), filter) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// SetSort selects the sort column and direction for the next snapshot.
func (bb *BodyBrowser) SetSort(column int, ascending bool) {
	bb.sortColumn = column
	bb.sortAscending = ascending
}

// SetFilter keeps only rows whose ID contains text.
func (bb *BodyBrowser) SetFilter(text string) {
	bb.filterText = text
}

func (bb *BodyBrowser) Selected() sim.BodyID {
	return bb.selected
}

func (bb *BodyBrowser) Render(world *sim.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(760, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(310, 260), imgui.CondOnce)
	if !imgui.BeginV("Bodies", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter by id...", &bb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		bb.filterText = ""
	}

	rows := bb.Snapshot(world)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("BodyTable", 5, tableFlags, imgui.NewVec2(0, 150), 0) {
		imgui.TableSetupColumn("Body")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Speed")
		imgui.TableSetupColumn("Force")
		imgui.TableSetupColumn("Samples")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			bb.SetSort(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		start := min(bb.page*bb.perPage, len(rows))
		end := min(start+bb.perPage, len(rows))
		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(row.ID.String(), bb.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				bb.selected = row.ID
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.0f, %.0f", row.Pos.X, row.Pos.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", row.Speed))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", row.Force))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Samples))
		}

		imgui.EndTable()
	}

	if len(rows) > bb.perPage {
		pages := (len(rows) + bb.perPage - 1) / bb.perPage
		bb.page = min(bb.page, pages-1)
		imgui.Text(fmt.Sprintf("Page %d / %d (%d bodies)", bb.page+1, pages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && bb.page > 0 {
			bb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && bb.page < pages-1 {
			bb.page++
		}
	} else {
		bb.page = 0
		imgui.Text(fmt.Sprintf("Total: %d bodies", len(rows)))
	}

	bb.renderSelected(world)
	imgui.End()
}

func (bb *BodyBrowser) renderSelected(world *sim.World) {
	if bb.selected == 0 {
		return
	}

	imgui.Separator()
	b := world.Body(bb.selected)
	if b == nil {
		imgui.Text(fmt.Sprintf("%s is gone", bb.selected))
		return
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Body %s", bb.selected)) {
		imgui.BulletText(fmt.Sprintf("Velocity: %.3f, %.3f", b.Vel.X, b.Vel.Y))
		imgui.BulletText(fmt.Sprintf("Mass: %.1f", b.Mass))
		imgui.BulletText(fmt.Sprintf("Trail: %d points", len(b.Trail)))
		imgui.BulletText(fmt.Sprintf("Tint: #%02x%02x%02x", b.Tint.R, b.Tint.G, b.Tint.B))
		imgui.BulletText(fmt.Sprintf("Distance: %.1f", b.Pos.Dist(world.Attractor().Pos)))
		imgui.TreePop()
	}
}
