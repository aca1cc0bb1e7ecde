package dashboard

import (
	"fmt"
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// Color is a D-Day badge color.
type Color string

const (
	ColorRed   Color = "red"
	ColorAmber Color = "amber"
	ColorGreen Color = "green"
	ColorGray  Color = "gray"
)

// ScheduleBuckets partitions schedule items by status. Every item lands in
// exactly one bucket.
type ScheduleBuckets struct {
	Active    []domain.ScheduleItem // in progress or delayed
	Upcoming  []domain.ScheduleItem
	Completed []domain.ScheduleItem
}

// ComputeScheduleBuckets partitions items, keeping order within a bucket.
// Items with an unknown status count as upcoming.
func ComputeScheduleBuckets(items []domain.ScheduleItem) ScheduleBuckets {
	b := ScheduleBuckets{
		Active:    []domain.ScheduleItem{},
		Upcoming:  []domain.ScheduleItem{},
		Completed: []domain.ScheduleItem{},
	}
	for _, it := range items {
		switch it.Status {
		case domain.StatusInProgress, domain.StatusDelayed:
			b.Active = append(b.Active, it)
		case domain.StatusDone:
			b.Completed = append(b.Completed, it)
		default:
			b.Upcoming = append(b.Upcoming, it)
		}
	}
	return b
}

// Deadline is a schedule item with its D-Day relative to a given day.
type Deadline struct {
	Item domain.ScheduleItem
	DDay int
}

// NearestDeadline returns the open item with the smallest D-Day. The first
// one wins ties. ok is false when every item is done.
func NearestDeadline(items []domain.ScheduleItem, today time.Time) (d Deadline, ok bool) {
	for i := range items {
		if items[i].IsDone() {
			continue
		}
		dd := items[i].DDay(today)
		if !ok || dd < d.DDay {
			d = Deadline{Item: items[i], DDay: dd}
			ok = true
		}
	}
	return d, ok
}

// DDayColor colors a D-Day: red up to a week out (overdue included),
// amber up to two weeks, green beyond.
func DDayColor(dDay int) Color {
	switch {
	case dDay <= 7:
		return ColorRed
	case dDay <= 14:
		return ColorAmber
	default:
		return ColorGreen
	}
}

// ScheduleColor is the badge color of an item. Completed items are gray.
func ScheduleColor(item *domain.ScheduleItem, today time.Time) Color {
	if item.IsDone() {
		return ColorGray
	}
	return DDayColor(item.DDay(today))
}

// DDayLabel renders a D-Day as "D-Day", "D-3" (three days left) or "D+2"
// (two days overdue).
func DDayLabel(dDay int) string {
	switch {
	case dDay == 0:
		return "D-Day"
	case dDay > 0:
		return fmt.Sprintf("D-%d", dDay)
	default:
		return fmt.Sprintf("D+%d", -dDay)
	}
}

// ScheduleStats are the board header counters.
type ScheduleStats struct {
	Total      int
	InProgress int
	Delayed    int
	Completed  int
	Nearest    *Deadline
}

// ComputeScheduleStats counts items by status and finds the nearest deadline.
func ComputeScheduleStats(items []domain.ScheduleItem, today time.Time) ScheduleStats {
	st := ScheduleStats{Total: len(items)}
	for i := range items {
		switch items[i].Status {
		case domain.StatusInProgress:
			st.InProgress++
		case domain.StatusDelayed:
			st.Delayed++
		case domain.StatusDone:
			st.Completed++
		}
	}
	if d, ok := NearestDeadline(items, today); ok {
		st.Nearest = &d
	}
	return st
}

// BoardItem is a schedule item decorated for display.
type BoardItem struct {
	Item  domain.ScheduleItem
	DDay  int
	Label string
	Color Color
}

// Board is the full schedule board view.
type Board struct {
	Today     time.Time
	Active    []BoardItem
	Upcoming  []BoardItem
	Completed []BoardItem
	Stats     ScheduleStats
}

// BuildBoard buckets and decorates items as of today.
func BuildBoard(items []domain.ScheduleItem, today time.Time) Board {
	today = domain.DateOf(today)
	b := ComputeScheduleBuckets(items)
	return Board{
		Today:     today,
		Active:    decorate(b.Active, today),
		Upcoming:  decorate(b.Upcoming, today),
		Completed: decorate(b.Completed, today),
		Stats:     ComputeScheduleStats(items, today),
	}
}

func decorate(items []domain.ScheduleItem, today time.Time) []BoardItem {
	out := make([]BoardItem, len(items))
	for i := range items {
		dd := items[i].DDay(today)
		out[i] = BoardItem{
			Item:  items[i],
			DDay:  dd,
			Label: DDayLabel(dd),
			Color: ScheduleColor(&items[i], today),
		}
	}
	return out
}
