package viewstate

import "github.com/heartmarshall/devlog-backend/internal/domain"

// Timeline is an accumulated, offset-paged list of items.
type Timeline[T any] struct {
	Items      []T
	TotalCount int
	HasMore    bool
	NextPage   int
	Loading    bool
	Error      string
}

// NewTimeline returns an empty timeline that has not loaded anything yet.
func NewTimeline[T any]() Timeline[T] {
	return Timeline[T]{Items: []T{}, HasMore: true}
}

// TimelineEvent is an input to Timeline.Reduce.
type TimelineEvent interface{ timelineEvent() }

// PageRequested asks for the next page when Append is set, or for the
// first page otherwise.
type PageRequested struct{ Append bool }

// PageLoaded delivers a page. Append concatenates it, otherwise it
// replaces the items.
type PageLoaded[T any] struct {
	Page   domain.Page[T]
	Append bool
}

// PageFailed reports a failed page load with a user-facing message.
type PageFailed struct{ Message string }

func (PageRequested) timelineEvent() {}
func (PageLoaded[T]) timelineEvent() {}
func (PageFailed) timelineEvent()    {}

// TimelineEffect asks the caller to load page PageIndex when Load is set.
type TimelineEffect struct {
	Load      bool
	PageIndex int
	Append    bool
}

// Reduce applies ev and returns the next state and the effect to run.
func (t Timeline[T]) Reduce(ev TimelineEvent) (Timeline[T], TimelineEffect) {
	switch e := ev.(type) {
	case PageRequested:
		if t.Loading || (e.Append && !t.HasMore) {
			return t, TimelineEffect{}
		}
		t.Loading = true
		t.Error = ""
		idx := 0
		if e.Append {
			idx = t.NextPage
		}
		return t, TimelineEffect{Load: true, PageIndex: idx, Append: e.Append}

	case PageLoaded[T]:
		items := make([]T, 0, len(t.Items)+len(e.Page.Items))
		if e.Append {
			items = append(items, t.Items...)
			t.NextPage++
		} else {
			t.NextPage = 1
		}
		items = append(items, e.Page.Items...)

		t.Items = items
		t.TotalCount = e.Page.TotalCount
		t.HasMore = len(items) < e.Page.TotalCount && len(e.Page.Items) > 0
		t.Loading = false
		t.Error = ""
		return t, TimelineEffect{}

	case PageFailed:
		t.Loading = false
		t.Error = e.Message
		return t, TimelineEffect{}
	}
	return t, TimelineEffect{}
}
