package rest

import (
	"time"

	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
)

// ---------------------------------------------------------------------------
// Entries
// ---------------------------------------------------------------------------

type entryResponse struct {
	ID           int64           `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	EventDate    string          `json:"event_date"`
	AuthorName   string          `json:"author_name"`
	DevPhase     domain.Phase    `json:"dev_phase"`
	Domain       domain.Domain   `json:"domain"`
	Category     string          `json:"category"`
	LogType      domain.LogType  `json:"log_type"`
	Title        string          `json:"title"`
	Content      *string         `json:"content"`
	MetaData     domain.Metadata `json:"meta_data"`
	ImageURLs    []string        `json:"image_urls"`
	RelatedLinks []string        `json:"related_links"`
	CommentCount *int            `json:"comment_count,omitempty"`
	Related      []briefResponse `json:"related,omitempty"`
}

func toEntryResponse(e *domain.LogEntry) entryResponse {
	return entryResponse{
		ID:           e.ID,
		CreatedAt:    e.CreatedAt,
		EventDate:    domain.FormatDate(e.EventDate),
		AuthorName:   e.Author,
		DevPhase:     e.Phase,
		Domain:       e.Domain,
		Category:     e.Category().String(),
		LogType:      e.LogType,
		Title:        e.Title,
		Content:      e.Content,
		MetaData:     e.Metadata,
		ImageURLs:    nonNil(e.ImageURLs),
		RelatedLinks: nonNil(e.RelatedLinks),
	}
}

type briefResponse struct {
	ID         int64          `json:"id"`
	Title      string         `json:"title"`
	AuthorName string         `json:"author_name"`
	DevPhase   domain.Phase   `json:"dev_phase"`
	Domain     domain.Domain  `json:"domain"`
	LogType    domain.LogType `json:"log_type"`
	EventDate  string         `json:"event_date"`
}

func toBriefResponses(briefs []domain.EntryBrief) []briefResponse {
	out := make([]briefResponse, len(briefs))
	for i, b := range briefs {
		out[i] = briefResponse{
			ID:         b.ID,
			Title:      b.Title,
			AuthorName: b.Author,
			DevPhase:   b.Phase,
			Domain:     b.Domain,
			LogType:    b.LogType,
			EventDate:  domain.FormatDate(b.EventDate),
		}
	}
	return out
}

type pageResponse struct {
	Items      []entryResponse `json:"items"`
	TotalCount int             `json:"total_count"`
	HasMore    bool            `json:"has_more"`
	Page       int             `json:"page"`
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

type commentResponse struct {
	ID           int64     `json:"id"`
	DevHistoryID int64     `json:"dev_history_id"`
	AuthorName   string    `json:"author_name"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:           c.ID,
		DevHistoryID: c.EntryID,
		AuthorName:   c.Author,
		Content:      c.Content,
		CreatedAt:    c.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Schedules
// ---------------------------------------------------------------------------

type scheduleResponse struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	StartDate   string                `json:"start_date"`
	DueDate     string                `json:"due_date"`
	Status      domain.ScheduleStatus `json:"status"`
	Priority    domain.Priority       `json:"priority"`
	DevPhase    *domain.Phase         `json:"dev_phase"`
	Assignees   []string              `json:"assignees"`
	CreatedAt   time.Time             `json:"created_at"`
}

func toScheduleResponse(s *domain.ScheduleItem) scheduleResponse {
	return scheduleResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		StartDate:   domain.FormatDate(s.StartDate),
		DueDate:     domain.FormatDate(s.DueDate),
		Status:      s.Status,
		Priority:    s.Priority,
		DevPhase:    s.Phase,
		Assignees:   nonNil(s.Assignees),
		CreatedAt:   s.CreatedAt,
	}
}

func toScheduleResponses(items []domain.ScheduleItem) []scheduleResponse {
	out := make([]scheduleResponse, len(items))
	for i := range items {
		out[i] = toScheduleResponse(&items[i])
	}
	return out
}

type boardItemResponse struct {
	scheduleResponse
	DDay      int             `json:"d_day"`
	DDayLabel string          `json:"d_day_label"`
	Color     dashboard.Color `json:"color"`
}

type scheduleStatsResponse struct {
	Total      int                `json:"total"`
	InProgress int                `json:"in_progress"`
	Delayed    int                `json:"delayed"`
	Completed  int                `json:"completed"`
	Nearest    *boardItemResponse `json:"nearest_deadline"`
}

type boardResponse struct {
	Today     string                `json:"today"`
	Active    []boardItemResponse   `json:"active"`
	Upcoming  []boardItemResponse   `json:"upcoming"`
	Completed []boardItemResponse   `json:"completed"`
	Stats     scheduleStatsResponse `json:"stats"`
}

func toBoardItems(items []dashboard.BoardItem) []boardItemResponse {
	out := make([]boardItemResponse, len(items))
	for i := range items {
		out[i] = boardItemResponse{
			scheduleResponse: toScheduleResponse(&items[i].Item),
			DDay:             items[i].DDay,
			DDayLabel:        items[i].Label,
			Color:            items[i].Color,
		}
	}
	return out
}

func toScheduleStatsResponse(st dashboard.ScheduleStats, today time.Time) scheduleStatsResponse {
	out := scheduleStatsResponse{
		Total:      st.Total,
		InProgress: st.InProgress,
		Delayed:    st.Delayed,
		Completed:  st.Completed,
	}
	if st.Nearest != nil {
		item := st.Nearest.Item
		out.Nearest = &boardItemResponse{
			scheduleResponse: toScheduleResponse(&item),
			DDay:             st.Nearest.DDay,
			DDayLabel:        dashboard.DDayLabel(st.Nearest.DDay),
			Color:            dashboard.ScheduleColor(&item, today),
		}
	}
	return out
}

func toBoardResponse(b *dashboard.Board) boardResponse {
	return boardResponse{
		Today:     domain.FormatDate(b.Today),
		Active:    toBoardItems(b.Active),
		Upcoming:  toBoardItems(b.Upcoming),
		Completed: toBoardItems(b.Completed),
		Stats:     toScheduleStatsResponse(b.Stats, b.Today),
	}
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

type selectionResponse struct {
	Phase    domain.Phase          `json:"phase,omitempty"`
	Category domain.DomainCategory `json:"category,omitempty"`
	LogType  domain.LogType        `json:"log_type,omitempty"`
}

type statsResponse struct {
	Total      int                           `json:"total"`
	Alignment  int                           `json:"alignment"`
	Bug        int                           `json:"bug"`
	Decision   int                           `json:"decision"`
	Meeting    int                           `json:"meeting"`
	ByPhase    map[domain.Phase]int          `json:"by_phase"`
	ByCategory map[domain.DomainCategory]int `json:"by_category"`
	ByDomain   map[domain.Domain]int         `json:"by_domain"`
	ByLogType  map[domain.LogType]int        `json:"by_log_type"`
}

func toStatsResponse(st dashboard.Stats) statsResponse {
	return statsResponse{
		Total:      st.Total,
		Alignment:  st.Alignment,
		Bug:        st.Bug,
		Decision:   st.Decision,
		Meeting:    st.Meeting,
		ByPhase:    st.ByPhase,
		ByCategory: st.ByCategory,
		ByDomain:   st.ByDomain,
		ByLogType:  st.ByLogType,
	}
}

type overviewResponse struct {
	Selection selectionResponse     `json:"selection"`
	Stats     statsResponse         `json:"stats"`
	Overall   statsResponse         `json:"overall"`
	Recent    []entryResponse       `json:"recent"`
	Schedule  scheduleStatsResponse `json:"schedule"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
