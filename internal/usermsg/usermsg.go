// Package usermsg turns errors into the Korean messages shown to users by
// the REST API and the terminal UI.
package usermsg

import (
	"context"
	"errors"

	"github.com/heartmarshall/devlog-backend/internal/domain"
)

// Op is the user action that failed.
type Op int

const (
	OpLoad Op = iota
	OpLoadSchedules
	OpSave
	OpDelete
	OpUpload
)

const (
	LoadFailed          = "데이터를 불러오는데 실패했습니다. 잠시 후 다시 시도해주세요."
	LoadSchedulesFailed = "일정을 불러오는데 실패했습니다."
	SaveFailed          = "저장에 실패했습니다. 다시 시도해주세요."
	DeleteFailed        = "삭제에 실패했습니다."
	UploadFailed        = "이미지 업로드에 실패했습니다."
	NotFound            = "기록을 찾을 수 없습니다."
	NotConfigured       = "저장소가 설정되지 않았습니다. 관리자에게 문의해주세요."
	Conflict            = "이미 존재하는 항목입니다."
	Canceled            = "요청이 취소되었습니다."
	TooManyRequests     = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	RouteNotFound       = "요청한 경로를 찾을 수 없습니다."
	MethodNotAllowed    = "허용되지 않는 요청입니다."
	AuthorRequired      = "작성자 이름을 입력해주세요."
	TitleRequired       = "제목을 입력해주세요."
	ContentRequired     = "내용을 입력해주세요."
	InvalidInput        = "입력값을 확인해주세요."
	InvalidDate         = "YYYY-MM-DD 형식으로 입력해주세요."
	NoSearchResults     = "검색 결과가 없습니다"
	NoRecentIssues      = "최근 이슈가 없습니다"
	ConfirmDeleteEntry  = "정말로 이 기록을 삭제하시겠습니까?"
	ConfirmDelete       = "정말 삭제하시겠습니까?"
	ConfirmDeleteReply  = "댓글을 삭제하시겠습니까?"
	Saved               = "저장되었습니다."
)

// For returns the message for err raised while performing op.
func For(err error, op Op) string {
	if err == nil {
		return ""
	}

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return Validation(ve)
	case errors.Is(err, domain.ErrNotFound):
		return NotFound
	case errors.Is(err, domain.ErrNotConfigured):
		return NotConfigured
	case errors.Is(err, domain.ErrConflict):
		return Conflict
	case errors.Is(err, context.Canceled):
		return Canceled
	}
	return failed(op)
}

// Validation returns the message for the first field error.
func Validation(ve *domain.ValidationError) string {
	if ve == nil || len(ve.Errors) == 0 {
		return InvalidInput
	}
	fe := ve.Errors[0]
	if fe.Message == "required" {
		switch fe.Field {
		case "author":
			return AuthorRequired
		case "title":
			return TitleRequired
		case "content":
			return ContentRequired
		}
	}
	if label := FieldLabel(fe.Field); label != "" {
		return InvalidInput + " (" + label + ")"
	}
	return InvalidInput
}

// FieldLabel is the Korean name of an input field.
func FieldLabel(field string) string {
	switch field {
	case "author":
		return "작성자"
	case "title":
		return "제목"
	case "content":
		return "내용"
	case "phase":
		return "개발 단계"
	case "domain":
		return "도메인"
	case "log_type":
		return "기록 유형"
	case "event_date":
		return "날짜"
	case "start_date":
		return "시작일"
	case "due_date":
		return "마감일"
	case "next_meeting_date":
		return "다음 회의일"
	case "status":
		return "상태"
	case "priority":
		return "우선순위"
	case "assignees":
		return "담당자"
	case "files", "image_urls":
		return "이미지"
	case "metadata":
		return "상세 정보"
	}
	return ""
}

func failed(op Op) string {
	switch op {
	case OpLoadSchedules:
		return LoadSchedulesFailed
	case OpSave:
		return SaveFailed
	case OpDelete:
		return DeleteFailed
	case OpUpload:
		return UploadFailed
	}
	return LoadFailed
}
