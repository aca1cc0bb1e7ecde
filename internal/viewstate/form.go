package viewstate

import "time"

// SuccessDelay is how long a succeeded form stays visible before it closes.
const SuccessDelay = time.Second

// FormStatus is the submit lifecycle of a form.
type FormStatus int

const (
	FormIdle FormStatus = iota
	FormSubmitting
	FormSucceeded
	FormFailed
)

func (s FormStatus) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "succeeded"
	case FormFailed:
		return "failed"
	}
	return "unknown"
}

// Form is the state of a create or edit form holding values of type T.
type Form[T any] struct {
	Values         T
	Status         FormStatus
	Error          string
	PendingUploads int
	UploadError    string
}

// NewForm returns an idle form with the given initial values.
func NewForm[T any](values T) Form[T] {
	return Form[T]{Values: values}
}

// CanSubmit reports whether a submit would be accepted now.
func (f Form[T]) CanSubmit() bool {
	return (f.Status == FormIdle || f.Status == FormFailed) && f.PendingUploads == 0
}

// Busy reports whether a submit or an upload is in flight.
func (f Form[T]) Busy() bool {
	return f.Status == FormSubmitting || f.PendingUploads > 0
}

// FormEvent is an input to Form.Reduce.
type FormEvent interface{ formEvent() }

// Edited replaces the field values.
type Edited[T any] struct{ Values T }

// SubmitRequested asks to submit the current values.
type SubmitRequested struct{}

// SubmitSucceeded reports that the store accepted the submit.
type SubmitSucceeded struct{}

// SubmitFailed reports a rejected submit with a user-facing message.
type SubmitFailed struct{ Message string }

// UploadStarted marks n uploads as in flight.
type UploadStarted struct{ N int }

// UploadFinished marks n uploads as done. A non-empty Message reports
// their failure.
type UploadFinished struct {
	N       int
	Message string
}

func (Edited[T]) formEvent()       {}
func (SubmitRequested) formEvent() {}
func (SubmitSucceeded) formEvent() {}
func (SubmitFailed) formEvent()    {}
func (UploadStarted) formEvent()   {}
func (UploadFinished) formEvent()  {}

// FormEffectKind is the side effect a form transition asks for.
type FormEffectKind int

const (
	FormNoEffect FormEffectKind = iota
	// FormSubmit asks the caller to send Values to the store.
	FormSubmit
	// FormCloseAfter asks the caller to close the form after Delay.
	FormCloseAfter
)

// FormEffect is returned by Form.Reduce.
type FormEffect struct {
	Kind  FormEffectKind
	Delay time.Duration
}

// Reduce applies ev and returns the next state and the effect to run.
// Values survive a failed submit. Submits are refused while uploads are
// pending.
func (f Form[T]) Reduce(ev FormEvent) (Form[T], FormEffect) {
	none := FormEffect{}

	switch e := ev.(type) {
	case Edited[T]:
		if f.Status == FormSubmitting || f.Status == FormSucceeded {
			return f, none
		}
		f.Values = e.Values
		if f.Status == FormFailed {
			f.Status = FormIdle
			f.Error = ""
		}
		return f, none

	case SubmitRequested:
		if !f.CanSubmit() {
			return f, none
		}
		f.Status = FormSubmitting
		f.Error = ""
		return f, FormEffect{Kind: FormSubmit}

	case SubmitSucceeded:
		if f.Status != FormSubmitting {
			return f, none
		}
		f.Status = FormSucceeded
		return f, FormEffect{Kind: FormCloseAfter, Delay: SuccessDelay}

	case SubmitFailed:
		if f.Status != FormSubmitting {
			return f, none
		}
		f.Status = FormFailed
		f.Error = e.Message
		return f, none

	case UploadStarted:
		if e.N > 0 {
			f.PendingUploads += e.N
			f.UploadError = ""
		}
		return f, none

	case UploadFinished:
		f.PendingUploads -= e.N
		if f.PendingUploads < 0 {
			f.PendingUploads = 0
		}
		if e.Message != "" {
			f.UploadError = e.Message
		}
		return f, none
	}
	return f, none
}
