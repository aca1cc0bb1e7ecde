package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/devlog-backend/internal/service/attachment"
)

var _ attachmentService = &attachmentServiceMock{}

type attachmentServiceMock struct {
	UploadImagesFunc func(ctx context.Context, files []attachment.File) ([]string, error)
	DeleteImageFunc  func(ctx context.Context, publicURL string) error

	calls struct {
		UploadImages []struct {
			Ctx   context.Context
			Files []attachment.File
		}
		DeleteImage []struct {
			Ctx       context.Context
			PublicURL string
		}
	}
	lockUploadImages sync.RWMutex
	lockDeleteImage  sync.RWMutex
}

func (mock *attachmentServiceMock) UploadImages(ctx context.Context, files []attachment.File) ([]string, error) {
	if mock.UploadImagesFunc == nil {
		panic("attachmentServiceMock.UploadImagesFunc: method is nil but attachmentService.UploadImages was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Files []attachment.File
	}{
		Ctx:   ctx,
		Files: files,
	}
	mock.lockUploadImages.Lock()
	mock.calls.UploadImages = append(mock.calls.UploadImages, callInfo)
	mock.lockUploadImages.Unlock()
	return mock.UploadImagesFunc(ctx, files)
}

func (mock *attachmentServiceMock) UploadImagesCalls() []struct {
	Ctx   context.Context
	Files []attachment.File
} {
	mock.lockUploadImages.RLock()
	calls := mock.calls.UploadImages
	mock.lockUploadImages.RUnlock()
	return calls
}

func (mock *attachmentServiceMock) DeleteImage(ctx context.Context, publicURL string) error {
	if mock.DeleteImageFunc == nil {
		panic("attachmentServiceMock.DeleteImageFunc: method is nil but attachmentService.DeleteImage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		PublicURL string
	}{
		Ctx:       ctx,
		PublicURL: publicURL,
	}
	mock.lockDeleteImage.Lock()
	mock.calls.DeleteImage = append(mock.calls.DeleteImage, callInfo)
	mock.lockDeleteImage.Unlock()
	return mock.DeleteImageFunc(ctx, publicURL)
}

func (mock *attachmentServiceMock) DeleteImageCalls() []struct {
	Ctx       context.Context
	PublicURL string
} {
	mock.lockDeleteImage.RLock()
	calls := mock.calls.DeleteImage
	mock.lockDeleteImage.RUnlock()
	return calls
}
