package attachment

import (
	"context"
	"sync"
)

var _ bucket = &bucketMock{}

type bucketMock struct {
	UploadFunc    func(ctx context.Context, path string, data []byte, contentType string) (string, error)
	PublicURLFunc func(path string) string
	DeleteFunc    func(ctx context.Context, path string) error

	calls struct {
		Upload []struct {
			Ctx         context.Context
			Path        string
			Data        []byte
			ContentType string
		}
		PublicURL []struct {
			Path string
		}
		Delete []struct {
			Ctx  context.Context
			Path string
		}
	}
	lockUpload    sync.RWMutex
	lockPublicURL sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *bucketMock) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if mock.UploadFunc == nil {
		panic("bucketMock.UploadFunc: method is nil but bucket.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Path        string
		Data        []byte
		ContentType string
	}{
		Ctx:         ctx,
		Path:        path,
		Data:        data,
		ContentType: contentType,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, path, data, contentType)
}

func (mock *bucketMock) UploadCalls() []struct {
	Ctx         context.Context
	Path        string
	Data        []byte
	ContentType string
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *bucketMock) PublicURL(path string) string {
	if mock.PublicURLFunc == nil {
		panic("bucketMock.PublicURLFunc: method is nil but bucket.PublicURL was just called")
	}
	callInfo := struct {
		Path string
	}{
		Path: path,
	}
	mock.lockPublicURL.Lock()
	mock.calls.PublicURL = append(mock.calls.PublicURL, callInfo)
	mock.lockPublicURL.Unlock()
	return mock.PublicURLFunc(path)
}

func (mock *bucketMock) PublicURLCalls() []struct {
	Path string
} {
	mock.lockPublicURL.RLock()
	calls := mock.calls.PublicURL
	mock.lockPublicURL.RUnlock()
	return calls
}

func (mock *bucketMock) Delete(ctx context.Context, path string) error {
	if mock.DeleteFunc == nil {
		panic("bucketMock.DeleteFunc: method is nil but bucket.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{
		Ctx:  ctx,
		Path: path,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, path)
}

func (mock *bucketMock) DeleteCalls() []struct {
	Ctx  context.Context
	Path string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
