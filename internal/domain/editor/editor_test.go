package editor

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"siteadmin/internal/domain/content"
)

type fakeBackend struct {
	mu            sync.Mutex
	storeCalls    int
	editCalls     int
	deletedImages []string
	storeErr      error
	deleteErr     error
	uploadURL     string
	uploadErr     error
	assignID      int
	storeStarted  chan struct{}
	storeRelease  chan struct{}
	uploadStarted chan struct{}
	uploadRelease chan struct{}
}

func (f *fakeBackend) StoreService(_ context.Context, rec content.Content) (content.Content, error) {
	f.mu.Lock()
	f.storeCalls++
	f.mu.Unlock()

	if f.storeStarted != nil {
		f.storeStarted <- struct{}{}
		<-f.storeRelease
	}
	if f.storeErr != nil {
		return content.Content{}, f.storeErr
	}
	rec.ID = f.assignID
	return rec, nil
}

func (f *fakeBackend) EditService(_ context.Context, id int, rec content.Content) (content.Content, error) {
	f.mu.Lock()
	f.editCalls++
	f.mu.Unlock()
	rec.ID = id
	return rec, nil
}

func (f *fakeBackend) Upload(_ context.Context, _ string, _ io.Reader) (string, error) {
	if f.uploadStarted != nil {
		f.uploadStarted <- struct{}{}
		<-f.uploadRelease
	}
	return f.uploadURL, f.uploadErr
}

func (f *fakeBackend) DeleteImage(_ context.Context, imageName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedImages = append(f.deletedImages, imageName)
	return f.deleteErr
}

func galleryDraft(rows ...content.Row) content.Content {
	return content.Content{
		Kind:    content.KindGallery,
		TitleEn: "T",
		TitleGe: "ტ",
		Rows:    rows,
	}
}

func TestEditor_AddRemoveKeepsRowsAligned(t *testing.T) {
	// Строка - единая структура, но проверяем инвариант через wire-формат:
	// после любой последовательности операций четыре массива равной длины.
	e := Open(galleryDraft(content.Row{TitleEn: "a"}), &fakeBackend{}, slog.Default())

	require.NoError(t, e.AddRow())
	require.NoError(t, e.AddRow())
	require.NoError(t, e.UpdateRow(1, "titleEn", "b"))
	require.NoError(t, e.RemoveRow(context.Background(), 0))
	require.NoError(t, e.AddRow())

	p, err := content.Encode(e.Draft())
	require.NoError(t, err)

	for _, raw := range []*string{p.TitlesEn, p.TitlesGe, p.Href, p.Images} {
		require.NotNil(t, raw)
	}
	assert.JSONEq(t, `["b","",""]`, *p.TitlesEn)
	assert.JSONEq(t, `["","",""]`, *p.Href)
}

func TestEditor_RemoveLastRowIsNoop(t *testing.T) {
	backend := &fakeBackend{}
	e := Open(galleryDraft(content.Row{TitleEn: "only", Image: "img.png"}), backend, slog.Default())

	require.NoError(t, e.RemoveRow(context.Background(), 0))

	draft := e.Draft()
	require.Len(t, draft.Rows, 1)
	assert.Equal(t, "only", draft.Rows[0].TitleEn)
	assert.Empty(t, backend.deletedImages, "изображение единственной строки не трогается")
}

func TestEditor_RemoveRowCleansUpImage(t *testing.T) {
	backend := &fakeBackend{}
	e := Open(galleryDraft(
		content.Row{TitleEn: "a", Image: "a.png"},
		content.Row{TitleEn: "b", Image: "b.png"},
	), backend, slog.Default())

	require.NoError(t, e.RemoveRow(context.Background(), 0))

	assert.Equal(t, []string{"a.png"}, backend.deletedImages)
	draft := e.Draft()
	require.Len(t, draft.Rows, 1)
	assert.Equal(t, "b", draft.Rows[0].TitleEn)
}

func TestEditor_RemoveRowIgnoresCleanupFailure(t *testing.T) {
	backend := &fakeBackend{deleteErr: errors.New("cdn unavailable")}
	e := Open(galleryDraft(
		content.Row{Image: "a.png"},
		content.Row{Image: "b.png"},
	), backend, slog.Default())

	// Ошибка удаления файла не блокирует удаление строки
	require.NoError(t, e.RemoveRow(context.Background(), 0))
	assert.Len(t, e.Draft().Rows, 1)
}

func TestEditor_Validate(t *testing.T) {
	tests := []struct {
		name     string
		draft    content.Content
		expected []FieldError
	}{
		{
			name: "filled single passes",
			draft: content.Content{
				Kind:    content.KindSingle,
				TitleEn: "A", TitleGe: "B",
				BodyEn: "X", BodyGe: "Y",
			},
			expected: nil,
		},
		{
			name: "single missing bodies",
			draft: content.Content{
				Kind:    content.KindSingle,
				TitleEn: "A", TitleGe: "B",
			},
			expected: []FieldError{
				{Row: -1, Field: "bodyEn"},
				{Row: -1, Field: "bodyGe"},
			},
		},
		{
			name: "gallery row missing image names the row",
			draft: galleryDraft(
				content.Row{TitleEn: "a", TitleGe: "ა", Image: "a.png"},
				content.Row{TitleEn: "b", TitleGe: "ბ"},
			),
			expected: []FieldError{
				{Row: 1, Field: "image"},
			},
		},
		{
			name: "gallery fully populated passes",
			draft: galleryDraft(
				content.Row{TitleEn: "a", TitleGe: "ა", Image: "a.png"},
				content.Row{TitleEn: "b", TitleGe: "ბ", Image: "b.png"},
			),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Open(tt.draft, &fakeBackend{}, slog.Default())
			assert.Equal(t, tt.expected, e.Validate())
		})
	}
}

func TestEditor_SubmitCreatesWhenNew(t *testing.T) {
	backend := &fakeBackend{assignID: 77}
	e := Open(content.Content{
		Kind:    content.KindSingle,
		TitleEn: "A", TitleGe: "B", BodyEn: "X", BodyGe: "Y",
	}, backend, slog.Default())

	saved, err := e.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 77, saved.ID)
	assert.Equal(t, 1, backend.storeCalls)
	assert.Equal(t, 0, backend.editCalls)
}

func TestEditor_SubmitUpdatesWhenPersisted(t *testing.T) {
	backend := &fakeBackend{}
	e := Open(content.Content{
		ID:      5,
		Kind:    content.KindSingle,
		TitleEn: "A", TitleGe: "B", BodyEn: "X", BodyGe: "Y",
	}, backend, slog.Default())

	saved, err := e.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, saved.ID)
	assert.Equal(t, 0, backend.storeCalls)
	assert.Equal(t, 1, backend.editCalls)
}

func TestEditor_SubmitBlockedByValidation(t *testing.T) {
	backend := &fakeBackend{}
	e := Open(NewDraft(), backend, slog.Default())

	_, err := e.Submit(context.Background())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Fields)
	assert.Equal(t, 0, backend.storeCalls, "сетевой вызов не должен выполняться")
}

func TestEditor_SubmitFailureKeepsDraft(t *testing.T) {
	backend := &fakeBackend{storeErr: errors.New("server down")}
	e := Open(content.Content{
		Kind:    content.KindSingle,
		TitleEn: "A", TitleGe: "B", BodyEn: "X", BodyGe: "Y",
	}, backend, slog.Default())

	_, err := e.Submit(context.Background())
	require.Error(t, err)

	assert.False(t, e.Submitting())
	assert.Equal(t, "A", e.Draft().TitleEn, "черновик остается открытым")

	// Повторная отправка после ошибки разрешена
	backend.storeErr = nil
	_, err = e.Submit(context.Background())
	assert.NoError(t, err)
}

func TestEditor_ConcurrentSubmitRejected(t *testing.T) {
	// Arrange: бэкенд держит первую отправку открытой
	backend := &fakeBackend{
		storeStarted: make(chan struct{}),
		storeRelease: make(chan struct{}),
	}
	e := Open(content.Content{
		Kind:    content.KindSingle,
		TitleEn: "A", TitleGe: "B", BodyEn: "X", BodyGe: "Y",
	}, backend, slog.Default())

	done := make(chan error, 1)
	go func() {
		_, err := e.Submit(context.Background())
		done <- err
	}()
	<-backend.storeStarted

	// Act: вторая отправка при незавершенной первой
	_, err := e.Submit(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(backend.storeRelease)
	require.NoError(t, <-done)
	assert.Equal(t, 1, backend.storeCalls, "дублирующего сетевого вызова нет")
}

func TestEditor_UploadImageStoresURL(t *testing.T) {
	backend := &fakeBackend{uploadURL: "https://cdn.site.ge/new.png"}
	e := Open(galleryDraft(content.Row{Image: "old.png"}), backend, slog.Default())

	err := e.UploadImage(context.Background(), 0, "new.png", nil)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.site.ge/new.png", e.Draft().Rows[0].Image)
}

func TestEditor_UploadFailureKeepsPreviousImage(t *testing.T) {
	backend := &fakeBackend{uploadErr: errors.New("too large")}
	e := Open(galleryDraft(content.Row{Image: "old.png"}), backend, slog.Default())

	err := e.UploadImage(context.Background(), 0, "new.png", nil)

	require.Error(t, err)
	assert.Equal(t, "old.png", e.Draft().Rows[0].Image)
}

func TestEditor_UploadDroppedWhenRowRemovedMidFlight(t *testing.T) {
	// Arrange: бэкенд держит загрузку открытой
	backend := &fakeBackend{
		uploadURL:     "https://cdn.site.ge/new.png",
		uploadStarted: make(chan struct{}),
		uploadRelease: make(chan struct{}),
	}
	e := Open(galleryDraft(
		content.Row{TitleEn: "a", Image: "a.png"},
		content.Row{TitleEn: "b", Image: "b.png"},
		content.Row{TitleEn: "c", Image: "c.png"},
	), backend, slog.Default())

	done := make(chan error, 1)
	go func() {
		done <- e.UploadImage(context.Background(), 1, "new.png", nil)
	}()
	<-backend.uploadStarted

	// Act: целевая строка удалена, индекс 1 теперь указывает на "c"
	require.NoError(t, e.RemoveRow(context.Background(), 1))
	close(backend.uploadRelease)
	require.NoError(t, <-done)

	// Assert: ссылка не попадает в чужую строку
	draft := e.Draft()
	require.Len(t, draft.Rows, 2)
	assert.Equal(t, "a.png", draft.Rows[0].Image)
	assert.Equal(t, "c.png", draft.Rows[1].Image)
}

func TestEditor_OpenClonesRecord(t *testing.T) {
	original := galleryDraft(content.Row{TitleEn: "orig"})
	e := Open(original, &fakeBackend{}, slog.Default())

	require.NoError(t, e.UpdateRow(0, "titleEn", "edited"))

	assert.Equal(t, "orig", original.Rows[0].TitleEn, "оригинал записи не мутируется")
}

func TestEditor_UpdateRowBounds(t *testing.T) {
	e := Open(galleryDraft(content.Row{}), &fakeBackend{}, slog.Default())

	assert.ErrorIs(t, e.UpdateRow(5, "titleEn", "x"), ErrRowIndex)
	assert.ErrorIs(t, e.UpdateRow(-1, "titleEn", "x"), ErrRowIndex)
	assert.ErrorIs(t, e.UpdateRow(0, "nope", "x"), ErrUnknownField)
}
