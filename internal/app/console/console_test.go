package console

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"siteadmin/internal/app/console/config"
	"siteadmin/internal/domain/contact"
	"siteadmin/internal/domain/content"
	"siteadmin/internal/domain/footer"
	"siteadmin/internal/domain/session"
)

type memStorage struct {
	token string
}

func (m *memStorage) SaveToken(_ context.Context, token string) error {
	m.token = token
	return nil
}

func (m *memStorage) LoadToken(_ context.Context) (string, error) {
	return m.token, nil
}

func (m *memStorage) DeleteToken(_ context.Context) error {
	m.token = ""
	return nil
}

type fakeGateway struct {
	listResult  []content.Content
	listErr     error
	deleteErr   error
	loginToken  string
	loginErr    error
	storeResult content.Content
}

func (f *fakeGateway) Login(_ context.Context, _, _ string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeGateway) ListServices(_ context.Context) ([]content.Content, error) {
	return f.listResult, f.listErr
}

func (f *fakeGateway) DeleteService(_ context.Context, _ int) error {
	return f.deleteErr
}

func (f *fakeGateway) StoreService(_ context.Context, rec content.Content) (content.Content, error) {
	return f.storeResult, nil
}

func (f *fakeGateway) EditService(_ context.Context, id int, rec content.Content) (content.Content, error) {
	rec.ID = id
	return rec, nil
}

func (f *fakeGateway) Upload(_ context.Context, _ string, _ io.Reader) (string, error) {
	return "", nil
}

func (f *fakeGateway) DeleteImage(_ context.Context, _ string) error {
	return nil
}

func (f *fakeGateway) Contacts(_ context.Context) ([]contact.SiteInfo, error) {
	return nil, nil
}

func (f *fakeGateway) AddContact(_ context.Context, info contact.SiteInfo) (contact.SiteInfo, error) {
	return info, nil
}

func (f *fakeGateway) EditContactField(_ context.Context, _ int, _, _ string) error {
	return nil
}

func (f *fakeGateway) FooterLinks(_ context.Context) ([]footer.LinkGroup, error) {
	return nil, nil
}

func (f *fakeGateway) StoreFooterLink(_ context.Context, _ footer.LinkGroup) error {
	return nil
}

func (f *fakeGateway) EditFooterLink(_ context.Context, _ int, _ footer.LinkGroup) error {
	return nil
}

func (f *fakeGateway) DeleteFooterLink(_ context.Context, _ int) error {
	return nil
}

func newTestApp(t *testing.T, gw *fakeGateway) *App {
	t.Helper()
	sess, err := session.NewStore(context.Background(), &memStorage{}, slog.Default())
	require.NoError(t, err)
	return New(&config.Config{}, sess, gw, slog.Default())
}

func twoRecords() []content.Content {
	return []content.Content{
		{ID: 1, Kind: content.KindSingle, TitleEn: "one"},
		{ID: 2, Kind: content.KindSingle, TitleEn: "two"},
	}
}

func TestApp_LoadServices(t *testing.T) {
	gw := &fakeGateway{listResult: twoRecords()}
	app := newTestApp(t, gw)

	require.NoError(t, app.LoadServices(context.Background()))

	records, errMsg := app.Services()
	assert.Len(t, records, 2)
	assert.Empty(t, errMsg)
}

func TestApp_LoadServicesFailureKeepsCollection(t *testing.T) {
	gw := &fakeGateway{listResult: twoRecords()}
	app := newTestApp(t, gw)
	require.NoError(t, app.LoadServices(context.Background()))

	gw.listErr = errors.New("api down")
	require.Error(t, app.LoadServices(context.Background()))

	records, errMsg := app.Services()
	assert.Len(t, records, 2, "коллекция не меняется при ошибке загрузки")
	assert.Contains(t, errMsg, "api down")
}

func TestApp_DeleteService(t *testing.T) {
	tests := []struct {
		name        string
		deleteErr   error
		expectedIDs []int
		wantErr     bool
	}{
		{
			name:        "confirmed delete shrinks collection",
			expectedIDs: []int{2},
		},
		{
			name:        "backend failure leaves collection unchanged",
			deleteErr:   errors.New("forbidden"),
			expectedIDs: []int{1, 2},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			gw := &fakeGateway{listResult: twoRecords(), deleteErr: tt.deleteErr}
			app := newTestApp(t, gw)
			require.NoError(t, app.LoadServices(context.Background()))

			// Act
			err := app.DeleteService(context.Background(), 1)

			// Assert
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			records, _ := app.Services()
			ids := make([]int, len(records))
			for i, rec := range records {
				ids[i] = rec.ID
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestApp_SubmitUpsertsCanonicalRecord(t *testing.T) {
	// Сервер присваивает новой записи идентификатор
	gw := &fakeGateway{
		listResult: twoRecords(),
		storeResult: content.Content{
			ID: 3, Kind: content.KindSingle,
			TitleEn: "A", TitleGe: "B", BodyEn: "X", BodyGe: "Y",
		},
	}
	app := newTestApp(t, gw)
	require.NoError(t, app.LoadServices(context.Background()))

	app.OpenCreate()
	e := app.Editor()
	require.NotNil(t, e)
	require.NoError(t, e.SetField("titleEn", "A"))
	require.NoError(t, e.SetField("titleGe", "B"))
	require.NoError(t, e.SetBody("en", "X"))
	require.NoError(t, e.SetBody("ge", "Y"))

	require.NoError(t, app.SubmitEditor(context.Background()))

	assert.Nil(t, app.Editor(), "редактор закрывается после успешной отправки")
	records, _ := app.Services()
	require.Len(t, records, 3)
	assert.Equal(t, 3, records[2].ID)
}

func TestApp_SubmitReplacesEditedRecord(t *testing.T) {
	gw := &fakeGateway{listResult: twoRecords()}
	app := newTestApp(t, gw)
	require.NoError(t, app.LoadServices(context.Background()))

	require.NoError(t, app.OpenEdit(context.Background(), 2))
	e := app.Editor()
	require.NotNil(t, e)
	require.NoError(t, e.SetField("titleEn", "updated"))
	require.NoError(t, e.SetField("titleGe", "განახლდა"))
	require.NoError(t, e.SetBody("en", "X"))
	require.NoError(t, e.SetBody("ge", "Y"))

	require.NoError(t, app.SubmitEditor(context.Background()))

	records, _ := app.Services()
	require.Len(t, records, 2)
	assert.Equal(t, "updated", records[1].TitleEn)
}

func TestApp_OpenEditUnknownRecord(t *testing.T) {
	gw := &fakeGateway{listResult: twoRecords()}
	app := newTestApp(t, gw)

	err := app.OpenEdit(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Nil(t, app.Editor())
}

func TestApp_CancelDiscardsDraft(t *testing.T) {
	app := newTestApp(t, &fakeGateway{})

	app.OpenCreate()
	require.NotNil(t, app.Editor())

	app.CloseEditor()
	assert.Nil(t, app.Editor())

	assert.ErrorIs(t, app.SubmitEditor(context.Background()), ErrNoEditor)
}

func TestApp_Login(t *testing.T) {
	gw := &fakeGateway{loginToken: "fresh-token"}
	app := newTestApp(t, gw)

	cookieID, err := app.Login(context.Background(), "admin@site.ge", "pass")
	require.NoError(t, err)
	assert.NotEmpty(t, cookieID)

	token, ok := app.Session().Token()
	assert.True(t, ok)
	assert.Equal(t, "fresh-token", token)

	app.Logout(context.Background())
	_, ok = app.Session().Token()
	assert.False(t, ok)
}

func TestApp_LoginFailureKeepsSessionEmpty(t *testing.T) {
	gw := &fakeGateway{loginErr: errors.New("bad credentials")}
	app := newTestApp(t, gw)

	_, err := app.Login(context.Background(), "admin@site.ge", "wrong")
	require.Error(t, err)

	_, ok := app.Session().Token()
	assert.False(t, ok)
}
