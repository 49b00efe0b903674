package console

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"siteadmin/internal/app/console/config"
	"siteadmin/internal/domain/contact"
	"siteadmin/internal/domain/content"
	"siteadmin/internal/domain/editor"
	"siteadmin/internal/domain/footer"
	"siteadmin/internal/domain/session"
)

// Gateway - полный набор операций удаленного API, который использует консоль
type Gateway interface {
	editor.Backend

	Login(ctx context.Context, email, password string) (string, error)
	ListServices(ctx context.Context) ([]content.Content, error)
	DeleteService(ctx context.Context, id int) error

	Contacts(ctx context.Context) ([]contact.SiteInfo, error)
	AddContact(ctx context.Context, info contact.SiteInfo) (contact.SiteInfo, error)
	EditContactField(ctx context.Context, id int, field, value string) error

	FooterLinks(ctx context.Context) ([]footer.LinkGroup, error)
	StoreFooterLink(ctx context.Context, group footer.LinkGroup) error
	EditFooterLink(ctx context.Context, id int, group footer.LinkGroup) error
	DeleteFooterLink(ctx context.Context, id int) error
}

// App связывает сессию, шлюз и редактор. Владеет локальной коллекцией
// списка сервисов и единственным открытым редактором.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	session *session.Store
	gateway Gateway

	mu          sync.Mutex
	editor      *editor.Editor
	services    []content.Content
	servicesErr string
}

func New(cfg *config.Config, sess *session.Store, gw Gateway, log *slog.Logger) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		session: sess,
		gateway: gw,
	}
}

func (a *App) Config() *config.Config   { return a.cfg }
func (a *App) Log() *slog.Logger        { return a.log }
func (a *App) Session() *session.Store  { return a.session }
func (a *App) Gateway() Gateway         { return a.gateway }

// Login аутентифицирует оператора и открывает сессию.
// Возвращает идентификатор cookie для браузера.
func (a *App) Login(ctx context.Context, email, password string) (string, error) {
	token, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		return "", err
	}

	cookieID, err := a.session.SetToken(ctx, token)
	if err != nil {
		return "", err
	}

	return cookieID, nil
}

// Logout очищает сессию. Серверная инвалидация токена не вызывается.
func (a *App) Logout(ctx context.Context) {
	a.session.Clear(ctx)
}

// LoadServices загружает коллекцию с сервера. При ошибке коллекция
// не меняется, а представление получает текст ошибки вместо списка.
func (a *App) LoadServices(ctx context.Context) error {
	records, err := a.gateway.ListServices(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		a.servicesErr = fmt.Sprintf("Не удалось загрузить список: %v", err)
		return err
	}

	a.services = records
	a.servicesErr = ""
	return nil
}

// Services возвращает текущую коллекцию и текст ошибки загрузки
func (a *App) Services() ([]content.Content, string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	records := make([]content.Content, len(a.services))
	for i, rec := range a.services {
		records[i] = rec.Clone()
	}
	return records, a.servicesErr
}

// DeleteService удаляет запись на сервере. Локальная коллекция
// сокращается только после подтверждения успеха, по совпадению
// идентификатора. При ошибке коллекция не меняется.
func (a *App) DeleteService(ctx context.Context, id int) error {
	if err := a.gateway.DeleteService(ctx, id); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, rec := range a.services {
		if rec.ID == id {
			a.services = append(a.services[:i], a.services[i+1:]...)
			break
		}
	}
	return nil
}

// OpenCreate открывает редактор с пустым черновиком.
// Уже открытый редактор отбрасывается вместе с его черновиком.
func (a *App) OpenCreate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editor = editor.Open(editor.NewDraft(), a.gateway, a.log)
}

// OpenEdit открывает редактор над копией записи из коллекции
func (a *App) OpenEdit(ctx context.Context, id int) error {
	rec, ok := a.findService(id)
	if !ok {
		// Коллекция могла устареть - пробуем перечитать
		if err := a.LoadServices(ctx); err != nil {
			return err
		}
		if rec, ok = a.findService(id); !ok {
			return fmt.Errorf("%w: id=%d", ErrRecordNotFound, id)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.editor = editor.Open(rec, a.gateway, a.log)
	return nil
}

func (a *App) findService(id int) (content.Content, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, rec := range a.services {
		if rec.ID == id {
			return rec.Clone(), true
		}
	}
	return content.Content{}, false
}

// Editor возвращает открытый редактор либо nil
func (a *App) Editor() *editor.Editor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editor
}

// CloseEditor отбрасывает черновик без сетевых вызовов
func (a *App) CloseEditor() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editor = nil
}

// SubmitEditor отправляет черновик. При успехе каноническая запись
// сервера замещает старую в коллекции (или добавляется), редактор
// закрывается. При ошибке редактор остается открытым.
func (a *App) SubmitEditor(ctx context.Context) error {
	a.mu.Lock()
	e := a.editor
	a.mu.Unlock()

	if e == nil {
		return ErrNoEditor
	}

	saved, err := e.Submit(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Редактор могли закрыть, пока шла отправка - поздний ответ
	// не должен трогать состояние чужого представления
	if a.editor != e {
		a.log.Debug("редактор закрыт до ответа сервера, результат отброшен", "id", saved.ID)
		return nil
	}

	replaced := false
	for i, rec := range a.services {
		if rec.ID == saved.ID {
			a.services[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		a.services = append(a.services, saved)
	}

	a.editor = nil
	return nil
}
