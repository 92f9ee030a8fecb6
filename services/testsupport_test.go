package services

import (
	"context"
	"os"
	"testing"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/pkg/queryparams"
	"anket.link/repositories"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// Servisler hata yollarında global logger'a yazar; testlerde sessiz olsun.
	configslog.Log = zap.NewNop()
	configslog.SLog = configslog.Log.Sugar()
	os.Exit(m.Run())
}

// fakeFormRepo bellek içi IFormRepository implementasyonudur.
type fakeFormRepo struct {
	forms   []models.Form
	nextID  uint
	findErr error
}

func (f *fakeFormRepo) Create(_ context.Context, form *models.Form) error {
	f.nextID++
	form.ID = f.nextID
	if form.Key == "" {
		form.Key = "testkey0000"
	}
	f.forms = append(f.forms, *form)
	return nil
}

func (f *fakeFormRepo) FindByID(_ context.Context, id uint) (*models.Form, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.forms {
		if f.forms[i].ID == id {
			form := f.forms[i]
			return &form, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeFormRepo) FindByKey(_ context.Context, key string) (*models.Form, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.forms {
		if f.forms[i].Key == key {
			form := f.forms[i]
			return &form, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeFormRepo) FindAllByUserID(_ context.Context, userID uint) ([]models.Form, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Form
	for _, form := range f.forms {
		if form.CreatorUserID == userID {
			out = append(out, form)
		}
	}
	return out, nil
}

func (f *fakeFormRepo) FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Form, int64, error) {
	forms, err := f.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return forms, int64(len(forms)), nil
}

func (f *fakeFormRepo) Update(_ context.Context, form *models.Form) error {
	for i := range f.forms {
		if f.forms[i].ID == form.ID {
			f.forms[i] = *form
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeFormRepo) Delete(_ context.Context, form *models.Form, _ uint) error {
	for i := range f.forms {
		if f.forms[i].ID == form.ID {
			f.forms = append(f.forms[:i], f.forms[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeFormRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	forms, err := f.FindAllByUserID(ctx, userID)
	return int64(len(forms)), err
}

var _ repositories.IFormRepository = (*fakeFormRepo)(nil)

// fakeResponseRepo bellek içi IResponseRepository implementasyonudur.
type fakeResponseRepo struct {
	responses []models.Response
	nextID    uint
	countErr  error
}

func (f *fakeResponseRepo) Create(_ context.Context, response *models.Response) error {
	f.nextID++
	response.ID = f.nextID
	f.responses = append(f.responses, *response)
	return nil
}

func (f *fakeResponseRepo) FindAllByFormID(_ context.Context, formID uint) ([]models.Response, error) {
	var out []models.Response
	for _, r := range f.responses {
		if r.FormID == formID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResponseRepo) CountGroupedByFormIDs(_ context.Context, formIDs []uint) (map[uint]int64, error) {
	if f.countErr != nil {
		return nil, f.countErr
	}
	wanted := make(map[uint]bool, len(formIDs))
	for _, id := range formIDs {
		wanted[id] = true
	}
	counts := make(map[uint]int64)
	for _, r := range f.responses {
		if wanted[r.FormID] {
			counts[r.FormID]++
		}
	}
	return counts, nil
}

var _ repositories.IResponseRepository = (*fakeResponseRepo)(nil)

// fakeUserService sabit kullanıcı listesi döndüren IUserService implementasyonudur.
type fakeUserService struct {
	users map[uint]*models.User
}

func newFakeUserService(ids ...uint) *fakeUserService {
	users := make(map[uint]*models.User, len(ids))
	for _, id := range ids {
		u := &models.User{Name: "Test", Email: "test@example.com", IsActive: true}
		u.ID = id
		users[id] = u
	}
	return &fakeUserService{users: users}
}

func (f *fakeUserService) Register(context.Context, string, string, string) (*models.User, error) {
	return nil, ErrUserInvalidInput
}

func (f *fakeUserService) Authenticate(context.Context, string, string) (*models.User, error) {
	return nil, ErrInvalidCredentials
}

func (f *fakeUserService) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

var _ IUserService = (*fakeUserService)(nil)

// seedForm fake repo'ya hazır bir form koyar.
func seedForm(repo *fakeFormRepo, ownerID uint, key, title string, enabled bool, questions ...models.Question) *models.Form {
	repo.nextID++
	form := models.Form{
		CreatorUserID: ownerID,
		Key:           key,
		Title:         title,
		IsEnabled:     enabled,
		Questions:     questions,
	}
	form.ID = repo.nextID
	repo.forms = append(repo.forms, form)
	return &form
}
