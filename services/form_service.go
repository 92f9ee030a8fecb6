package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/pkg/queryparams"
	"anket.link/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormServiceError özel servis hataları
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound          FormServiceError = "form bulunamadı"
	ErrFormCreationFailed    FormServiceError = "form oluşturulamadı"
	ErrFormUpdateFailed      FormServiceError = "form güncellenemedi"
	ErrFormDeletionFailed    FormServiceError = "form silinemedi"
	ErrFormForbidden         FormServiceError = "bu işlem için yetkiniz yok"
	ErrFormInvalidInput      FormServiceError = "geçersiz form verisi"
	ErrFormTitleRequired     FormServiceError = "form başlığı zorunludur"
	ErrFormKeyGenerationFail FormServiceError = "benzersiz form anahtarı üretilemedi"
)

// FormInput form oluşturma/güncelleme için kullanıcıdan gelen veridir.
type FormInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
}

// IFormService form işlemleri için arayüz.
type IFormService interface {
	CreateForm(ctx context.Context, creatorUserID uint, input FormInput) (*models.Form, error)
	GetFormByID(ctx context.Context, id uint, requestingUserID uint) (*models.Form, error)
	GetFormByKey(ctx context.Context, key string) (*models.Form, error) // Public erişim
	GetFormsForUser(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateForm(ctx context.Context, id uint, updatingUserID uint, input FormInput, isEnabled bool) (*models.Form, error)
	DeleteForm(ctx context.Context, id uint, deletingUserID uint) error
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	repo        repositories.IFormRepository
	userService IUserService
}

// NewFormService yeni bir FormService örneği oluşturur.
func NewFormService() IFormService {
	return &FormService{
		repo:        repositories.NewFormRepository(),
		userService: NewUserService(),
	}
}

// ValidateFormInput temel form validasyonlarını yapar.
func ValidateFormInput(input FormInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrFormTitleRequired
	}
	if len(input.Questions) == 0 {
		return fmt.Errorf("%w: en az bir soru gereklidir", ErrFormInvalidInput)
	}
	for i, q := range input.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("%w: %d. sorunun metni boş olamaz", ErrFormInvalidInput, i+1)
		}
		switch q.Type {
		case models.QuestionTypeText:
			// Options TEXT tipinde yok sayılır.
		case models.QuestionTypeSingleChoice:
			if len(nonEmptyOptions(q.Options)) == 0 {
				return fmt.Errorf("%w: %d. soru için en az bir seçenek gereklidir", ErrFormInvalidInput, i+1)
			}
		default:
			return fmt.Errorf("%w: %d. sorunun tipi geçersiz (%s)", ErrFormInvalidInput, i+1, q.Type)
		}
	}
	return nil
}

func nonEmptyOptions(options []string) []string {
	cleaned := make([]string, 0, len(options))
	for _, o := range options {
		if strings.TrimSpace(o) != "" {
			cleaned = append(cleaned, o)
		}
	}
	return cleaned
}

// normalizeQuestions soru listesini kayıt için hazırlar: mevcut sorular
// ID'lerini korur (cevap eşleşmesi bozulmaz), yeni sorulara UUID atanır,
// TEXT sorularının seçenekleri temizlenir.
func normalizeQuestions(incoming []models.Question, existing []models.Question) []models.Question {
	known := make(map[string]bool, len(existing))
	for _, q := range existing {
		known[q.ID] = true
	}

	seen := make(map[string]bool, len(incoming))
	normalized := make([]models.Question, 0, len(incoming))
	for _, q := range incoming {
		if q.ID == "" || !known[q.ID] || seen[q.ID] {
			q.ID = uuid.NewString()
		}
		seen[q.ID] = true
		if q.Type == models.QuestionTypeText {
			q.Options = nil
		} else {
			q.Options = nonEmptyOptions(q.Options)
		}
		q.Text = strings.TrimSpace(q.Text)
		normalized = append(normalized, q)
	}
	return normalized
}

// CreateForm yeni bir form oluşturur; tüm sorulara kalıcı ID atanır.
func (s *FormService) CreateForm(ctx context.Context, creatorUserID uint, input FormInput) (*models.Form, error) {
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz oluşturan kullanıcı ID", ErrFormInvalidInput)
	}
	if err := ValidateFormInput(input); err != nil {
		return nil, err
	}

	form := &models.Form{
		CreatorUserID: creatorUserID,
		IsEnabled:     true,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Questions:     normalizeQuestions(input.Questions, nil),
	}

	ctxWithUser := models.ContextWithUserID(ctx, creatorUserID)
	if err := s.repo.Create(ctxWithUser, form); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// BeforeCreate'in ürettiği key çakıştı; bir kez daha dene.
			form.Key = ""
			if retryErr := s.repo.Create(ctxWithUser, form); retryErr != nil {
				configslog.Log.Error("Form key çakışması devam ediyor", zap.Uint("creatorUserID", creatorUserID), zap.Error(retryErr))
				return nil, ErrFormKeyGenerationFail
			}
		} else {
			configslog.Log.Error("Form oluşturulurken repository hatası", zap.Uint("creatorUserID", creatorUserID), zap.Error(err))
			return nil, ErrFormCreationFailed
		}
	}

	configslog.SLog.Infof("Form başarıyla oluşturuldu: ID %d, Başlık: %s, Key: %s", form.ID, form.Title, form.Key)
	return form, nil
}

// GetFormByID belirli bir formu ID ve kullanıcı yetkisine göre getirir.
func (s *FormService) GetFormByID(ctx context.Context, id uint, requestingUserID uint) (*models.Form, error) {
	form, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	requestingUser, userErr := s.userService.GetUserByID(ctx, requestingUserID)
	if userErr != nil {
		return nil, ErrFormForbidden
	}
	if !requestingUser.IsSystem && form.CreatorUserID != requestingUserID {
		return nil, ErrFormForbidden
	}
	return form, nil
}

// GetFormByKey public link anahtarı ile formu getirir. Kapalı formlar
// dışarıdan yok gibi davranır.
func (s *FormService) GetFormByKey(ctx context.Context, key string) (*models.Form, error) {
	if key == "" {
		return nil, ErrFormNotFound
	}
	form, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if !form.IsEnabled {
		return nil, ErrFormNotFound
	}
	return form, nil
}

// GetFormsForUser kullanıcıya ait formları sayfalayarak getirir.
func (s *FormService) GetFormsForUser(ctx context.Context, creatorUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrFormInvalidInput)
	}
	params.Validate()

	forms, totalCount, err := s.repo.FindAllByUserIDPaginated(ctx, creatorUserID, params)
	if err != nil {
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: forms,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
			TotalItems:  totalCount,
		},
	}, nil
}

// UpdateForm formu ve soru listesini günceller. Soru ID'leri korunur;
// var olan cevaplar için şema migrasyonu yapılmaz, kaldırılan soruların
// cevapları öksüz kalır ve okuma katmanında sentinel ile gösterilir.
func (s *FormService) UpdateForm(ctx context.Context, id uint, updatingUserID uint, input FormInput, isEnabled bool) (*models.Form, error) {
	if id == 0 || updatingUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz ID veya güncelleyen kullanıcı ID", ErrFormInvalidInput)
	}
	if err := ValidateFormInput(input); err != nil {
		return nil, err
	}

	form, err := s.GetFormByID(ctx, id, updatingUserID) // Yetki kontrolü yapar
	if err != nil {
		return nil, err
	}

	form.Title = strings.TrimSpace(input.Title)
	form.Description = strings.TrimSpace(input.Description)
	form.IsEnabled = isEnabled
	form.Questions = normalizeQuestions(input.Questions, form.Questions)

	ctxWithUser := models.ContextWithUserID(ctx, updatingUserID)
	if err := s.repo.Update(ctxWithUser, form); err != nil {
		configslog.Log.Error("UpdateForm repository hatası", zap.Uint("id", id), zap.Uint("userID", updatingUserID), zap.Error(err))
		return nil, ErrFormUpdateFailed
	}

	configslog.SLog.Infof("Form başarıyla güncellendi: ID %d (Güncelleyen: %d)", id, updatingUserID)
	return form, nil
}

// DeleteForm formu soft delete eder. Cevap kayıtları silinmez.
func (s *FormService) DeleteForm(ctx context.Context, id uint, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya silen kullanıcı ID", ErrFormInvalidInput)
	}

	form, err := s.GetFormByID(ctx, id, deletingUserID) // Yetki kontrolü yapar
	if err != nil {
		return err
	}

	ctxWithUser := models.ContextWithUserID(ctx, deletingUserID)
	if err := s.repo.Delete(ctxWithUser, form, deletingUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFormNotFound
		}
		configslog.Log.Error("DeleteForm repository hatası", zap.Uint("id", id), zap.Uint("userID", deletingUserID), zap.Error(err))
		return ErrFormDeletionFailed
	}

	configslog.SLog.Infof("Form başarıyla silindi: ID %d (Silen: %d)", id, deletingUserID)
	return nil
}

var _ IFormService = (*FormService)(nil)
