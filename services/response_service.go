package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/pkg/queryparams"
	"anket.link/pkg/tabulate"
	"anket.link/repositories"

	"go.uber.org/zap"
)

// ResponseServiceError özel servis hataları
type ResponseServiceError string

func (e ResponseServiceError) Error() string { return string(e) }

const (
	ErrResponseCreationFailed ResponseServiceError = "cevap kaydedilemedi"
	ErrResponseInvalidInput   ResponseServiceError = "geçersiz cevap verisi"
)

// ValidationError geçersiz bir gönderimde ilk başarısız soruyu işaret eder.
// Tüm hatalar toplanmaz; ilk hatada durulur (fail-fast).
type ValidationError struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Reason       string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("gönderim doğrulanamadı: %q — %s", e.QuestionText, e.Reason)
}

// ValidateSubmission gelen cevap kümesini formun güncel soru listesine karşı
// doğrular. Saf bir kontroldür; yan etkisi yoktur. Her soru tipine göre
// zorunludur: TEXT boş olmayan bir değer ister, SINGLE_CHOICE değerin o anki
// seçenekler arasında olmasını ister. Aynı soruya birden fazla cevap
// reddedilir. Soru listesinde bulunmayan ID'lere ait fazladan cevaplar
// doğrulamaya takılmaz (zayıf referans politikası).
func ValidateSubmission(questions []models.Question, answers []models.Answer) *ValidationError {
	for _, q := range questions {
		var value string
		matches := 0
		for _, a := range answers {
			if a.QuestionID != q.ID {
				continue
			}
			if matches == 0 {
				value = a.Value
			}
			matches++
		}

		switch {
		case matches == 0:
			return &ValidationError{QuestionID: q.ID, QuestionText: q.Text, Reason: "bu soruya cevap verilmesi zorunludur"}
		case matches > 1:
			return &ValidationError{QuestionID: q.ID, QuestionText: q.Text, Reason: "aynı soruya birden fazla cevap verilemez"}
		}

		switch q.Type {
		case models.QuestionTypeSingleChoice:
			valid := false
			for _, opt := range q.Options {
				if value == opt {
					valid = true
					break
				}
			}
			if !valid {
				return &ValidationError{QuestionID: q.ID, QuestionText: q.Text, Reason: "verilen cevap seçenekler arasında değil"}
			}
		default:
			if strings.TrimSpace(value) == "" {
				return &ValidationError{QuestionID: q.ID, QuestionText: q.Text, Reason: "cevap boş olamaz"}
			}
		}
	}
	return nil
}

// ResponseTablePage tablo ucunun sayfalanmış cevabıdır.
type ResponseTablePage struct {
	Columns []tabulate.Column          `json:"columns"`
	Rows    []tabulate.Row             `json:"rows"`
	SortBy  string                     `json:"sortBy,omitempty"`
	Order   string                     `json:"order"`
	Meta    queryparams.PaginationMeta `json:"meta"`
}

// IResponseService cevap işlemleri için arayüz.
type IResponseService interface {
	SubmitResponse(ctx context.Context, formKey string, answers []models.Answer) (*models.Response, error)
	GetResponsesForForm(ctx context.Context, formID uint, requestingUserID uint) (*models.Form, []models.Response, error)
	BuildResponseTable(ctx context.Context, formID uint, requestingUserID uint, query tabulate.TableQuery) (*ResponseTablePage, error)
	ExportResponsesCSV(ctx context.Context, formID uint, requestingUserID uint) (filename string, data []byte, err error)
}

// ResponseService IResponseService arayüzünü uygular.
type ResponseService struct {
	repo        repositories.IResponseRepository
	formRepo    repositories.IFormRepository
	formService IFormService
}

// NewResponseService yeni bir ResponseService örneği oluşturur.
func NewResponseService() IResponseService {
	return &ResponseService{
		repo:        repositories.NewResponseRepository(),
		formRepo:    repositories.NewFormRepository(),
		formService: NewFormService(),
	}
}

// SubmitResponse anonim bir gönderimi doğrular ve kaydeder. Doğrulama formun
// o anki soru listesine göre yapılır; kayıt geçtikten sonra form değişse bile
// cevap aynen saklanır.
func (s *ResponseService) SubmitResponse(ctx context.Context, formKey string, answers []models.Answer) (*models.Response, error) {
	form, err := s.formService.GetFormByKey(ctx, formKey)
	if err != nil {
		return nil, err
	}

	if verr := ValidateSubmission(form.Questions, answers); verr != nil {
		return nil, verr
	}

	response := &models.Response{
		FormID:  form.ID,
		Answers: answers,
	}
	if err := s.repo.Create(ctx, response); err != nil {
		configslog.Log.Error("Cevap kaydedilirken repository hatası", zap.Uint("formID", form.ID), zap.Error(err))
		return nil, ErrResponseCreationFailed
	}

	configslog.SLog.Infof("Yeni cevap alındı: Response ID %d, Form ID %d", response.ID, form.ID)
	return response, nil
}

// getOwnedFormWithResponses formu yetki kontrolüyle getirir ve tüm cevaplarını
// istek başında tek seferde okur (point-in-time snapshot).
func (s *ResponseService) getOwnedFormWithResponses(ctx context.Context, formID uint, requestingUserID uint) (*models.Form, []models.Response, error) {
	form, err := s.formService.GetFormByID(ctx, formID, requestingUserID) // Yetki kontrolü yapar
	if err != nil {
		return nil, nil, err
	}
	responses, err := s.repo.FindAllByFormID(ctx, form.ID)
	if err != nil {
		return nil, nil, err
	}
	return form, responses, nil
}

// GetResponsesForForm bir formun ham cevap listesini döndürür (sahibine özel).
func (s *ResponseService) GetResponsesForForm(ctx context.Context, formID uint, requestingUserID uint) (*models.Form, []models.Response, error) {
	return s.getOwnedFormWithResponses(ctx, formID, requestingUserID)
}

// BuildResponseTable cevapları tablo görünümüne dönüştürür: soru sırasına göre
// sütunlar, istenirse tek sütuna göre kararlı sıralama, sabit boyutlu sayfalama.
func (s *ResponseService) BuildResponseTable(ctx context.Context, formID uint, requestingUserID uint, query tabulate.TableQuery) (*ResponseTablePage, error) {
	form, responses, err := s.getOwnedFormWithResponses(ctx, formID, requestingUserID)
	if err != nil {
		return nil, err
	}

	query.Validate()
	table := tabulate.BuildTable(form, responses)
	if query.SortBy != "" {
		tabulate.SortRows(table.Rows, query.SortBy, query.Order == "desc")
	}

	total := int64(len(table.Rows))
	return &ResponseTablePage{
		Columns: table.Columns,
		Rows:    tabulate.Page(table.Rows, query.Page, tabulate.DefaultPageSize),
		SortBy:  query.SortBy,
		Order:   query.Order,
		Meta: queryparams.PaginationMeta{
			CurrentPage: query.Page,
			PerPage:     tabulate.DefaultPageSize,
			TotalPages:  queryparams.CalculateTotalPages(total, tabulate.DefaultPageSize),
			TotalItems:  total,
		},
	}, nil
}

// ExportResponsesCSV formun cevaplarını CSV olarak dışa aktarır. Satır sırası
// gönderilme sırasıdır; dışa aktarma sıralama yapmaz.
func (s *ResponseService) ExportResponsesCSV(ctx context.Context, formID uint, requestingUserID uint) (string, []byte, error) {
	form, responses, err := s.getOwnedFormWithResponses(ctx, formID, requestingUserID)
	if err != nil {
		return "", nil, err
	}

	data, err := tabulate.ExportCSV(form, responses)
	if err != nil {
		configslog.Log.Error("CSV dışa aktarma hatası", zap.Uint("formID", formID), zap.Error(err))
		return "", nil, err
	}
	return tabulate.ExportFilename(form.Title), data, nil
}

// IsValidationError hatanın bir doğrulama hatası olup olmadığını söyler.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var _ IResponseService = (*ResponseService)(nil)
