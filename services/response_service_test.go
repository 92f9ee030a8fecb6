package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"anket.link/models"
	"anket.link/pkg/tabulate"
)

var submissionQuestions = []models.Question{
	{ID: "q-color", Text: "Color?", Type: models.QuestionTypeSingleChoice, Options: []string{"Blue", "Red"}},
	{ID: "q-name", Text: "Name?", Type: models.QuestionTypeText},
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name       string
		answers    []models.Answer
		wantID     string
		wantReason string
	}{
		{
			name: "valid submission",
			answers: []models.Answer{
				{QuestionID: "q-color", Value: "Blue"},
				{QuestionID: "q-name", Value: "Ali"},
			},
		},
		{
			name: "missing answer fails on first unanswered question",
			answers: []models.Answer{
				{QuestionID: "q-name", Value: "Ali"},
			},
			wantID:     "q-color",
			wantReason: "zorunludur",
		},
		{
			name: "duplicate answers for one question are rejected",
			answers: []models.Answer{
				{QuestionID: "q-color", Value: "Blue"},
				{QuestionID: "q-color", Value: "Red"},
				{QuestionID: "q-name", Value: "Ali"},
			},
			wantID:     "q-color",
			wantReason: "birden fazla",
		},
		{
			name: "choice outside the current option set",
			answers: []models.Answer{
				{QuestionID: "q-color", Value: "Green"},
				{QuestionID: "q-name", Value: "Ali"},
			},
			wantID:     "q-color",
			wantReason: "seçenekler arasında değil",
		},
		{
			name: "whitespace-only text answer",
			answers: []models.Answer{
				{QuestionID: "q-color", Value: "Red"},
				{QuestionID: "q-name", Value: "   "},
			},
			wantID:     "q-name",
			wantReason: "boş olamaz",
		},
		{
			name: "extra answer for an unknown question is tolerated",
			answers: []models.Answer{
				{QuestionID: "q-color", Value: "Blue"},
				{QuestionID: "q-name", Value: "Ali"},
				{QuestionID: "q-removed", Value: "whatever"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateSubmission(submissionQuestions, tt.answers)
			if tt.wantID == "" {
				if verr != nil {
					t.Fatalf("ValidateSubmission() = %v, geçerli gönderim bekleniyordu", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateSubmission() = nil, %q sorusu için hata bekleniyordu", tt.wantID)
			}
			if verr.QuestionID != tt.wantID {
				t.Errorf("QuestionID = %q, beklenen %q", verr.QuestionID, tt.wantID)
			}
			if !strings.Contains(verr.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, %q içermeli", verr.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateSubmissionValidatesInFormOrder(t *testing.T) {
	// İki soru da cevapsız: ilk hata form sırasındaki ilk soruya ait olmalı.
	verr := ValidateSubmission(submissionQuestions, nil)
	if verr == nil {
		t.Fatal("ValidateSubmission() = nil, hata bekleniyordu")
	}
	if verr.QuestionID != "q-color" {
		t.Errorf("ilk hata QuestionID = %q, beklenen %q", verr.QuestionID, "q-color")
	}
}

func newTestResponseService(formRepo *fakeFormRepo, respRepo *fakeResponseRepo, ownerIDs ...uint) *ResponseService {
	formService := &FormService{repo: formRepo, userService: newFakeUserService(ownerIDs...)}
	return &ResponseService{repo: respRepo, formRepo: formRepo, formService: formService}
}

func TestSubmitResponseStoresValidSubmission(t *testing.T) {
	formRepo := &fakeFormRepo{}
	respRepo := &fakeResponseRepo{}
	form := seedForm(formRepo, 1, "abcDEF12345", "Anket", true, submissionQuestions...)
	svc := newTestResponseService(formRepo, respRepo, 1)

	answers := []models.Answer{
		{QuestionID: "q-color", Value: "Blue"},
		{QuestionID: "q-name", Value: "Ali"},
	}
	response, err := svc.SubmitResponse(context.Background(), "abcDEF12345", answers)
	if err != nil {
		t.Fatalf("SubmitResponse() hata: %v", err)
	}
	if response.FormID != form.ID {
		t.Errorf("FormID = %d, beklenen %d", response.FormID, form.ID)
	}
	if len(respRepo.responses) != 1 {
		t.Fatalf("kaydedilen cevap sayısı = %d, beklenen 1", len(respRepo.responses))
	}
}

func TestSubmitResponseInvalidSubmissionStoresNothing(t *testing.T) {
	formRepo := &fakeFormRepo{}
	respRepo := &fakeResponseRepo{}
	seedForm(formRepo, 1, "abcDEF12345", "Anket", true, submissionQuestions...)
	svc := newTestResponseService(formRepo, respRepo, 1)

	_, err := svc.SubmitResponse(context.Background(), "abcDEF12345", []models.Answer{
		{QuestionID: "q-color", Value: "Green"},
	})
	if _, ok := IsValidationError(err); !ok {
		t.Fatalf("SubmitResponse() hata = %v, ValidationError bekleniyordu", err)
	}
	if len(respRepo.responses) != 0 {
		t.Errorf("geçersiz gönderim kaydedildi: %d cevap", len(respRepo.responses))
	}
}

func TestSubmitResponseUnknownOrDisabledForm(t *testing.T) {
	formRepo := &fakeFormRepo{}
	respRepo := &fakeResponseRepo{}
	seedForm(formRepo, 1, "kapali00000", "Kapalı Anket", false, submissionQuestions...)
	svc := newTestResponseService(formRepo, respRepo, 1)

	for _, key := range []string{"yok00000000", "kapali00000"} {
		if _, err := svc.SubmitResponse(context.Background(), key, nil); !errors.Is(err, ErrFormNotFound) {
			t.Errorf("SubmitResponse(%q) hata = %v, beklenen %v", key, err, ErrFormNotFound)
		}
	}
}

func TestBuildResponseTablePaginatesAndSorts(t *testing.T) {
	formRepo := &fakeFormRepo{}
	respRepo := &fakeResponseRepo{}
	form := seedForm(formRepo, 1, "abcDEF12345", "Anket", true, submissionQuestions...)
	svc := newTestResponseService(formRepo, respRepo, 1)

	names := []string{"Zeynep", "Ali", "Mehmet", "Ayse", "Can", "Deniz", "Ece", "Fatma", "Gul", "Hakan", "Irem", "Kaan"}
	for _, name := range names {
		respRepo.Create(context.Background(), &models.Response{
			FormID: form.ID,
			Answers: []models.Answer{
				{QuestionID: "q-color", Value: "Blue"},
				{QuestionID: "q-name", Value: name},
			},
		})
	}

	page, err := svc.BuildResponseTable(context.Background(), form.ID, 1, tabulate.TableQuery{SortBy: "q-name", Order: "asc", Page: 2})
	if err != nil {
		t.Fatalf("BuildResponseTable() hata: %v", err)
	}
	if got := len(page.Rows); got != len(names)-tabulate.DefaultPageSize {
		t.Errorf("2. sayfa satır sayısı = %d, beklenen %d", got, len(names)-tabulate.DefaultPageSize)
	}
	if page.Meta.TotalItems != int64(len(names)) {
		t.Errorf("TotalItems = %d, beklenen %d", page.Meta.TotalItems, len(names))
	}
	if page.Meta.TotalPages != 2 {
		t.Errorf("TotalPages = %d, beklenen 2", page.Meta.TotalPages)
	}
	// Sıralı tam listenin 11. elemanı: sayfalama sıralamadan sonra uygulanır.
	if got := page.Rows[0].Cells["q-name"]; got != "Mehmet" {
		t.Errorf("2. sayfa ilk satır = %q, beklenen %q", got, "Mehmet")
	}
}

func TestBuildResponseTableForbiddenForOtherUser(t *testing.T) {
	formRepo := &fakeFormRepo{}
	respRepo := &fakeResponseRepo{}
	form := seedForm(formRepo, 1, "abcDEF12345", "Anket", true, submissionQuestions...)
	svc := newTestResponseService(formRepo, respRepo, 1, 2)

	if _, err := svc.BuildResponseTable(context.Background(), form.ID, 2, tabulate.TableQuery{}); !errors.Is(err, ErrFormForbidden) {
		t.Errorf("BuildResponseTable() hata = %v, beklenen %v", err, ErrFormForbidden)
	}
}

func TestExportResponsesCSVReturnsFilenameAndData(t *testing.T) {
	formRepo := &fakeFormRepo{}
	respRepo := &fakeResponseRepo{}
	form := seedForm(formRepo, 1, "abcDEF12345", "Müşteri Anketi", true, submissionQuestions...)
	respRepo.Create(context.Background(), &models.Response{
		FormID: form.ID,
		Answers: []models.Answer{
			{QuestionID: "q-color", Value: "Red"},
			{QuestionID: "q-name", Value: "Ali"},
		},
	})
	svc := newTestResponseService(formRepo, respRepo, 1)

	filename, data, err := svc.ExportResponsesCSV(context.Background(), form.ID, 1)
	if err != nil {
		t.Fatalf("ExportResponsesCSV() hata: %v", err)
	}
	if filename != "Müşteri_Anketi_responses.csv" {
		t.Errorf("filename = %q, beklenen %q", filename, "Müşteri_Anketi_responses.csv")
	}
	if !strings.HasPrefix(string(data), "Color?,Name?\r\n") {
		t.Errorf("CSV başlığı beklenenden farklı: %q", string(data))
	}
}
