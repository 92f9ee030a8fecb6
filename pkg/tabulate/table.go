// Package tabulate bir formun soru listesi ile cevaplarını birleştirip
// satır×sütun tablo görünümü ve CSV çıktısı üretir. Formdan forma değişen,
// sabit şeması olmayan cevap kümeleri için anahtarlı (questionId) join yapar;
// pozisyonel eşleme yoktur.
package tabulate

import (
	"sort"
	"time"

	"anket.link/models"
)

// NotAnswered bir soruya hiç cevap verilmemiş hücreler için sentinel değerdir.
// Boş string'den farklıdır: boş cevap ile cevapsızlık aynı şey değildir.
const NotAnswered = "NOT_ANSWERED"

// DefaultPageSize tablo görünümünün sabit sayfa boyutudur.
const DefaultPageSize = 10

// Column tablodaki bir sütunu (formdaki bir soruyu) tanımlar.
type Column struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
}

// Row tek bir cevabın (Response) tablo satırıdır. Cells, questionId ->
// görüntülenecek değer eşlemesidir; cevapsız sorular NotAnswered içerir.
type Row struct {
	ResponseID  uint              `json:"responseId"`
	SubmittedAt time.Time         `json:"submittedAt"`
	Cells       map[string]string `json:"cells"`
}

// Table formun güncel soru listesine göre kurulmuş tablo görünümüdür.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// BuildTable formun soru sırasını sütun sırası olarak sabitleyip her cevabı
// questionId üzerinden eşler. Cevaplar herhangi bir sırada gelebilir, eksik
// olabilir veya (hatalı istemcilerde) aynı soru için birden fazla olabilir;
// ilk eşleşen cevap kazanır. Soru listesinde artık bulunmayan sorulara ait
// cevaplar tabloya girmez.
func BuildTable(form *models.Form, responses []models.Response) Table {
	columns := make([]Column, 0, len(form.Questions))
	for _, q := range form.Questions {
		columns = append(columns, Column{QuestionID: q.ID, QuestionText: q.Text})
	}

	rows := make([]Row, 0, len(responses))
	for _, resp := range responses {
		cells := make(map[string]string, len(columns))
		for _, q := range form.Questions {
			cells[q.ID] = lookupAnswer(resp.Answers, q.ID)
		}
		rows = append(rows, Row{
			ResponseID:  resp.ID,
			SubmittedAt: resp.CreatedAt,
			Cells:       cells,
		})
	}

	return Table{Columns: columns, Rows: rows}
}

// lookupAnswer ilk eşleşen cevabı döndürür, yoksa NotAnswered.
func lookupAnswer(answers []models.Answer, questionID string) string {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return a.Value
		}
	}
	return NotAnswered
}

// SortRows satırları verilen sorunun hücre değerine göre leksikografik sıralar.
// Sıralama kararlıdır (eşit anahtarlarda önceki göreli sıra korunur).
// NotAnswered ve eksik hücreler karşılaştırmada boş string sayılır.
func SortRows(rows []Row, questionID string, descending bool) {
	key := func(r Row) string {
		v, ok := r.Cells[questionID]
		if !ok || v == NotAnswered {
			return ""
		}
		return v
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return key(rows[i]) > key(rows[j])
		}
		return key(rows[i]) < key(rows[j])
	})
}

// Page 1-indexli sayfalama yapar. Son sayfanın ötesi hata değil boş dilimdir.
func Page[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TableQuery tablo ucunun query parametreleridir.
type TableQuery struct {
	SortBy string `query:"sort_by"`
	Order  string `query:"order"`
	Page   int    `query:"page"`
}

// Validate parametreleri normalize eder. Sayfa belirtilmemiş ya da geçersizse
// 1. sayfaya düşülür; böylece yeni bir sıralama isteği her zaman baştan başlar.
func (q *TableQuery) Validate() {
	if q.Order != "asc" && q.Order != "desc" {
		q.Order = "asc"
	}
	if q.Page < 1 {
		q.Page = 1
	}
}
