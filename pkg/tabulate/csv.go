package tabulate

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"

	"anket.link/models"
)

// MissingAnswerCSV cevapsız hücrelerin CSV çıktısındaki karşılığıdır.
// Tablo görünümündeki sentinel yerine düz metin olarak yazılır.
const MissingAnswerCSV = "N/A"

// ExportCSV formun cevaplarını RFC 4180 uyumlu CSV'ye dönüştürür (UTF-8,
// virgül ayraç, gerektiğinde tırnaklama, CRLF satır sonu). Başlık satırı soru
// metinlerinden oluşur; aynı metinli sorular pozisyonel ek ile ayrıştırılır.
// Satır sırası verilen responses sırasıdır; fonksiyon sıralama yapmaz.
// Erişim kontrolü çağıran katmanın sorumluluğundadır; burada saf dönüşüm vardır.
func ExportCSV(form *models.Form, responses []models.Response) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(csvHeaders(form.Questions)); err != nil {
		return nil, fmt.Errorf("csv başlık satırı yazılamadı: %w", err)
	}

	record := make([]string, len(form.Questions))
	for _, resp := range responses {
		for i, q := range form.Questions {
			value := lookupAnswer(resp.Answers, q.ID)
			if value == NotAnswered {
				value = MissingAnswerCSV
			}
			record[i] = value
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv satırı yazılamadı: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvHeaders soru metinlerini form sırasında döndürür. Yinelenen metinler
// " (n)" eki ile ayrıştırılır; join anahtarı her zaman soru ID'sidir, metin
// yalnızca okunabilir etikettir.
func csvHeaders(questions []models.Question) []string {
	headers := make([]string, len(questions))
	seen := make(map[string]int, len(questions))
	for i, q := range questions {
		seen[q.Text]++
		if n := seen[q.Text]; n > 1 {
			headers[i] = fmt.Sprintf("%s (%d)", q.Text, n)
		} else {
			headers[i] = q.Text
		}
	}
	return headers
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExportFilename form başlığından indirme dosya adını türetir:
// boşluk dizileri alt çizgiye çevrilir, "_responses.csv" eki eklenir.
func ExportFilename(title string) string {
	return whitespaceRe.ReplaceAllString(title, "_") + "_responses.csv"
}
