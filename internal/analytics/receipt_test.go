package analytics_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fluxoapp/fluxo/internal/analytics"
)

func TestExtractReceiptFields(t *testing.T) {
	text := "SUPERMARKET CENTRAL\nMilk 2.49\nBread 1.20\nTOTAL 23.69\n2024-06-15\nThank you!"

	fields := analytics.ExtractReceiptFields(text)
	if !fields.HasAmount || fields.Amount != 23.69 {
		t.Errorf("итоговая сумма чека: получили %v, хотели 23.69 (берётся наибольшая)", fields.Amount)
	}
	if fields.Date != "2024-06-15" {
		t.Errorf("дата чека: получили %q, хотели 2024-06-15", fields.Date)
	}
	if fields.Description != "SUPERMARKET CENTRAL" {
		t.Errorf("описание чека: получили %q", fields.Description)
	}
}

func TestExtractReceiptFieldsSlashDate(t *testing.T) {
	text := "CAFE\nEspresso 3.50\n15/06/2024"

	fields := analytics.ExtractReceiptFields(text)
	if fields.Date != "2024-06-15" {
		t.Errorf("дата DD/MM/YYYY должна стать ISO: получили %q", fields.Date)
	}
}

func TestExtractReceiptFieldsThousandsSeparator(t *testing.T) {
	fields := analytics.ExtractReceiptFields("TOTAL 1,234.56")
	if fields.Amount != 1234.56 {
		t.Errorf("сумма с разделителем тысяч: получили %v, хотели 1234.56", fields.Amount)
	}
}

func TestExtractReceiptFieldsTruncatesLongDescriptionByRunes(t *testing.T) {
	// кириллическая строка: 60 двухбайтовых символов
	long := strings.Repeat("магазин", 8) + "плюс" // 60 рун
	fields := analytics.ExtractReceiptFields(long + "\nTOTAL 9.99")

	runes := []rune(fields.Description)
	if len(runes) != 50 {
		t.Fatalf("длина описания: получили %d рун, хотели 50", len(runes))
	}
	if !utf8.ValidString(fields.Description) {
		t.Error("описание после обрезки содержит разорванный символ UTF-8")
	}
	if fields.Description != string([]rune(long)[:50]) {
		t.Errorf("описание обрезано не по границе символа: %q", fields.Description)
	}
}

func TestExtractReceiptFieldsEmpty(t *testing.T) {
	fields := analytics.ExtractReceiptFields("???")
	if fields.HasAmount || fields.Date != "" || fields.Description != "" {
		t.Errorf("пустой чек должен дать пустые поля: %+v", fields)
	}
}
