package analytics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ReceiptFields holds the values a scanned receipt text yields. Zero fields
// mean the heuristic found nothing; extraction never fails.
type ReceiptFields struct {
	Amount      float64 `json:"amount"`
	HasAmount   bool    `json:"has_amount"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
}

var (
	amountPattern    = regexp.MustCompile(`[\d,]+\.\d{2}`)
	isoDatePattern   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	slashDatePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// ExtractReceiptFields pulls a probable total, date and merchant line out of
// OCR text. The largest decimal amount on the receipt is taken as the total;
// dates match ISO first, then DD/MM/YYYY; the description is the first line
// of any substance, truncated.
func ExtractReceiptFields(text string) ReceiptFields {
	var fields ReceiptFields

	for _, match := range amountPattern.FindAllString(text, -1) {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
		if err != nil {
			continue
		}
		if !fields.HasAmount || value > fields.Amount {
			fields.Amount = value
			fields.HasAmount = true
		}
	}

	if iso := isoDatePattern.FindString(text); iso != "" {
		fields.Date = iso
	} else if slash := slashDatePattern.FindString(text); slash != "" {
		parts := strings.Split(slash, "/")
		fields.Date = fmt.Sprintf("%s-%s-%s", parts[2], parts[1], parts[0])
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 3 {
			// truncate on runes so a multi-byte character is never split
			if runes := []rune(line); len(runes) > 50 {
				line = string(runes[:50])
			}
			fields.Description = line
			break
		}
	}

	return fields
}
