package analytics_test

import (
	"testing"
	"time"

	"github.com/fluxoapp/fluxo/internal/analytics"
)

func TestParseLocalDateRoundTrip(t *testing.T) {
	// дата должна пережить разбор и форматирование без сдвига на день
	// независимо от часового пояса среды выполнения
	got := analytics.FormatLocalDate(analytics.ParseLocalDate("2024-03-15"))
	if got != "2024-03-15" {
		t.Errorf("дата сдвинулась при разборе: получили %s, хотели 2024-03-15", got)
	}

	parsed := analytics.ParseLocalDate("2024-03-15")
	if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 15 {
		t.Errorf("разбор даты дал %v, хотели 15 марта 2024", parsed)
	}
}

func TestParseLocalDateIgnoresTimeSuffix(t *testing.T) {
	// суффикс времени и зоны отбрасывается, берётся только календарный день
	got := analytics.ParseLocalDate("2024-03-15T23:30:00+08:00")
	if analytics.FormatLocalDate(got) != "2024-03-15" {
		t.Errorf("суффикс времени сдвинул дату: получили %s", analytics.FormatLocalDate(got))
	}
}

func TestParseLocalDateMalformed(t *testing.T) {
	for _, input := range []string{"", "не дата", "2024/03/15", "2024-03", "abcd-ef-gh"} {
		if got := analytics.ParseLocalDate(input); !got.IsZero() {
			t.Errorf("некорректная строка %q должна дать нулевое время, получили %v", input, got)
		}
	}
}
