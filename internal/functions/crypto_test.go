package functions_test

import (
	"testing"

	"github.com/fluxoapp/fluxo/internal/functions"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	secret := "местный-ключ-шифрования"
	plaintext := "binance-api-key-12345"

	encrypted, err := functions.Encrypt(plaintext, secret)
	if err != nil {
		t.Fatalf("ошибка при шифровании: %v", err)
	}
	if encrypted == plaintext {
		t.Fatal("шифртекст совпал с открытым текстом")
	}

	decrypted, err := functions.Decrypt(encrypted, secret)
	if err != nil {
		t.Fatalf("ошибка при расшифровке: %v", err)
	}
	if decrypted != plaintext {
		t.Errorf("после расшифровки получили %q, хотели %q", decrypted, plaintext)
	}
}

func TestDecryptWrongKeyFails(t *testing.T) {
	encrypted, err := functions.Encrypt("secret-value", "правильный ключ")
	if err != nil {
		t.Fatalf("ошибка при шифровании: %v", err)
	}
	if _, err := functions.Decrypt(encrypted, "неправильный ключ"); err == nil {
		t.Error("расшифровка чужим ключом должна завершаться ошибкой")
	}
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	secret := "ключ"
	first, err := functions.Encrypt("one", secret)
	if err != nil {
		t.Fatalf("ошибка при шифровании: %v", err)
	}
	second, err := functions.Encrypt("one", secret)
	if err != nil {
		t.Fatalf("ошибка при шифровании: %v", err)
	}
	if first == second {
		t.Error("повторное шифрование должно давать другой шифртекст")
	}
}

func TestSignPayload(t *testing.T) {
	// контрольный вектор из RFC 4231 (test case 2)
	got := functions.SignPayload("Jefe", "what do ya want for nothing?")
	want := "5bdc7146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"
	if got != want {
		t.Errorf("подпись: получили %s, хотели %s", got, want)
	}
}
